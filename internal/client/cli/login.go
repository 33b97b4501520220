package cli

import (
	"context"
	"fmt"
)

func (a *App) Login(ctx context.Context) error {

	email, err := getSimpleText(a.reader, "Enter email", a.writer)
	if err != nil {
		return err
	}

	password, err := getPassword(a.writer)
	if err != nil {
		return err
	}

	result, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.writer, "Logged in as %s (id=%s)\nToken: %s\n", result.Email, result.UserID, result.Token)
	return nil
}
