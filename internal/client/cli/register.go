package cli

import (
	"context"
	"fmt"
)

func (a *App) Register(ctx context.Context) error {

	name, err := getSimpleText(a.reader, "Enter name", a.writer)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.writer)
	if err != nil {
		return err
	}

	password, err := getPassword(a.writer)
	if err != nil {
		return err
	}

	result, err := a.client.Register(ctx, name, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.writer, "Registered %s (id=%s)\nToken: %s\n", result.Email, result.UserID, result.Token)
	return nil
}
