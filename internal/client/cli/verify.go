package cli

import (
	"context"
	"fmt"
)

func (a *App) Verify(ctx context.Context) error {

	token, err := getSimpleText(a.reader, "Enter token", a.writer)
	if err != nil {
		return err
	}

	result, err := a.client.Verify(ctx, token)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.writer, "Token valid for %s (id=%s)\nFresh token: %s\n", result.Email, result.UserID, result.Token)
	return nil
}
