// Package cli implements the interactive client commands: register, login,
// and verify. It exists for operators smoke-testing a running server.
package cli

import (
	"bufio"
	"context"
	"io"

	"github.com/avoronov/authkeeper/internal/client/client"
)

// authClient is what the commands need from the transport.
type authClient interface {
	Register(ctx context.Context, name, email, password string) (*client.AuthResult, error)
	Login(ctx context.Context, email, password string) (*client.AuthResult, error)
	Verify(ctx context.Context, token string) (*client.AuthResult, error)
}

type App struct {
	client authClient
	reader *bufio.Reader
	writer io.Writer
}

func NewApp(c authClient, in io.Reader, out io.Writer) *App {
	return &App{client: c, reader: bufio.NewReader(in), writer: out}
}

// RunCommand dispatches a single named command. Unknown names are reported,
// not fatal.
func (a *App) RunCommand(ctx context.Context, name string) error {
	switch name {
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "verify":
		return a.Verify(ctx)
	default:
		return errUnknownCommand
	}
}
