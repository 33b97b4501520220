package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/avoronov/authkeeper/internal/client/client"
)

func stubReadPassword(t *testing.T, pw string, err error) {
	t.Helper()
	orig := readPassword
	readPassword = func(int) ([]byte, error) { return []byte(pw), err }
	t.Cleanup(func() { readPassword = orig })
}

type fakeClient struct {
	// captured arguments
	name, email, password, token string

	result *client.AuthResult
	err    error
}

func (f *fakeClient) Register(_ context.Context, name, email, password string) (*client.AuthResult, error) {
	f.name, f.email, f.password = name, email, password
	return f.result, f.err
}

func (f *fakeClient) Login(_ context.Context, email, password string) (*client.AuthResult, error) {
	f.email, f.password = email, password
	return f.result, f.err
}

func (f *fakeClient) Verify(_ context.Context, token string) (*client.AuthResult, error) {
	f.token = token
	return f.result, f.err
}

func newTestApp(f *fakeClient, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return NewApp(f, strings.NewReader(input), &out), &out
}

func TestRegister_Success(t *testing.T) {
	f := &fakeClient{result: &client.AuthResult{UserID: "u1", Name: "Alice", Email: "alice@example.org", Token: "tok"}}
	a, out := newTestApp(f, "Alice\nalice@example.org\n")
	stubReadPassword(t, "secret123", nil)

	if err := a.RunCommand(context.Background(), "register"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if f.name != "Alice" || f.email != "alice@example.org" || f.password != "secret123" {
		t.Fatalf("captured %q %q %q", f.name, f.email, f.password)
	}
	if !strings.Contains(out.String(), "Registered alice@example.org (id=u1)") {
		t.Fatalf("output %q", out.String())
	}
	if !strings.Contains(out.String(), "Token: tok") {
		t.Fatalf("output %q", out.String())
	}
}

func TestRegister_ErrorPropagates(t *testing.T) {
	f := &fakeClient{err: errors.New("boom")}
	a, _ := newTestApp(f, "Alice\nalice@example.org\n")
	stubReadPassword(t, "secret123", nil)

	if err := a.RunCommand(context.Background(), "register"); err == nil {
		t.Fatal("want error")
	}
}

func TestLogin_Success(t *testing.T) {
	f := &fakeClient{result: &client.AuthResult{UserID: "u1", Email: "alice@example.org", Token: "tok"}}
	a, out := newTestApp(f, "alice@example.org\n")
	stubReadPassword(t, "secret123", nil)

	if err := a.RunCommand(context.Background(), "login"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if f.email != "alice@example.org" || f.password != "secret123" {
		t.Fatalf("captured %q %q", f.email, f.password)
	}
	if !strings.Contains(out.String(), "Logged in as alice@example.org (id=u1)") {
		t.Fatalf("output %q", out.String())
	}
}

func TestLogin_PasswordReadError(t *testing.T) {
	f := &fakeClient{}
	a, _ := newTestApp(f, "alice@example.org\n")
	stubReadPassword(t, "", errors.New("no tty"))

	if err := a.RunCommand(context.Background(), "login"); err == nil {
		t.Fatal("want error")
	}
	if f.password != "" {
		t.Fatalf("client called with password %q", f.password)
	}
}

func TestVerify_Success(t *testing.T) {
	f := &fakeClient{result: &client.AuthResult{UserID: "u1", Email: "alice@example.org", Token: "fresh"}}
	a, out := newTestApp(f, "old-token\n")

	if err := a.RunCommand(context.Background(), "verify"); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if f.token != "old-token" {
		t.Fatalf("captured token %q", f.token)
	}
	if !strings.Contains(out.String(), "Fresh token: fresh") {
		t.Fatalf("output %q", out.String())
	}
}

func TestRunCommand_Unknown(t *testing.T) {
	a, _ := newTestApp(&fakeClient{}, "")
	err := a.RunCommand(context.Background(), "frobnicate")
	if !errors.Is(err, errUnknownCommand) {
		t.Fatalf("got %v", err)
	}
}
