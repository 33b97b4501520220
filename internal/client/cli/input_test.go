package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("hello world\n"))
	var out bytes.Buffer
	got, err := getSimpleText(in, "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
	if !strings.Contains(out.String(), "Name?") {
		t.Fatalf("prompt missing in %q", out.String())
	}
}

func TestGetSimpleText_EOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("lastline"))
	var out bytes.Buffer
	got, err := getSimpleText(in, "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleText_EmptyInput(t *testing.T) {
	in := bufio.NewReader(strings.NewReader(""))
	var out bytes.Buffer
	if _, err := getSimpleText(in, "Name?", &out); err == nil {
		t.Fatal("want error on empty input")
	}
}

func TestGetPassword_Error(t *testing.T) {
	stubReadPassword(t, "", errors.New("boom"))
	var out bytes.Buffer
	if _, err := getPassword(&out); err == nil {
		t.Fatal("expected error")
	}
}

func TestGetPassword_NotEchoed(t *testing.T) {
	stubReadPassword(t, "hunter2", nil)
	var out bytes.Buffer
	pw, err := getPassword(&out)
	if err != nil || pw != "hunter2" {
		t.Fatalf("got %q, err=%v", pw, err)
	}
	if strings.Contains(out.String(), "hunter2") {
		t.Fatalf("password echoed: %q", out.String())
	}
}
