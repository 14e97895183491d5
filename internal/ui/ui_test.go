package ui

import (
	"bytes"
	"os"
	"testing"
)

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(nil)

	Log("logged in")

	if got := buf.String(); got != "tracklab: logged in\n" {
		t.Errorf("Log output = %q, want %q", got, "tracklab: logged in\n")
	}
}

func TestLogf(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(nil)

	Logf("you chose %q", "Use an existing account")

	want := "tracklab: you chose \"Use an existing account\"\n"
	if got := buf.String(); got != want {
		t.Errorf("Logf output = %q, want %q", got, want)
	}
}

func TestLogOnce(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	ResetOnce()
	defer SetWriter(nil)

	LogOnce("API key is configured")
	LogOnce("API key is configured")
	LogOnce("something else")

	want := "tracklab: API key is configured\ntracklab: something else\n"
	if got := buf.String(); got != want {
		t.Errorf("LogOnce output = %q, want %q", got, want)
	}
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	SetColorEnabled(false)
	defer SetWriter(nil)

	Warn("invalid choice")

	if got := buf.String(); got != "tracklab: WARNING invalid choice\n" {
		t.Errorf("Warn output = %q, want %q", got, "tracklab: WARNING invalid choice\n")
	}
}

func TestErrorf(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	SetColorEnabled(false)
	defer SetWriter(nil)

	Errorf("refresh failed: %s", "timeout")

	want := "tracklab: ERROR refresh failed: timeout\n"
	if got := buf.String(); got != want {
		t.Errorf("Errorf output = %q, want %q", got, want)
	}
}

func TestColorFunctions(t *testing.T) {
	SetColorEnabled(true)
	defer SetColorEnabled(false)

	tests := []struct {
		name string
		fn   func(string) string
		code string
	}{
		{"Bold", Bold, "1"},
		{"Yellow", Yellow, "33"},
		{"Green", Green, "32"},
		{"Red", Red, "31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn("hello")
			want := "\033[" + tt.code + "mhello\033[0m"
			if got != want {
				t.Errorf("%s(\"hello\") = %q, want %q", tt.name, got, want)
			}
		})
	}

	SetColorEnabled(false)
	if got := Yellow("hello"); got != "hello" {
		t.Errorf("Yellow with color disabled = %q, want %q", got, "hello")
	}
}

func TestNO_COLOR(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	f, err := os.CreateTemp("", "ui-test-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if detectColor(f) {
		t.Error("detectColor should return false when NO_COLOR is set")
	}
}
