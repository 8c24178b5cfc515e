// Copyright 2026 The Tickmark Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestConstructorsSetCategory(t *testing.T) {
	tests := []struct {
		err  *ToolError
		want ErrorCategory
	}{
		{Validation("bad flag %q", "--nope"), CategoryValidation},
		{NotFound("config %s does not exist", "/tmp/x.yaml"), CategoryNotFound},
		{Internal("terminal setup failed"), CategoryInternal},
	}

	for _, test := range tests {
		if test.err.Category != test.want {
			t.Errorf("got category %q, want %q", test.err.Category, test.want)
		}
	}
}

func TestErrorMessageFormatting(t *testing.T) {
	err := Validation("unknown start tab %q", "archived")
	want := `unknown start tab "archived"`
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestWithHintAppendsToMessage(t *testing.T) {
	err := NotFound("config file not found").
		WithHint("set TICKMARK_CONFIG or pass --config")

	message := err.Error()
	if !strings.HasPrefix(message, "config file not found") {
		t.Errorf("message lost the error text: %q", message)
	}
	if !strings.Contains(message, "\n\nset TICKMARK_CONFIG") {
		t.Errorf("hint not separated by blank line: %q", message)
	}
}

func TestUnwrapPreservesChain(t *testing.T) {
	sentinel := errors.New("root cause")
	err := Internal("loading config: %w", sentinel)

	if !errors.Is(err, sentinel) {
		t.Errorf("errors.Is lost the wrapped sentinel")
	}

	var toolErr *ToolError
	wrapped := fmt.Errorf("outer: %w", err)
	if !errors.As(wrapped, &toolErr) {
		t.Fatalf("errors.As could not find ToolError")
	}
	if toolErr.Category != CategoryInternal {
		t.Errorf("category lost through wrapping: %q", toolErr.Category)
	}
}

func TestHintSurvivesErrorsAs(t *testing.T) {
	err := Validation("bad color").WithHint("use an ANSI 256 index or #rrggbb")
	wrapped := fmt.Errorf("config: %w", err)

	var toolErr *ToolError
	if !errors.As(wrapped, &toolErr) {
		t.Fatalf("errors.As could not find ToolError")
	}
	if toolErr.Hint == "" {
		t.Errorf("hint lost through wrapping")
	}
}

func TestExitError(t *testing.T) {
	err := &ExitError{Code: 3}
	if err.ExitCode() != 3 {
		t.Errorf("got exit code %d, want 3", err.ExitCode())
	}
	if !strings.Contains(err.Error(), "3") {
		t.Errorf("error string missing code: %q", err.Error())
	}

	var exitErr interface{ ExitCode() int }
	wrapped := fmt.Errorf("run: %w", err)
	if !errors.As(wrapped, &exitErr) {
		t.Fatalf("errors.As could not find ExitCode carrier")
	}
}
