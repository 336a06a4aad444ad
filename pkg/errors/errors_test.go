// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/pkgflag/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_implemented_error",
			code:    errors.ErrNotImplemented,
			message: "Global actions are not supported yet",
			wantStr: "[NOT_IMPLEMENTED] Global actions are not supported yet",
		},
		{
			name:    "invalid_namespace_error",
			code:    errors.ErrInvalidNamespace,
			message: "incorrect namespace in arg",
			wantStr: "[INVALID_NAMESPACE] incorrect namespace in arg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrAmbiguousArgument, "Ambiguous argument: %s (matches %s).", "foo", "use, kw")

	want := "Ambiguous argument: foo (matches use, kw)."
	if err.Message != want {
		t.Errorf("Newf() message = %q, want %q", err.Message, want)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		if err.Code != errors.ErrInternal {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrInternal)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[INTERNAL] internal error: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrAmbiguousArgument, "ambiguous").
		WithDetail("token", "+foo").
		WithDetail("matches", []string{"use", "kw"})

	if err.Details["token"] != "+foo" {
		t.Errorf("WithDetail() token = %v, want %v", err.Details["token"], "+foo")
	}

	if got := errors.GetErrorDetails(err)["matches"]; len(got.([]string)) != 2 {
		t.Errorf("GetErrorDetails() matches = %v, want two entries", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrInvalidNamespace, "error 1")
	err2 := errors.New(errors.ErrInvalidNamespace, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with PkgflagError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrNotAnAction, "not an action"),
			code:     errors.ErrNotAnAction,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrNotAnAction, "not an action"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"),
			code:     errors.ErrFileAccess,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrInternal,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"invalid_namespace", errors.New(errors.ErrInvalidNamespace, "x"), true},
		{"ambiguous_argument", errors.New(errors.ErrAmbiguousArgument, "x"), true},
		{"not_implemented", errors.New(errors.ErrNotImplemented, "x"), false},
		{"contract", errors.New(errors.ErrContract, "x"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsParseError(tt.err); got != tt.expected {
				t.Errorf("IsParseError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "pkgflag_error",
			err:      errors.New(errors.ErrMetadataLoad, "bad metadata"),
			expected: errors.ErrMetadataLoad,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	err := errors.Wrap(stderrors.New("eof"), errors.ErrConfigParse, "bad config")
	if got := errors.UserMessage(err); got != "bad config" {
		t.Errorf("UserMessage() = %q, want %q", got, "bad config")
	}

	plain := stderrors.New("plain")
	if got := errors.UserMessage(plain); got != "plain" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain")
	}
}

func TestAsPkgflagError(t *testing.T) {
	inner := errors.New(errors.ErrInvalidNamespace, "incorrect namespace in arg")
	wrapped := fmt.Errorf("append: %w", inner)

	got, ok := errors.AsPkgflagError(wrapped)
	if !ok || got != inner {
		t.Fatalf("AsPkgflagError() = %v, %v, want the inner error", got, ok)
	}

	if _, ok := errors.AsPkgflagError(stderrors.New("plain")); ok {
		t.Error("AsPkgflagError() should not match a plain error")
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(configErr, errors.ErrConfigLoad) {
			t.Error("Top level should have ErrConfigLoad code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var pkgErr *errors.PkgflagError
		if stderrors.As(configErr.Unwrap(), &pkgErr) {
			if !errors.IsErrorCode(pkgErr, errors.ErrFileAccess) {
				t.Error("Middle error should have ErrFileAccess code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(configErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
