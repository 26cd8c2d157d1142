// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/gameshift/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "record_not_found",
			code:    errors.ErrRecordNotFound,
			message: "no record X1",
			wantStr: "[RECORD_NOT_FOUND] no record X1",
		},
		{
			name:    "invalid_selection",
			code:    errors.ErrInvalidSelection,
			message: "index out of range",
			wantStr: "[INVALID_SELECTION] index out of range",
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
	err := errors.Newf(errors.ErrInvalidSelection, "choice must be 1-%d, got %d", 4, 7)
	if err.Message != "choice must be 1-4, got 7" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("disk full")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrCopy, "copy failed")

		if err.Code != errors.ErrCopy {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrCopy)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[COPY_FAILED] copy failed: disk full"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrCopy, "copy failed")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrCatalogWrite, "update %s", "X1")
		if err.Message != "update X1" {
			t.Errorf("Wrapf() message = %q", err.Message)
		}
	})
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrVerificationMismatch, "trees differ").
		WithDetail("install_left_only", 2).
		WithDetails(map[string]interface{}{"data_right_only": 1})

	if err.Details["install_left_only"] != 2 {
		t.Errorf("WithDetail() = %v", err.Details["install_left_only"])
	}
	if err.Details["data_right_only"] != 1 {
		t.Errorf("WithDetails() = %v", err.Details["data_right_only"])
	}

	if got := errors.FormatDetails(err); got != "data_right_only=1 install_left_only=2" {
		t.Errorf("FormatDetails() = %q", got)
	}
	if got := errors.FormatDetails(stderrors.New("plain")); got != "" {
		t.Errorf("FormatDetails(plain) = %q", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrRecordNotFound, "error 1")
	err2 := errors.New(errors.ErrRecordNotFound, "error 2")
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
			t.Error("errors.Is() should work with Error")
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
			err:      errors.New(errors.ErrCatalogUnavailable, "missing"),
			code:     errors.ErrCatalogUnavailable,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrCatalogUnavailable, "missing"),
			code:     errors.ErrCatalogWrite,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrCatalogWrite, "denied"),
			code:     errors.ErrCatalogWrite,
			expected: true,
		},
		{
			name:     "plain_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrRecordNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrRecordNotFound,
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

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrCopy, "x")); got != errors.ErrCopy {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorCode(stderrors.New("x")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v", got)
	}
	if got := errors.GetErrorCode(nil); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(nil) = %v", got)
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("permission denied")
	backupErr := errors.Wrap(rootCause, errors.ErrCatalogWrite, "cannot back up catalog")

	if !errors.IsErrorCode(backupErr, errors.ErrCatalogWrite) {
		t.Error("top level should have ErrCatalogWrite code")
	}
	if !stderrors.Is(backupErr, rootCause) {
		t.Error("should find root cause with errors.Is")
	}
}
