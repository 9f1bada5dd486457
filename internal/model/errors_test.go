package model

import (
	"errors"
	"testing"
)

// TestAPIError_ImplementsError はAPIErrorがerrorとして扱えることを検証する。
func TestAPIError_ImplementsError(t *testing.T) {
	var err error = NewActivityNotFoundError()

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatal("expected errors.As to extract *APIError")
	}
	if apiErr.Code != ErrCodeActivityNotFound {
		t.Errorf("code = %q, want %q", apiErr.Code, ErrCodeActivityNotFound)
	}
}

// TestErrorConstructors_DetailMessages はクライアント向けメッセージがAPI契約と一致することを検証する。
func TestErrorConstructors_DetailMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{"activity not found", NewActivityNotFoundError(), "Activity not found"},
		{"already signed up", NewAlreadySignedUpError(), "Student already signed up for this activity"},
		{"not registered", NewNotRegisteredError(), "Student is not registered for this activity"},
		{"email required", NewEmailRequiredError(), "email is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Detail != tt.want {
				t.Errorf("detail = %q, want %q", tt.err.Detail, tt.want)
			}
		})
	}
}
