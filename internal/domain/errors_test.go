package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"not member", ErrNotGaaSMember, "not_gaas_member"},
		{"window closed", ErrRequestWindowClosed, "request_window_closed"},
		{"unknown session reads as closed", ErrSessionNotFound, "request_window_closed"},
		{"wrapped", fmt.Errorf("open request: %w", ErrNotGaaSMember), "not_gaas_member"},
		{"empty reason", ErrEmptyReason, "empty_reason"},
		{"foreign", errors.New("disk full"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(tt.err))
		})
	}
}
