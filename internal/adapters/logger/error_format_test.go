package logger_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/depsnap/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestFormatErrorChain(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "single standard error",
			err:  errors.New("simple error"),
			want: "Error: simple error",
		},
		{
			name: "zerr single error",
			err:  zerr.New("zerr error"),
			want: "Error: zerr error",
		},
		{
			name: "zerr wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(
					errors.New("root cause"),
					"middle layer",
				),
				"outer layer",
			),
			want: "Error: outer layer\n\n  Caused by:\n    → middle layer\n    → root cause",
		},
		{
			name: "stdlib chain renders flat",
			// fmt.Errorf errors don't support chain traversal like zerr.
			err:  fmt.Errorf("failed to initialize service: %w", errors.New("connection refused")),
			want: "Error: failed to initialize service: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorChain(tt.err))
		})
	}
}
