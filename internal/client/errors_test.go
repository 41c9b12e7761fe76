// internal/client/errors_test.go
package client

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOutOfStock(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{"spanish upstream message", &APIError{StatusCode: 400, Message: "El libro no tiene stock disponible"}, true},
		{"stock substring", &APIError{StatusCode: 400, Message: "insufficient stock"}, true},
		{"disponible substring", &APIError{StatusCode: 400, Message: "No hay ejemplares DISPONIBLES"}, true},
		{"unrelated rejection", &APIError{StatusCode: 400, Message: "student name is required"}, false},
		{"wrapped api error", fmt.Errorf("create loan: %w", &APIError{StatusCode: 400, Message: "sin stock"}), true},
		{"non-api error with matching text", errors.New("no stock"), false},
		{"nil", nil, false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOutOfStock(tt.err))
		})
	}
}
