package repository

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"lodge/shared/failure"
)

func TestMapInsertError(t *testing.T) {
	t.Run("exclusion violation becomes a conflict", func(t *testing.T) {
		driverErr := &pq.Error{Code: "23P01", Constraint: "bookings_no_overlap"}
		err := mapInsertError(fmt.Errorf("failed to insert entity (booking): %w", driverErr))

		var f *failure.Failure
		assert.ErrorAs(t, err, &f)
		assert.Equal(t, http.StatusConflict, f.Code)
	})

	t.Run("other driver errors pass through", func(t *testing.T) {
		driverErr := &pq.Error{Code: "23503"}
		wrapped := fmt.Errorf("failed to insert entity (booking): %w", driverErr)

		assert.Equal(t, wrapped, mapInsertError(wrapped))
	})

	t.Run("plain errors pass through", func(t *testing.T) {
		plain := errors.New("connection reset")

		assert.Equal(t, plain, mapInsertError(plain))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, mapInsertError(nil))
	})
}
