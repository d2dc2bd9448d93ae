package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lodge/internal/domains/booking/model"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from model.Status
		to   model.Status
		want bool
	}{
		{name: "pending to confirmed", from: model.StatusPending, to: model.StatusConfirmed, want: true},
		{name: "pending to cancelled", from: model.StatusPending, to: model.StatusCancelled, want: true},
		{name: "pending to checked in skips confirmation", from: model.StatusPending, to: model.StatusCheckedIn, want: false},
		{name: "confirmed to checked in", from: model.StatusConfirmed, to: model.StatusCheckedIn, want: true},
		{name: "confirmed to no show", from: model.StatusConfirmed, to: model.StatusNoShow, want: true},
		{name: "confirmed to checked out", from: model.StatusConfirmed, to: model.StatusCheckedOut, want: false},
		{name: "checked in to checked out", from: model.StatusCheckedIn, to: model.StatusCheckedOut, want: true},
		{name: "checked in to cancelled", from: model.StatusCheckedIn, to: model.StatusCancelled, want: true},
		{name: "checked in to no show", from: model.StatusCheckedIn, to: model.StatusNoShow, want: false},
		{name: "checked out is terminal", from: model.StatusCheckedOut, to: model.StatusCancelled, want: false},
		{name: "cancelled is terminal", from: model.StatusCancelled, to: model.StatusConfirmed, want: false},
		{name: "no show is terminal", from: model.StatusNoShow, to: model.StatusConfirmed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, model.StatusPending.Terminal())
	assert.False(t, model.StatusConfirmed.Terminal())
	assert.False(t, model.StatusCheckedIn.Terminal())
	assert.True(t, model.StatusCheckedOut.Terminal())
	assert.True(t, model.StatusCancelled.Terminal())
	assert.True(t, model.StatusNoShow.Terminal())
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, model.StatusPending.Valid())
	assert.False(t, model.Status("UNKNOWN").Valid())
	assert.False(t, model.Status("").Valid())
}

func TestBlockingStatuses(t *testing.T) {
	blocking := model.BlockingStatuses()

	assert.ElementsMatch(t, []string{"PENDING", "CONFIRMED", "CHECKED_IN"}, blocking)
}
