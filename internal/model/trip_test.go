package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name    string
		from    TripStatus
		to      TripStatus
		allowed bool
	}{
		{"todo to in-progress", TripStatusTodo, TripStatusInProgress, true},
		{"todo to completed", TripStatusTodo, TripStatusCompleted, true},
		{"in-progress to completed", TripStatusInProgress, TripStatusCompleted, true},
		{"in-progress back to todo", TripStatusInProgress, TripStatusTodo, false},
		{"completed back to in-progress", TripStatusCompleted, TripStatusInProgress, false},
		{"completed back to todo", TripStatusCompleted, TripStatusTodo, false},
		{"completed re-applied", TripStatusCompleted, TripStatusCompleted, false},
		{"todo re-applied", TripStatusTodo, TripStatusTodo, true},
		{"in-progress re-applied", TripStatusInProgress, TripStatusInProgress, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to))
		})
	}
}

func TestTripStatusValid(t *testing.T) {
	assert.True(t, TripStatusTodo.Valid())
	assert.True(t, TripStatusInProgress.Valid())
	assert.True(t, TripStatusCompleted.Valid())
	assert.False(t, TripStatus("cancelled").Valid())
	assert.False(t, TripStatus("").Valid())
}

func TestTripDistance(t *testing.T) {
	start := 1000.0
	end := 1250.0

	trip := Trip{StartMileage: &start, EndMileage: &end}
	assert.Equal(t, 250.0, trip.Distance())

	assert.Zero(t, (&Trip{StartMileage: &start}).Distance())
	assert.Zero(t, (&Trip{EndMileage: &end}).Distance())
	assert.Zero(t, (&Trip{}).Distance())
}
