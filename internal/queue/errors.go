package queue

import "errors"

var (
	// ErrInvalidCapacity is returned when a ring is constructed with a
	// capacity below one.
	ErrInvalidCapacity = errors.New("queue: capacity must be positive")

	// ErrInvalidBatch is returned when a batched ring is constructed with a
	// batch size outside [1, capacity].
	ErrInvalidBatch = errors.New("queue: batch size must be between 1 and capacity")
)
