package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnknownSport          = fmt.Errorf("%w: unknown sport", ErrNotFound)
	ErrRateLimited           = errors.New("rate limited")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// FetchFailedMessage is the only error text a DataProvider exposes.
const FetchFailedMessage = "Failed to fetch sports data"
