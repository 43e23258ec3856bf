package app

import "errors"

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	var e InvalidRequestError
	return errors.As(err, &e)
}

// NotFoundError is returned when requested resource doesn't exist.
type NotFoundError string

// Error implements error interface
func (e NotFoundError) Error() string {
	return string(e)
}

// IsNotFoundError checks if given error is caused by missing resource.
func IsNotFoundError(err error) bool {
	var e NotFoundError
	return errors.As(err, &e)
}

// TooManyRequestsError is returned when the caller exceeded allowed request rate.
type TooManyRequestsError string

// Error implements error interface
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// IsTooManyRequestsError checks if given error is caused by exceeded request rate.
func IsTooManyRequestsError(err error) bool {
	var e TooManyRequestsError
	return errors.As(err, &e)
}

// UnavailableError is returned when data couldn't be retrieved from the remote API.
// It wraps the underlying cause.
type UnavailableError struct {
	Err error
}

// Error implements error interface
func (e UnavailableError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e UnavailableError) Unwrap() error {
	return e.Err
}

// IsUnavailableError checks if given error is caused by remote data being unavailable.
func IsUnavailableError(err error) bool {
	var e UnavailableError
	return errors.As(err, &e)
}
