// Copyright 2025 NetApp, Inc. All Rights Reserved.

package errors

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// ///////////////////////////////////////////////////////////////////////////
// Wrappers for standard library errors package
// ///////////////////////////////////////////////////////////////////////////

func New(message string) error {
	return errors.New(message)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

func Join(errs ...error) error {
	return errors.Join(errs...)
}

func formatMessage(message string, a ...any) string {
	if len(a) == 0 {
		return message
	}
	return fmt.Sprintf(message, a...)
}

func joinMessage(message string, inner error) string {
	if inner == nil || inner.Error() == "" {
		return message
	} else if message == "" {
		return inner.Error()
	}
	return fmt.Sprintf("%v; %v", message, inner.Error())
}

// ///////////////////////////////////////////////////////////////////////////
// notFoundError
// ///////////////////////////////////////////////////////////////////////////

type notFoundError struct {
	inner   error
	message string
}

func (e *notFoundError) Error() string { return joinMessage(e.message, e.inner) }

func (e *notFoundError) Unwrap() error { return e.inner }

func NotFoundError(message string, a ...any) error {
	return &notFoundError{message: formatMessage(message, a...)}
}

func WrapWithNotFoundError(err error, message string, a ...any) error {
	return &notFoundError{
		inner:   err,
		message: formatMessage(message, a...),
	}
}

func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *notFoundError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// alreadyExistsError
// ///////////////////////////////////////////////////////////////////////////

type alreadyExistsError struct {
	inner   error
	message string
}

func (e *alreadyExistsError) Error() string { return joinMessage(e.message, e.inner) }

func (e *alreadyExistsError) Unwrap() error { return e.inner }

func AlreadyExistsError(message string, a ...any) error {
	return &alreadyExistsError{message: formatMessage(message, a...)}
}

func IsAlreadyExistsError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *alreadyExistsError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// volumeBackendAPIError
// ///////////////////////////////////////////////////////////////////////////

// volumeBackendAPIError is the single failure type surfaced for errors raised by the array or
// by Unisphere.  StatusCode is zero when the failure did not come from an HTTP response.
type volumeBackendAPIError struct {
	inner      error
	message    string
	statusCode int
}

func (e *volumeBackendAPIError) Error() string { return joinMessage(e.message, e.inner) }

func (e *volumeBackendAPIError) Unwrap() error { return e.inner }

func (e *volumeBackendAPIError) StatusCode() int { return e.statusCode }

func VolumeBackendAPIError(message string, a ...any) error {
	return &volumeBackendAPIError{message: formatMessage(message, a...)}
}

func VolumeBackendAPIErrorWithStatus(statusCode int, message string, a ...any) error {
	return &volumeBackendAPIError{message: formatMessage(message, a...), statusCode: statusCode}
}

func WrapWithVolumeBackendAPIError(err error, message string, a ...any) error {
	return &volumeBackendAPIError{
		inner:   err,
		message: formatMessage(message, a...),
	}
}

func IsVolumeBackendAPIError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *volumeBackendAPIError
	return errors.As(err, &errPtr)
}

// BackendAPIStatusCode returns the HTTP status of the first backend API error in the chain, or zero.
func BackendAPIStatusCode(err error) int {
	var errPtr *volumeBackendAPIError
	if errors.As(err, &errPtr) {
		return errPtr.statusCode
	}
	return 0
}

// ///////////////////////////////////////////////////////////////////////////
// unsupportedError
// ///////////////////////////////////////////////////////////////////////////

type unsupportedError struct {
	message string
}

func (e *unsupportedError) Error() string { return e.message }

func UnsupportedError(message string, a ...any) error {
	return &unsupportedError{formatMessage(message, a...)}
}

func IsUnsupportedError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *unsupportedError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// unsupportedConfigError
// ///////////////////////////////////////////////////////////////////////////

type unsupportedConfigError struct {
	message string
}

func (e *unsupportedConfigError) Error() string { return e.message }

func UnsupportedConfigError(message string, a ...any) error {
	return &unsupportedConfigError{formatMessage(message, a...)}
}

func WrapUnsupportedConfigError(err error) error {
	if err == nil {
		return nil
	}
	return multierr.Combine(UnsupportedConfigError("unsupported config error"), err)
}

func IsUnsupportedConfigError(err error) bool {
	if err == nil {
		return false
	}
	for _, e := range multierr.Errors(err) {
		var errPtr *unsupportedConfigError
		if errors.As(e, &errPtr) {
			return true
		}
	}
	return false
}

// ///////////////////////////////////////////////////////////////////////////
// invalidInputError
// ///////////////////////////////////////////////////////////////////////////

type invalidInputError struct {
	message string
}

func (e *invalidInputError) Error() string { return e.message }

func InvalidInputError(message string, a ...any) error {
	return &invalidInputError{formatMessage(message, a...)}
}

func IsInvalidInputError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *invalidInputError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// unsupportedCapacityRangeError
// ///////////////////////////////////////////////////////////////////////////

type unsupportedCapacityRangeError struct {
	err     error
	message string
}

func (e *unsupportedCapacityRangeError) Unwrap() error { return e.err }

func (e *unsupportedCapacityRangeError) Error() string { return e.message }

func UnsupportedCapacityRangeError(err error) error {
	return &unsupportedCapacityRangeError{
		err, fmt.Sprintf("unsupported capacity range; %s", err.Error()),
	}
}

func HasUnsupportedCapacityRangeError(err error) (bool, *unsupportedCapacityRangeError) {
	if err == nil {
		return false, nil
	}
	var errPtr *unsupportedCapacityRangeError
	ok := errors.As(err, &errPtr)
	return ok, errPtr
}

// ///////////////////////////////////////////////////////////////////////////
// resourceInUseError
// ///////////////////////////////////////////////////////////////////////////

type resourceInUseError struct {
	message string
}

func (e *resourceInUseError) Error() string { return e.message }

func ResourceInUseError(message string, a ...any) error {
	return &resourceInUseError{formatMessage(message, a...)}
}

func IsResourceInUseError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *resourceInUseError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// connectionError
// ///////////////////////////////////////////////////////////////////////////

type connectionError struct {
	inner   error
	message string
}

func (e *connectionError) Error() string { return joinMessage(e.message, e.inner) }

func (e *connectionError) Unwrap() error { return e.inner }

func ConnectionError(message string, a ...any) error {
	return &connectionError{message: formatMessage(message, a...)}
}

func WrapWithConnectionError(err error, message string, a ...any) error {
	return &connectionError{
		inner:   err,
		message: formatMessage(message, a...),
	}
}

func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *connectionError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// timeoutError
// ///////////////////////////////////////////////////////////////////////////

type timeoutError struct {
	message string
}

func (e *timeoutError) Error() string { return e.message }

func TimeoutError(message string, a ...any) error {
	return &timeoutError{formatMessage(message, a...)}
}

func IsTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *timeoutError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// maxWaitExceededError
// ///////////////////////////////////////////////////////////////////////////

type maxWaitExceededError struct {
	message string
}

func (e *maxWaitExceededError) Error() string { return e.message }

func MaxWaitExceededError(message string, a ...any) error {
	return &maxWaitExceededError{formatMessage(message, a...)}
}

func IsMaxWaitExceededError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *maxWaitExceededError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// tooManyRequestsError
// ///////////////////////////////////////////////////////////////////////////

type tooManyRequestsError struct {
	inner   error
	message string
}

func (e *tooManyRequestsError) Error() string { return joinMessage(e.message, e.inner) }

func (e *tooManyRequestsError) Unwrap() error { return e.inner }

func TooManyRequestsError(message string, a ...any) error {
	return &tooManyRequestsError{message: formatMessage(message, a...)}
}

func IsTooManyRequestsError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *tooManyRequestsError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// typeAssertionError
// ///////////////////////////////////////////////////////////////////////////

type typeAssertionError struct {
	assertion string
}

func (e *typeAssertionError) Error() string {
	return fmt.Sprintf("could not perform assertion: %s", e.assertion)
}

func TypeAssertionError(assertion string) error {
	return &typeAssertionError{assertion}
}

// ///////////////////////////////////////////////////////////////////////////
// notReadyError
// ///////////////////////////////////////////////////////////////////////////

type notReadyError struct {
	message string
}

func (e *notReadyError) Error() string { return e.message }

func NotReadyError() error {
	return &notReadyError{
		"the orchestrator is initializing, please try again later",
	}
}

func IsNotReadyError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *notReadyError
	return errors.As(err, &errPtr)
}
