// Copyright 2025 NetApp, Inc. All Rights Reserved.

package persistentstore

import "errors"

const (
	KeyNotFoundErr        = "Unable to find key"
	KeyExistsErr          = "Key already exists"
	UnavailableClusterErr = "Unavailable etcd cluster"
	NotSupported          = "Unsupported operation"
)

// Error is used to turn etcd errors into something that callers can understand without
// having to import the client library
type Error struct {
	Message string
	Key     string
}

func NewPersistentStoreError(message, key string) *Error {
	return &Error{
		Message: message,
		Key:     key,
	}
}

func (e *Error) Error() string {
	if e.Key == "" {
		return e.Message
	}
	return e.Message + ": " + e.Key
}

func matchMessage(err error, message string) bool {
	var storeErr *Error
	return errors.As(err, &storeErr) && storeErr.Message == message
}

func MatchKeyNotFoundErr(err error) bool {
	return matchMessage(err, KeyNotFoundErr)
}

func MatchKeyExistsErr(err error) bool {
	return matchMessage(err, KeyExistsErr)
}

func MatchUnavailableClusterErr(err error) bool {
	return matchMessage(err, UnavailableClusterErr)
}
