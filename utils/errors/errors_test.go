// Copyright 2025 NetApp, Inc. All Rights Reserved.

package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
)

func TestStandardLibraryWrappers(t *testing.T) {
	base := New("base")
	wrapped := fmt.Errorf("outer: %w", base)

	assert.Equal(t, "base", base.Error())
	assert.True(t, Is(wrapped, base))
	assert.Equal(t, base, Unwrap(wrapped))

	joined := Join(base, New("other"))
	assert.True(t, Is(joined, base))

	var target *notFoundError
	assert.True(t, As(fmt.Errorf("x: %w", NotFoundError("y")), &target))
}

func TestNotFoundError(t *testing.T) {
	err := NotFoundError("volume %s not found", "00123")
	assert.Equal(t, "volume 00123 not found", err.Error())
	assert.True(t, IsNotFoundError(err))
	assert.True(t, IsNotFoundError(fmt.Errorf("outer; %w", err)))
	assert.False(t, IsNotFoundError(New("plain")))
	assert.False(t, IsNotFoundError(nil))

	// A message with a percent sign but no args is left alone
	assert.Equal(t, "100% missing", NotFoundError("100% missing").Error())

	inner := New("inner")
	wrapped := WrapWithNotFoundError(inner, "sg %s", "OS-sg")
	assert.Equal(t, "sg OS-sg; inner", wrapped.Error())
	assert.True(t, Is(wrapped, inner))

	assert.Equal(t, "inner", WrapWithNotFoundError(inner, "").Error())
}

func TestAlreadyExistsError(t *testing.T) {
	err := AlreadyExistsError("masking view %s exists", "OS-host-pg-MV")
	assert.True(t, IsAlreadyExistsError(err))
	assert.False(t, IsAlreadyExistsError(nil))
	assert.False(t, IsNotFoundError(err))
}

func TestVolumeBackendAPIError(t *testing.T) {
	err := VolumeBackendAPIError("job %s failed", "1234")
	assert.True(t, IsVolumeBackendAPIError(err))
	assert.Equal(t, 0, BackendAPIStatusCode(err))

	withStatus := VolumeBackendAPIErrorWithStatus(http.StatusBadRequest, "bad request")
	assert.Equal(t, http.StatusBadRequest, BackendAPIStatusCode(fmt.Errorf("x: %w", withStatus)))

	inner := NotFoundError("sg missing")
	wrapped := WrapWithVolumeBackendAPIError(inner, "cannot attach")
	assert.True(t, IsVolumeBackendAPIError(wrapped))
	assert.True(t, IsNotFoundError(wrapped), "inner error must be reachable")
	assert.Equal(t, "cannot attach; sg missing", wrapped.Error())

	assert.False(t, IsVolumeBackendAPIError(nil))
	assert.Equal(t, 0, BackendAPIStatusCode(nil))
}

func TestUnsupportedConfigError(t *testing.T) {
	assert.Nil(t, WrapUnsupportedConfigError(nil))

	err := WrapUnsupportedConfigError(New("bad srp"))
	assert.True(t, IsUnsupportedConfigError(err))
	assert.Contains(t, err.Error(), "bad srp")

	assert.True(t, IsUnsupportedConfigError(UnsupportedConfigError("x")))
	assert.False(t, IsUnsupportedConfigError(New("x")))
	assert.False(t, IsUnsupportedConfigError(nil))
}

func TestUnsupportedCapacityRangeError(t *testing.T) {
	err := UnsupportedCapacityRangeError(New("requested size is smaller"))
	ok, capErr := HasUnsupportedCapacityRangeError(fmt.Errorf("resize: %w", err))
	assert.True(t, ok)
	assert.NotNil(t, capErr)
	assert.Equal(t, "unsupported capacity range; requested size is smaller", err.Error())

	ok, capErr = HasUnsupportedCapacityRangeError(New("other"))
	assert.False(t, ok)
	assert.Nil(t, capErr)

	ok, _ = HasUnsupportedCapacityRangeError(nil)
	assert.False(t, ok)
}

func TestSimpleTypedErrors(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"unsupported", UnsupportedError("no %s", "metro"), IsUnsupportedError},
		{"invalidInput", InvalidInputError("bad"), IsInvalidInputError},
		{"resourceInUse", ResourceInUseError("attached to %d hosts", 2), IsResourceInUseError},
		{"timeout", TimeoutError("timed out"), IsTimeoutError},
		{"maxWait", MaxWaitExceededError("job %s", "1"), IsMaxWaitExceededError},
		{"tooManyRequests", TooManyRequestsError("slow down"), IsTooManyRequestsError},
		{"connection", ConnectionError("refused"), IsConnectionError},
		{"notReady", NotReadyError(), IsNotReadyError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.True(t, test.check(test.err))
			assert.True(t, test.check(fmt.Errorf("wrapped: %w", test.err)))
			assert.False(t, test.check(New("plain")))
			assert.False(t, test.check(nil))
		})
	}
}

func TestConnectionError_Wrap(t *testing.T) {
	inner := New("dial tcp: refused")
	err := WrapWithConnectionError(inner, "unisphere %s unreachable", "10.0.0.1")
	assert.Equal(t, "unisphere 10.0.0.1 unreachable; dial tcp: refused", err.Error())
	assert.True(t, Is(err, inner))
}

func TestTypeAssertionError(t *testing.T) {
	err := TypeAssertionError("interface{}.(string)")
	assert.Equal(t, "could not perform assertion: interface{}.(string)", err.Error())
}

func TestMultierrAggregation(t *testing.T) {
	err := multierr.Combine(NotFoundError("a"), ResourceInUseError("b"))
	assert.True(t, IsNotFoundError(err))
	assert.True(t, IsResourceInUseError(err))
	assert.Len(t, multierr.Errors(err), 2)
}
