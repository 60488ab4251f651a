package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &FetchError{Kind: TransportFailure, Op: "list", URL: "http://example.test/list", Err: cause}

	assert.Equal(t, "list transport failure for http://example.test/list: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)

	withStatus := &FetchError{Kind: TransportFailure, Op: "detail", URL: "u", StatusCode: 500, Err: cause}
	assert.Contains(t, withStatus.Error(), "status 500")
}

func TestFailureKindOf(t *testing.T) {
	decode := fmt.Errorf("wrapped: %w", &FetchError{Kind: DecodeFailure, Err: errors.New("bad")})

	kind, ok := FailureKindOf(decode)
	assert.True(t, ok)
	assert.Equal(t, DecodeFailure, kind)
	assert.True(t, IsDecodeFailure(decode))
	assert.False(t, IsTransportFailure(decode))

	_, ok = FailureKindOf(ErrUserAbsent)
	assert.False(t, ok)
	assert.False(t, IsTransportFailure(nil))
}

func TestFailureKind_String(t *testing.T) {
	assert.Equal(t, "transport", TransportFailure.String())
	assert.Equal(t, "decode", DecodeFailure.String())
	assert.Equal(t, "unknown(7)", FailureKind(7).String())
}

func TestSentinels(t *testing.T) {
	wrapped := fmt.Errorf("%w: %q", ErrTokenCycle, "abc")
	assert.ErrorIs(t, wrapped, ErrTokenCycle)
	assert.NotErrorIs(t, wrapped, ErrPageLimit)
	assert.Equal(t, "user detail absent", ErrUserAbsent.Error())
}
