package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/Aricalhe/podbundle/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrInvalidArtifactPath, "path escapes sandbox")

	assert.Equal(t, errors.ErrInvalidArtifactPath, err.Code)
	assert.Equal(t, "[INVALID_ARTIFACT_PATH] path escapes sandbox", err.Error())
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("disk full")
	err := errors.Wrap(inner, errors.ErrGeneratorWrite, "writing resources script")

	require.NotNil(t, err)
	assert.Equal(t, "[GENERATOR_WRITE] writing resources script: disk full", err.Error())
	assert.Equal(t, inner, stderrors.Unwrap(err))
}

func TestWrapNil(t *testing.T) {
	err := errors.Wrap(nil, errors.ErrGeneratorWrite, "ignored")
	assert.Nil(t, err)
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrMissingConfiguration, "no settings for %q", "Debug")
	wrapped := fmt.Errorf("install pass: %w", err)

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrMissingConfiguration))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrGeneratorWrite))
	assert.False(t, errors.IsErrorCode(fmt.Errorf("plain"), errors.ErrMissingConfiguration))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrInvalidArtifactPath, "cannot relativize").
		WithDetail("pod_target", "BananaLib")

	details := errors.GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "BananaLib", details["pod_target"])
}

func TestGetErrorCodeFallback(t *testing.T) {
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(fmt.Errorf("plain")))
}
