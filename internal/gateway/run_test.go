package gateway

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/creatortune-gateway/internal/generation"
	"github.com/phrazzld/creatortune-gateway/internal/operation"
)

func TestTypedResult(t *testing.T) {
	want := &operation.AuditResult{OverallScore: 40}
	got, err := typedResult[operation.AuditResult](operation.KindYouTubeAudit, want)
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestTypedResultMismatchIsValidationError(t *testing.T) {
	spec, ok := operation.Lookup(operation.KindYouTubeAudit)
	require.True(t, ok)

	got, err := typedResult[operation.ChatResult](operation.KindYouTubeAudit, &operation.AuditResult{})

	assert.Nil(t, got)
	var gerr *generation.Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, generation.KindValidation, gerr.Kind)
	assert.Equal(t, spec.FailureMessage, gerr.Message)
	assert.Equal(t, string(operation.KindYouTubeAudit), gerr.Op)
	assert.ErrorIs(t, err, generation.ErrValidation)
	assert.Contains(t, gerr.Err.Error(), "*operation.AuditResult")
}

func TestTypedResultNilOutput(t *testing.T) {
	_, err := typedResult[operation.AuditResult](operation.KindYouTubeAudit, nil)
	assert.Equal(t, generation.KindValidation, generation.KindOf(err))
}
