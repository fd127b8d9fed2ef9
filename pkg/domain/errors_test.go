package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/llfsmgen/llfsmgen/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerationError_IsMatchesKind(t *testing.T) {
	err := domain.NewError(domain.KindInvalidLayout, "Found incorrect number of state layouts.")
	wrapped := fmt.Errorf("exporting: %w", err)

	assert.ErrorIs(t, wrapped, domain.ErrInvalidLayout)
	assert.NotErrorIs(t, wrapped, domain.ErrInvalidFormat)
	assert.Equal(t, "Found incorrect number of state layouts.", err.Error())

	kind, ok := domain.KindOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, domain.KindInvalidLayout, kind)
	assert.Equal(t, "InvalidLayout", kind.String())
}

func TestGenerationError_WrapKeepsCause(t *testing.T) {
	cause := errors.New("state Initial: bad code")
	err := domain.WrapError(domain.KindInvalidGeneration, "Cannot create valid machine from model.", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, domain.ErrInvalidGeneration)
	assert.Equal(t, "Cannot create valid machine from model. state Initial: bad code", err.Error())

	_, ok := domain.KindOf(cause)
	assert.False(t, ok)
}
