package variantgenerrors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/govariant/variantgen/pkg/variantgenerrors"
)

func TestKindsAreDistinct(t *testing.T) {
	assert.NotErrorIs(t, variantgenerrors.ErrParse, variantgenerrors.ErrConfig)
	assert.NotErrorIs(t, variantgenerrors.ErrConfig, variantgenerrors.ErrParse)
}

func TestWrapped(t *testing.T) {
	err := fmt.Errorf("declaring: %w", variantgenerrors.ErrParse)
	assert.ErrorIs(t, err, variantgenerrors.ErrParse)
}
