package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalStringStoresNilForAbsentValues(t *testing.T) {
	assert.Nil(t, optionalString(""))

	got := optionalString("9876543210")
	require.NotNil(t, got)
	assert.Equal(t, "9876543210", *got)
}

func TestOptionalStringDistinctAbsentValuesDoNotCollide(t *testing.T) {
	// Two accounts registered without a mobile must both persist NULL, not
	// two copies of "" that the unique index would reject.
	first := optionalString("")
	second := optionalString("")
	assert.Nil(t, first)
	assert.Nil(t, second)
}
