package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryOrdinalOrder(t *testing.T) {
	cats := AllCategories()
	require.Len(t, cats, 6)
	for i := 1; i < len(cats); i++ {
		assert.Less(t, int(cats[i-1]), int(cats[i]), "categories must be declared in ordinal order")
	}
	assert.False(t, CategoryNone.Valid())
}

func TestParseCategory_RoundTrip(t *testing.T) {
	for _, c := range AllCategories() {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
		assert.NotEmpty(t, c.Title())
		assert.NotEqual(t, NoDominantDiagnosis, c.Diagnosis())
	}

	_, err := ParseCategory("procrastination")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategoryNoneCopy(t *testing.T) {
	assert.Equal(t, "none", CategoryNone.String())
	assert.Equal(t, NoDominantDiagnosis, CategoryNone.Diagnosis())
	assert.Equal(t, "No dominant pattern", CategoryNone.Title())
}
