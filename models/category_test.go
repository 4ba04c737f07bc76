package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "UNKNOWN", Unknown.String())
	assert.Equal(t, "CLOTHS", Cloths.String())
	assert.Equal(t, "FOOD", Food.String())
	assert.Equal(t, "HOUSEWARES", Housewares.String())
	assert.Equal(t, "AUTOMOTIVE", Automotive.String())
	assert.Equal(t, "TOOLS", Tools.String())
	assert.Equal(t, "CATEGORY(42)", Category(42).String())
}

func TestParseCategoryRoundTrip(t *testing.T) {
	for _, category := range Categories() {
		parsed, err := ParseCategory(category.String())
		require.NoError(t, err)
		assert.Equal(t, category, parsed)
	}
}

func TestParseCategoryUnknownName(t *testing.T) {
	_, err := ParseCategory("GARDENING")
	require.Error(t, err)

	var validationErr *DataValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "category", validationErr.Field)
}

func TestCategoryValid(t *testing.T) {
	for _, category := range Categories() {
		assert.True(t, category.Valid())
	}
	assert.False(t, Category(-1).Valid())
	assert.False(t, Category(6).Valid())
}

func TestCategoryDefaultIsUnknown(t *testing.T) {
	var product Product
	assert.Equal(t, Unknown, product.Category)
}
