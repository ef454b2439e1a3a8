package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	t.Run("empty review list is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, AverageRating(nil))
		assert.Equal(t, 0.0, AverageRating([]Review{}))
	})

	t.Run("mean of ratings", func(t *testing.T) {
		reviews := []Review{{Rating: 4}, {Rating: 5}}
		assert.Equal(t, 4.5, AverageRating(reviews))
	})

	t.Run("rounded to one decimal", func(t *testing.T) {
		reviews := []Review{{Rating: 5}, {Rating: 4}, {Rating: 4}} // 4.333...
		assert.Equal(t, 4.3, AverageRating(reviews))

		reviews = []Review{{Rating: 5}, {Rating: 5}, {Rating: 4}} // 4.666...
		assert.Equal(t, 4.7, AverageRating(reviews))
	})

	t.Run("product method delegates", func(t *testing.T) {
		p := &Product{Reviews: []Review{{Rating: 3}, {Rating: 4}}}
		assert.Equal(t, 3.5, p.AverageRating())
	})
}

func TestSortKey_Validate(t *testing.T) {
	for _, k := range SortKeys {
		assert.NoError(t, k.Validate())
	}
	assert.Error(t, SortKey("Cheapest First").Validate())
}

func TestCategory_Validate(t *testing.T) {
	assert.NoError(t, CategoryAll.Validate())
	assert.NoError(t, CategorySoundbars.Validate())
	assert.Error(t, Category("toasters").Validate())
}

func TestProduct_InStock(t *testing.T) {
	assert.True(t, (&Product{Stock: 1}).InStock())
	assert.False(t, (&Product{Stock: 0}).InStock())
}
