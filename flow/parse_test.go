package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSizes(t *testing.T) {
	sizes, err := ParseSizes(" 41, 42 ,41,43, ")
	require.NoError(t, err)
	assert.Equal(t, []string{"41", "42", "43"}, sizes, "duplicates collapse, first-seen order kept")

	_, err = ParseSizes("  ,  ,")
	assert.Error(t, err)
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"summer", "sale"}, ParseTags("summer, sale"))
	assert.Empty(t, ParseTags(" , "))
}

func TestParsePrice(t *testing.T) {
	n, err := ParsePrice(" 565000 ")
	require.NoError(t, err)
	assert.Equal(t, 565000, n)

	_, err = ParsePrice("cheap")
	assert.Error(t, err)
}

func TestParseStockList(t *testing.T) {
	quantities, err := ParseStockList("1, 2,0")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, quantities)

	_, err = ParseStockList("1,x,3")
	assert.Error(t, err, "one malformed token rejects the whole list")

	_, err = ParseStockList("")
	assert.Error(t, err)
}

func TestParseSKUList(t *testing.T) {
	skus, err := ParseSKUList("NK-J23-WB-M, NK-J23-B-M ")
	require.NoError(t, err)
	assert.Equal(t, []string{"NK-J23-WB-M", "NK-J23-B-M"}, skus)

	_, err = ParseSKUList("   ")
	assert.Error(t, err)
}
