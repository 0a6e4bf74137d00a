package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(45, 2, 10)
	assert.Equal(t, 2, info.Page)
	assert.Equal(t, 5, info.TotalPages)
	assert.Equal(t, 10, info.Limit)
	assert.Equal(t, int64(45), info.Total)

	// empty result set on page 1 still reports one page
	info = NewPaginationInfo(0, 1, 10)
	assert.Equal(t, 1, info.TotalPages)

	// current page never exceeds total pages
	info = NewPaginationInfo(5, 9, 10)
	assert.Equal(t, 1, info.Page)
}

func TestSearchPattern(t *testing.T) {
	assert.Equal(t, "%maths%", SearchPattern("maths"))
	assert.Equal(t, `%50\% off\_now%`, SearchPattern("50% off_now"))
}
