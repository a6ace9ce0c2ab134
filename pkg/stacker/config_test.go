package stacker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedColumns(t *testing.T) {
	for _, d := range []struct {
		columns, width int
		want           []int
	}{
		{7, 3, []int{2, 3, 4}},
		{7, 1, []int{3}},
		{7, 7, []int{0, 1, 2, 3, 4, 5, 6}},
		{8, 3, []int{2, 3, 4}},
		{4, 2, []int{1, 2}},
	} {
		c := DefaultConfig()
		c.Columns = d.columns
		c.StartingWidth = d.width

		assert.NoError(t, c.Validate())
		assert.Equal(t, d.want, c.seedColumns(), "%d columns, width %d", d.columns, d.width)
	}
}

func TestValidateMessage(t *testing.T) {
	c := DefaultConfig()
	c.StartingWidth = 9

	err := c.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.EqualError(t, err, "invalid configuration: starting width 9 exceeds 7 columns")
}
