package about

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValues(t *testing.T) {
	got := Values()
	require.Len(t, got, 4)
	assert.Equal(t, "Customer First", got[0].Title)

	for _, v := range got {
		assert.NotEmpty(t, v.Icon, v.Title)
		assert.NotEmpty(t, v.Description, v.Title)
	}
}

func TestStats(t *testing.T) {
	got := Stats()
	require.Len(t, got, 3)

	labels := []string{got[0].Label, got[1].Label, got[2].Label}
	assert.Equal(t, []string{"Founded", "Active Users", "Countries"}, labels)
}

func TestListsAreCopies(t *testing.T) {
	v := Values()
	v[0].Title = "Changed"
	s := Stats()
	s[0].Value = "1900"

	assert.Equal(t, "Customer First", Values()[0].Title)
	assert.Equal(t, "2019", Stats()[0].Value)
}
