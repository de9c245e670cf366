package catalog

import (
	"testing"

	"github.com/jonathan/jobboard/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_ShipsSixListings(t *testing.T) {
	c := Default()
	require.Equal(t, 6, c.Len())

	jobs := c.All()
	ids := make([]int, len(jobs))
	for i, job := range jobs {
		ids[i] = job.ID
		assert.True(t, job.Type.Valid(), "job %d has invalid type %q", job.ID, job.Type)
		assert.NotEmpty(t, job.Responsibilities)
		assert.NotEmpty(t, job.Qualifications)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids)
}

func TestGet(t *testing.T) {
	c := Default()

	job, ok := c.Get(4)
	require.True(t, ok)
	assert.Equal(t, "Data Scientist", job.Title)
	assert.Equal(t, "Austin, TX", job.Location)

	_, ok = c.Get(99)
	assert.False(t, ok)
}

func TestLookup(t *testing.T) {
	c := Default()

	job, ok := c.Lookup("6")
	require.True(t, ok)
	assert.Equal(t, "ServerSide Solutions", job.Company)

	_, ok = c.Lookup("six")
	assert.False(t, ok)
	_, ok = c.Lookup("")
	assert.False(t, ok)
}

func TestCatalog_IsReadOnly(t *testing.T) {
	input := []types.Job{{ID: 1, Title: "Original", Responsibilities: []string{"a"}}}
	c := New(input)

	input[0].Title = "Changed"
	input[0].Responsibilities[0] = "changed"

	job, _ := c.Get(1)
	assert.Equal(t, "Original", job.Title)
	assert.Equal(t, "a", job.Responsibilities[0])

	all := c.All()
	all[0].Responsibilities[0] = "mutated"
	again, _ := c.Get(1)
	assert.Equal(t, "a", again.Responsibilities[0])
}

func TestNew_DuplicateIDKeepsFirst(t *testing.T) {
	c := New([]types.Job{{ID: 7, Title: "first"}, {ID: 7, Title: "second"}})
	assert.Equal(t, 1, c.Len())

	job, _ := c.Get(7)
	assert.Equal(t, "first", job.Title)
}
