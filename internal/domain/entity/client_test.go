package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitClientName(t *testing.T) {
	first, last := SplitClientName("Mia Wong")
	assert.Equal(t, "Mia", first)
	assert.Equal(t, "Wong", last)

	first, last = SplitClientName("Ana Maria Silva")
	assert.Equal(t, "Ana", first)
	assert.Equal(t, "Maria Silva", last)

	// A single-word name yields an empty last name.
	first, last = SplitClientName("Cher")
	assert.Equal(t, "Cher", first)
	assert.Empty(t, last)

	first, last = SplitClientName("   ")
	assert.Empty(t, first)
	assert.Empty(t, last)
}

func TestClientMatches(t *testing.T) {
	client := &Client{FirstName: "Mia", LastName: "Wong", Email: "mia@example.com", Phone: "555-0101"}

	assert.True(t, client.Matches("mia"))
	assert.True(t, client.Matches("WONG"))
	assert.True(t, client.Matches("example.com"))
	assert.True(t, client.Matches("555-01"))
	assert.False(t, client.Matches("liam"))
}
