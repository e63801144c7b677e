package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func file(name string, size int64) DuplicateFile {
	return DuplicateFile{
		ID:        uuid.New(),
		ArticleID: uuid.New(),
		Name:      name,
		ByteSize:  size,
	}
}

func TestFindDuplicatesExactWinsOverWeakerPasses(t *testing.T) {
	a := file("cover.jpg", 1000)
	b := file("cover.jpg", 1000)
	c := file("cover.jpg", 2000) // same name, different size

	groups := FindDuplicates([]DuplicateFile{a, b, c})

	require.Len(t, groups, 1)
	assert.Equal(t, ConfidenceExact, groups[0].Confidence)
	assert.Len(t, groups[0].Files, 2)
	// c stays alone: its name-bucket partners were claimed by the exact pass
	for _, f := range groups[0].Files {
		assert.NotEqual(t, c.ID, f.ID)
	}
}

func TestFindDuplicatesNameOnly(t *testing.T) {
	a := file("intro.docx", 500)
	b := file("intro.docx", 900)

	groups := FindDuplicates([]DuplicateFile{a, b})

	require.Len(t, groups, 1)
	assert.Equal(t, ConfidenceNameOnly, groups[0].Confidence)
	assert.Len(t, groups[0].Files, 2)
}

func TestFindDuplicatesSizeOnly(t *testing.T) {
	a := file("one.jpg", 4096)
	b := file("two.jpg", 4096)

	groups := FindDuplicates([]DuplicateFile{a, b})

	require.Len(t, groups, 1)
	assert.Equal(t, ConfidenceSizeOnly, groups[0].Confidence)
}

func TestFindDuplicatesNameIsCaseInsensitive(t *testing.T) {
	a := file("Photo.JPG", 123)
	b := file("photo.jpg", 123)

	groups := FindDuplicates([]DuplicateFile{a, b})

	require.Len(t, groups, 1)
	assert.Equal(t, ConfidenceExact, groups[0].Confidence)
}

func TestFindDuplicatesFileClaimedOnce(t *testing.T) {
	a := file("a.jpg", 100)
	b := file("a.jpg", 100)
	c := file("c.jpg", 100) // shares size with a and b

	groups := FindDuplicates([]DuplicateFile{a, b, c})

	seen := map[uuid.UUID]int{}
	for _, g := range groups {
		for _, f := range g.Files {
			seen[f.ID]++
		}
	}
	for id, n := range seen {
		assert.Equalf(t, 1, n, "file %s appears in %d groups", id, n)
	}
}

func TestFindDuplicatesIgnoresSingletonsAndEmptyKeys(t *testing.T) {
	groups := FindDuplicates([]DuplicateFile{
		file("unique.jpg", 1),
		file("", 0),
		file("", 0), // empty name + zero size never matches
	})
	assert.Empty(t, groups)
}
