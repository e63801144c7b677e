package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseOn runs ParseFiber against a real Fiber ctx for the given query string.
func parseOn(t *testing.T, query string, opt Options) Params {
	t.Helper()
	app := fiber.New()
	var got Params
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParseFiber(c, "created_at", "desc", opt)
		return c.SendString("ok")
	})
	req := httptest.NewRequest("GET", "/?"+query, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	return got
}

func TestParseFiberDefaults(t *testing.T) {
	p := parseOn(t, "", DefaultOpts)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 25, p.PerPage)
	assert.Equal(t, "created_at", p.SortBy)
	assert.Equal(t, "desc", p.SortOrder)
	assert.False(t, p.All)
}

func TestParseFiberCapsPerPage(t *testing.T) {
	p := parseOn(t, "page=3&per_page=9999", DefaultOpts)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 200, p.PerPage)
	assert.Equal(t, 400, p.Offset())
}

func TestParseFiberAllOnlyWhenAllowed(t *testing.T) {
	p := parseOn(t, "per_page=all", DefaultOpts)
	assert.False(t, p.All)
	assert.Equal(t, 25, p.PerPage)

	p = parseOn(t, "per_page=all&page=7", ExportOpts)
	assert.True(t, p.All)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10_000, p.PerPage)
}

func TestSafeOrderClauseWhitelist(t *testing.T) {
	allowed := map[string]string{
		"title":      "article_title",
		"created_at": "article_created_at",
	}

	p := Params{SortBy: "title", SortOrder: "asc"}
	clause, err := p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "ORDER BY article_title ASC", clause)

	// unknown sort key falls back to the default column
	p = Params{SortBy: "article_title; DROP TABLE articles", SortOrder: "desc"}
	clause, err = p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "ORDER BY article_created_at DESC", clause)
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(101, Params{Page: 2, PerPage: 25})
	assert.Equal(t, 5, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
	require.NotNil(t, meta.NextPage)
	require.NotNil(t, meta.PrevPage)
	assert.Equal(t, 3, *meta.NextPage)
	assert.Equal(t, 1, *meta.PrevPage)

	meta = BuildMeta(0, Params{Page: 1, PerPage: 25})
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}
