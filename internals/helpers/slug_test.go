package helper

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Laporan Khusus: Banjir 2026!  ", "laporan-khusus-banjir-2026"},
		{"---already--dashed---", "already-dashed"},
		{"ALL CAPS", "all-caps"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, GenerateSlug(tc.in), "input %q", tc.in)
	}
}

func slugMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return gdb, mock
}

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestGenerateUniqueSlugFirstTry(t *testing.T) {
	gdb, mock := slugMockDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "articles"`).WillReturnRows(countRows(0))

	slug, err := GenerateUniqueSlug(gdb, SlugOptions{
		Table:            "articles",
		SlugColumn:       "article_slug",
		SoftDeleteColumn: "article_deleted_at",
	}, "Budaya Kopi Nusantara")
	require.NoError(t, err)
	assert.Equal(t, "budaya-kopi-nusantara", slug)
}

func TestGenerateUniqueSlugSuffixesOnCollision(t *testing.T) {
	gdb, mock := slugMockDB(t)
	// base taken, base-2 taken, base-3 free
	mock.ExpectQuery(`SELECT count\(\*\) FROM "articles"`).WillReturnRows(countRows(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "articles"`).WillReturnRows(countRows(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "articles"`).WillReturnRows(countRows(0))

	slug, err := GenerateUniqueSlug(gdb, SlugOptions{
		Table:      "articles",
		SlugColumn: "article_slug",
	}, "Budaya Kopi")
	require.NoError(t, err)
	assert.Equal(t, "budaya-kopi-3", slug)
}

func TestGenerateUniqueSlugEmptyBaseUsesDefault(t *testing.T) {
	gdb, mock := slugMockDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "articles"`).WillReturnRows(countRows(0))

	slug, err := GenerateUniqueSlug(gdb, SlugOptions{
		Table:       "articles",
		SlugColumn:  "article_slug",
		DefaultBase: "artikel",
	}, "!!!")
	require.NoError(t, err)
	assert.Equal(t, "artikel", slug)
}
