package service

import (
	"archive/zip"
	"bytes"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authorModel "majalahku_backend/internals/features/editorial/authors/model"
)

func buildBundle(t *testing.T, files map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func manifestJSON(t *testing.T, version int) []byte {
	t.Helper()
	data, err := sonic.Marshal(Manifest{
		Version:     version,
		GeneratedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return data
}

func TestImportBackupRejectsGarbage(t *testing.T) {
	_, err := ImportBackup(nil, []byte("not a zip at all"))
	assert.ErrorIs(t, err, ErrNotBackupBundle)
}

func TestImportBackupRejectsMissingManifest(t *testing.T) {
	bundle := buildBundle(t, map[string][]byte{
		"entities/authors.json": []byte("[]"),
	})
	_, err := ImportBackup(nil, bundle)
	assert.ErrorIs(t, err, ErrNotBackupBundle)
}

func TestImportBackupRejectsNewerManifestVersion(t *testing.T) {
	bundle := buildBundle(t, map[string][]byte{
		"manifest.json": manifestJSON(t, ManifestVersion+1),
	})
	_, err := ImportBackup(nil, bundle)
	assert.ErrorIs(t, err, ErrManifestVersion)
}

func TestImportBackupManifestOnlyBundle(t *testing.T) {
	bundle := buildBundle(t, map[string][]byte{
		"manifest.json": manifestJSON(t, ManifestVersion),
	})
	report, err := ImportBackup(nil, bundle)
	require.NoError(t, err)
	assert.Empty(t, report.Entities)
}

func TestImportBackupSkipsExistingRows(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	existing := authorModel.AuthorModel{
		AuthorID:   uuid.New(),
		AuthorName: "Siti Rahma",
	}
	fresh := authorModel.AuthorModel{
		AuthorID:   uuid.New(),
		AuthorName: "Budi Santoso",
	}
	authorsJSON, err := sonic.Marshal([]authorModel.AuthorModel{existing, fresh})
	require.NoError(t, err)

	bundle := buildBundle(t, map[string][]byte{
		"manifest.json":         manifestJSON(t, ManifestVersion),
		"entities/authors.json": authorsJSON,
	})

	// existing row: count=1, no insert
	mock.ExpectQuery(`SELECT count\(\*\) FROM "authors"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	// fresh row: count=0, then insert
	mock.ExpectQuery(`SELECT count\(\*\) FROM "authors"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "authors"`).
		WillReturnRows(sqlmock.NewRows([]string{"author_id"}).AddRow(fresh.AuthorID))
	mock.ExpectCommit()

	report, err := ImportBackup(gdb, bundle)
	require.NoError(t, err)

	result := report.Entities["authors"]
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, result.Failed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
