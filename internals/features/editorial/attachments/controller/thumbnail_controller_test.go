package controller

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/chai2010/webp"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"majalahku_backend/internals/constants"
	"majalahku_backend/internals/helpers/storage"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 80, B: 40, A: 255})
		}
	}
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func attachmentRow(id uuid.UUID, kind, name, key string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"attachment_id", "attachment_article_id", "attachment_kind",
		"attachment_original_name", "attachment_object_key",
		"attachment_content_type", "attachment_byte_size",
	}).AddRow(id, uuid.New(), kind, name, key, "image/webp", int64(1234))
}

func TestGetThumbnailScalesPhoto(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "attachments"`).
		WillReturnRows(attachmentRow(id, constants.AttachmentKindPhoto, "cover.png", "attachments/a/cover.png"))

	blob := &storage.MockBlobService{
		OpenFn: func(ctx context.Context, key string) (io.ReadCloser, error) {
			assert.Equal(t, "attachments/a/cover.png", key)
			return io.NopCloser(bytes.NewReader(pngBytes(t, 640, 480))), nil
		},
	}

	app := fiber.New()
	ctrl := NewAttachmentController(db, blob)
	app.Get("/attachments/:id/thumbnail", ctrl.GetThumbnail)

	resp, err := app.Test(httptest.NewRequest("GET", "/attachments/"+id.String()+"/thumbnail?w=100&h=100", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/webp", resp.Header.Get(fiber.HeaderContentType))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	img, err := webp.Decode(bytes.NewReader(body))
	require.NoError(t, err)
	assert.LessOrEqual(t, img.Bounds().Dx(), 100)
	assert.LessOrEqual(t, img.Bounds().Dy(), 100)
}

func TestGetThumbnailRejectsDocuments(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "attachments"`).
		WillReturnRows(attachmentRow(id, constants.AttachmentKindDocument, "draft.docx", "attachments/a/draft.docx"))

	app := fiber.New()
	ctrl := NewAttachmentController(db, &storage.MockBlobService{})
	app.Get("/attachments/:id/thumbnail", ctrl.GetThumbnail)

	resp, err := app.Test(httptest.NewRequest("GET", "/attachments/"+id.String()+"/thumbnail", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
