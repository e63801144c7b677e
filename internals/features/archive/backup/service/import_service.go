package service

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"

	articleModel "majalahku_backend/internals/features/editorial/articles/model"
	attachmentModel "majalahku_backend/internals/features/editorial/attachments/model"
	authorModel "majalahku_backend/internals/features/editorial/authors/model"
	rateModel "majalahku_backend/internals/features/payments/rates/model"
	issueModel "majalahku_backend/internals/features/publication/issues/model"
	userModel "majalahku_backend/internals/features/users/auth/model"
)

var (
	ErrNotBackupBundle = errors.New("not a backup bundle")
	ErrManifestVersion = errors.New("unsupported manifest version")
)

// EntityResult is the per-table outcome of an import run.
type EntityResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

type ImportReport struct {
	Manifest Manifest                `json:"manifest"`
	Entities map[string]EntityResult `json:"entities"`
}

// importRows inserts rows one by one in dependency order. Existing ids
// are never overwritten: skip and count. A failing row logs and counts,
// the run keeps going.
func importRows[T any](db *gorm.DB, name string, data []byte, idOf func(*T) uuid.UUID, pkColumn string, result *EntityResult) {
	var rows []T
	if err := sonic.Unmarshal(data, &rows); err != nil {
		log.Printf("[IMPORT ERROR] %s: decode failed: %v", name, err)
		result.Failed++
		return
	}

	for i := range rows {
		id := idOf(&rows[i])

		var n int64
		if err := db.Unscoped().Model(new(T)).
			Where(pkColumn+" = ?", id).
			Count(&n).Error; err != nil {
			log.Printf("[IMPORT ERROR] %s %s: existence check failed: %v", name, id, err)
			result.Failed++
			continue
		}
		if n > 0 {
			result.Skipped++
			continue
		}

		if err := db.Create(&rows[i]).Error; err != nil {
			log.Printf("[IMPORT ERROR] %s %s: insert failed: %v", name, id, err)
			result.Failed++
			continue
		}
		result.Imported++
	}
}

func readBundleFile(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

// ImportBackup restores a bundle produced by ExportBackup. Entities load
// in dependency order; missing entity files are simply absent from the
// report.
func ImportBackup(db *gorm.DB, bundle []byte) (*ImportReport, error) {
	zr, err := zip.NewReader(bytes.NewReader(bundle), int64(len(bundle)))
	if err != nil {
		return nil, ErrNotBackupBundle
	}

	manifestRaw, err := readBundleFile(zr, "manifest.json")
	if err != nil || manifestRaw == nil {
		return nil, ErrNotBackupBundle
	}
	var manifest Manifest
	if err := sonic.Unmarshal(manifestRaw, &manifest); err != nil {
		return nil, ErrNotBackupBundle
	}
	if manifest.Version > ManifestVersion {
		return nil, fmt.Errorf("%w: %d", ErrManifestVersion, manifest.Version)
	}

	report := &ImportReport{
		Manifest: manifest,
		Entities: map[string]EntityResult{},
	}

	run := func(name string, do func(data []byte, result *EntityResult)) error {
		data, err := readBundleFile(zr, entityFile(name))
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if data == nil {
			return nil
		}
		var result EntityResult
		do(data, &result)
		report.Entities[name] = result
		return nil
	}

	steps := []struct {
		name string
		do   func(data []byte, result *EntityResult)
	}{
		{"users", func(d []byte, r *EntityResult) {
			importRows(db, "users", d, func(m *userModel.UserModel) uuid.UUID { return m.UserID }, "user_id", r)
		}},
		{"authors", func(d []byte, r *EntityResult) {
			importRows(db, "authors", d, func(m *authorModel.AuthorModel) uuid.UUID { return m.AuthorID }, "author_id", r)
		}},
		{"multimedia_types", func(d []byte, r *EntityResult) {
			importRows(db, "multimedia_types", d, func(m *articleModel.MultimediaTypeModel) uuid.UUID { return m.MultimediaTypeID }, "multimedia_type_id", r)
		}},
		{"volumes", func(d []byte, r *EntityResult) {
			importRows(db, "volumes", d, func(m *issueModel.VolumeModel) uuid.UUID { return m.VolumeID }, "volume_id", r)
		}},
		{"issues", func(d []byte, r *EntityResult) {
			importRows(db, "issues", d, func(m *issueModel.IssueModel) uuid.UUID { return m.IssueID }, "issue_id", r)
		}},
		{"articles", func(d []byte, r *EntityResult) {
			importRows(db, "articles", d, func(m *articleModel.ArticleModel) uuid.UUID { return m.ArticleID }, "article_id", r)
		}},
		{"article_multimedia_types", func(d []byte, r *EntityResult) {
			importRows(db, "article_multimedia_types", d, func(m *articleModel.ArticleMultimediaTypeModel) uuid.UUID { return m.ArticleMultimediaTypeID }, "article_multimedia_type_id", r)
		}},
		{"article_notes", func(d []byte, r *EntityResult) {
			importRows(db, "article_notes", d, func(m *articleModel.ArticleNoteModel) uuid.UUID { return m.ArticleNoteID }, "article_note_id", r)
		}},
		{"article_status_histories", func(d []byte, r *EntityResult) {
			importRows(db, "article_status_histories", d, func(m *articleModel.StatusHistoryModel) uuid.UUID { return m.StatusHistoryID }, "status_history_id", r)
		}},
		{"attachments", func(d []byte, r *EntityResult) {
			importRows(db, "attachments", d, func(m *attachmentModel.AttachmentModel) uuid.UUID { return m.AttachmentID }, "attachment_id", r)
		}},
		{"payment_rates", func(d []byte, r *EntityResult) {
			importRows(db, "payment_rates", d, func(m *rateModel.PaymentRateModel) uuid.UUID { return m.PaymentRateID }, "payment_rate_id", r)
		}},
		{"payment_rate_histories", func(d []byte, r *EntityResult) {
			importRows(db, "payment_rate_histories", d, func(m *rateModel.PaymentRateHistoryModel) uuid.UUID { return m.PaymentRateHistoryID }, "payment_rate_history_id", r)
		}},
	}
	for _, s := range steps {
		if err := run(s.name, s.do); err != nil {
			return nil, err
		}
	}

	return report, nil
}
