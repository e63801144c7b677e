package service

import (
	"archive/zip"
	"fmt"
	"io"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	articleModel "majalahku_backend/internals/features/editorial/articles/model"
	attachmentModel "majalahku_backend/internals/features/editorial/attachments/model"
	authorModel "majalahku_backend/internals/features/editorial/authors/model"
	rateModel "majalahku_backend/internals/features/payments/rates/model"
	issueModel "majalahku_backend/internals/features/publication/issues/model"
	userModel "majalahku_backend/internals/features/users/auth/model"
)

const ManifestVersion = 1

// Manifest travels inside the bundle as manifest.json and mirrors the
// jsonb counters the import side reports against.
type Manifest struct {
	Version     int            `json:"version"`
	GeneratedAt time.Time      `json:"generated_at"`
	Counts      datatypes.JSON `json:"counts"`
}

// entity dump order doubles as the import dependency order
var entityOrder = []string{
	"users",
	"authors",
	"multimedia_types",
	"volumes",
	"issues",
	"articles",
	"article_multimedia_types",
	"article_notes",
	"article_status_histories",
	"attachments",
	"payment_rates",
	"payment_rate_histories",
}

func entityFile(name string) string { return "entities/" + name + ".json" }

// ExportBackup streams a ZIP bundle of every entity table as JSON plus a
// manifest. Soft-deleted rows ride along (Unscoped) so a restore is
// complete.
func ExportBackup(db *gorm.DB, w io.Writer) (*Manifest, error) {
	zw := zip.NewWriter(w)
	counts := map[string]int{}

	dump := func(name string, slicePtr interface{}, length func() int) error {
		if err := db.Unscoped().Find(slicePtr).Error; err != nil {
			return fmt.Errorf("dump %s: %w", name, err)
		}
		data, err := sonic.Marshal(slicePtr)
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		f, err := zw.Create(entityFile(name))
		if err != nil {
			return err
		}
		if _, err := f.Write(data); err != nil {
			return err
		}
		counts[name] = length()
		return nil
	}

	var (
		users      []userModel.UserModel
		authors    []authorModel.AuthorModel
		types      []articleModel.MultimediaTypeModel
		volumes    []issueModel.VolumeModel
		issues     []issueModel.IssueModel
		articles   []articleModel.ArticleModel
		joins      []articleModel.ArticleMultimediaTypeModel
		notes      []articleModel.ArticleNoteModel
		histories  []articleModel.StatusHistoryModel
		files      []attachmentModel.AttachmentModel
		rates      []rateModel.PaymentRateModel
		rateAudits []rateModel.PaymentRateHistoryModel
	)

	steps := []struct {
		name string
		ptr  interface{}
		n    func() int
	}{
		{"users", &users, func() int { return len(users) }},
		{"authors", &authors, func() int { return len(authors) }},
		{"multimedia_types", &types, func() int { return len(types) }},
		{"volumes", &volumes, func() int { return len(volumes) }},
		{"issues", &issues, func() int { return len(issues) }},
		{"articles", &articles, func() int { return len(articles) }},
		{"article_multimedia_types", &joins, func() int { return len(joins) }},
		{"article_notes", &notes, func() int { return len(notes) }},
		{"article_status_histories", &histories, func() int { return len(histories) }},
		{"attachments", &files, func() int { return len(files) }},
		{"payment_rates", &rates, func() int { return len(rates) }},
		{"payment_rate_histories", &rateAudits, func() int { return len(rateAudits) }},
	}
	for _, s := range steps {
		if err := dump(s.name, s.ptr, s.n); err != nil {
			zw.Close()
			return nil, err
		}
	}

	countsJSON, err := sonic.Marshal(counts)
	if err != nil {
		zw.Close()
		return nil, fmt.Errorf("encode manifest counts: %w", err)
	}
	manifest := &Manifest{
		Version:     ManifestVersion,
		GeneratedAt: time.Now().UTC(),
		Counts:      datatypes.JSON(countsJSON),
	}

	manifestJSON, err := sonic.Marshal(manifest)
	if err != nil {
		zw.Close()
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	f, err := zw.Create("manifest.json")
	if err != nil {
		zw.Close()
		return nil, err
	}
	if _, err := f.Write(manifestJSON); err != nil {
		zw.Close()
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return manifest, nil
}
