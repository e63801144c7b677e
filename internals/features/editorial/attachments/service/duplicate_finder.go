package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Confidence labels for duplicate groups.
const (
	ConfidenceExact    = "exact"     // same filename and same size
	ConfidenceNameOnly = "name_only" // same filename, sizes differ
	ConfidenceSizeOnly = "size_only" // same size, names differ
)

// DuplicateFile is the projection the finder works on.
type DuplicateFile struct {
	ID        uuid.UUID `json:"id"`
	ArticleID uuid.UUID `json:"article_id"`
	Name      string    `json:"name"`
	ByteSize  int64     `json:"byte_size"`
}

type DuplicateGroup struct {
	Confidence string          `json:"confidence"`
	Files      []DuplicateFile `json:"files"`
}

// FindDuplicates groups probable duplicate attachments. Three passes with
// falling confidence: (name, size) exact, then name-only, then size-only.
// A file lands in at most one group; stronger passes claim files first.
func FindDuplicates(files []DuplicateFile) []DuplicateGroup {
	var groups []DuplicateGroup
	claimed := make(map[uuid.UUID]bool, len(files))

	normName := func(name string) string {
		return strings.ToLower(strings.TrimSpace(name))
	}

	collect := func(key func(DuplicateFile) (string, bool), confidence string) {
		buckets := make(map[string][]DuplicateFile)
		var order []string
		for _, f := range files {
			if claimed[f.ID] {
				continue
			}
			k, ok := key(f)
			if !ok {
				continue
			}
			if _, seen := buckets[k]; !seen {
				order = append(order, k)
			}
			buckets[k] = append(buckets[k], f)
		}
		for _, k := range order {
			bucket := buckets[k]
			if len(bucket) < 2 {
				continue
			}
			for _, f := range bucket {
				claimed[f.ID] = true
			}
			sort.Slice(bucket, func(i, j int) bool {
				return bucket[i].ID.String() < bucket[j].ID.String()
			})
			groups = append(groups, DuplicateGroup{Confidence: confidence, Files: bucket})
		}
	}

	// pass 1: exact (name + size)
	collect(func(f DuplicateFile) (string, bool) {
		n := normName(f.Name)
		if n == "" || f.ByteSize <= 0 {
			return "", false
		}
		return n + "|" + strconv.FormatInt(f.ByteSize, 10), true
	}, ConfidenceExact)

	// pass 2: name only
	collect(func(f DuplicateFile) (string, bool) {
		n := normName(f.Name)
		if n == "" {
			return "", false
		}
		return n, true
	}, ConfidenceNameOnly)

	// pass 3: size only
	collect(func(f DuplicateFile) (string, bool) {
		if f.ByteSize <= 0 {
			return "", false
		}
		return strconv.FormatInt(f.ByteSize, 10), true
	}, ConfidenceSizeOnly)

	return groups
}
