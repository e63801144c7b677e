package scheduler

import (
	"context"
	"log"
	"time"

	"majalahku_backend/internals/helpers/storage"
)

// StartTrashReaperScheduler permanently removes trashed objects once they
// age past the retention window. Runs every 12h.
func StartTrashReaperScheduler(blob storage.BlobService) {
	go func() {
		for {
			reapOnce(blob)
			time.Sleep(12 * time.Hour)
		}
	}()
}

func reapOnce(blob storage.BlobService) {
	log.Println("[REAPER] Sweeping storage trash...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-storage.TrashRetention())
	keys, err := blob.ListTrash(ctx, cutoff)
	if err != nil {
		log.Printf("[REAPER ERROR] Failed to list trash: %v", err)
		return
	}
	if len(keys) == 0 {
		log.Println("[REAPER] Trash is clean")
		return
	}

	removed := 0
	for _, key := range keys {
		if err := blob.Delete(ctx, key); err != nil {
			log.Printf("[REAPER ERROR] Failed to delete %s: %v", key, err)
			continue
		}
		removed++
	}
	log.Printf("[REAPER] %d trashed objects removed", removed)
}
