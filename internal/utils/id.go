package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewCampaignID generates the public identifier for a fresh upload. A random
// 128-bit UUID; collisions are treated as negligible and never retried.
func NewCampaignID() uuid.UUID {
	return uuid.New()
}

// StoragePath builds the bucket key for a campaign image:
// campaigns/{uuid}.{original-extension}. A filename without an extension
// yields a bare key with no trailing dot.
func StoragePath(id uuid.UUID, filename string) string {
	ext := fileExtension(filename)
	if ext == "" {
		return fmt.Sprintf("campaigns/%s", id)
	}
	return fmt.Sprintf("campaigns/%s.%s", id, ext)
}

// fileExtension returns the extension after the last dot, without the dot.
func fileExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return ""
	}
	return filename[idx+1:]
}
