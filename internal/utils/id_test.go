package utils

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
)

func TestNewCampaignIDIsRandomV4(t *testing.T) {
	a := NewCampaignID()
	b := NewCampaignID()
	if a == b {
		t.Fatal("two generated IDs collided")
	}
	if a.Version() != 4 {
		t.Errorf("expected a version 4 UUID, got version %d", a.Version())
	}
}

func TestStoragePath(t *testing.T) {
	id := uuid.MustParse("abcd1234-0000-4000-8000-000000000001")

	tests := []struct {
		filename string
		want     string
	}{
		{"poster.png", fmt.Sprintf("campaigns/%s.png", id)},
		{"archive.tar.gz", fmt.Sprintf("campaigns/%s.gz", id)},
		{"noextension", fmt.Sprintf("campaigns/%s", id)},
		{"trailingdot.", fmt.Sprintf("campaigns/%s", id)},
	}
	for _, tt := range tests {
		if got := StoragePath(id, tt.filename); got != tt.want {
			t.Errorf("StoragePath(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}
