package models

import (
	"time"

	"github.com/google/uuid"
)

// Campaign is one verified upload: an image in object storage plus its
// metadata. Records are insert-only; there is no edit or delete flow.
type Campaign struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"` // client-generated, public lookup key
	Filename    string     `json:"filename" gorm:"not null"`
	StoragePath string     `json:"storagePath" gorm:"not null"` // opaque key into the image bucket
	UploadDate  time.Time  `json:"uploadDate" gorm:"not null;index"`
	Title       string     `json:"title"` // empty renders as "untitled"
	Description string     `json:"description"`
	Author      string     `json:"author"` // empty renders as "anonymous"
	UserID      *uuid.UUID `json:"userId" gorm:"type:uuid;index"` // session owner, nil for anonymous inserts
}

// TableName keeps the table shared with the original portal schema.
func (Campaign) TableName() string {
	return "campaign_images"
}
