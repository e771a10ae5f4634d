package photodb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Photo is the stored metadata for one shared trip photo. The binary lives
// in the blob store under StorageKey.
type Photo struct {
	bun.BaseModel `bun:"table:photos"`

	ID          uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Caption     string    `bun:"caption" json:"caption,omitempty"`
	UploadedBy  uuid.UUID `bun:"uploaded_by,type:uuid" json:"uploaded_by"`
	StorageKey  string    `bun:"storage_key,notnull" json:"-"`
	ContentType string    `bun:"content_type,notnull" json:"content_type"`
	SizeBytes   int64     `bun:"size_bytes" json:"size_bytes"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}
