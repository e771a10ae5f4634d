package playerdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Player is a registered tournament player. HandicapIndex of zero means no
// established handicap; the scoring engine treats those players as scratch
// for course-handicap purposes.
type Player struct {
	bun.BaseModel `bun:"table:players"`

	ID            uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name          string    `bun:"name,notnull" json:"name"`
	Email         string    `bun:"email" json:"email,omitempty"`
	HandicapIndex float64   `bun:"handicap_index" json:"handicap_index"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}
