package coursedb

import (
	"github.com/uptrace/bun"

	"github.com/duffers-cup/clubhouse/internal/golf"
)

// Course is the stored course reference record. Tees and holes are kept as
// JSON documents; they are read-only reference data imported from the static
// course dataset and never queried field-by-field.
type Course struct {
	bun.BaseModel `bun:"table:courses"`

	ID    int64       `bun:"id,pk,autoincrement"`
	Name  string      `bun:"name,notnull,unique"`
	Par   int         `bun:"par,notnull"`
	Tees  []golf.Tee  `bun:"tees,type:jsonb"`
	Holes []golf.Hole `bun:"holes,type:jsonb"`
}

// ToGolf converts the stored record into the engine's course shape.
func (c *Course) ToGolf() golf.Course {
	return golf.Course{
		ID:    c.ID,
		Name:  c.Name,
		Par:   c.Par,
		Tees:  c.Tees,
		Holes: c.Holes,
	}
}
