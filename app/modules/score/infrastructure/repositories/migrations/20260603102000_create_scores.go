package scoremigrations

import (
	"context"

	"github.com/uptrace/bun"

	scoredb "github.com/duffers-cup/clubhouse/app/modules/score/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewCreateTable().
			Model((*scoredb.Score)(nil)).
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		// One canonical entry per (player, course, hole); upserts depend
		// on this index.
		_, err := db.NewCreateIndex().
			Model((*scoredb.Score)(nil)).
			Index("scores_player_course_hole_idx").
			Unique().
			Column("player_id", "course_id", "hole").
			IfNotExists().
			Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewDropTable().
			Model((*scoredb.Score)(nil)).
			IfExists().
			Exec(ctx)
		return err
	})
}
