package tripmigrations

import (
	"context"

	"github.com/uptrace/bun"

	tripdb "github.com/duffers-cup/clubhouse/app/modules/trip/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewCreateTable().
			Model((*tripdb.ScheduleEntry)(nil)).
			IfNotExists().
			Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewDropTable().
			Model((*tripdb.ScheduleEntry)(nil)).
			IfExists().
			Exec(ctx)
		return err
	})
}
