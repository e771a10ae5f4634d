package photomigrations

import (
	"context"

	"github.com/uptrace/bun"

	photodb "github.com/duffers-cup/clubhouse/app/modules/photo/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewCreateTable().
			Model((*photodb.Photo)(nil)).
			IfNotExists().
			Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewDropTable().
			Model((*photodb.Photo)(nil)).
			IfExists().
			Exec(ctx)
		return err
	})
}
