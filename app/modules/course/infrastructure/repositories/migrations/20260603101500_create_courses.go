package coursemigrations

import (
	"context"

	"github.com/uptrace/bun"

	coursedb "github.com/duffers-cup/clubhouse/app/modules/course/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewCreateTable().
			Model((*coursedb.Course)(nil)).
			IfNotExists().
			Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewDropTable().
			Model((*coursedb.Course)(nil)).
			IfExists().
			Exec(ctx)
		return err
	})
}
