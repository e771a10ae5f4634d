package playermigrations

import (
	"context"

	"github.com/uptrace/bun"

	playerdb "github.com/duffers-cup/clubhouse/app/modules/player/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewCreateTable().
			Model((*playerdb.Player)(nil)).
			IfNotExists().
			Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewDropTable().
			Model((*playerdb.Player)(nil)).
			IfExists().
			Exec(ctx)
		return err
	})
}
