package coursemigrations

import "github.com/uptrace/bun/migrate"

var Migrations = migrate.NewMigrations()

func init() {
	// Derive stable migration IDs from the registering file names.
	if err := Migrations.DiscoverCaller(); err != nil {
		panic(err)
	}
}
