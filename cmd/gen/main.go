// Command gen generates the typed query package used by the postgres repositories.
// Run it from the repository root: go run ./cmd/gen
package main

import (
	"resq/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.RescuerModel{},
		model.AuthorityModel{},
		model.OrganizationModel{},
		model.SkillModel{},
		model.RescuerSkillModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	g.ApplyBasic(models...)

	g.Execute()
}
