// Command gen writes typed gorm/gen query helpers for the persistence models
// into internal/infra/persistence/postgres/query. Run it from the module root
// after changing a model.
package main

import (
	"healthtrack/internal/infra/persistence/model"

	"gorm.io/gen"
)

const outPath = "./internal/infra/persistence/postgres/query"

// persistedModels lists every table-backed model. Keep it in sync with the migrations.
func persistedModels() []any {
	return []any{
		model.UserModel{},
		model.MealModel{},
		model.ExerciseModel{},
		model.DailyLogModel{},
		model.MealLogEntryModel{},
		model.ExerciseLogEntryModel{},
		model.WaterLogModel{},
		model.SleepLogModel{},
		model.PlanModel{},
		model.ProfileModel{},
		model.FeedbackModel{},
	}
}

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:       outPath,
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(persistedModels()...)

	g.Execute()
}
