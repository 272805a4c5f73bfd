package main

import (
	"gatedesk/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.EmailConfirmationTokenModel{},
		model.PlanModel{},
		model.ActivePlanModel{},
		model.CreditTransactionModel{},
		model.BuildingModel{},
		model.DoormanBuildingModel{},
		model.VisitorModel{},
		model.VisitModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
