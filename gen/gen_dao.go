package main

import (
	"pumpsizer/model"

	"gorm.io/driver/mysql"
	"gorm.io/gen"
	"gorm.io/gorm"
)

// Querier collects the hand-written queries worth generating typed helpers
// for; gen fills in the implementation.
type Querier interface {
	// SELECT * FROM @@table WHERE case_id = @caseID LIMIT 1
	FindByCaseID(caseID string) (gen.T, error)

	// SELECT * FROM @@table WHERE project_name = @project ORDER BY created_at DESC LIMIT @limit
	RecentByProject(project string, limit int) ([]gen.T, error)
}

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./dao",
		Mode:    gen.WithoutContext | gen.WithDefaultQuery | gen.WithQueryInterface, // generate mode
	})

	gormdb, _ := gorm.Open(mysql.Open("root:@(127.0.0.1:3306)/pumpsizer?charset=utf8mb4&parseTime=True&loc=Local"))
	g.UseDB(gormdb)

	g.ApplyBasic(model.PipeMaterial{}, model.CalculationCase{})
	g.ApplyInterface(func(Querier) {}, model.CalculationCase{})

	g.Execute()
}
