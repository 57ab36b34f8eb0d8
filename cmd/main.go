package main

import (
	"github.com/Dayabrar/Eco-Eats/config"
	"github.com/Dayabrar/Eco-Eats/controllers"
	"github.com/Dayabrar/Eco-Eats/logger"
	"github.com/Dayabrar/Eco-Eats/routes"
	"github.com/Dayabrar/Eco-Eats/services"

	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Close()

	db := config.InitDB()

	hub := services.NewRealtimeHub()
	catalog := services.NewCatalogService(db)
	ledger := services.NewLedgerService(db)
	daily := services.NewDailyLogService(db)
	goals := services.NewGoalService(db, daily)
	consumption := services.NewConsumptionService(db, catalog, ledger, daily, hub)
	analyzer := services.NewAnalyzerService(daily, goals)
	auth := services.NewAuthService(db)
	users := services.NewUserService(db)

	r := routes.SetupRouter(db, routes.Controllers{
		Auth:        controllers.NewAuthController(auth),
		Users:       controllers.NewUserController(users),
		Foods:       controllers.NewFoodController(catalog),
		Consumption: controllers.NewConsumptionController(consumption),
		Daily:       controllers.NewDailyLogController(daily, consumption, goals),
		Goals:       controllers.NewGoalController(goals),
		Reports:     controllers.NewReportController(analyzer),
		Realtime:    controllers.NewRealtimeController(hub),
	})

	addr := ":" + config.GetEnv("PORT", "8080")
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
