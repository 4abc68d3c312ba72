package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/Hazen1Yang/pathfinder-backend/config"
	"github.com/Hazen1Yang/pathfinder-backend/controllers"
	"github.com/Hazen1Yang/pathfinder-backend/routes"
	"github.com/Hazen1Yang/pathfinder-backend/services"
	"github.com/Hazen1Yang/pathfinder-backend/store"
	"github.com/Hazen1Yang/pathfinder-backend/utils"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config", zap.Error(err))
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal("database", zap.Error(err))
	}

	local, err := store.NewLocalStore(cfg.LocalStoreDir)
	if err != nil {
		log.Fatal("local store", zap.Error(err))
	}
	remote := store.NewRemoteStore(db)
	selector := store.NewSelector(local, remote)

	catalog, err := services.NewCatalogService(cfg.DataDir, log)
	if err != nil {
		log.Fatal("career catalog", zap.Error(err))
	}
	go func() {
		if err := catalog.Watch(); err != nil {
			log.Error("catalog watcher stopped", zap.Error(err))
		}
	}()

	mailer, err := utils.NewMailer(context.Background(), cfg.AWSRegion, cfg.SESEmail)
	if err != nil {
		log.Fatal("mailer", zap.Error(err))
	}

	goals := services.NewGoalService(selector, log)
	users := services.NewUserService(db)
	auth := services.NewAuthService(db, mailer)
	quiz := services.NewQuizService(db)
	daily := services.NewDailyTaskService(services.NewGormDailyRecords(db), log)

	r := routes.SetupRouter(routes.Controllers{
		Auth:     controllers.NewAuthController(auth),
		User:     controllers.NewUserController(users),
		Goal:     controllers.NewGoalController(goals),
		Quiz:     controllers.NewQuizController(quiz, log),
		Career:   controllers.NewCareerController(catalog),
		Daily:    controllers.NewDailyTaskController(daily, users),
		Realtime: controllers.NewRealtimeController(goals, log, cfg.AllowedOrigins),
	})

	log.Info("listening", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal("server", zap.Error(err))
	}
}
