package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	notifhandler "github.com/ndayishimiyefidel/recipe-backend/internal/api/handlers/notification"
	planhandler "github.com/ndayishimiyefidel/recipe-backend/internal/api/handlers/weeklyplan"
	"github.com/ndayishimiyefidel/recipe-backend/internal/api/router"
	"github.com/ndayishimiyefidel/recipe-backend/internal/api/server"
	"github.com/ndayishimiyefidel/recipe-backend/internal/config"
	"github.com/ndayishimiyefidel/recipe-backend/internal/dispatcher"
	notifrepo "github.com/ndayishimiyefidel/recipe-backend/internal/repository/notification"
	reciperepo "github.com/ndayishimiyefidel/recipe-backend/internal/repository/recipe"
	planrepo "github.com/ndayishimiyefidel/recipe-backend/internal/repository/weeklyplan"
	"github.com/ndayishimiyefidel/recipe-backend/internal/scheduler"
	notifsvc "github.com/ndayishimiyefidel/recipe-backend/internal/service/notification"
	plannersvc "github.com/ndayishimiyefidel/recipe-backend/internal/service/planner"
	"github.com/ndayishimiyefidel/recipe-backend/pkg/expo"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	gateway := expo.NewClient(cfg.Expo.BaseURL, cfg.Expo.AccessToken)

	notifications := notifrepo.NewRepository(db)
	plans := planrepo.NewRepository(db)
	recipes := reciperepo.NewRepository(db)

	notifService := notifsvc.NewService(notifications, rdb)
	planService := plannersvc.NewService(plans, recipes, notifications)

	disp := dispatcher.New(gateway, notifService, cfg.Retry, cfg.Expo.Timeout)
	sched := scheduler.New(notifications, disp, cfg.Scheduler.Interval, cfg.Scheduler.Concurrency)

	go sched.Run(ctx)

	notifHandler := notifhandler.NewHandler(notifService, val, cfg)
	planHandler := planhandler.NewHandler(planService, val)

	r := router.New(notifHandler, planHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close master DB")
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Error().Err(err).Msgf("failed to close slave DB %d", i)
		}
	}
}
