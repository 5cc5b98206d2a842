package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/studiodesk-io/studiodesk/internal/bootstrap"
	"github.com/studiodesk-io/studiodesk/internal/bridge"
	"github.com/studiodesk-io/studiodesk/internal/config"
	"github.com/studiodesk-io/studiodesk/internal/dispatch"
	dbpkg "github.com/studiodesk-io/studiodesk/internal/infra/db"
)

func main() {
	// .env is optional, development convenience only
	_ = godotenv.Load()

	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)

	// opening the store also ensures the schema; failure here is fatal
	db, err := do.Invoke[*gorm.DB](inj)
	if err != nil {
		log.Sugar().Fatalw("failed to open store", "err", err)
	}
	defer func() {
		if err := dbpkg.Close(db); err != nil {
			log.Sugar().Errorw("store close", "err", err)
		}
	}()

	disp := do.MustInvoke[*dispatch.Dispatcher](inj)
	log.Sugar().Infow("dispatcher ready", "operations", len(disp.Operations()))

	// init gin
	gin.SetMode(cfg.App.Env)

	engine := bridge.NewRouter(bridge.Deps{
		Log:        log,
		Dispatcher: disp,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Bridge.Host, cfg.Bridge.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting ui bridge", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("bridge shutdown", "err", err)
	}
	log.Sugar().Info("bridge exited")
}
