package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ospanovk/hydromon/internal/api"
	"github.com/ospanovk/hydromon/internal/pkg/config"
	"github.com/ospanovk/hydromon/internal/pkg/constants"
	"github.com/ospanovk/hydromon/internal/pkg/logger"
	"github.com/ospanovk/hydromon/internal/pkg/store"
	"github.com/ospanovk/hydromon/internal/pkg/store/xpgx"
	"github.com/spf13/viper"
)

func main() {
	ctx := context.Background()

	if err := config.Load(); err != nil {
		logger.Fatal(ctx, err)
	}
	logger.Init(viper.GetString(constants.ViperLogLevel))

	pool, err := xpgx.Connect(ctx, viper.GetString(constants.ViperDatabaseDSN))
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	st := store.NewStore(pool)
	if !viper.GetBool(constants.ViperSkipMigrate) {
		if err := st.Migrate(ctx); err != nil {
			logger.Fatal(ctx, err)
		}
	}

	svc, err := api.NewAPIService(st)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(viper.GetString(constants.ViperHTTPAddr))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "shutdown: %s", err)
	}
}
