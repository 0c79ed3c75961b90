package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sanzad/sanzad-backend/internal/api"
	"github.com/sanzad/sanzad-backend/internal/pkg/config"
	"github.com/sanzad/sanzad-backend/internal/pkg/constants"
	"github.com/sanzad/sanzad-backend/internal/pkg/logger"
	"github.com/sanzad/sanzad-backend/internal/pkg/store"
	"github.com/sanzad/sanzad-backend/internal/pkg/store/xpgx"
	"github.com/sanzad/sanzad-backend/internal/pkg/upload"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config.Load()

	// budgets and scores go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	defer logger.Sync()

	pool, err := xpgx.Dial(ctx, viper.GetString(constants.ViperKeyDSN))
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	st := store.NewStore(pool)
	if err := st.Bootstrap(ctx); err != nil {
		logger.Fatal(ctx, err)
	}

	files, err := upload.NewStorage(viper.GetString(constants.ViperKeyUploadsDir))
	if err != nil {
		logger.Fatal(ctx, err)
	}

	svc, err := api.NewAPIService(st, files)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(viper.GetString(constants.ViperKeyAddr))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "shutdown: %s", err.Error())
	}
}
