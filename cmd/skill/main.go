package main

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/jct-tympanon/alexa-go/internal/logger"
	"github.com/jct-tympanon/alexa-go/internal/store"
)

func main() {
	parseFlags()
	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	if err := logger.Initialize(flagLogLevel); err != nil {
		return err
	}

	appInstance := newApp(store.NewMemoryStore())

	logger.Log.Info("Running server", zap.String("address", flagRunAddr))

	return http.ListenAndServe(flagRunAddr, logger.RequestLogger(appInstance.webhook))
}
