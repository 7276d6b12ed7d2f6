package main

import (
	"os"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"target-price-engine/internal/handler"
	"target-price-engine/internal/logging"
)

func main() {
	logging.Init()
	defer logging.Sync()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8181"
	}

	logging.Info("target price engine starting", zap.String("port", port))
	if err := fasthttp.ListenAndServe(":"+port, handler.Route); err != nil {
		logging.Fatal("server failed", zap.Error(err))
	}
}
