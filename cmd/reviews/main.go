package main

import (
	"errors"
	"io/fs"
	stdLog "log"

	"github.com/Astemirdum/reviews-service/reviews/app"
	"github.com/Astemirdum/reviews-service/reviews/config"
	"github.com/joho/godotenv"
)

// @title Reviews API
// @version 1.0
// @description Book reviews, optionally rated by the ratings service.
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		stdLog.Fatal("load envs from .env ", err)
	}
	cfg, err := config.NewConfig()
	if err != nil {
		stdLog.Fatal("config ", err)
	}

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal("run ", err)
	}
}
