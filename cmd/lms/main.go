package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/lms-service/lms/app"
	"github.com/Astemirdum/lms-service/lms/config"
)

func main() {
	// the environment alone is enough in containers
	if err := godotenv.Load(); err != nil {
		stdLog.Println("load envs from .env:", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
		config.WithJWTTTL(time.Hour),
	)

	if err := app.Run(cfg); err != nil {
		log.Fatal("run ", err)
	}
}
