package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/moodtrack/internal/server"
	"github.com/dmitrijs2005/moodtrack/internal/server/config"
)

func main() {
	// a missing .env is fine; real env vars still apply
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
