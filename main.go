package main

//go:generate swag init

import (
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/nikhilps/docledger/cmd"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}
	cmd.Execute()
}
