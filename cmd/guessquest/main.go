package main

import (
	"github.com/joho/godotenv"

	"github.com/divin-k/guessquest/internal/cli"
)

func main() {
	// .env is optional; flags and real env vars win
	_ = godotenv.Load()

	cli.Execute()
}
