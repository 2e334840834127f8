package main

import (
	"github.com/joho/godotenv"

	"moujaz/internal/cli"
)

func main() {
	// Optional; a missing .env is fine.
	godotenv.Load()

	cli.Execute()
}
