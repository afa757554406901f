package main

import (
	"github.com/joho/godotenv"

	"github.com/robalobadob/wordle/apps/go-tui/internal/cli"
)

func main() {
	_ = godotenv.Load()
	cli.Execute()
}
