package main

import (
	"github.com/Conceptual-Machines/magda-theory/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is fine; THEORYCTL_* may come from the environment.
	_ = godotenv.Load()
	cli.Execute()
}
