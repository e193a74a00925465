package main

import (
	"github.com/joho/godotenv"

	"loan-optimizer/cli"
)

func main() {
	// .env es opcional; las variables ya exportadas tienen prioridad.
	_ = godotenv.Load()

	cli.Execute()
}
