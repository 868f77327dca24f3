package main

import (
	"log"
	"wheel_backend/internal/app"

	_ "go.uber.org/automaxprocs"
)

func main() {
	a := app.NewApp()
	if err := a.Run(); err != nil {
		log.Fatalf("failed to run app: %v", err)
	}
}
