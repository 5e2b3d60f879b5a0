package main

import (
	"phdtrack_backend/internal/app"
	"phdtrack_backend/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("application failed", "error", err.Error())
	}
}
