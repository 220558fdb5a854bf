package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"fxboard/internal/app"
)

// @title fxboard API
// @version 1.0
// @description KRW-centric exchange rate board: tracked pair history, derived indices, spot rates and an investment ledger.
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("application exited with error")
		os.Exit(1)
	}
}
