package main

import (
	"os"

	"bebit-api/core/logger"
	"bebit-api/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
		os.Exit(1)
	}
}
