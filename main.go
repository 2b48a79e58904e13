package main

import (
	"github.com/coalaura/logger"
	"github.com/gin-gonic/gin"
)

var (
	log = logger.New()

	Version = "0.1.0"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	log.Info("Loading config...")

	config, err := LoadConfig("config.yml")
	log.MustPanic(err)

	var history *History

	if config.History.Enabled {
		log.Info("Opening history database...")

		history, err = OpenHistory(config.History.Database)
		log.MustPanic(err)

		defer history.Close()
	}

	registry := NewRegistry(config.Timers.Count, systemClock{})

	server := NewServer(config, registry, history)

	log.InfoF("Starting server at %s...\n", config.Addr())
	log.MustPanic(server.Router().Run(config.Addr()))
}
