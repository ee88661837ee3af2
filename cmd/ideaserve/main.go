package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/StephenGiesbrecht/ZombieRabbitIDEA/internal/config"
	"github.com/StephenGiesbrecht/ZombieRabbitIDEA/internal/helpers"
	"github.com/StephenGiesbrecht/ZombieRabbitIDEA/internal/server"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	key := flag.String("key", "", "Key, up to 32 hex digits")
	listen := flag.String("listen", "", "Listen address (default: :8080)")
	workers := flag.Int("workers", 0, "Goroutines per decrypt call (default: NumCPU)")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Key:           *key,
		RoundConstant: -1,
		Workers:       *workers,
		ListenAddr:    *listen,
	})

	c, err := cfg.NewCipher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := helpers.NewLogger("ideaserve")
	if err := server.New(cfg.ListenAddr, c, log).Start(); err != nil {
		log.Error("server stopped", err)
		os.Exit(1)
	}
}
