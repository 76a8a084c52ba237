package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/r11/denonctl/pkg/cli"
	"github.com/r11/denonctl/pkg/logger"
)

func main() {
	logger.Init()

	if err := cli.Execute(); err != nil {
		log.Error().Err(err).Msg("denonctl failed")
		os.Exit(1)
	}
}
