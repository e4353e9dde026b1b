// hsecli queries the HSE mobile-app backend from the command line. It reads
// credentials from the environment, authenticates, and prints JSON results to
// stdout.
package main

import (
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	displayAppname("hsecli")
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("hsecli failed")
		os.Exit(1)
	}
}

func displayAppname(appname string) {
	figure.Write(os.Stderr, figure.NewFigure(appname, "cybermedium", true))
}
