package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"mergington.edu/activities-backend/cmd/app/server"
	"mergington.edu/activities-backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "mhsbackend",
		Description: "The Mergington High School activities signup backend. Built with Go, fiber and go.uber.org/fx. Optionally uses NATS to stream roster changes.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
