package appconfig

import (
	"fmt"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"mergington.edu/activities-backend/internal/app/appcontext"
	"mergington.edu/activities-backend/internal/pkg/projectpath"
)

func Parse(ctx appcontext.Ctx) (*Config, error) {
	err := godotenv.Load(filepath.Join(projectpath.Root, ".env"))
	if err != nil {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	var config ConfigSpec
	err = envconfig.Process("mhs", &config)
	if err != nil {
		_ = envconfig.Usage("mhs", &config)
		return nil, fmt.Errorf("failed to parse configuration: %w. More info on how to configure this backend is located at https://pkg.go.dev/mergington.edu/activities-backend/internal/app/appconfig#ConfigSpec", err)
	}

	if config.DevMode {
		log.Debug().Msg("running in dev mode; dumping configuration")
		spew.Dump(config)
	}

	return &Config{
		ConfigSpec: config,
		AppContext: ctx,
	}, nil
}
