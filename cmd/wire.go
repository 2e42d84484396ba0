package cmd

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	tomlrepo "github.com/confsched/slotgrid/internal/adapters/repo/toml"
	"github.com/confsched/slotgrid/internal/adapters/validate"
	"github.com/confsched/slotgrid/internal/application"
)

const (
	defaultCapacityKey = "schedule.default_capacity"
	defaultSeedKey     = "schedule.seed"
)

type app struct {
	projectPath string
}

// wire builds the service against the TOML project provider. The
// returned viper instance carries the merged config so commands can
// read scheduling defaults from it.
func (a *app) wire(logger *zap.Logger) (*application.Service, *viper.Viper, error) {
	cfg := viper.New()
	cfg.SetDefault(defaultCapacityKey, application.DefaultCapacity)
	if a.projectPath != "" {
		cfg.Set(tomlrepo.ProjectPathKey, a.projectPath)
	}

	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("wire project repository: %w", err)
	}

	return application.NewService(repo, validate.New(), logger), cfg, nil
}

// newLogger returns a console logger on stderr when verbose, else a
// Nop logger so reports stay clean on stdout.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
