// Package bootstrap wires the application dependencies.
package bootstrap

import (
	"github.com/ariel055132/stockinfo/internal/domain/stock"
	"github.com/ariel055132/stockinfo/internal/infrastructure/csvfile"
	"github.com/ariel055132/stockinfo/internal/infrastructure/finmind"
	"github.com/ariel055132/stockinfo/pkg/config"
	"github.com/ariel055132/stockinfo/pkg/logger"
)

// Bootstrap is the bootstrap for the stockinfo CLI.
type Bootstrap struct {
	Client  finmind.Client
	Usecase stock.Usecase
	Writer  csvfile.Writer
	Logger  logger.Interface

	Config *config.Config
}

// BootstrapConfig is the config for the bootstrap.
type BootstrapConfig struct {
	Config *config.Config
	Logger logger.Interface
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(config BootstrapConfig) Bootstrap {
	b.Config = config.Config
	b.Logger = config.Logger

	b.registerClient()
	b.registerUsecase()
	b.registerWriter()

	return *b
}
