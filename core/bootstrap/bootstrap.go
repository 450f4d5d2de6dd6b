package bootstrap

import (
	"fmt"

	"shopbot/catalog"
	coreconfig "shopbot/core/config"
	"shopbot/core/logger"
)

// Options control the bootstrap pipeline.
type Options struct {
	Config *coreconfig.Config

	LoggerInit func(*coreconfig.Config) error
	NewCatalog func(coreconfig.CatalogConfig) *catalog.Client
}

// Result exposes infrastructure initialized by the bootstrap pipeline.
type Result struct {
	Catalog *catalog.Client
}

// Run initializes the logger and builds the catalog client.
func Run(opts Options) (*Result, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("bootstrap: nil config provided")
	}

	loggerInit := opts.LoggerInit
	if loggerInit == nil {
		loggerInit = logger.InitLogger
	}
	if err := loggerInit(opts.Config); err != nil {
		return nil, fmt.Errorf("bootstrap: logger init failed: %w", err)
	}

	newCatalog := opts.NewCatalog
	if newCatalog == nil {
		newCatalog = catalog.NewClient
	}
	return &Result{Catalog: newCatalog(opts.Config.Catalog)}, nil
}
