package context

import (
	"github.com/netrixframework/proptest/config"
	"github.com/netrixframework/proptest/log"
	"github.com/netrixframework/proptest/types"
)

// RootContext stores the shared state of an engine instance
type RootContext struct {
	// Config and instance of the configuration object
	Config *config.Config
	// Reports stores the run reports served by the APIServer
	Reports *types.ReportStore
	// Logger for logging purposes
	Logger *log.Logger
}

// NewRootContext creates an instance of the RootContext from the configuration
func NewRootContext(config *config.Config, logger *log.Logger) *RootContext {
	return &RootContext{
		Config:  config,
		Reports: types.NewReportStore(),
		Logger:  logger,
	}
}
