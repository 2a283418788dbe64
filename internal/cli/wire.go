package cli

import (
	"fmt"

	"github.com/askohli/hunt/internal/api"
	"github.com/askohli/hunt/internal/channel"
	"github.com/askohli/hunt/internal/config"
	"github.com/askohli/hunt/internal/events"
	"github.com/askohli/hunt/internal/export"
	"github.com/askohli/hunt/internal/store"
	"github.com/askohli/hunt/internal/workflow"
)

// Runtime holds all wired components
type Runtime struct {
	Config    *config.Config
	Bus       *events.Bus
	Channel   *channel.Manager
	API       *api.Client
	Store     *store.Store
	Job       *workflow.JobMachine
	Interview *workflow.InterviewMachine
	Exporter  *export.Coordinator
}

// WireRuntime assembles all components for a command invocation
func WireRuntime(cfg *config.Config) (*Runtime, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	// Create event bus first (other components depend on it)
	bus := events.NewBus()

	client := api.New(cfg.BaseAddress)
	st := store.NewStore()

	job := workflow.NewJobMachine(client, st)
	interview := workflow.NewInterviewMachine(client, st)
	bus.Subscribe(workflow.NewDispatcher(job, interview).Handler())

	delay, err := cfg.ReconnectDelayDuration()
	if err != nil {
		return nil, fmt.Errorf("invalid reconnect delay: %w", err)
	}
	mgr := channel.NewManager(bus, channel.Config{
		BaseAddress:          cfg.BaseAddress,
		MaxReconnectAttempts: cfg.Channel.MaxReconnectAttempts,
		ReconnectDelay:       delay,
	})

	return &Runtime{
		Config:    cfg,
		Bus:       bus,
		Channel:   mgr,
		API:       client,
		Store:     st,
		Job:       job,
		Interview: interview,
		Exporter:  export.NewCoordinator(client, st),
	}, nil
}

// loadConfig loads configuration from the working directory.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
