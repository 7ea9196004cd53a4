// Package app provides the dependency injection container for the application.
package app

import (
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/remip/gitlab-roulette/internal/domain"
	"github.com/remip/gitlab-roulette/internal/infra/gitlab"
	"github.com/remip/gitlab-roulette/internal/infra/prompt"
)

// Container provides dependency injection for the application.
// It holds all port implementations used by the use cases.
type Container struct {
	Tracker  domain.IssueTracker
	Prompter domain.Prompter
	Rand     domain.Rand
	Logger   *slog.Logger
	Config   *domain.Config
}

// New creates a Container from a validated configuration.
func New(cfg *domain.Config) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseURL, err := cfg.BaseURL()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	return &Container{
		Tracker:  gitlab.New(baseURL, cfg.Token),
		Prompter: prompt.New(),
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		Logger:   logger,
		Config:   cfg,
	}, nil
}

// NewWithDeps creates a Container with explicit dependencies.
// This is useful for testing.
func NewWithDeps(cfg *domain.Config, tracker domain.IssueTracker, prompter domain.Prompter, rng domain.Rand, logger *slog.Logger) *Container {
	return &Container{
		Tracker:  tracker,
		Prompter: prompter,
		Rand:     rng,
		Logger:   logger,
		Config:   cfg,
	}
}
