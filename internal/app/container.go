// Package app wires the dependency graph for both tools.
package app

import (
	"io"
	"net/http"

	"github.com/kagebunshin/kbdiag/internal/domain"
	"github.com/kagebunshin/kbdiag/internal/infrastructure"
	"github.com/kagebunshin/kbdiag/internal/infrastructure/checks"
	"github.com/kagebunshin/kbdiag/internal/infrastructure/cli"
	"github.com/kagebunshin/kbdiag/internal/infrastructure/ollama"
	"github.com/kagebunshin/kbdiag/internal/infrastructure/probes"
	"github.com/kagebunshin/kbdiag/internal/pkg/logger"
	"github.com/kagebunshin/kbdiag/internal/ports"
	"github.com/kagebunshin/kbdiag/internal/services"
)

// Container holds the constructed services for one tool invocation.
type Container struct {
	Health   *services.HealthService
	Smoke    *services.SmokeService
	Renderer *cli.Renderer
	Logger   ports.Logger
}

// BuildHealthContainer wires the health checker: the five check kinds in
// their fixed order, node checks appended from the configured list.
func BuildHealthContainer(cfg domain.HealthConfig, out io.Writer, verbose bool) *Container {
	log := logger.New(verbose)
	runner := infrastructure.NewLocalRunner()
	client := ollama.New(cfg.OllamaHost)

	checkers := []ports.HealthChecker{
		checks.NewAPICheck(cfg.APIHost, &http.Client{}),
		checks.NewPostgresCheck(cfg.PGHost, cfg.PGUser, cfg.PGDatabase, runner),
		checks.NewOllamaCheck(client),
		checks.NewTailscaleCheck(runner),
	}
	for _, node := range cfg.Nodes {
		checkers = append(checkers, checks.NewNodeCheck(node))
	}

	return &Container{
		Health:   &services.HealthService{Checks: checkers, Logger: log},
		Renderer: cli.NewRenderer(out),
		Logger:   log,
	}
}

// BuildSmokeContainer wires the smoke tester against the configured host.
func BuildSmokeContainer(cfg domain.SmokeConfig, out io.Writer, verbose bool) (*Container, error) {
	catalogue, err := probes.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(verbose)
	renderer := cli.NewRenderer(out)
	client := ollama.New(cfg.Host)
	smoke := &services.SmokeService{
		Client:   client,
		Probes:   catalogue,
		Host:     client.Host(),
		Timeout:  cfg.Timeout,
		Logger:   log,
		Progress: renderer,
	}

	return &Container{
		Smoke:    smoke,
		Renderer: renderer,
		Logger:   log,
	}, nil
}
