package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kagebunshin/kbdiag/internal/app"
	"github.com/kagebunshin/kbdiag/internal/infrastructure/cli"
	"github.com/kagebunshin/kbdiag/internal/infrastructure/config"
)

func main() {
	ctx := context.Background()

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, cli.ErrRunFailed) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		model          string
		host           string
		all            bool
		quick          bool
		timeoutSeconds int
		debug          bool
	)

	cmd := &cobra.Command{
		Use:   "ollama-smoke",
		Short: "Smoke-test Ollama models with coding probes",
		Long: "ollama-smoke sends fixed coding prompts to an Ollama server and checks\n" +
			"the responses for the expected patterns. Exit code is 0 when every probe\n" +
			"passed.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadSmoke(config.SmokeOverrides{
				Host:       host,
				Model:      model,
				Timeout:    time.Duration(timeoutSeconds) * time.Second,
				TimeoutSet: cmd.Flags().Changed("timeout"),
				Quick:      quick,
				All:        all,
			})

			container, err := app.BuildSmokeContainer(cfg, cmd.OutOrStdout(), debug || isVerbose())
			if err != nil {
				return err
			}

			if cfg.All {
				return runAllModels(cmd, container, cfg.Quick)
			}
			return runSingleModel(cmd, container, cfg.Model, cfg.Quick)
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "Model to test (default deepseek-coder:33b)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Ollama host URL (default from OLLAMA_HOST)")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Test every model the server lists")
	cmd.Flags().BoolVarP(&quick, "quick", "q", false, "Quick test (fewer probes)")
	cmd.Flags().IntVarP(&timeoutSeconds, "timeout", "t", 60, "Per-probe request timeout in seconds")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable verbose logging")

	return cmd
}

func runSingleModel(cmd *cobra.Command, container *app.Container, model string, quick bool) error {
	fmt.Fprintf(cmd.OutOrStdout(), "Running smoke test for %s...\n", model)

	report := container.Smoke.RunProbes(cmd.Context(), model, quick)
	if !container.Renderer.SmokeReport(report) {
		return cli.ErrRunFailed
	}
	return nil
}

func runAllModels(cmd *cobra.Command, container *app.Container, quick bool) error {
	models, err := container.Smoke.Models(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing models: %w", err)
	}
	if len(models) == 0 {
		return errors.New("no models found")
	}

	container.Renderer.ModelListing(models)

	allPassed := true
	for _, m := range models {
		container.Renderer.ModelHeader(m)
		report := container.Smoke.RunProbes(cmd.Context(), m.Name, quick)
		if !container.Renderer.SmokeReport(report) {
			allPassed = false
		}
	}

	if !allPassed {
		return cli.ErrRunFailed
	}
	return nil
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("SMOKE_DEBUG"), "1") || strings.EqualFold(os.Getenv("SMOKE_DEBUG"), "true")
}
