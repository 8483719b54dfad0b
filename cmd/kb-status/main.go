package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

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
	return &cobra.Command{
		Use:   "kb-status",
		Short: "Check Kage Bunshin infrastructure health",
		Long: "kb-status probes the API server, PostgreSQL, the Ollama runtime, the\n" +
			"Tailscale mesh and any configured SSH nodes, then prints a status report.\n" +
			"Exit code is 0 when nothing failed.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadHealth()
			if err != nil {
				return err
			}

			container := app.BuildHealthContainer(cfg, cmd.OutOrStdout(), isVerbose())
			report := container.Health.Run(cmd.Context())
			if !container.Renderer.HealthReport(report) {
				return cli.ErrRunFailed
			}
			return nil
		},
	}
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("KB_DEBUG"), "1") || strings.EqualFold(os.Getenv("KB_DEBUG"), "true")
}
