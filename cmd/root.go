package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fattureincloud-mcp/internal/config"
	"fattureincloud-mcp/internal/fic"
	"fattureincloud-mcp/internal/invoicing"
	"fattureincloud-mcp/internal/logger"
	"fattureincloud-mcp/internal/tools"
)

var version = "1.0.0"

// loaded is the configuration main read at startup, or the error it got.
var loaded struct {
	cfg *config.Config
	err error
}

var rootCmd = &cobra.Command{
	Use:   "fic-mcp",
	Short: "Fatture in Cloud tools for AI assistants",
	Long: `fic-mcp exposes a Fatture in Cloud company to an AI assistant as a set of
tools: listing and reading invoices, creating and duplicating drafts,
submitting e-invoices to SDI, emailing courtesy copies and a yearly summary.

Without a subcommand it serves the tools over MCP on stdin/stdout.

Required environment variables (a .env file is read if present):
  FIC_ACCESS_TOKEN - API access token
  FIC_COMPANY_ID   - numeric id of the company to operate on
Optional:
  FIC_SENDER_EMAIL - sender address for send_email`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

// Execute runs the command line with the configuration loaded by main. A
// configuration error only fails the commands that talk to the API.
func Execute(cfg *config.Config, cfgErr error) {
	log := logger.WithComponent("cmd")
	loaded.cfg, loaded.err = cfg, cfgErr

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

// newDispatcher wires the API client, the invoicing service and the tool
// catalogue from the loaded configuration.
func newDispatcher(ctx context.Context) (*tools.Dispatcher, error) {
	if loaded.err != nil {
		return nil, fmt.Errorf("invalid configuration, check your .env file: %w", loaded.err)
	}
	if loaded.cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}

	client, err := fic.NewClient(ctx, loaded.cfg.APIConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	svc := invoicing.NewService(client, invoicing.Options{SenderEmail: loaded.cfg.SenderEmail})

	registry, err := tools.NewCatalog(svc)
	if err != nil {
		return nil, fmt.Errorf("failed to build tool catalogue: %w", err)
	}
	return tools.NewDispatcher(registry), nil
}
