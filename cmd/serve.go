package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"fattureincloud-mcp/internal/logger"
	"fattureincloud-mcp/internal/mcpserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tools over MCP on stdin/stdout",
	Long: `Serve the invoicing tools over the Model Context Protocol using stdio.

Configure your MCP client to launch this command. Logs go to stderr (or to
LOG_OUTPUT); stdout is reserved for the protocol.`,
	Example: `  fic-mcp serve
  LOG_LEVEL=debug fic-mcp serve`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	log := logger.WithComponent("serve")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dispatcher, err := newDispatcher(ctx)
	if err != nil {
		return err
	}

	log.Info().
		Str("version", version).
		Int64("company_id", loaded.cfg.CompanyID).
		Msg("Starting MCP server")

	return mcpserver.New(dispatcher, version).ServeStdio(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
}
