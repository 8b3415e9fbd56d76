package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"fattureincloud-mcp/internal/invoicing"
	"fattureincloud-mcp/internal/logger"
)

var callCmd = &cobra.Command{
	Use:   "call <tool> [json-arguments]",
	Short: "Run a single tool and print its answer",
	Long: `Run one tool through the same dispatcher the MCP server uses and print
the text it returns. Arguments are a JSON object; omit them for tools that
take none.

create_invoice, duplicate_invoice, send_to_sdi and send_email act on the live
company. send_to_sdi cannot be undone.`,
	Example: `  fic-mcp call list_invoices '{"year": 2025, "month": 3}'
  fic-mcp call get_invoice_status '{"document_id": 123456}'
  fic-mcp call get_situation`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCall,
}

func init() {
	rootCmd.AddCommand(callCmd)

	callCmd.Flags().Int("timeout", 60, "Timeout in seconds")
}

func runCall(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("call")
	timeoutSecs, _ := cmd.Flags().GetInt("timeout")

	name := args[0]
	var arguments map[string]any
	if len(args) == 2 {
		if err := json.Unmarshal([]byte(args[1]), &arguments); err != nil {
			return fmt.Errorf("arguments must be a JSON object: %w", err)
		}
	}

	ctx, cancel := createCallContext(timeoutSecs, log)
	defer cancel()

	dispatcher, err := newDispatcher(ctx)
	if err != nil {
		return err
	}

	start := time.Now()
	res := dispatcher.Call(ctx, name, arguments)
	log.Debug().
		Str("tool", name).
		Str("kind", string(res.Kind)).
		Dur("duration", time.Since(start)).
		Msg("Tool returned")

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), res.Text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	switch res.Kind {
	case invoicing.KindRemoteFailure, invoicing.KindInternal:
		return fmt.Errorf("tool %s failed", name)
	}
	return nil
}

// createCallContext creates a context with timeout and signal handling
func createCallContext(timeoutSecs int, log zerolog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSecs)*time.Second)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			log.Info().
				Str("signal", sig.String()).
				Msg("Received interrupt signal, canceling tool call")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
