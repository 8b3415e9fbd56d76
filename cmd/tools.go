package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"fattureincloud-mcp/internal/invoicing"
	"fattureincloud-mcp/internal/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Print the tool catalogue as JSON",
	Long: `Print every tool with its description, confirmation flags and input
schema, in the order they are advertised. No API access is needed.`,
	Args: cobra.NoArgs,
	RunE: runTools,
}

// toolOutput is one catalogue entry as printed by the tools command.
type toolOutput struct {
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	RequiresConfirmation bool            `json:"requires_confirmation"`
	Irreversible         bool            `json:"irreversible"`
	InputSchema          json.RawMessage `json:"input_schema"`
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}

func runTools(cmd *cobra.Command, _ []string) error {
	// Handlers are never invoked here, so the service needs no API.
	registry, err := tools.NewCatalog(invoicing.NewService(nil, invoicing.Options{}))
	if err != nil {
		return err
	}

	out := make([]toolOutput, 0, len(registry.All()))
	for _, def := range registry.All() {
		out = append(out, toolOutput{
			Name:                 def.Name,
			Description:          def.Description,
			RequiresConfirmation: def.RequiresConfirmation,
			Irreversible:         def.Irreversible,
			InputSchema:          def.InputSchema,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalogue: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
