package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentflowhq/agentflow/internal/registry"
	"github.com/agentflowhq/agentflow/internal/tui"
	"github.com/agentflowhq/agentflow/internal/ux"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List the agent catalog",
	Long: `List the ten specialized agents stories can be routed to, with
their lifecycle phase, assigned model and matching keywords.`,
	RunE: runAgents,
}

func init() {
	rootCmd.AddCommand(agentsCmd)
}

// agentPayload is the structured form of one catalog entry
type agentPayload struct {
	Name     string   `json:"name" yaml:"name"`
	Phase    string   `json:"phase" yaml:"phase"`
	Model    string   `json:"model" yaml:"model"`
	Keywords []string `json:"keywords" yaml:"keywords"`
	Tools    []string `json:"tools" yaml:"tools"`
}

func runAgents(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	catalog := registry.NewAgentRegistry().All()

	if cfg.Output.Format == "json" || cfg.Output.Format == "yaml" {
		formatter, err := ux.NewFormatter(cfg.Output.Format, nil)
		if err != nil {
			return err
		}

		payload := make([]agentPayload, 0, len(catalog))
		for _, agent := range catalog {
			payload = append(payload, agentPayload{
				Name:     agent.Name.String(),
				Phase:    agent.Phase,
				Model:    agent.Model,
				Keywords: agent.Keywords,
				Tools:    agent.DefaultTools,
			})
		}
		return formatter.Format(payload)
	}

	styles := tui.DefaultStyles()
	if cfg.Output.NoColor {
		styles = tui.PlainStyles()
	}

	for _, agent := range catalog {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n",
			styles.Status.Render(fmt.Sprintf("%-10s", agent.Name.String())),
			styles.Muted.Render(agent.Phase))
		fmt.Fprintf(cmd.OutOrStdout(), "  model:    %s\n", agent.Model)
		fmt.Fprintf(cmd.OutOrStdout(), "  keywords: %s\n", strings.Join(agent.Keywords, ", "))
		fmt.Fprintf(cmd.OutOrStdout(), "  tools:    %s\n\n", strings.Join(agent.DefaultTools, ", "))
	}

	return nil
}
