package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentflowhq/agentflow/internal/bridge"
	"github.com/agentflowhq/agentflow/internal/log"
	"github.com/agentflowhq/agentflow/internal/registry"
	"github.com/agentflowhq/agentflow/internal/workflow"
)

// errBridgeFailure signals a failed envelope was already printed; the
// process must exit non-zero without extra output.
var errBridgeFailure = fmt.Errorf("bridge operation failed")

var bridgeCmd = &cobra.Command{
	Use:    "bridge",
	Short:  "JSON protocol commands for the desktop app",
	Hidden: true,
}

var bridgeGenerateCmd = &cobra.Command{
	Use:   "generate <story>",
	Short: "Generate workflow content without writing it",
	Args:  cobra.ExactArgs(1),
	RunE:  runBridgeGenerate,
}

var bridgeSaveCmd = &cobra.Command{
	Use:   "save <content> <filename>",
	Short: "Persist previously generated workflow content",
	Args:  cobra.ExactArgs(2),
	RunE:  runBridgeSave,
}

var bridgeListAgentsCmd = &cobra.Command{
	Use:   "list-agents",
	Short: "List the agent catalog as JSON",
	RunE:  runBridgeListAgents,
}

func init() {
	bridgeCmd.AddCommand(bridgeGenerateCmd)
	bridgeCmd.AddCommand(bridgeSaveCmd)
	bridgeCmd.AddCommand(bridgeListAgentsCmd)
	rootCmd.AddCommand(bridgeCmd)
}

// bridgeBuilder constructs a builder that logs nothing to stdout.
// Bridge output is a single JSON document; logs stay on stderr at
// error level only.
func bridgeBuilder() (*workflow.Builder, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger := log.New(log.Config{
		Level:       log.LevelError,
		Format:      log.FormatJSON,
		Output:      log.OutputStderr(),
		ServiceName: "agentflow",
	})

	return workflow.NewBuilder(projectRoot(cfg), logger)
}

func emit(payload any) error {
	encoder := json.NewEncoder(os.Stdout)
	return encoder.Encode(payload)
}

func runBridgeGenerate(cmd *cobra.Command, args []string) error {
	builder, err := bridgeBuilder()
	if err != nil {
		return err
	}

	result := bridge.Generate(builder, args[0])
	if err := emit(result); err != nil {
		return err
	}
	if !result.Success {
		return errBridgeFailure
	}
	return nil
}

func runBridgeSave(cmd *cobra.Command, args []string) error {
	builder, err := bridgeBuilder()
	if err != nil {
		return err
	}

	result := bridge.Save(builder, args[0], args[1])
	if err := emit(result); err != nil {
		return err
	}
	if !result.Success {
		return errBridgeFailure
	}
	return nil
}

func runBridgeListAgents(cmd *cobra.Command, args []string) error {
	result := bridge.ListAgents(registry.NewAgentRegistry())
	if err := emit(result); err != nil {
		return err
	}
	if !result.Success {
		return errBridgeFailure
	}
	return nil
}
