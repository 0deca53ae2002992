package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentflowhq/agentflow/internal/domain"
	"github.com/agentflowhq/agentflow/internal/matcher"
	"github.com/agentflowhq/agentflow/internal/parser"
	"github.com/agentflowhq/agentflow/internal/pathguard"
	"github.com/agentflowhq/agentflow/internal/tui"
	"github.com/agentflowhq/agentflow/internal/ux"
	"github.com/agentflowhq/agentflow/internal/workflow"
)

var workflowCmd = &cobra.Command{
	Use:   "workflow",
	Short: "Generate and validate agent workflow files",
}

var (
	createStory     string
	createAgent     string
	createOutput    string
	createDryRun    bool
	createOverwrite bool
	createExplain   bool
)

var workflowCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Generate a workflow file from a user story",
	Long: `Generate a markdown workflow file from a free-text user story.

The story is matched against the agent catalog by keyword overlap; the
winning agent determines the tools, steps and handoff of the generated
workflow. Pass --agent to skip matching and pin an agent directly.`,
	Example: `  agentflow workflow create --story "Deploy backend API to Google Cloud Run with CI/CD pipeline"
  agentflow workflow create --story "Fix login bug" --agent coder --output login-fix
  agentflow workflow create --story "Add user analytics dashboard" --dry-run`,
	RunE: runWorkflowCreate,
}

var workflowValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a workflow file's location and structure",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkflowValidate,
}

var workflowListCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated workflow files",
	RunE:  runWorkflowList,
}

func init() {
	workflowCreateCmd.Flags().StringVarP(&createStory, "story", "s", "", "user story describing the feature or task")
	workflowCreateCmd.Flags().StringVarP(&createAgent, "agent", "a", "", "pin a catalog agent instead of matching")
	workflowCreateCmd.Flags().StringVarP(&createOutput, "output", "o", "", "output filename (default derives from the story)")
	workflowCreateCmd.Flags().BoolVar(&createDryRun, "dry-run", false, "render without writing the file")
	workflowCreateCmd.Flags().BoolVar(&createOverwrite, "overwrite", false, "replace an existing workflow file")
	workflowCreateCmd.Flags().BoolVar(&createExplain, "explain", false, "print the routing rationale")

	workflowCmd.AddCommand(workflowCreateCmd)
	workflowCmd.AddCommand(workflowValidateCmd)
	workflowCmd.AddCommand(workflowListCmd)
	rootCmd.AddCommand(workflowCmd)
}

func runWorkflowCreate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	story := createStory
	if story == "" {
		if !tui.ShouldPrompt() {
			return fmt.Errorf("required flag --story not set")
		}
		story, err = tui.PromptForStory()
		if err != nil {
			return err
		}
	}

	builder, err := workflow.NewBuilder(projectRoot(cfg), logger)
	if err != nil {
		return ux.FormatError(err, "initializing pipeline")
	}

	result := builder.Build(story, workflow.BuildOptions{
		OutputPath: createOutput,
		Agent:      createAgent,
		Overwrite:  createOverwrite,
		DryRun:     createDryRun,
	})

	if !result.Success {
		return fmt.Errorf("%s", strings.Join(result.ValidationErrors, "; "))
	}

	parsed, parseErr := builder.Parser().Parse(story, parser.Options{ConfidenceThreshold: cfg.Parser.ConfidenceThreshold})
	if parseErr != nil {
		// Build already accepted the story; treat a re-parse failure
		// as no routing detail.
		parsed = nil
	}

	switch cfg.Output.Format {
	case "json", "yaml":
		formatter, err := ux.NewFormatter(cfg.Output.Format, nil)
		if err != nil {
			return err
		}
		return formatter.Format(createResultPayload(result, builder, parsed))
	default:
		printCreateSummary(cmd, cfg.Output.NoColor, result, builder, parsed, cfg.Parser.ConfidenceThreshold)
	}

	if createExplain && parsed != nil {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), builder.Matcher().Explain(parsed))
	}

	return nil
}

// createPayload is the structured form of a create result for json and
// yaml output
type createPayload struct {
	Success  bool     `json:"success" yaml:"success"`
	Path     string   `json:"path" yaml:"path"`
	Digest   string   `json:"digest" yaml:"digest"`
	Agent    string   `json:"agent,omitempty" yaml:"agent,omitempty"`
	Phase    string   `json:"phase,omitempty" yaml:"phase,omitempty"`
	Model    string   `json:"model,omitempty" yaml:"model,omitempty"`
	Intent   string   `json:"intent,omitempty" yaml:"intent,omitempty"`
	Domain   string   `json:"domain,omitempty" yaml:"domain,omitempty"`
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	DryRun   bool     `json:"dry_run" yaml:"dry_run"`
}

func createResultPayload(result workflow.BuildResult, builder *workflow.Builder, parsed *parser.ParsedStory) createPayload {
	payload := createPayload{
		Success: result.Success,
		Path:    result.FilePath,
		Digest:  result.Digest,
		DryRun:  createDryRun,
	}

	if match, ok := summaryMatch(builder, parsed); ok {
		payload.Agent = match.Agent.Name.String()
		payload.Phase = match.Phase
		payload.Model = match.Model
	}
	if parsed != nil {
		payload.Intent = parsed.Intent
		payload.Domain = parsed.Domain
		payload.Keywords = parsed.Keywords
	}

	return payload
}

// summaryMatch reproduces the routing decision Build made, honoring a
// pinned agent when one was passed.
func summaryMatch(builder *workflow.Builder, parsed *parser.ParsedStory) (matcher.Match, bool) {
	if createAgent != "" {
		agentType, err := domain.NewAgentType(createAgent)
		if err != nil {
			return matcher.Match{}, false
		}
		return builder.Matcher().Pin(agentType)
	}

	if parsed == nil {
		return matcher.Match{}, false
	}
	return builder.Matcher().Match(parsed), true
}

func printCreateSummary(cmd *cobra.Command, noColor bool, result workflow.BuildResult, builder *workflow.Builder, parsed *parser.ParsedStory, threshold float64) {
	styles := tui.DefaultStyles()
	if noColor {
		styles = tui.PlainStyles()
	}

	summary := tui.MatchSummary{
		FilePath: result.FilePath,
		Digest:   result.Digest,
		DryRun:   createDryRun,
	}

	if match, ok := summaryMatch(builder, parsed); ok {
		summary.Agent = match.Agent.Name.String()
		summary.Phase = match.Phase
		summary.Model = match.Model
		summary.Confidence = match.Confidence

		if parsed != nil {
			summary.Intent = parsed.Intent
			summary.Domain = parsed.Domain
			summary.Keywords = parsed.Keywords

			if match.Confidence < threshold {
				for _, alternative := range builder.Matcher().SuggestAlternatives(parsed) {
					if alternative.Agent.Name == match.Agent.Name {
						continue
					}
					summary.Alternatives = append(summary.Alternatives, alternative.Agent.Name.String())
				}
			}
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.RenderMatchSummary(summary))
}

func runWorkflowValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	target := args[0]

	validator, err := pathguard.New(projectRoot(cfg))
	if err != nil {
		return err
	}

	var problems []string

	abs, absErr := filepath.Abs(target)
	if absErr == nil && !validator.IsValidWorkflowPath(abs) {
		problems = append(problems, fmt.Sprintf("%s is outside %s", target, pathguard.WorkflowsDir))
	}

	content, readErr := os.ReadFile(target)
	if readErr != nil {
		return ux.FormatError(readErr, "reading workflow")
	}

	for _, problem := range workflow.ValidateDocument(string(content)) {
		problems = append(problems, problem.Error())
	}

	if len(problems) > 0 {
		for _, problem := range problems {
			fmt.Fprintf(cmd.OutOrStdout(), "✗ %s\n", problem)
		}
		return fmt.Errorf("validation failed: %d problem(s)", len(problems))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is a valid workflow\n", target)
	return nil
}

func runWorkflowList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir := filepath.Join(projectRoot(cfg), pathguard.WorkflowsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(cmd.OutOrStdout(), "No workflows yet.")
			fmt.Fprintln(cmd.OutOrStdout(), ux.SuggestNextSteps(projectRoot(cfg)))
			return nil
		}
		return err
	}

	found := false
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}
		found = true
		fmt.Fprintln(cmd.OutOrStdout(), entry.Name())
	}

	if !found {
		fmt.Fprintln(cmd.OutOrStdout(), "No workflows yet.")
	}
	return nil
}
