// Package workflow orchestrates the generation pipeline: parse, match,
// select tools, validate the destination, render, and write. Build is
// the single entry point and error boundary. It never returns a Go
// error, every internal failure becomes a failed BuildResult.
package workflow

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"

	"github.com/agentflowhq/agentflow/internal/domain"
	"github.com/agentflowhq/agentflow/internal/errors"
	"github.com/agentflowhq/agentflow/internal/log"
	"github.com/agentflowhq/agentflow/internal/matcher"
	"github.com/agentflowhq/agentflow/internal/parser"
	"github.com/agentflowhq/agentflow/internal/pathguard"
	"github.com/agentflowhq/agentflow/internal/registry"
	"github.com/agentflowhq/agentflow/internal/render"
	"github.com/agentflowhq/agentflow/internal/sanitize"
	"github.com/agentflowhq/agentflow/internal/toolselect"
)

// BuildOptions control one Build call
type BuildOptions struct {
	// OutputPath overrides the derived filename. Used verbatim, with
	// .md appended when missing.
	OutputPath string

	// Agent pins a catalog agent by name, bypassing keyword matching
	Agent string

	// Overwrite allows replacing an existing workflow file
	Overwrite bool

	// DryRun renders the document without writing it
	DryRun bool
}

// BuildResult is the terminal artifact of one Build call
type BuildResult struct {
	Success          bool
	FilePath         string
	Content          string
	Digest           string
	ValidationErrors []string
}

// Builder owns the pipeline stages and all file I/O
type Builder struct {
	parser    *parser.Parser
	matcher   *matcher.Matcher
	selector  *toolselect.Selector
	engine    *render.Engine
	validator *pathguard.Validator
	logger    *log.Logger
}

// NewBuilder wires the pipeline for the given project root. The
// registries are constructed here and stay read-only for the life of
// the builder, so concurrent Build calls are safe.
func NewBuilder(root string, logger *log.Logger) (*Builder, error) {
	engine, err := render.New()
	if err != nil {
		return nil, err
	}

	validator, err := pathguard.New(root)
	if err != nil {
		return nil, err
	}

	agents := registry.NewAgentRegistry()
	tools := registry.NewToolRegistry()

	return &Builder{
		parser:    parser.New(),
		matcher:   matcher.New(agents),
		selector:  toolselect.New(tools),
		engine:    engine,
		validator: validator,
		logger:    logger,
	}, nil
}

// Validator exposes the path validator for read-side checks
func (b *Builder) Validator() *pathguard.Validator {
	return b.validator
}

// Matcher exposes the matcher for alternative suggestions and routing
// explanations
func (b *Builder) Matcher() *matcher.Matcher {
	return b.matcher
}

// Parser exposes the story parser
func (b *Builder) Parser() *parser.Parser {
	return b.parser
}

// Build runs the full pipeline for one user story. It never panics and
// never returns an error: failures come back as a BuildResult with
// Success false and a human-readable message.
func (b *Builder) Build(userStory string, opts BuildOptions) BuildResult {
	logger := b.logger.With("run_id", uuid.NewString())

	story, err := b.parser.Parse(userStory, parser.Options{})
	if err != nil {
		logger.WithError(err).Warn("story rejected")
		return failure(err)
	}

	match, err := b.resolveMatch(story, opts.Agent)
	if err != nil {
		logger.WithError(err).Warn("agent pin rejected")
		return failure(err)
	}
	selection := b.selector.SelectForAgent(match.Agent)

	logger.Debug("story matched",
		"intent", story.Intent,
		"domain", story.Domain,
		"agent", match.Agent.Name.String(),
		"confidence", match.Confidence,
	)

	filename := deriveFilename(userStory, opts.OutputPath)

	destination, err := b.validator.ValidateOutputPath(filename)
	if err != nil {
		logger.WithError(err).Warn("output path rejected")
		return failure(err)
	}

	pb := playbookFor(match.Agent.Name)
	data := render.Data{
		Description:   story.RawInput,
		AgentName:     match.Agent.Name.String(),
		Phase:         match.Phase,
		AIModel:       match.Model,
		Tools:         unionTools(selection),
		Steps:         pb.Steps,
		RelatedFiles:  pb.RelatedFiles,
		Prerequisites: pb.Prerequisites,
		Deliverables:  pb.Deliverables,
		NextAgent:     pb.NextAgent,
		HandoffAction: pb.HandoffAction,
		Artifacts:     []string{},
	}

	content, err := b.engine.Render(data)
	if err != nil {
		logger.WithError(err).Error("render failed")
		return failure(err)
	}

	digest := contentDigest(content)

	if opts.DryRun {
		return BuildResult{
			Success:  true,
			FilePath: destination,
			Content:  content,
			Digest:   digest,
		}
	}

	if _, statErr := os.Stat(destination); statErr == nil && !opts.Overwrite {
		err := errors.NewFileExistsError(destination)
		logger.WithError(err).Warn("refusing to overwrite")
		return failure(err)
	}

	if err := os.MkdirAll(filepath.Dir(destination), 0750); err != nil {
		wrapped := errors.Wrap(errors.ErrCodeDirectoryFailed,
			"failed to create workflows directory", err)
		logger.WithError(wrapped).Error("directory creation failed")
		return failure(wrapped)
	}

	if err := os.WriteFile(destination, []byte(content), 0600); err != nil {
		wrapped := errors.NewFileWriteError(destination, err)
		logger.WithError(wrapped).Error("write failed")
		return failure(wrapped)
	}

	logger.Info("workflow written",
		"path", destination,
		"agent", match.Agent.Name.String(),
		"digest", digest,
	)

	return BuildResult{
		Success:  true,
		FilePath: destination,
		Content:  content,
		Digest:   digest,
	}
}

// resolveMatch routes the story through keyword matching, or pins the
// named agent when one was requested explicitly.
func (b *Builder) resolveMatch(story *parser.ParsedStory, agentName string) (matcher.Match, error) {
	if agentName == "" {
		return b.matcher.Match(story), nil
	}

	agentType, err := domain.NewAgentType(agentName)
	if err != nil {
		return matcher.Match{}, errors.New(errors.ErrCodeRegistryUnknownAgent,
			fmt.Sprintf("unknown agent: %s", agentName)).
			WithSuggestion("Run 'agentflow agents' to list the available agents")
	}

	match, ok := b.matcher.Pin(agentType)
	if !ok {
		return matcher.Match{}, errors.New(errors.ErrCodeRegistryUnknownAgent,
			fmt.Sprintf("unknown agent: %s", agentName))
	}
	return match, nil
}

// deriveFilename uses the explicit output path when given, otherwise
// slugs the story itself. Either way the result ends in .md.
func deriveFilename(userStory, outputPath string) string {
	if outputPath != "" {
		if !strings.HasSuffix(outputPath, ".md") {
			return outputPath + ".md"
		}
		return outputPath
	}
	return sanitize.Filename(userStory) + ".md"
}

// unionTools merges primary and optional tools, preserving order and
// dropping duplicates.
func unionTools(selection toolselect.Selection) []string {
	seen := make(map[string]bool)
	var union []string
	for _, name := range append(selection.Primary, selection.Optional...) {
		if seen[name] {
			continue
		}
		seen[name] = true
		union = append(union, name)
	}
	return union
}

// contentDigest returns the blake3 hex digest of the rendered document
func contentDigest(content string) string {
	sum := blake3.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// failure converts a pipeline error into a failed BuildResult with a
// single human-readable message.
func failure(err error) BuildResult {
	return BuildResult{
		Success:          false,
		ValidationErrors: []string{errorMessage(err)},
	}
}

// errorMessage extracts the bare message from structured errors so the
// bridge protocol and GUI see clean text without codes or suggestions.
func errorMessage(err error) string {
	if afErr, ok := err.(*errors.AgentflowError); ok {
		return afErr.Message
	}
	return err.Error()
}
