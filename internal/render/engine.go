// Package render turns structured workflow data into the final
// markdown document. The template is logic-less: variable interpolation
// plus two helpers, formatTool and ifEquals. Rendering is pure and
// deterministic given identical input.
package render

import (
	"embed"
	"strings"
	"text/template"

	"github.com/agentflowhq/agentflow/internal/errors"
)

//go:embed templates/workflow.md.tmpl
var templateFS embed.FS

const templateAsset = "templates/workflow.md.tmpl"

// Engine defaults applied during enrichment
const (
	defaultEmoji         = "🤖"
	defaultInput         = "User story provided at generation time"
	defaultOutput        = "Completed work matching the description"
	defaultNextAgent     = "reviewer"
	defaultHandoffAction = "Review the generated changes and confirm the workflow is complete"
	defaultCodeLanguage  = "bash"
)

// agentEmojis is the fixed per-agent emoji lookup
var agentEmojis = map[string]string{
	"research":  "🔍",
	"strategy":  "🧭",
	"pm":        "📋",
	"ux":        "🎨",
	"architect": "🏗️",
	"database":  "🗄️",
	"coder":     "💻",
	"reviewer":  "🔎",
	"qa":        "🧪",
	"devops":    "🚀",
}

// Step is one numbered workflow step
type Step struct {
	Number      int
	Title       string
	Description string
	Turbo       bool
	Code        string
}

// RelatedFile points at a file the agent should look at
type RelatedFile struct {
	Name string
	Path string
}

// Data is the full field set the template accepts. WorkflowBuilder
// assembles it; Render fills the zero-valued fields with defaults.
type Data struct {
	Description   string
	AgentName     string
	Phase         string
	AIModel       string
	Tools         []string
	Steps         []Step
	RelatedFiles  []RelatedFile
	Prerequisites []string
	Deliverables  []string
	NextAgent     string
	HandoffAction string
	Artifacts     []string

	// Engine-added defaults
	Emoji        string
	Title        string
	Input        string
	Output       string
	CodeLanguage string
}

// Engine renders workflow documents from the embedded template asset
type Engine struct {
	tmpl *template.Template
}

// New parses the embedded template. It fails if the asset cannot be
// loaded or does not parse.
func New() (*Engine, error) {
	raw, err := templateFS.ReadFile(templateAsset)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeTemplateMissing,
			"workflow template asset not found", err)
	}

	tmpl, err := template.New("workflow").Funcs(template.FuncMap{
		"formatTool": FormatTool,
		"ifEquals":   ifEquals,
	}).Parse(string(raw))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeTemplateMissing,
			"workflow template asset does not parse", err)
	}

	return &Engine{tmpl: tmpl}, nil
}

// Render enriches the data with derived defaults and executes the
// template, returning a single markdown string.
func (e *Engine) Render(data Data) (string, error) {
	enriched := enrich(data)

	var b strings.Builder
	if err := e.tmpl.Execute(&b, enriched); err != nil {
		return "", errors.Wrap(errors.ErrCodeTemplateRender,
			"failed to render workflow template", err)
	}
	return b.String(), nil
}

// enrich fills zero-valued fields with the engine defaults
func enrich(data Data) Data {
	if data.Emoji == "" {
		if emoji, ok := agentEmojis[data.AgentName]; ok {
			data.Emoji = emoji
		} else {
			data.Emoji = defaultEmoji
		}
	}
	if data.Title == "" {
		data.Title = TitleCase(data.Description)
	}
	if data.Input == "" {
		data.Input = defaultInput
	}
	if data.Output == "" {
		data.Output = defaultOutput
	}
	if data.Prerequisites == nil {
		data.Prerequisites = []string{}
	}
	if data.Deliverables == nil {
		data.Deliverables = []string{}
	}
	if data.Artifacts == nil {
		data.Artifacts = []string{}
	}
	if data.NextAgent == "" {
		data.NextAgent = defaultNextAgent
	}
	if data.HandoffAction == "" {
		data.HandoffAction = defaultHandoffAction
	}
	if data.CodeLanguage == "" {
		data.CodeLanguage = defaultCodeLanguage
	}
	return data
}

// FormatTool prepares a tool name for display: underscores become
// spaces and any mcp- prefix is dropped.
func FormatTool(name string) string {
	name = strings.TrimPrefix(name, "mcp-")
	return strings.ReplaceAll(name, "_", " ")
}

// TitleCase capitalizes the first letter of each word
func TitleCase(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		runes := []rune(word)
		if len(runes) > 0 {
			runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// ifEquals is the boolean-branch template helper
func ifEquals(a, b string) bool {
	return a == b
}
