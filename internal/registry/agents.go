package registry

import "github.com/agentflowhq/agentflow/internal/domain"

// agentCatalog returns the fixed table of the ten agent personas.
// Order matters: RankByKeywords breaks ties by catalog order, and the
// order mirrors the phases of the development process.
func agentCatalog() []AgentDefinition {
	return []AgentDefinition{
		{
			Name:        domain.AgentResearch,
			Phase:       "discovery",
			Model:       "gemini-2.5-pro",
			ModelReason: "long-context synthesis across many sources",
			Keywords: []string{
				"research", "investigate", "explore", "analyze", "compare",
				"evaluate", "benchmark", "feasibility",
			},
			DefaultTools: []string{"web_search", "mcp-context7", "read_file"},
		},
		{
			Name:        domain.AgentStrategy,
			Phase:       "discovery",
			Model:       "gemini-2.5-pro",
			ModelReason: "strategic reasoning over ambiguous goals",
			Keywords: []string{
				"strategy", "roadmap", "prioritize", "scope", "vision",
				"tradeoff", "milestone",
			},
			DefaultTools: []string{"web_search", "read_file", "write_file"},
		},
		{
			Name:        domain.AgentPM,
			Phase:       "planning",
			Model:       "gemini-2.5-flash",
			ModelReason: "fast structured output for backlog work",
			Keywords: []string{
				"requirements", "backlog", "story", "acceptance", "stakeholder",
				"ticket", "estimate",
			},
			DefaultTools: []string{"read_file", "write_file", "mcp-github"},
		},
		{
			Name:        domain.AgentUX,
			Phase:       "design",
			Model:       "gemini-2.5-pro",
			ModelReason: "visual reasoning for layout and interaction work",
			Keywords: []string{
				"design", "wireframe", "prototype", "accessibility",
				"usability", "layout", "interface",
			},
			DefaultTools: []string{"figma_inspect", "read_file", "write_file"},
		},
		{
			Name:        domain.AgentArchitect,
			Phase:       "design",
			Model:       "gemini-2.5-pro",
			ModelReason: "whole-system reasoning across module boundaries",
			Keywords: []string{
				"architecture", "system", "scalability", "integration",
				"diagram", "pattern", "boundary",
			},
			DefaultTools: []string{"codebase_search", "read_file", "write_file"},
		},
		{
			Name:        domain.AgentDatabase,
			Phase:       "implementation",
			Model:       "gemini-2.5-flash",
			ModelReason: "schema and query work is well-bounded",
			Keywords: []string{
				"database", "schema", "migration", "query", "index",
				"postgres", "storage",
			},
			DefaultTools: []string{"sql_client", "read_file", "write_file"},
		},
		{
			Name:        domain.AgentCoder,
			Phase:       "implementation",
			Model:       "gemini-2.5-pro",
			ModelReason: "largest share of multi-file code generation",
			Keywords: []string{
				"implement", "code", "build", "feature", "endpoint",
				"refactor", "backend", "frontend", "service",
			},
			DefaultTools: []string{"read_file", "write_file", "run_terminal", "codebase_search"},
		},
		{
			Name:        domain.AgentReviewer,
			Phase:       "quality",
			Model:       "gemini-2.5-pro",
			ModelReason: "careful reading beats generation speed in review",
			Keywords: []string{
				"review", "audit", "quality", "lint", "standards",
				"readability", "style",
			},
			DefaultTools: []string{"read_file", "codebase_search", "mcp-github"},
		},
		{
			Name:        domain.AgentQA,
			Phase:       "quality",
			Model:       "gemini-2.5-flash",
			ModelReason: "test generation benefits from fast iteration",
			Keywords: []string{
				"test", "testing", "coverage", "regression", "automation",
				"validation", "bug",
			},
			DefaultTools: []string{"run_tests", "read_file", "write_file", "mcp-playwright"},
		},
		{
			Name:        domain.AgentDevOps,
			Phase:       "operations",
			Model:       "gemini-2.5-flash",
			ModelReason: "infrastructure commands are short and tool-heavy",
			Keywords: []string{
				"deploy", "deployment", "pipeline", "docker", "kubernetes",
				"infrastructure", "monitoring", "release",
			},
			DefaultTools: []string{"run_terminal", "docker_build", "kubectl_apply", "read_file"},
		},
	}
}
