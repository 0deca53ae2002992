package registry

// Tool categories
const (
	CategoryFilesystem  = "filesystem"
	CategoryExecution   = "execution"
	CategoryResearch    = "research"
	CategoryIntegration = "integration"
	CategoryQuality     = "quality"
)

// toolCatalog returns the fixed table of external tools agents may use.
// Every tool name referenced by an agent definition or a suggestion
// table must appear here; selection filters against this catalog.
func toolCatalog() []ToolDefinition {
	return []ToolDefinition{
		{Name: "read_file", Category: CategoryFilesystem, Description: "Read a file from the workspace"},
		{Name: "write_file", Category: CategoryFilesystem, Description: "Write or update a file in the workspace"},
		{Name: "codebase_search", Category: CategoryFilesystem, Description: "Semantic search across the codebase"},
		{Name: "run_terminal", Category: CategoryExecution, Description: "Execute a shell command"},
		{Name: "run_tests", Category: CategoryExecution, Description: "Run the project test suite"},
		{Name: "docker_build", Category: CategoryExecution, Description: "Build a container image"},
		{Name: "kubectl_apply", Category: CategoryExecution, Description: "Apply Kubernetes manifests"},
		{Name: "web_search", Category: CategoryResearch, Description: "Search the web for documentation and prior art"},
		{Name: "mcp-context7", Category: CategoryResearch, Description: "Fetch up-to-date library documentation"},
		{Name: "mcp-github", Category: CategoryIntegration, Description: "Interact with GitHub issues and pull requests"},
		{Name: "mcp-playwright", Category: CategoryQuality, Description: "Drive a browser for end-to-end checks"},
		{Name: "sql_client", Category: CategoryIntegration, Description: "Run SQL against the project database"},
		{Name: "figma_inspect", Category: CategoryIntegration, Description: "Inspect design files and export specs"},
		{Name: "lighthouse_audit", Category: CategoryQuality, Description: "Audit web performance and accessibility"},
	}
}
