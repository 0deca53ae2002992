package workflow

import (
	"github.com/agentflowhq/agentflow/internal/domain"
	"github.com/agentflowhq/agentflow/internal/render"
)

// playbook is the fixed per-agent content used to fill a workflow
// document: steps, files worth reading, prerequisites, deliverables,
// and the handoff target. Agents without an entry get the generic
// playbook.
type playbook struct {
	Steps         []render.Step
	RelatedFiles  []render.RelatedFile
	Prerequisites []string
	Deliverables  []string
	NextAgent     string
	HandoffAction string
}

// genericPlaybook covers any agent missing from the table
var genericPlaybook = playbook{
	Steps: []render.Step{
		{Title: "Understand the task", Description: "Read the description and restate the goal in your own words."},
		{Title: "Do the work", Description: "Carry out the task using the listed tools."},
		{Title: "Summarize the outcome", Description: "Record what changed and anything left open."},
	},
	Deliverables:  []string{"A written summary of the completed work"},
	NextAgent:     "reviewer",
	HandoffAction: "Confirm the summary covers everything that changed",
}

// playbooks is the fixed per-agent table
var playbooks = map[domain.AgentType]playbook{
	domain.AgentResearch: {
		Steps: []render.Step{
			{Title: "Frame the question", Description: "Turn the task into two or three concrete research questions."},
			{Title: "Gather sources", Description: "Search documentation, prior art, and the existing codebase."},
			{Title: "Synthesize findings", Description: "Write up findings with citations and a clear recommendation."},
		},
		Deliverables:  []string{"Research summary with cited sources", "A recommendation with trade-offs"},
		NextAgent:     "strategy",
		HandoffAction: "Review the findings and decide the direction",
	},
	domain.AgentStrategy: {
		Steps: []render.Step{
			{Title: "Map the options", Description: "List viable approaches with costs and risks."},
			{Title: "Pick a direction", Description: "Choose one approach and record why the others lost."},
			{Title: "Slice the work", Description: "Break the direction into milestones small enough to ship."},
		},
		Deliverables:  []string{"A prioritized milestone list"},
		NextAgent:     "pm",
		HandoffAction: "Turn the milestones into a concrete backlog",
	},
	domain.AgentPM: {
		Steps: []render.Step{
			{Title: "Write the stories", Description: "Split the milestones into user stories with acceptance criteria."},
			{Title: "Order the backlog", Description: "Sequence stories by dependency and value."},
		},
		Deliverables:  []string{"Groomed backlog with acceptance criteria"},
		NextAgent:     "architect",
		HandoffAction: "Design the system to satisfy the backlog",
	},
	domain.AgentUX: {
		Steps: []render.Step{
			{Title: "Sketch the flow", Description: "Wireframe the user journey end to end."},
			{Title: "Check accessibility", Description: "Verify contrast, focus order, and screen-reader labels."},
			{Title: "Hand off specs", Description: "Export measurements and assets for implementation."},
		},
		RelatedFiles: []render.RelatedFile{
			{Name: "Design tokens", Path: "src/styles/tokens.css"},
		},
		Deliverables:  []string{"Wireframes and exported design specs"},
		NextAgent:     "coder",
		HandoffAction: "Implement the screens against the exported specs",
	},
	domain.AgentArchitect: {
		Steps: []render.Step{
			{Title: "Define the boundaries", Description: "Name the components and the contracts between them."},
			{Title: "Document decisions", Description: "Record significant choices and their alternatives."},
		},
		RelatedFiles: []render.RelatedFile{
			{Name: "Architecture overview", Path: "docs/architecture.md"},
		},
		Deliverables:  []string{"Component diagram and decision records"},
		NextAgent:     "coder",
		HandoffAction: "Build within the documented boundaries",
	},
	domain.AgentDatabase: {
		Steps: []render.Step{
			{Title: "Model the data", Description: "Design tables, keys, and indexes for the feature."},
			{Title: "Write the migration", Description: "Produce a forward migration and its rollback.", Turbo: true, Code: "make migrate-up"},
			{Title: "Verify with sample data", Description: "Load representative data and check query plans."},
		},
		RelatedFiles: []render.RelatedFile{
			{Name: "Migrations", Path: "db/migrations"},
		},
		Prerequisites: []string{"A reachable development database"},
		Deliverables:  []string{"Applied migration with rollback", "Query plan notes"},
		NextAgent:     "coder",
		HandoffAction: "Wire the application code to the new schema",
	},
	domain.AgentCoder: {
		Steps: []render.Step{
			{Title: "Read the surrounding code", Description: "Find the modules this change touches and their conventions."},
			{Title: "Implement the change", Description: "Write the code in small, reviewable increments."},
			{Title: "Run the checks", Description: "Build, lint, and run the affected tests.", Turbo: true, Code: "make test"},
		},
		Deliverables:  []string{"Working code with passing checks"},
		NextAgent:     "reviewer",
		HandoffAction: "Review the diff for correctness and style",
	},
	domain.AgentReviewer: {
		Steps: []render.Step{
			{Title: "Review the diff", Description: "Check correctness, naming, and edge cases line by line."},
			{Title: "Leave actionable feedback", Description: "Every comment names the problem and a way out."},
		},
		Deliverables:  []string{"Review verdict with actionable comments"},
		NextAgent:     "qa",
		HandoffAction: "Exercise the change beyond the unit tests",
	},
	domain.AgentQA: {
		Steps: []render.Step{
			{Title: "Plan the test cases", Description: "Derive cases from the acceptance criteria, including failure paths."},
			{Title: "Automate the critical paths", Description: "Add regression coverage for what must not break.", Turbo: true, Code: "make test-e2e"},
			{Title: "Report the results", Description: "File defects with reproduction steps."},
		},
		Prerequisites: []string{"A deployed test environment"},
		Deliverables:  []string{"Test report and automated regression cases"},
		NextAgent:     "devops",
		HandoffAction: "Ship the verified change",
	},
	domain.AgentDevOps: {
		Steps: []render.Step{
			{Title: "Prepare the release", Description: "Build artifacts and check configuration for the target environment."},
			{Title: "Deploy", Description: "Roll out with the standard pipeline.", Turbo: true, Code: "make deploy"},
			{Title: "Watch the rollout", Description: "Monitor health checks and error rates until stable."},
		},
		RelatedFiles: []render.RelatedFile{
			{Name: "Pipeline definition", Path: ".github/workflows/deploy.yml"},
		},
		Prerequisites: []string{"Credentials for the target environment"},
		Deliverables:  []string{"A monitored, healthy deployment"},
		NextAgent:     "reviewer",
		HandoffAction: "Confirm the rollout and close the task",
	},
}

// playbookFor returns the agent's playbook with step numbers assigned
func playbookFor(agent domain.AgentType) playbook {
	pb, ok := playbooks[agent]
	if !ok {
		pb = genericPlaybook
	}

	steps := make([]render.Step, len(pb.Steps))
	copy(steps, pb.Steps)
	for i := range steps {
		steps[i].Number = i + 1
	}
	pb.Steps = steps

	return pb
}
