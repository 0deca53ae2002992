package domain

import (
	"fmt"
)

// AgentType identifies one of the fixed agent personas used to route
// generated work. This is a closed enumeration: matching never produces
// a value outside it.
type AgentType string

const (
	AgentResearch  AgentType = "research"
	AgentStrategy  AgentType = "strategy"
	AgentPM        AgentType = "pm"
	AgentUX        AgentType = "ux"
	AgentArchitect AgentType = "architect"
	AgentDatabase  AgentType = "database"
	AgentCoder     AgentType = "coder"
	AgentReviewer  AgentType = "reviewer"
	AgentQA        AgentType = "qa"
	AgentDevOps    AgentType = "devops"
)

// AllAgentTypes returns the ten agent types in pipeline order
func AllAgentTypes() []AgentType {
	return []AgentType{
		AgentResearch,
		AgentStrategy,
		AgentPM,
		AgentUX,
		AgentArchitect,
		AgentDatabase,
		AgentCoder,
		AgentReviewer,
		AgentQA,
		AgentDevOps,
	}
}

// NewAgentType creates an AgentType value object with validation
func NewAgentType(value string) (AgentType, error) {
	t := AgentType(value)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate checks if the agent type is one of the fixed variants
func (t AgentType) Validate() error {
	switch t {
	case AgentResearch, AgentStrategy, AgentPM, AgentUX, AgentArchitect,
		AgentDatabase, AgentCoder, AgentReviewer, AgentQA, AgentDevOps:
		return nil
	}
	return fmt.Errorf("unknown agent type %q", string(t))
}

// String returns the string representation
func (t AgentType) String() string {
	return string(t)
}
