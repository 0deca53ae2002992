package domain

import "testing"

func TestNewAgentType(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid coder", "coder", false},
		{"valid devops", "devops", false},
		{"valid qa", "qa", false},
		{"empty", "", true},
		{"unknown", "wizard", true},
		{"case sensitive", "Coder", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewAgentType(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewAgentType(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if !tt.wantErr && got.String() != tt.value {
				t.Errorf("NewAgentType(%q) = %q", tt.value, got.String())
			}
		})
	}
}

func TestAllAgentTypes(t *testing.T) {
	all := AllAgentTypes()

	if len(all) != 10 {
		t.Fatalf("expected 10 agent types, got %d", len(all))
	}

	seen := make(map[AgentType]bool)
	for _, at := range all {
		if err := at.Validate(); err != nil {
			t.Errorf("agent type %q should validate: %v", at, err)
		}
		if seen[at] {
			t.Errorf("duplicate agent type %q", at)
		}
		seen[at] = true
	}
}

func TestNewConfidence(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"in range", 0.7, 0.7},
		{"zero", 0, 0},
		{"one", 1, 1},
		{"above one clamps", 1.3, 1},
		{"negative clamps", -0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewConfidence(tt.value).Float64(); got != tt.want {
				t.Errorf("NewConfidence(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
