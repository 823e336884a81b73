package registry

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// The built-in roster shipped with the binary. Used unless the server config
// points at an on-disk override.
//
//go:embed activities.yaml
var defaultRoster []byte

// LoadDefault parses the built-in activity roster.
func LoadDefault() (map[string]Activity, error) {
	return parseRoster(defaultRoster)
}

// LoadFile reads an activity roster from a YAML file at the given path.
func LoadFile(path string) (map[string]Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster file %s: %w", path, err)
	}
	roster, err := parseRoster(data)
	if err != nil {
		return nil, fmt.Errorf("parsing roster file %s: %w", path, err)
	}
	return roster, nil
}

// parseRoster decodes and validates a YAML roster.
func parseRoster(data []byte) (map[string]Activity, error) {
	var roster map[string]Activity
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("decoding roster YAML: %w", err)
	}
	if len(roster) == 0 {
		return nil, fmt.Errorf("roster is empty")
	}

	for name, act := range roster {
		if name == "" {
			return nil, fmt.Errorf("roster contains an activity with an empty name")
		}
		if act.MaxParticipants <= 0 {
			return nil, fmt.Errorf("activity %q: max_participants must be positive", name)
		}
		seen := make(map[string]bool, len(act.Participants))
		for _, email := range act.Participants {
			if email == "" {
				return nil, fmt.Errorf("activity %q: empty participant email", name)
			}
			if seen[email] {
				return nil, fmt.Errorf("activity %q: duplicate participant %s", name, email)
			}
			seen[email] = true
		}
		if act.Participants == nil {
			act.Participants = []string{}
			roster[name] = act
		}
	}
	return roster, nil
}
