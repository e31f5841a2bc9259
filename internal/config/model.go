package config

// Switch is a single `name = bool` entry of the feature configuration.
type Switch struct {
	Name    string
	Enabled bool
}

// Model is the unified representation of a feature configuration file.
// Switches keep the order in which they appear in the source file.
type Model struct {
	Switches []Switch
}

// Enabled returns the names of all enabled features, in file order.
func (m *Model) Enabled() []string {
	if m == nil {
		return nil
	}
	var names []string
	for _, s := range m.Switches {
		if s.Enabled {
			names = append(names, s.Name)
		}
	}
	return names
}

