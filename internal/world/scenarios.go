package world

import "sort"

// A Scenario is a named set of overrides on the published constants.
type Scenario struct {
	Desc  string
	Apply func(*Config)
}

// Scenarios are the runs from World Dynamics chapter 4. "orig" is the
// basic behavior of the model; the rest change one policy constant at
// its 1970 switch time.
var Scenarios = map[string]Scenario{
	"orig": {
		Desc:  "original model, published constants",
		Apply: func(*Config) {},
	},
	"nr-conserved": {
		Desc:  "natural-resource usage reduced to 25% after 1970",
		Apply: func(c *Config) { c.NRUN1 = 0.25 },
	},
}

// GetScenario returns the scenario applied over the defaults.
func GetScenario(name string) (Config, bool) {
	s, ok := Scenarios[name]
	if !ok {
		return Config{}, false
	}
	cfg := DefaultConfig()
	s.Apply(&cfg)
	return cfg, true
}

// ListScenarios returns scenario names in sorted order.
func ListScenarios() []string {
	names := make([]string, 0, len(Scenarios))
	for name := range Scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
