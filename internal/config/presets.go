package config

import "sort"

// Presets are named demo inputs for the menu and the --preset flag.
var Presets = map[string]*Config{
	"empty": {
		Input: "", MaxSteps: DefaultMaxSteps, FPS: 2, DelayMS: 400, TapeWidth: 11,
	},
	"single": {
		Input: "a", MaxSteps: DefaultMaxSteps, FPS: 2, DelayMS: 400, TapeWidth: 11,
	},
	"even": {
		Input: "abba", MaxSteps: DefaultMaxSteps, FPS: 4, DelayMS: 250, TapeWidth: 15,
	},
	"odd": {
		Input: "ababa", MaxSteps: DefaultMaxSteps, FPS: 4, DelayMS: 250, TapeWidth: 15,
	},
	"mismatch": {
		Input: "abab", MaxSteps: DefaultMaxSteps, FPS: 4, DelayMS: 250, TapeWidth: 15,
	},
	"near": {
		Input: "aabbabbaa", MaxSteps: DefaultMaxSteps, FPS: 8, DelayMS: 120, TapeWidth: 21,
	},
	"stress": {
		Input: "abbaabbaabbaabbaabba", MaxSteps: DefaultMaxSteps, FPS: 30, DelayMS: 30, TapeWidth: 31,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
