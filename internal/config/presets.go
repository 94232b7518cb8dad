package config

import "sort"

// Presets are the stock validation scenarios. "safe" holds the wafer,
// "slip" overdrives the spindle, "vacuum-loss" vents the chuck mid-run.
var Presets = map[string]*Config{
	"safe": {
		Name: "safe", WaferType: 2, StepSize: 0.1,
		Params: ParamsConfig{MuFriction: 0.6, SafetyMargin: 0.85, NominalVacuumPressure: 53000},
		Segments: []SegmentConfig{
			{Duration: 2.0, AngularAcceleration: 5.0, VacuumActive: true},
		},
	},
	"slip": {
		Name: "slip", WaferType: 2, StepSize: 0.1,
		Params: ParamsConfig{MuFriction: 0.6, SafetyMargin: 0.85, NominalVacuumPressure: 53000},
		Segments: []SegmentConfig{
			{Duration: 0.5, AngularAcceleration: 5.0, VacuumActive: true},
			{Duration: 1.5, AngularAcceleration: 200.0, VacuumActive: true},
		},
	},
	"vacuum-loss": {
		Name: "vacuum-loss", WaferType: 1, StepSize: 0.1,
		Params: ParamsConfig{MuFriction: 0.6, SafetyMargin: 0.85, NominalVacuumPressure: 53000},
		Segments: []SegmentConfig{
			{Duration: 1.0, AngularAcceleration: 5.0, VacuumActive: true},
			{Duration: 1.0, AngularAcceleration: 5.0, VacuumActive: false},
		},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
