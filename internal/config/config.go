package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fab-twin/waferslip/internal/cosim"
	"github.com/fab-twin/waferslip/internal/physics"
)

const (
	DefaultStepSize = 0.1
	DefaultDuration = 2.0
	DefaultAccel    = 5.0
)

// Config is the YAML shape of a scenario file.
type Config struct {
	Name      string          `yaml:"name"`
	WaferType int             `yaml:"wafer_type"`
	StepSize  float64         `yaml:"step_size"`
	Params    ParamsConfig    `yaml:"parameters"`
	Segments  []SegmentConfig `yaml:"segments"`
}

type ParamsConfig struct {
	MuFriction            float64 `yaml:"mu_friction"`
	SafetyMargin          float64 `yaml:"safety_margin"`
	NominalVacuumPressure float64 `yaml:"nominal_vacuum_pressure"`
}

type SegmentConfig struct {
	Duration            float64 `yaml:"duration"`
	AngularAcceleration float64 `yaml:"angular_acceleration"`
	VacuumActive        bool    `yaml:"vacuum_active"`
}

func DefaultConfig() *Config {
	p := physics.DefaultParameters()
	return &Config{
		Name:      "default",
		WaferType: int(physics.Wafer300mm),
		StepSize:  DefaultStepSize,
		Params: ParamsConfig{
			MuFriction:            p.MuFriction,
			SafetyMargin:          p.SafetyMargin,
			NominalVacuumPressure: p.NominalVacuumPressure,
		},
		Segments: []SegmentConfig{
			{Duration: DefaultDuration, AngularAcceleration: DefaultAccel, VacuumActive: true},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Scenario converts the file shape into the driver's scenario.
func (c *Config) Scenario() cosim.Scenario {
	sc := cosim.Scenario{
		Name:      c.Name,
		WaferType: physics.WaferType(c.WaferType),
		StepSize:  c.StepSize,
		Params: physics.Parameters{
			MuFriction:            c.Params.MuFriction,
			SafetyMargin:          c.Params.SafetyMargin,
			NominalVacuumPressure: c.Params.NominalVacuumPressure,
		},
	}
	for _, seg := range c.Segments {
		sc.Segments = append(sc.Segments, cosim.Segment{
			Duration:            seg.Duration,
			AngularAcceleration: seg.AngularAcceleration,
			VacuumActive:        seg.VacuumActive,
		})
	}
	return sc
}
