package app

import (
	"errors"

	"github.com/specialistvlad/stepper/internal/numeric"
	"github.com/specialistvlad/stepper/internal/step"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ValueType    numeric.Type
	Direction    step.Direction
	CurrentValue string // parsed according to ValueType
	ConfigPath   string // candidate file

	// Legacy marks the three-argument invocation, which implies f32 and
	// words its errors without the value type.
	Legacy bool

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}
	if cfg.Legacy && cfg.ValueType == "" {
		cfg.ValueType = numeric.Float32
	}
	if _, err := numeric.ParseType(string(cfg.ValueType)); err != nil {
		return nil, err
	}
	if cfg.Legacy && cfg.ValueType != numeric.Float32 {
		return nil, errors.New("the legacy invocation only supports f32 values")
	}

	return &cfg, nil
}
