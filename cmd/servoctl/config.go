package main

import (
	"os"

	"gopkg.in/yaml.v2"

	"softservo-go/errcode"
	"softservo-go/softservo"
)

// ServoSpec is one calibrated servo in the config file. MinUs/MaxUs of zero
// fall back to the library defaults; Start is an initial position in degrees
// (omitted means neutral).
type ServoSpec struct {
	Name  string `yaml:"name"`
	Pin   int    `yaml:"pin"`
	MinUs int    `yaml:"min_us"`
	MaxUs int    `yaml:"max_us"`
	Start *int   `yaml:"start"`
}

type Config struct {
	Servos []ServoSpec `yaml:"servos"`
	Sweep  bool        `yaml:"sweep"`
	StepMs int         `yaml:"step_ms"`
}

func loadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return parseConfig(b)
}

func parseConfig(b []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, &errcode.E{C: errcode.InvalidParams, Op: "parseConfig", Err: err}
	}
	if len(c.Servos) == 0 {
		return Config{}, &errcode.E{C: errcode.InvalidParams, Op: "parseConfig", Msg: "no servos configured"}
	}
	for i := range c.Servos {
		s := &c.Servos[i]
		if s.Pin <= 0 {
			return Config{}, &errcode.E{C: errcode.InvalidParams, Op: "parseConfig",
				Msg: "servo " + s.Name + ": missing pin"}
		}
		if s.MinUs == 0 {
			s.MinUs = softservo.DefaultMinPulseUs
		}
		if s.MaxUs == 0 {
			s.MaxUs = softservo.DefaultMaxPulseUs
		}
	}
	if c.StepMs <= 0 {
		c.StepMs = 50
	}
	return c, nil
}
