package main

import (
	"testing"

	"softservo-go/errcode"
	"softservo-go/softservo"
)

func TestParseConfigDefaults(t *testing.T) {
	c, err := parseConfig([]byte(`
servos:
  - name: pan
    pin: 18
  - name: tilt
    pin: 23
    min_us: 900
    max_us: 2100
    start: 45
sweep: true
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(c.Servos) != 2 {
		t.Fatalf("got %d servos, want 2", len(c.Servos))
	}
	pan := c.Servos[0]
	if pan.MinUs != softservo.DefaultMinPulseUs || pan.MaxUs != softservo.DefaultMaxPulseUs {
		t.Errorf("pan defaults %d/%d, want %d/%d",
			pan.MinUs, pan.MaxUs, softservo.DefaultMinPulseUs, softservo.DefaultMaxPulseUs)
	}
	if pan.Start != nil {
		t.Error("omitted start must stay nil")
	}
	tilt := c.Servos[1]
	if tilt.MinUs != 900 || tilt.MaxUs != 2100 {
		t.Errorf("tilt range %d/%d, want 900/2100", tilt.MinUs, tilt.MaxUs)
	}
	if tilt.Start == nil || *tilt.Start != 45 {
		t.Errorf("tilt start %v, want 45", tilt.Start)
	}
	if !c.Sweep || c.StepMs != 50 {
		t.Errorf("sweep=%v step=%d, want sweep with default 50ms step", c.Sweep, c.StepMs)
	}
}

func TestParseConfigRejectsEmpty(t *testing.T) {
	if _, err := parseConfig([]byte("sweep: true\n")); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("err = %v, want invalid_params", err)
	}
}

func TestParseConfigRejectsMissingPin(t *testing.T) {
	_, err := parseConfig([]byte(`
servos:
  - name: pan
`))
	if errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("err = %v, want invalid_params", err)
	}
}

func TestParseConfigRejectsBadYAML(t *testing.T) {
	if _, err := parseConfig([]byte("servos: [")); err == nil {
		t.Fatal("malformed yaml accepted")
	}
}
