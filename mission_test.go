package epsel

import (
	"errors"
	"strings"
	"testing"
)

func TestNewMissionRequirementsDefaults(t *testing.T) {
	req := NewMissionRequirements(800, 12, 30, 18)
	if req.MinTRL != 6 {
		t.Fatalf("MinTRL = %d", req.MinTRL)
	}
	if req.MaxDutyCycle != 3.0 {
		t.Fatalf("MaxDutyCycle = %f", req.MaxDutyCycle)
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("err %s", err)
	}
}

func TestMissionRequirementsValidate(t *testing.T) {
	cases := []struct {
		name string
		req  MissionRequirements
		want string
	}{
		{"negative delta-v", NewMissionRequirements(-1, 12, 30, 18), "delta-v"},
		{"zero mass", NewMissionRequirements(800, 0, 30, 18), "satellite mass"},
		{"negative power", NewMissionRequirements(800, 12, -5, 18), "power"},
		{"zero budget", NewMissionRequirements(800, 12, 30, 0), "budget"},
	}
	for _, c := range cases {
		err := c.req.Validate()
		if err == nil {
			t.Fatalf("%s: no error", c.name)
		}
		if !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("%s: err %s does not wrap ErrInvalidParameter", c.name, err)
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Fatalf("%s: err %s", c.name, err)
		}
	}
	// Zero Δv is a legitimate mission (e.g. pure attitude desaturation
	// trade studies), not a validation failure.
	if err := NewMissionRequirements(0, 12, 30, 18).Validate(); err != nil {
		t.Fatalf("err %s", err)
	}
}

func TestMissionRequirementsString(t *testing.T) {
	s := NewMissionRequirements(800, 12, 30, 18).String()
	for _, want := range []string{"Δv=800", "dry=12.0", "power=30", "budget=18.0", "TRL≥6", "duty≤3.0x"} {
		if !strings.Contains(s, want) {
			t.Fatalf("%s missing %s", s, want)
		}
	}
}
