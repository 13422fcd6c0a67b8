package epsel

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeScenario(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mission.toml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("err %s", err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario(writeScenario(t, `
[general]
catalog = "data/thrusters.json"
output = "table"
verbose = true

[mission]
delta_v = 800.0
dry_mass = 12.0
power = 30.0
mass_budget = 18.0
min_trl = 7
duty_cycle = 2.5
start = 2457061.5

[weights]
mass = 0.5
time = 0.5
`))
	if err != nil {
		t.Fatalf("err %s", err)
	}
	req := s.Requirements
	if req.DeltaV != 800 || req.DryMass != 12 || req.Power != 30 || req.MassBudget != 18 {
		t.Fatalf("requirements %+v", req)
	}
	if req.MinTRL != 7 || req.MaxDutyCycle != 2.5 {
		t.Fatalf("requirements %+v", req)
	}
	if s.Weights.Mass != 0.5 || s.Weights.Time != 0.5 {
		t.Fatalf("weights %s", s.Weights)
	}
	if s.Catalog != "data/thrusters.json" || s.Output != "table" || !s.Verbose {
		t.Fatalf("general %+v", s)
	}
	// JD 2457061.5 is 2015-02-08 00:00:00 UTC.
	want := time.Date(2015, 2, 8, 0, 0, 0, 0, time.UTC)
	if !s.Start.Equal(want) {
		t.Fatalf("start %s", s.Start)
	}
}

func TestLoadScenarioDefaults(t *testing.T) {
	s, err := LoadScenario(writeScenario(t, `
[mission]
delta_v = 150.0
dry_mass = 150.0
power = 300.0
mass_budget = 170.0
`))
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if s.Requirements.MinTRL != DefaultMinTRL || s.Requirements.MaxDutyCycle != DefaultMaxDutyCycle {
		t.Fatalf("requirements %+v", s.Requirements)
	}
	if s.Weights != DefaultWeights() {
		t.Fatalf("weights %s", s.Weights)
	}
	if s.Output != "text" || s.Catalog != "" || s.Verbose {
		t.Fatalf("general %+v", s)
	}
	if !s.Start.IsZero() {
		t.Fatalf("start %s", s.Start)
	}
}

func TestLoadScenarioTimestampStart(t *testing.T) {
	// A quoted timestamp and the equivalent Julian date must land on the
	// same instant.
	s, err := LoadScenario(writeScenario(t, `
[mission]
delta_v = 800.0
dry_mass = 12.0
power = 30.0
mass_budget = 18.0
start = "2015-02-08 00:00:00"
`))
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if !s.Start.Equal(time.Date(2015, 2, 8, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start %s", s.Start)
	}
}

func TestLoadScenarioErrors(t *testing.T) {
	if _, err := LoadScenario(filepath.Join(t.TempDir(), "nope.toml")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err %v", err)
	}
	if _, err := LoadScenario(writeScenario(t, "delta_v === yes")); !errors.Is(err, ErrInvalidSchema) {
		t.Fatalf("err %v", err)
	}
	// Zero is a valid delta_v, so an omitted key must error rather than
	// silently evaluate a Δv=0 mission.
	_, err := LoadScenario(writeScenario(t, `
[mission]
dry_mass = 12.0
power = 30.0
mass_budget = 18.0
`))
	if !errors.Is(err, ErrInvalidParameter) || !strings.Contains(err.Error(), "mission.delta_v is required") {
		t.Fatalf("omitted delta_v: err %v", err)
	}
	if _, err := LoadScenario(writeScenario(t, `
[mission]
delta_v = -5.0
dry_mass = 12.0
power = 30.0
mass_budget = 18.0
`)); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("err %v", err)
	}
	if _, err := LoadScenario(writeScenario(t, `
[mission]
delta_v = 800.0
dry_mass = 12.0
power = 30.0
mass_budget = 18.0

[weights]
mass = 1.5
time = 0.6
`)); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("err %v", err)
	}
	if _, err := LoadScenario(writeScenario(t, `
[mission]
delta_v = 800.0
dry_mass = 12.0
power = 30.0
mass_budget = 18.0
start = "next tuesday"
`)); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("err %v", err)
	}
}

func TestParseEpoch(t *testing.T) {
	// J2000: JD 2451545.0 is 2000-01-01 12:00:00 UTC.
	dt, err := ParseEpoch("2451545.0")
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if !dt.Equal(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("epoch %s", dt)
	}
	dt, err = ParseEpoch("2015-02-08 00:00:00")
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if !dt.Equal(time.Date(2015, 2, 8, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("epoch %s", dt)
	}
	if _, err = ParseEpoch("half past never"); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("err %v", err)
	}
}

func TestCompletionDate(t *testing.T) {
	start := time.Date(2015, 2, 8, 0, 0, 0, 0, time.UTC)
	done, ok := CompletionDate(start, 10)
	if !ok {
		t.Fatal("no completion date")
	}
	if !done.Equal(start.AddDate(0, 0, 10)) {
		t.Fatalf("completion %s", done)
	}
	if _, ok = CompletionDate(time.Time{}, 10); ok {
		t.Fatal("completion without a start epoch")
	}
	if _, ok = CompletionDate(start, MissionDuration(0, 1000, 1)); ok {
		t.Fatal("completion for an endless mission")
	}
}
