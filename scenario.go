package epsel

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/spf13/viper"
)

// EpochFormat is the timestamp layout accepted for mission start epochs.
const EpochFormat = "2006-01-02 15:04:05"

// Scenario is one mission definition as read from a TOML file, e.g.
//
//	[general]
//	catalog = "data/thrusters.json"
//	output = "table"
//	verbose = true
//
//	[mission]
//	delta_v = 800.0
//	dry_mass = 12.0
//	power = 30.0
//	mass_budget = 18.0
//	min_trl = 6
//	duty_cycle = 3.0
//	start = 2460677.5
//
//	[weights]
//	mass = 0.4
//	time = 0.6
//
// The start epoch may be a Julian date or a quoted EpochFormat timestamp.
type Scenario struct {
	Requirements MissionRequirements
	Weights      Weights   // validated, not yet normalized
	Catalog      string    // catalog path; empty selects the builtin catalog
	Output       string    // text, table, json, csv or tui
	Verbose      bool
	Start        time.Time // mission start epoch; zero when unset
}

// ParseEpoch reads a mission start epoch given either as a Julian date or
// as an EpochFormat timestamp (UTC).
func ParseEpoch(value string) (time.Time, error) {
	if jd, err := strconv.ParseFloat(value, 64); err == nil && jd > 0 {
		return julian.JDToTime(jd), nil
	}
	dt, err := time.Parse(EpochFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: start epoch '%s' is neither a Julian date nor '%s'", ErrInvalidParameter, value, EpochFormat)
	}
	return dt, nil
}

// LoadScenario reads a TOML mission scenario from path. The [mission]
// sizing keys (delta_v, dry_mass, power, mass_budget) must be present —
// zero is a legitimate delta_v, so an omitted key cannot be told from one
// set to the default. The remaining keys take the usual defaults (TRL
// floor 6, duty cycle 3.0, weights 0.4/0.6, text output). Requirements and
// weights are validated; the weights are returned unnormalized so the
// caller keeps the user's ratios for display. A missing file wraps
// ErrNotFound, an unparseable one wraps ErrInvalidSchema.
func LoadScenario(path string) (Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("mission.min_trl", DefaultMinTRL)
	v.SetDefault("mission.duty_cycle", DefaultMaxDutyCycle)
	defaults := DefaultWeights()
	v.SetDefault("weights.mass", defaults.Mass)
	v.SetDefault("weights.time", defaults.Time)
	v.SetDefault("general.output", "text")

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Scenario{}, fmt.Errorf("%w: scenario file '%s'", ErrNotFound, path)
		}
		return Scenario{}, fmt.Errorf("%w: scenario '%s': %v", ErrInvalidSchema, path, err)
	}
	for _, key := range []string{"mission.delta_v", "mission.dry_mass", "mission.power", "mission.mass_budget"} {
		if !v.IsSet(key) {
			return Scenario{}, fmt.Errorf("scenario '%s': %w: %s is required", path, ErrInvalidParameter, key)
		}
	}

	s := Scenario{
		Requirements: MissionRequirements{
			DeltaV:       v.GetFloat64("mission.delta_v"),
			DryMass:      v.GetFloat64("mission.dry_mass"),
			Power:        v.GetFloat64("mission.power"),
			MassBudget:   v.GetFloat64("mission.mass_budget"),
			MinTRL:       v.GetInt("mission.min_trl"),
			MaxDutyCycle: v.GetFloat64("mission.duty_cycle"),
		},
		Weights: Weights{Mass: v.GetFloat64("weights.mass"), Time: v.GetFloat64("weights.time")},
		Catalog: v.GetString("general.catalog"),
		Output:  v.GetString("general.output"),
		Verbose: v.GetBool("general.verbose"),
	}
	if v.IsSet("mission.start") {
		if jde := v.GetFloat64("mission.start"); jde > 0 {
			s.Start = julian.JDToTime(jde)
		} else {
			start, err := ParseEpoch(v.GetString("mission.start"))
			if err != nil {
				return Scenario{}, fmt.Errorf("scenario '%s': %w", path, err)
			}
			s.Start = start
		}
	}
	if err := s.Requirements.Validate(); err != nil {
		return Scenario{}, fmt.Errorf("scenario '%s': %w", path, err)
	}
	if err := s.Weights.Validate(); err != nil {
		return Scenario{}, fmt.Errorf("scenario '%s': %w", path, err)
	}
	return s, nil
}

// CompletionDate projects the calendar date at which a mission of the given
// duration wraps up, via Julian date arithmetic from the start epoch. The
// boolean is false when no date exists: zero start epoch or a non-finite
// duration.
func CompletionDate(start time.Time, durationDays float64) (time.Time, bool) {
	if start.IsZero() || !isFinite(durationDays) {
		return time.Time{}, false
	}
	return julian.JDToTime(julian.TimeToJD(start) + durationDays), true
}
