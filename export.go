package epsel

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"
)

// resultDocument is the serialized shape of one selection run.
type resultDocument struct {
	Requirements requirementsJSON `json:"requirements"`
	Results      []resultJSON     `json:"results"`
}

type requirementsJSON struct {
	DeltaV       float64 `json:"delta_v_ms"`
	DryMass      float64 `json:"dry_mass_kg"`
	Power        float64 `json:"available_power_W"`
	MassBudget   float64 `json:"mass_budget_kg"`
	MinTRL       int     `json:"min_trl"`
	MaxDutyCycle float64 `json:"max_duty_cycle"`
}

// resultJSON mirrors Performance for serialization. encoding/json refuses
// non-finite floats, so the +Inf sentinels of impossible candidates encode
// as null.
type resultJSON struct {
	Rank           int      `json:"rank"`
	Thruster       Thruster `json:"thruster"`
	PropellantMass *float64 `json:"propellant_mass_kg"`
	TotalMass      *float64 `json:"total_mass_kg"`
	DurationDays   *float64 `json:"mission_duration_days"`
	Burns          int      `json:"num_burns_estimate"`
	FuelRatioPct   *float64 `json:"fuel_ratio_percent"`
	Feasible       bool     `json:"is_feasible"`
	Reasons        []string `json:"infeasibility_reasons"`
	MassScore      *float64 `json:"mass_score"`
	TimeScore      *float64 `json:"time_score"`
	Score          *float64 `json:"combined_score"`
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// finiteOrNil boxes a metric for JSON, dropping non-finite sentinels.
func finiteOrNil(v float64) *float64 {
	if !isFinite(v) {
		return nil
	}
	return &v
}

// ResultsJSON writes the ranked results and their mission requirements as
// an indented JSON document.
func ResultsJSON(w io.Writer, req MissionRequirements, results []Performance) error {
	doc := resultDocument{
		Requirements: requirementsJSON{
			DeltaV:       req.DeltaV,
			DryMass:      req.DryMass,
			Power:        req.Power,
			MassBudget:   req.MassBudget,
			MinTRL:       req.MinTRL,
			MaxDutyCycle: req.MaxDutyCycle,
		},
		Results: make([]resultJSON, 0, len(results)),
	}
	ranks := Ranks(results)
	for i, r := range results {
		reasons := r.Reasons
		if reasons == nil {
			reasons = []string{}
		}
		doc.Results = append(doc.Results, resultJSON{
			Rank:           ranks[i],
			Thruster:       r.Thruster,
			PropellantMass: finiteOrNil(r.PropellantMass),
			TotalMass:      finiteOrNil(r.TotalMass),
			DurationDays:   finiteOrNil(r.DurationDays),
			Burns:          r.Burns,
			FuelRatioPct:   finiteOrNil(r.FuelRatioPct),
			Feasible:       r.Feasible,
			Reasons:        reasons,
			MassScore:      finiteOrNil(r.MassScore),
			TimeScore:      finiteOrNil(r.TimeScore),
			Score:          finiteOrNil(r.Score),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// ResultsCSV writes one row per ranked thruster. Non-finite metrics render
// as "+Inf", strconv's spelling of the sentinel.
func ResultsCSV(w io.Writer, results []Performance) error {
	cw := csv.NewWriter(w)
	header := []string{
		"rank", "id", "name", "type", "feasible", "combined_score",
		"mass_score", "time_score", "propellant_kg", "total_kg",
		"duration_days", "burns", "fuel_ratio_pct", "reasons",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	ranks := Ranks(results)
	for i, r := range results {
		row := []string{
			strconv.Itoa(ranks[i]),
			r.Thruster.ID,
			r.Thruster.Name,
			r.Thruster.Type,
			strconv.FormatBool(r.Feasible),
			fmtMetric(r.Score),
			fmtMetric(r.MassScore),
			fmtMetric(r.TimeScore),
			fmtMetric(r.PropellantMass),
			fmtMetric(r.TotalMass),
			fmtMetric(r.DurationDays),
			strconv.Itoa(r.Burns),
			fmtMetric(r.FuelRatioPct),
			strings.Join(r.Reasons, "; "),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func fmtMetric(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
