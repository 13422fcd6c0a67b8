package epsel

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
)

func exportFixture() (MissionRequirements, []Performance) {
	req := NewMissionRequirements(100, 12, 30, 100)
	dud := testThruster("dud")
	dud.Isp = 0
	return req, Select([]Thruster{testThruster("ok"), dud}, req, DefaultWeights(), true)
}

func TestResultsJSON(t *testing.T) {
	req, results := exportFixture()
	var buf bytes.Buffer
	if err := ResultsJSON(&buf, req, results); err != nil {
		t.Fatalf("err %s", err)
	}
	var doc struct {
		Requirements map[string]any   `json:"requirements"`
		Results      []map[string]any `json:"results"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("err %s", err)
	}
	if len(doc.Results) != 2 {
		t.Fatalf("%d results", len(doc.Results))
	}
	if doc.Requirements["delta_v_ms"].(float64) != 100 {
		t.Fatalf("requirements %v", doc.Requirements)
	}
	if doc.Results[0]["combined_score"] == nil {
		t.Fatal("feasible score encoded as null")
	}
	// The dud carries +Inf metrics, which JSON cannot represent: they must
	// encode as null rather than fail the whole document.
	if doc.Results[1]["combined_score"] != nil {
		t.Fatalf("sentinel score encoded as %v", doc.Results[1]["combined_score"])
	}
	if doc.Results[1]["is_feasible"].(bool) {
		t.Fatal("dud marked feasible")
	}
	if doc.Results[0]["rank"].(float64) != 1 {
		t.Fatalf("rank %v", doc.Results[0]["rank"])
	}
	// Feasible entries serialize an empty reason list, not null.
	if doc.Results[0]["infeasibility_reasons"] == nil {
		t.Fatal("reasons encoded as null")
	}
}

func TestResultsCSV(t *testing.T) {
	_, results := exportFixture()
	var buf bytes.Buffer
	if err := ResultsCSV(&buf, results); err != nil {
		t.Fatalf("err %s", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if len(rows) != 3 {
		t.Fatalf("%d rows", len(rows))
	}
	if rows[0][0] != "rank" || rows[0][5] != "combined_score" {
		t.Fatalf("header %v", rows[0])
	}
	if rows[1][1] != "ok" || rows[2][1] != "dud" {
		t.Fatalf("order %v / %v", rows[1], rows[2])
	}
	if rows[2][5] != "+Inf" {
		t.Fatalf("sentinel rendered as %q", rows[2][5])
	}
	if !strings.Contains(rows[2][13], "Specific impulse must be positive") {
		t.Fatalf("reasons %q", rows[2][13])
	}
}
