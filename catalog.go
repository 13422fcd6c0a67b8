package epsel

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Builtin catalog of flight-proven (and flight-bound) electric thrusters.
// Figures are published nominal operating points, not full envelopes.
var (
	// SPT100 is the workhorse Hall thruster of GEO station keeping.
	SPT100 = Thruster{ID: "spt-100", Name: "SPT-100", Manufacturer: "OKB Fakel", Type: "hall", Thrust: 83, Isp: 1600, Power: 1350, Mass: 3.5, TRL: 9, Efficiency: 0.50, Propellant: "xenon"}
	// PPS1350 pushed SMART-1 to the Moon.
	PPS1350 = Thruster{ID: "pps-1350", Name: "PPS-1350-G", Manufacturer: "Safran", Type: "hall", Thrust: 89, Isp: 1650, Power: 1500, Mass: 5.3, TRL: 9, Efficiency: 0.55, Propellant: "xenon"}
	// BHT200 flew on TacSat-2, the first US Hall thruster in orbit.
	BHT200 = Thruster{ID: "bht-200", Name: "BHT-200", Manufacturer: "Busek", Type: "hall", Thrust: 13, Isp: 1390, Power: 200, Mass: 1.0, TRL: 8, Efficiency: 0.43, Propellant: "xenon"}
	// XR5 raises and keeps AEHF birds, formerly known as BPT-4000.
	XR5 = Thruster{ID: "xr-5", Name: "XR-5", Manufacturer: "Aerojet Rocketdyne", Type: "hall", Thrust: 290, Isp: 2020, Power: 4500, Mass: 12.3, TRL: 9, Efficiency: 0.58, Propellant: "xenon"}
	// HERMeS is the 12.5 kW class thruster developed for the Gateway PPE.
	HERMeS = Thruster{ID: "hermes", Name: "HERMeS", Manufacturer: "NASA GRC / Aerojet Rocketdyne", Type: "hall", Thrust: 680, Isp: 2960, Power: 12500, Mass: 28, TRL: 6, Efficiency: 0.63, Propellant: "xenon"}
	// NSTAR is the Deep Space 1 and Dawn ion engine.
	NSTAR = Thruster{ID: "nstar", Name: "NSTAR", Manufacturer: "Hughes / NASA JPL", Type: "gridded-ion", Thrust: 92, Isp: 3100, Power: 2300, Mass: 8.2, TRL: 9, Efficiency: 0.61, Propellant: "xenon"}
	// NEXTC shoved DART into Dimorphos.
	NEXTC = Thruster{ID: "next-c", Name: "NEXT-C", Manufacturer: "Aerojet Rocketdyne", Type: "gridded-ion", Thrust: 236, Isp: 4190, Power: 6900, Mass: 13.5, TRL: 9, Efficiency: 0.70, Propellant: "xenon"}
	// BIT3 is the iodine RF ion engine that flew on EQUULEUS.
	BIT3 = Thruster{ID: "bit-3", Name: "BIT-3", Manufacturer: "Busek", Type: "gridded-ion", Thrust: 1.1, Isp: 2150, Power: 75, Mass: 1.4, TRL: 8, Efficiency: 0.35, Propellant: "iodine"}
	// IFMNano is Enpulsion's field-emission thruster, dozens in orbit.
	IFMNano = Thruster{ID: "ifm-nano", Name: "IFM Nano", Manufacturer: "Enpulsion", Type: "feep", Thrust: 0.35, Isp: 3000, Power: 40, Mass: 0.9, TRL: 8, Efficiency: 0.30, Propellant: "indium"}
	// PPTCUP is a pulsed plasma thruster the size of a CubeSat unit wall.
	PPTCUP = Thruster{ID: "pptcup", Name: "PPTCUP", Manufacturer: "Mars Space", Type: "ppt", Thrust: 0.04, Isp: 640, Power: 2, Mass: 0.28, TRL: 7, Efficiency: 0.08, Propellant: "PTFE"}
)

// BuiltinCatalog returns the compiled-in thruster catalog, freshly
// allocated on every call so callers may filter or reorder freely.
func BuiltinCatalog() []Thruster {
	return []Thruster{SPT100, PPS1350, BHT200, XR5, HERMeS, NSTAR, NEXTC, BIT3, IFMNano, PPTCUP}
}

// catalogDocument is the on-disk shape: a single object holding a
// "thrusters" list. The list decodes through a pointer so a missing key is
// told apart from an empty catalog, and records decode through pointer
// fields so absent values are told apart from zeros. No defaulting happens
// here: every field of every record is mandatory.
type catalogDocument struct {
	Thrusters *[]thrusterRecord `json:"thrusters"`
}

type thrusterRecord struct {
	ID           *string  `json:"id"`
	Name         *string  `json:"name"`
	Manufacturer *string  `json:"manufacturer"`
	Type         *string  `json:"type"`
	Thrust       *float64 `json:"thrust_mN"`
	Isp          *float64 `json:"isp_s"`
	Power        *float64 `json:"power_W"`
	Mass         *float64 `json:"mass_kg"`
	TRL          *int     `json:"trl"`
	Efficiency   *float64 `json:"thrust_efficiency"`
	Propellant   *string  `json:"propellant"`
}

// Validate reports the first missing field of this record.
func (r thrusterRecord) Validate() error {
	fields := []struct {
		name string
		set  bool
	}{
		{"id", r.ID != nil},
		{"name", r.Name != nil},
		{"manufacturer", r.Manufacturer != nil},
		{"type", r.Type != nil},
		{"thrust_mN", r.Thrust != nil},
		{"isp_s", r.Isp != nil},
		{"power_W", r.Power != nil},
		{"mass_kg", r.Mass != nil},
		{"trl", r.TRL != nil},
		{"thrust_efficiency", r.Efficiency != nil},
		{"propellant", r.Propellant != nil},
	}
	for _, f := range fields {
		if !f.set {
			return fmt.Errorf("missing field '%s'", f.name)
		}
	}
	return nil
}

func (r thrusterRecord) toThruster() Thruster {
	return Thruster{
		ID:           *r.ID,
		Name:         *r.Name,
		Manufacturer: *r.Manufacturer,
		Type:         *r.Type,
		Thrust:       *r.Thrust,
		Isp:          *r.Isp,
		Power:        *r.Power,
		Mass:         *r.Mass,
		TRL:          *r.TRL,
		Efficiency:   *r.Efficiency,
		Propellant:   *r.Propellant,
	}
}

// label names a record in schema errors, preferring its ID when present.
func (r thrusterRecord) label(position int) string {
	if r.ID != nil {
		return fmt.Sprintf("thruster '%s'", *r.ID)
	}
	return fmt.Sprintf("thruster #%d", position)
}

// LoadCatalog reads a thruster catalog from the JSON document at path. A
// missing file wraps ErrNotFound; a document which fails to parse, lacks
// the "thrusters" list, or holds a record with a missing field wraps
// ErrInvalidSchema. A catalog of zero thrusters is valid.
func LoadCatalog(path string) ([]Thruster, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: catalog file '%s'", ErrNotFound, path)
		}
		return nil, err
	}
	var doc catalogDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	if doc.Thrusters == nil {
		return nil, fmt.Errorf("%w: missing 'thrusters' list", ErrInvalidSchema)
	}
	thrusters := make([]Thruster, 0, len(*doc.Thrusters))
	for i, rec := range *doc.Thrusters {
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSchema, rec.label(i), err)
		}
		thrusters = append(thrusters, rec.toThruster())
	}
	return thrusters, nil
}

// ThrusterByID finds a cataloged thruster. Wraps ErrNotFound for unknown
// IDs.
func ThrusterByID(thrusters []Thruster, id string) (Thruster, error) {
	for _, t := range thrusters {
		if t.ID == id {
			return t, nil
		}
	}
	return Thruster{}, fmt.Errorf("%w: thruster '%s'", ErrNotFound, id)
}
