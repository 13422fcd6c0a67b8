package epsel

import "fmt"

// Thruster is one electric-propulsion candidate as cataloged: nominal
// operating point, hardware mass and flight heritage. Field units follow
// the catalog convention (mN, s, W, kg); only ThrustN converts.
type Thruster struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Manufacturer string  `json:"manufacturer"`
	Type         string  `json:"type"`
	Thrust       float64 `json:"thrust_mN"`
	Isp          float64 `json:"isp_s"`
	Power        float64 `json:"power_W"`
	Mass         float64 `json:"mass_kg"`
	TRL          int     `json:"trl"`
	Efficiency   float64 `json:"thrust_efficiency"`
	Propellant   string  `json:"propellant"`
}

// ThrustN returns the nominal thrust in newtons.
func (t Thruster) ThrustN() float64 {
	return t.Thrust / 1000
}

// String implements the Stringer interface.
func (t Thruster) String() string {
	return fmt.Sprintf("%s (%s): %.2f mN @ Isp %.0f s, %.0f W", t.Name, t.Type, t.Thrust, t.Isp, t.Power)
}
