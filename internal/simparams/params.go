// Package simparams maps a pitch's raw measurements into the ordered
// parameter set the external simulator expects on its command line.
package simparams

import (
	"strconv"

	"mlb-pitch-sim/internal/domain/pitches"
)

// None is the placeholder passed for a missing measurement. The simulator
// takes its 15 parameters positionally, so a missing value must still occupy
// its slot; callers are told which parameters were missing so they can warn
// before launching.
const None = "None"

// Params holds the simulator's parameter set, stringified for transport.
// The coordinate origin is the back of home plate; the *50 values are sampled
// at the y50 reference point roughly 50 ft out.
type Params struct {
	StrikeZoneTop string // top of strike zone, ft above ground
	StrikeZoneBot string // bottom of strike zone, ft above ground
	AX50          string // acceleration at y50, ft/s^2, assumed constant
	AY50          string
	AZ50          string
	VX50          string // velocity at y50, ft/s
	VY50          string
	VZ50          string
	X50           string // position at y50, ft
	Y50           string
	Z50           string
	X0            string // position at y=1.417 ft
	Z0            string
	SpinDirection string // spin axis angle, degrees
	Extension     string // release distance in front of the rubber, ft
}

// Args returns the parameters in the fixed positional order the simulator
// binary expects. Always exactly 15 entries.
func (p Params) Args() []string {
	return []string{
		p.StrikeZoneTop,
		p.StrikeZoneBot,
		p.AX50,
		p.AY50,
		p.AZ50,
		p.VX50,
		p.VY50,
		p.VZ50,
		p.X50,
		p.Y50,
		p.Z50,
		p.X0,
		p.Z0,
		p.SpinDirection,
		p.Extension,
	}
}

// Extract maps a pitch's measurement bag into Params. Pure, no I/O. The
// second return lists the simulator parameter names whose source fields were
// absent; those slots hold the None placeholder.
func Extract(p pitches.Pitch) (Params, []string) {
	var missing []string

	pick := func(d pitches.Data, key, param string) string {
		v, ok := d.Float64(key)
		if !ok {
			missing = append(missing, param)
			return None
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	coords, _ := p.Data.Sub("coordinates")
	breaks, _ := p.Data.Sub("breaks")

	params := Params{
		StrikeZoneTop: pick(p.Data, "strikeZoneTop", "strikeZoneTop"),
		StrikeZoneBot: pick(p.Data, "strikeZoneBottom", "strikeZoneBot"),
		AX50:          pick(coords, "aX", "aX50"),
		AY50:          pick(coords, "aY", "aY50"),
		AZ50:          pick(coords, "aZ", "aZ50"),
		VX50:          pick(coords, "vX0", "vX50"),
		VY50:          pick(coords, "vY0", "vY50"),
		VZ50:          pick(coords, "vZ0", "vZ50"),
		X50:           pick(coords, "x0", "x50"),
		Y50:           pick(coords, "y0", "y50"),
		Z50:           pick(coords, "z0", "z50"),
		X0:            pick(coords, "pX", "x0"),
		Z0:            pick(coords, "pZ", "z0"),
		SpinDirection: pick(breaks, "spinDirection", "spinDirection"),
		Extension:     pick(p.Data, "extension", "extension"),
	}

	return params, missing
}
