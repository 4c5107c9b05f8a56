/*package geom contains the spatial-dimensionality modes, plasma region
bounds, and the per-level grid geometry and cell masks that particle kernels
classify against.*/
package geom

import (
	"fmt"
)

// Mode selects which spatial axes are active. It is read once from
// configuration at startup and threaded through every sampling and
// position-update call, so numeric behavior per mode stays in one place.
type Mode int

const (
	// Mode3D is full 3-D Cartesian.
	Mode3D Mode = iota
	// ModeRZ is axisymmetric. Particles are still pushed in all three
	// axes; the azimuthal particle count is never scaled by refinement.
	ModeRZ
	// ModeXZ is 2-D Cartesian. The y axis is inactive.
	ModeXZ
	// Mode1DZ is 1-D. Only the z axis is active.
	Mode1DZ
)

// ParseMode converts the configuration spelling of a mode to its Mode value.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "3d":
		return Mode3D, nil
	case "rz":
		return ModeRZ, nil
	case "xz":
		return ModeXZ, nil
	case "1dz":
		return Mode1DZ, nil
	}
	return Mode3D, fmt.Errorf("'%s' is not a valid dimensionality mode. The valid modes are '3d', 'rz', 'xz', and '1dz'.", s)
}

func (m Mode) String() string {
	switch m {
	case ModeRZ:
		return "rz"
	case ModeXZ:
		return "xz"
	case Mode1DZ:
		return "1dz"
	}
	return "3d"
}

// MarshalYAML writes the mode under its configuration spelling.
func (m Mode) MarshalYAML() (interface{}, error) { return m.String(), nil }

// ActiveX returns true if the x axis is sampled and pushed in this mode.
func (m Mode) ActiveX() bool { return m != Mode1DZ }

// ActiveY returns true if the y axis is sampled and pushed in this mode.
// RZ counts: it pushes particles in 3-D.
func (m Mode) ActiveY() bool { return m == Mode3D || m == ModeRZ }

// ActiveZ returns true: every mode keeps z.
func (m Mode) ActiveZ() bool { return true }
