package physics

import "math"

// WaferType selects which wafer geometry sits on the chuck.
type WaferType int

const (
	Wafer300mm WaferType = 1
	Wafer200mm WaferType = 2
	Wafer150mm WaferType = 3
)

const (
	// SiliconDensity is the density of a silicon wafer in kg/m^3.
	SiliconDensity = 2330.0

	// WaferThickness is the wafer thickness in m (0.5 mm).
	WaferThickness = 0.5e-3

	// ChuckRadius is the radius of the vacuum chuck contact patch in m.
	// The chuck hardware is fixed; only the wafer varies with type.
	ChuckRadius = 0.030

	// ChuckArea is the chuck contact patch area in m^2.
	ChuckArea = math.Pi * ChuckRadius * ChuckRadius
)

const (
	// NoHoldSlipFactor is reported when the holding force is negligible:
	// with the vacuum vented, any acceleration slips the wafer.
	NoHoldSlipFactor = 999.0

	// minFrictionForce floors the slip ratio denominator in N so a
	// vented chuck does not divide by zero.
	minFrictionForce = 0.001
)

// Geometry is a wafer's physical footprint resolved from its type.
type Geometry struct {
	Radius float64 // m
	Mass   float64 // kg
}

func waferGeometry(radius float64) Geometry {
	return Geometry{
		Radius: radius,
		Mass:   SiliconDensity * math.Pi * radius * radius * WaferThickness,
	}
}

// Geometry resolves the wafer type to its radius and mass. Values
// outside the known set fall back to the 300mm wafer; that is the fab
// default, not an error.
func (wt WaferType) Geometry() Geometry {
	switch wt {
	case Wafer300mm:
		return waferGeometry(0.150)
	case Wafer200mm:
		return waferGeometry(0.100)
	case Wafer150mm:
		return waferGeometry(0.075)
	default:
		return waferGeometry(0.150)
	}
}

func (wt WaferType) String() string {
	switch wt {
	case Wafer300mm:
		return "300mm"
	case Wafer200mm:
		return "200mm"
	case Wafer150mm:
		return "150mm"
	default:
		return "300mm"
	}
}

// Parameters are the tuning constants a master may adjust before or
// during a run.
type Parameters struct {
	MuFriction            float64 // dimensionless, expected (0,1]
	SafetyMargin          float64 // fraction of the unity slip threshold
	NominalVacuumPressure float64 // Pa, >= 0
}

// DefaultParameters returns the chuck's nominal operating point.
func DefaultParameters() Parameters {
	return Parameters{
		MuFriction:            0.6,
		SafetyMargin:          0.85,
		NominalVacuumPressure: 53000.0,
	}
}

// Inputs are set by the master every communication step.
type Inputs struct {
	AngularAcceleration float64 // rad/s^2, magnitude only matters
	VacuumActive        bool
	WaferType           WaferType
}

// Outputs are recomputed every step and read-only to the master.
type Outputs struct {
	SlipFactor          float64 // >= 0, or NoHoldSlipFactor
	MaxSafeAcceleration float64 // rad/s^2, >= 0
	IsSlipping          bool
}

// Compute runs the instantaneous force balance: friction holding force
// from the vacuum against the inertial force at the wafer edge. The
// model is memoryless; there is no state evolving between calls.
func Compute(p Parameters, in Inputs) Outputs {
	geom := in.WaferType.Geometry()

	pressure := 0.0
	if in.VacuumActive {
		pressure = p.NominalVacuumPressure
	}

	frictionForce := p.MuFriction * pressure * ChuckArea
	inertialForce := geom.Mass * geom.Radius * math.Abs(in.AngularAcceleration)

	var out Outputs
	if frictionForce > minFrictionForce {
		out.SlipFactor = inertialForce / frictionForce
	} else {
		out.SlipFactor = NoHoldSlipFactor
	}

	// Unreachable for the closed wafer type set, but the guard stays.
	if mr := geom.Mass * geom.Radius; mr > 0 {
		out.MaxSafeAcceleration = frictionForce / mr
	}

	out.IsSlipping = out.SlipFactor > p.SafetyMargin
	return out
}
