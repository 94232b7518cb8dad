package fmi

import "github.com/google/uuid"

// ModelName identifies the model in external packaging.
const ModelName = "WaferSlipDynamics"

// ModelGUID is the instantiation token a conformant master reads from
// modelDescription.xml. Derived from the model name so the packaging
// side can reproduce it without sharing state with this module.
var ModelGUID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(ModelName)).String()

// ValueReference identifies one scalar variable on the wire.
type ValueReference uint32

const (
	VRAngularAcceleration   ValueReference = 1
	VRVacuumActive          ValueReference = 2
	VRWaferType             ValueReference = 3
	VRSlipFactor            ValueReference = 4
	VRMaxSafeAcceleration   ValueReference = 5
	VRIsSlipping            ValueReference = 6
	VRMuFriction            ValueReference = 7
	VRSafetyMargin          ValueReference = 8
	VRNominalVacuumPressure ValueReference = 9
)

type Causality string

const (
	CausalityInput     Causality = "input"
	CausalityOutput    Causality = "output"
	CausalityParameter Causality = "parameter"
)

type VariableType string

const (
	TypeReal    VariableType = "real"
	TypeInteger VariableType = "integer"
	TypeBoolean VariableType = "boolean"
)

// ScalarVariable describes one entry of the model's variable table.
type ScalarVariable struct {
	Ref       ValueReference
	Name      string
	Type      VariableType
	Causality Causality
}

var modelVariables = []ScalarVariable{
	{VRAngularAcceleration, "angularAcceleration", TypeReal, CausalityInput},
	{VRVacuumActive, "vacuumActive", TypeBoolean, CausalityInput},
	{VRWaferType, "waferType", TypeInteger, CausalityInput},
	{VRSlipFactor, "slipFactor", TypeReal, CausalityOutput},
	{VRMaxSafeAcceleration, "maxSafeAcceleration", TypeReal, CausalityOutput},
	{VRIsSlipping, "isSlipping", TypeBoolean, CausalityOutput},
	{VRMuFriction, "muFriction", TypeReal, CausalityParameter},
	{VRSafetyMargin, "safetyMargin", TypeReal, CausalityParameter},
	{VRNominalVacuumPressure, "nominalVacuumPressure", TypeReal, CausalityParameter},
}

// ModelVariables returns the variable table in reference order. The
// packaging side mirrors this table into modelDescription.xml; the two
// must stay consistent.
func ModelVariables() []ScalarVariable {
	out := make([]ScalarVariable, len(modelVariables))
	copy(out, modelVariables)
	return out
}
