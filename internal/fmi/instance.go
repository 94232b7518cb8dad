package fmi

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fab-twin/waferslip/internal/physics"
)

// Logger receives log lines emitted by a slave instance, mirroring the
// fmi2CallbackLogger signature.
type Logger func(instanceName string, status Status, category, message string)

type lifecycleState int

const (
	stateInstantiated lifecycleState = iota
	stateInitializing
	stateStepComplete
	stateTerminated
)

func (s lifecycleState) String() string {
	switch s {
	case stateInstantiated:
		return "instantiated"
	case stateInitializing:
		return "initializing"
	case stateStepComplete:
		return "step-complete"
	case stateTerminated:
		return "terminated"
	default:
		return "invalid"
	}
}

// instance is one model's worth of lifecycle, parameters and state.
// Exclusively owned by its handle; never shared between handles.
type instance struct {
	name      string
	guid      string
	loggingOn bool
	logger    Logger

	state lifecycleState

	params  physics.Parameters
	inputs  physics.Inputs
	outputs physics.Outputs

	// geom is re-resolved from the wafer type at initialization and
	// before every step; the chuck contact patch itself is the fixed
	// physics.ChuckArea constant.
	geom physics.Geometry

	startTime        float64
	stopTime         float64
	stopTimeDefined  bool
	tolerance        float64
	toleranceDefined bool
}

func newInstance(name, guid string, logger Logger, loggingOn bool) *instance {
	inst := &instance{
		name:      name,
		guid:      guid,
		loggingOn: loggingOn,
		logger:    logger,
		state:     stateInstantiated,
		params:    physics.DefaultParameters(),
		inputs: physics.Inputs{
			WaferType: physics.Wafer300mm,
		},
	}
	// Resolve geometry up front so getters are valid before the
	// initialization handshake completes.
	inst.resolveGeometry()
	return inst
}

func (inst *instance) resolveGeometry() {
	inst.geom = inst.inputs.WaferType.Geometry()
}

// step recomputes geometry and runs the force balance. The model is
// memoryless, so the communication step size plays no role here.
func (inst *instance) step() {
	inst.resolveGeometry()
	inst.outputs = physics.Compute(inst.params, inst.inputs)
	inst.state = stateStepComplete
}

// clearOutputs wipes stale results from a previous run on a reused
// handle.
func (inst *instance) clearOutputs() {
	inst.outputs.SlipFactor = 0
	inst.outputs.IsSlipping = false
}

func (inst *instance) logf(status Status, category, format string, args ...any) {
	if !inst.loggingOn {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if inst.logger != nil {
		inst.logger(inst.name, status, category, msg)
		return
	}
	entry := logrus.WithFields(logrus.Fields{
		"instance": inst.name,
		"category": category,
	})
	switch status {
	case StatusWarning:
		entry.Warn(msg)
	case StatusError:
		entry.Error(msg)
	default:
		entry.Info(msg)
	}
}

func (inst *instance) getReal(vr ValueReference) (float64, bool) {
	switch vr {
	case VRAngularAcceleration:
		return inst.inputs.AngularAcceleration, true
	case VRSlipFactor:
		return inst.outputs.SlipFactor, true
	case VRMaxSafeAcceleration:
		return inst.outputs.MaxSafeAcceleration, true
	case VRMuFriction:
		return inst.params.MuFriction, true
	case VRSafetyMargin:
		return inst.params.SafetyMargin, true
	case VRNominalVacuumPressure:
		return inst.params.NominalVacuumPressure, true
	default:
		return 0, false
	}
}

// setReal accepts inputs and parameters; outputs are read-only to the
// master and count as unmapped for writes.
func (inst *instance) setReal(vr ValueReference, v float64) bool {
	switch vr {
	case VRAngularAcceleration:
		inst.inputs.AngularAcceleration = v
	case VRMuFriction:
		inst.params.MuFriction = v
	case VRSafetyMargin:
		inst.params.SafetyMargin = v
	case VRNominalVacuumPressure:
		inst.params.NominalVacuumPressure = v
	default:
		return false
	}
	return true
}

func (inst *instance) getInteger(vr ValueReference) (int32, bool) {
	if vr == VRWaferType {
		return int32(inst.inputs.WaferType), true
	}
	return 0, false
}

func (inst *instance) setInteger(vr ValueReference, v int32) bool {
	if vr == VRWaferType {
		inst.inputs.WaferType = physics.WaferType(v)
		return true
	}
	return false
}

func (inst *instance) getBoolean(vr ValueReference) (bool, bool) {
	switch vr {
	case VRVacuumActive:
		return inst.inputs.VacuumActive, true
	case VRIsSlipping:
		return inst.outputs.IsSlipping, true
	default:
		return false, false
	}
}

func (inst *instance) setBoolean(vr ValueReference, v bool) bool {
	if vr == VRVacuumActive {
		inst.inputs.VacuumActive = v
		return true
	}
	return false
}
