package fmi

// Kind selects the FMI interface the master instantiates, fmi2Type.
// Only co-simulation is implemented by this model.
type Kind int

const (
	ModelExchange Kind = iota
	CoSimulation
)

// Component is the opaque handle identifying one live instance. The
// zero Component is the null handle returned when instantiation fails.
type Component uint64

// Adapter owns the handle table and maps the fmi2 entry points onto
// the physics model. One Adapter per loaded library; masters drive it
// strictly sequentially per handle.
//
// Method names map one-to-one onto the standardized C entry points:
// Instantiate is fmi2Instantiate, DoStep is fmi2DoStep, and so on.
type Adapter struct {
	instances map[Component]*instance
	next      Component
}

// NewAdapter returns an adapter with an empty handle table.
func NewAdapter() *Adapter {
	return &Adapter{instances: make(map[Component]*instance)}
}

// guard keeps internal failures on this side of the foreign-call
// surface: a panic in op becomes the Error status, never an unwind.
func guard(op func() Status) (st Status) {
	defer func() {
		if recover() != nil {
			st = StatusError
		}
	}()
	return op()
}

// Instantiate allocates a fresh instance with default parameters and
// returns its handle, or the null handle on failure. A geometry
// resolution runs immediately so getters are valid before the
// initialization handshake.
//
// resourceLocation and visible are accepted for signature fidelity;
// the model ships no resources and has no display.
func (a *Adapter) Instantiate(instanceName string, kind Kind, guid, resourceLocation string, logger Logger, visible, loggingOn bool) (c Component) {
	defer func() {
		if recover() != nil {
			c = 0
		}
	}()

	inst := newInstance(instanceName, guid, logger, loggingOn)
	if guid != "" && guid != ModelGUID {
		inst.logf(StatusWarning, "logFmiCall", "guid %q does not match model guid %q", guid, ModelGUID)
	}
	if kind != CoSimulation {
		inst.logf(StatusWarning, "logFmiCall", "model only supports co-simulation")
	}

	a.next++
	c = a.next
	a.instances[c] = inst
	inst.logf(StatusOK, "logFmiCall", "instantiated as handle %d", c)
	return c
}

// FreeInstance releases the handle. Unknown handles are ignored so
// release is idempotent; every other operation on a freed handle fails
// with Error to surface master misuse.
func (a *Adapter) FreeInstance(c Component) {
	delete(a.instances, c)
}

// SetupExperiment records the experiment bounds. They do not affect
// the physics; the model is memoryless per step.
func (a *Adapter) SetupExperiment(c Component, toleranceDefined bool, tolerance, startTime float64, stopTimeDefined bool, stopTime float64) Status {
	return guard(func() Status {
		inst, ok := a.instances[c]
		if !ok {
			return StatusError
		}
		inst.toleranceDefined = toleranceDefined
		inst.tolerance = tolerance
		inst.startTime = startTime
		inst.stopTimeDefined = stopTimeDefined
		inst.stopTime = stopTime
		return StatusOK
	})
}

// EnterInitializationMode clears stale outputs from any previous run
// on this handle and re-resolves geometry.
func (a *Adapter) EnterInitializationMode(c Component) Status {
	return guard(func() Status {
		inst, ok := a.instances[c]
		if !ok {
			return StatusError
		}
		inst.logf(StatusOK, "logFmiCall", "entering initialization from %s", inst.state)
		inst.clearOutputs()
		inst.resolveGeometry()
		inst.state = stateInitializing
		return StatusOK
	})
}

// ExitInitializationMode resolves geometry once more, since inputs may
// have changed during initialization, and arms the step loop.
func (a *Adapter) ExitInitializationMode(c Component) Status {
	return guard(func() Status {
		inst, ok := a.instances[c]
		if !ok {
			return StatusError
		}
		inst.resolveGeometry()
		inst.state = stateStepComplete
		return StatusOK
	})
}

// DoStep advances the model by one communication step. The step size
// is accepted but unused: the model is an instantaneous force balance,
// not an integrator.
func (a *Adapter) DoStep(c Component, currentCommunicationPoint, communicationStepSize float64, noSetPriorState bool) Status {
	return guard(func() Status {
		inst, ok := a.instances[c]
		if !ok {
			return StatusError
		}
		inst.step()
		if inst.outputs.IsSlipping {
			inst.logf(StatusWarning, "logSlip", "slipping at t=%g: slip factor %g", currentCommunicationPoint, inst.outputs.SlipFactor)
		}
		return StatusOK
	})
}

// Terminate marks the instance finished. It stays allocated until
// FreeInstance; accepted in any state.
func (a *Adapter) Terminate(c Component) Status {
	return guard(func() Status {
		inst, ok := a.instances[c]
		if !ok {
			return StatusError
		}
		inst.logf(StatusOK, "logFmiCall", "terminated from %s", inst.state)
		inst.state = stateTerminated
		return StatusOK
	})
}

// Reset returns the instance to its freshly instantiated state so the
// handle can be reused for another run. Parameters keep their current
// values; outputs are cleared.
func (a *Adapter) Reset(c Component) Status {
	return guard(func() Status {
		inst, ok := a.instances[c]
		if !ok {
			return StatusError
		}
		inst.clearOutputs()
		inst.resolveGeometry()
		inst.state = stateInstantiated
		return StatusOK
	})
}

// GetReal reads real variables in reference order. An unmapped
// reference stops the batch and reports Warning; values already read
// keep their assignments.
func (a *Adapter) GetReal(c Component, vrs []ValueReference, values []float64) Status {
	return guard(func() Status {
		inst, ok := a.instances[c]
		if !ok {
			return StatusError
		}
		for i, vr := range vrs {
			v, mapped := inst.getReal(vr)
			if !mapped {
				inst.logf(StatusWarning, "logFmiCall", "getReal: unknown value reference %d", vr)
				return StatusWarning
			}
			values[i] = v
		}
		return StatusOK
	})
}

// SetReal writes real inputs and parameters in reference order. An
// unmapped reference stops the batch and reports Warning; writes
// already applied stay applied.
func (a *Adapter) SetReal(c Component, vrs []ValueReference, values []float64) Status {
	return guard(func() Status {
		inst, ok := a.instances[c]
		if !ok {
			return StatusError
		}
		for i, vr := range vrs {
			if !inst.setReal(vr, values[i]) {
				inst.logf(StatusWarning, "logFmiCall", "setReal: unknown value reference %d", vr)
				return StatusWarning
			}
		}
		return StatusOK
	})
}

// GetInteger reads integer variables, batch semantics as GetReal.
func (a *Adapter) GetInteger(c Component, vrs []ValueReference, values []int32) Status {
	return guard(func() Status {
		inst, ok := a.instances[c]
		if !ok {
			return StatusError
		}
		for i, vr := range vrs {
			v, mapped := inst.getInteger(vr)
			if !mapped {
				inst.logf(StatusWarning, "logFmiCall", "getInteger: unknown value reference %d", vr)
				return StatusWarning
			}
			values[i] = v
		}
		return StatusOK
	})
}

// SetInteger writes integer inputs, batch semantics as SetReal.
func (a *Adapter) SetInteger(c Component, vrs []ValueReference, values []int32) Status {
	return guard(func() Status {
		inst, ok := a.instances[c]
		if !ok {
			return StatusError
		}
		for i, vr := range vrs {
			if !inst.setInteger(vr, values[i]) {
				inst.logf(StatusWarning, "logFmiCall", "setInteger: unknown value reference %d", vr)
				return StatusWarning
			}
		}
		return StatusOK
	})
}

// GetBoolean reads boolean variables, batch semantics as GetReal.
func (a *Adapter) GetBoolean(c Component, vrs []ValueReference, values []bool) Status {
	return guard(func() Status {
		inst, ok := a.instances[c]
		if !ok {
			return StatusError
		}
		for i, vr := range vrs {
			v, mapped := inst.getBoolean(vr)
			if !mapped {
				inst.logf(StatusWarning, "logFmiCall", "getBoolean: unknown value reference %d", vr)
				return StatusWarning
			}
			values[i] = v
		}
		return StatusOK
	})
}

// SetBoolean writes boolean inputs, batch semantics as SetReal.
func (a *Adapter) SetBoolean(c Component, vrs []ValueReference, values []bool) Status {
	return guard(func() Status {
		inst, ok := a.instances[c]
		if !ok {
			return StatusError
		}
		for i, vr := range vrs {
			if !inst.setBoolean(vr, values[i]) {
				inst.logf(StatusWarning, "logFmiCall", "setBoolean: unknown value reference %d", vr)
				return StatusWarning
			}
		}
		return StatusOK
	})
}

// GetString is accepted for interface completeness; the model declares
// no string variables.
func (a *Adapter) GetString(c Component, vrs []ValueReference, values []string) Status {
	return guard(func() Status {
		if _, ok := a.instances[c]; !ok {
			return StatusError
		}
		return StatusOK
	})
}

// SetString is accepted for interface completeness; the model declares
// no string variables.
func (a *Adapter) SetString(c Component, vrs []ValueReference, values []string) Status {
	return guard(func() Status {
		if _, ok := a.instances[c]; !ok {
			return StatusError
		}
		return StatusOK
	})
}
