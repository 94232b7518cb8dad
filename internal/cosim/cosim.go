package cosim

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fab-twin/waferslip/internal/fmi"
	"github.com/fab-twin/waferslip/internal/physics"
)

// Segment holds the spindle command and vacuum state constant for a
// stretch of simulated time.
type Segment struct {
	Duration            float64 // s
	AngularAcceleration float64 // rad/s^2
	VacuumActive        bool
}

// Scenario is one complete run: wafer, parameters, step size and the
// command profile the master replays against the slave.
type Scenario struct {
	Name      string
	WaferType physics.WaferType
	Params    physics.Parameters
	StepSize  float64
	Segments  []Segment
}

// Duration is the total simulated time across all segments.
func (sc Scenario) Duration() float64 {
	total := 0.0
	for _, seg := range sc.Segments {
		total += seg.Duration
	}
	return total
}

func (sc Scenario) validate() error {
	if sc.StepSize <= 0 {
		return fmt.Errorf("%w: step size must be positive, got %g", ErrBadScenario, sc.StepSize)
	}
	if len(sc.Segments) == 0 {
		return fmt.Errorf("%w: no segments", ErrBadScenario)
	}
	for i, seg := range sc.Segments {
		if seg.Duration <= 0 {
			return fmt.Errorf("%w: segment %d duration must be positive, got %g", ErrBadScenario, i, seg.Duration)
		}
	}
	return nil
}

// Trace is the recorded output of one run, one sample per
// communication point.
type Trace struct {
	Times        []float64
	SlipFactor   []float64
	MaxSafeAccel []float64
	Slipping     []bool

	SlipAlarms    int
	MaxSlipFactor float64
}

func (tr *Trace) record(t float64, out sample) {
	tr.Times = append(tr.Times, t)
	tr.SlipFactor = append(tr.SlipFactor, out.slipFactor)
	tr.MaxSafeAccel = append(tr.MaxSafeAccel, out.maxSafeAccel)
	tr.Slipping = append(tr.Slipping, out.slipping)
	if out.slipping {
		tr.SlipAlarms++
	}
	if out.slipFactor > tr.MaxSlipFactor {
		tr.MaxSlipFactor = out.slipFactor
	}
}

type sample struct {
	slipFactor   float64
	maxSafeAccel float64
	slipping     bool
}

// Master drives one slave instance per run through the full FMI
// handshake and step loop, standing in for an external co-simulation
// tool.
type Master struct {
	adapter *fmi.Adapter
	log     *logrus.Entry
}

// New returns a master bound to the given adapter.
func New(adapter *fmi.Adapter) *Master {
	return &Master{
		adapter: adapter,
		log:     logrus.WithField("component", "cosim"),
	}
}

// Run replays the scenario against a fresh slave instance and records
// the outputs at every communication point. Cancellation is honored
// between steps; the partial trace is returned with the context error.
func (m *Master) Run(ctx context.Context, sc Scenario) (*Trace, error) {
	if err := sc.validate(); err != nil {
		return nil, err
	}

	c := m.adapter.Instantiate(sc.Name, fmi.CoSimulation, fmi.ModelGUID, "", nil, false, false)
	if c == 0 {
		return nil, ErrInstantiate
	}
	defer m.adapter.FreeInstance(c)

	if st := m.adapter.SetupExperiment(c, false, 0, 0, true, sc.Duration()); st != fmi.StatusOK {
		return nil, slaveErr("setupExperiment", st)
	}
	if st := m.adapter.EnterInitializationMode(c); st != fmi.StatusOK {
		return nil, slaveErr("enterInitializationMode", st)
	}

	params := []fmi.ValueReference{fmi.VRMuFriction, fmi.VRSafetyMargin, fmi.VRNominalVacuumPressure}
	values := []float64{sc.Params.MuFriction, sc.Params.SafetyMargin, sc.Params.NominalVacuumPressure}
	if st := m.adapter.SetReal(c, params, values); st != fmi.StatusOK {
		return nil, slaveErr("setReal", st)
	}
	if st := m.adapter.SetInteger(c, []fmi.ValueReference{fmi.VRWaferType}, []int32{int32(sc.WaferType)}); st != fmi.StatusOK {
		return nil, slaveErr("setInteger", st)
	}

	if st := m.adapter.ExitInitializationMode(c); st != fmi.StatusOK {
		return nil, slaveErr("exitInitializationMode", st)
	}

	m.log.WithFields(logrus.Fields{
		"scenario": sc.Name,
		"wafer":    sc.WaferType.String(),
		"steps":    int(sc.Duration() / sc.StepSize),
	}).Info("starting run")

	trace := &Trace{}
	t := 0.0

	for _, seg := range sc.Segments {
		steps := int(seg.Duration/sc.StepSize + 0.5)
		if steps < 1 {
			steps = 1
		}

		if st := m.adapter.SetReal(c, []fmi.ValueReference{fmi.VRAngularAcceleration}, []float64{seg.AngularAcceleration}); st != fmi.StatusOK {
			return trace, slaveErr("setReal", st)
		}
		if st := m.adapter.SetBoolean(c, []fmi.ValueReference{fmi.VRVacuumActive}, []bool{seg.VacuumActive}); st != fmi.StatusOK {
			return trace, slaveErr("setBoolean", st)
		}

		for i := 0; i < steps; i++ {
			select {
			case <-ctx.Done():
				return trace, ctx.Err()
			default:
			}

			if st := m.adapter.DoStep(c, t, sc.StepSize, true); st != fmi.StatusOK {
				return trace, slaveErr("doStep", st)
			}
			t += sc.StepSize

			out, err := m.read(c)
			if err != nil {
				return trace, err
			}
			trace.record(t, out)

			if out.slipping {
				m.log.WithFields(logrus.Fields{
					"scenario":    sc.Name,
					"t":           t,
					"slip_factor": out.slipFactor,
				}).Warn("wafer slipping")
			}
		}
	}

	m.log.WithFields(logrus.Fields{
		"scenario":    sc.Name,
		"slip_alarms": trace.SlipAlarms,
		"max_slip":    trace.MaxSlipFactor,
	}).Info("run complete")

	if st := m.adapter.Terminate(c); st != fmi.StatusOK {
		return trace, slaveErr("terminate", st)
	}
	return trace, nil
}

func (m *Master) read(c fmi.Component) (sample, error) {
	reals := make([]float64, 2)
	if st := m.adapter.GetReal(c, []fmi.ValueReference{fmi.VRSlipFactor, fmi.VRMaxSafeAcceleration}, reals); st != fmi.StatusOK {
		return sample{}, slaveErr("getReal", st)
	}
	bools := make([]bool, 1)
	if st := m.adapter.GetBoolean(c, []fmi.ValueReference{fmi.VRIsSlipping}, bools); st != fmi.StatusOK {
		return sample{}, slaveErr("getBoolean", st)
	}
	return sample{slipFactor: reals[0], maxSafeAccel: reals[1], slipping: bools[0]}, nil
}
