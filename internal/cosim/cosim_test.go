package cosim

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fab-twin/waferslip/internal/fmi"
	"github.com/fab-twin/waferslip/internal/physics"
)

func safeScenario() Scenario {
	return Scenario{
		Name:      "safe",
		WaferType: physics.Wafer200mm,
		Params:    physics.DefaultParameters(),
		StepSize:  0.1,
		Segments: []Segment{
			{Duration: 1.0, AngularAcceleration: 5.0, VacuumActive: true},
		},
	}
}

func TestRunSafeScenario(t *testing.T) {
	m := New(fmi.NewAdapter())

	trace, err := m.Run(context.Background(), safeScenario())
	require.NoError(t, err)

	require.Len(t, trace.Times, 10)
	assert.Zero(t, trace.SlipAlarms)
	assert.Less(t, trace.MaxSlipFactor, 0.85)
	for i, v := range trace.MaxSafeAccel {
		assert.Greater(t, v, 0.0, "sample %d", i)
	}
}

func TestRunSlipScenario(t *testing.T) {
	sc := safeScenario()
	sc.Name = "slip"
	sc.Segments[0].AngularAcceleration = 200.0

	m := New(fmi.NewAdapter())
	trace, err := m.Run(context.Background(), sc)
	require.NoError(t, err)

	assert.Equal(t, len(trace.Times), trace.SlipAlarms, "every step slips")
	assert.Greater(t, trace.MaxSlipFactor, 1.0)
}

func TestRunVacuumLoss(t *testing.T) {
	sc := safeScenario()
	sc.Name = "vacuum-loss"
	sc.Segments = []Segment{
		{Duration: 0.5, AngularAcceleration: 5.0, VacuumActive: true},
		{Duration: 0.5, AngularAcceleration: 5.0, VacuumActive: false},
	}

	m := New(fmi.NewAdapter())
	trace, err := m.Run(context.Background(), sc)
	require.NoError(t, err)

	require.Len(t, trace.Times, 10)
	assert.Equal(t, 5, trace.SlipAlarms, "alarms only while vented")
	assert.Equal(t, physics.NoHoldSlipFactor, trace.MaxSlipFactor)
	assert.False(t, trace.Slipping[0])
	assert.True(t, trace.Slipping[len(trace.Slipping)-1])
}

func TestRunValidation(t *testing.T) {
	m := New(fmi.NewAdapter())

	sc := safeScenario()
	sc.StepSize = 0
	_, err := m.Run(context.Background(), sc)
	assert.ErrorIs(t, err, ErrBadScenario)

	sc = safeScenario()
	sc.Segments = nil
	_, err = m.Run(context.Background(), sc)
	assert.ErrorIs(t, err, ErrBadScenario)

	sc = safeScenario()
	sc.Segments[0].Duration = -1
	_, err = m.Run(context.Background(), sc)
	assert.ErrorIs(t, err, ErrBadScenario)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := New(fmi.NewAdapter())
	trace, err := m.Run(ctx, safeScenario())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, trace.Times)
}

func TestRunLeavesNoInstanceBehind(t *testing.T) {
	adapter := fmi.NewAdapter()
	m := New(adapter)

	_, err := m.Run(context.Background(), safeScenario())
	require.NoError(t, err)

	// handle 1 was freed by the run; a second run gets a fresh handle
	// and must not see stale state
	trace, err := m.Run(context.Background(), safeScenario())
	require.NoError(t, err)
	assert.Zero(t, trace.SlipAlarms)
}

func TestSlaveErrorUnwraps(t *testing.T) {
	err := slaveErr("doStep", fmi.StatusError)
	assert.ErrorIs(t, err, ErrSlave)

	var se *SlaveError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "doStep", se.Call)
}
