package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fab-twin/waferslip/internal/cosim"
	"github.com/fab-twin/waferslip/internal/fmi"
	"github.com/fab-twin/waferslip/internal/physics"
)

func runScenario(t *testing.T) (cosim.Scenario, *cosim.Trace) {
	t.Helper()
	sc := cosim.Scenario{
		Name:      "safe",
		WaferType: physics.Wafer200mm,
		Params:    physics.DefaultParameters(),
		StepSize:  0.1,
		Segments: []cosim.Segment{
			{Duration: 0.5, AngularAcceleration: 5.0, VacuumActive: true},
			{Duration: 0.5, AngularAcceleration: 5.0, VacuumActive: false},
		},
	}
	trace, err := cosim.New(fmi.NewAdapter()).Run(context.Background(), sc)
	require.NoError(t, err)
	return sc, trace
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	require.NoError(t, store.Init())

	sc, trace := runScenario(t)
	runID, err := store.Save(sc, trace)
	require.NoError(t, err)
	assert.Contains(t, runID, "safe_")

	meta, err := store.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, "safe", meta.Scenario)
	assert.Equal(t, "200mm", meta.WaferType)
	assert.Equal(t, trace.SlipAlarms, meta.SlipAlarms)

	loaded, err := store.LoadTrace(runID)
	require.NoError(t, err)
	require.Len(t, loaded.Times, len(trace.Times))
	assert.Equal(t, trace.SlipAlarms, loaded.SlipAlarms)
	assert.InDelta(t, trace.MaxSlipFactor, loaded.MaxSlipFactor, 1e-6)
	assert.Equal(t, trace.Slipping, loaded.Slipping)
}

func TestListRunIDsAreUnique(t *testing.T) {
	store := New(t.TempDir())
	require.NoError(t, store.Init())

	sc, trace := runScenario(t)
	id1, err := store.Save(sc, trace)
	require.NoError(t, err)
	id2, err := store.Save(sc, trace)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	runs, err := store.List()
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestListEmptyDir(t *testing.T) {
	store := New(t.TempDir() + "/never-created")
	runs, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestLoadUnknownRun(t *testing.T) {
	store := New(t.TempDir())
	_, err := store.Load("nope")
	assert.Error(t, err)
	_, err = store.LoadTrace("nope")
	assert.Error(t, err)
}
