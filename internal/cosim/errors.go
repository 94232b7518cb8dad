package cosim

import (
	"errors"
	"fmt"

	"github.com/fab-twin/waferslip/internal/fmi"
)

var (
	// ErrBadScenario indicates the scenario fails validation before any
	// slave is touched.
	ErrBadScenario = errors.New("cosim: invalid scenario")

	// ErrInstantiate indicates the slave returned the null handle.
	ErrInstantiate = errors.New("cosim: slave instantiation failed")

	// ErrSlave indicates a slave call returned a non-OK status.
	ErrSlave = errors.New("cosim: slave call failed")
)

// SlaveError carries which call failed and the status the slave
// reported.
type SlaveError struct {
	Call   string
	Status fmi.Status
}

func (e *SlaveError) Error() string {
	return fmt.Sprintf("cosim: %s returned %s", e.Call, e.Status)
}

func (e *SlaveError) Unwrap() error { return ErrSlave }

func slaveErr(call string, st fmi.Status) error {
	return &SlaveError{Call: call, Status: st}
}
