// Package fmi exposes the wafer slip model as an FMI 2.0
// Co-Simulation slave.
//
// [Adapter] owns all live instances in a handle table; each handle is
// exclusively owned from Instantiate to FreeInstance and maps the
// standardized get/set/step/lifecycle calls onto
// [github.com/fab-twin/waferslip/internal/physics].
//
// The expected call sequence from a master is
//
//	Instantiate -> SetupExperiment -> EnterInitializationMode ->
//	[setters] -> ExitInitializationMode ->
//	loop{ setters; DoStep; getters } -> Terminate -> FreeInstance
//
// Calls on a handle that was never allocated, or already freed, fail
// with [StatusError]. Batch get/set calls process value references in
// order and stop at the first unknown reference with [StatusWarning],
// keeping the effects already applied. No call ever panics across the
// package boundary.
//
// Masters must serialize calls per handle; distinct handles share no
// mutable state and need no locking.
package fmi
