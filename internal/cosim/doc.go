// Package cosim is an in-process co-simulation master for the wafer
// slip slave.
//
// A [Master] replays a [Scenario], a sequence of spindle command
// segments, against a fresh slave instance: the full FMI handshake,
// then one DoStep per communication point with outputs recorded into a
// [Trace]. It exists for scenario studies and validation; in the real
// deployment an external mechatronics tool plays this role.
package cosim
