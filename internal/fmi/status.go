package fmi

// Status is the result code every FMI operation hands back to the
// master. The model only ever emits OK, Warning and Error; Discard,
// Fatal and Pending from the full fmi2Status set are unused here.
type Status int

const (
	StatusOK      Status = 0
	StatusWarning Status = 2
	StatusError   Status = 3
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusWarning:
		return "warning"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Version reports the FMI standard version, fmi2GetVersion.
func Version() string { return "2.0" }

// TypesPlatform reports the header compatibility tag, fmi2GetTypesPlatform.
func TypesPlatform() string { return "default" }
