package models

import "encoding/json"

// Severity grades a Warning.
type Severity int

const (
	SeverityWarn Severity = iota + 1
	SeverityCritical
)

// String returns the literal marker used in rendered warning lines.
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityWarn:
		return "WARN"
	default:
		return "UNKNOWN"
	}
}

// Warning is one threshold violation found during aggregation.
type Warning struct {
	Severity Severity
	Message  string
}

// String renders the warning as "<MARKER>: <message>".
func (w Warning) String() string {
	return w.Severity.String() + ": " + w.Message
}

// MarshalJSON encodes the warning as its rendered line.
func (w Warning) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

// MarshalYAML encodes the warning as its rendered line.
func (w Warning) MarshalYAML() (interface{}, error) {
	return w.String(), nil
}
