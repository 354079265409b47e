// Package sensor describes the contact sensor characteristic a poller
// reports into.
package sensor

//go:generate mockgen -destination=../mock/sensor/mock_sensor.go -package=mock_sensor . Characteristic

// ContactState mirrors the HomeKit ContactSensorState characteristic values
type ContactState int

const (
	// ContactDetected the update is healthy
	ContactDetected ContactState = 0
	// ContactNotDetected the update failed or has not succeeded yet
	ContactNotDetected ContactState = 1
)

// FromContact converts a detected flag to a ContactState
func FromContact(detected bool) ContactState {
	if detected {
		return ContactDetected
	}

	return ContactNotDetected
}

// Detected reports whether s represents a detected contact
func (s ContactState) Detected() bool {
	return s == ContactDetected
}

func (s ContactState) String() string {
	if s.Detected() {
		return "CONTACT_DETECTED"
	}

	return "CONTACT_NOT_DETECTED"
}

// Characteristic is the single boolean-like value a poller reads and writes
type Characteristic interface {
	ContactState() ContactState
	UpdateContactState(state ContactState) error
}
