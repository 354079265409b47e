package poller

import (
	"time"

	"github.com/robgonnella/noip-sensor/internal/sensor"
	"github.com/robgonnella/noip-sensor/internal/status"
)

//go:generate mockgen -destination=../mock/poller/mock_poller.go -package=mock_poller . Scheduler,Observer

// State of a single poller
type State int

const (
	Idle State = iota
	Polling
	Halted
)

func (s State) String() string {
	switch s {
	case Polling:
		return "polling"
	case Halted:
		return "halted"
	default:
		return "idle"
	}
}

// Result is produced by every completed poll and every reset
type Result struct {
	Hostname string
	At       time.Time
	// Outcome is the zero value when Err is set or Reset is true
	Outcome status.Outcome
	// Err is a transport failure, the sensor is left untouched
	Err         error
	Contact     sensor.ContactState
	Halted      bool
	HaltedUntil time.Time
	// Reset is true when the result reports a manual reset of a halted poller
	Reset bool
}

// Snapshot is a point in time view of a poller
type Snapshot struct {
	Hostname    string       `json:"hostname"`
	State       string       `json:"state"`
	InProgress  bool         `json:"inProgress"`
	Contact     string       `json:"contact"`
	LastToken   status.Token `json:"lastToken,omitempty"`
	LastMessage string       `json:"lastMessage,omitempty"`
	LastIP      string       `json:"lastIP,omitempty"`
	LastPolled  *time.Time   `json:"lastPolled,omitempty"`
	LastError   string       `json:"lastError,omitempty"`
	HaltedUntil *time.Time   `json:"haltedUntil,omitempty"`
}

// Scheduler fires a job on a fixed interval until stopped
type Scheduler interface {
	Every(interval time.Duration, job func()) error
	Start()
	// Stop prevents any further jobs from starting. Running jobs are
	// allowed to complete.
	Stop()
}

// Observer is notified of every Result a poller produces
type Observer interface {
	Observe(res Result)
}
