package accessory

import (
	"sync"

	"github.com/robgonnella/noip-sensor/internal/logger"
	"github.com/robgonnella/noip-sensor/internal/poller"
	"github.com/robgonnella/noip-sensor/internal/sensor"
)

// Handle binds a registered accessory to a poller. It is the poller's
// contact sensor characteristic and records every poll result.
type Handle struct {
	service Service
	uuid    string
	log     logger.Logger
	mux     sync.Mutex
	state   sensor.ContactState
}

// NewHandle returns a handle seeded with the accessory's cached state
func NewHandle(service Service, acc *Accessory) *Handle {
	return &Handle{
		service: service,
		uuid:    acc.UUID,
		log:     logger.New(),
		state:   acc.ContactState,
	}
}

// UUID returns the accessory uuid
func (h *Handle) UUID() string {
	return h.uuid
}

// ContactState implements sensor.Characteristic
func (h *Handle) ContactState() sensor.ContactState {
	h.mux.Lock()
	defer h.mux.Unlock()

	return h.state
}

// UpdateContactState implements sensor.Characteristic. The in-memory value
// is always updated, even when it fails to persist.
func (h *Handle) UpdateContactState(state sensor.ContactState) error {
	h.mux.Lock()
	h.state = state
	h.mux.Unlock()

	return h.service.UpdateContactState(h.uuid, state)
}

// Observe implements poller.Observer
func (h *Handle) Observe(res poller.Result) {
	record := PollRecord{
		Token:  string(res.Outcome.Token),
		IP:     res.Outcome.IP,
		At:     res.At,
		Halted: res.Halted,
	}

	if res.Err != nil {
		record.Error = res.Err.Error()
	}

	if res.Halted && !res.HaltedUntil.IsZero() {
		until := res.HaltedUntil
		record.HaltedUntil = &until
	}

	if err := h.service.RecordPoll(h.uuid, record); err != nil {
		h.log.Error().Err(err).Str("uuid", h.uuid).Msg("failed to record poll")
	}
}
