package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robgonnella/noip-sensor/internal/accessory"
	"github.com/robgonnella/noip-sensor/internal/event"
)

// EventMessage is written to websocket clients for every accessory event
type EventMessage struct {
	Type        event.EventType `json:"type"`
	Hostname    string          `json:"hostname"`
	Contact     string          `json:"contact"`
	LastToken   string          `json:"lastToken,omitempty"`
	LastIP      string          `json:"lastIP,omitempty"`
	LastError   string          `json:"lastError,omitempty"`
	LastPolled  *time.Time      `json:"lastPolled,omitempty"`
	Halted      bool            `json:"halted"`
	HaltedUntil *time.Time      `json:"haltedUntil,omitempty"`
}

func newEventMessage(evt *event.Event) (EventMessage, bool) {
	acc, ok := evt.Payload.(*accessory.Accessory)

	if !ok {
		return EventMessage{}, false
	}

	return EventMessage{
		Type:        evt.Type,
		Hostname:    acc.Hostname,
		Contact:     acc.ContactState.String(),
		LastToken:   acc.LastToken,
		LastIP:      acc.LastIP,
		LastError:   acc.LastError,
		LastPolled:  acc.LastPolled,
		Halted:      acc.Halted,
		HaltedUntil: acc.HaltedUntil,
	}, true
}

// streams accessory events to a websocket client until it disconnects
func (s *Server) streamEvents(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)

	if err != nil {
		s.log.Error().Err(err).Msg("failed to upgrade event stream")
		return
	}

	defer conn.Close()

	evtChan := make(chan *event.Event, 100)
	id := s.events.StreamEvents(evtChan)

	defer s.events.StopStream(id)

	closed := make(chan struct{})

	// clients never send, reading only detects the disconnect
	go func() {
		defer close(closed)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case evt, ok := <-evtChan:
			if !ok {
				return
			}

			msg, ok := newEventMessage(evt)

			if !ok {
				continue
			}

			if err := conn.WriteJSON(msg); err != nil {
				s.log.Debug().Err(err).Msg("event stream closed")
				return
			}
		}
	}
}
