package api

import (
	"github.com/robgonnella/noip-sensor/internal/event"
	"github.com/robgonnella/noip-sensor/internal/poller"
)

//go:generate mockgen -destination=../mock/api/mock_api.go -package=mock_api . Controller,EventStreamer

// Controller is the subset of the platform exposed over http
type Controller interface {
	Pollers() []poller.Snapshot
	Poller(hostname string) (poller.Snapshot, error)
	Reset(hostname string) error
}

// EventStreamer provides accessory events for the websocket stream
type EventStreamer interface {
	StreamEvents(send chan *event.Event) int
	StopStream(id int)
}
