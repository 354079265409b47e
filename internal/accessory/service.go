package accessory

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/robgonnella/noip-sensor/internal/event"
	"github.com/robgonnella/noip-sensor/internal/exception"
	"github.com/robgonnella/noip-sensor/internal/logger"
	"github.com/robgonnella/noip-sensor/internal/sensor"
)

// namespace for deterministic accessory uuids
var namespace = uuid.MustParse("8b5f2a3e-9c1d-5e4f-a6b7-0c9d8e7f6a5b")

// UUID returns the stable accessory uuid for a hostname
func UUID(hostname string) string {
	return uuid.NewSHA1(namespace, []byte(hostname)).String()
}

// represents a registered event listener
type eventChannel struct {
	id   int
	send chan *event.Event
}

// AccessoryService represents our accessory.Service implementation
type AccessoryService struct {
	log           logger.Logger
	repo          Repo
	evtChans      []*eventChannel
	nextChannelID int
	mux           sync.Mutex
}

// NewService returns a new instance AccessoryService
func NewService(repo Repo) *AccessoryService {
	return &AccessoryService{
		log:           logger.New(),
		repo:          repo,
		evtChans:      []*eventChannel{},
		nextChannelID: 1,
		mux:           sync.Mutex{},
	}
}

// Restore returns every accessory cached from a previous run
func (s *AccessoryService) Restore() ([]*Accessory, error) {
	accessories, err := s.repo.GetAllAccessories()

	if err != nil {
		return nil, err
	}

	for _, acc := range accessories {
		s.log.Info().Str("accessory", acc.DisplayName).Msg("Loading accessory from cache")
	}

	return accessories, nil
}

// GetAllAccessories returns all cached accessories
func (s *AccessoryService) GetAllAccessories() ([]*Accessory, error) {
	return s.repo.GetAllAccessories()
}

// GetAccessory returns a cached accessory by hostname
func (s *AccessoryService) GetAccessory(hostname string) (*Accessory, error) {
	return s.repo.GetAccessoryByHostname(hostname)
}

// Register adds a new accessory or refreshes an existing one
func (s *AccessoryService) Register(acc *Accessory) (*Accessory, error) {
	_, err := s.repo.GetAccessoryByUUID(acc.UUID)

	if errors.Is(err, exception.ErrRecordNotFound) {
		added, err2 := s.repo.AddAccessory(acc)

		if err2 != nil {
			return nil, err2
		}

		s.log.Info().Str("accessory", added.DisplayName).Msg("Adding new accessory")
		s.sendEvent(event.AccessoryRegistered, added)

		return added, nil
	}

	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateAccessory(acc)

	if err != nil {
		return nil, err
	}

	s.log.Info().Str("accessory", updated.DisplayName).Msg("Restoring existing accessory from cache")
	s.sendEvent(event.AccessoryRegistered, updated)

	return updated, nil
}

// Unregister removes an accessory from the cache
func (s *AccessoryService) Unregister(uuid string) error {
	acc, err := s.repo.GetAccessoryByUUID(uuid)

	if errors.Is(err, exception.ErrRecordNotFound) {
		// nothing to remove
		return nil
	}

	if err != nil {
		return err
	}

	if err := s.repo.RemoveAccessory(uuid); err != nil {
		return err
	}

	s.log.Warn().Str("accessory", acc.DisplayName).Msg("Removing existing accessory from cache")
	s.sendEvent(event.AccessoryRemoved, acc)

	return nil
}

// UpdateContactState stores a new contact sensor value
func (s *AccessoryService) UpdateContactState(uuid string, state sensor.ContactState) error {
	acc, err := s.repo.GetAccessoryByUUID(uuid)

	if err != nil {
		return err
	}

	acc.ContactState = state

	updated, err := s.repo.UpdateAccessory(acc)

	if err != nil {
		return err
	}

	s.log.Debug().
		Str("accessory", updated.DisplayName).
		Str("contactSensorState", state.String()).
		Msg("updateCharacteristic")

	s.sendEvent(event.SensorUpdate, updated)

	return nil
}

// RecordPoll stores the latest poll result with the accessory
func (s *AccessoryService) RecordPoll(uuid string, record PollRecord) error {
	acc, err := s.repo.GetAccessoryByUUID(uuid)

	if err != nil {
		return err
	}

	at := record.At

	acc.LastPolled = &at
	acc.LastError = record.Error
	acc.Halted = record.Halted
	acc.HaltedUntil = record.HaltedUntil

	// transport failures and resets carry no token
	if record.Token != "" {
		acc.LastToken = record.Token
		acc.LastIP = record.IP
	}

	updated, err := s.repo.UpdateAccessory(acc)

	if err != nil {
		return err
	}

	s.sendEvent(event.PollRecorded, updated)

	return nil
}

// StreamEvents registers a listener for accessory updates
func (s *AccessoryService) StreamEvents(send chan *event.Event) int {
	s.mux.Lock()
	defer s.mux.Unlock()

	evtChan := &eventChannel{
		id:   s.nextChannelID,
		send: send,
	}

	s.nextChannelID++
	s.evtChans = append(s.evtChans, evtChan)

	return evtChan.id
}

// StopStream removes and closes channel for a specific registered listener
func (s *AccessoryService) StopStream(id int) {
	s.mux.Lock()
	defer s.mux.Unlock()

	channels := []*eventChannel{}

	for _, c := range s.evtChans {
		if c.id == id {
			close(c.send)
			continue
		}

		channels = append(channels, c)
	}

	s.evtChans = channels
}

// sends an event to all registered listeners, dropping it for any
// listener that is not keeping up
func (s *AccessoryService) sendEvent(evtType event.EventType, acc *Accessory) {
	s.mux.Lock()
	defer s.mux.Unlock()

	for _, c := range s.evtChans {
		select {
		case c.send <- &event.Event{Type: evtType, Payload: acc}:
		default:
			s.log.Warn().Int("channelID", c.id).Str("type", string(evtType)).Msg("dropped event")
		}
	}
}
