package accessory_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/robgonnella/noip-sensor/internal/accessory"
	"github.com/robgonnella/noip-sensor/internal/event"
	"github.com/robgonnella/noip-sensor/internal/exception"
	mock_accessory "github.com/robgonnella/noip-sensor/internal/mock/accessory"
	"github.com/robgonnella/noip-sensor/internal/sensor"
	"github.com/stretchr/testify/assert"
)

func TestUUID(t *testing.T) {
	t.Run("is stable per hostname", func(st *testing.T) {
		assert.Equal(st, accessory.UUID("home.ddns.net"), accessory.UUID("home.ddns.net"))
		assert.NotEqual(st, accessory.UUID("home.ddns.net"), accessory.UUID("work.ddns.net"))
	})
}

func TestAccessoryService(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	mockRepo := mock_accessory.NewMockRepo(ctrl)

	service := accessory.NewService(mockRepo)

	testAccessory := func() *accessory.Accessory {
		return &accessory.Accessory{
			UUID:         accessory.UUID("home.ddns.net"),
			Hostname:     "home.ddns.net",
			DisplayName:  "home.ddns.net",
			Model:        accessory.Model,
			ContactState: sensor.ContactNotDetected,
		}
	}

	t.Run("restores cached accessories", func(st *testing.T) {
		expected := []*accessory.Accessory{testAccessory()}

		mockRepo.EXPECT().GetAllAccessories().Return(expected, nil)

		restored, err := service.Restore()

		assert.NoError(st, err)
		assert.Equal(st, expected, restored)
	})

	t.Run("returns restore errors", func(st *testing.T) {
		mockRepo.EXPECT().GetAllAccessories().Return(nil, errors.New("db error"))

		_, err := service.Restore()

		assert.Error(st, err)
	})

	t.Run("registers new accessory", func(st *testing.T) {
		acc := testAccessory()

		mockRepo.EXPECT().GetAccessoryByUUID(acc.UUID).Return(nil, exception.ErrRecordNotFound)
		mockRepo.EXPECT().AddAccessory(acc).Return(acc, nil)

		registered, err := service.Register(acc)

		assert.NoError(st, err)
		assert.Equal(st, acc, registered)
	})

	t.Run("refreshes existing accessory", func(st *testing.T) {
		acc := testAccessory()

		mockRepo.EXPECT().GetAccessoryByUUID(acc.UUID).Return(testAccessory(), nil)
		mockRepo.EXPECT().UpdateAccessory(acc).Return(acc, nil)

		registered, err := service.Register(acc)

		assert.NoError(st, err)
		assert.Equal(st, acc, registered)
	})

	t.Run("returns register errors", func(st *testing.T) {
		acc := testAccessory()

		mockRepo.EXPECT().GetAccessoryByUUID(acc.UUID).Return(nil, errors.New("db error"))

		_, err := service.Register(acc)

		assert.Error(st, err)
	})

	t.Run("unregisters accessory", func(st *testing.T) {
		acc := testAccessory()

		mockRepo.EXPECT().GetAccessoryByUUID(acc.UUID).Return(acc, nil)
		mockRepo.EXPECT().RemoveAccessory(acc.UUID).Return(nil)

		assert.NoError(st, service.Unregister(acc.UUID))
	})

	t.Run("unregistering unknown accessory is a no-op", func(st *testing.T) {
		mockRepo.EXPECT().GetAccessoryByUUID("nope").Return(nil, exception.ErrRecordNotFound)

		assert.NoError(st, service.Unregister("nope"))
	})

	t.Run("updates contact state", func(st *testing.T) {
		acc := testAccessory()

		expected := testAccessory()
		expected.ContactState = sensor.ContactDetected

		mockRepo.EXPECT().GetAccessoryByUUID(acc.UUID).Return(acc, nil)
		mockRepo.EXPECT().UpdateAccessory(expected).Return(expected, nil)

		assert.NoError(st, service.UpdateContactState(acc.UUID, sensor.ContactDetected))
	})

	t.Run("records poll", func(st *testing.T) {
		acc := testAccessory()
		at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		expected := testAccessory()
		expected.LastToken = "badauth"
		expected.LastPolled = &at
		expected.Halted = true

		mockRepo.EXPECT().GetAccessoryByUUID(acc.UUID).Return(acc, nil)
		mockRepo.EXPECT().UpdateAccessory(expected).Return(expected, nil)

		err := service.RecordPoll(acc.UUID, accessory.PollRecord{
			Token:  "badauth",
			At:     at,
			Halted: true,
		})

		assert.NoError(st, err)
	})

	t.Run("records transport failure without clearing last token", func(st *testing.T) {
		acc := testAccessory()
		acc.LastToken = "nochg"
		acc.LastIP = "203.0.113.5"
		at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		expected := testAccessory()
		expected.LastToken = "nochg"
		expected.LastIP = "203.0.113.5"
		expected.LastError = "connection refused"
		expected.LastPolled = &at

		mockRepo.EXPECT().GetAccessoryByUUID(acc.UUID).Return(acc, nil)
		mockRepo.EXPECT().UpdateAccessory(expected).Return(expected, nil)

		err := service.RecordPoll(acc.UUID, accessory.PollRecord{
			Error: "connection refused",
			At:    at,
		})

		assert.NoError(st, err)
	})

	t.Run("streams events", func(st *testing.T) {
		evtChan := make(chan *event.Event, 1)

		id := service.StreamEvents(evtChan)

		acc := testAccessory()

		mockRepo.EXPECT().GetAccessoryByUUID(acc.UUID).Return(acc, nil)
		mockRepo.EXPECT().UpdateAccessory(gomock.Any()).Return(acc, nil)

		assert.NoError(st, service.UpdateContactState(acc.UUID, sensor.ContactDetected))

		evt := <-evtChan

		assert.Equal(st, event.SensorUpdate, evt.Type)
		assert.Equal(st, acc, evt.Payload)

		service.StopStream(id)

		_, open := <-evtChan

		assert.False(st, open)
	})

	t.Run("does not block on slow listeners", func(st *testing.T) {
		evtChan := make(chan *event.Event)

		id := service.StreamEvents(evtChan)

		defer service.StopStream(id)

		acc := testAccessory()

		mockRepo.EXPECT().GetAccessoryByUUID(acc.UUID).Return(acc, nil)
		mockRepo.EXPECT().UpdateAccessory(gomock.Any()).Return(acc, nil)

		assert.NoError(st, service.UpdateContactState(acc.UUID, sensor.ContactDetected))
	})
}
