package accessory

import (
	"time"

	"github.com/robgonnella/noip-sensor/internal/event"
	"github.com/robgonnella/noip-sensor/internal/sensor"
	"gorm.io/datatypes"
)

//go:generate mockgen -destination=../mock/accessory/mock_accessory.go -package=mock_accessory . Repo,Service

const (
	// Model reported for every accessory
	Model = "DUC"
	// Manufacturer reported for every accessory
	Manufacturer = "No-IP"
)

// Accessory is the cached record of a registered contact sensor
type Accessory struct {
	UUID             string `gorm:"primaryKey"`
	Hostname         string `gorm:"uniqueIndex"`
	DisplayName      string
	SerialNumber     string
	Manufacturer     string
	Model            string
	FirmwareRevision string
	// Context holds the device config the accessory was registered with,
	// secrets excluded
	Context      datatypes.JSON
	ContactState sensor.ContactState
	LastToken    string
	LastIP       string
	LastError    string
	LastPolled   *time.Time
	Halted       bool
	HaltedUntil  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Repo interface representing access to cached accessories
type Repo interface {
	GetAllAccessories() ([]*Accessory, error)
	GetAccessoryByUUID(uuid string) (*Accessory, error)
	GetAccessoryByHostname(hostname string) (*Accessory, error)
	AddAccessory(acc *Accessory) (*Accessory, error)
	UpdateAccessory(acc *Accessory) (*Accessory, error)
	RemoveAccessory(uuid string) error
}

// Service interface for managing the accessory lifecycle
type Service interface {
	Restore() ([]*Accessory, error)
	GetAllAccessories() ([]*Accessory, error)
	GetAccessory(hostname string) (*Accessory, error)
	Register(acc *Accessory) (*Accessory, error)
	Unregister(uuid string) error
	UpdateContactState(uuid string, state sensor.ContactState) error
	RecordPoll(uuid string, record PollRecord) error
	StreamEvents(send chan *event.Event) int
	StopStream(id int)
}

// PollRecord is the subset of a poll result stored with an accessory
type PollRecord struct {
	Token       string
	IP          string
	Error       string
	At          time.Time
	Halted      bool
	HaltedUntil *time.Time
}
