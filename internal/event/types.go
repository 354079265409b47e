package event

type EventType string

const (
	// AccessoryRegistered sent when an accessory is added or refreshed
	AccessoryRegistered EventType = "ACCESSORY_REGISTERED"
	// AccessoryRemoved sent when an accessory is unregistered
	AccessoryRemoved EventType = "ACCESSORY_REMOVED"
	// SensorUpdate sent on every contact sensor characteristic update
	SensorUpdate EventType = "SENSOR_UPDATE"
	// PollRecorded sent when a completed poll is stored
	PollRecorded EventType = "POLL_RECORDED"
)

// Event data structure representing any event we may want to react to
type Event struct {
	Type    EventType
	Payload any
}
