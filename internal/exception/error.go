package exception

import "errors"

// ErrRecordNotFound custom database error for failure to find record
var ErrRecordNotFound = errors.New("record not found")

// ErrInvalidConfig returned when a device or platform config fails validation
var ErrInvalidConfig = errors.New("invalid config")

// ErrUnknownDevice returned when a hostname has no running poller
var ErrUnknownDevice = errors.New("unknown device")

// ErrPollerHalted returned when a halted poller is asked to poll
var ErrPollerHalted = errors.New("poller halted")

// ErrCooldown returned when a halted poller is reset before its retry time
var ErrCooldown = errors.New("poller in cooldown")

// ErrEmptyResponse returned when the update endpoint answers with no body
var ErrEmptyResponse = errors.New("empty response body")

// ErrPollInProgress returned when a tick fires while a poll is outstanding
var ErrPollInProgress = errors.New("poll already in progress")

// ErrPollerStopped returned when a stopped poller is asked to poll
var ErrPollerStopped = errors.New("poller stopped")
