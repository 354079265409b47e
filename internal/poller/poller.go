package poller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robgonnella/noip-sensor/internal/config"
	"github.com/robgonnella/noip-sensor/internal/exception"
	"github.com/robgonnella/noip-sensor/internal/logger"
	"github.com/robgonnella/noip-sensor/internal/noip"
	"github.com/robgonnella/noip-sensor/internal/sensor"
	"github.com/robgonnella/noip-sensor/internal/status"
	"github.com/rs/zerolog"
)

// Poller periodically sends a dynamic DNS update for one device and
// reflects the interpreted answer in a contact sensor
type Poller struct {
	device         config.Device
	myIP           string
	interval       time.Duration
	updater        noip.Updater
	characteristic sensor.Characteristic
	scheduler      Scheduler
	observers      []Observer
	log            logger.Logger
	now            func() time.Time

	// guards against overlapping requests
	inProgress atomic.Bool

	mux         sync.Mutex
	state       State
	lastOutcome *status.Outcome
	lastPolled  time.Time
	lastErr     error
	haltedUntil time.Time
	started     bool
	stopped     bool
}

// Option configures a Poller
type Option func(p *Poller)

// WithScheduler replaces the default cron scheduler
func WithScheduler(s Scheduler) Option {
	return func(p *Poller) {
		p.scheduler = s
	}
}

// WithObserver registers an observer for poll results
func WithObserver(o Observer) Option {
	return func(p *Poller) {
		p.observers = append(p.observers, o)
	}
}

// WithLogger replaces the device logger
func WithLogger(l logger.Logger) Option {
	return func(p *Poller) {
		p.log = l
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(p *Poller) {
		p.now = now
	}
}

// WithPublicIP sets the address sent as myip with every update
func WithPublicIP(ip string) Option {
	return func(p *Poller) {
		p.myIP = ip
	}
}

// New returns a poller for a validated device
func New(
	device config.Device,
	updater noip.Updater,
	characteristic sensor.Characteristic,
	opts ...Option,
) (*Poller, error) {
	if device.Hostname == "" {
		return nil, errors.New("poller: hostname required")
	}

	if device.RefreshRate <= 0 {
		return nil, errors.New("poller: refresh rate must be > 0")
	}

	if updater == nil || characteristic == nil {
		return nil, errors.New("poller: updater and characteristic required")
	}

	p := &Poller{
		device:         device,
		interval:       time.Duration(device.RefreshRate) * time.Second,
		updater:        updater,
		characteristic: characteristic,
		observers:      []Observer{},
		log:            logger.New().WithDevice(device.Hostname, device.Logging),
		now:            time.Now,
		state:          Idle,
	}

	for _, o := range opts {
		o(p)
	}

	if p.scheduler == nil {
		p.scheduler = NewCronScheduler(p.log)
	}

	return p, nil
}

// Hostname returns the hostname this poller updates
func (p *Poller) Hostname() string {
	return p.device.Hostname
}

// Start polls once immediately and then on every refresh interval.
// Requests are not cancelled when ctx is, an in-flight update is always
// allowed to complete.
func (p *Poller) Start(ctx context.Context) error {
	p.mux.Lock()
	defer p.mux.Unlock()

	if p.stopped {
		return exception.ErrPollerStopped
	}

	if p.started {
		return nil
	}

	reqCtx := context.WithoutCancel(ctx)

	job := func() {
		if _, err := p.Tick(reqCtx); err != nil {
			p.log.Debug().Err(err).Msg("skipped poll")
		}
	}

	if err := p.scheduler.Every(p.interval, job); err != nil {
		return err
	}

	p.scheduler.Start()
	p.started = true

	p.log.Info().Dur("interval", p.interval).Msg("started polling")

	go job()

	return nil
}

// Stop prevents any further polls. An in-flight poll completes normally.
func (p *Poller) Stop() {
	p.mux.Lock()
	defer p.mux.Unlock()

	if p.stopped {
		return
	}

	p.stopped = true

	if p.started {
		p.scheduler.Stop()
	}

	p.log.Info().Msg("stopped polling")
}

// Tick performs one poll unless the poller is stopped, halted, or a
// previous poll is still outstanding, in which case the matching
// exception error is returned and no request is made.
func (p *Poller) Tick(ctx context.Context) (*Result, error) {
	if !p.inProgress.CompareAndSwap(false, true) {
		return nil, exception.ErrPollInProgress
	}

	defer p.inProgress.Store(false)

	p.mux.Lock()

	if p.stopped {
		p.mux.Unlock()
		return nil, exception.ErrPollerStopped
	}

	if p.state == Halted {
		p.mux.Unlock()
		return nil, exception.ErrPollerHalted
	}

	p.state = Polling
	p.mux.Unlock()

	body, err := p.updater.Update(ctx, noip.UpdateRequest{
		Hostname: p.device.Hostname,
		Username: p.device.Username,
		Password: p.device.Password,
		MyIP:     p.myIP,
	})

	if err != nil {
		return p.fail(err), nil
	}

	return p.complete(status.Interpret(body)), nil
}

// transport failures leave the sensor alone and return to idle
func (p *Poller) fail(err error) *Result {
	p.log.Error().Err(err).Msg("failed to update status")

	now := p.now()

	p.mux.Lock()
	p.state = Idle
	p.lastErr = err
	p.lastPolled = now
	p.mux.Unlock()

	res := Result{
		Hostname: p.device.Hostname,
		At:       now,
		Err:      err,
		Contact:  p.characteristic.ContactState(),
	}

	p.notify(res)

	return &res
}

func (p *Poller) complete(outcome status.Outcome) *Result {
	current := p.characteristic.ContactState()
	next := sensor.FromContact(outcome.Contact(current.Detected()))

	if err := p.characteristic.UpdateContactState(next); err != nil {
		p.log.Error().Err(err).Msg("failed to update contact sensor")
	}

	p.logOutcome(outcome)

	now := p.now()

	p.mux.Lock()

	p.lastOutcome = &outcome
	p.lastPolled = now
	p.lastErr = nil
	p.state = Idle

	if outcome.Halt {
		p.state = Halted

		if outcome.RetryAfter > 0 {
			p.haltedUntil = now.Add(outcome.RetryAfter)
		}
	}

	res := Result{
		Hostname:    p.device.Hostname,
		At:          now,
		Outcome:     outcome,
		Contact:     next,
		Halted:      p.state == Halted,
		HaltedUntil: p.haltedUntil,
	}

	p.mux.Unlock()

	if res.Halted {
		p.log.Error().Str("token", string(outcome.Token)).Msg("polling halted, update configuration and reset to resume")
	}

	p.notify(res)

	return &res
}

// Reset leaves the halted state. It is refused while a retry delay
// requested by No-IP has not elapsed.
func (p *Poller) Reset() error {
	p.mux.Lock()

	if p.state != Halted {
		p.mux.Unlock()
		return nil
	}

	now := p.now()

	if !p.haltedUntil.IsZero() && now.Before(p.haltedUntil) {
		until := p.haltedUntil
		p.mux.Unlock()
		return fmt.Errorf("%w: retry no sooner than %s", exception.ErrCooldown, until.Format(time.RFC3339))
	}

	p.state = Idle
	p.haltedUntil = time.Time{}

	p.mux.Unlock()

	p.log.Info().Msg("poller reset")

	p.notify(Result{
		Hostname: p.device.Hostname,
		At:       now,
		Contact:  p.characteristic.ContactState(),
		Reset:    true,
	})

	return nil
}

// State returns the current state of the poller
func (p *Poller) State() State {
	p.mux.Lock()
	defer p.mux.Unlock()

	return p.state
}

// Snapshot returns a point in time view of the poller for display
func (p *Poller) Snapshot() Snapshot {
	p.mux.Lock()
	defer p.mux.Unlock()

	snap := Snapshot{
		Hostname:   p.device.Hostname,
		State:      p.state.String(),
		InProgress: p.inProgress.Load(),
		Contact:    p.characteristic.ContactState().String(),
	}

	if p.lastOutcome != nil {
		snap.LastToken = p.lastOutcome.Token
		snap.LastMessage = p.lastOutcome.Message
		snap.LastIP = p.lastOutcome.IP
	}

	if !p.lastPolled.IsZero() {
		polled := p.lastPolled
		snap.LastPolled = &polled
	}

	if p.lastErr != nil {
		snap.LastError = p.lastErr.Error()
	}

	if p.state == Halted && !p.haltedUntil.IsZero() {
		until := p.haltedUntil
		snap.HaltedUntil = &until
	}

	return snap
}

func (p *Poller) logOutcome(outcome status.Outcome) {
	var evt *zerolog.Event

	switch outcome.Severity {
	case status.SeverityWarn:
		evt = p.log.Warn()
	case status.SeverityError:
		evt = p.log.Error()
	case status.SeverityFatal:
		evt = p.log.Error().Bool("halted", true)
	default:
		evt = p.log.Info()
	}

	evt.
		Str("token", string(outcome.Token)).
		Str("ip", outcome.IP).
		Msg(outcome.Message)
}

func (p *Poller) notify(res Result) {
	for _, o := range p.observers {
		o.Observe(res)
	}
}
