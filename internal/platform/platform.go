package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/jinzhu/copier"
	"github.com/robgonnella/noip-sensor/internal/accessory"
	"github.com/robgonnella/noip-sensor/internal/config"
	"github.com/robgonnella/noip-sensor/internal/event"
	"github.com/robgonnella/noip-sensor/internal/exception"
	"github.com/robgonnella/noip-sensor/internal/logger"
	"github.com/robgonnella/noip-sensor/internal/metrics"
	"github.com/robgonnella/noip-sensor/internal/noip"
	"github.com/robgonnella/noip-sensor/internal/poller"
	"github.com/robgonnella/noip-sensor/internal/sensor"
	"github.com/samber/lo"
	"gorm.io/datatypes"
)

// SchedulerFactory builds the scheduler for one device's poller
type SchedulerFactory func(log logger.Logger) poller.Scheduler

// Platform discovers configured devices, registers them as accessories
// and runs one poller per device. A failing device never affects the
// others.
type Platform struct {
	conf         config.Config
	version      string
	accessories  accessory.Service
	updater      noip.Updater
	resolver     noip.IPResolver
	metrics      *metrics.Metrics
	newScheduler SchedulerFactory
	log          logger.Logger
	pollers      map[string]*poller.Poller
	mux          sync.Mutex
	cancel       context.CancelFunc
	monitorDone  chan struct{}
}

// Option configures a Platform
type Option func(p *Platform)

// WithMetrics registers m as an observer of every poller
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Platform) {
		p.metrics = m
	}
}

// WithSchedulerFactory replaces the default cron scheduler
func WithSchedulerFactory(f SchedulerFactory) Option {
	return func(p *Platform) {
		p.newScheduler = f
	}
}

// New returns a new platform. version is reported as the firmware
// revision of devices that do not configure one.
func New(
	conf config.Config,
	version string,
	accessories accessory.Service,
	updater noip.Updater,
	resolver noip.IPResolver,
	opts ...Option,
) *Platform {
	p := &Platform{
		conf:        conf,
		version:     version,
		accessories: accessories,
		updater:     updater,
		resolver:    resolver,
		log:         logger.New(),
		pollers:     map[string]*poller.Poller{},
	}

	for _, o := range opts {
		o(p)
	}

	return p
}

// Start validates the config, restores cached accessories and starts a
// poller for every valid device. Only a failure to read the accessory
// cache is returned, per-device problems are logged.
func (p *Platform) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	p.cancel = cancel

	if p.conf.HasLegacyKeys() {
		p.log.Warn().
			Str("hostname", p.conf.Hostname).
			Str("username", p.conf.Username).
			Msg("You still have old config that will be ignored")
	}

	devices, errs := config.Validate(&p.conf)

	for _, err := range errs {
		p.log.Error().Err(err).Msg("Verify Config")
	}

	if len(p.conf.Devices) == 0 {
		p.log.Error().Msg("verifyConfig, No Device Config")
	}

	cached, err := p.accessories.Restore()

	if err != nil {
		cancel()
		return fmt.Errorf("failed to restore accessories: %w", err)
	}

	evtChan := make(chan *event.Event, 100)
	subscription := p.accessories.StreamEvents(evtChan)

	p.monitorDone = make(chan struct{})

	go p.monitor(ctx, evtChan, subscription)

	for _, device := range devices {
		if err := p.discover(ctx, device, cached); err != nil {
			p.log.Error().Err(err).Str("hostname", device.Hostname).Msg("Failed to Discover Device")
		}
	}

	return nil
}

// Stop stops every poller. In-flight requests are allowed to complete.
func (p *Platform) Stop() {
	p.mux.Lock()

	for _, pl := range p.pollers {
		pl.Stop()
	}

	p.mux.Unlock()

	if p.cancel != nil {
		p.cancel()
	}

	if p.monitorDone != nil {
		<-p.monitorDone
	}
}

// Reset resumes polling for a halted device
func (p *Platform) Reset(hostname string) error {
	p.mux.Lock()
	pl, ok := p.pollers[hostname]
	p.mux.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", exception.ErrUnknownDevice, hostname)
	}

	return pl.Reset()
}

// Pollers returns a snapshot of every running poller ordered by hostname
func (p *Platform) Pollers() []poller.Snapshot {
	p.mux.Lock()
	defer p.mux.Unlock()

	hostnames := lo.Keys(p.pollers)
	slices.Sort(hostnames)

	return lo.Map(hostnames, func(hostname string, _ int) poller.Snapshot {
		return p.pollers[hostname].Snapshot()
	})
}

// Poller returns the snapshot of a single device
func (p *Platform) Poller(hostname string) (poller.Snapshot, error) {
	p.mux.Lock()
	defer p.mux.Unlock()

	pl, ok := p.pollers[hostname]

	if !ok {
		return poller.Snapshot{}, fmt.Errorf("%w: %s", exception.ErrUnknownDevice, hostname)
	}

	return pl.Snapshot(), nil
}

func (p *Platform) discover(ctx context.Context, device config.Device, cached []*accessory.Accessory) error {
	uuid := accessory.UUID(device.Hostname)

	existing, found := lo.Find(cached, func(acc *accessory.Accessory) bool {
		return acc.UUID == uuid
	})

	if device.Delete {
		if !found {
			p.log.Debug().Str("hostname", device.Hostname).Msg("Unable to Register new device marked for deletion")
			return nil
		}

		return p.accessories.Unregister(uuid)
	}

	p.mux.Lock()
	_, running := p.pollers[device.Hostname]
	p.mux.Unlock()

	if running {
		return errors.New("duplicate hostname in config")
	}

	p.log.Info().Str("hostname", device.Hostname).Msg("Discovered")

	acc, err := p.buildAccessory(ctx, device, existing)

	if err != nil {
		return err
	}

	registered, err := p.accessories.Register(acc)

	if err != nil {
		return err
	}

	handle := accessory.NewHandle(p.accessories, registered)

	deviceLog := p.log.WithDevice(device.Hostname, device.Logging)

	opts := []poller.Option{
		poller.WithLogger(deviceLog),
		poller.WithPublicIP(registered.SerialNumber),
		poller.WithObserver(handle),
	}

	if p.metrics != nil {
		p.metrics.Init(device.Hostname)
		opts = append(opts, poller.WithObserver(p.metrics))
	}

	if p.newScheduler != nil {
		opts = append(opts, poller.WithScheduler(p.newScheduler(deviceLog)))
	}

	pl, err := poller.New(device, p.updater, handle, opts...)

	if err != nil {
		return err
	}

	if err := pl.Start(ctx); err != nil {
		return err
	}

	p.mux.Lock()
	p.pollers[device.Hostname] = pl
	p.mux.Unlock()

	return nil
}

// builds the accessory record for a device, refreshing a cached one
func (p *Platform) buildAccessory(
	ctx context.Context,
	device config.Device,
	existing *accessory.Accessory,
) (*accessory.Accessory, error) {
	acc := &accessory.Accessory{
		UUID:         accessory.UUID(device.Hostname),
		Hostname:     device.Hostname,
		ContactState: sensor.ContactNotDetected,
	}

	if existing != nil {
		if err := copier.Copy(acc, existing); err != nil {
			return nil, err
		}
	}

	deviceContext, err := json.Marshal(device)

	if err != nil {
		return nil, err
	}

	ip, err := p.resolver.PublicIPv4(ctx)

	if err != nil {
		p.log.Error().Err(err).Msg("Not Able To Retrieve IP Address")
	}

	firmware := device.Firmware

	if firmware == "" {
		firmware = p.version
	}

	acc.DisplayName = device.Hostname
	acc.Context = datatypes.JSON(deviceContext)
	acc.SerialNumber = ip
	acc.Manufacturer = accessory.Manufacturer
	acc.Model = accessory.Model
	acc.FirmwareRevision = firmware
	acc.Halted = false
	acc.HaltedUntil = nil

	return acc, nil
}

// monitor logs accessory events and drops metrics for removed accessories
func (p *Platform) monitor(ctx context.Context, evtChan chan *event.Event, subscription int) {
	defer close(p.monitorDone)
	defer p.accessories.StopStream(subscription)

	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-evtChan:
			if !ok {
				return
			}

			p.handleEvent(evt)
		}
	}
}

func (p *Platform) handleEvent(evt *event.Event) {
	acc, ok := evt.Payload.(*accessory.Accessory)

	if !ok {
		return
	}

	p.log.Debug().
		Str("type", string(evt.Type)).
		Str("uuid", acc.UUID).
		Str("hostname", acc.Hostname).
		Str("contactSensorState", acc.ContactState.String()).
		Str("lastToken", acc.LastToken).
		Msg("Event Received")

	if evt.Type == event.AccessoryRemoved && p.metrics != nil {
		p.metrics.Forget(acc.Hostname)
	}
}
