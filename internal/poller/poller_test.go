package poller_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/robgonnella/noip-sensor/internal/config"
	"github.com/robgonnella/noip-sensor/internal/exception"
	"github.com/robgonnella/noip-sensor/internal/logger"
	mock_noip "github.com/robgonnella/noip-sensor/internal/mock/noip"
	mock_poller "github.com/robgonnella/noip-sensor/internal/mock/poller"
	mock_sensor "github.com/robgonnella/noip-sensor/internal/mock/sensor"
	"github.com/robgonnella/noip-sensor/internal/noip"
	"github.com/robgonnella/noip-sensor/internal/poller"
	"github.com/robgonnella/noip-sensor/internal/sensor"
	"github.com/robgonnella/noip-sensor/internal/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSensor struct {
	mux     sync.Mutex
	state   sensor.ContactState
	updates []sensor.ContactState
}

func newFakeSensor(state sensor.ContactState) *fakeSensor {
	return &fakeSensor{state: state}
}

func (f *fakeSensor) ContactState() sensor.ContactState {
	f.mux.Lock()
	defer f.mux.Unlock()
	return f.state
}

func (f *fakeSensor) UpdateContactState(state sensor.ContactState) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	f.state = state
	f.updates = append(f.updates, state)
	return nil
}

func (f *fakeSensor) Updates() []sensor.ContactState {
	f.mux.Lock()
	defer f.mux.Unlock()
	return append([]sensor.ContactState{}, f.updates...)
}

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time {
	return c.now
}

func testDevice() config.Device {
	return config.Device{
		Hostname:    "home.ddns.net",
		Username:    "user@example.com",
		Password:    "password",
		RefreshRate: 1800,
	}
}

func expectedRequest() noip.UpdateRequest {
	return noip.UpdateRequest{
		Hostname: "home.ddns.net",
		Username: "user@example.com",
		Password: "password",
		MyIP:     "203.0.113.5",
	}
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	updater := mock_noip.NewMockUpdater(ctrl)
	characteristic := newFakeSensor(sensor.ContactNotDetected)

	t.Run("requires hostname", func(st *testing.T) {
		device := testDevice()
		device.Hostname = ""

		_, err := poller.New(device, updater, characteristic)

		assert.Error(st, err)
	})

	t.Run("requires refresh rate", func(st *testing.T) {
		device := testDevice()
		device.RefreshRate = 0

		_, err := poller.New(device, updater, characteristic)

		assert.Error(st, err)
	})

	t.Run("requires updater and characteristic", func(st *testing.T) {
		_, err := poller.New(testDevice(), nil, characteristic)

		assert.Error(st, err)

		_, err = poller.New(testDevice(), updater, nil)

		assert.Error(st, err)
	})

	t.Run("starts idle", func(st *testing.T) {
		p, err := poller.New(testDevice(), updater, characteristic)

		assert.NoError(st, err)
		assert.Equal(st, poller.Idle, p.State())
		assert.Equal(st, "home.ddns.net", p.Hostname())
	})
}

func TestTick(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("nochg detects contact and keeps polling", func(st *testing.T) {
		updater := mock_noip.NewMockUpdater(ctrl)
		observer := mock_poller.NewMockObserver(ctrl)
		characteristic := newFakeSensor(sensor.ContactNotDetected)

		p, err := poller.New(
			testDevice(),
			updater,
			characteristic,
			poller.WithPublicIP("203.0.113.5"),
			poller.WithObserver(observer),
		)

		require.NoError(st, err)

		updater.EXPECT().Update(ctx, expectedRequest()).Return("nochg 198.51.100.7", nil).Times(2)
		observer.EXPECT().Observe(gomock.Any()).Times(2)

		res, err := p.Tick(ctx)

		assert.NoError(st, err)
		assert.Equal(st, status.TokenNoChange, res.Outcome.Token)
		assert.Equal(st, status.SeverityInfo, res.Outcome.Severity)
		assert.Equal(st, "198.51.100.7", res.Outcome.IP)
		assert.Equal(st, sensor.ContactDetected, res.Contact)
		assert.False(st, res.Halted)
		assert.Equal(st, poller.Idle, p.State())

		_, err = p.Tick(ctx)

		assert.NoError(st, err)
		assert.Equal(st, []sensor.ContactState{
			sensor.ContactDetected,
			sensor.ContactDetected,
		}, characteristic.Updates())
	})

	t.Run("badauth clears contact and halts", func(st *testing.T) {
		updater := mock_noip.NewMockUpdater(ctrl)
		characteristic := newFakeSensor(sensor.ContactDetected)

		p, err := poller.New(testDevice(), updater, characteristic)

		require.NoError(st, err)

		// only one request is ever made
		updater.EXPECT().Update(ctx, gomock.Any()).Return("badauth", nil).Times(1)

		res, err := p.Tick(ctx)

		assert.NoError(st, err)
		assert.Equal(st, status.TokenBadAuth, res.Outcome.Token)
		assert.Equal(st, status.SeverityError, res.Outcome.Severity)
		assert.Equal(st, "Invalid username password combination.", res.Outcome.Message)
		assert.Equal(st, sensor.ContactNotDetected, characteristic.ContactState())
		assert.True(st, res.Halted)
		assert.Equal(st, poller.Halted, p.State())

		for i := 0; i < 3; i++ {
			_, err = p.Tick(ctx)

			assert.True(st, errors.Is(err, exception.ErrPollerHalted))
		}
	})

	t.Run("every fatal token halts", func(st *testing.T) {
		for _, token := range []string{"nohost", "badauth", "badagent", "!donator", "abuse", "911"} {
			updater := mock_noip.NewMockUpdater(ctrl)
			characteristic := newFakeSensor(sensor.ContactDetected)

			p, err := poller.New(testDevice(), updater, characteristic)

			require.NoError(st, err)

			updater.EXPECT().Update(ctx, gomock.Any()).Return(token, nil).Times(1)

			_, err = p.Tick(ctx)

			assert.NoError(st, err)
			assert.Equal(st, poller.Halted, p.State(), token)

			_, err = p.Tick(ctx)

			assert.True(st, errors.Is(err, exception.ErrPollerHalted), token)
		}
	})

	t.Run("good and unknown keep the current state", func(st *testing.T) {
		for _, current := range []sensor.ContactState{sensor.ContactDetected, sensor.ContactNotDetected} {
			updater := mock_noip.NewMockUpdater(ctrl)
			characteristic := newFakeSensor(current)

			p, err := poller.New(testDevice(), updater, characteristic)

			require.NoError(st, err)

			updater.EXPECT().Update(ctx, gomock.Any()).Return("good 203.0.113.5", nil)
			updater.EXPECT().Update(ctx, gomock.Any()).Return("banana", nil)

			res, err := p.Tick(ctx)

			assert.NoError(st, err)
			assert.Equal(st, status.SeverityWarn, res.Outcome.Severity)
			assert.Equal(st, current, characteristic.ContactState())

			res, err = p.Tick(ctx)

			assert.NoError(st, err)
			assert.Equal(st, status.TokenUnknown, res.Outcome.Token)
			assert.Equal(st, current, characteristic.ContactState())
			assert.Equal(st, poller.Idle, p.State())
		}
	})

	t.Run("transport errors leave sensor unchanged and keep polling", func(st *testing.T) {
		updater := mock_noip.NewMockUpdater(ctrl)
		characteristic := newFakeSensor(sensor.ContactDetected)

		p, err := poller.New(testDevice(), updater, characteristic)

		require.NoError(st, err)

		updater.EXPECT().Update(ctx, gomock.Any()).Return("", errors.New("connection refused"))
		updater.EXPECT().Update(ctx, gomock.Any()).Return("nochg", nil)

		res, err := p.Tick(ctx)

		assert.NoError(st, err)
		assert.Error(st, res.Err)
		assert.Equal(st, sensor.ContactDetected, res.Contact)
		assert.Empty(st, characteristic.Updates())
		assert.Equal(st, poller.Idle, p.State())
		assert.Equal(st, "connection refused", p.Snapshot().LastError)

		_, err = p.Tick(ctx)

		assert.NoError(st, err)
		assert.Equal(st, 1, len(characteristic.Updates()))
		assert.Empty(st, p.Snapshot().LastError)
	})

	t.Run("does not overlap requests", func(st *testing.T) {
		updater := mock_noip.NewMockUpdater(ctrl)
		characteristic := newFakeSensor(sensor.ContactNotDetected)

		p, err := poller.New(testDevice(), updater, characteristic)

		require.NoError(st, err)

		started := make(chan struct{})
		release := make(chan struct{})
		done := make(chan struct{})

		updater.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(context.Context, noip.UpdateRequest) (string, error) {
				close(started)
				<-release
				return "nochg", nil
			},
		).Times(1)

		go func() {
			defer close(done)
			p.Tick(ctx)
		}()

		<-started

		assert.Equal(st, poller.Polling, p.State())
		assert.True(st, p.Snapshot().InProgress)

		_, err = p.Tick(ctx)

		assert.True(st, errors.Is(err, exception.ErrPollInProgress))

		close(release)
		<-done

		assert.Equal(st, poller.Idle, p.State())
		assert.False(st, p.Snapshot().InProgress)
	})
}

func TestCharacteristicFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	updater := mock_noip.NewMockUpdater(ctrl)
	characteristic := mock_sensor.NewMockCharacteristic(ctrl)
	observer := mock_poller.NewMockObserver(ctrl)

	p, err := poller.New(
		testDevice(),
		updater,
		characteristic,
		poller.WithPublicIP("203.0.113.5"),
		poller.WithObserver(observer),
	)

	require.NoError(t, err)

	updater.EXPECT().Update(gomock.Any(), expectedRequest()).Return("nochg", nil)
	characteristic.EXPECT().ContactState().Return(sensor.ContactNotDetected)
	characteristic.EXPECT().UpdateContactState(sensor.ContactDetected).Return(errors.New("bridge offline"))
	observer.EXPECT().Observe(gomock.Any())

	res, err := p.Tick(context.Background())

	// a failed characteristic write is logged, the poll still completes
	assert.NoError(t, err)
	assert.Equal(t, sensor.ContactDetected, res.Contact)
	assert.Equal(t, poller.Idle, p.State())
}

func TestReset(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("resets a permanently halted poller", func(st *testing.T) {
		updater := mock_noip.NewMockUpdater(ctrl)
		observer := mock_poller.NewMockObserver(ctrl)
		characteristic := newFakeSensor(sensor.ContactDetected)

		p, err := poller.New(testDevice(), updater, characteristic, poller.WithObserver(observer))

		require.NoError(st, err)

		updater.EXPECT().Update(ctx, gomock.Any()).Return("abuse", nil)
		updater.EXPECT().Update(ctx, gomock.Any()).Return("nochg", nil)

		gomock.InOrder(
			observer.EXPECT().Observe(gomock.Any()),
			observer.EXPECT().Observe(gomock.Any()).Do(func(res poller.Result) {
				assert.True(st, res.Reset)
				assert.False(st, res.Halted)
			}),
			observer.EXPECT().Observe(gomock.Any()),
		)

		p.Tick(ctx)

		assert.Equal(st, poller.Halted, p.State())
		assert.Nil(st, p.Snapshot().HaltedUntil)

		assert.NoError(st, p.Reset())
		assert.Equal(st, poller.Idle, p.State())

		res, err := p.Tick(ctx)

		assert.NoError(st, err)
		assert.Equal(st, sensor.ContactDetected, res.Contact)
	})

	t.Run("refuses reset during outage cooldown", func(st *testing.T) {
		updater := mock_noip.NewMockUpdater(ctrl)
		characteristic := newFakeSensor(sensor.ContactDetected)
		c := &clock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}

		p, err := poller.New(testDevice(), updater, characteristic, poller.WithClock(c.Now))

		require.NoError(st, err)

		updater.EXPECT().Update(ctx, gomock.Any()).Return("911", nil)

		res, err := p.Tick(ctx)

		assert.NoError(st, err)
		assert.True(st, res.Halted)
		assert.Equal(st, c.now.Add(30*time.Minute), res.HaltedUntil)
		assert.Equal(st, c.now.Add(30*time.Minute), *p.Snapshot().HaltedUntil)

		c.now = c.now.Add(10 * time.Minute)

		err = p.Reset()

		assert.True(st, errors.Is(err, exception.ErrCooldown))
		assert.Equal(st, poller.Halted, p.State())

		c.now = c.now.Add(20 * time.Minute)

		assert.NoError(st, p.Reset())
		assert.Equal(st, poller.Idle, p.State())
	})

	t.Run("reset is a no-op when not halted", func(st *testing.T) {
		updater := mock_noip.NewMockUpdater(ctrl)

		p, err := poller.New(testDevice(), updater, newFakeSensor(sensor.ContactDetected))

		require.NoError(st, err)
		assert.NoError(st, p.Reset())
		assert.Equal(st, poller.Idle, p.State())
	})
}

func TestStartStop(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	t.Run("schedules polls on refresh interval and polls immediately", func(st *testing.T) {
		updater := mock_noip.NewMockUpdater(ctrl)
		scheduler := mock_poller.NewMockScheduler(ctrl)
		characteristic := newFakeSensor(sensor.ContactNotDetected)

		p, err := poller.New(testDevice(), updater, characteristic, poller.WithScheduler(scheduler))

		require.NoError(st, err)

		var job func()

		wg := sync.WaitGroup{}
		wg.Add(2)

		scheduler.EXPECT().Every(30*time.Minute, gomock.Any()).DoAndReturn(
			func(_ time.Duration, fn func()) error {
				job = fn
				return nil
			},
		)
		scheduler.EXPECT().Start()

		updater.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, noip.UpdateRequest) (string, error) {
				defer wg.Done()
				return "nochg", nil
			},
		).Times(2)

		assert.NoError(st, p.Start(context.Background()))

		// starting twice does not reschedule
		assert.NoError(st, p.Start(context.Background()))

		// wait for the immediate poll before running the scheduled one
		assert.Eventually(st, func() bool {
			return len(characteristic.Updates()) == 1 && !p.Snapshot().InProgress
		}, time.Second, time.Millisecond*10)

		job()

		wg.Wait()

		assert.Equal(st, 2, len(characteristic.Updates()))
	})

	t.Run("stop prevents further ticks", func(st *testing.T) {
		updater := mock_noip.NewMockUpdater(ctrl)
		scheduler := mock_poller.NewMockScheduler(ctrl)
		characteristic := newFakeSensor(sensor.ContactNotDetected)

		p, err := poller.New(testDevice(), updater, characteristic, poller.WithScheduler(scheduler))

		require.NoError(st, err)

		var job func()

		scheduler.EXPECT().Every(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ time.Duration, fn func()) error {
				job = fn
				return nil
			},
		)
		scheduler.EXPECT().Start()
		scheduler.EXPECT().Stop().Times(1)

		done := make(chan struct{})

		updater.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, noip.UpdateRequest) (string, error) {
				close(done)
				return "nochg", nil
			},
		).Times(1)

		assert.NoError(st, p.Start(context.Background()))

		<-done

		assert.Eventually(st, func() bool {
			return !p.Snapshot().InProgress
		}, time.Second, time.Millisecond*10)

		p.Stop()
		p.Stop()

		job()

		_, err = p.Tick(context.Background())

		assert.True(st, errors.Is(err, exception.ErrPollerStopped))
		assert.True(st, errors.Is(p.Start(context.Background()), exception.ErrPollerStopped))
	})

	t.Run("returns scheduling errors", func(st *testing.T) {
		updater := mock_noip.NewMockUpdater(ctrl)
		scheduler := mock_poller.NewMockScheduler(ctrl)

		p, err := poller.New(
			testDevice(),
			updater,
			newFakeSensor(sensor.ContactNotDetected),
			poller.WithScheduler(scheduler),
		)

		require.NoError(st, err)

		scheduler.EXPECT().Every(gomock.Any(), gomock.Any()).Return(errors.New("bad interval"))

		assert.Error(st, p.Start(context.Background()))
	})
}

func TestCronScheduler(t *testing.T) {
	t.Run("rejects sub second intervals", func(st *testing.T) {
		s := poller.NewCronScheduler(logger.New())

		assert.Error(st, s.Every(time.Millisecond, func() {}))
	})

	t.Run("runs job on interval until stopped", func(st *testing.T) {
		s := poller.NewCronScheduler(logger.New())

		ran := make(chan struct{}, 10)

		assert.NoError(st, s.Every(time.Second, func() {
			ran <- struct{}{}
		}))

		s.Start()

		select {
		case <-ran:
		case <-time.After(3 * time.Second):
			st.Fatal("job did not run")
		}

		s.Stop()
	})
}
