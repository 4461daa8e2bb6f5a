package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Pinger is satisfied by *pgxpool.Pool and by adapters over *sql.DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to the Pinger interface.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// Monitor periodically checks storage reachability for the health endpoint.
type Monitor struct {
	db       Pinger
	interval time.Duration
	timeout  time.Duration
	logger   *zap.Logger
	cron     *cron.Cron

	mu     sync.RWMutex
	status Status
}

func New(db Pinger, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval < time.Second {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Monitor{
		db:       db,
		interval: interval,
		timeout:  3 * time.Second,
		logger:   logger,
		cron:     cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(interval.Seconds()))
	_, _ = m.cron.AddFunc(schedule, m.Refresh)

	return m
}

// Start runs an immediate check, then keeps refreshing on the schedule.
func (m *Monitor) Start() {
	m.Refresh()
	m.cron.Start()
}

// Stop halts the scheduler and waits for a running check to finish.
func (m *Monitor) Stop(ctx context.Context) {
	stopCtx := m.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// Refresh pings storage once and records the outcome.
func (m *Monitor) Refresh() {
	status := Status{LastCheck: time.Now().UTC()}

	if err := m.check(); err != nil {
		status.LastError = err.Error()
	} else {
		status.Database = true
	}

	m.mu.Lock()
	previous := m.status
	m.status = status
	m.mu.Unlock()

	if previous.Database != status.Database && !previous.LastCheck.IsZero() {
		m.logger.Warn("storage availability changed",
			zap.Bool("online", status.Database),
			zap.String("error", status.LastError))
	}
}

func (m *Monitor) check() error {
	if m.db == nil {
		return fmt.Errorf("no storage configured")
	}
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()
	return m.db.Ping(ctx)
}
