package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	applogger "SignalDesk/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Endpoint task names.
const (
	EndpointMarket     = "market"
	EndpointIndicators = "indicators"
)

// Task is one poll of an endpoint.
type Task func(ctx context.Context) error

type job struct {
	task   Task
	cron   *cron.Cron
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Poller runs one periodic task per endpoint. Each task has its own scheduler
// and context, so tasks can be cancelled individually or all together.
type Poller struct {
	interval time.Duration
	logger   *applogger.Logger

	mu   sync.Mutex
	jobs map[string]*job
}

func NewPoller(interval time.Duration, logger *applogger.Logger) *Poller {
	if logger == nil {
		logger = applogger.Nop()
	}
	return &Poller{
		interval: interval,
		logger:   logger,
		jobs:     make(map[string]*job),
	}
}

// Add registers a task under name. It must be called before Start.
func (p *Poller) Add(name string, task Task) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.jobs[name]; ok {
		return fmt.Errorf("poller: task %q already registered", name)
	}
	p.jobs[name] = &job{task: task}
	return nil
}

// Start runs every task once immediately and then on each interval tick.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	spec := fmt.Sprintf("@every %s", p.interval)
	for name, j := range p.jobs {
		j := j
		if j.cron != nil {
			continue
		}
		jctx, cancel := context.WithCancel(ctx)
		run := p.runner(jctx, name, j)

		c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
		if _, err := c.AddFunc(spec, run); err != nil {
			cancel()
			return fmt.Errorf("poller: schedule %q: %w", name, err)
		}
		j.cron = c
		j.cancel = cancel

		j.wg.Add(1)
		go func() {
			defer j.wg.Done()
			run()
		}()
		c.Start()
	}
	return nil
}

func (p *Poller) runner(ctx context.Context, name string, j *job) func() {
	return func() {
		if ctx.Err() != nil {
			return
		}
		if err := j.task(ctx); err != nil && ctx.Err() == nil {
			p.logger.Warn("poll failed", applogger.String("endpoint", name), applogger.Error(err))
		}
	}
}

// Running reports whether the named task is scheduled.
func (p *Poller) Running(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	j, ok := p.jobs[name]
	return ok && j.cron != nil
}

// StopEndpoint cancels one task and waits for an in-flight poll to return.
func (p *Poller) StopEndpoint(name string) {
	p.mu.Lock()
	j, ok := p.jobs[name]
	if !ok || j.cron == nil {
		p.mu.Unlock()
		return
	}
	c, cancel := j.cron, j.cancel
	j.cron, j.cancel = nil, nil
	p.mu.Unlock()

	cancel()
	<-c.Stop().Done()
	j.wg.Wait()
}

// Stop tears down every task together.
func (p *Poller) Stop() {
	p.mu.Lock()
	names := make([]string, 0, len(p.jobs))
	for name := range p.jobs {
		names = append(names, name)
	}
	p.mu.Unlock()

	for _, name := range names {
		p.StopEndpoint(name)
	}
}
