package pipeline

import (
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// Update frequencies accepted by the scheduler.
const (
	FrequencyHourly = "hourly"
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
)

// Scheduled runs fire at 02:00 for the daily and weekly cadences.
const scheduledRunHour = 2

// Scheduler triggers pipeline runs on a fixed cadence. Jobs never
// overlap: a minute tick that lands during a running job is skipped
// until the job's mutex frees up.
type Scheduler struct {
	runner       *Runner
	frequency    string
	logger       *logrus.Logger
	stopChan     chan struct{}
	wg           sync.WaitGroup
	jobMutex     sync.Mutex
	isStartupRun atomic.Bool
}

// NewScheduler creates a scheduler for the given runner and cadence.
// Unknown frequencies fall back to daily.
func NewScheduler(runner *Runner, frequency string, logger *logrus.Logger) *Scheduler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
		logger.SetLevel(logrus.InfoLevel)
	}

	switch frequency {
	case FrequencyHourly, FrequencyDaily, FrequencyWeekly:
	default:
		logger.WithField("frequency", frequency).Warn("Unknown update frequency, defaulting to daily")
		frequency = FrequencyDaily
	}

	s := &Scheduler{
		runner:    runner,
		frequency: frequency,
		logger:    logger,
		stopChan:  make(chan struct{}),
	}
	s.isStartupRun.Store(true)
	return s
}

// Start begins the scheduled runs, including an immediate startup run.
func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.loop()
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	go func() {
		s.jobMutex.Lock()
		defer s.jobMutex.Unlock()
		s.logger.Info("Running startup pipeline job")
		s.runJob()
		s.isStartupRun.Store(false)
		s.logger.Info("Startup pipeline job completed")
	}()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case t := <-ticker.C:
			s.maybeRun(t)
		}
	}
}

func (s *Scheduler) maybeRun(t time.Time) {
	if s.isStartupRun.Load() {
		s.logger.Debug("Skipping scheduled job while startup is in progress")
		return
	}
	if !s.due(t) {
		return
	}

	s.jobMutex.Lock()
	defer s.jobMutex.Unlock()

	s.logger.WithFields(logrus.Fields{
		"frequency": s.frequency,
		"hour":      t.Hour(),
		"minute":    t.Minute(),
	}).Info("Starting scheduled pipeline job")
	s.runJob()
	s.logger.Info("Completed scheduled pipeline job")
}

func (s *Scheduler) due(t time.Time) bool {
	if t.Minute() != 0 {
		return false
	}
	switch s.frequency {
	case FrequencyHourly:
		return true
	case FrequencyWeekly:
		return t.Weekday() == time.Monday && t.Hour() == scheduledRunHour
	default:
		return t.Hour() == scheduledRunHour
	}
}

func (s *Scheduler) runJob() {
	if _, err := s.runner.Run(); err != nil {
		s.logger.WithError(err).Error("Pipeline job failed")
	}
}

// Stop gracefully stops the scheduler.
func (s *Scheduler) Stop() {
	close(s.stopChan)
	s.wg.Wait()
}
