package scheduler

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"skillswap/pkg/errors"
	"skillswap/pkg/logger"
)

// RunFunc executes one scheduled notification batch by id.
type RunFunc func(scheduleID string)

// Scheduler arms in-memory timers for one-shot schedules and cron entries
// for recurring ones, keyed by schedule id. Entries live only in this
// process; the store is the source of truth and armable schedules are
// re-armed on boot.
type Scheduler struct {
	cron   *cron.Cron
	run    RunFunc
	timers map[string]*time.Timer
	crons  map[string]cron.EntryID
	mutex  sync.Mutex
}

func New(run RunFunc) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		run:    run,
		timers: make(map[string]*time.Timer),
		crons:  make(map[string]cron.EntryID),
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()

	s.mutex.Lock()
	defer s.mutex.Unlock()
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}

// ArmOnce schedules a single run at runAt. Past times are rejected.
func (s *Scheduler) ArmOnce(scheduleID string, runAt time.Time) error {
	delay := time.Until(runAt)
	if delay <= 0 {
		return errors.BadRequest("Scheduled time is in the past", nil)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if timer, ok := s.timers[scheduleID]; ok {
		timer.Stop()
	}

	s.timers[scheduleID] = time.AfterFunc(delay, func() {
		s.mutex.Lock()
		delete(s.timers, scheduleID)
		s.mutex.Unlock()

		s.run(scheduleID)
	})

	logger.Info("Armed one-shot schedule %s for %s", scheduleID, runAt.Format(time.RFC3339))
	return nil
}

// ValidateCron reports whether expr parses as a standard five-field
// cron expression.
func ValidateCron(expr string) error {
	if _, err := cron.ParseStandard(expr); err != nil {
		return errors.BadRequest("Invalid cron expression", err)
	}
	return nil
}

// ArmRecurring registers a cron entry for the schedule.
func (s *Scheduler) ArmRecurring(scheduleID, cronExpr string) error {
	entryID, err := s.cron.AddFunc(cronExpr, func() {
		s.run(scheduleID)
	})
	if err != nil {
		return errors.BadRequest("Invalid cron expression", err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if existing, ok := s.crons[scheduleID]; ok {
		s.cron.Remove(existing)
	}
	s.crons[scheduleID] = entryID

	logger.Info("Armed recurring schedule %s (%s)", scheduleID, cronExpr)
	return nil
}

// Disarm cancels whatever entry exists for the schedule id.
func (s *Scheduler) Disarm(scheduleID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if timer, ok := s.timers[scheduleID]; ok {
		timer.Stop()
		delete(s.timers, scheduleID)
	}
	if entryID, ok := s.crons[scheduleID]; ok {
		s.cron.Remove(entryID)
		delete(s.crons, scheduleID)
	}
}

// Armed reports whether the schedule id has a live entry.
func (s *Scheduler) Armed(scheduleID string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.timers[scheduleID]; ok {
		return true
	}
	_, ok := s.crons[scheduleID]
	return ok
}
