package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/healthstats/internal/healthstats"
	"github.com/2beens/healthstats/internal/telemetry/metrics"
)

const (
	draftKeyPrefix       = "healthstats:draft:"
	DefaultFlushInterval = 5 * time.Second

	// a draft left behind by a dead process should not live forever
	draftTTL = 24 * time.Hour
)

var (
	ErrDraftNotFound   = errors.New("draft not found")
	ErrSchedulerClosed = errors.New("draft scheduler closed")
)

// State of a draft as tracked by this scheduler instance.
type State string

const (
	StateNone      State = "none"
	StatePending   State = "pending"
	StateFlushed   State = "flushed"
	StateCancelled State = "cancelled"
)

// FlushFunc persists a draft as a real day log. The daylogs upsert is
// injected here so the scheduler stays storage-agnostic.
type FlushFunc func(ctx context.Context, date string, dayLog healthstats.DayLog) error

// Scheduler keeps draft day logs in redis and debounces their persistence:
// every save re-arms a per-date timer, and only the timer firing (or an
// explicit flush) writes the draft through. All timers belong to the
// scheduler instance and die with Close.
type Scheduler struct {
	redisClient *redis.Client
	flushFn     FlushFunc
	interval    time.Duration
	metrics     *metrics.Manager

	mu     sync.Mutex
	timers map[string]*time.Timer
	states map[string]State
	closed bool
}

func NewScheduler(
	redisClient *redis.Client,
	flushFn FlushFunc,
	interval time.Duration,
	metrics *metrics.Manager,
) *Scheduler {
	if interval <= 0 {
		interval = DefaultFlushInterval
	}
	return &Scheduler{
		redisClient: redisClient,
		flushFn:     flushFn,
		interval:    interval,
		metrics:     metrics,
		timers:      make(map[string]*time.Timer),
		states:      make(map[string]State),
	}
}

func draftKey(date string) string {
	return draftKeyPrefix + date
}

// Save stores the draft and (re)arms its flush timer.
func (s *Scheduler) Save(ctx context.Context, date string, dayLog healthstats.DayLog) error {
	dayLogBytes, err := json.Marshal(dayLog)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}

	if err := s.redisClient.Set(ctx, draftKey(date), dayLogBytes, draftTTL).Err(); err != nil {
		return fmt.Errorf("store draft: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSchedulerClosed
	}

	if timer, ok := s.timers[date]; ok {
		timer.Stop()
	}
	s.timers[date] = time.AfterFunc(s.interval, func() {
		s.mu.Lock()
		delete(s.timers, date)
		closed := s.closed
		s.mu.Unlock()
		if closed {
			return
		}

		if err := s.flush(context.Background(), date); err != nil && !errors.Is(err, ErrDraftNotFound) {
			log.Errorf("scheduled draft flush for %s: %s", date, err)
		}
	})
	s.states[date] = StatePending

	log.Tracef("draft for %s saved, flush in %s", date, s.interval)
	return nil
}

// Get returns the stored draft, flushed or cancelled drafts are gone.
func (s *Scheduler) Get(ctx context.Context, date string) (*healthstats.DayLog, error) {
	cmd := s.redisClient.Get(ctx, draftKey(date))
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("get draft: %w", err)
	}

	var dayLog healthstats.DayLog
	if err := json.Unmarshal([]byte(cmd.Val()), &dayLog); err != nil {
		return nil, fmt.Errorf("unmarshal draft: %w", err)
	}
	return &dayLog, nil
}

// Cancel drops the draft and its timer without persisting anything.
func (s *Scheduler) Cancel(ctx context.Context, date string) error {
	s.stopTimer(date)

	delCmd := s.redisClient.Del(ctx, draftKey(date))
	if err := delCmd.Err(); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	if delCmd.Val() == 0 {
		return ErrDraftNotFound
	}

	s.setState(date, StateCancelled)
	s.metrics.CounterDraftsCancelled.Inc()

	log.Tracef("draft for %s cancelled", date)
	return nil
}

// Flush persists the draft now instead of waiting for the timer.
func (s *Scheduler) Flush(ctx context.Context, date string) error {
	s.stopTimer(date)
	return s.flush(ctx, date)
}

// State reports what this scheduler instance last did with the date's draft.
func (s *Scheduler) State(date string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state, ok := s.states[date]; ok {
		return state
	}
	return StateNone
}

// Close stops all pending timers. Drafts already in redis stay there.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for date, timer := range s.timers {
		timer.Stop()
		delete(s.timers, date)
	}
}

func (s *Scheduler) flush(ctx context.Context, date string) error {
	cmd := s.redisClient.Get(ctx, draftKey(date))
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrDraftNotFound
		}
		return fmt.Errorf("get draft: %w", err)
	}

	var dayLog healthstats.DayLog
	if err := json.Unmarshal([]byte(cmd.Val()), &dayLog); err != nil {
		return fmt.Errorf("unmarshal draft: %w", err)
	}

	if err := s.flushFn(ctx, date, dayLog); err != nil {
		return fmt.Errorf("flush draft: %w", err)
	}

	if err := s.redisClient.Del(ctx, draftKey(date)).Err(); err != nil {
		log.Errorf("failed to delete flushed draft for %s: %s", date, err)
	}

	// the state flip comes last so a flushed state implies the metrics
	// and redis cleanup already happened
	s.metrics.CounterDraftsFlushed.Inc()
	s.setState(date, StateFlushed)

	log.Debugf("draft for %s flushed", date)
	return nil
}

func (s *Scheduler) stopTimer(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if timer, ok := s.timers[date]; ok {
		timer.Stop()
		delete(s.timers, date)
	}
}

func (s *Scheduler) setState(date string, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[date] = state
}
