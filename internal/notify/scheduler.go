package notify

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// LastOpenDateKey is the app_state key holding the ISO date of the last day
// the schedule was evaluated.
const LastOpenDateKey = "bible:last_open_date"

const dateLayout = "2006-01-02"

// Scheduler decides once per calendar day whether to (re)schedule the daily
// reminder. The first call on a new day cancels every pending notification
// and schedules exactly one; later calls on the same day are no-ops.
type Scheduler struct {
	// mu serializes the read-check-write on the last open date; refresh
	// handlers, launch and the rollover job may evaluate concurrently.
	mu    sync.Mutex
	state StateRepo
	repo  ScheduleRepo
	hour  int
	title string

	// onChange is poked after a new notification is scheduled so the
	// delivery worker re-evaluates its timer.
	onChange func()
}

func NewScheduler(state StateRepo, repo ScheduleRepo, hour int, title string) *Scheduler {
	return &Scheduler{
		state: state,
		repo:  repo,
		hour:  hour,
		title: title,
	}
}

// SetOnChange registers a callback invoked after the schedule changed.
func (s *Scheduler) SetOnChange(fn func()) {
	s.onChange = fn
}

// ScheduleIfNeeded evaluates the daily reminder schedule for the calendar
// day of now. The trigger lands on now's day at the configured hour when now
// is still before it, otherwise on the next day. The last open date is
// written afterward even when the schedule insert failed, so a broken
// notification store cannot cause reschedule stacking.
func (s *Scheduler) ScheduleIfNeeded(ctx context.Context, verseText, reference string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := now.Format(dateLayout)

	last, err := s.state.Get(ctx, LastOpenDateKey)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to read last open date: %w", err)
	}

	if last == today {
		return nil
	}

	if err := s.repo.CancelPending(ctx); err != nil {
		return fmt.Errorf("failed to cancel pending notifications: %w", err)
	}

	n := Notification{
		ID:        uuid.NewString(),
		Title:     s.title,
		Body:      verseText,
		Reference: reference,
		FireAt:    s.nextTrigger(now),
		Status:    StatusPending,
		CreatedAt: now,
	}

	scheduled := true
	if err := s.repo.Create(ctx, n); err != nil {
		log.Printf("Failed to schedule reminder: %v", err)
		scheduled = false
	}

	if err := s.state.Set(ctx, LastOpenDateKey, today); err != nil {
		return fmt.Errorf("failed to write last open date: %w", err)
	}

	if scheduled {
		log.Printf("Reminder scheduled for %s (%s)", n.FireAt.Format(time.RFC3339), reference)
		if s.onChange != nil {
			s.onChange()
		}
	}
	return nil
}

// nextTrigger returns the configured hour on now's day when now is before
// it, otherwise the same hour on the next day.
func (s *Scheduler) nextTrigger(now time.Time) time.Time {
	trigger := time.Date(now.Year(), now.Month(), now.Day(), s.hour, 0, 0, 0, now.Location())
	if !now.Before(trigger) {
		trigger = trigger.AddDate(0, 0, 1)
	}
	return trigger
}
