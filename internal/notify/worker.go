package notify

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
)

// Worker fires pending notifications when they come due. It sleeps on a
// timer armed for the earliest pending fire time and can be poked through
// Refresh whenever the schedule changes.
type Worker struct {
	repo        ScheduleRepo
	notifier    Notifier
	refresh     chan struct{}
	repeatDaily bool
}

func NewWorker(repo ScheduleRepo, notifier Notifier, repeatDaily bool) *Worker {
	return &Worker{
		repo:        repo,
		notifier:    notifier,
		refresh:     make(chan struct{}, 1),
		repeatDaily: repeatDaily,
	}
}

// Refresh signals the worker to re-evaluate the schedule immediately.
func (w *Worker) Refresh() {
	select {
	case w.refresh <- struct{}{}:
	default:
		// A signal is already pending.
	}
}

func (w *Worker) Start(ctx context.Context) {
	log.Println("Delivery worker started")

	timer := time.NewTimer(time.Hour)
	timer.Stop()

	for {
		nextRun := w.checkAndProcess(ctx)

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}

		if nextRun.IsZero() {
			log.Println("No pending reminders, worker idle")
		} else {
			wait := time.Until(nextRun)
			if wait < 0 {
				wait = 0
			}
			timer.Reset(wait)
			log.Printf("Next reminder check in %s (at %s)", wait.Round(time.Second), nextRun.Format("15:04:05"))
		}

		select {
		case <-ctx.Done():
			log.Println("Delivery worker stopped")
			return
		case <-w.refresh:
		case <-timer.C:
		}
	}
}

// checkAndProcess fires due notifications and returns the earliest pending
// fire time, or zero when nothing is pending.
func (w *Worker) checkAndProcess(ctx context.Context) time.Time {
	pending, err := w.repo.GetPending(ctx)
	if err != nil {
		log.Printf("Failed to load pending reminders: %v", err)
		// Retry in a minute rather than idling forever on a storage hiccup.
		return time.Now().Add(time.Minute)
	}

	now := time.Now()
	var earliest time.Time

	for _, n := range pending {
		if now.Before(n.FireAt) {
			if earliest.IsZero() || n.FireAt.Before(earliest) {
				earliest = n.FireAt
			}
			continue
		}

		if err := w.notifier.Send(ctx, n); err != nil {
			// Delivery failure degrades silently, same as a denied
			// notification permission would on device.
			log.Printf("Failed to deliver reminder %s: %v", n.ID, err)
		} else {
			log.Printf("Reminder delivered (%s)", n.Reference)
		}

		if err := w.repo.MarkDelivered(ctx, n.ID, now); err != nil {
			log.Printf("Failed to mark reminder %s delivered: %v", n.ID, err)
			continue
		}

		if w.repeatDaily {
			next := n
			next.ID = uuid.NewString()
			next.FireAt = n.FireAt.AddDate(0, 0, 1)
			next.Status = StatusPending
			next.CreatedAt = now
			next.DeliveredAt = nil
			if err := w.repo.Create(ctx, next); err != nil {
				log.Printf("Failed to reschedule repeating reminder: %v", err)
				continue
			}
			if earliest.IsZero() || next.FireAt.Before(earliest) {
				earliest = next.FireAt
			}
		}
	}

	return earliest
}
