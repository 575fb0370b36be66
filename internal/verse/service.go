package verse

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/tobiajayi/daily-verse-api/internal/notify"
	"github.com/tobiajayi/daily-verse-api/internal/stage"
)

// Fetcher is the verse provider seam, satisfied by *Provider.
type Fetcher interface {
	Random(ctx context.Context) (Verse, error)
}

// Service drives the verse lifecycle: fetch, history, reminder scheduling
// and the stage machine. The current verse is overwritten on every fetch;
// an in-flight fetch is not cancelled by a refresh, the last write wins.
type Service struct {
	provider  Fetcher
	history   HistoryRepo
	scheduler *notify.Scheduler
	stages    *stage.Controller

	mu      sync.Mutex
	current Verse
}

func NewService(provider Fetcher, history HistoryRepo, scheduler *notify.Scheduler, stages *stage.Controller) *Service {
	return &Service{
		provider:  provider,
		history:   history,
		scheduler: scheduler,
		stages:    stages,
	}
}

// Launch runs the startup sequence: fetch a verse, evaluate the reminder
// schedule, then open the page. While the fetch is in flight the last
// recorded verse is shown, so a restart does not present an empty screen.
func (s *Service) Launch(ctx context.Context) error {
	if last, err := s.history.GetLastFetched(ctx); err == nil {
		s.mu.Lock()
		s.current = Verse{
			Text:        last.Body,
			Reference:   last.Reference,
			Translation: last.Translation,
			FetchedAt:   last.FetchedAt,
		}
		s.mu.Unlock()
	}

	s.loadVerse(ctx)

	if _, err := s.stages.Apply(stage.EventReady); err != nil {
		return err
	}
	return nil
}

// Refresh re-runs the fetch and schedule evaluation on a user refresh. The
// page reopens and the reveal restarts regardless of the previous stage.
func (s *Service) Refresh(ctx context.Context) (stage.Stage, error) {
	st, err := s.stages.Apply(stage.EventRefresh)
	if err != nil {
		return st, err
	}

	s.loadVerse(ctx)
	return st, nil
}

// FinishReveal records the animation-finish event from the presentation
// layer.
func (s *Service) FinishReveal() (stage.Stage, error) {
	return s.stages.Apply(stage.EventRevealDone)
}

// Current returns the verse on screen and the current stage.
func (s *Service) Current() (Verse, stage.Stage) {
	s.mu.Lock()
	v := s.current
	s.mu.Unlock()
	return v, s.stages.Stage()
}

// DailyRollover re-runs the fetch and schedule evaluation at day boundary,
// the service equivalent of the app coming to the foreground on a new day.
func (s *Service) DailyRollover(ctx context.Context) {
	s.loadVerse(ctx)
}

func (s *Service) loadVerse(ctx context.Context) {
	v, err := s.provider.Random(ctx)
	if err != nil {
		// The provider already substituted the fallback verse.
		log.Printf("Verse fetch degraded to fallback: %v", err)
	}

	if v.Reference != "" {
		if err := s.history.SaveFetchedVerse(ctx, v); err != nil {
			log.Printf("Failed to record verse history: %v", err)
		}
	}

	if err := s.scheduler.ScheduleIfNeeded(ctx, v.Text, v.Reference, time.Now()); err != nil {
		log.Printf("Failed to evaluate reminder schedule: %v", err)
	}

	s.mu.Lock()
	s.current = v
	s.mu.Unlock()
}
