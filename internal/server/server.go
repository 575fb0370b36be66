package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"

	_ "github.com/joho/godotenv/autoload"
	"github.com/tobiajayi/daily-verse-api/internal/database"
	"github.com/tobiajayi/daily-verse-api/internal/notify"
	"github.com/tobiajayi/daily-verse-api/internal/stage"
	"github.com/tobiajayi/daily-verse-api/internal/verse"
	"github.com/tobiajayi/daily-verse-api/pkg/config"
)

type Server struct {
	port    string
	db      database.Service
	handler http.Handler
	cfg     *config.Config

	service   *verse.Service
	worker    *notify.Worker
	schedRepo notify.ScheduleRepo
	cron      *cron.Cron
	cancel    context.CancelFunc
}

// NewServer constructs the app server with all dependencies injected.
func NewServer(db database.Service, cfg *config.Config) *Server {
	stats := db.Health()
	if stats["status"] != "up" {
		log.Fatalf("Database connection failed: %s", stats["error"])
		return &Server{}
	}
	log.Println("Database connection successful")

	provider := verse.NewProvider(cfg)
	historyRepo := verse.NewHistoryRepo(db)
	stateRepo := notify.NewStateRepo(db)
	schedRepo := notify.NewScheduleRepo(db)

	scheduler := notify.NewScheduler(stateRepo, schedRepo, cfg.NotifyHour, verse.ReminderTitle(cfg.Locale))
	worker := notify.NewWorker(schedRepo, notify.NewNotifier(cfg), cfg.NotifyRepeat)
	scheduler.SetOnChange(worker.Refresh)

	service := verse.NewService(provider, historyRepo, scheduler, stage.NewController())

	s := &Server{
		port:      cfg.Port,
		db:        db,
		cfg:       cfg,
		service:   service,
		worker:    worker,
		schedRepo: schedRepo,
	}

	s.handler = s.RegisterRoutes()
	return s
}

// HTTPServer returns the actual *http.Server instance
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", s.port),
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// StartBackgroundJobs runs the launch sequence, the delivery worker and the
// daily rollover job.
func (s *Server) StartBackgroundJobs() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	if err := s.service.Launch(ctx); err != nil {
		log.Printf("Launch sequence error: %v", err)
	}

	go s.worker.Start(ctx)

	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.cfg.DailyCronSpec, func() {
		log.Println("Daily rollover: refreshing verse and reminder schedule")
		s.service.DailyRollover(context.Background())
	}); err != nil {
		log.Printf("Failed to register daily rollover job: %v", err)
	}
	s.cron.Start()

	log.Println("Background jobs started")
}

func (s *Server) StopBackgroundJobs() {
	if s.cron != nil {
		s.cron.Stop()
	}
	if s.cancel != nil {
		s.cancel()
		log.Println("Background jobs stopped gracefully")
	}
}
