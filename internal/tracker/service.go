package tracker

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/xfocus/xfocus/internal/config"
	"github.com/xfocus/xfocus/internal/models"
	"github.com/xfocus/xfocus/pkg/client"
)

// Recorder stores focus samples
type Recorder interface {
	Create(sample *models.FocusSample) error
}

// Service polls a focus client and records what it resolves
type Service struct {
	config        *config.Config
	repo          Recorder
	client        client.Client
	displayServer string
	logger        *zap.Logger

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
	lastApp  string
}

func NewService(cfg *config.Config, repo Recorder, c client.Client, displayServer string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		config:        cfg,
		repo:          repo,
		client:        c,
		displayServer: displayServer,
		logger:        logger.Named("tracker"),
	}
}

// Start polls until ctx is cancelled or Stop is called
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("tracker is already running")
	}
	s.running = true
	stop := make(chan struct{})
	s.stopChan = stop
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	s.logger.Info("starting tracker", zap.Duration("poll_interval", s.config.Tracker.PollInterval))

	ticker := time.NewTicker(s.config.Tracker.PollInterval)
	defer ticker.Stop()

	s.poll()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("tracker stopped by context")
			return ctx.Err()

		case <-stop:
			s.logger.Info("tracker stopped")
			return nil

		case <-ticker.C:
			s.poll()
		}
	}
}

// Stop ends a running Start loop. It is safe to call more than once and
// does nothing when the tracker is not running. A stopped Service can be started again.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	select {
	case <-s.stopChan:
	default:
		close(s.stopChan)
	}
}

func (s *Service) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Service) poll() {
	if _, err := s.TrackOnce(); err != nil {
		s.logger.Error("failed to track focus", zap.Error(err))
	}
}

// TrackOnce resolves the focused application and records a sample for it.
// It returns the recorded application, or "" when nothing was recorded.
func (s *Service) TrackOnce() (string, error) {
	if !s.client.Supported() {
		s.logger.Debug("skipping sample: focus resolution unsupported")
		s.transition("")
		return "", nil
	}

	app, ok := s.client.CurrentApplication()
	if !ok || app == "" {
		s.logger.Debug("skipping sample: no application resolved")
		s.transition("")
		return "", nil
	}

	s.transition(app)

	sample := &models.FocusSample{
		Timestamp:     time.Now(),
		AppName:       app,
		Duration:      s.config.GetPollIntervalSeconds(),
		DisplayServer: s.displayServer,
	}
	if err := s.repo.Create(sample); err != nil {
		return "", errors.Wrapf(err, "failed to record sample for %s", app)
	}

	return app, nil
}

func (s *Service) transition(app string) {
	s.mu.Lock()
	prev := s.lastApp
	s.lastApp = app
	s.mu.Unlock()

	if app != prev && app != "" {
		s.logger.Info("focus changed", zap.String("from", prev), zap.String("to", app))
	}
}

// Current resolves the focused application without recording it
func (s *Service) Current() (app string, supported bool, ok bool) {
	if !s.client.Supported() {
		return "", false, false
	}
	app, ok = s.client.CurrentApplication()
	return app, true, ok
}
