package schedule

import (
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"skycast/pkg/log"
)

// RefreshTarget is the part of the shell the scheduler drives: it reports
// which city is on screen and accepts a re-submission of it.
type RefreshTarget interface {
	DisplayedCity() string
	SubmitAsync(city string)
}

// RefreshScheduler periodically re-submits the displayed city so the window
// stays current without the user pressing refresh. Results flow through the
// shell's normal dispatcher, so a manual fetch racing an automatic one still
// resolves last-request-wins.
type RefreshScheduler struct {
	cron           *cron.Cron
	target         RefreshTarget
	cronExpression string
}

// NewRefreshScheduler creates a scheduler over the given target.
func NewRefreshScheduler(target RefreshTarget, cronExpression string) *RefreshScheduler {
	return &RefreshScheduler{
		cron:           cron.New(),
		target:         target,
		cronExpression: cronExpression,
	}
}

// InitRefreshScheduleTasks registers and starts the periodic refresh.
func (s *RefreshScheduler) InitRefreshScheduleTasks() {
	if s.cronExpression == "" {
		log.Info("auto-refresh disabled, no cron expression configured")
		return
	}

	_, err := s.cron.AddFunc(s.cronExpression, s.ExecuteScheduledTask)
	if err != nil {
		log.Errorf("Failed to initialize refresh scheduler, cron will not be started: %v", err)
		return
	}

	s.cron.Start()
	log.Infof("Auto-refresh scheduler started with cron expression: %s", s.cronExpression)
}

// ExecuteScheduledTask re-submits the currently displayed city, if any.
func (s *RefreshScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()

	city := s.target.DisplayedCity()
	if city == "" {
		log.Debug("auto-refresh skipped, nothing displayed", zap.String("request_id", requestID))
		return
	}

	log.Info("auto-refresh triggered", zap.String("request_id", requestID), zap.String("city", city))
	s.target.SubmitAsync(city)
}

// Stop gracefully stops the scheduler
func (s *RefreshScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}
