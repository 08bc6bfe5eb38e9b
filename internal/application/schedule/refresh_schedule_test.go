package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubTarget struct {
	city      string
	submitted []string
}

func (s *stubTarget) DisplayedCity() string { return s.city }

func (s *stubTarget) SubmitAsync(city string) { s.submitted = append(s.submitted, city) }

func TestExecuteScheduledTaskResubmitsDisplayedCity(t *testing.T) {
	target := &stubTarget{city: "Rome"}
	scheduler := NewRefreshScheduler(target, "@every 30m")

	scheduler.ExecuteScheduledTask()
	scheduler.ExecuteScheduledTask()

	assert.Equal(t, []string{"Rome", "Rome"}, target.submitted)
}

func TestExecuteScheduledTaskSkipsWhenNothingDisplayed(t *testing.T) {
	target := &stubTarget{}
	scheduler := NewRefreshScheduler(target, "@every 30m")

	scheduler.ExecuteScheduledTask()

	assert.Empty(t, target.submitted)
}

func TestInitWithEmptyExpressionLeavesCronStopped(t *testing.T) {
	target := &stubTarget{city: "Rome"}
	scheduler := NewRefreshScheduler(target, "")

	scheduler.InitRefreshScheduleTasks()
	scheduler.Stop()

	assert.Empty(t, target.submitted)
}

func TestInitWithBadExpressionDoesNotStart(t *testing.T) {
	target := &stubTarget{city: "Rome"}
	scheduler := NewRefreshScheduler(target, "not a cron expression")

	scheduler.InitRefreshScheduleTasks()
	scheduler.Stop()

	assert.Empty(t, target.submitted)
}
