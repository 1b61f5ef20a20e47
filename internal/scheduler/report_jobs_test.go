package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/wb-report-bot/internal/domain"
	"github.com/vfg2006/wb-report-bot/internal/usecases/reporting/mocks"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestReportJobService_RunJobComputesPreviousWeek(t *testing.T) {
	ctrl := gomock.NewController(t)

	reporter := mocks.NewMockReporter(ctrl)
	service := &ReportJobService{
		reporter: reporter,
		now:      fixedClock(time.Date(2025, 2, 19, 9, 0, 0, 0, time.UTC)), // wednesday
	}

	reporter.EXPECT().
		SendPeriodReport(domain.ReportKindWeekly, gomock.Any()).
		DoAndReturn(func(_ domain.ReportKind, period domain.Period) error {
			assert.Equal(t, time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), period.From)
			assert.Equal(t, time.Date(2025, 2, 16, 0, 0, 0, 0, time.UTC), period.To)
			return nil
		})

	service.runJob(domain.ReportKindWeekly)
}

func TestReportJobService_RunJobComputesPreviousMonth(t *testing.T) {
	ctrl := gomock.NewController(t)

	reporter := mocks.NewMockReporter(ctrl)
	service := &ReportJobService{
		reporter: reporter,
		now:      fixedClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)),
	}

	reporter.EXPECT().
		SendPeriodReport(domain.ReportKindMonthly, gomock.Any()).
		DoAndReturn(func(_ domain.ReportKind, period domain.Period) error {
			assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), period.From)
			assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), period.To)
			return nil
		})

	service.runJob(domain.ReportKindMonthly)
}

func TestReportJobService_SkipsOverlappingRuns(t *testing.T) {
	ctrl := gomock.NewController(t)

	reporter := mocks.NewMockReporter(ctrl)
	service := &ReportJobService{
		reporter: reporter,
		now:      time.Now,
	}

	started := make(chan struct{})
	release := make(chan struct{})

	reporter.EXPECT().
		SendPeriodReport(domain.ReportKindWeekly, gomock.Any()).
		DoAndReturn(func(domain.ReportKind, domain.Period) error {
			close(started)
			<-release
			return nil
		})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		service.runJob(domain.ReportKindWeekly)
	}()

	<-started

	// second run must bail out without touching the reporter
	service.runJob(domain.ReportKindWeekly)

	close(release)
	wg.Wait()
}

func TestReportJobService_GetStatus(t *testing.T) {
	service := &ReportJobService{
		config: ReportJobConfig{
			WeeklyCron:     "0 6 * * 1",
			WeeklyEnabled:  true,
			MonthlyCron:    "0 6 1 * *",
			MonthlyEnabled: false,
		},
		now: time.Now,
	}

	status := service.GetStatus()

	require.Equal(t, true, status["weekly_enabled"])
	require.Equal(t, "0 6 * * 1", status["weekly_cron"])
	assert.Equal(t, false, status["monthly_enabled"])
	assert.Equal(t, false, status["running"])
}
