// Package scheduler runs the automatic report jobs.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/wb-report-bot/internal/config"
	"github.com/vfg2006/wb-report-bot/internal/domain"
	"github.com/vfg2006/wb-report-bot/internal/usecases/reporting"
)

type ReportJobConfig struct {
	WeeklyCron     string
	WeeklyEnabled  bool
	MonthlyCron    string
	MonthlyEnabled bool
}

// ReportJobService schedules the weekly and monthly automatic reports and
// lets the API trigger them manually.
type ReportJobService struct {
	scheduler *gocron.Scheduler
	reporter  reporting.Reporter
	config    ReportJobConfig

	jobRunning        bool
	jobMutex          sync.Mutex
	lastRunStartedAt  time.Time
	lastRunFinishedAt time.Time
	now               func() time.Time
}

func NewReportJobService(reporter reporting.Reporter, cfg *config.Config) *ReportJobService {
	jobConfig := ReportJobConfig{
		WeeklyCron:     cfg.WeeklyReport.CronSchedule,
		WeeklyEnabled:  cfg.WeeklyReport.Enabled,
		MonthlyCron:    cfg.MonthlyReport.CronSchedule,
		MonthlyEnabled: cfg.MonthlyReport.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"weekly_cron":  jobConfig.WeeklyCron,
		"monthly_cron": jobConfig.MonthlyCron,
	}).Info("Report job schedules loaded")

	return &ReportJobService{
		scheduler: gocron.NewScheduler(time.UTC),
		reporter:  reporter,
		config:    jobConfig,
		now:       time.Now,
	}
}

// Start registers the enabled jobs and runs the scheduler until the context
// is cancelled.
func (s *ReportJobService) Start(ctx context.Context) error {
	if !s.config.WeeklyEnabled && !s.config.MonthlyEnabled {
		logrus.Info("Automatic reports disabled by configuration")
		return nil
	}

	if s.config.WeeklyEnabled {
		_, err := s.scheduler.Cron(s.config.WeeklyCron).Do(func() {
			s.runJob(domain.ReportKindWeekly)
		})
		if err != nil {
			return fmt.Errorf("scheduling the weekly report: %w", err)
		}
		logrus.WithField("cron", s.config.WeeklyCron).Info("Weekly report scheduled")
	}

	if s.config.MonthlyEnabled {
		_, err := s.scheduler.Cron(s.config.MonthlyCron).Do(func() {
			s.runJob(domain.ReportKindMonthly)
		})
		if err != nil {
			return fmt.Errorf("scheduling the monthly report: %w", err)
		}
		logrus.WithField("cron", s.config.MonthlyCron).Info("Monthly report scheduled")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping the report scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// runJob executes one scheduled report, skipping when another run is still
// in flight.
func (s *ReportJobService) runJob(kind domain.ReportKind) {
	s.jobMutex.Lock()
	if s.jobRunning {
		s.jobMutex.Unlock()
		logrus.WithField("kind", kind).Warn("A report job is already running, skipping")
		return
	}
	s.jobRunning = true
	s.lastRunStartedAt = s.now()
	s.jobMutex.Unlock()

	defer func() {
		s.jobMutex.Lock()
		s.jobRunning = false
		s.lastRunFinishedAt = s.now()
		s.jobMutex.Unlock()
	}()

	period := s.periodFor(kind)

	logrus.WithFields(logrus.Fields{
		"kind":   kind,
		"period": period.Label(),
	}).Info("Starting scheduled report")

	if err := s.reporter.SendPeriodReport(kind, period); err != nil {
		logrus.WithError(err).WithField("kind", kind).Error("Scheduled report failed")
		return
	}

	logrus.WithField("kind", kind).Info("Scheduled report finished")
}

func (s *ReportJobService) periodFor(kind domain.ReportKind) domain.Period {
	today := s.now().UTC().Truncate(24 * time.Hour)

	if kind == domain.ReportKindMonthly {
		return domain.PreviousMonth(today)
	}

	return domain.PreviousWeek(today)
}

// TriggerManualRun starts a report job outside its schedule.
func (s *ReportJobService) TriggerManualRun(kind domain.ReportKind) {
	s.jobMutex.Lock()
	if s.jobRunning {
		s.jobMutex.Unlock()
		logrus.Info("A report job is already running, ignoring the manual request")
		return
	}
	s.jobMutex.Unlock()

	logrus.WithField("kind", kind).Info("Starting manual report run")
	go s.runJob(kind)
}

// GetStatus reports the scheduler state for the cron status endpoint.
func (s *ReportJobService) GetStatus() map[string]any {
	s.jobMutex.Lock()
	defer s.jobMutex.Unlock()

	return map[string]any{
		"weekly_enabled":       s.config.WeeklyEnabled,
		"weekly_cron":          s.config.WeeklyCron,
		"monthly_enabled":      s.config.MonthlyEnabled,
		"monthly_cron":         s.config.MonthlyCron,
		"running":              s.jobRunning,
		"last_run_started_at":  s.lastRunStartedAt,
		"last_run_finished_at": s.lastRunFinishedAt,
	}
}
