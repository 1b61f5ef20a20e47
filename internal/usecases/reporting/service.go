// Package reporting orchestrates the report pipeline: fetch statistics,
// aggregate, render and deliver through Telegram.
package reporting

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/wb-report-bot/infrastructure/integrator/telegram"
	"github.com/vfg2006/wb-report-bot/infrastructure/integrator/wildberries"
	"github.com/vfg2006/wb-report-bot/infrastructure/integrator/wildberries/wbclient"
	"github.com/vfg2006/wb-report-bot/internal/config"
	"github.com/vfg2006/wb-report-bot/internal/domain"
	"github.com/vfg2006/wb-report-bot/internal/usecases/analyzing"
	"github.com/vfg2006/wb-report-bot/internal/usecases/rendering"
	"github.com/vfg2006/wb-report-bot/pkg/utils"
)

// ErrInvalidPeriod is returned before any fetch when the requested range is
// reversed or longer than the configured maximum.
var ErrInvalidPeriod = errors.New("invalid report period")

// Reporter runs a full report or a two-period comparison and delivers the
// result to the operator chat.
type Reporter interface {
	SendPeriodReport(kind domain.ReportKind, period domain.Period) error
	ComparePeriods(first, second domain.Period) error
}

type Service struct {
	cfg       *config.Config
	wbService wildberries.WBIntegrator
	messenger telegram.Messenger
}

func NewService(
	cfg *config.Config,
	wbService wildberries.WBIntegrator,
	messenger telegram.Messenger,
) Reporter {
	return &Service{
		cfg:       cfg,
		wbService: wbService,
		messenger: messenger,
	}
}

// SendPeriodReport builds and delivers the report for one period: a progress
// notice, the Markdown summary, a separate alert message for condensed
// shapes and the XLSX workbook. A period without ledger rows produces a
// "no data" notice and no document.
func (s *Service) SendPeriodReport(kind domain.ReportKind, period domain.Period) error {
	if err := s.validatePeriod(period); err != nil {
		return err
	}

	reportID, _ := utils.GenerateID()
	log := logrus.WithFields(logrus.Fields{
		"reportID": reportID,
		"kind":     kind,
		"period":   period.Label(),
	})
	log.Info("Starting report")

	if err := s.messenger.SendText("⏳ Собираю данные с Wildberries...", false); err != nil {
		log.WithError(err).Warn("Could not send the progress message")
	}

	rows, err := s.wbService.FetchLedger(period)
	if err != nil {
		return s.reportFailure(log, err)
	}

	if len(rows) == 0 {
		log.Info("No ledger rows for the period")
		return s.messenger.SendText(
			fmt.Sprintf("📭 За период %s данных нет. Отчёт ВБ может формироваться с задержкой до нескольких дней.", period.Label()),
			false,
		)
	}

	orders, _ := s.wbService.FetchOrders(period.From)
	sales, _ := s.wbService.FetchSales(period.From)

	analysis := analyzing.Aggregate(rows)
	positions := analyzing.AggregatePositions(orders, sales)
	alerts := analyzing.DetectAlerts(rows, s.cfg.Report.AlertThreshold)

	log.WithFields(logrus.Fields{
		"rows":      len(rows),
		"positions": len(positions),
		"alerts":    len(alerts),
	}).Info("Aggregation finished")

	var message string
	if kind == domain.ReportKindMonthly {
		message = rendering.MonthlyMessage(analysis, period)
	} else {
		message = rendering.PeriodMessage(analysis, positions, period, alerts)
	}

	if err := s.messenger.SendText(message, true); err != nil {
		return errors.Wrap(err, "sending report message")
	}

	// the condensed monthly shape omits inline alerts, deliver them apart
	if kind == domain.ReportKindMonthly && len(alerts) > 0 {
		if err := s.sendAlerts(alerts); err != nil {
			log.WithError(err).Warn("Could not send the alerts message")
		}
	}

	workbook, err := rendering.Workbook(analysis, positions, period)
	if err != nil {
		return s.reportFailure(log, errors.Wrap(err, "building workbook"))
	}

	filename := fmt.Sprintf("WB_%s_%s_%s.xlsx",
		kind,
		period.From.Format("2006-01-02"),
		period.To.Format("2006-01-02"),
	)
	caption := "Отчёт " + period.Label()

	if err := s.messenger.SendDocument(workbook, filename, caption); err != nil {
		return errors.Wrap(err, "sending workbook")
	}

	log.Info("Report delivered")

	return nil
}

// ComparePeriods fetches and aggregates both ranges and delivers the
// side-by-side comparison message. No workbook is attached.
func (s *Service) ComparePeriods(first, second domain.Period) error {
	if err := s.validatePeriod(first); err != nil {
		return err
	}
	if err := s.validatePeriod(second); err != nil {
		return err
	}

	log := logrus.WithFields(logrus.Fields{
		"first":  first.Label(),
		"second": second.Label(),
	})
	log.Info("Starting comparison")

	if err := s.messenger.SendText("⏳ Собираю данные за оба периода...", false); err != nil {
		log.WithError(err).Warn("Could not send the progress message")
	}

	firstRows, err := s.wbService.FetchLedger(first)
	if err != nil {
		return s.reportFailure(log, err)
	}

	secondRows, err := s.wbService.FetchLedger(second)
	if err != nil {
		return s.reportFailure(log, err)
	}

	if len(firstRows) == 0 && len(secondRows) == 0 {
		log.Info("No ledger rows for either period")
		return s.messenger.SendText("ℹ️ Нет данных ни за один из периодов.", false)
	}

	comparison := analyzing.Compare(analyzing.Aggregate(firstRows), analyzing.Aggregate(secondRows))
	message := rendering.CompareMessage(comparison, first.Label(), second.Label())

	if err := s.messenger.SendText(message, true); err != nil {
		return errors.Wrap(err, "sending comparison message")
	}

	log.Info("Comparison delivered")

	return nil
}

func (s *Service) validatePeriod(period domain.Period) error {
	if period.To.Before(period.From) {
		return errors.Wrap(ErrInvalidPeriod, "end date before start date")
	}

	if period.Days() > s.cfg.Report.MaxPeriodDays {
		return errors.Wrapf(ErrInvalidPeriod, "longer than %d days", s.cfg.Report.MaxPeriodDays)
	}

	return nil
}

// reportFailure tells the operator the report did not happen and returns the
// original error to the caller. Auth failures get actionable wording.
func (s *Service) reportFailure(log *logrus.Entry, err error) error {
	log.WithError(err).Error("Report failed")

	text := "❌ Не удалось сформировать отчёт. Попробуйте позже."
	if errors.Is(err, wbclient.ErrUnauthorized) {
		text = "🔑 ВБ отклонил ключ API. Проверьте WB_API_KEY и перезапустите бота."
	}

	if sendErr := s.messenger.SendText(text, false); sendErr != nil {
		log.WithError(sendErr).Warn("Could not send the failure message")
	}

	return err
}

func (s *Service) sendAlerts(alerts []string) error {
	const maxListed = 10

	lines := []string{"🚨 *АЛЕРТЫ ЗА ПЕРИОД*"}
	for i, a := range alerts {
		if i == maxListed {
			lines = append(lines, fmt.Sprintf("_...и ещё %d_", len(alerts)-maxListed))
			break
		}
		lines = append(lines, a)
	}

	return s.messenger.SendText(strings.Join(lines, "\n"), true)
}
