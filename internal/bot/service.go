// Package bot runs the Telegram long-polling loop and dispatches the
// operator commands to the report pipeline.
package bot

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/wb-report-bot/infrastructure/integrator/telegram"
	"github.com/vfg2006/wb-report-bot/infrastructure/integrator/wildberries"
	"github.com/vfg2006/wb-report-bot/internal/config"
	"github.com/vfg2006/wb-report-bot/internal/domain"
	"github.com/vfg2006/wb-report-bot/internal/usecases/reporting"
)

const helpMessage = "👋 Привет! Я бот для отчётов Wildberries.\n\n" +
	"📌 Команды:\n" +
	"/report — отчёт за последние 7 дней\n" +
	"/week — отчёт за прошлую неделю\n" +
	"/month — отчёт за прошлый месяц\n" +
	"/today — отчёт за сегодня\n" +
	"/period ДД.ММ.ГГГГ ДД.ММ.ГГГГ — отчёт за любой период\n" +
	"/compare Д1 Д1 Д2 Д2 — сравнить два периода\n" +
	"/status — проверить подключение к WB\n\n" +
	"⏰ Автоотчёты:\n" +
	"  • Еженедельно — каждый понедельник в 09:00\n" +
	"  • Ежемесячно — 1-го числа в 09:00"

type Service struct {
	cfg       *config.Config
	api       *tgbotapi.BotAPI
	wbService wildberries.WBIntegrator
	messenger telegram.Messenger
	reporter  reporting.Reporter
	now       func() time.Time
}

func NewService(
	cfg *config.Config,
	api *tgbotapi.BotAPI,
	wbService wildberries.WBIntegrator,
	messenger telegram.Messenger,
	reporter reporting.Reporter,
) *Service {
	return &Service{
		cfg:       cfg,
		api:       api,
		wbService: wbService,
		messenger: messenger,
		reporter:  reporter,
		now:       time.Now,
	}
}

// Run polls Telegram for updates until the context is cancelled. Commands
// from chats other than the configured one are ignored.
func (s *Service) Run(ctx context.Context) {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30

	updates := s.api.GetUpdatesChan(updateConfig)

	logrus.Info("Bot is listening for commands")

	for {
		select {
		case <-ctx.Done():
			s.api.StopReceivingUpdates()
			logrus.Info("Bot stopped")
			return
		case update := <-updates:
			s.handleUpdate(update)
		}
	}
}

func (s *Service) handleUpdate(update tgbotapi.Update) {
	if update.Message == nil || !update.Message.IsCommand() {
		return
	}

	if update.Message.Chat.ID != s.cfg.Telegram.ChatID {
		logrus.WithField("chatID", update.Message.Chat.ID).Warn("Ignoring command from an unknown chat")
		return
	}

	command := update.Message.Command()
	args := splitArgs(update.Message.CommandArguments())

	logrus.WithFields(logrus.Fields{
		"command": command,
		"args":    len(args),
	}).Info("Command received")

	switch command {
	case "start", "help":
		s.reply(helpMessage, false)
	case "status":
		go s.handleStatus()
	case "report":
		go s.runReport(domain.ReportKindWeekly, domain.LastSevenDays(s.today()))
	case "week":
		go s.runReport(domain.ReportKindWeekly, domain.PreviousWeek(s.today()))
	case "month":
		go s.runReport(domain.ReportKindMonthly, domain.PreviousMonth(s.today()))
	case "today":
		go s.runReport(domain.ReportKindDaily, domain.Today(s.today()))
	case "period":
		s.handlePeriod(args)
	case "compare":
		s.handleCompare(args)
	default:
		s.reply("🤷 Неизвестная команда. /start покажет список команд.", false)
	}
}

// handleStatus probes the statistics API with a single-day request and
// reports the row count plus the masked key.
func (s *Service) handleStatus() {
	s.reply("🔄 Проверяю подключение к WB API...", false)

	rows, err := s.wbService.FetchLedger(domain.Today(s.today()))
	if err != nil {
		s.reply(fmt.Sprintf("❌ Ошибка подключения:\n%v", err), false)
		return
	}

	s.reply(fmt.Sprintf(
		"✅ Подключение работает!\nПолучено строк за сегодня: %d\nAPI-ключ: %s",
		len(rows),
		maskKey(s.cfg.Wildberries.APIKey),
	), false)
}

func (s *Service) handlePeriod(args []string) {
	period, err := parsePeriodArgs(args)
	if err != nil {
		s.reply(err.Error(), true)
		return
	}

	if period.From.After(period.To) {
		s.reply("❌ Начальная дата не может быть позже конечной.", false)
		return
	}

	if period.Days() > s.cfg.Report.MaxPeriodDays {
		s.reply(fmt.Sprintf("❌ Период не может быть больше %d дней.", s.cfg.Report.MaxPeriodDays), false)
		return
	}

	go s.runReport(domain.ReportKindCustom, period)
}

func (s *Service) handleCompare(args []string) {
	first, second, err := parseCompareArgs(args)
	if err != nil {
		s.reply(err.Error(), true)
		return
	}

	if first.From.After(first.To) || second.From.After(second.To) {
		s.reply("❌ Начальная дата не может быть позже конечной.", false)
		return
	}

	go func() {
		if err := s.reporter.ComparePeriods(first, second); err != nil {
			logrus.WithError(err).Error("Comparison failed")
		}
	}()
}

func (s *Service) runReport(kind domain.ReportKind, period domain.Period) {
	if err := s.reporter.SendPeriodReport(kind, period); err != nil {
		logrus.WithFields(logrus.Fields{
			"kind":   kind,
			"period": period.Label(),
		}).WithError(err).Error("Report failed")
	}
}

func (s *Service) reply(message string, markdown bool) {
	if err := s.messenger.SendText(message, markdown); err != nil {
		logrus.WithError(err).Error("Could not send the reply")
	}
}

// today truncates now to the date, matching the day precision of periods.
func (s *Service) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func maskKey(key string) string {
	if len(key) < 4 {
		return "****"
	}
	return "********************" + key[len(key)-4:]
}
