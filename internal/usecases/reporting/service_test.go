package reporting

import (
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	tgmocks "github.com/vfg2006/wb-report-bot/infrastructure/integrator/telegram/mocks"
	wbmocks "github.com/vfg2006/wb-report-bot/infrastructure/integrator/wildberries/mocks"
	"github.com/vfg2006/wb-report-bot/infrastructure/integrator/wildberries/wbclient"
	"github.com/vfg2006/wb-report-bot/internal/config"
	"github.com/vfg2006/wb-report-bot/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Report: config.Report{
			AlertThreshold: 5000,
			MaxPeriodDays:  365,
		},
	}
}

func testPeriod() domain.Period {
	return domain.Period{
		From: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
	}
}

func ledgerRows() []domain.LedgerRow {
	return []domain.LedgerRow{
		{DocTypeName: domain.DocTypeSale, RetailPrice: 1000, PpvzForPay: 800, RrDt: "2025-01-07T00:00:00"},
		{DocTypeName: domain.DocTypeSale, RetailPrice: 2000, PpvzForPay: 1700, DeliveryRub: 90, RrDt: "2025-01-09T00:00:00"},
	}
}

func TestSendPeriodReport_FullDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)

	wb := wbmocks.NewMockWBIntegrator(ctrl)
	tg := tgmocks.NewMockMessenger(ctrl)
	service := NewService(testConfig(), wb, tg)

	period := testPeriod()

	wb.EXPECT().FetchLedger(period).Return(ledgerRows(), nil)
	wb.EXPECT().FetchOrders(period.From).Return([]domain.OrderRecord{{NmID: 1, Subject: "Носки"}}, nil)
	wb.EXPECT().FetchSales(period.From).Return([]domain.SaleRecord{{NmID: 1, SaleID: "S1", PriceWithDisc: 1000}}, nil)

	gomock.InOrder(
		tg.EXPECT().SendText(gomock.Any(), false).Return(nil), // progress
		tg.EXPECT().SendText(gomock.Any(), true).DoAndReturn(func(message string, _ bool) error {
			assert.Contains(t, message, "ЕЖЕНЕДЕЛЬНЫЙ ОТЧЁТ ВБ")
			assert.Contains(t, message, "Носки")
			return nil
		}),
		tg.EXPECT().SendDocument(gomock.Any(), "WB_weekly_2025-01-06_2025-01-12.xlsx", gomock.Any()).
			DoAndReturn(func(data []byte, _, caption string) error {
				assert.NotEmpty(t, data)
				assert.Contains(t, caption, period.Label())
				return nil
			}),
	)

	err := service.SendPeriodReport(domain.ReportKindWeekly, period)
	require.NoError(t, err)
}

func TestSendPeriodReport_MonthlySendsSeparateAlerts(t *testing.T) {
	ctrl := gomock.NewController(t)

	wb := wbmocks.NewMockWBIntegrator(ctrl)
	tg := tgmocks.NewMockMessenger(ctrl)
	service := NewService(testConfig(), wb, tg)

	period := testPeriod()
	rows := append(ledgerRows(), domain.LedgerRow{Penalty: 700, RrDt: "2025-01-08T00:00:00", SaName: "Куртка"})

	wb.EXPECT().FetchLedger(period).Return(rows, nil)
	wb.EXPECT().FetchOrders(period.From).Return(nil, nil)
	wb.EXPECT().FetchSales(period.From).Return(nil, nil)

	var markdownMessages []string
	tg.EXPECT().SendText(gomock.Any(), false).Return(nil)
	tg.EXPECT().SendText(gomock.Any(), true).DoAndReturn(func(message string, _ bool) error {
		markdownMessages = append(markdownMessages, message)
		return nil
	}).Times(2)
	tg.EXPECT().SendDocument(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	err := service.SendPeriodReport(domain.ReportKindMonthly, period)
	require.NoError(t, err)

	require.Len(t, markdownMessages, 2)
	assert.Contains(t, markdownMessages[0], "ЕЖЕМЕСЯЧНЫЙ ИТОГ ВБ")
	assert.Contains(t, markdownMessages[1], "АЛЕРТЫ ЗА ПЕРИОД")
	assert.Contains(t, markdownMessages[1], "Куртка")
}

func TestSendPeriodReport_EmptyLedgerSkipsDocument(t *testing.T) {
	ctrl := gomock.NewController(t)

	wb := wbmocks.NewMockWBIntegrator(ctrl)
	tg := tgmocks.NewMockMessenger(ctrl)
	service := NewService(testConfig(), wb, tg)

	period := testPeriod()
	wb.EXPECT().FetchLedger(period).Return([]domain.LedgerRow{}, nil)

	tg.EXPECT().SendText(gomock.Any(), false).Return(nil)
	tg.EXPECT().SendText(gomock.Any(), false).DoAndReturn(func(message string, _ bool) error {
		assert.Contains(t, message, "данных нет")
		return nil
	})

	err := service.SendPeriodReport(domain.ReportKindWeekly, period)
	require.NoError(t, err)
}

func TestSendPeriodReport_InvalidPeriodBeforeAnyFetch(t *testing.T) {
	ctrl := gomock.NewController(t)

	wb := wbmocks.NewMockWBIntegrator(ctrl)
	tg := tgmocks.NewMockMessenger(ctrl)
	service := NewService(testConfig(), wb, tg)

	reversed := domain.Period{
		From: time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
	}
	err := service.SendPeriodReport(domain.ReportKindCustom, reversed)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	tooLong := domain.Period{
		From: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	err = service.SendPeriodReport(domain.ReportKindCustom, tooLong)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestSendPeriodReport_UnauthorizedGetsKeyGuidance(t *testing.T) {
	ctrl := gomock.NewController(t)

	wb := wbmocks.NewMockWBIntegrator(ctrl)
	tg := tgmocks.NewMockMessenger(ctrl)
	service := NewService(testConfig(), wb, tg)

	period := testPeriod()
	wb.EXPECT().FetchLedger(period).Return(nil, errors.Wrap(wbclient.ErrUnauthorized, "report detail"))

	tg.EXPECT().SendText(gomock.Any(), false).Return(nil)
	tg.EXPECT().SendText(gomock.Any(), false).DoAndReturn(func(message string, _ bool) error {
		assert.Contains(t, message, "WB_API_KEY")
		return nil
	})

	err := service.SendPeriodReport(domain.ReportKindWeekly, period)
	assert.ErrorIs(t, err, wbclient.ErrUnauthorized)
}

func TestComparePeriods(t *testing.T) {
	ctrl := gomock.NewController(t)

	wb := wbmocks.NewMockWBIntegrator(ctrl)
	tg := tgmocks.NewMockMessenger(ctrl)
	service := NewService(testConfig(), wb, tg)

	first := testPeriod()
	second := domain.Period{
		From: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC),
	}

	wb.EXPECT().FetchLedger(first).Return(ledgerRows(), nil)
	wb.EXPECT().FetchLedger(second).Return([]domain.LedgerRow{
		{DocTypeName: domain.DocTypeSale, RetailPrice: 4500, PpvzForPay: 3900, RrDt: "2025-01-15T00:00:00"},
	}, nil)

	tg.EXPECT().SendText(gomock.Any(), false).Return(nil)
	tg.EXPECT().SendText(gomock.Any(), true).DoAndReturn(func(message string, _ bool) error {
		assert.Contains(t, message, "СРАВНЕНИЕ ПЕРИОДОВ")
		assert.True(t, strings.Contains(message, "лучше на") || strings.Contains(message, "Периоды равны"))
		return nil
	})

	err := service.ComparePeriods(first, second)
	require.NoError(t, err)
}

func TestComparePeriods_BothEmptySendsNotice(t *testing.T) {
	ctrl := gomock.NewController(t)

	wb := wbmocks.NewMockWBIntegrator(ctrl)
	tg := tgmocks.NewMockMessenger(ctrl)
	service := NewService(testConfig(), wb, tg)

	first := testPeriod()
	second := domain.Period{
		From: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC),
	}

	wb.EXPECT().FetchLedger(first).Return([]domain.LedgerRow{}, nil)
	wb.EXPECT().FetchLedger(second).Return(nil, nil)

	tg.EXPECT().SendText(gomock.Any(), false).Return(nil) // progress
	tg.EXPECT().SendText(gomock.Any(), false).DoAndReturn(func(message string, _ bool) error {
		assert.Equal(t, "ℹ️ Нет данных ни за один из периодов.", message)
		return nil
	})

	err := service.ComparePeriods(first, second)
	require.NoError(t, err)
}
