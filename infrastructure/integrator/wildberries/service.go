package wildberries

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/wb-report-bot/infrastructure/integrator/wildberries/wbclient"
	"github.com/vfg2006/wb-report-bot/internal/config"
	"github.com/vfg2006/wb-report-bot/internal/domain"
)

// WBIntegrator exposes the statistics endpoints the report pipeline needs.
// FetchLedger failures are fatal for a report; FetchOrders and FetchSales are
// best-effort enrichment and degrade to an empty slice on any error.
type WBIntegrator interface {
	FetchLedger(period domain.Period) ([]domain.LedgerRow, error)
	FetchOrders(dateFrom time.Time) ([]domain.OrderRecord, error)
	FetchSales(dateFrom time.Time) ([]domain.SaleRecord, error)
}

type WBService struct {
	cfg    *config.Config
	Client wbclient.Client
}

func New(cfg *config.Config, client wbclient.Client) WBIntegrator {
	return &WBService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *WBService) FetchLedger(period domain.Period) ([]domain.LedgerRow, error) {
	return s.Client.GetReportDetailByPeriod(
		period.From.Format(time.DateOnly),
		period.To.Format(time.DateOnly),
	)
}

func (s *WBService) FetchOrders(dateFrom time.Time) ([]domain.OrderRecord, error) {
	orders, err := s.Client.GetOrders(dateFrom.Format(time.DateOnly))
	if err != nil {
		logrus.WithError(err).Warn("Could not fetch orders, positions report will be partial")
		return []domain.OrderRecord{}, nil
	}

	return orders, nil
}

func (s *WBService) FetchSales(dateFrom time.Time) ([]domain.SaleRecord, error) {
	sales, err := s.Client.GetSales(dateFrom.Format(time.DateOnly))
	if err != nil {
		logrus.WithError(err).Warn("Could not fetch sales, positions report will be partial")
		return []domain.SaleRecord{}, nil
	}

	return sales, nil
}
