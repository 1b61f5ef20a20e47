package wbclient

import (
	"net/http"
	"time"

	"github.com/vfg2006/wb-report-bot/internal/config"
	"github.com/vfg2006/wb-report-bot/internal/domain"
)

type Client interface {
	GetReportDetailByPeriod(dateFrom, dateTo string) ([]domain.LedgerRow, error)
	GetOrders(dateFrom string) ([]domain.OrderRecord, error)
	GetSales(dateFrom string) ([]domain.SaleRecord, error)
}

type StatisticsClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &StatisticsClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
