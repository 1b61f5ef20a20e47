package wbclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/wb-report-bot/internal/domain"
)

// reportLimit is the page size of reportDetailByPeriod. One page covers a
// year of a small seller's ledger, so pagination is not implemented.
const reportLimit = "100000"

// GetReportDetailByPeriod fetches the detailed financial report for a closed
// date range. A 401 maps to ErrUnauthorized; a nil JSON body decodes to an
// empty slice, which the caller treats as "no data yet", not as a failure.
func (c *StatisticsClient) GetReportDetailByPeriod(dateFrom, dateTo string) ([]domain.LedgerRow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.Wildberries.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parsing base url")
	}
	endpoint.Path = path.Join(endpoint.Path, "/reportDetailByPeriod")

	query := endpoint.Query()
	query.Set("dateFrom", dateFrom)
	query.Set("dateTo", dateTo)
	query.Set("limit", reportLimit)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}

	req.Header.Set("Authorization", c.config.Wildberries.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "executing request")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("reportDetailByPeriod failed with status: %s", resp.Status)
	}

	var rows []domain.LedgerRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, errors.Wrap(err, "decoding response")
	}

	return rows, nil
}
