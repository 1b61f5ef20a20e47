package wbclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/wb-report-bot/internal/domain"
)

// GetOrders fetches orders starting at dateFrom (flag=0: everything since the
// date, not a single day).
func (c *StatisticsClient) GetOrders(dateFrom string) ([]domain.OrderRecord, error) {
	body, err := c.getSince("/orders", dateFrom)
	if err != nil {
		return nil, err
	}

	var orders []domain.OrderRecord
	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, errors.Wrap(err, "decoding orders response")
	}

	return orders, nil
}

// GetSales fetches sale and return records starting at dateFrom.
func (c *StatisticsClient) GetSales(dateFrom string) ([]domain.SaleRecord, error) {
	body, err := c.getSince("/sales", dateFrom)
	if err != nil {
		return nil, err
	}

	var sales []domain.SaleRecord
	if err := json.Unmarshal(body, &sales); err != nil {
		return nil, errors.Wrap(err, "decoding sales response")
	}

	return sales, nil
}

// getSince performs the shared GET for the dateFrom-windowed endpoints.
func (c *StatisticsClient) getSince(resource, dateFrom string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.Wildberries.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parsing base url")
	}
	endpoint.Path = path.Join(endpoint.Path, resource)

	query := endpoint.Query()
	query.Set("dateFrom", dateFrom)
	query.Set("flag", "0")
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
		return nil, errors.Errorf("%s failed with status: %s", resource, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response body")
	}

	return body, nil
}
