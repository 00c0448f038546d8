// Package oura reads sleep records from the Oura v2 usercollection API.
package oura

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/brendanm12345/bedtime-bully/internal"
)

const (
	sleepPath  = "/v2/usercollection/sleep"
	dateLayout = "2006-01-02"
)

type Client struct {
	BaseURL    string
	Token      string
	Location   *time.Location
	HTTPClient *http.Client
	logger     internal.Logger
}

type sleepResponse struct {
	Data      []internal.SleepRecord `json:"data"`
	NextToken *string                `json:"next_token"`
}

func NewClient(baseURL, token string, loc *time.Location, timeout time.Duration, logger internal.Logger) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      token,
		Location:   loc,
		HTTPClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// SleepRange returns the [yesterday, today] calendar dates for now in loc.
func SleepRange(now time.Time, loc *time.Location) (start, end string) {
	local := now.In(loc)
	return local.AddDate(0, 0, -1).Format(dateLayout), local.Format(dateLayout)
}

// FetchLastNightSleep returns the last record the provider lists for
// [yesterday, today], or nil when the list is empty.
func (c *Client) FetchLastNightSleep(ctx context.Context, now time.Time) (*internal.SleepRecord, error) {
	records, err := c.ListSleep(ctx, now)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	last := records[len(records)-1]
	if last.BedtimeStart.IsZero() {
		c.logger.Errorf("oura: sleep record %q has no bedtime_start", last.ID)
		return nil, internal.NewAppError(internal.KindProvider, "decode sleep", fmt.Errorf("record %q missing bedtime_start", last.ID))
	}
	return &last, nil
}

// ListSleep returns the records exactly in the order the provider sent them.
func (c *Client) ListSleep(ctx context.Context, now time.Time) ([]internal.SleepRecord, error) {
	start, end := SleepRange(now, c.Location)
	q := url.Values{}
	q.Set("start_date", start)
	q.Set("end_date", end)
	endpoint := c.BaseURL + sleepPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Errorf("oura: failed to create request: %v", err)
		return nil, internal.NewAppError(internal.KindProvider, "build request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.logger.Errorf("oura: failed to call sleep endpoint: %v", err)
		return nil, internal.NewAppError(internal.KindProvider, "get sleep", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Errorf("oura: sleep endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		return nil, internal.NewAppError(internal.KindProvider, "get sleep", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var payload sleepResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Errorf("oura: failed to decode sleep response: %v", err)
		return nil, internal.NewAppError(internal.KindProvider, "decode sleep", err)
	}
	c.logger.Debugf("oura: %d sleep records for %s..%s", len(payload.Data), start, end)
	return payload.Data, nil
}
