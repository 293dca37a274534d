package availability

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/airjam-co/booking-resolver/internal/domain"
	"github.com/airjam-co/booking-resolver/pkg/metrics"
)

const (
	bookEndpoint = "/s/calendar/book"

	metricsTarget = "booking-provider"
)

// Logger is the logging surface the client depends on
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client talks to the remote booking provider
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
	log        Logger
	metrics    *metrics.Metrics
}

// NewClient creates a provider client. metricsCollector may be nil when
// metrics are disabled.
func NewClient(baseURL, authToken string, timeout time.Duration, log Logger, metricsCollector *metrics.Metrics) *Client {
	return &Client{
		baseURL:   baseURL,
		authToken: authToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metricsCollector,
	}
}

// FetchReservationTerms fetches the availability snapshot for a component
// and query window. An empty resourceID fetches every resource of the
// component.
func (c *Client) FetchReservationTerms(ctx context.Context, componentID string, window domain.TimeRange, resourceID string) (*domain.BookingAvailability, error) {
	query := url.Values{}
	query.Set("id", componentID)
	query.Set("startTimeUtc", window.StartTimeUTC.UTC().Format(time.RFC3339))
	query.Set("endTimeUtc", window.EndTimeUTC.UTC().Format(time.RFC3339))
	if resourceID != "" {
		query.Set("resourceId", resourceID)
	}
	requestURL := fmt.Sprintf("%s%s?%s", c.baseURL, bookEndpoint, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.observe("fetch_reservation_terms", err == nil, start)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusNotFound:
		return nil, ErrComponentNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payload availabilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return payload.toDomain(componentID), nil
}

// BookReservation submits a finalized selection to the provider. The
// provider owns reservation persistence and payment capture; this service
// only forwards selections it has validated against the current snapshot.
func (c *Client) BookReservation(ctx context.Context, componentID string, request BookingRequest) (*BookingResponse, error) {
	requestURL := fmt.Sprintf("%s%s?id=%s", c.baseURL, bookEndpoint, url.QueryEscape(componentID))

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, requestURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.observe("book_reservation", err == nil, start)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusNotFound:
		return nil, ErrComponentNotFound
	case http.StatusConflict, http.StatusUnprocessableEntity:
		var errResp ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrBookingRejected, errResp.Message)
		}
		return nil, ErrBookingRejected
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var result BookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &result, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}
}

func (c *Client) observe(operation string, ok bool, start time.Time) {
	if c.metrics == nil {
		return
	}
	outcome := "success"
	if !ok {
		outcome = "error"
	}
	c.metrics.ObserveIntegrationRequest(metricsTarget, operation, outcome, time.Since(start))
}
