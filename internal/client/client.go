// Package client is the HTTP client of the trip planner API. It implements
// the remote-service interfaces the wizards depend on.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/pkordes/trip-planner/internal/api"
	"github.com/pkordes/trip-planner/internal/domain"
)

const (
	defaultTimeout = 10 * time.Second
	defaultRetries = 3
	defaultBackoff = 100 * time.Millisecond

	// maxErrorBody bounds how much of an error response is read.
	maxErrorBody = 64 << 10
)

// Client talks to the trip planner API.
// Idempotent GETs are retried on transport errors and 5xx responses;
// writes are sent once.
type Client struct {
	baseURL string
	http    *http.Client
	retries uint64
	backoff time.Duration
	log     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithRetries sets how many times a failed GET is retried.
func WithRetries(n uint64) Option {
	return func(c *Client) { c.retries = n }
}

// WithBackoff sets the base delay of the exponential retry backoff.
func WithBackoff(base time.Duration) Option {
	return func(c *Client) { c.backoff = base }
}

// WithLogger sets the logger used to report retried requests.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New returns a Client for the API rooted at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		retries: defaultRetries,
		backoff: defaultBackoff,
		log:     slog.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// ---- trips ----

// CreateTrip creates a trip and its invitations and returns the new trip id.
func (c *Client) CreateTrip(ctx context.Context, draft domain.TripDraft) (uuid.UUID, error) {
	var resp api.CreateTripResponse
	if err := c.send(ctx, http.MethodPost, "/trips", api.NewCreateTripRequest(draft), &resp, http.StatusCreated); err != nil {
		return uuid.Nil, fmt.Errorf("client.Client.CreateTrip: %w", err)
	}
	return resp.TripID, nil
}

// GetTrip fetches a trip. It returns domain.ErrNotFound for an unknown id.
func (c *Client) GetTrip(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	var resp api.Trip
	if err := c.get(ctx, "/trips/"+id.String(), &resp); err != nil {
		return domain.Trip{}, fmt.Errorf("client.Client.GetTrip: %w", err)
	}
	return resp.Domain(), nil
}

// UpdateTrip saves the destination and dates of trip.
func (c *Client) UpdateTrip(ctx context.Context, trip domain.Trip) error {
	wire := api.FromTrip(trip)
	body := api.UpdateTripRequest{
		Destination: wire.Destination,
		StartsAt:    wire.StartsAt,
		EndsAt:      wire.EndsAt,
	}
	if err := c.send(ctx, http.MethodPut, "/trips/"+trip.ID.String(), body, nil, http.StatusOK); err != nil {
		return fmt.Errorf("client.Client.UpdateTrip: %w", err)
	}
	return nil
}

// ---- links ----

// CreateLink adds a link to link.TripID and returns it as stored.
func (c *Client) CreateLink(ctx context.Context, link domain.Link) (domain.Link, error) {
	var resp api.Link
	body := api.CreateLinkRequest{Title: link.Title, URL: link.URL}
	if err := c.send(ctx, http.MethodPost, "/trips/"+link.TripID.String()+"/links", body, &resp, http.StatusCreated); err != nil {
		return domain.Link{}, fmt.Errorf("client.Client.CreateLink: %w", err)
	}
	return resp.Domain(), nil
}

// ListLinks returns the links of a trip.
func (c *Client) ListLinks(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	var resp api.LinkList
	if err := c.get(ctx, "/trips/"+tripID.String()+"/links", &resp); err != nil {
		return nil, fmt.Errorf("client.Client.ListLinks: %w", err)
	}
	out := make([]domain.Link, len(resp.Links))
	for i, l := range resp.Links {
		out[i] = l.Domain()
	}
	return out, nil
}

// ---- participants ----

// ListParticipants returns the guests of a trip.
func (c *Client) ListParticipants(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	var resp api.ParticipantList
	if err := c.get(ctx, "/trips/"+tripID.String()+"/participants", &resp); err != nil {
		return nil, fmt.Errorf("client.Client.ListParticipants: %w", err)
	}
	out := make([]domain.Participant, len(resp.Participants))
	for i, p := range resp.Participants {
		out[i] = p.Domain()
	}
	return out, nil
}

// ConfirmParticipant marks a guest as attending.
func (c *Client) ConfirmParticipant(ctx context.Context, id uuid.UUID) error {
	if err := c.send(ctx, http.MethodPatch, "/participants/"+id.String()+"/confirm", nil, nil, http.StatusNoContent); err != nil {
		return fmt.Errorf("client.Client.ConfirmParticipant: %w", err)
	}
	return nil
}

// ---- activities ----

// CreateActivity adds an activity to activity.TripID and returns it as stored.
func (c *Client) CreateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	var resp api.Activity
	body := api.CreateActivityRequest{Title: activity.Title, OccursAt: activity.OccursAt}
	if err := c.send(ctx, http.MethodPost, "/trips/"+activity.TripID.String()+"/activities", body, &resp, http.StatusCreated); err != nil {
		return domain.Activity{}, fmt.Errorf("client.Client.CreateActivity: %w", err)
	}
	return resp.Domain(), nil
}

// ListActivities returns the activities of a trip ordered by time.
func (c *Client) ListActivities(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	var resp api.ActivityList
	if err := c.get(ctx, "/trips/"+tripID.String()+"/activities", &resp); err != nil {
		return nil, fmt.Errorf("client.Client.ListActivities: %w", err)
	}
	out := make([]domain.Activity, len(resp.Activities))
	for i, a := range resp.Activities {
		out[i] = a.Domain()
	}
	return out, nil
}

// ---- transport ----

// get performs a GET with retries and decodes a 200 body into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	backoff := retry.WithMaxRetries(c.retries, retry.NewExponential(c.backoff))
	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := c.do(ctx, http.MethodGet, path, nil, out, http.StatusOK)
		var re *retryable
		if errors.As(err, &re) {
			c.log.WarnContext(ctx, "retrying request", "method", http.MethodGet, "path", path, "attempt", attempt, "error", re.err)
			return retry.RetryableError(re.err)
		}
		return err
	})
}

// send performs a single non-idempotent request.
func (c *Client) send(ctx context.Context, method, path string, body, out any, want int) error {
	err := c.do(ctx, method, path, body, out, want)
	var re *retryable
	if errors.As(err, &re) {
		return re.err
	}
	return err
}

// retryable marks a failure that a GET may retry: transport errors and 5xx.
type retryable struct{ err error }

func (r *retryable) Error() string { return r.err.Error() }
func (r *retryable) Unwrap() error { return r.err }

func (c *Client) do(ctx context.Context, method, path string, body, out any, want int) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &retryable{fmt.Errorf("%w: %s %s: %w", domain.ErrNetwork, method, path, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		return statusError(method, path, resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %w", domain.ErrNetwork, method, path, err)
	}
	return nil
}

// statusError maps an unexpected status to a domain sentinel:
// 404 to ErrNotFound, 422 and 413 to ErrValidation and anything else to
// ErrNetwork. 5xx responses are retryable.
func statusError(method, path string, resp *http.Response) error {
	msg := errorMessage(resp)
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, msg)
	case resp.StatusCode == http.StatusUnprocessableEntity,
		resp.StatusCode == http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", domain.ErrValidation, msg)
	case resp.StatusCode >= http.StatusInternalServerError:
		return &retryable{fmt.Errorf("%w: %s %s: status %d: %s", domain.ErrNetwork, method, path, resp.StatusCode, msg)}
	default:
		return fmt.Errorf("%w: %s %s: status %d: %s", domain.ErrNetwork, method, path, resp.StatusCode, msg)
	}
}

// errorMessage extracts the message of an api.ErrorResponse body, falling
// back to the status text.
func errorMessage(resp *http.Response) string {
	var body api.ErrorResponse
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil && json.Unmarshal(raw, &body) == nil && body.Error.Message != "" {
		return body.Error.Message
	}
	return http.StatusText(resp.StatusCode)
}
