package datastore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/neuralarc/site/contact"
)

// APIError is a PostgREST error body.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("supabase: status %d", e.Status)
	}
	return fmt.Sprintf("supabase: status %d: %s", e.Status, e.Message)
}

// RemoteMessage is the message reported by the server, if any.
func (e *APIError) RemoteMessage() string {
	return e.Message
}

// Supabase inserts submissions into a table through the PostgREST API.
type Supabase struct {
	client *resty.Client
	table  string
}

type supabaseRow struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Interest  string `json:"interest"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// NewSupabase requires cfg.URL and cfg.Key.
func NewSupabase(cfg Config) (*Supabase, error) {
	cfg.setDefaults()
	if cfg.URL == "" || cfg.Key == "" {
		return nil, errors.New("datastore: supabase requires url and key")
	}
	if err := checkTable(cfg.Table); err != nil {
		return nil, err
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetHeader("apikey", cfg.Key).
		SetAuthToken(cfg.Key).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)
	return &Supabase{client: client, table: cfg.Table}, nil
}

// Insert posts one row. It is not retried.
func (s *Supabase) Insert(ctx context.Context, sub contact.Submission) error {
	apiErr := &APIError{}
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=minimal").
		SetBody(supabaseRow{
			Name:      sub.Name,
			Email:     sub.Email,
			Interest:  sub.Interest,
			Message:   sub.Message,
			CreatedAt: sub.CreatedAt.Format(timeLayout),
		}).
		SetError(apiErr).
		Post("/rest/v1/" + s.table)
	if err != nil {
		return fmt.Errorf("supabase insert: %w", err)
	}
	if resp.IsError() {
		apiErr.Status = resp.StatusCode()
		return apiErr
	}
	return nil
}
