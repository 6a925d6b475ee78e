package datastore

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuralarc/site/contact"
)

type nopLogger struct{}

func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}

func sampleSubmission() contact.Submission {
	return contact.Submission{
		ID:        "7f1c2d4e-0000-4000-8000-000000000001",
		Name:      "Ada",
		Email:     "ada@example.com",
		Interest:  "research",
		Message:   "Hello",
		CreatedAt: time.Date(2025, 5, 1, 12, 30, 0, 0, time.UTC),
	}
}

func TestSupabaseInsert(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/contact", r.URL.Path)
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))
		assert.Equal(t, "return=minimal", r.Header.Get("Prefer"))

		var body map[string]string
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&body)) {
			return
		}
		assert.Equal(t, map[string]string{
			"name":       "Ada",
			"email":      "ada@example.com",
			"interest":   "research",
			"message":    "Hello",
			"created_at": "2025-05-01T12:30:00Z",
		}, body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	s, err := NewSupabase(Config{URL: srv.URL + "/", Key: "anon-key"})
	require.NoError(t, err)
	require.NoError(t, s.Insert(context.Background(), sampleSubmission()))
	assert.Equal(t, int32(1), hits.Load())
}

func TestSupabaseErrorCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"code":"23505","message":"duplicate key value violates unique constraint","details":null,"hint":null}`))
	}))
	defer srv.Close()

	s, err := NewSupabase(Config{URL: srv.URL, Key: "k"})
	require.NoError(t, err)

	err = s.Insert(context.Background(), sampleSubmission())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "23505", apiErr.Code)

	svc := contact.NewService(s, nopLogger{})
	state, err := svc.Submit(context.Background(), "k", contact.Fields{
		Name: "Ada", Email: "ada@example.com", Interest: "research", Message: "Hi",
	})
	require.Error(t, err)
	assert.Equal(t, "duplicate key value violates unique constraint", state.Error)
}

func TestSupabaseErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s, err := NewSupabase(Config{URL: srv.URL, Key: "k"})
	require.NoError(t, err)

	svc := contact.NewService(s, nopLogger{})
	state, err := svc.Submit(context.Background(), "k", contact.Fields{
		Name: "Ada", Email: "ada@example.com", Interest: "research", Message: "Hi",
	})
	require.Error(t, err)
	assert.Equal(t, contact.MsgGenericFailure, state.Error)
}

func TestSupabaseTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	s, err := NewSupabase(Config{URL: srv.URL, Key: "k", Timeout: 50 * time.Millisecond})
	require.NoError(t, err)
	assert.Error(t, s.Insert(context.Background(), sampleSubmission()))
}

func TestNewSupabaseValidation(t *testing.T) {
	_, err := NewSupabase(Config{Key: "k"})
	assert.Error(t, err)
	_, err = NewSupabase(Config{URL: "http://x", Key: "k", Table: "contact; drop"})
	assert.Error(t, err)
}

func TestSQLiteInsert(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "contact.db")
	ins, closer, err := Open(context.Background(), Config{Driver: DriverSQLite, Path: path})
	require.NoError(t, err)
	defer closer.Close()

	require.NoError(t, ins.Insert(context.Background(), sampleSubmission()))

	db := ins.(*SQLite)
	n, err := db.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	err = ins.Insert(context.Background(), sampleSubmission())
	assert.Error(t, err, "duplicate id must be rejected")
}

func TestOpenUnknownDriver(t *testing.T) {
	_, _, err := Open(context.Background(), Config{Driver: "mongodb"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown driver "mongodb"`)
}

func TestPostgresBadDSN(t *testing.T) {
	_, err := NewPostgres(context.Background(), Config{DSN: "postgres://localhost:notaport/db"})
	assert.Error(t, err)
}
