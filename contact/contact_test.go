package contact

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}

type recordingStore struct {
	mu    sync.Mutex
	calls []Submission
	err   error
	block chan struct{}
	enter chan struct{}
}

func (r *recordingStore) Insert(ctx context.Context, s Submission) error {
	r.mu.Lock()
	r.calls = append(r.calls, s)
	r.mu.Unlock()
	if r.enter != nil {
		r.enter <- struct{}{}
	}
	if r.block != nil {
		<-r.block
	}
	return r.err
}

func (r *recordingStore) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// cancellingStore ends the request right after a successful insert, like a
// client that disconnects before the response.
type cancellingStore struct{ cancel context.CancelFunc }

func (c *cancellingStore) Insert(context.Context, Submission) error {
	c.cancel()
	return nil
}

type remoteMsgErr struct{ msg string }

func (e remoteMsgErr) Error() string         { return "postgrest: " + e.msg }
func (e remoteMsgErr) RemoteMessage() string { return e.msg }

type failingNotifier struct{ called int }

func (n *failingNotifier) Notify(context.Context, Submission) error {
	n.called++
	return errors.New("smtp down")
}

func validFields() Fields {
	return Fields{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Interest: string(InterestAIAgents),
		Message:  "We need an agent.",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Fields)
		wantMsg string
		missing []string
	}{
		{"valid", func(*Fields) {}, "", nil},
		{"empty name", func(f *Fields) { f.Name = "" }, MsgMissingFields, []string{"name"}},
		{"whitespace message", func(f *Fields) { f.Message = "  \n\t" }, MsgMissingFields, []string{"message"}},
		{"all empty", func(f *Fields) { *f = Fields{} }, MsgMissingFields, []string{"name", "email", "interest", "message"}},
		{"unknown interest", func(f *Fields) { f.Interest = "quantum" }, MsgUnknownInterest, []string{"interest"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFields()
			tt.mutate(&f)
			err := f.Validate()
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantMsg, verr.Error())
			assert.Equal(t, tt.missing, verr.Fields)
		})
	}
}

func TestSubmitValidationFailureSkipsInsert(t *testing.T) {
	store := &recordingStore{}
	svc := NewService(store, nopLogger{})

	in := validFields()
	in.Email = "   "
	state, err := svc.Submit(context.Background(), "k", in)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 0, store.count())
	assert.Equal(t, in, state.Fields)
	assert.Equal(t, MsgMissingFields, state.Error)
	assert.False(t, state.Success)
}

func TestSubmitSuccess(t *testing.T) {
	store := &recordingStore{}
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.FixedZone("PDT", -7*3600))
	var outcomes []Outcome
	svc := NewService(store, nopLogger{},
		WithClock(func() time.Time { return now }),
		WithObserver(func(o Outcome) { outcomes = append(outcomes, o) }),
	)

	in := validFields()
	in.Name = "  Ada Lovelace "
	state, err := svc.Submit(context.Background(), "k", in)
	require.NoError(t, err)

	require.Equal(t, 1, store.count())
	got := store.calls[0]
	assert.Equal(t, "Ada Lovelace", got.Name)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.Equal(t, "ai-agents", got.Interest)
	assert.Equal(t, "We need an agent.", got.Message)
	assert.Equal(t, now.UTC(), got.CreatedAt)
	assert.Equal(t, time.UTC, got.CreatedAt.Location())
	assert.NotEmpty(t, got.ID)

	assert.True(t, state.Success)
	assert.True(t, state.Fields.IsZero())
	assert.Empty(t, state.Error)
	assert.Equal(t, []Outcome{OutcomeSuccess}, outcomes)
	assert.False(t, svc.Submitting("k"))
}

func TestSubmitRemoteFailure(t *testing.T) {
	t.Run("with remote message", func(t *testing.T) {
		store := &recordingStore{err: fmt.Errorf("insert: %w", remoteMsgErr{"duplicate key value"})}
		svc := NewService(store, nopLogger{})

		in := validFields()
		state, err := svc.Submit(context.Background(), "k", in)

		var rerr *RemoteError
		require.True(t, errors.As(err, &rerr))
		assert.Equal(t, "duplicate key value", state.Error)
		assert.Equal(t, in, state.Fields)
		assert.False(t, state.Success)
		assert.Equal(t, 1, store.count())
	})

	t.Run("generic fallback", func(t *testing.T) {
		store := &recordingStore{err: context.DeadlineExceeded}
		svc := NewService(store, nopLogger{})

		state, err := svc.Submit(context.Background(), "k", validFields())

		var rerr *RemoteError
		require.True(t, errors.As(err, &rerr))
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
		assert.Equal(t, MsgGenericFailure, state.Error)
		assert.False(t, svc.Submitting("k"))
	})
}

func TestSubmitInFlightGuard(t *testing.T) {
	store := &recordingStore{block: make(chan struct{}), enter: make(chan struct{})}
	svc := NewService(store, nopLogger{})

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), "visitor", validFields())
		done <- err
	}()

	<-store.enter
	assert.True(t, svc.Submitting("visitor"))
	assert.False(t, svc.Submitting("someone-else"))

	state, err := svc.Submit(context.Background(), "visitor", validFields())
	assert.ErrorIs(t, err, ErrInFlight)
	assert.False(t, state.Submitting, "a refused duplicate is already resolved")
	assert.Equal(t, MsgInFlight, state.Error)
	assert.Equal(t, validFields(), state.Fields)

	close(store.block)
	require.NoError(t, <-done)

	assert.Equal(t, 1, store.count())
	assert.False(t, svc.Submitting("visitor"))
}

func TestNotifierFailureDoesNotChangeOutcome(t *testing.T) {
	n := &failingNotifier{}
	svc := NewService(&recordingStore{}, nopLogger{}, WithNotifier(n))

	state, err := svc.Submit(context.Background(), "k", validFields())
	require.NoError(t, err)
	assert.True(t, state.Success)
	svc.Wait()
	assert.Equal(t, 1, n.called)
}

type ctxNotifier struct {
	err         error
	hasDeadline bool
}

func (n *ctxNotifier) Notify(ctx context.Context, _ Submission) error {
	n.err = ctx.Err()
	_, n.hasDeadline = ctx.Deadline()
	return nil
}

func TestNotifyOutlivesRequest(t *testing.T) {
	n := &ctxNotifier{}
	store := &cancellingStore{}
	svc := NewService(store, nopLogger{}, WithNotifier(n), WithNotifyTimeout(time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	store.cancel = cancel
	_, err := svc.Submit(ctx, "k", validFields())
	require.NoError(t, err)
	svc.Wait()

	assert.NoError(t, n.err, "notification must not inherit the request's cancellation")
	assert.True(t, n.hasDeadline)
}

func TestInterests(t *testing.T) {
	all := Interests()
	assert.Len(t, all, 7)
	for _, i := range all {
		assert.True(t, i.Valid(), string(i))
		assert.NotEqual(t, string(i), i.Label())
	}
	assert.False(t, Interest("nope").Valid())
	assert.Equal(t, "nope", Interest("nope").Label())
}

func TestNotificationText(t *testing.T) {
	s := Submission{
		Name:      "Ada",
		Email:     "ada@example.com",
		Interest:  "blockchain",
		Message:   "Hello",
		CreatedAt: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
	}
	subject, body := notificationText(s)
	assert.Equal(t, "New enquiry from Ada: Blockchain Integration", subject)
	assert.Contains(t, body, "Email: ada@example.com\n")
	assert.Contains(t, body, "\n\nHello\n")
}

func TestNewMailgunNotifierRequiresConfig(t *testing.T) {
	assert.Nil(t, NewMailgunNotifier(MailgunConfig{Domain: "mg.example.com"}))
	n := NewMailgunNotifier(MailgunConfig{Domain: "mg.example.com", APIKey: "key", To: "team@example.com"})
	require.NotNil(t, n)
	assert.Equal(t, "Neuralarc Matrix <noreply@mg.example.com>", n.cfg.From)
}
