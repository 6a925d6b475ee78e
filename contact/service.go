package contact

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Inserter writes one submission to the contact datastore.
type Inserter interface {
	Insert(ctx context.Context, s Submission) error
}

// Notifier is told about every stored submission.
type Notifier interface {
	Notify(ctx context.Context, s Submission) error
}

// Logger is the subset of echo.Logger the service writes to.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Outcome labels a finished submission attempt for metrics.
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeInvalid  Outcome = "invalid"
	OutcomeInFlight Outcome = "in_flight"
	OutcomeFailed   Outcome = "failed"
)

// Service runs contact submissions. Submissions sharing a key are
// serialised: a second one while the first is pending is refused.
type Service struct {
	store    Inserter
	notifier Notifier
	logger   Logger
	now      func() time.Time
	observe  func(Outcome)

	mu       sync.Mutex
	inFlight map[string]struct{}

	notifyTimeout time.Duration
	notifying     sync.WaitGroup
}

// DefaultNotifyTimeout bounds one notification.
const DefaultNotifyTimeout = 30 * time.Second

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithNotifier sends a notification after every successful insert.
func WithNotifier(n Notifier) ServiceOption {
	return func(s *Service) { s.notifier = n }
}

// WithNotifyTimeout bounds each notification, which runs after the
// response and outlives the request.
func WithNotifyTimeout(d time.Duration) ServiceOption {
	return func(s *Service) { s.notifyTimeout = d }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// WithObserver receives the outcome of every Submit call.
func WithObserver(fn func(Outcome)) ServiceOption {
	return func(s *Service) { s.observe = fn }
}

// NewService creates a Service that stores submissions with store.
func NewService(store Inserter, logger Logger, opts ...ServiceOption) *Service {
	s := &Service{
		store:    store,
		logger:   logger,
		now:      time.Now,
		observe:  func(Outcome) {},
		inFlight: make(map[string]struct{}),

		notifyTimeout: DefaultNotifyTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submitting reports whether a submission for key is pending.
func (s *Service) Submitting(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inFlight[key]
	return ok
}

func (s *Service) acquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inFlight[key]; ok {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

func (s *Service) release(key string) {
	s.mu.Lock()
	delete(s.inFlight, key)
	s.mu.Unlock()
}

// Submit validates f and, if valid, performs exactly one insert. The
// returned FormState is what the form should show next; the error is a
// *ValidationError, ErrInFlight or a *RemoteError.
func (s *Service) Submit(ctx context.Context, key string, f Fields) (FormState, error) {
	if err := f.Validate(); err != nil {
		s.observe(OutcomeInvalid)
		return FormState{Fields: f, Error: err.Error()}, err
	}

	if !s.acquire(key) {
		s.observe(OutcomeInFlight)
		return FormState{Fields: f, Error: MsgInFlight}, ErrInFlight
	}

	t := f.Trimmed()
	sub := Submission{
		ID:        uuid.NewString(),
		Name:      t.Name,
		Email:     t.Email,
		Interest:  t.Interest,
		Message:   t.Message,
		CreatedAt: s.now().UTC(),
	}

	err := func() error {
		defer s.release(key)
		return s.store.Insert(ctx, sub)
	}()
	if err != nil {
		rerr := &RemoteError{Err: err}
		var m interface{ RemoteMessage() string }
		if errors.As(err, &m) {
			rerr.Message = m.RemoteMessage()
		}
		s.logger.Errorf("contact: insert %s: %v", sub.ID, err)
		s.observe(OutcomeFailed)
		return FormState{Fields: f, Error: rerr.UserMessage()}, rerr
	}

	s.logger.Infof("contact: stored submission %s (%s)", sub.ID, sub.Interest)
	s.observe(OutcomeSuccess)

	if s.notifier != nil {
		s.notify(context.WithoutCancel(ctx), sub)
	}

	return FormState{Success: true}, nil
}

func (s *Service) notify(ctx context.Context, sub Submission) {
	s.notifying.Add(1)
	go func() {
		defer s.notifying.Done()
		ctx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
		defer cancel()
		if err := s.notifier.Notify(ctx, sub); err != nil {
			s.logger.Errorf("contact: notify %s: %v", sub.ID, err)
		}
	}()
}

// Wait blocks until pending notifications have finished.
func (s *Service) Wait() {
	s.notifying.Wait()
}
