// ABOUTME: Service ties the ledger store to the training engines.
// ABOUTME: Every public operation is one scoped store transaction.
package training

import (
	"time"

	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/storage"
	"github.com/sirupsen/logrus"
)

// Service implements the training operations over a Store.
type Service struct {
	store *storage.Store
	now   func() time.Time
	log   logrus.FieldLogger
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the source of "today".
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger sets the logger used for domain events.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Service) { s.log = l }
}

// New creates a Service over store.
func New(store *storage.Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		now:   time.Now,
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today returns the current calendar date in the clock's location.
func (s *Service) Today() models.Date {
	return models.DateOf(s.now())
}

// resolveDate parses an optional YYYY-MM-DD input, defaulting to today.
func (s *Service) resolveDate(field, in string) (models.Date, error) {
	if in == "" {
		return s.Today(), nil
	}
	return parseDate(field, in)
}

func parseDate(field, in string) (models.Date, error) {
	d, err := models.ParseDate(in)
	if err != nil {
		return models.Date{}, invalid(field, "%q is not a date (use YYYY-MM-DD)", in)
	}
	return d, nil
}
