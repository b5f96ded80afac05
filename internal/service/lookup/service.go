package lookup

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dradle/my-bike-rent/internal/customer"
	"github.com/dradle/my-bike-rent/internal/metrics"
	"github.com/dradle/my-bike-rent/internal/model"
	"github.com/dradle/my-bike-rent/internal/sheet"
	"github.com/dradle/my-bike-rent/internal/util"
)

// Fetcher loads the raw table for one customer sheet.
type Fetcher interface {
	Fetch(ctx context.Context, sheetName string) (*sheet.Table, error)
}

// Publisher receives one event per lookup. Failures are logged only.
type Publisher interface {
	Publish(ctx context.Context, ev model.LookupEvent) error
}

// Service runs fetch -> validate -> build. It keeps no state between calls.
type Service struct {
	fetcher Fetcher
	events  Publisher
	log     *zap.Logger
	now     func() time.Time
}

func New(fetcher Fetcher, events Publisher, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{fetcher: fetcher, events: events, log: log, now: time.Now}
}

// Result carries the request id alongside the outcome, so callers can tag
// responses and drop stale ones.
type Result struct {
	RequestID string
	Record    model.CustomerRecord
}

// Lookup performs a single attempt. Every failure is all-or-nothing.
func (s *Service) Lookup(ctx context.Context, identifier string) (Result, error) {
	res := Result{RequestID: util.NewID()}

	rec, err := s.lookup(ctx, identifier)
	kind := Kind(err)
	metrics.LookupsTotal.WithLabelValues(kind).Inc()

	fields := []zap.Field{
		zap.String("request_id", res.RequestID),
		zap.String("identifier", identifier),
		zap.String("outcome", kind),
	}

	if err != nil {
		var mm *customer.MismatchError
		if errors.As(err, &mm) {
			s.log.Warn("lookup rejected: identity mismatch",
				append(fields, zap.String("identity_cell", mm.Observed))...)
		} else {
			s.log.Error("lookup failed", append(fields, zap.Error(err))...)
		}
		s.publish(ctx, res.RequestID, identifier, kind)
		return res, err
	}

	s.log.Info("lookup ok", append(fields,
		zap.Bool("debt", rec.HasDebt()),
		zap.Bool("has_payment", rec.LastPayment != nil))...)
	s.publish(ctx, res.RequestID, identifier, kind)

	res.Record = rec
	return res, nil
}

func (s *Service) lookup(ctx context.Context, identifier string) (model.CustomerRecord, error) {
	if strings.TrimSpace(identifier) == "" {
		return model.CustomerRecord{}, ErrEmptyIdentifier
	}

	tbl, err := s.fetcher.Fetch(ctx, identifier)
	if err != nil {
		return model.CustomerRecord{}, err
	}

	return customer.Build(tbl, identifier)
}

func (s *Service) publish(ctx context.Context, requestID, identifier, kind string) {
	if s.events == nil {
		return
	}

	ev := model.LookupEvent{
		RequestID:  requestID,
		Identifier: identifier,
		Outcome:    "ok",
		At:         s.now().UTC(),
	}
	if kind != KindOK {
		ev.Outcome = "failed"
		ev.Kind = kind
	}

	if err := s.events.Publish(ctx, ev); err != nil {
		s.log.Warn("publish lookup event", zap.String("request_id", requestID), zap.Error(err))
	}
}
