package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/xlance/connects-service/internal/core/domain"
	"github.com/xlance/connects-service/internal/core/ports"
	"github.com/xlance/connects-service/internal/pkg/metrics"
	"github.com/xlance/connects-service/pkg/logger"
)

// IdempotencyCache abstracts the idempotency key cache (Redis). The durable
// guard is the request key stored on the ledger entry; the cache only lets a
// replay skip the transaction.
type IdempotencyCache interface {
	Lookup(ctx context.Context, uid, key string) (entryID int64, found bool, err error)
	Remember(ctx context.Context, uid, key string, entryID int64) error
}

// LedgerService implements ports.LedgerService on top of a ProfileStore.
type LedgerService struct {
	store ports.ProfileStore
	cache IdempotencyCache
	log   zerolog.Logger
}

var _ ports.LedgerService = (*LedgerService)(nil)

// NewLedgerService returns a LedgerService. cache may be nil.
func NewLedgerService(store ports.ProfileStore, cache IdempotencyCache, log zerolog.Logger) *LedgerService {
	return &LedgerService{store: store, cache: cache, log: log}
}

// Deduct spends connects. It fails with domain.ErrInsufficientBalance, and
// changes nothing, when the balance at commit time does not cover the amount.
func (s *LedgerService) Deduct(ctx context.Context, in ports.MutationInput) (*ports.MutationResult, error) {
	return s.mutate(ctx, in, domain.EntrySpent)
}

// Add credits connects, initialising the ledger when the profile has none.
func (s *LedgerService) Add(ctx context.Context, in ports.MutationInput) (*ports.MutationResult, error) {
	return s.mutate(ctx, in, domain.EntryEarned)
}

// GetBalance returns the available connects. A missing profile or ledger is a
// zero balance, not an error.
func (s *LedgerService) GetBalance(ctx context.Context, uid string) (int64, error) {
	p, err := s.store.GetProfile(ctx, uid)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return p.Balance(), nil
}

// ProposalCost returns the connects charged for a proposal on a job budget.
func (s *LedgerService) ProposalCost(budget int64) int64 {
	return domain.ProposalCost(budget)
}

func (s *LedgerService) mutate(ctx context.Context, in ports.MutationInput, kind domain.EntryType) (*ports.MutationResult, error) {
	log := logger.For(ctx, s.log)
	label := string(kind)
	if in.UID == "" {
		return nil, domain.ErrProfileNotFound
	}
	if in.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	res, err := s.replayFromCache(ctx, in, kind)
	if err != nil {
		metrics.LedgerMutationsTotal.WithLabelValues(label, "rejected").Inc()
		log.Warn().Str("uid", in.UID).Str("idempotency_key", in.IdempotencyKey).Msg("idempotency key reused")
		return nil, err
	}
	if res != nil {
		metrics.LedgerMutationsTotal.WithLabelValues(label, "replayed").Inc()
		return res, nil
	}

	err = s.store.RunTransaction(ctx, func(ctx context.Context, tx ports.ProfileTx) error {
		res = nil

		p, err := tx.GetProfile(ctx, in.UID)
		if err != nil {
			return err
		}
		if p.Connects == nil {
			p.Connects = &domain.ConnectsLedger{}
		}

		if prev, ok := p.Connects.EntryByKey(in.IdempotencyKey); ok {
			if !prev.SameRequest(kind, in.Amount) {
				return domain.ErrIdempotencyKeyReused
			}
			res = &ports.MutationResult{
				Entry:          prev,
				Available:      p.Connects.Available,
				TotalEarned:    p.Connects.TotalEarned,
				AlreadyApplied: true,
			}
			return nil
		}

		now := time.Now().UTC()
		var entry domain.LedgerEntry
		if kind == domain.EntrySpent {
			entry, err = p.Connects.Debit(in.Amount, in.Reason, in.IdempotencyKey, now)
		} else {
			entry, err = p.Connects.Credit(in.Amount, in.Reason, in.IdempotencyKey, now)
		}
		if err != nil {
			return err
		}
		p.UpdatedAt = now

		if err := tx.PutProfile(ctx, p); err != nil {
			return err
		}
		res = &ports.MutationResult{
			Entry:       entry,
			Available:   p.Connects.Available,
			TotalEarned: p.Connects.TotalEarned,
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientBalance):
			metrics.LedgerMutationsTotal.WithLabelValues(label, "insufficient").Inc()
			log.Info().Str("uid", in.UID).Int64("amount", in.Amount).Msg("deduct refused: insufficient balance")
			return nil, err
		case errors.Is(err, ports.ErrTxnConflict):
			metrics.LedgerMutationsTotal.WithLabelValues(label, "busy").Inc()
			log.Warn().Err(err).Str("uid", in.UID).Msg("ledger mutation gave up on contention")
			return nil, fmt.Errorf("%w: %w", domain.ErrLedgerBusy, err)
		case errors.Is(err, domain.ErrIdempotencyKeyReused):
			metrics.LedgerMutationsTotal.WithLabelValues(label, "rejected").Inc()
			log.Warn().Str("uid", in.UID).Str("idempotency_key", in.IdempotencyKey).Msg("idempotency key reused")
			return nil, err
		case errors.Is(err, domain.ErrProfileNotFound), errors.Is(err, domain.ErrInvalidAmount):
			metrics.LedgerMutationsTotal.WithLabelValues(label, "error").Inc()
			return nil, err
		}
		metrics.LedgerMutationsTotal.WithLabelValues(label, "error").Inc()
		log.Error().Err(err).Str("uid", in.UID).Str("type", label).Msg("ledger mutation failed")
		return nil, fmt.Errorf("ledger %s: %w", label, err)
	}

	if res.AlreadyApplied {
		metrics.LedgerMutationsTotal.WithLabelValues(label, "replayed").Inc()
		log.Info().Str("uid", in.UID).Str("idempotency_key", in.IdempotencyKey).Int64("entry_id", res.Entry.ID).Msg("idempotent replay")
	} else {
		metrics.LedgerMutationsTotal.WithLabelValues(label, "ok").Inc()
		metrics.LedgerAmountTotal.WithLabelValues(label).Add(float64(in.Amount))
		log.Info().
			Str("uid", in.UID).
			Str("type", label).
			Int64("amount", in.Amount).
			Int64("available", res.Available).
			Int64("entry_id", res.Entry.ID).
			Msg("connects ledger updated")
	}

	if in.IdempotencyKey != "" && s.cache != nil {
		if err := s.cache.Remember(ctx, in.UID, in.IdempotencyKey, res.Entry.ID); err != nil {
			log.Warn().Err(err).Str("uid", in.UID).Msg("failed to cache idempotency key")
		}
	}
	return res, nil
}

// replayFromCache returns the earlier result for a cached idempotency key, or
// nil when the request has to go through the transaction. A cached key that
// recorded a different mutation fails with domain.ErrIdempotencyKeyReused.
func (s *LedgerService) replayFromCache(ctx context.Context, in ports.MutationInput, kind domain.EntryType) (*ports.MutationResult, error) {
	if in.IdempotencyKey == "" || s.cache == nil {
		return nil, nil
	}
	log := logger.For(ctx, s.log)

	entryID, found, err := s.cache.Lookup(ctx, in.UID, in.IdempotencyKey)
	if err != nil {
		metrics.IdempotencyCacheTotal.WithLabelValues("error").Inc()
		log.Warn().Err(err).Str("uid", in.UID).Msg("idempotency lookup failed, processing anyway")
		return nil, nil
	}
	if !found {
		metrics.IdempotencyCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	metrics.IdempotencyCacheTotal.WithLabelValues("hit").Inc()

	p, err := s.store.GetProfile(ctx, in.UID)
	if err != nil || p.Connects == nil {
		return nil, nil
	}
	e, ok := p.Connects.EntryByID(entryID)
	if !ok || e.RequestKey != in.IdempotencyKey {
		return nil, nil
	}
	if !e.SameRequest(kind, in.Amount) {
		return nil, domain.ErrIdempotencyKeyReused
	}
	return &ports.MutationResult{
		Entry:          e,
		Available:      p.Connects.Available,
		TotalEarned:    p.Connects.TotalEarned,
		AlreadyApplied: true,
	}, nil
}
