package ports

import (
	"context"

	"github.com/xlance/connects-service/internal/core/domain"
)

// MutationInput carries a single connects credit or debit request.
type MutationInput struct {
	UID    string
	Amount int64
	Reason string
	// IdempotencyKey makes a retried request return the original result
	// instead of applying the mutation twice. Optional.
	IdempotencyKey string
}

// MutationResult is returned after a credit or debit.
type MutationResult struct {
	Entry       domain.LedgerEntry
	Available   int64
	TotalEarned int64
	// AlreadyApplied is true when the idempotency key matched an earlier entry.
	AlreadyApplied bool
}

// LedgerService manages connects balances.
type LedgerService interface {
	Deduct(ctx context.Context, in MutationInput) (*MutationResult, error)
	Add(ctx context.Context, in MutationInput) (*MutationResult, error)
	GetBalance(ctx context.Context, uid string) (int64, error)
	ProposalCost(budget int64) int64
}
