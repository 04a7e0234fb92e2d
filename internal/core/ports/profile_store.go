package ports

import (
	"context"
	"errors"

	"github.com/xlance/connects-service/internal/core/domain"
)

// ErrTxnConflict is returned by a ProfileTx when a concurrent commit touched a
// document the transaction read or wrote. Stores retry the whole transaction
// on it and return it wrapped once their attempts are exhausted.
var ErrTxnConflict = errors.New("transaction conflict")

// ProfileStore is the document store holding profiles, their embedded ledgers
// and the public directories.
type ProfileStore interface {
	// RunTransaction runs fn atomically. Writes made through tx become visible
	// only when fn returns nil and the commit succeeds. fn may run more than
	// once and must derive every write from reads made through tx.
	RunTransaction(ctx context.Context, fn func(ctx context.Context, tx ProfileTx) error) error

	// GetProfile returns domain.ErrProfileNotFound when uid has no profile.
	GetProfile(ctx context.Context, uid string) (*domain.UserProfile, error)

	// ListDirectory returns the entries of one directory ordered by sequence.
	ListDirectory(ctx context.Context, role domain.Role) ([]domain.DirectoryEntry, error)
}

// ProfileTx is the view of the store inside a transaction.
type ProfileTx interface {
	GetProfile(ctx context.Context, uid string) (*domain.UserProfile, error)
	// PutProfile writes p, inserting when p.Version is zero. It fails with
	// ErrTxnConflict when the stored version no longer matches p.Version.
	PutProfile(ctx context.Context, p *domain.UserProfile) error
	// NextDirectorySeq atomically increments the directory counter for role
	// and returns the new value.
	NextDirectorySeq(ctx context.Context, role domain.Role) (int64, error)
	// CreateDirectoryEntry inserts e; an existing id yields ErrTxnConflict.
	CreateDirectoryEntry(ctx context.Context, e *domain.DirectoryEntry) error
}
