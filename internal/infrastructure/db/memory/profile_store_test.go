package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xlance/connects-service/internal/core/domain"
	"github.com/xlance/connects-service/internal/core/ports"
)

func seedProfile(t *testing.T, s *Store, uid string, balance int64) {
	t.Helper()
	err := s.RunTransaction(context.Background(), func(ctx context.Context, tx ports.ProfileTx) error {
		p := &domain.UserProfile{UID: uid, Connects: &domain.ConnectsLedger{}}
		if balance > 0 {
			if _, err := p.Connects.Credit(balance, "seed", "", time.Now().UTC()); err != nil {
				return err
			}
		}
		return tx.PutProfile(ctx, p)
	})
	require.NoError(t, err)
}

func TestStore_GetProfileMissing(t *testing.T) {
	s := New()
	_, err := s.GetProfile(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestStore_WritesInvisibleUntilCommit(t *testing.T) {
	s := New()
	ctx := context.Background()

	err := s.RunTransaction(ctx, func(ctx context.Context, tx ports.ProfileTx) error {
		require.NoError(t, tx.PutProfile(ctx, &domain.UserProfile{UID: "u1"}))

		_, err := s.GetProfile(ctx, "u1")
		assert.ErrorIs(t, err, domain.ErrProfileNotFound, "uncommitted write leaked")

		p, err := tx.GetProfile(ctx, "u1")
		require.NoError(t, err, "transaction must read its own writes")
		assert.Equal(t, "u1", p.UID)
		return nil
	})
	require.NoError(t, err)

	p, err := s.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.Version)
}

func TestStore_ErrorAbortsAllWrites(t *testing.T) {
	s := New()
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.RunTransaction(ctx, func(ctx context.Context, tx ports.ProfileTx) error {
		seq, err := tx.NextDirectorySeq(ctx, domain.RoleFreelancer)
		require.NoError(t, err)
		require.NoError(t, tx.CreateDirectoryEntry(ctx, &domain.DirectoryEntry{
			ID: domain.FormatDirectoryID(domain.RoleFreelancer, seq), Role: domain.RoleFreelancer, Seq: seq,
		}))
		require.NoError(t, tx.PutProfile(ctx, &domain.UserProfile{UID: "u1"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	assert.Equal(t, domain.DirectoryCounter{}, s.Counter())
	entries, err := s.ListDirectory(ctx, domain.RoleFreelancer)
	require.NoError(t, err)
	assert.Empty(t, entries)
	_, err = s.GetProfile(ctx, "u1")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestStore_ConflictingCommitIsRetried(t *testing.T) {
	var s *Store
	interfered := true
	s = New(WithCommitHook(func(attempt int) error {
		if attempt == 1 && !interfered {
			interfered = true
			// Another writer commits between our read and our commit.
			return s.RunTransaction(context.Background(), func(ctx context.Context, tx ports.ProfileTx) error {
				p, err := tx.GetProfile(ctx, "u1")
				if err != nil {
					return err
				}
				if _, err := p.Connects.Credit(5, "interleaved", "", time.Now().UTC()); err != nil {
					return err
				}
				return tx.PutProfile(ctx, p)
			})
		}
		return nil
	}))
	seedProfile(t, s, "u1", 10)
	interfered = false

	attempts := 0
	err := s.RunTransaction(context.Background(), func(ctx context.Context, tx ports.ProfileTx) error {
		attempts++
		p, err := tx.GetProfile(ctx, "u1")
		if err != nil {
			return err
		}
		if _, err := p.Connects.Debit(3, "spend", "", time.Now().UTC()); err != nil {
			return err
		}
		return tx.PutProfile(ctx, p)
	})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts, "first attempt should conflict and be retried")

	p, err := s.GetProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(12), p.Connects.Available, "both mutations must be reflected")
	assert.Len(t, p.Connects.History, 3)
}

func TestStore_GivesUpAfterMaxAttempts(t *testing.T) {
	s := New(WithMaxAttempts(3))
	calls := 0
	err := s.RunTransaction(context.Background(), func(context.Context, ports.ProfileTx) error {
		calls++
		return ports.ErrTxnConflict
	})
	assert.ErrorIs(t, err, ports.ErrTxnConflict)
	assert.Equal(t, 3, calls)
}

func TestStore_CommitHookErrorAbortsWithoutRetry(t *testing.T) {
	s := New(WithCommitHook(func(int) error { return domain.ErrStoreUnavailable }))
	calls := 0
	err := s.RunTransaction(context.Background(), func(ctx context.Context, tx ports.ProfileTx) error {
		calls++
		return tx.PutProfile(ctx, &domain.UserProfile{UID: "u1"})
	})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Equal(t, 1, calls)
	_, err = s.GetProfile(context.Background(), "u1")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestStore_ConcurrentCounterIncrementsAreDense(t *testing.T) {
	s := New(WithMaxAttempts(1000))
	const n = 25

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.RunTransaction(context.Background(), func(ctx context.Context, tx ports.ProfileTx) error {
				seq, err := tx.NextDirectorySeq(ctx, domain.RoleClient)
				if err != nil {
					return err
				}
				id := domain.FormatDirectoryID(domain.RoleClient, seq)
				return tx.CreateDirectoryEntry(ctx, &domain.DirectoryEntry{ID: id, Role: domain.RoleClient, Seq: seq})
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	entries, err := s.ListDirectory(context.Background(), domain.RoleClient)
	require.NoError(t, err)
	require.Len(t, entries, n)
	for i, e := range entries {
		assert.Equal(t, int64(i+1), e.Seq)
		assert.Equal(t, domain.FormatDirectoryID(domain.RoleClient, int64(i+1)), e.ID)
	}
	assert.Equal(t, int64(n), s.Counter().ClientCount)
	assert.Equal(t, int64(0), s.Counter().FreelancerCount)
}

func TestStore_CancelledContext(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.RunTransaction(ctx, func(context.Context, ports.ProfileTx) error {
		t.Fatal("body must not run on a cancelled context")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}
