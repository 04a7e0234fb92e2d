// Package memory implements ports.ProfileStore in process memory with
// optimistic concurrency control: transactions buffer their writes and
// validate every document they touched at commit time.
package memory

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/xlance/connects-service/internal/core/domain"
	"github.com/xlance/connects-service/internal/core/ports"
	"github.com/xlance/connects-service/internal/pkg/metrics"
)

const (
	storeLabel         = "memory"
	defaultMaxAttempts = 5
)

// CommitHook runs after a transaction body succeeded and before its commit
// is validated. Returning an error aborts the attempt without retry.
type CommitHook func(attempt int) error

// Option configures a Store.
type Option func(*Store)

// WithMaxAttempts bounds how often a conflicting transaction is retried.
func WithMaxAttempts(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithCommitHook installs h before every commit.
func WithCommitHook(h CommitHook) Option {
	return func(s *Store) { s.beforeCommit = h }
}

type counterDoc struct {
	value   domain.DirectoryCounter
	version int64
}

// Store is an in-memory document store.
type Store struct {
	mu          sync.RWMutex
	profiles    map[string]*domain.UserProfile
	counter     counterDoc
	directories map[domain.Role]map[string]*domain.DirectoryEntry

	maxAttempts  int
	beforeCommit CommitHook
}

var _ ports.ProfileStore = (*Store)(nil)

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		profiles: make(map[string]*domain.UserProfile),
		directories: map[domain.Role]map[string]*domain.DirectoryEntry{
			domain.RoleFreelancer: {},
			domain.RoleClient:     {},
		},
		maxAttempts: defaultMaxAttempts,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// RunTransaction implements ports.ProfileStore.
func (s *Store) RunTransaction(ctx context.Context, fn func(ctx context.Context, tx ports.ProfileTx) error) error {
	start := time.Now()
	defer func() {
		metrics.StoreTxnDuration.WithLabelValues(storeLabel).Observe(time.Since(start).Seconds())
	}()

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		tx := newTx(s)
		err := fn(ctx, tx)
		if err == nil && s.beforeCommit != nil {
			if hookErr := s.beforeCommit(attempt); hookErr != nil {
				metrics.StoreTxnAttemptsTotal.WithLabelValues(storeLabel, "aborted").Inc()
				return hookErr
			}
		}
		if err == nil {
			err = s.commit(tx)
		}
		if err == nil {
			metrics.StoreTxnAttemptsTotal.WithLabelValues(storeLabel, "committed").Inc()
			return nil
		}
		if !errors.Is(err, ports.ErrTxnConflict) {
			metrics.StoreTxnAttemptsTotal.WithLabelValues(storeLabel, "aborted").Inc()
			return err
		}
		metrics.StoreTxnAttemptsTotal.WithLabelValues(storeLabel, "conflict").Inc()
		if attempt >= s.maxAttempts {
			return fmt.Errorf("memory store: gave up after %d attempts: %w", attempt, err)
		}
		runtime.Gosched()
	}
}

// GetProfile implements ports.ProfileStore.
func (s *Store) GetProfile(_ context.Context, uid string) (*domain.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[uid]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p.Clone(), nil
}

// ListDirectory implements ports.ProfileStore.
func (s *Store) ListDirectory(_ context.Context, role domain.Role) ([]domain.DirectoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dir, ok := s.directories[role]
	if !ok {
		return nil, domain.ErrInvalidRole
	}
	out := make([]domain.DirectoryEntry, 0, len(dir))
	for _, e := range dir {
		c := *e
		c.Freelancer = e.Freelancer.Clone()
		c.Client = e.Client.Clone()
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out, nil
}

// Counter returns the committed directory counter.
func (s *Store) Counter() domain.DirectoryCounter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counter.value
}

func (s *Store) commit(tx *memTx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for uid, v := range tx.reads {
		if s.versionOf(uid) != v {
			return fmt.Errorf("profile %s changed: %w", uid, ports.ErrTxnConflict)
		}
	}
	for uid, p := range tx.writes {
		if s.versionOf(uid) != p.Version {
			return fmt.Errorf("profile %s changed: %w", uid, ports.ErrTxnConflict)
		}
	}
	if tx.counterRead && s.counter.version != tx.counterVersion {
		return fmt.Errorf("directory counter changed: %w", ports.ErrTxnConflict)
	}
	for _, e := range tx.entries {
		if _, exists := s.directories[e.Role][e.ID]; exists {
			return fmt.Errorf("directory entry %s exists: %w", e.ID, ports.ErrTxnConflict)
		}
	}

	for uid, p := range tx.writes {
		stored := p.Clone()
		stored.Version = p.Version + 1
		s.profiles[uid] = stored
	}
	if tx.counterRead {
		s.counter = counterDoc{value: tx.counter, version: s.counter.version + 1}
	}
	for _, e := range tx.entries {
		s.directories[e.Role][e.ID] = e
	}
	return nil
}

// versionOf must be called with s.mu held. Zero means absent.
func (s *Store) versionOf(uid string) int64 {
	if p, ok := s.profiles[uid]; ok {
		return p.Version
	}
	return 0
}

type memTx struct {
	s *Store

	reads  map[string]int64
	writes map[string]*domain.UserProfile

	counterRead    bool
	counterVersion int64
	counter        domain.DirectoryCounter

	entries []*domain.DirectoryEntry
}

func newTx(s *Store) *memTx {
	return &memTx{
		s:      s,
		reads:  make(map[string]int64),
		writes: make(map[string]*domain.UserProfile),
	}
}

func (t *memTx) GetProfile(_ context.Context, uid string) (*domain.UserProfile, error) {
	if p, ok := t.writes[uid]; ok {
		return p.Clone(), nil
	}

	t.s.mu.RLock()
	p, ok := t.s.profiles[uid]
	var snapshot *domain.UserProfile
	if ok {
		snapshot = p.Clone()
	}
	t.s.mu.RUnlock()

	if !ok {
		t.reads[uid] = 0
		return nil, domain.ErrProfileNotFound
	}
	t.reads[uid] = snapshot.Version
	return snapshot, nil
}

func (t *memTx) PutProfile(_ context.Context, p *domain.UserProfile) error {
	if p == nil || p.UID == "" {
		return errors.New("memory store: profile without uid")
	}
	if prev, ok := t.writes[p.UID]; ok && prev.Version != p.Version {
		return fmt.Errorf("profile %s written twice with different versions: %w", p.UID, ports.ErrTxnConflict)
	}
	t.writes[p.UID] = p.Clone()
	return nil
}

func (t *memTx) NextDirectorySeq(_ context.Context, role domain.Role) (int64, error) {
	if !role.Valid() {
		return 0, domain.ErrInvalidRole
	}
	if !t.counterRead {
		t.s.mu.RLock()
		t.counter = t.s.counter.value
		t.counterVersion = t.s.counter.version
		t.s.mu.RUnlock()
		t.counterRead = true
	}
	if role == domain.RoleClient {
		t.counter.ClientCount++
		return t.counter.ClientCount, nil
	}
	t.counter.FreelancerCount++
	return t.counter.FreelancerCount, nil
}

func (t *memTx) CreateDirectoryEntry(_ context.Context, e *domain.DirectoryEntry) error {
	if e == nil || !e.Role.Valid() {
		return domain.ErrInvalidRole
	}
	for _, pending := range t.entries {
		if pending.Role == e.Role && pending.ID == e.ID {
			return fmt.Errorf("directory entry %s exists: %w", e.ID, ports.ErrTxnConflict)
		}
	}
	c := *e
	c.Freelancer = e.Freelancer.Clone()
	c.Client = e.Client.Clone()
	t.entries = append(t.entries, &c)
	return nil
}
