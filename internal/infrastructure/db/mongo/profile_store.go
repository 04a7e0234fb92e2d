package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/xlance/connects-service/internal/core/domain"
	"github.com/xlance/connects-service/internal/core/ports"
	"github.com/xlance/connects-service/internal/pkg/metrics"
)

const (
	collectionProfiles    = "users"
	collectionCounters    = "directory_counters"
	collectionFreelancers = "directory_freelancers"
	collectionClients     = "directory_clients"

	counterDocID       = "main"
	storeLabel         = "mongo"
	defaultMaxAttempts = 5
	writeConflictCode  = 112
)

// ProfileStore implements ports.ProfileStore on MongoDB multi-document
// transactions. It needs a replica set or sharded cluster.
type ProfileStore struct {
	client      *mongo.Client
	profiles    *mongo.Collection
	counters    *mongo.Collection
	freelancers *mongo.Collection
	clients     *mongo.Collection
	maxAttempts int
	log         zerolog.Logger
}

var _ ports.ProfileStore = (*ProfileStore)(nil)

func NewProfileStore(db *mongo.Database, maxAttempts int, log zerolog.Logger) *ProfileStore {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	return &ProfileStore{
		client:      db.Client(),
		profiles:    db.Collection(collectionProfiles),
		counters:    db.Collection(collectionCounters),
		freelancers: db.Collection(collectionFreelancers),
		clients:     db.Collection(collectionClients),
		maxAttempts: maxAttempts,
		log:         log,
	}
}

// RunTransaction implements ports.ProfileStore. Transient transaction errors
// are retried by the driver; version conflicts detected by the tx are retried
// here up to maxAttempts.
func (s *ProfileStore) RunTransaction(ctx context.Context, fn func(ctx context.Context, tx ports.ProfileTx) error) error {
	start := time.Now()
	defer func() {
		metrics.StoreTxnDuration.WithLabelValues(storeLabel).Observe(time.Since(start).Seconds())
	}()

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := s.runOnce(ctx, fn, txnOpts)
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
			return fmt.Errorf("mongo store: gave up after %d attempts: %w", attempt, err)
		}
		s.log.Debug().Err(err).Int("attempt", attempt).Msg("transaction conflict, retrying")
	}
}

func (s *ProfileStore) runOnce(ctx context.Context, fn func(ctx context.Context, tx ports.ProfileTx) error, txnOpts *options.TransactionOptions) error {
	sess, err := s.client.StartSession()
	if err != nil {
		return classify(fmt.Errorf("start session: %w", err))
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc, &mongoTx{s: s})
	}, txnOpts)
	return classify(err)
}

// GetProfile implements ports.ProfileStore.
func (s *ProfileStore) GetProfile(ctx context.Context, uid string) (*domain.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	p, err := findProfile(ctx, s.profiles, uid)
	return p, classify(err)
}

// ListDirectory implements ports.ProfileStore.
func (s *ProfileStore) ListDirectory(ctx context.Context, role domain.Role) ([]domain.DirectoryEntry, error) {
	col, err := s.directory(role)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, classify(fmt.Errorf("list %s: %w", role.DirectoryName(), err))
	}
	out := []domain.DirectoryEntry{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, classify(fmt.Errorf("decode %s: %w", role.DirectoryName(), err))
	}
	return out, nil
}

// Counter returns the current directory counter document.
func (s *ProfileStore) Counter(ctx context.Context) (domain.DirectoryCounter, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.DirectoryCounter
	err := s.counters.FindOne(ctx, bson.M{"_id": counterDocID}).Decode(&c)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return c, classify(err)
	}
	return c, nil
}

// EnsureIndexes creates the directory collections and their unique sequence
// indexes, so the collections exist before the first transaction uses them.
func (s *ProfileStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for _, col := range []*mongo.Collection{s.freelancers, s.clients} {
		_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "seq", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("index %s: %w", col.Name(), err)
		}
		if _, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "uid", Value: 1}}}); err != nil {
			return fmt.Errorf("index %s: %w", col.Name(), err)
		}
	}
	_, err := s.counters.UpdateOne(ctx,
		bson.M{"_id": counterDocID},
		bson.M{"$setOnInsert": bson.M{"freelancerCount": int64(0), "clientCount": int64(0)}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("init directory counter: %w", err)
	}
	return nil
}

func (s *ProfileStore) directory(role domain.Role) (*mongo.Collection, error) {
	switch role {
	case domain.RoleFreelancer:
		return s.freelancers, nil
	case domain.RoleClient:
		return s.clients, nil
	}
	return nil, domain.ErrInvalidRole
}

// mongoTx runs every operation on the session context handed to the
// transaction callback.
type mongoTx struct {
	s *ProfileStore
}

func (t *mongoTx) GetProfile(ctx context.Context, uid string) (*domain.UserProfile, error) {
	return findProfile(ctx, t.s.profiles, uid)
}

func (t *mongoTx) PutProfile(ctx context.Context, p *domain.UserProfile) error {
	if p == nil || p.UID == "" {
		return errors.New("mongo store: profile without uid")
	}
	doc := p.Clone()
	doc.Version = p.Version + 1

	if p.Version == 0 {
		if _, err := t.s.profiles.InsertOne(ctx, doc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return fmt.Errorf("profile %s created concurrently: %w", p.UID, ports.ErrTxnConflict)
			}
			return fmt.Errorf("insert profile: %w", err)
		}
		return nil
	}

	res, err := t.s.profiles.ReplaceOne(ctx, bson.M{"_id": p.UID, "version": p.Version}, doc)
	if err != nil {
		return fmt.Errorf("replace profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("profile %s changed: %w", p.UID, ports.ErrTxnConflict)
	}
	return nil
}

func (t *mongoTx) NextDirectorySeq(ctx context.Context, role domain.Role) (int64, error) {
	var field string
	switch role {
	case domain.RoleFreelancer:
		field = "freelancerCount"
	case domain.RoleClient:
		field = "clientCount"
	default:
		return 0, domain.ErrInvalidRole
	}

	var c domain.DirectoryCounter
	err := t.s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": counterDocID},
		bson.M{"$inc": bson.M{field: int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		return 0, fmt.Errorf("increment %s: %w", field, err)
	}
	return c.Count(role), nil
}

func (t *mongoTx) CreateDirectoryEntry(ctx context.Context, e *domain.DirectoryEntry) error {
	if e == nil {
		return domain.ErrInvalidRole
	}
	col, err := t.s.directory(e.Role)
	if err != nil {
		return err
	}
	if _, err := col.InsertOne(ctx, e); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("directory entry %s exists: %w", e.ID, ports.ErrTxnConflict)
		}
		return fmt.Errorf("insert directory entry: %w", err)
	}
	return nil
}

func findProfile(ctx context.Context, col *mongo.Collection, uid string) (*domain.UserProfile, error) {
	var p domain.UserProfile
	if err := col.FindOne(ctx, bson.M{"_id": uid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	if p.Roles == nil {
		p.Roles = []domain.Role{}
	}
	return &p, nil
}

// classify maps driver failures onto the errors callers branch on:
// connectivity loss becomes domain.ErrStoreUnavailable and server-side write
// conflicts become ports.ErrTxnConflict.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ports.ErrTxnConflict) || errors.Is(err, domain.ErrStoreUnavailable) {
		return err
	}

	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) || errors.Is(err, mongo.ErrClientDisconnected) {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == writeConflictCode {
		return fmt.Errorf("%w: %w", ports.ErrTxnConflict, err)
	}
	return err
}
