package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/maelc/cinebooking/internal/domain"
)

// MongoLedgerStore keeps one document per user in the bookings
// collection, keyed by userid. Replace upserts every entry of the
// snapshot and removes users no longer present, so a write always leaves
// the collection equal to the in-memory ledger.
type MongoLedgerStore struct {
	coll *mongo.Collection
}

func NewMongoLedgerStore(db *mongo.Database) *MongoLedgerStore {
	return &MongoLedgerStore{coll: db.Collection("bookings")}
}

func (s *MongoLedgerStore) Load(ctx context.Context) ([]domain.LedgerEntry, error) {
	cur, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cur.Close(ctx)

	entries := []domain.LedgerEntry{}
	for cur.Next(ctx) {
		var e domain.LedgerEntry
		if err := cur.Decode(&e); err != nil {
			return nil, fmt.Errorf("decode booking entry: %w", err)
		}
		if e.Dates == nil {
			e.Dates = []domain.DateEntry{}
		}
		entries = append(entries, e)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}
	return entries, nil
}

func (s *MongoLedgerStore) Replace(ctx context.Context, entries []domain.LedgerEntry) error {
	ids := make([]string, 0, len(entries))
	models := make([]mongo.WriteModel, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.UserID)
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.D{{Key: "userid", Value: e.UserID}}).
			SetReplacement(e).
			SetUpsert(true))
	}

	if len(models) > 0 {
		if _, err := s.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false)); err != nil {
			return fmt.Errorf("replace bookings: %w", err)
		}
	}
	if _, err := s.coll.DeleteMany(ctx, bson.D{{Key: "userid", Value: bson.D{{Key: "$nin", Value: ids}}}}); err != nil {
		return fmt.Errorf("prune bookings: %w", err)
	}
	return nil
}

var _ LedgerStore = (*MongoLedgerStore)(nil)
