package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/siteideas/website-ideas/internal/idea"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ideaDocument is the stored shape of an IdeaRecord. Sections are embedded
// and carry no _id of their own.
type ideaDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Idea      string             `bson:"idea"`
	Sections  []idea.Section     `bson:"sections"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *ideaDocument) record() *idea.IdeaRecord {
	sections := d.Sections
	if sections == nil {
		sections = []idea.Section{}
	}
	return &idea.IdeaRecord{
		ID:        d.ID.Hex(),
		Idea:      d.Idea,
		Sections:  sections,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

// MongoRepo stores idea records in a single MongoDB collection.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

// EnsureIndexes creates the createdAt index backing FindAll. It is idempotent.
func (m *MongoRepo) EnsureIndexes(ctx context.Context) error {
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("createdAt_desc"),
	}
	if _, err := m.col.Indexes().CreateOne(ctx, idx); err != nil {
		return fmt.Errorf("create createdAt index: %w", err)
	}
	return nil
}

func (m *MongoRepo) Insert(ctx context.Context, rec *idea.IdeaRecord) error {
	ts := now()
	doc := ideaDocument{
		ID:        primitive.NewObjectID(),
		Idea:      rec.Idea,
		Sections:  rec.Sections,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if _, err := m.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert website idea: %w", err)
	}
	rec.ID = doc.ID.Hex()
	rec.CreatedAt = ts
	rec.UpdatedAt = ts
	return nil
}

func (m *MongoRepo) FindByID(ctx context.Context, id string) (*idea.IdeaRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// a malformed id cannot name a stored record
		return nil, ErrNotFound
	}
	var d ideaDocument
	if err := m.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find website idea %s: %w", id, err)
	}
	return d.record(), nil
}

func (m *MongoRepo) FindAll(ctx context.Context) ([]idea.IdeaRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find website ideas: %w", err)
	}
	defer cur.Close(ctx)
	out := []idea.IdeaRecord{}
	for cur.Next(ctx) {
		var d ideaDocument
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode website idea: %w", err)
		}
		out = append(out, *d.record())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate website ideas: %w", err)
	}
	return out, nil
}

func (m *MongoRepo) Ping(ctx context.Context) error {
	return m.col.Database().Client().Ping(ctx, nil)
}
