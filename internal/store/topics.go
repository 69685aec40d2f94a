package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arturxdev/interview-helper/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const topicsCollection = "topics"

var ErrTopicNotFound = errors.New("topic not found")

type TopicStore struct {
	db  Databaser
	now func() time.Time
}

func NewTopicStore(db Databaser) *TopicStore {
	return &TopicStore{db: db, now: time.Now}
}

func (s *TopicStore) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := s.db.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(topicsCollection), nil
}

func (s *TopicStore) EnsureIndexes(ctx context.Context) error {
	coll, err := s.collection(ctx)
	if err != nil {
		return err
	}
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create topic indexes: %w", err)
	}
	return nil
}

// List returns every topic ordered by id.
func (s *TopicStore) List(ctx context.Context) ([]models.Topic, error) {
	coll, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}
	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find topics: %w", err)
	}
	topics := []models.Topic{}
	if err := cursor.All(ctx, &topics); err != nil {
		return nil, fmt.Errorf("decode topics: %w", err)
	}
	return topics, nil
}

func (s *TopicStore) FindByID(ctx context.Context, id string) (*models.Topic, error) {
	coll, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}
	var t models.Topic
	if err := coll.FindOne(ctx, bson.M{"id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTopicNotFound
		}
		return nil, fmt.Errorf("find topic %s: %w", id, err)
	}
	return &t, nil
}

// Upsert writes name and description, creating the topic when missing.
// The stored question count is left untouched.
func (s *TopicStore) Upsert(ctx context.Context, t *models.Topic) error {
	if t.ID == "" {
		return errors.New("topic id is required")
	}
	coll, err := s.collection(ctx)
	if err != nil {
		return err
	}
	now := s.now()
	_, err = coll.UpdateOne(ctx,
		bson.M{"id": t.ID},
		bson.M{
			"$set": bson.M{
				"name":        t.Name,
				"description": t.Description,
				"updatedAt":   now,
			},
			"$setOnInsert": bson.M{
				"id":            t.ID,
				"questionCount": 0,
				"createdAt":     now,
			},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert topic %s: %w", t.ID, err)
	}
	return nil
}

func (s *TopicStore) SetQuestionCount(ctx context.Context, id string, count int) error {
	coll, err := s.collection(ctx)
	if err != nil {
		return err
	}
	res, err := coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"questionCount": count, "updatedAt": s.now()}},
	)
	if err != nil {
		return fmt.Errorf("update topic %s count: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrTopicNotFound
	}
	return nil
}
