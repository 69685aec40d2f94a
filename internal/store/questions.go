package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/arturxdev/interview-helper/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const questionsCollection = "questions"

var (
	ErrQuestionNotFound  = errors.New("question not found")
	ErrDuplicateQuestion = errors.New("question id already exists")
)

type QuestionFilter struct {
	Topic      string
	Difficulty models.Difficulty
	Type       models.QuestionType
}

func (f QuestionFilter) bson() bson.M {
	m := bson.M{}
	if f.Topic != "" {
		m["topic"] = f.Topic
	}
	if f.Difficulty != "" {
		m["difficulty"] = f.Difficulty
	}
	if f.Type != "" {
		m["type"] = f.Type
	}
	return m
}

type QuestionStore struct {
	db  Databaser
	now func() time.Time
}

// Databaser resolves the database lazily so the first query opens the connection.
type Databaser interface {
	Database(ctx context.Context) (*mongo.Database, error)
}

func NewQuestionStore(db Databaser) *QuestionStore {
	return &QuestionStore{db: db, now: time.Now}
}

func (s *QuestionStore) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := s.db.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(questionsCollection), nil
}

func (s *QuestionStore) EnsureIndexes(ctx context.Context) error {
	coll, err := s.collection(ctx)
	if err != nil {
		return err
	}
	_, err = coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "topic", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create question indexes: %w", err)
	}
	return nil
}

// Find returns matching questions in insertion order.
func (s *QuestionStore) Find(ctx context.Context, filter QuestionFilter) ([]models.Question, error) {
	coll, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}
	cursor, err := coll.Find(ctx, filter.bson(), options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find questions: %w", err)
	}
	questions := []models.Question{}
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	return questions, nil
}

// Sample returns up to size random questions matching filter.
func (s *QuestionStore) Sample(ctx context.Context, filter QuestionFilter, size int) ([]models.Question, error) {
	coll, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter.bson()}},
		{{Key: "$sample", Value: bson.D{{Key: "size", Value: size}}}},
	}
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("sample questions: %w", err)
	}
	questions := []models.Question{}
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	return questions, nil
}

func (s *QuestionStore) FindByID(ctx context.Context, id string) (*models.Question, error) {
	coll, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}
	var q models.Question
	if err := coll.FindOne(ctx, bson.M{"id": id}).Decode(&q); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("find question %s: %w", id, err)
	}
	return &q, nil
}

// Create validates q, assigns an id when missing and inserts it.
func (s *QuestionStore) Create(ctx context.Context, q *models.Question) error {
	now := s.now()
	if q.ID == "" {
		q.ID = q.Topic + "-" + strconv.FormatInt(now.UnixMilli(), 10)
	}
	if err := q.Validate(); err != nil {
		return err
	}
	coll, err := s.collection(ctx)
	if err != nil {
		return err
	}
	q.ObjectID = primitive.NilObjectID
	q.CreatedAt = now
	q.UpdatedAt = now
	if _, err := coll.InsertOne(ctx, q); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateQuestion
		}
		return fmt.Errorf("insert question: %w", err)
	}
	return nil
}

// Update replaces the question with id, keeping its creation time.
func (s *QuestionStore) Update(ctx context.Context, id string, q *models.Question) (*models.Question, error) {
	q.ID = id
	if err := q.Validate(); err != nil {
		return nil, err
	}
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	coll, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}
	q.ObjectID = existing.ObjectID
	q.CreatedAt = existing.CreatedAt
	q.UpdatedAt = s.now()
	res, err := coll.ReplaceOne(ctx, bson.M{"id": id}, q)
	if err != nil {
		return nil, fmt.Errorf("replace question %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrQuestionNotFound
	}
	return q, nil
}

func (s *QuestionStore) Delete(ctx context.Context, id string) error {
	coll, err := s.collection(ctx)
	if err != nil {
		return err
	}
	res, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete question %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

// Upsert inserts q only when no question with its id exists yet.
// It reports whether a document was inserted.
func (s *QuestionStore) Upsert(ctx context.Context, q *models.Question) (bool, error) {
	if q.ID == "" {
		return false, fmt.Errorf("%w: id is required", models.ErrInvalidQuestion)
	}
	if err := q.Validate(); err != nil {
		return false, err
	}
	coll, err := s.collection(ctx)
	if err != nil {
		return false, err
	}
	now := s.now()
	q.CreatedAt = now
	q.UpdatedAt = now
	res, err := coll.UpdateOne(ctx,
		bson.M{"id": q.ID},
		bson.M{"$setOnInsert": q},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, fmt.Errorf("upsert question %s: %w", q.ID, err)
	}
	return res.UpsertedCount > 0, nil
}

func (s *QuestionStore) CountByTopic(ctx context.Context, topic string) (int, error) {
	coll, err := s.collection(ctx)
	if err != nil {
		return 0, err
	}
	n, err := coll.CountDocuments(ctx, bson.M{"topic": topic})
	if err != nil {
		return 0, fmt.Errorf("count questions for %s: %w", topic, err)
	}
	return int(n), nil
}
