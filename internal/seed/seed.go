// Package seed loads topic and question fixtures from YAML into the stores.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/arturxdev/interview-helper/internal/models"

	"gopkg.in/yaml.v3"
)

type topicsFile struct {
	Topics []topicEntry `yaml:"topics"`
}

type topicEntry struct {
	ID          string      `yaml:"id"`
	Name        models.Text `yaml:"name"`
	Description models.Text `yaml:"description"`
}

type questionsFile struct {
	Topic     string          `yaml:"topic"`
	Questions []questionEntry `yaml:"questions"`
}

type questionEntry struct {
	ID            string              `yaml:"id"`
	Difficulty    models.Difficulty   `yaml:"difficulty"`
	Type          models.QuestionType `yaml:"type"`
	Question      models.Text         `yaml:"question"`
	Code          string              `yaml:"code"`
	Options       models.TextList     `yaml:"options"`
	CorrectAnswer string              `yaml:"correctAnswer"`
	Explanation   models.Text         `yaml:"explanation"`
}

func decodeStrict(r io.Reader, out interface{}) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// LoadTopics decodes a topics file. Every topic needs an id and a name in
// both languages.
func LoadTopics(r io.Reader) ([]models.Topic, error) {
	var f topicsFile
	if err := decodeStrict(r, &f); err != nil {
		return nil, fmt.Errorf("decode topics: %w", err)
	}
	topics := make([]models.Topic, 0, len(f.Topics))
	for i, t := range f.Topics {
		if t.ID == "" {
			return nil, fmt.Errorf("topic %d: id is required", i)
		}
		if missing := t.Name.Missing(); len(missing) > 0 {
			return nil, fmt.Errorf("topic %s: name missing for %v", t.ID, missing)
		}
		topics = append(topics, models.Topic{ID: t.ID, Name: t.Name, Description: t.Description})
	}
	return topics, nil
}

// LoadQuestions decodes a questions file and validates every question.
func LoadQuestions(r io.Reader) ([]models.Question, error) {
	var f questionsFile
	if err := decodeStrict(r, &f); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	if f.Topic == "" {
		return nil, errors.New("questions file needs a topic")
	}
	seen := make(map[string]bool, len(f.Questions))
	questions := make([]models.Question, 0, len(f.Questions))
	for i, e := range f.Questions {
		if e.ID == "" {
			return nil, fmt.Errorf("question %d: id is required", i)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("question %s: duplicate id", e.ID)
		}
		seen[e.ID] = true
		q := models.Question{
			ID:            e.ID,
			Topic:         f.Topic,
			Difficulty:    e.Difficulty,
			Type:          e.Type,
			Question:      e.Question,
			Code:          e.Code,
			Options:       e.Options,
			CorrectAnswer: models.Answer(e.CorrectAnswer),
			Explanation:   e.Explanation,
		}
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("question %s: %w", e.ID, err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

type QuestionWriter interface {
	Upsert(ctx context.Context, q *models.Question) (bool, error)
}

type TopicWriter interface {
	Upsert(ctx context.Context, t *models.Topic) error
}

type CountRefresher interface {
	RefreshCounts(ctx context.Context) (map[string]int, error)
}

type Seeder struct {
	questions QuestionWriter
	topics    TopicWriter
	counts    CountRefresher
}

func NewSeeder(questions QuestionWriter, topics TopicWriter, counts CountRefresher) *Seeder {
	return &Seeder{questions: questions, topics: topics, counts: counts}
}

type Options struct {
	TopicsFile   string
	QuestionsDir string
	CountsOnly   bool
}

type Report struct {
	TopicsUpserted    int
	QuestionsInserted int
	QuestionsSkipped  int
	Counts            map[string]int
}

// Run upserts topics, inserts missing questions and recomputes the
// per-topic question counts. Existing questions are never overwritten.
func (s *Seeder) Run(ctx context.Context, opts Options) (*Report, error) {
	report := &Report{}
	if !opts.CountsOnly {
		if opts.TopicsFile != "" {
			if err := s.seedTopics(ctx, opts.TopicsFile, report); err != nil {
				return nil, err
			}
		}
		if opts.QuestionsDir != "" {
			if err := s.seedQuestions(ctx, opts.QuestionsDir, report); err != nil {
				return nil, err
			}
		}
	}

	counts, err := s.counts.RefreshCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh counts: %w", err)
	}
	report.Counts = counts
	return report, nil
}

func (s *Seeder) seedTopics(ctx context.Context, path string, report *Report) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	topics, err := LoadTopics(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for i := range topics {
		if err := s.topics.Upsert(ctx, &topics[i]); err != nil {
			return err
		}
		report.TopicsUpserted++
		log.Printf("seed: upserted topic %s", topics[i].ID)
	}
	return nil
}

func (s *Seeder) seedQuestions(ctx context.Context, dir string, report *Report) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return err
	}
	sort.Strings(files)

	for _, path := range files {
		questions, err := readQuestions(path)
		if err != nil {
			return err
		}
		for i := range questions {
			inserted, err := s.questions.Upsert(ctx, &questions[i])
			if err != nil {
				return err
			}
			if inserted {
				report.QuestionsInserted++
				log.Printf("seed: created question %s", questions[i].ID)
			} else {
				report.QuestionsSkipped++
				log.Printf("seed: question already exists: %s", questions[i].ID)
			}
		}
	}
	return nil
}

func readQuestions(path string) ([]models.Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	questions, err := LoadQuestions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return questions, nil
}
