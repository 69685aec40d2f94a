package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple-choice"
	QuestionTypeCodeOutput     QuestionType = "code-output"
	QuestionTypeTrueFalse      QuestionType = "true-false"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeMultipleChoice, QuestionTypeCodeOutput, QuestionTypeTrueFalse:
		return true
	}
	return false
}

// Answer is the stringified form of a correct answer. Stored documents may
// hold it as a string, number or boolean; all decode to the same text the
// learner's selection is compared against.
type Answer string

func (a Answer) String() string { return string(a) }

func (a Answer) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(a))
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*a = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Answer(s)
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("false")):
		*a = Answer(data)
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("correctAnswer must be a string, number or boolean: %w", err)
		}
		*a = Answer(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return nil
}

func (a Answer) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(string(a))
}

func (a *Answer) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.String:
		*a = Answer(rv.StringValue())
	case bsontype.Boolean:
		*a = Answer(strconv.FormatBool(rv.Boolean()))
	case bsontype.Int32:
		*a = Answer(strconv.FormatInt(int64(rv.Int32()), 10))
	case bsontype.Int64:
		*a = Answer(strconv.FormatInt(rv.Int64(), 10))
	case bsontype.Double:
		*a = Answer(strconv.FormatFloat(rv.Double(), 'f', -1, 64))
	case bsontype.Null, bsontype.Undefined:
		*a = ""
	default:
		return fmt.Errorf("unsupported correctAnswer type %s", t)
	}
	return nil
}

type Question struct {
	ObjectID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ID            string             `bson:"id" json:"id"`
	Topic         string             `bson:"topic" json:"topic"`
	Difficulty    Difficulty         `bson:"difficulty" json:"difficulty"`
	Type          QuestionType       `bson:"type" json:"type"`
	Question      Text               `bson:"question" json:"question"`
	Code          string             `bson:"code,omitempty" json:"code,omitempty"`
	Options       TextList           `bson:"options,omitempty" json:"options,omitempty"`
	CorrectAnswer Answer             `bson:"correctAnswer" json:"correctAnswer"`
	Explanation   Text               `bson:"explanation" json:"explanation"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

var (
	trueFalseChoices = []string{"true", "false"}

	ErrInvalidQuestion = errors.New("invalid question")
)

// ChoicesFor returns the options shown to a learner in the given locale.
// True/false questions without authored options fall back to the literals.
func (q *Question) ChoicesFor(l Locale) []string {
	if opts := q.Options.Get(l); len(opts) > 0 {
		return opts
	}
	if q.Type == QuestionTypeTrueFalse {
		return trueFalseChoices
	}
	return nil
}

// Validate enforces the authoring rules. The correct answer is compared by
// raw string match, so its text must appear verbatim in every locale's list.
func (q *Question) Validate() error {
	var problems []string
	if strings.TrimSpace(q.Topic) == "" {
		problems = append(problems, "topic is required")
	}
	if !q.Difficulty.Valid() {
		problems = append(problems, fmt.Sprintf("difficulty %q must be one of Easy, Medium, Hard", q.Difficulty))
	}
	if !q.Type.Valid() {
		problems = append(problems, fmt.Sprintf("type %q must be one of multiple-choice, code-output, true-false", q.Type))
	}
	for _, l := range q.Question.Missing() {
		problems = append(problems, fmt.Sprintf("question.%s is required", l))
	}
	for _, l := range q.Explanation.Missing() {
		problems = append(problems, fmt.Sprintf("explanation.%s is required", l))
	}
	if q.CorrectAnswer == "" {
		problems = append(problems, "correctAnswer is required")
	}

	switch {
	case q.Options.Empty() && q.Type == QuestionTypeTrueFalse:
		if q.CorrectAnswer != "" && q.CorrectAnswer != "true" && q.CorrectAnswer != "false" {
			problems = append(problems, `correctAnswer must be "true" or "false"`)
		}
	case q.Options.Empty():
		problems = append(problems, "options are required unless type is true-false")
	default:
		problems = append(problems, q.validateOptions()...)
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidQuestion, strings.Join(problems, "; "))
	}
	return nil
}

func (q *Question) validateOptions() []string {
	var problems []string
	want := -1
	for _, l := range SupportedLocales {
		opts := q.Options[l]
		if len(opts) == 0 {
			problems = append(problems, fmt.Sprintf("options.%s is required", l))
			continue
		}
		if want == -1 {
			want = len(opts)
		} else if len(opts) != want {
			problems = append(problems, "options must have the same number of entries in every language")
		}
		found := false
		for _, o := range opts {
			if strings.TrimSpace(o) == "" {
				problems = append(problems, fmt.Sprintf("options.%s contains an empty entry", l))
				break
			}
			if o == string(q.CorrectAnswer) {
				found = true
			}
		}
		if q.CorrectAnswer != "" && !found {
			problems = append(problems, fmt.Sprintf("correctAnswer must match one of options.%s exactly", l))
		}
	}
	return problems
}
