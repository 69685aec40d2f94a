package practice

import "github.com/arturxdev/interview-helper/internal/models"

// QuestionView is the localized question as shown to the learner.
type QuestionView struct {
	ID         string              `json:"id"`
	Difficulty models.Difficulty   `json:"difficulty"`
	Type       models.QuestionType `json:"type"`
	Prompt     string              `json:"question"`
	Code       string              `json:"code,omitempty"`
	Options    []string            `json:"options"`
}

// View is the state a presentation layer renders after every transition.
// The correct answer and explanation are only revealed once answered.
type View struct {
	Topic          string         `json:"topic"`
	Locale         models.Locale  `json:"locale"`
	Position       int            `json:"position"`
	Total          int            `json:"total"`
	IsLast         bool           `json:"is_last"`
	Question       QuestionView   `json:"question"`
	SelectedAnswer *string        `json:"selected_answer"`
	Answered       bool           `json:"answered"`
	WasCorrect     *bool          `json:"was_correct,omitempty"`
	CorrectAnswer  string         `json:"correct_answer,omitempty"`
	Explanation    string         `json:"explanation,omitempty"`
	CorrectCount   int            `json:"correct_count"`
	IncorrectCount int            `json:"incorrect_count"`
	Accuracy       int            `json:"accuracy"`
	Justification  string         `json:"justification,omitempty"`
	Feedback       string         `json:"feedback,omitempty"`
	FeedbackStatus FeedbackStatus `json:"feedback_status"`
	Finished       bool           `json:"finished"`
}

func (e *Engine) View() View {
	q := e.current()
	v := View{
		Topic:    e.topic,
		Locale:   e.locale,
		Position: e.position,
		Total:    len(e.sequence),
		IsLast:   e.position == len(e.sequence)-1,
		Question: QuestionView{
			ID:         q.ID,
			Difficulty: q.Difficulty,
			Type:       q.Type,
			Prompt:     q.Question.Get(e.locale),
			Code:       q.Code,
			Options:    q.ChoicesFor(e.locale),
		},
		Answered:       e.answered,
		CorrectCount:   e.correctCount,
		IncorrectCount: e.incorrectCount,
		Accuracy:       Accuracy(e.correctCount, e.incorrectCount),
		Justification:  e.justification,
		Feedback:       e.feedback,
		FeedbackStatus: e.feedbackStatus,
		Finished:       e.finished,
	}
	if e.selected != nil {
		sel := *e.selected
		v.SelectedAnswer = &sel
	}
	if e.answered {
		correct := e.records[e.position].correct
		v.WasCorrect = &correct
		v.CorrectAnswer = q.CorrectAnswer.String()
		v.Explanation = q.Explanation.Get(e.locale)
	}
	return v
}
