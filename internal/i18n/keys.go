package i18n

type Key string

const (
	PracticeProgress            Key = "practice.progress"
	PracticeSubmit              Key = "practice.submit"
	PracticeNext                Key = "practice.next"
	PracticePrevious            Key = "practice.previous"
	PracticeSeeResults          Key = "practice.see_results"
	PracticeExplanation         Key = "practice.explanation"
	PracticeJustificationPrompt Key = "practice.justification_prompt"
	PracticeFeedbackPending     Key = "practice.feedback_pending"
	PracticeFeedbackUnavailable Key = "practice.feedback_unavailable"

	SummaryTitle          Key = "summary.title"
	SummaryDescription    Key = "summary.description"
	SummaryCorrect        Key = "summary.correct"
	SummaryIncorrect      Key = "summary.incorrect"
	SummaryAccuracy       Key = "summary.accuracy"
	SummaryOutstanding    Key = "summary.rating.outstanding"
	SummaryGreat          Key = "summary.rating.great"
	SummaryGood           Key = "summary.rating.good"
	SummaryKeepPracticing Key = "summary.rating.keep_practicing"

	TopicsTitle         Key = "topics.title"
	TopicsQuestionCount Key = "topics.question_count"
	TopicsUnavailable   Key = "topics.unavailable"

	ErrorsLoadQuestions Key = "errors.load_questions"
	ErrorsLoadTopics    Key = "errors.load_topics"
)

// AllKeys is every key the application looks up. Each catalog must define all of them.
var AllKeys = []Key{
	PracticeProgress,
	PracticeSubmit,
	PracticeNext,
	PracticePrevious,
	PracticeSeeResults,
	PracticeExplanation,
	PracticeJustificationPrompt,
	PracticeFeedbackPending,
	PracticeFeedbackUnavailable,
	SummaryTitle,
	SummaryDescription,
	SummaryCorrect,
	SummaryIncorrect,
	SummaryAccuracy,
	SummaryOutstanding,
	SummaryGreat,
	SummaryGood,
	SummaryKeepPracticing,
	TopicsTitle,
	TopicsQuestionCount,
	TopicsUnavailable,
	ErrorsLoadQuestions,
	ErrorsLoadTopics,
}
