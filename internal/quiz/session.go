package quiz

import "github.com/ankitpatil/disha/internal/domain"

// SessionState represents where a quiz attempt stands.
type SessionState string

const (
	SessionInProgress SessionState = "in_progress"
	SessionCompleted  SessionState = "completed"
)

// Session is one quiz attempt. It starts in progress at question 0 and
// completes when the last question is answered and advanced past. Sessions
// are not safe for concurrent use.
type Session struct {
	quizID    string
	questions []Question
	index     int
	state     SessionState
	answers   map[int]string
}

// NewSession starts a session for the given quiz.
func NewSession(quizID string) (*Session, error) {
	questions, err := Bank(quizID)
	if err != nil {
		return nil, err
	}
	return &Session{
		quizID:    quizID,
		questions: questions,
		state:     SessionInProgress,
		answers:   make(map[int]string),
	}, nil
}

// QuizID returns the quiz this session walks through.
func (s *Session) QuizID() string { return s.quizID }

// State returns the current session state.
func (s *Session) State() SessionState { return s.state }

// Index returns the current question index.
func (s *Session) Index() int { return s.index }

// Current returns the question the session is positioned at.
func (s *Session) Current() Question { return s.questions[s.index] }

// Total returns the number of questions in the quiz.
func (s *Session) Total() int { return len(s.questions) }

// Completed reports whether the session reached the terminal state.
func (s *Session) Completed() bool { return s.state == SessionCompleted }

// Select records the answer for the current question, replacing any
// previous selection. The value must be one of the question's options.
func (s *Session) Select(value string) error {
	const op = "quiz.select"
	if s.state != SessionInProgress {
		return domain.Invalid(op, "session already completed")
	}
	if !s.Current().hasOption(value) {
		return domain.Invalid(op, "selection is not an option for this question")
	}
	s.answers[s.index] = value
	return nil
}

// Next advances to the following question, or completes the session from
// the last one. Without a selection for the current question it does
// nothing; the caller disables the action rather than reporting an error.
func (s *Session) Next() {
	if s.state != SessionInProgress {
		return
	}
	if _, answered := s.answers[s.index]; !answered {
		return
	}
	if s.index < len(s.questions)-1 {
		s.index++
		return
	}
	s.state = SessionCompleted
}

// Previous steps back one question. Going back never clears answers.
func (s *Session) Previous() {
	if s.state != SessionInProgress || s.index == 0 {
		return
	}
	s.index--
}

// Retake restarts a completed session at question 0 with all answers
// cleared. On an in-progress session it does nothing.
func (s *Session) Retake() {
	if s.state != SessionCompleted {
		return
	}
	s.state = SessionInProgress
	s.index = 0
	s.answers = make(map[int]string)
}

// Selection returns the recorded answer for the current question, if any.
func (s *Session) Selection() (string, bool) {
	value, ok := s.answers[s.index]
	return value, ok
}

// AnswerTags returns the recorded answer values in question order,
// skipping unanswered questions.
func (s *Session) AnswerTags() []string {
	tags := make([]string, 0, len(s.answers))
	for i := range s.questions {
		if value, ok := s.answers[i]; ok {
			tags = append(tags, value)
		}
	}
	return tags
}
