package model

// QuizQuestionView is a localized question. CorrectOption is only set once the attempt is submitted.
type QuizQuestionView struct {
	ID            int      `json:"id"`
	Difficulty    string   `json:"difficulty"`
	Category      string   `json:"category"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectOption *int     `json:"correctOption,omitempty"`
}

// StartGameRequest selects a difficulty for a quiz attempt or sorting session
type StartGameRequest struct {
	Difficulty string `json:"difficulty" validate:"required,oneof=easy medium hard"`
}

// AnswerRequest records one quiz choice
type AnswerRequest struct {
	QuestionID int  `json:"questionId" validate:"required"`
	Option     *int `json:"option" validate:"required"`
}

// QuizResultView is the scored outcome of a submitted attempt
type QuizResultView struct {
	Score      int  `json:"score"`
	Total      int  `json:"total"`
	Percentage int  `json:"percentage"`
	Passed     bool `json:"passed"`
}

// QuizAttemptView is the client view of an attempt
type QuizAttemptView struct {
	ID            string             `json:"id"`
	Difficulty    string             `json:"difficulty"`
	Questions     []QuizQuestionView `json:"questions"`
	Answers       map[int]int        `json:"answers"`
	Answered      int                `json:"answered"`
	Submitted     bool               `json:"submitted"`
	Result        *QuizResultView    `json:"result,omitempty"`
	Reward        int                `json:"reward"`
	RewardGranted bool               `json:"rewardGranted"`
}

// BinView is a localized sorting bin
type BinView struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Color    string `json:"color"`
}

// WasteItemView is a localized sortable item
type WasteItemView struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// PlacementRequest drops the current item into a bin
type PlacementRequest struct {
	Category string `json:"category" validate:"required"`
}

// SortingSessionView is the client view of a sorting session
type SortingSessionView struct {
	ID            string         `json:"id"`
	Difficulty    string         `json:"difficulty"`
	State         string         `json:"state"`
	CurrentItem   *WasteItemView `json:"currentItem"`
	Index         int            `json:"index"`
	Total         int            `json:"total"`
	Score         int            `json:"score"`
	Correct       int            `json:"correct"`
	Wrong         int            `json:"wrong"`
	TimeRemaining int            `json:"timeRemaining"`
	TimeLimit     int            `json:"timeLimit"`
	Accuracy      float64        `json:"accuracy"`
	Reward        int            `json:"reward"`
	RewardGranted bool           `json:"rewardGranted"`
}

// PlacementResponse reports one placement and the session after it
type PlacementResponse struct {
	Correct bool               `json:"correct"`
	Item    WasteItemView      `json:"item"`
	Session SortingSessionView `json:"session"`
}

// SortingTickEvent is pushed once per countdown second
type SortingTickEvent struct {
	SessionID     string `json:"sessionId"`
	TimeRemaining int    `json:"timeRemaining"`
}

// SortingOverEvent is pushed when a session ends
type SortingOverEvent struct {
	SessionID     string  `json:"sessionId"`
	Score         int     `json:"score"`
	Correct       int     `json:"correct"`
	Wrong         int     `json:"wrong"`
	Accuracy      float64 `json:"accuracy"`
	RewardGranted bool    `json:"rewardGranted"`
}
