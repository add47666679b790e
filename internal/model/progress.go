package model

// TaskView is a localized ledger entry
type TaskView struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	Completed   bool   `json:"completed"`
	Category    string `json:"category"`
}

// LevelView is a localized tier. MaxPoints is exclusive and null for the top tier.
type LevelView struct {
	Key       string `json:"key"`
	Title     string `json:"title"`
	MinPoints int    `json:"minPoints"`
	MaxPoints *int   `json:"maxPoints"`
	Color     string `json:"color"`
}

// ProgressView summarises a user's points
type ProgressView struct {
	Total          int        `json:"total"`
	TasksCompleted int        `json:"tasksCompleted"`
	Level          LevelView  `json:"level"`
	NextLevel      *LevelView `json:"nextLevel"`
	ProgressToNext float64    `json:"progressToNext"`
	PointsToNext   int        `json:"pointsToNext"`
}

// TasksResponse is returned by GET /v1/tasks and the toggle endpoint
type TasksResponse struct {
	Tasks    []TaskView   `json:"tasks"`
	Progress ProgressView `json:"progress"`
	Delta    int          `json:"delta"`
}

// ProfileView is returned by GET /v1/profile
type ProfileView struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Progress ProgressView `json:"progress"`
	Rank     int64        `json:"rank"`
}

// LeaderboardEntry is one ranked user
type LeaderboardEntry struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Rank   int    `json:"rank"`
}

// PointsUpdatedEvent is pushed whenever a user's total changes
type PointsUpdatedEvent struct {
	Total          int `json:"total"`
	TasksCompleted int `json:"tasksCompleted"`
	Delta          int `json:"delta"`
}
