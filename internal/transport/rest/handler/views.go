package handler

import (
	"greenify/internal/catalog"
	"greenify/internal/game"
	"greenify/internal/i18n"
	"greenify/internal/model"
	"greenify/internal/service"
)

func taskViews(tasks []game.Task, lang i18n.Lang) []model.TaskView {
	out := make([]model.TaskView, len(tasks))
	for i, t := range tasks {
		v := model.TaskView{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Points:      t.Points,
			Completed:   t.Completed,
			Category:    string(t.Category),
		}
		if ct, ok := catalog.TaskByID(t.ID); ok {
			v.Title = ct.Title.In(lang)
			v.Description = ct.Description.In(lang)
		}
		out[i] = v
	}
	return out
}

func levelView(l game.Level, lang i18n.Lang) model.LevelView {
	v := model.LevelView{Key: l.Key, Title: l.Key, MinPoints: l.MinPoints, Color: l.Color}
	if !l.Top() {
		maxPoints := l.MaxPoints
		v.MaxPoints = &maxPoints
	}
	if cl, ok := catalog.LevelByKey(l.Key); ok {
		v.Title = cl.Title.In(lang)
	}
	return v
}

func progressView(sum service.ProgressSummary, lang i18n.Lang) model.ProgressView {
	v := model.ProgressView{
		Total:          sum.Total,
		TasksCompleted: sum.TasksCompleted,
		Level:          levelView(sum.Level, lang),
		ProgressToNext: sum.ProgressToNext,
		PointsToNext:   sum.PointsToNext,
	}
	if sum.Next != nil {
		next := levelView(*sum.Next, lang)
		v.NextLevel = &next
	}
	return v
}

func questionView(q catalog.Question, lang i18n.Lang, reveal bool) model.QuizQuestionView {
	v := model.QuizQuestionView{
		ID:         q.ID,
		Difficulty: string(q.Difficulty),
		Category:   q.Category.In(lang),
		Prompt:     q.Prompt.In(lang),
		Options:    make([]string, len(q.Options)),
	}
	for i, o := range q.Options {
		v.Options[i] = o.In(lang)
	}
	if reveal {
		correct := q.CorrectOption
		v.CorrectOption = &correct
	}
	return v
}

func attemptView(a *game.QuizAttempt, lang i18n.Lang) model.QuizAttemptView {
	v := model.QuizAttemptView{
		ID:            a.ID,
		Difficulty:    string(a.Difficulty),
		Questions:     make([]model.QuizQuestionView, 0, len(a.Questions)),
		Answers:       make(map[int]int, len(a.Answers)),
		Answered:      len(a.Answers),
		Submitted:     a.Submitted,
		Reward:        game.QuizReward(a.Difficulty),
		RewardGranted: a.RewardGranted,
	}
	for _, q := range a.Questions {
		if cq, ok := catalog.QuestionByID(q.ID); ok {
			v.Questions = append(v.Questions, questionView(cq, lang, a.Submitted))
		}
	}
	for id, opt := range a.Answers {
		v.Answers[id] = opt
	}
	if a.Submitted {
		v.Result = &model.QuizResultView{
			Score:      a.Result.Score,
			Total:      a.Result.Total,
			Percentage: a.Result.Percentage,
			Passed:     a.Result.Passed(),
		}
	}
	return v
}

func wasteItemView(item game.WasteItem, lang i18n.Lang) model.WasteItemView {
	v := model.WasteItemView{ID: item.ID}
	if ci, ok := catalog.WasteItemByID(item.ID); ok {
		v.Name = ci.Name.In(lang)
		v.Emoji = ci.Emoji
	}
	return v
}

func sessionView(s game.SortingSession, lang i18n.Lang) model.SortingSessionView {
	v := model.SortingSessionView{
		ID:            s.ID,
		Difficulty:    string(s.Difficulty),
		State:         string(s.State),
		Index:         s.Current,
		Total:         len(s.Queue),
		Score:         s.Score,
		Correct:       s.Correct,
		Wrong:         s.Wrong,
		TimeRemaining: s.TimeRemaining,
		TimeLimit:     s.Rules.TimeLimit,
		Accuracy:      s.Accuracy(),
		Reward:        s.Rules.Reward,
		RewardGranted: s.RewardGranted,
	}
	if item, ok := s.CurrentItem(); ok {
		iv := wasteItemView(item, lang)
		v.CurrentItem = &iv
	}
	return v
}

func binViews(lang i18n.Lang) []model.BinView {
	bins := catalog.Bins()
	out := make([]model.BinView, len(bins))
	for i, b := range bins {
		out[i] = model.BinView{Category: string(b.Category), Name: b.Name.In(lang), Color: b.Color}
	}
	return out
}
