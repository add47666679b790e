package catalog

import (
	"greenify/internal/game"
	"greenify/internal/i18n"
	"testing"
)

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("catalog invalid: %v", err)
	}
}

func TestTaskSeed(t *testing.T) {
	want := []struct {
		id       int
		points   int
		category game.Category
		title    string
	}{
		{1, 10, game.CategoryReuse, "Reuse 1 plastic bottle"},
		{2, 15, game.CategoryRecycle, "Recycle 5 paper materials"},
		{3, 25, game.CategoryPlant, "Plant 1 tree"},
		{4, 12, game.CategoryRecycle, "Recycle 3 glass containers"},
		{5, 20, game.CategoryReduce, "Use cloth bag instead of plastic bag"},
		{6, 18, game.CategoryRecycle, "Recycle 10 metal containers"},
		{7, 8, game.CategoryPlant, "Identify a plant"},
		{8, 15, game.CategoryRecycle, "Recycle 5 plastic bottles"},
	}

	got := Tasks()
	if len(got) != len(want) {
		t.Fatalf("tasks = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		g := got[i]
		if g.ID != w.id || g.Points != w.points || g.Category != w.category || g.Title.In(i18n.EN) != w.title {
			t.Errorf("task %d = %+v", w.id, g)
		}
	}

	seed := SeedTasks()
	if seed[0].Title != "1 plastik şüşəni təkrar istifadə et" {
		t.Errorf("seed title = %q, want Azerbaijani", seed[0].Title)
	}
	for _, s := range seed {
		if s.Completed {
			t.Errorf("seed task %d completed", s.ID)
		}
	}
}

func TestLevelTable(t *testing.T) {
	lv := Levels()
	if len(lv) != 3 {
		t.Fatalf("levels = %d", len(lv))
	}
	if lv[0].Title.In(i18n.AZ) != "Bürünc Eko Lider" || lv[1].MinPoints != 50 || lv[2].MinPoints != 150 || !lv[2].Top() {
		t.Fatalf("unexpected levels: %+v", lv)
	}
	if l, ok := LevelByKey("silver"); !ok || l.Color != "#C0C0C0" {
		t.Fatalf("LevelByKey(silver) = %+v, %v", l, ok)
	}
}

func TestQuestionsPerDifficulty(t *testing.T) {
	wantCorrect := map[int]int{
		1: 2, 2: 1, 3: 1, 4: 1, 5: 1,
		6: 1, 7: 1, 8: 2, 9: 2, 10: 2,
		11: 0, 12: 2, 13: 1, 14: 1, 15: 2,
	}
	firstID := map[game.Difficulty]int{game.Easy: 1, game.Medium: 6, game.Hard: 11}

	for _, d := range game.Difficulties {
		qs := GameQuestions(d)
		if len(qs) != 5 {
			t.Fatalf("%s: %d questions, want 5", d, len(qs))
		}
		for i, q := range qs {
			if q.ID != firstID[d]+i {
				t.Errorf("%s[%d] id = %d", d, i, q.ID)
			}
			if q.CorrectOption != wantCorrect[q.ID] {
				t.Errorf("question %d correct = %d, want %d", q.ID, q.CorrectOption, wantCorrect[q.ID])
			}
		}
	}

	q, ok := QuestionByID(1)
	if !ok {
		t.Fatal("question 1 missing")
	}
	if q.Options[q.CorrectOption].In(i18n.EN) != "450 years" {
		t.Errorf("question 1 answer = %q", q.Options[q.CorrectOption].In(i18n.EN))
	}
	if q.Prompt.In(i18n.RU) == "" || q.Prompt.In(i18n.AZ) == "" {
		t.Error("question 1 missing translations")
	}
}

func TestWasteItemsAndBins(t *testing.T) {
	counts := make(map[game.WasteCategory]int)
	for _, w := range WastePool() {
		counts[w.Category]++
	}
	for _, b := range Bins() {
		if counts[b.Category] != 5 {
			t.Errorf("%s: %d items, want 5", b.Category, counts[b.Category])
		}
	}
	if len(WasteItems()) != 20 {
		t.Fatalf("waste items = %d, want 20", len(WasteItems()))
	}
	if w, ok := WasteItemByID(17); !ok || w.Name.In(i18n.EN) != "Banana peel" || w.Category != game.WasteOrganic {
		t.Fatalf("item 17 = %+v", w)
	}

	wantColors := map[game.WasteCategory]string{
		game.WastePlastic: "#FFD700",
		game.WastePaper:   "#4A90E2",
		game.WasteGlass:   "#7ED321",
		game.WasteOrganic: "#CD7F32",
	}
	for _, b := range Bins() {
		if b.Color != wantColors[b.Category] {
			t.Errorf("bin %s color = %s", b.Category, b.Color)
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	ts := Tasks()
	ts[0].Points = 1000
	if tk, _ := TaskByID(1); tk.Points != 10 {
		t.Fatal("Tasks() exposed the catalog")
	}
}
