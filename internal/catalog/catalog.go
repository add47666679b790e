// Package catalog holds Greenify's static, localized seed content.
package catalog

import (
	"fmt"
	"greenify/internal/game"
	"greenify/internal/i18n"
)

// Task is a catalog eco task.
type Task struct {
	ID          int
	Points      int
	Category    game.Category
	Title       i18n.Text
	Description i18n.Text
}

// Level is a catalog tier.
type Level struct {
	game.Level
	Title i18n.Text
}

// Question is a catalog quiz question.
type Question struct {
	ID            int
	Difficulty    game.Difficulty
	CorrectOption int
	Category      i18n.Text
	Prompt        i18n.Text
	Options       [game.OptionCount]i18n.Text
}

// WasteItem is a sortable item.
type WasteItem struct {
	ID       int
	Emoji    string
	Category game.WasteCategory
	Name     i18n.Text
}

// Bin is a sorting game target.
type Bin struct {
	Category game.WasteCategory
	Color    string
	Name     i18n.Text
}

var tasks = []Task{
	{
		ID: 1, Points: 10, Category: game.CategoryReuse,
		Title:       i18n.Text{AZ: "1 plastik şüşəni təkrar istifadə et", EN: "Reuse 1 plastic bottle", RU: "Повторно использовать 1 пластиковую бутылку"},
		Description: i18n.Text{AZ: "Plastik şüşəni təkrar istifadə edərək təbiətə töhfə ver", EN: "Contribute to nature by reusing a plastic bottle", RU: "Внесите вклад в природу, повторно используя пластиковую бутылку"},
	},
	{
		ID: 2, Points: 15, Category: game.CategoryRecycle,
		Title:       i18n.Text{AZ: "5 kağız materialı təhvil ver", EN: "Recycle 5 paper materials", RU: "Сдать 5 бумажных материалов"},
		Description: i18n.Text{AZ: "Kağız tullantılarını təhvil verərək resursları qoru", EN: "Conserve resources by recycling paper waste", RU: "Сохраняйте ресурсы, сдавая бумажные отходы"},
	},
	{
		ID: 3, Points: 25, Category: game.CategoryPlant,
		Title:       i18n.Text{AZ: "1 ağac əkmək", EN: "Plant 1 tree", RU: "Посадить 1 дерево"},
		Description: i18n.Text{AZ: "Təbiətə töhfə ver və bir ağac ək", EN: "Contribute to nature and plant a tree", RU: "Внесите вклад в природу и посадите дерево"},
	},
	{
		ID: 4, Points: 12, Category: game.CategoryRecycle,
		Title:       i18n.Text{AZ: "3 şüşə qab təhvil ver", EN: "Recycle 3 glass containers", RU: "Сдать 3 стеклянные емкости"},
		Description: i18n.Text{AZ: "Şüşə qabları resurs kimi təhvil ver", EN: "Turn in glass containers as a resource", RU: "Сдайте стеклянные емкости в качестве ресурса"},
	},
	{
		ID: 5, Points: 20, Category: game.CategoryReduce,
		Title:       i18n.Text{AZ: "Plastik paket əvəzinə parça çanta istifadə et", EN: "Use cloth bag instead of plastic bag", RU: "Использовать тканевую сумку вместо пластикового пакета"},
		Description: i18n.Text{AZ: "Bir həftə ərzində plastik paket istifadə etmə", EN: "Avoid using plastic bags for a week", RU: "Не используйте пластиковые пакеты в течение недели"},
	},
	{
		ID: 6, Points: 18, Category: game.CategoryRecycle,
		Title:       i18n.Text{AZ: "10 metal qab təhvil ver", EN: "Recycle 10 metal containers", RU: "Сдать 10 металлических емкостей"},
		Description: i18n.Text{AZ: "Metal qabları geri qaytararaq resursları qoru", EN: "Conserve resources by returning metal containers", RU: "Сохраняйте ресурсы, возвращая металлические емкости"},
	},
	{
		ID: 7, Points: 8, Category: game.CategoryPlant,
		Title:       i18n.Text{AZ: "Bir bitki tanımaq", EN: "Identify a plant", RU: "Определить растение"},
		Description: i18n.Text{AZ: "Bitki tanıma sistemi ilə bir bitki tanıyın", EN: "Identify a plant using the plant recognition system", RU: "Определите растение с помощью системы распознавания растений"},
	},
	{
		ID: 8, Points: 15, Category: game.CategoryRecycle,
		Title:       i18n.Text{AZ: "5 plastik şüşəni təhvil ver", EN: "Recycle 5 plastic bottles", RU: "Сдать 5 пластиковых бутылок"},
		Description: i18n.Text{AZ: "Plastik şüşələri resurs kimi təhvil ver", EN: "Turn in plastic bottles as a resource", RU: "Сдайте пластиковые бутылки в качестве ресурса"},
	},
}

var levels = []Level{
	{
		Level: game.Level{Key: "bronze", MinPoints: 0, MaxPoints: 50, Color: "#CD7F32"},
		Title: i18n.Text{AZ: "Bürünc Eko Lider", EN: "Bronze Eco Leader", RU: "Бронзовый эколидер"},
	},
	{
		Level: game.Level{Key: "silver", MinPoints: 50, MaxPoints: 150, Color: "#C0C0C0"},
		Title: i18n.Text{AZ: "Gümüş Eko Lider", EN: "Silver Eco Leader", RU: "Серебряный эколидер"},
	},
	{
		Level: game.Level{Key: "gold", MinPoints: 150, MaxPoints: game.Unbounded, Color: "#FFD700"},
		Title: i18n.Text{AZ: "Qızıl Eko Lider", EN: "Gold Eco Leader", RU: "Золотой эколидер"},
	},
}

var wasteItems = []WasteItem{
	{ID: 1, Emoji: "🍾", Category: game.WastePlastic, Name: i18n.Text{AZ: "Plastik şüşə", EN: "Plastic bottle", RU: "Пластиковая бутылка"}},
	{ID: 2, Emoji: "🛍️", Category: game.WastePlastic, Name: i18n.Text{AZ: "Plastik paket", EN: "Plastic bag", RU: "Пластиковый пакет"}},
	{ID: 3, Emoji: "🥤", Category: game.WastePlastic, Name: i18n.Text{AZ: "Plastik qab", EN: "Plastic cup", RU: "Пластиковый стакан"}},
	{ID: 4, Emoji: "🧴", Category: game.WastePlastic, Name: i18n.Text{AZ: "Şampun", EN: "Shampoo", RU: "Шампунь"}},
	{ID: 5, Emoji: "💿", Category: game.WastePlastic, Name: i18n.Text{AZ: "CD disk", EN: "CD disk", RU: "CD диск"}},

	{ID: 6, Emoji: "📄", Category: game.WastePaper, Name: i18n.Text{AZ: "Kağız", EN: "Paper", RU: "Бумага"}},
	{ID: 7, Emoji: "📦", Category: game.WastePaper, Name: i18n.Text{AZ: "Karton qutu", EN: "Cardboard box", RU: "Картонная коробка"}},
	{ID: 8, Emoji: "📰", Category: game.WastePaper, Name: i18n.Text{AZ: "Qəzet", EN: "Newspaper", RU: "Газета"}},
	{ID: 9, Emoji: "📚", Category: game.WastePaper, Name: i18n.Text{AZ: "Kitab", EN: "Book", RU: "Книга"}},
	{ID: 10, Emoji: "📓", Category: game.WastePaper, Name: i18n.Text{AZ: "Jurnal", EN: "Magazine", RU: "Журнал"}},

	{ID: 11, Emoji: "🍷", Category: game.WasteGlass, Name: i18n.Text{AZ: "Şüşə şüşə", EN: "Glass bottle", RU: "Стеклянная бутылка"}},
	{ID: 12, Emoji: "🫙", Category: game.WasteGlass, Name: i18n.Text{AZ: "Cam qab", EN: "Glass jar", RU: "Стеклянная банка"}},
	{ID: 13, Emoji: "🧊", Category: game.WasteGlass, Name: i18n.Text{AZ: "Şüşə şüşə (su)", EN: "Water glass bottle", RU: "Стеклянная бутылка (вода)"}},
	{ID: 14, Emoji: "🪞", Category: game.WasteGlass, Name: i18n.Text{AZ: "Güzgü", EN: "Mirror", RU: "Зеркало"}},
	{ID: 15, Emoji: "🔲", Category: game.WasteGlass, Name: i18n.Text{AZ: "Pəncərə şüşəsi", EN: "Window glass", RU: "Оконное стекло"}},

	{ID: 16, Emoji: "🍎", Category: game.WasteOrganic, Name: i18n.Text{AZ: "Alma", EN: "Apple", RU: "Яблоко"}},
	{ID: 17, Emoji: "🍌", Category: game.WasteOrganic, Name: i18n.Text{AZ: "Banan qabığı", EN: "Banana peel", RU: "Банановая кожура"}},
	{ID: 18, Emoji: "🍞", Category: game.WasteOrganic, Name: i18n.Text{AZ: "Çörək", EN: "Bread", RU: "Хлеб"}},
	{ID: 19, Emoji: "🥚", Category: game.WasteOrganic, Name: i18n.Text{AZ: "Yumurta qabığı", EN: "Egg shell", RU: "Яичная скорлупа"}},
	{ID: 20, Emoji: "🍂", Category: game.WasteOrganic, Name: i18n.Text{AZ: "Yarpaq", EN: "Leaf", RU: "Лист"}},
}

var bins = []Bin{
	{Category: game.WastePlastic, Color: "#FFD700", Name: i18n.Text{AZ: "Plastik", EN: "Plastic", RU: "Пластик"}},
	{Category: game.WastePaper, Color: "#4A90E2", Name: i18n.Text{AZ: "Kağız", EN: "Paper", RU: "Бумага"}},
	{Category: game.WasteGlass, Color: "#7ED321", Name: i18n.Text{AZ: "Şüşə", EN: "Glass", RU: "Стекло"}},
	{Category: game.WasteOrganic, Color: "#CD7F32", Name: i18n.Text{AZ: "Üzvi", EN: "Organic", RU: "Органика"}},
}

// Tasks returns the task catalog in display order.
func Tasks() []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}

// TaskByID looks up a catalog task.
func TaskByID(id int) (Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// SeedTasks returns the ledger seed. Persisted text is Azerbaijani.
func SeedTasks() []game.Task {
	out := make([]game.Task, len(tasks))
	for i, t := range tasks {
		out[i] = game.Task{
			ID:          t.ID,
			Title:       t.Title.In(i18n.AZ),
			Description: t.Description.In(i18n.AZ),
			Points:      t.Points,
			Category:    t.Category,
		}
	}
	return out
}

func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}

// LevelByKey looks up a level's localized title.
func LevelByKey(key string) (Level, bool) {
	for _, l := range levels {
		if l.Key == key {
			return l, true
		}
	}
	return Level{}, false
}

// GameLevels returns the classifier table.
func GameLevels() []game.Level {
	out := make([]game.Level, len(levels))
	for i, l := range levels {
		out[i] = l.Level
	}
	return out
}

// Questions returns the questions for d in id order.
func Questions(d game.Difficulty) []Question {
	var out []Question
	for _, q := range questions {
		if q.Difficulty == d {
			out = append(out, q)
		}
	}
	return out
}

// QuestionByID looks up any question.
func QuestionByID(id int) (Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// GameQuestions returns the scoring view of the questions for d.
func GameQuestions(d game.Difficulty) []game.Question {
	qs := Questions(d)
	out := make([]game.Question, len(qs))
	for i, q := range qs {
		out[i] = game.Question{ID: q.ID, Difficulty: q.Difficulty, CorrectOption: q.CorrectOption}
	}
	return out
}

func WasteItems() []WasteItem {
	out := make([]WasteItem, len(wasteItems))
	copy(out, wasteItems)
	return out
}

// WasteItemByID looks up a sortable item.
func WasteItemByID(id int) (WasteItem, bool) {
	for _, w := range wasteItems {
		if w.ID == id {
			return w, true
		}
	}
	return WasteItem{}, false
}

// WastePool returns the scoring view of every waste item.
func WastePool() []game.WasteItem {
	out := make([]game.WasteItem, len(wasteItems))
	for i, w := range wasteItems {
		out[i] = game.WasteItem{ID: w.ID, Category: w.Category}
	}
	return out
}

func Bins() []Bin {
	out := make([]Bin, len(bins))
	copy(out, bins)
	return out
}

// Validate checks ids, numbers and translations across the whole catalog.
func Validate() error {
	seen := make(map[int]bool)
	for _, t := range tasks {
		if seen[t.ID] {
			return fmt.Errorf("task %d: duplicate id", t.ID)
		}
		seen[t.ID] = true
		if t.Points <= 0 {
			return fmt.Errorf("task %d: points must be positive", t.ID)
		}
		if !t.Category.Valid() {
			return fmt.Errorf("task %d: unknown category %q", t.ID, t.Category)
		}
		if err := t.Title.Check(fmt.Sprintf("task %d title", t.ID)); err != nil {
			return err
		}
		if err := t.Description.Check(fmt.Sprintf("task %d description", t.ID)); err != nil {
			return err
		}
	}

	if err := game.ValidateLevels(GameLevels()); err != nil {
		return err
	}
	for _, l := range levels {
		if err := l.Title.Check("level " + l.Key); err != nil {
			return err
		}
	}

	seen = make(map[int]bool)
	for _, q := range questions {
		if seen[q.ID] {
			return fmt.Errorf("question %d: duplicate id", q.ID)
		}
		seen[q.ID] = true
		if _, err := game.ParseDifficulty(string(q.Difficulty)); err != nil {
			return fmt.Errorf("question %d: %w", q.ID, err)
		}
		if q.CorrectOption < 0 || q.CorrectOption >= game.OptionCount {
			return fmt.Errorf("question %d: correct option %d out of range", q.ID, q.CorrectOption)
		}
		if err := q.Prompt.Check(fmt.Sprintf("question %d prompt", q.ID)); err != nil {
			return err
		}
		if err := q.Category.Check(fmt.Sprintf("question %d category", q.ID)); err != nil {
			return err
		}
		for i, o := range q.Options {
			if err := o.Check(fmt.Sprintf("question %d option %d", q.ID, i)); err != nil {
				return err
			}
		}
	}

	seen = make(map[int]bool)
	for _, w := range wasteItems {
		if seen[w.ID] {
			return fmt.Errorf("waste item %d: duplicate id", w.ID)
		}
		seen[w.ID] = true
		if !w.Category.Valid() {
			return fmt.Errorf("waste item %d: unknown category %q", w.ID, w.Category)
		}
		if err := w.Name.Check(fmt.Sprintf("waste item %d", w.ID)); err != nil {
			return err
		}
	}
	for _, b := range bins {
		if err := b.Name.Check(fmt.Sprintf("bin %s", b.Category)); err != nil {
			return err
		}
	}
	return nil
}
