package riasec

// CategoryCount is a yes/no pair for one axis.
type CategoryCount struct {
	Yes int `json:"yes"`
	No  int `json:"no"`
}

// Tally is the aggregate snapshot persisted when the inventory first reaches
// 100% completion: per-category yes/no counts across all questions and
// restricted to each section.
type Tally struct {
	Total      map[Category]CategoryCount             `json:"total"`
	BySections map[Section]map[Category]CategoryCount `json:"by_sections"`
}

// ComputeTally aggregates the answer set against the bank. Unanswered
// questions contribute to neither count; ids outside the bank are ignored.
func ComputeTally(bank *Bank, answers AnswerSet) Tally {
	t := Tally{
		Total:      make(map[Category]CategoryCount, 6),
		BySections: make(map[Section]map[Category]CategoryCount, 3),
	}
	for _, c := range Categories() {
		t.Total[c] = CategoryCount{}
	}
	for _, s := range Sections() {
		t.BySections[s] = make(map[Category]CategoryCount, 6)
		for _, c := range Categories() {
			t.BySections[s][c] = CategoryCount{}
		}
	}

	for _, q := range bank.questions {
		ans, ok := answers[q.ID]
		if !ok {
			continue
		}
		total := t.Total[q.Category]
		section := t.BySections[q.Section][q.Category]
		if ans == AnswerYes {
			total.Yes++
			section.Yes++
		} else {
			total.No++
			section.No++
		}
		t.Total[q.Category] = total
		t.BySections[q.Section][q.Category] = section
	}
	return t
}

// YesScores flattens the tally into the category→yes-count map the
// classification service expects.
func (t Tally) YesScores() map[Category]int {
	out := make(map[Category]int, 6)
	for _, c := range Categories() {
		out[c] = t.Total[c].Yes
	}
	return out
}
