package riasec

// Progress holds the derived completion percentages for an in-flight
// inventory. Values are 0..100.
type Progress struct {
	Overall  float64             `json:"overall"`
	Sections map[Section]float64 `json:"sections"`
}

// Complete reports whether every question has been answered.
func (p Progress) Complete() bool { return p.Overall >= 100 }

// ComputeProgress derives overall and per-section completion from the full
// answer set. Progress is always recomputed from scratch rather than tracked
// incrementally, so a lost or replayed write can never make it drift.
// Answers for ids outside the bank are ignored. A section with no questions
// reports 0.
func ComputeProgress(bank *Bank, answers AnswerSet) Progress {
	total := bank.Len()
	answered := 0
	perSectionTotal := make(map[Section]int, 3)
	perSectionAnswered := make(map[Section]int, 3)

	for _, q := range bank.questions {
		perSectionTotal[q.Section]++
		if _, ok := answers[q.ID]; ok {
			answered++
			perSectionAnswered[q.Section]++
		}
	}

	p := Progress{Sections: make(map[Section]float64, 3)}
	if total > 0 {
		p.Overall = float64(answered) / float64(total) * 100
	}
	for _, s := range Sections() {
		if perSectionTotal[s] == 0 {
			p.Sections[s] = 0
			continue
		}
		p.Sections[s] = float64(perSectionAnswered[s]) / float64(perSectionTotal[s]) * 100
	}
	return p
}

// Status is the lifecycle phase of a prediction record.
type Status string

const (
	StatusNotStarted    Status = "not_started"
	StatusInProgress    Status = "in_progress"
	StatusReadyToSubmit Status = "ready_to_submit"
	StatusLocked        Status = "locked"
)

// StatusOf derives the lifecycle phase. The transition to Locked is one-way:
// once a result exists the record is read-only, regardless of progress.
func StatusOf(p Progress, result string) Status {
	if result != "" {
		return StatusLocked
	}
	switch {
	case p.Overall <= 0:
		return StatusNotStarted
	case p.Overall >= 100:
		return StatusReadyToSubmit
	default:
		return StatusInProgress
	}
}
