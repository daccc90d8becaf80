package riasec

import (
	"fmt"
	"math"
	"testing"
)

// sampleBank builds the 9-question bank (3 per section) used across tests.
func sampleBank(t *testing.T) *Bank {
	t.Helper()
	qs := []Question{
		{ID: "q1", Text: "Reparar aparatos", Section: SectionActividades, Category: CategoryRealista, Position: 1},
		{ID: "q2", Text: "Leer sobre ciencia", Section: SectionActividades, Category: CategoryInvestigador, Position: 2},
		{ID: "q3", Text: "Dibujar o pintar", Section: SectionActividades, Category: CategoryArtistico, Position: 3},
		{ID: "q4", Text: "Ayudar a companeros", Section: SectionHabilidades, Category: CategorySocial, Position: 4},
		{ID: "q5", Text: "Organizar eventos", Section: SectionHabilidades, Category: CategoryEmprendedor, Position: 5},
		{ID: "q6", Text: "Llevar registros", Section: SectionHabilidades, Category: CategoryConvencional, Position: 6},
		{ID: "q7", Text: "Trabajo social", Section: SectionOcupaciones, Category: CategorySocial, Position: 7},
		{ID: "q8", Text: "Quimico", Section: SectionOcupaciones, Category: CategoryInvestigador, Position: 8},
		{ID: "q9", Text: "Electricista", Section: SectionOcupaciones, Category: CategoryRealista, Position: 9},
	}
	b, err := NewBank(qs)
	if err != nil {
		t.Fatalf("NewBank failed: %v", err)
	}
	return b
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNewBankValidation(t *testing.T) {
	tests := []struct {
		name    string
		qs      []Question
		wantErr bool
	}{
		{"empty bank", nil, true},
		{"bad section", []Question{{ID: "x", Section: "hobbies", Category: CategoryRealista}}, true},
		{"bad category", []Question{{ID: "x", Section: SectionActividades, Category: "aventurero"}}, true},
		{"duplicate id", []Question{
			{ID: "x", Section: SectionActividades, Category: CategoryRealista},
			{ID: "x", Section: SectionHabilidades, Category: CategorySocial},
		}, true},
		{"valid", []Question{{ID: "x", Section: SectionActividades, Category: CategoryRealista}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBank(tt.qs)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestBankOrdering(t *testing.T) {
	b, err := NewBank([]Question{
		{ID: "b", Section: SectionActividades, Category: CategoryRealista, Position: 2},
		{ID: "a", Section: SectionActividades, Category: CategoryRealista, Position: 1},
	})
	if err != nil {
		t.Fatalf("NewBank failed: %v", err)
	}
	qs := b.Questions()
	if qs[0].ID != "a" || qs[1].ID != "b" {
		t.Errorf("questions not ordered by position: got %s, %s", qs[0].ID, qs[1].ID)
	}
}

// Progress must be non-decreasing and equal 100*answered/total at every step
// for any sequence of distinct question answers.
func TestProgressMonotonicity(t *testing.T) {
	bank := sampleBank(t)
	answers := AnswerSet{}
	prev := 0.0

	order := []string{"q3", "q7", "q1", "q9", "q5", "q2", "q8", "q4", "q6"}
	for i, id := range order {
		ans := AnswerYes
		if i%2 == 1 {
			ans = AnswerNo
		}
		answers = answers.Merge(id, ans)
		p := ComputeProgress(bank, answers)

		want := float64(i+1) / float64(bank.Len()) * 100
		if !almostEqual(p.Overall, want) {
			t.Fatalf("step %d: overall = %v, want %v", i+1, p.Overall, want)
		}
		if p.Overall < prev {
			t.Fatalf("step %d: overall decreased from %v to %v", i+1, prev, p.Overall)
		}
		prev = p.Overall
	}
}

// Re-answering the same question must not change progress.
func TestProgressIdempotentReanswer(t *testing.T) {
	bank := sampleBank(t)
	answers := AnswerSet{}.Merge("q1", AnswerYes)
	before := ComputeProgress(bank, answers)

	answers = answers.Merge("q1", AnswerNo)
	after := ComputeProgress(bank, answers)

	if !almostEqual(before.Overall, after.Overall) {
		t.Errorf("overall changed on re-answer: %v -> %v", before.Overall, after.Overall)
	}
}

// Overall progress must equal the size-weighted average of the three section
// progresses.
func TestSectionOverallConsistency(t *testing.T) {
	bank := sampleBank(t)
	answers := AnswerSet{}

	order := []string{"q1", "q4", "q5", "q7", "q2"}
	for _, id := range order {
		answers = answers.Merge(id, AnswerYes)
		p := ComputeProgress(bank, answers)

		weighted := 0.0
		for _, s := range Sections() {
			weighted += p.Sections[s] * float64(bank.SectionSize(s))
		}
		weighted /= float64(bank.Len())

		if !almostEqual(p.Overall, weighted) {
			t.Fatalf("after %s: overall %v != weighted section average %v", id, p.Overall, weighted)
		}
	}
}

func TestProgressIgnoresUnknownQuestions(t *testing.T) {
	bank := sampleBank(t)
	answers := AnswerSet{"ghost": AnswerYes}
	p := ComputeProgress(bank, answers)
	if p.Overall != 0 {
		t.Errorf("overall = %v, want 0 for answers outside the bank", p.Overall)
	}
}

func TestProgressEmptySectionReportsZero(t *testing.T) {
	b, err := NewBank([]Question{
		{ID: "only", Section: SectionActividades, Category: CategoryRealista},
	})
	if err != nil {
		t.Fatalf("NewBank failed: %v", err)
	}
	p := ComputeProgress(b, AnswerSet{"only": AnswerYes})
	if p.Sections[SectionHabilidades] != 0 || p.Sections[SectionOcupaciones] != 0 {
		t.Errorf("empty sections should report 0, got %v", p.Sections)
	}
	if !p.Complete() {
		t.Error("single answered question out of one should be complete")
	}
}

// Answering all 9 questions yes must yield the tally from the spec scenario:
// realista 2, investigador 2, artistico 1, social 2, emprendedor 1,
// convencional 1 — and 100% progress.
func TestCompletionScenarioTally(t *testing.T) {
	bank := sampleBank(t)
	answers := AnswerSet{}
	for _, q := range bank.Questions() {
		answers = answers.Merge(q.ID, AnswerYes)
	}

	p := ComputeProgress(bank, answers)
	if !p.Complete() {
		t.Fatalf("overall = %v, want 100", p.Overall)
	}
	for _, s := range Sections() {
		if !almostEqual(p.Sections[s], 100) {
			t.Errorf("section %s = %v, want 100", s, p.Sections[s])
		}
	}

	tally := ComputeTally(bank, answers)
	wantYes := map[Category]int{
		CategoryRealista:     2,
		CategoryInvestigador: 2,
		CategoryArtistico:    1,
		CategorySocial:       2,
		CategoryEmprendedor:  1,
		CategoryConvencional: 1,
	}
	for c, want := range wantYes {
		got := tally.Total[c]
		if got.Yes != want || got.No != 0 {
			t.Errorf("category %s: got yes=%d no=%d, want yes=%d no=0", c, got.Yes, got.No, want)
		}
	}

	scores := tally.YesScores()
	for c, want := range wantYes {
		if scores[c] != want {
			t.Errorf("YesScores[%s] = %d, want %d", c, scores[c], want)
		}
	}
}

func TestTallySectionRestriction(t *testing.T) {
	bank := sampleBank(t)
	answers := AnswerSet{
		"q1": AnswerYes, // actividades / realista
		"q9": AnswerNo,  // ocupaciones / realista
	}
	tally := ComputeTally(bank, answers)

	if got := tally.Total[CategoryRealista]; got.Yes != 1 || got.No != 1 {
		t.Errorf("total realista = %+v, want {1 1}", got)
	}
	if got := tally.BySections[SectionActividades][CategoryRealista]; got.Yes != 1 || got.No != 0 {
		t.Errorf("actividades realista = %+v, want {1 0}", got)
	}
	if got := tally.BySections[SectionOcupaciones][CategoryRealista]; got.Yes != 0 || got.No != 1 {
		t.Errorf("ocupaciones realista = %+v, want {0 1}", got)
	}
	if got := tally.BySections[SectionHabilidades][CategoryRealista]; got.Yes != 0 || got.No != 0 {
		t.Errorf("habilidades realista = %+v, want {0 0}", got)
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		overall float64
		result  string
		want    Status
	}{
		{0, "", StatusNotStarted},
		{33.3, "", StatusInProgress},
		{100, "", StatusReadyToSubmit},
		{100, "social", StatusLocked},
		// A result always wins, even with inconsistent progress.
		{40, "realista", StatusLocked},
		{0, "artistico", StatusLocked},
	}
	for _, tt := range tests {
		name := fmt.Sprintf("overall=%v result=%q", tt.overall, tt.result)
		t.Run(name, func(t *testing.T) {
			got := StatusOf(Progress{Overall: tt.overall}, tt.result)
			if got != tt.want {
				t.Errorf("StatusOf = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseAnswer(t *testing.T) {
	if _, err := ParseAnswer("maybe"); err == nil {
		t.Error("expected error for invalid answer")
	}
	for _, raw := range []string{"yes", "no"} {
		if _, err := ParseAnswer(raw); err != nil {
			t.Errorf("ParseAnswer(%q) failed: %v", raw, err)
		}
	}
}

func TestAnswerSetMergeDoesNotMutate(t *testing.T) {
	orig := AnswerSet{"q1": AnswerYes}
	_ = orig.Merge("q2", AnswerNo)
	if len(orig) != 1 {
		t.Errorf("Merge mutated the original set: %v", orig)
	}
}
