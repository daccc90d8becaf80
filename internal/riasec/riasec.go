// Package riasec implements the vocational-interest inventory model used by
// the psychological prediction flow: question bank handling, progress
// computation and the yes/no tally that feeds the classification service.
//
// Everything in this package is pure computation over in-memory values; the
// inventory service owns persistence.
package riasec

import (
	"errors"
	"fmt"
	"sort"
)

// Section groups inventory questions into the three blocks shown to the
// student, each with its own progress bar.
type Section string

const (
	SectionActividades Section = "actividades"
	SectionHabilidades Section = "habilidades"
	SectionOcupaciones Section = "ocupaciones"
)

// Sections returns the three sections in display order.
func Sections() []Section {
	return []Section{SectionActividades, SectionHabilidades, SectionOcupaciones}
}

// Category is one of the six vocational-interest axes.
type Category string

const (
	CategoryRealista     Category = "realista"
	CategoryInvestigador Category = "investigador"
	CategoryArtistico    Category = "artistico"
	CategorySocial       Category = "social"
	CategoryEmprendedor  Category = "emprendedor"
	CategoryConvencional Category = "convencional"
)

// Categories returns the six axes in canonical order.
func Categories() []Category {
	return []Category{
		CategoryRealista,
		CategoryInvestigador,
		CategoryArtistico,
		CategorySocial,
		CategoryEmprendedor,
		CategoryConvencional,
	}
}

// Answer is a recorded response to a single question.
type Answer string

const (
	AnswerYes Answer = "yes"
	AnswerNo  Answer = "no"
)

var (
	ErrInvalidSection  = errors.New("invalid inventory section")
	ErrInvalidCategory = errors.New("invalid inventory category")
	ErrInvalidAnswer   = errors.New("invalid inventory answer")
	ErrUnknownQuestion = errors.New("question not in the loaded bank")
	ErrEmptyBank       = errors.New("question bank is empty")
)

// ValidSection reports whether s is one of the three known sections.
func ValidSection(s Section) bool {
	switch s {
	case SectionActividades, SectionHabilidades, SectionOcupaciones:
		return true
	}
	return false
}

// ValidCategory reports whether c is one of the six known axes.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryRealista, CategoryInvestigador, CategoryArtistico,
		CategorySocial, CategoryEmprendedor, CategoryConvencional:
		return true
	}
	return false
}

// ParseAnswer validates and normalises a raw answer value.
func ParseAnswer(raw string) (Answer, error) {
	switch Answer(raw) {
	case AnswerYes:
		return AnswerYes, nil
	case AnswerNo:
		return AnswerNo, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAnswer, raw)
}

// Question is a single immutable inventory item.
type Question struct {
	ID       string
	Text     string
	Section  Section
	Category Category
	Position int
}

// Bank is the ordered set of questions for one inventory run.
type Bank struct {
	questions []Question
	byID      map[string]Question
}

// NewBank builds a bank from the admin-maintained question collection.
// Questions with an unknown section or category are rejected outright:
// a malformed bank would corrupt every derived progress value.
func NewBank(questions []Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyBank
	}
	qs := make([]Question, len(questions))
	copy(qs, questions)
	sort.SliceStable(qs, func(i, j int) bool { return qs[i].Position < qs[j].Position })

	byID := make(map[string]Question, len(qs))
	for _, q := range qs {
		if !ValidSection(q.Section) {
			return nil, fmt.Errorf("%w: question %s has section %q", ErrInvalidSection, q.ID, q.Section)
		}
		if !ValidCategory(q.Category) {
			return nil, fmt.Errorf("%w: question %s has category %q", ErrInvalidCategory, q.ID, q.Category)
		}
		if _, dup := byID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %s", q.ID)
		}
		byID[q.ID] = q
	}
	return &Bank{questions: qs, byID: byID}, nil
}

// Len returns the total number of questions.
func (b *Bank) Len() int { return len(b.questions) }

// Questions returns the questions in position order.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// Lookup returns the question with the given id.
func (b *Bank) Lookup(id string) (Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// SectionSize returns the number of questions in a section.
func (b *Bank) SectionSize(s Section) int {
	n := 0
	for _, q := range b.questions {
		if q.Section == s {
			n++
		}
	}
	return n
}

// AnswerSet maps question ids to recorded answers. Unanswered questions are
// simply absent.
type AnswerSet map[string]Answer

// Merge returns a copy of the set with one answer recorded. The original is
// left untouched so callers can diff before/after states.
func (a AnswerSet) Merge(questionID string, answer Answer) AnswerSet {
	out := make(AnswerSet, len(a)+1)
	for k, v := range a {
		out[k] = v
	}
	out[questionID] = answer
	return out
}
