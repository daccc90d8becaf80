// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AcademicPrediction is the predicate function for academicprediction builders.
type AcademicPrediction func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// ForumComment is the predicate function for forumcomment builders.
type ForumComment func(*sql.Selector)

// ForumPost is the predicate function for forumpost builders.
type ForumPost func(*sql.Selector)

// HollandQuestion is the predicate function for hollandquestion builders.
type HollandQuestion func(*sql.Selector)

// Institution is the predicate function for institution builders.
type Institution func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// PsychologicalPrediction is the predicate function for psychologicalprediction builders.
type PsychologicalPrediction func(*sql.Selector)

// TutorGroup is the predicate function for tutorgroup builders.
type TutorGroup func(*sql.Selector)

// TutorRequest is the predicate function for tutorrequest builders.
type TutorRequest func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserSession is the predicate function for usersession builders.
type UserSession func(*sql.Selector)
