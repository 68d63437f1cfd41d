package entity

import "time"

// Challenge is a fixed-size quiz generated from a document, progressed one
// question at a time. Invariants kept by the challenge service:
// len(UserAnswers) == len(Evaluations) == CurrentQuestion, and
// Completed == (CurrentQuestion == len(Questions)). Completed never reverts.
type Challenge struct {
	Id              int
	DocumentId      int
	Questions       []string
	UserAnswers     []string
	Evaluations     []string
	CurrentQuestion int
	Completed       bool
	CreatedAt       time.Time
}
