package dto

import "time"

type StartChallengeRequest struct {
	DocumentId int `json:"documentId" validate:"required"`
}

type StartChallengeResponse struct {
	ChallengeId    int    `json:"challengeId"`
	Question       string `json:"question"`
	QuestionNumber int    `json:"questionNumber"`
	TotalQuestions int    `json:"totalQuestions"`
}

type SubmitAnswerRequest struct {
	ChallengeId int    `json:"challengeId" validate:"required"`
	Answer      string `json:"answer" validate:"required"`
}

type SubmitAnswerResponse struct {
	Evaluation         string `json:"evaluation"`
	IsCompleted        bool   `json:"isCompleted"`
	QuestionNumber     int    `json:"questionNumber"`
	TotalQuestions     int    `json:"totalQuestions"`
	NextQuestion       string `json:"nextQuestion,omitempty"`
	NextQuestionNumber int    `json:"nextQuestionNumber,omitempty"`
}

type ChallengeDetail struct {
	Id              int       `json:"id"`
	DocumentId      int       `json:"documentId"`
	Questions       []string  `json:"questions"`
	UserAnswers     []string  `json:"userAnswers"`
	Evaluations     []string  `json:"evaluations"`
	CurrentQuestion int       `json:"currentQuestion"`
	Completed       bool      `json:"completed"`
	CreatedAt       time.Time `json:"createdAt"`
}

type GetChallengeResponse struct {
	Challenge ChallengeDetail `json:"challenge"`
}
