package apperror

import (
	"fmt"
	"net/http"
)

// Stable machine-readable error codes surfaced at the HTTP boundary.
const (
	CodeValidation           = "VALIDATION_ERROR"
	CodeDocumentNotFound     = "DOCUMENT_NOT_FOUND"
	CodeConversationNotFound = "CONVERSATION_NOT_FOUND"
	CodeChallengeNotFound    = "CHALLENGE_NOT_FOUND"
	CodeExtraction           = "EXTRACTION_ERROR"
	CodeGeneration           = "GENERATION_ERROR"
	CodeInvalidState         = "INVALID_STATE"
	CodeInternal             = "INTERNAL_ERROR"

	// Framework-level codes for requests that never reach a handler.
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

// AppError carries a stable code alongside the human-readable message so
// clients no longer have to pattern-match on message text.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

var (
	ErrDocumentNotFound = &AppError{
		Code:    CodeDocumentNotFound,
		Message: "Document not found",
		Status:  http.StatusNotFound,
	}
	ErrConversationNotFound = &AppError{
		Code:    CodeConversationNotFound,
		Message: "Conversation not found",
		Status:  http.StatusNotFound,
	}
	ErrChallengeNotFound = &AppError{
		Code:    CodeChallengeNotFound,
		Message: "Challenge not found",
		Status:  http.StatusNotFound,
	}
	// ErrChallengeCompleted rejects a submit on a challenge that already
	// reached its terminal state.
	ErrChallengeCompleted = &AppError{
		Code:    CodeInvalidState,
		Message: "Challenge already completed",
		Status:  http.StatusInternalServerError,
	}
)

// Validation builds a 400-class error for bad or missing input.
func Validation(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// Extraction wraps a text extraction failure.
func Extraction(err error) *AppError {
	return &AppError{
		Code:    CodeExtraction,
		Message: "Failed to extract document text",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// Generation wraps a text generation failure. Generation errors are never
// retried; they abort the current request only.
func Generation(err error) *AppError {
	return &AppError{
		Code:    CodeGeneration,
		Message: "Failed to generate response",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}
