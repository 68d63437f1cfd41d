// Package prompt builds the prompts sent to the text-generation provider and
// parses its semi-structured replies. The provider keeps no state between
// calls, so every prompt carries the full document and, for conversations,
// the serialized history.
package prompt

import (
	"fmt"
	"math"
	"strings"

	"github.com/ShubhamChaudhary05/documindAI/pkg/llm"
)

// Literal fallbacks substituted when the provider returns an empty reply.
const (
	FallbackSummaryText    = "Unable to generate summary"
	FallbackAnswerText     = "Unable to provide answer"
	FallbackEvaluationText = "Unable to evaluate answer"
)

// Summary asks for a concise document summary.
func Summary(content string) string {
	var b strings.Builder
	b.WriteString("You are a document summarization expert. Create a concise summary that captures the main points and key insights of this document. Keep the summary under 150 words.\n\n")
	b.WriteString("Document:\n")
	b.WriteString(content)
	b.WriteString("\n\nPlease provide a concise summary (maximum 150 words):")
	return b.String()
}

// Answer constrains the reply to the document and embeds the prior
// conversation so the provider can stay stateless.
func Answer(content string, history []llm.Message, question string) string {
	var b strings.Builder
	b.WriteString("You are an intelligent document analysis assistant. Answer questions based ONLY on the provided document content. Always include specific references to sections, paragraphs, or quotes from the document to justify your answers. If the document doesn't contain information to answer the question, clearly state that. Format your response with the answer followed by a reference section.\n\n")
	b.WriteString("Document content:\n")
	b.WriteString(content)
	b.WriteString("\n\nPrevious conversation:\n")
	b.WriteString(serializeHistory(history))
	b.WriteString("\n\nNew question: ")
	b.WriteString(question)
	b.WriteString("\n\nPlease provide your answer with specific references to the document:")
	return b.String()
}

// Questions demands a strict JSON object so the reply can be parsed by
// ParseQuestions.
func Questions(content string) string {
	var b strings.Builder
	b.WriteString("You are an expert at creating thoughtful comprehension questions. Generate exactly 3 challenging questions that test deep understanding, critical thinking, and inference skills based on the document content. Questions should require more than simple recall and should encourage analysis and reasoning.\n\n")
	b.WriteString("Document:\n")
	b.WriteString(content)
	b.WriteString("\n\nPlease create 3 challenging comprehension questions and return them as a JSON object in this exact format:\n")
	b.WriteString(`{"questions": ["Question 1?", "Question 2?", "Question 3?"]}`)
	b.WriteString("\n\nMake sure to return only valid JSON:")
	return b.String()
}

// Evaluation asks for constructive free-text feedback on a submitted answer.
func Evaluation(content, question, userAnswer string) string {
	var b strings.Builder
	b.WriteString("You are an expert evaluator of comprehension answers. Evaluate the user's answer based on accuracy, depth of understanding, and how well it addresses the question. Provide constructive feedback, highlight what was done well, and suggest improvements. Always reference specific parts of the document to support your evaluation.\n\n")
	b.WriteString("Document content:\n")
	b.WriteString(content)
	b.WriteString("\n\nQuestion: ")
	b.WriteString(question)
	b.WriteString("\n\nUser's answer: ")
	b.WriteString(userAnswer)
	b.WriteString("\n\nPlease provide a detailed evaluation with constructive feedback:")
	return b.String()
}

// FallbackSummary is stored when summarization itself fails; the upload must
// still succeed with the document ready for analysis.
func FallbackSummary(content string) string {
	words := int(math.Round(float64(len(content)) / 6.0))
	return fmt.Sprintf("Document uploaded successfully. Summary temporarily unavailable due to AI service issues. The document contains approximately %d words and is ready for analysis.", words)
}

func serializeHistory(history []llm.Message) string {
	lines := make([]string, 0, len(history))
	for _, msg := range history {
		lines = append(lines, msg.Role+": "+msg.Content)
	}
	return strings.Join(lines, "\n")
}
