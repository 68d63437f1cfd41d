package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShubhamChaudhary05/documindAI/internal/bootstrap"
	"github.com/ShubhamChaudhary05/documindAI/internal/config"
	"github.com/ShubhamChaudhary05/documindAI/internal/controller"
	"github.com/ShubhamChaudhary05/documindAI/internal/repository/memory"
	"github.com/ShubhamChaudhary05/documindAI/internal/server"
	"github.com/ShubhamChaudhary05/documindAI/internal/service"
	"github.com/ShubhamChaudhary05/documindAI/pkg/extract"
	"github.com/ShubhamChaudhary05/documindAI/pkg/llm"
)

type stubProvider struct {
	mu      sync.Mutex
	prompts []string
	reply   func(prompt string) (string, error)
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()
	if s.reply == nil {
		return "stub reply", nil
	}
	return s.reply(prompt)
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestServer(t *testing.T, stub *stubProvider) *server.Server {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Port = "0"
	cfg.App.CorsAllowedOrigins = "*"
	cfg.Upload.Dir = t.TempDir()
	cfg.Upload.MaxSizeMB = 16

	documentRepo := memory.NewDocumentRepository(0)
	conversationRepo := memory.NewConversationRepository(0)
	challengeRepo := memory.NewChallengeRepository(0)

	documentService := service.NewDocumentService(documentRepo, extract.New(), stub, nopLogger{}, cfg.Upload.Dir)
	conversationService := service.NewConversationService(conversationRepo, documentRepo, stub, nopLogger{})
	challengeService := service.NewChallengeService(challengeRepo, documentRepo, stub, nopLogger{})

	container := &bootstrap.Container{
		Logger:                 nopLogger{},
		DocumentController:     controller.NewDocumentController(documentService),
		ConversationController: controller.NewConversationController(conversationService),
		ChallengeController:    controller.NewChallengeController(challengeService),
	}

	return server.New(cfg, container)
}

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("document", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func jsonRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out), "body: %s", string(data))
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})

	resp, err := srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "healthy", body.Status)
	assert.NotEmpty(t, body.Timestamp)
}

func TestUploadAndGetDocument(t *testing.T) {
	stub := &stubProvider{reply: func(string) (string, error) { return "A summary.", nil }}
	srv := newTestServer(t, stub)

	resp, err := srv.GetApp().Test(uploadRequest(t, "doc.txt", []byte("The sky is blue.")))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var uploaded struct {
		Document struct {
			Id       int    `json:"id"`
			Filename string `json:"filename"`
			Summary  string `json:"summary"`
		} `json:"document"`
	}
	decodeBody(t, resp, &uploaded)
	assert.Equal(t, 1, uploaded.Document.Id)
	assert.Equal(t, "doc.txt", uploaded.Document.Filename)
	assert.Equal(t, "A summary.", uploaded.Document.Summary)

	resp, err = srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/api/documents/1", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched struct {
		Document struct {
			Content string `json:"content"`
		} `json:"document"`
	}
	decodeBody(t, resp, &fetched)
	assert.Equal(t, "The sky is blue.", fetched.Document.Content)
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})

	resp, err := srv.GetApp().Test(uploadRequest(t, "letter.docx", []byte("hello")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Unsupported file type. Please upload PDF or TXT files.", body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
}

func TestUploadWithoutFile(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})

	req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", strings.NewReader(""))
	resp, err := srv.GetApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "No file uploaded", body.Error)
}

func TestGetDocumentNotFound(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})

	resp, err := srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/api/documents/42", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Document not found", body.Error)
	assert.Equal(t, "DOCUMENT_NOT_FOUND", body.Code)
}

func TestAskFlowKeepsConversation(t *testing.T) {
	stub := &stubProvider{reply: func(p string) (string, error) {
		if strings.Contains(p, "summarization expert") {
			return "A summary.", nil
		}
		return "The document says the sky is blue.", nil
	}}
	srv := newTestServer(t, stub)

	resp, err := srv.GetApp().Test(uploadRequest(t, "doc.txt", []byte("The sky is blue.")))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = srv.GetApp().Test(jsonRequest(t, http.MethodPost, "/api/conversations/ask", map[string]interface{}{
		"documentId": 1,
		"question":   "What color is the sky?",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var first struct {
		Answer         string `json:"answer"`
		ConversationId int    `json:"conversationId"`
	}
	decodeBody(t, resp, &first)
	assert.NotEmpty(t, first.Answer)
	assert.Equal(t, 1, first.ConversationId)

	resp, err = srv.GetApp().Test(jsonRequest(t, http.MethodPost, "/api/conversations/ask", map[string]interface{}{
		"documentId":     1,
		"question":       "Why?",
		"conversationId": first.ConversationId,
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var second struct {
		ConversationId int `json:"conversationId"`
	}
	decodeBody(t, resp, &second)
	assert.Equal(t, first.ConversationId, second.ConversationId)

	stub.mu.Lock()
	last := stub.prompts[len(stub.prompts)-1]
	stub.mu.Unlock()
	assert.Contains(t, last, "user: What color is the sky?")

	resp, err = srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/api/conversations/1", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched struct {
		Conversation struct {
			Mode     string `json:"mode"`
			Messages []struct {
				Role string `json:"role"`
			} `json:"messages"`
		} `json:"conversation"`
	}
	decodeBody(t, resp, &fetched)
	assert.Equal(t, "ask", fetched.Conversation.Mode)
	assert.Len(t, fetched.Conversation.Messages, 4)
}

func TestGetConversationNotFound(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})

	resp, err := srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/api/conversations/3", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body struct {
		Code string `json:"code"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "CONVERSATION_NOT_FOUND", body.Code)
}

func TestAskUnknownDocumentReturns404(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})

	resp, err := srv.GetApp().Test(jsonRequest(t, http.MethodPost, "/api/conversations/ask", map[string]interface{}{
		"documentId": 9,
		"question":   "?",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAskMissingQuestionIsRejected(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})

	resp, err := srv.GetApp().Test(jsonRequest(t, http.MethodPost, "/api/conversations/ask", map[string]interface{}{
		"documentId": 1,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChallengeFlow(t *testing.T) {
	stub := &stubProvider{reply: func(p string) (string, error) {
		switch {
		case strings.Contains(p, "summarization expert"):
			return "A summary.", nil
		case strings.Contains(p, "comprehension questions"):
			return `{"questions": ["Q1?", "Q2?", "Q3?"]}`, nil
		default:
			return "Thoughtful evaluation.", nil
		}
	}}
	srv := newTestServer(t, stub)

	resp, err := srv.GetApp().Test(uploadRequest(t, "doc.txt", []byte("The sky is blue.")))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = srv.GetApp().Test(jsonRequest(t, http.MethodPost, "/api/challenges/start", map[string]interface{}{
		"documentId": 1,
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var started struct {
		ChallengeId    int    `json:"challengeId"`
		Question       string `json:"question"`
		QuestionNumber int    `json:"questionNumber"`
		TotalQuestions int    `json:"totalQuestions"`
	}
	decodeBody(t, resp, &started)
	assert.Equal(t, "Q1?", started.Question)
	assert.Equal(t, 1, started.QuestionNumber)
	assert.Equal(t, 3, started.TotalQuestions)

	for i := 1; i <= 3; i++ {
		resp, err = srv.GetApp().Test(jsonRequest(t, http.MethodPost, "/api/challenges/answer", map[string]interface{}{
			"challengeId": started.ChallengeId,
			"answer":      "my answer",
		}))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var submitted struct {
			Evaluation     string `json:"evaluation"`
			IsCompleted    bool   `json:"isCompleted"`
			QuestionNumber int    `json:"questionNumber"`
			NextQuestion   string `json:"nextQuestion"`
		}
		decodeBody(t, resp, &submitted)
		assert.Equal(t, "Thoughtful evaluation.", submitted.Evaluation)
		assert.Equal(t, i, submitted.QuestionNumber)
		assert.Equal(t, i == 3, submitted.IsCompleted)
	}

	// A fourth submit hits the terminal state.
	resp, err = srv.GetApp().Test(jsonRequest(t, http.MethodPost, "/api/challenges/answer", map[string]interface{}{
		"challengeId": started.ChallengeId,
		"answer":      "again",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var failed struct {
		Code string `json:"code"`
	}
	decodeBody(t, resp, &failed)
	assert.Equal(t, "INVALID_STATE", failed.Code)

	resp, err = srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/api/challenges/1", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched struct {
		Challenge struct {
			Completed       bool     `json:"completed"`
			CurrentQuestion int      `json:"currentQuestion"`
			Questions       []string `json:"questions"`
		} `json:"challenge"`
	}
	decodeBody(t, resp, &fetched)
	assert.True(t, fetched.Challenge.Completed)
	assert.Equal(t, 3, fetched.Challenge.CurrentQuestion)
	assert.Len(t, fetched.Challenge.Questions, 3)
}

func TestChallengeStartWithMalformedGeneration(t *testing.T) {
	stub := &stubProvider{reply: func(p string) (string, error) {
		if strings.Contains(p, "summarization expert") {
			return "A summary.", nil
		}
		return "not json at all", nil
	}}
	srv := newTestServer(t, stub)

	resp, err := srv.GetApp().Test(uploadRequest(t, "doc.txt", []byte("The sky is blue.")))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = srv.GetApp().Test(jsonRequest(t, http.MethodPost, "/api/challenges/start", map[string]interface{}{
		"documentId": 1,
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var started struct {
		Question       string `json:"question"`
		TotalQuestions int    `json:"totalQuestions"`
	}
	decodeBody(t, resp, &started)
	assert.Equal(t, 3, started.TotalQuestions)
	assert.Equal(t, "What are the main themes or key points discussed in this document?", started.Question)
}

func TestUnknownRouteCode(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})

	resp, err := srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body struct {
		Code string `json:"code"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestWrongMethodCode(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})

	resp, err := srv.GetApp().Test(httptest.NewRequest(http.MethodDelete, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	var body struct {
		Code string `json:"code"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "METHOD_NOT_ALLOWED", body.Code)
}

func TestChallengeNotFound(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})

	resp, err := srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/api/challenges/8", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body struct {
		Code string `json:"code"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "CHALLENGE_NOT_FOUND", body.Code)
}
