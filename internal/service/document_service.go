package service

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ShubhamChaudhary05/documindAI/internal/dto"
	"github.com/ShubhamChaudhary05/documindAI/internal/pkg/apperror"
	"github.com/ShubhamChaudhary05/documindAI/internal/pkg/logger"
	"github.com/ShubhamChaudhary05/documindAI/internal/repository/memory"
	"github.com/ShubhamChaudhary05/documindAI/pkg/extract"
	"github.com/ShubhamChaudhary05/documindAI/pkg/llm"
	"github.com/ShubhamChaudhary05/documindAI/pkg/prompt"
)

type IDocumentService interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (*dto.UploadDocumentResponse, error)
	Get(ctx context.Context, id int) (*dto.GetDocumentResponse, error)
}

type documentService struct {
	repo      *memory.DocumentRepository
	extractor extract.Extractor
	provider  llm.Provider
	log       logger.ILogger
	uploadDir string
}

func NewDocumentService(
	repo *memory.DocumentRepository,
	extractor extract.Extractor,
	provider llm.Provider,
	log logger.ILogger,
	uploadDir string,
) IDocumentService {
	return &documentService{
		repo:      repo,
		extractor: extractor,
		provider:  provider,
		log:       log,
		uploadDir: uploadDir,
	}
}

// Upload validates the file, extracts its text, summarizes it and stores the
// document. A summarization failure does not fail the upload: the document
// is stored with a fallback summary and stays ready for analysis.
func (s *documentService) Upload(ctx context.Context, file *multipart.FileHeader) (*dto.UploadDocumentResponse, error) {
	if file == nil {
		return nil, apperror.Validation("No file uploaded")
	}
	if file.Filename == "" {
		return nil, apperror.Validation("No file selected")
	}

	kind, ok := extract.KindForFilename(file.Filename)
	if !ok {
		return nil, apperror.Validation("Unsupported file type. Please upload PDF or TXT files.")
	}

	tempPath, err := s.saveTemp(file)
	if err != nil {
		return nil, apperror.Extraction(err)
	}
	defer os.Remove(tempPath)

	content, err := s.extractor.Extract(tempPath, kind)
	if err != nil {
		return nil, apperror.Extraction(err)
	}
	if strings.TrimSpace(content) == "" {
		return nil, apperror.Validation("Document appears to be empty or unreadable")
	}

	summary, err := s.provider.Generate(ctx, prompt.Summary(content))
	if err != nil {
		s.log.Warn("document", "summarization failed, using fallback", map[string]interface{}{
			"filename": file.Filename,
			"error":    err.Error(),
		})
		summary = prompt.FallbackSummary(content)
	} else if summary == "" {
		summary = prompt.FallbackSummaryText
	}

	doc := s.repo.Create(file.Filename, content, summary)
	s.log.Info("document", "document uploaded", map[string]interface{}{
		"id":       doc.Id,
		"filename": doc.Filename,
		"bytes":    len(doc.Content),
	})

	return &dto.UploadDocumentResponse{
		Document: dto.DocumentSummary{
			Id:         doc.Id,
			Filename:   doc.Filename,
			Summary:    doc.Summary,
			UploadedAt: doc.UploadedAt,
		},
	}, nil
}

func (s *documentService) Get(ctx context.Context, id int) (*dto.GetDocumentResponse, error) {
	doc, ok := s.repo.Get(id)
	if !ok {
		return nil, apperror.ErrDocumentNotFound
	}
	return &dto.GetDocumentResponse{
		Document: dto.DocumentDetail{
			Id:         doc.Id,
			Filename:   doc.Filename,
			Content:    doc.Content,
			Summary:    doc.Summary,
			UploadedAt: doc.UploadedAt,
		},
	}, nil
}

// saveTemp writes the upload to a uniquely named file under the upload dir;
// the caller removes it once extraction is done.
func (s *documentService) saveTemp(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	tempPath := filepath.Join(s.uploadDir, uuid.NewString()+strings.ToLower(filepath.Ext(file.Filename)))
	dst, err := os.Create(tempPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(tempPath)
		return "", err
	}
	return tempPath, nil
}
