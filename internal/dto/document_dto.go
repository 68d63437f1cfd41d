package dto

import "time"

// DocumentSummary is the upload response view: content is withheld, the
// client only needs the generated summary.
type DocumentSummary struct {
	Id         int       `json:"id"`
	Filename   string    `json:"filename"`
	Summary    string    `json:"summary"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type UploadDocumentResponse struct {
	Document DocumentSummary `json:"document"`
}

// DocumentDetail is the full stored record.
type DocumentDetail struct {
	Id         int       `json:"id"`
	Filename   string    `json:"filename"`
	Content    string    `json:"content"`
	Summary    string    `json:"summary"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type GetDocumentResponse struct {
	Document DocumentDetail `json:"document"`
}
