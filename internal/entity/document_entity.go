package entity

import "time"

// Document is the stored extracted text plus summary for one uploaded file.
// Records are immutable after creation.
type Document struct {
	Id         int
	Filename   string
	Content    string
	Summary    string
	UploadedAt time.Time
}
