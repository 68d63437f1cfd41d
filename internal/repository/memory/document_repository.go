package memory

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/ShubhamChaudhary05/documindAI/internal/entity"
)

// DocumentRepository holds uploaded documents in process memory. Documents
// are immutable once stored, so reads need no locking beyond the cache's own.
type DocumentRepository struct {
	cache  *cache.Cache
	lastId int64
}

func NewDocumentRepository(ttl time.Duration) *DocumentRepository {
	return &DocumentRepository{cache: newEntityCache(ttl)}
}

// Create assigns the next id, stamps the upload time and stores the record.
// Ids are drawn from an atomic counter and never collide, even under
// concurrent uploads.
func (r *DocumentRepository) Create(filename, content, summary string) *entity.Document {
	doc := &entity.Document{
		Id:         int(atomic.AddInt64(&r.lastId, 1)),
		Filename:   filename,
		Content:    content,
		Summary:    summary,
		UploadedAt: time.Now(),
	}
	r.cache.Set(strconv.Itoa(doc.Id), doc, cache.DefaultExpiration)
	return doc
}

func (r *DocumentRepository) Get(id int) (*entity.Document, bool) {
	if x, found := r.cache.Get(strconv.Itoa(id)); found {
		return x.(*entity.Document), true
	}
	return nil, false
}
