package memory

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/ShubhamChaudhary05/documindAI/internal/entity"
)

// ConversationRepository holds chat threads in process memory.
type ConversationRepository struct {
	cache  *cache.Cache
	locks  *lockMap
	lastId int64
}

func NewConversationRepository(ttl time.Duration) *ConversationRepository {
	return &ConversationRepository{
		cache: newEntityCache(ttl),
		locks: newLockMap(),
	}
}

// Create allocates a new conversation bound to a document, with an empty
// message history.
func (r *ConversationRepository) Create(documentId int) *entity.Conversation {
	conv := &entity.Conversation{
		Id:         int(atomic.AddInt64(&r.lastId, 1)),
		DocumentId: documentId,
		Mode:       entity.ConversationModeAsk,
		Messages:   []entity.Message{},
		CreatedAt:  time.Now(),
	}
	r.cache.Set(strconv.Itoa(conv.Id), conv, cache.DefaultExpiration)
	return conv
}

func (r *ConversationRepository) Get(id int) (*entity.Conversation, bool) {
	if x, found := r.cache.Get(strconv.Itoa(id)); found {
		return x.(*entity.Conversation), true
	}
	return nil, false
}

// Update re-stores the record, refreshing its retention window.
func (r *ConversationRepository) Update(conv *entity.Conversation) {
	r.cache.Set(strconv.Itoa(conv.Id), conv, cache.DefaultExpiration)
}

// WithLock serializes fn against all other mutations of the same
// conversation. Different conversations do not contend.
func (r *ConversationRepository) WithLock(id int, fn func() error) error {
	m := r.locks.get(id)
	m.Lock()
	defer m.Unlock()
	return fn()
}
