package memory

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/ShubhamChaudhary05/documindAI/internal/entity"
)

// ChallengeRepository holds quiz sessions in process memory.
type ChallengeRepository struct {
	cache  *cache.Cache
	locks  *lockMap
	lastId int64
}

func NewChallengeRepository(ttl time.Duration) *ChallengeRepository {
	return &ChallengeRepository{
		cache: newEntityCache(ttl),
		locks: newLockMap(),
	}
}

// Create stores a new challenge at question index 0. A challenge created
// with no questions at all is already terminal: there is nothing to answer.
func (r *ChallengeRepository) Create(documentId int, questions []string) *entity.Challenge {
	ch := &entity.Challenge{
		Id:              int(atomic.AddInt64(&r.lastId, 1)),
		DocumentId:      documentId,
		Questions:       questions,
		UserAnswers:     []string{},
		Evaluations:     []string{},
		CurrentQuestion: 0,
		Completed:       len(questions) == 0,
		CreatedAt:       time.Now(),
	}
	r.cache.Set(strconv.Itoa(ch.Id), ch, cache.DefaultExpiration)
	return ch
}

func (r *ChallengeRepository) Get(id int) (*entity.Challenge, bool) {
	if x, found := r.cache.Get(strconv.Itoa(id)); found {
		return x.(*entity.Challenge), true
	}
	return nil, false
}

// Update re-stores the record, refreshing its retention window.
func (r *ChallengeRepository) Update(ch *entity.Challenge) {
	r.cache.Set(strconv.Itoa(ch.Id), ch, cache.DefaultExpiration)
}

// WithLock serializes fn against all other mutations of the same challenge,
// so two concurrent submits cannot both read the same question index.
func (r *ChallengeRepository) WithLock(id int, fn func() error) error {
	m := r.locks.get(id)
	m.Lock()
	defer m.Unlock()
	return fn()
}
