package memory

import (
	"time"

	"ai-travelmate-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps live conversation state in process memory. The
// durable turn log lives in Postgres; losing this cache only costs the
// traveller their collected slots, not their history.
type SessionRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	// Purge expired sessions at a fraction of the TTL so memory tracks load
	cleanup := ttl / 6
	if cleanup < time.Minute {
		cleanup = time.Minute
	}
	return &SessionRepository{
		cache: cache.New(ttl, cleanup),
		ttl:   ttl,
	}
}

// Save resets the expiration clock. A session stays alive as long as the
// traveller keeps talking.
func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, r.ttl)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
