package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/EswarAdityaReddy/Foodie/entity"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
)

// Session is the per-client state: who is signed in, what is in the cart
// and what the discovery view is filtered by.
type Session struct {
	ID                 string         `json:"id"`
	CreatedAt          time.Time      `json:"createdAt"`
	User               *entity.User   `json:"user"`
	Cart               entity.Cart    `json:"cart"`
	SelectedCategoryID string         `json:"selectedCategory"`
	SearchQuery        string         `json:"searchQuery"`
	Favorites          []string       `json:"favorites"` // restaurant ids
	Orders             []entity.Order `json:"-"`
}

func (s Session) IsAuthenticated() bool { return s.User != nil }

// SessionStore keeps sessions in memory, evicting the least recently used
// once capacity is reached. Updates to one store are serialized.
type SessionStore struct {
	mu    sync.Mutex
	cache *lru.Cache
	log   *zap.Logger
	now   func() time.Time
}

func NewSessionStore(capacity int, log *zap.Logger) (*SessionStore, error) {
	st := &SessionStore{log: log, now: time.Now}
	cache, err := lru.NewWithEvict(capacity, func(key, _ interface{}) {
		log.Info("session evicted", zap.Any("session_id", key))
	})
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}
	st.cache = cache
	return st, nil
}

// Create starts an anonymous session with an empty cart.
func (st *SessionStore) Create() Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := Session{
		ID:        uuid.NewString(),
		CreatedAt: st.now(),
		Cart:      ClearCart(),
		Favorites: []string{},
		Orders:    []entity.Order{},
	}
	st.cache.Add(s.ID, s)
	return s
}

func (st *SessionStore) Get(id string) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.get(id)
}

func (st *SessionStore) get(id string) (Session, error) {
	v, ok := st.cache.Get(id)
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return v.(Session), nil
}

// Update applies fn to a copy of the session and stores the result unless
// fn returns an error.
func (st *SessionStore) Update(id string, fn func(*Session) error) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, err := st.get(id)
	if err != nil {
		return Session{}, err
	}
	if err := fn(&s); err != nil {
		return Session{}, err
	}
	st.cache.Add(id, s)
	return s, nil
}

func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.cache.Remove(id)
}

func (st *SessionStore) Len() int {
	return st.cache.Len()
}
