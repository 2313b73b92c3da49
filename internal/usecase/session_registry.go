package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/sportsboard/internal/platform/cache"
	"github.com/riskibarqy/sportsboard/internal/platform/id"
)

// Session is one viewer's provider.
type Session struct {
	ID       string
	Provider *DataProvider
	Created  bool
}

// SessionRegistry keeps one DataProvider per viewer session. Idle sessions
// expire with the store TTL.
type SessionRegistry struct {
	store *cache.Store
	repos CatalogRepositories
	opts  ProviderOptions
	ids   id.Generator
}

func NewSessionRegistry(store *cache.Store, repos CatalogRepositories, opts ProviderOptions, ids id.Generator) *SessionRegistry {
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	return &SessionRegistry{
		store: store,
		repos: repos,
		opts:  opts,
		ids:   ids,
	}
}

// Resolve returns the session for sessionID. Missing or malformed IDs get a
// fresh session; a new provider is initialized before it is returned.
func (r *SessionRegistry) Resolve(ctx context.Context, sessionID string) (Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionRegistry.Resolve")
	defer span.End()

	if !id.Valid(sessionID) {
		newID, err := r.ids.NewID()
		if err != nil {
			return Session{}, fmt.Errorf("create session id: %w", err)
		}
		sessionID = newID
	}

	if cached, ok := r.store.Get(ctx, sessionKey(sessionID)); ok {
		if provider, ok := cached.(*DataProvider); ok {
			r.store.Set(ctx, sessionKey(sessionID), provider)
			return Session{ID: sessionID, Provider: provider}, nil
		}
	}

	created := false
	value, err := r.store.GetOrLoad(ctx, sessionKey(sessionID), func(ctx context.Context) (any, error) {
		provider := NewDataProvider(r.repos, r.opts)
		// The provider outlives the request that created it.
		provider.Initialize(context.WithoutCancel(ctx))
		created = true
		return provider, nil
	})
	if err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}

	provider, ok := value.(*DataProvider)
	if !ok {
		return Session{}, fmt.Errorf("unexpected session value type %T", value)
	}

	// A provider whose first cascade failed is served once but not kept, so
	// the next request for this session starts over.
	if created && provider.Snapshot().Error != "" {
		r.store.Delete(ctx, sessionKey(sessionID))
	}

	return Session{ID: sessionID, Provider: provider, Created: created}, nil
}

// Sweep drops expired sessions and returns how many were removed.
func (r *SessionRegistry) Sweep(ctx context.Context) int {
	return r.store.Sweep(ctx)
}

func (r *SessionRegistry) Len() int {
	return r.store.Len()
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}
