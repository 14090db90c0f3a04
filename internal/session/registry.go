package session

import (
	"sync"
	"time"

	"github.com/BruksfildServices01/studio-gestor/internal/models"
	"github.com/BruksfildServices01/studio-gestor/internal/store"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/appointment"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/comanda"
)

// Factory builds the stateful use cases of a new session.
type Factory func(owner string) (*appointment.Schedule, *comanda.Builder)

// Registry hands out one Session per owner, created on first use.
type Registry struct {
	prefs store.Store[models.Preferences]
	build Factory

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry(prefs store.Store[models.Preferences], build Factory) *Registry {
	return &Registry{
		prefs:    prefs,
		build:    build,
		sessions: map[string]*Session{},
	}
}

// Get returns owner's session. The factory runs outside the registry lock;
// when two first requests race, the first session stored wins.
func (r *Registry) Get(owner string) *Session {
	r.mu.Lock()
	s, ok := r.sessions[owner]
	r.mu.Unlock()
	if ok {
		return s
	}

	sched, draft := r.build(owner)
	fresh := &Session{
		owner:    owner,
		prefs:    r.prefs,
		Schedule: sched,
		Comanda:  draft,
		now:      time.Now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[owner]; ok {
		return s
	}
	r.sessions[owner] = fresh
	return fresh
}

// Forget drops owner's session; the next Get starts fresh.
func (r *Registry) Forget(owner string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, owner)
}
