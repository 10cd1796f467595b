package session

import (
	"sync"
	"time"

	"github.com/jhoicas/stitchdesk/pkg/logger"
)

// StorageFactory devuelve el storage aislado de una sesión de navegador.
type StorageFactory func(sessionID string) Storage

// Registry una Store por cookie de navegador, más el estado de vista de
// cada página de esa sesión (ver listview).
type Registry struct {
	factory StorageFactory
	log     *logger.Logger
	now     func() time.Time

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	store    *Store
	views    map[string]any
	lastSeen time.Time
}

// NewRegistry construye el registro.
func NewRegistry(factory StorageFactory, log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Nop()
	}
	return &Registry{factory: factory, log: log, now: time.Now, entries: make(map[string]*entry)}
}

// Store devuelve (creando si hace falta) la Store de la sesión.
func (r *Registry) Store(sessionID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entryLocked(sessionID).store
}

// View devuelve la vista guardada bajo key o la crea con build. Las vistas
// viven mientras viva la sesión del navegador.
func (r *Registry) View(sessionID, key string, build func() any) any {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := r.entryLocked(sessionID)
	v, ok := e.views[key]
	if !ok {
		v = build()
		e.views[key] = v
	}
	return v
}

// ResetViews descarta las vistas de la sesión (tras login/logout no debe
// quedar nada de la identidad anterior).
func (r *Registry) ResetViews(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[sessionID]; ok {
		e.views = make(map[string]any)
	}
}

// Sweep libera las entradas en memoria sin actividad desde maxIdle. Lo
// persistido queda en el storage y se restaura en la próxima visita.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.now().Add(-maxIdle)
	removed := 0
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			delete(r.entries, id)
			removed++
		}
	}
	if removed > 0 {
		r.log.Debug().Int("removed", removed).Msg("sesiones inactivas liberadas")
	}
	return removed
}

func (r *Registry) entryLocked(sessionID string) *entry {
	e, ok := r.entries[sessionID]
	if !ok {
		e = &entry{
			store: NewStore(r.factory(sessionID), r.log),
			views: make(map[string]any),
		}
		r.entries[sessionID] = e
	}
	e.lastSeen = r.now()
	return e
}
