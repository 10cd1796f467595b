// Package listview implementa el patrón de listado filtrado que comparten
// todas las páginas: filtro → carga en paralelo → success/error, mutación →
// banner temporal → recarga.
//
// Cada Reload toma un número de secuencia creciente; la respuesta de una carga
// superada por otra más nueva se descarta, así un filtro viejo nunca pisa
// los datos del filtro actual.
package listview

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/domain"
)

// DefaultBannerDelay tiempo que permanece visible el banner de éxito.
const DefaultBannerDelay = 3 * time.Second

// State estado de carga de una vista.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

// Loader trae todo lo que muestra la página para un filtro. Si cualquier
// parte falla, la carga completa falla.
type Loader[F, T any] func(ctx context.Context, filter F) (T, error)

// Snapshot copia inmutable del estado de la vista.
type Snapshot[F, T any] struct {
	State   State
	Seq     uint64
	Filter  F
	Data    T
	Error   string
	Success string
}

// Page convierte el snapshot en la respuesta JSON de la página.
func (s Snapshot[F, T]) Page() dto.PageResponse {
	page := dto.PageResponse{
		State:   string(s.State),
		Seq:     s.Seq,
		Filter:  s.Filter,
		Error:   s.Error,
		Success: s.Success,
	}
	if s.State == StateSuccess {
		page.Data = s.Data
	}
	return page
}

// View vista de listado de una sesión. El Loader llega en cada llamada
// porque la conexión al backend se ata a cada request.
type View[F, T any] struct {
	bannerDelay time.Duration

	mu        sync.Mutex
	seq       uint64
	state     State
	filter    F
	data      T
	errMsg    string
	success   string
	bannerGen uint64
	timer     *time.Timer
}

// New crea una vista con el filtro inicial. bannerDelay <= 0 usa el de por
// defecto.
func New[F, T any](initial F, bannerDelay time.Duration) *View[F, T] {
	if bannerDelay <= 0 {
		bannerDelay = DefaultBannerDelay
	}
	return &View[F, T]{bannerDelay: bannerDelay, state: StateIdle, filter: initial}
}

// Filter filtro vigente.
func (v *View[F, T]) Filter() F {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

// Reload carga con el filtro dado. Devuelve el estado resultante; si la
// carga fue superada por otra, devuelve el estado actual sin aplicar la
// respuesta vieja.
func (v *View[F, T]) Reload(ctx context.Context, filter F, load Loader[F, T]) Snapshot[F, T] {
	v.mu.Lock()
	v.seq++
	seq := v.seq
	v.filter = filter
	v.state = StateLoading
	v.mu.Unlock()

	data, err := load(ctx, filter)

	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.seq {
		return v.snapshotLocked()
	}
	var zero T
	if err != nil {
		v.state = StateError
		v.errMsg = domain.Message(err)
		v.data = zero
	} else {
		v.state = StateSuccess
		v.errMsg = ""
		v.data = data
	}
	return v.snapshotLocked()
}

// Refresh recarga con el filtro vigente.
func (v *View[F, T]) Refresh(ctx context.Context, load Loader[F, T]) Snapshot[F, T] {
	return v.Reload(ctx, v.Filter(), load)
}

// Mutate ejecuta un comando de escritura. El comando no devuelve datos: si
// tiene éxito se muestra el banner y se recarga la lista entera; si falla, la
// lista no se toca y el error vuelve al llamador para mostrarlo en el
// formulario.
func (v *View[F, T]) Mutate(ctx context.Context, successMsg string, cmd func(ctx context.Context) error, load Loader[F, T]) (Snapshot[F, T], error) {
	if err := cmd(ctx); err != nil {
		return v.Snapshot(), err
	}
	v.showBanner(successMsg)
	return v.Refresh(ctx, load), nil
}

func (v *View[F, T]) showBanner(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.success = msg
	v.bannerGen++
	gen := v.bannerGen
	if v.timer != nil {
		v.timer.Stop()
	}
	v.timer = time.AfterFunc(v.bannerDelay, func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if v.bannerGen == gen {
			v.success = ""
		}
	})
}

// Snapshot estado actual.
func (v *View[F, T]) Snapshot() Snapshot[F, T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

func (v *View[F, T]) snapshotLocked() Snapshot[F, T] {
	return Snapshot[F, T]{
		State:   v.state,
		Seq:     v.seq,
		Filter:  v.filter,
		Data:    v.data,
		Error:   v.errMsg,
		Success: v.success,
	}
}

// Close detiene el temporizador del banner.
func (v *View[F, T]) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.timer != nil {
		v.timer.Stop()
	}
}
