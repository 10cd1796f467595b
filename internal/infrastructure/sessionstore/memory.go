// Package sessionstore implementa session.Storage: el equivalente del
// local storage del navegador para el shell (memoria, archivo o Redis).
package sessionstore

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/stitchdesk/internal/application/session"
)

var (
	_ session.Storage = (*Memory)(nil)
	_ session.Storage = (*Prefixed)(nil)
)

// Memory storage en proceso. Se pierde al reiniciar. Con ttl > 0 cada
// clave vence ttl después de su último Set, igual que en Redis.
type Memory struct {
	mu   sync.RWMutex
	data map[string]memEntry
	ttl  time.Duration
	now  func() time.Time
}

type memEntry struct {
	value string
	setAt time.Time
}

// NewMemory construye un storage vacío sin vencimiento.
func NewMemory() *Memory {
	return NewMemoryTTL(0)
}

// NewMemoryTTL construye un storage vacío cuyas claves vencen tras ttl.
func NewMemoryTTL(ttl time.Duration) *Memory {
	return &Memory{data: make(map[string]memEntry), ttl: ttl, now: time.Now}
}

func (m *Memory) expired(e memEntry, now time.Time) bool {
	return m.ttl > 0 && now.Sub(e.setAt) >= m.ttl
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.data[key]
	if !ok || m.expired(e, m.now()) {
		return "", false, nil
	}
	return e.value, true, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = memEntry{value: value, setAt: m.now()}
	return nil
}

func (m *Memory) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

// Purge borra las claves vencidas y devuelve cuántas. Sin ttl no borra nada.
func (m *Memory) Purge(_ context.Context) (int64, error) {
	if m.ttl <= 0 {
		return 0, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	var n int64
	for k, e := range m.data {
		if m.expired(e, now) {
			delete(m.data, k)
			n++
		}
	}
	return n, nil
}

// Prefixed aísla las claves de una sesión dentro de un storage compartido.
type Prefixed struct {
	base   session.Storage
	prefix string
}

// WithPrefix envuelve base anteponiendo "prefix:" a cada clave.
func WithPrefix(base session.Storage, prefix string) *Prefixed {
	return &Prefixed{base: base, prefix: prefix + ":"}
}

func (p *Prefixed) Get(ctx context.Context, key string) (string, bool, error) {
	return p.base.Get(ctx, p.prefix+key)
}

func (p *Prefixed) Set(ctx context.Context, key, value string) error {
	return p.base.Set(ctx, p.prefix+key, value)
}

func (p *Prefixed) Delete(ctx context.Context, keys ...string) error {
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = p.prefix + k
	}
	return p.base.Delete(ctx, full...)
}

// MemoryFactory un único Memory compartido, aislado por sesión.
func MemoryFactory(shared *Memory) session.StorageFactory {
	return func(sessionID string) session.Storage {
		return WithPrefix(shared, sessionID)
	}
}
