package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jhoicas/stitchdesk/internal/application/session"
)

var _ session.Storage = (*File)(nil)

// File guarda las claves de una sesión en un JSON (<dir>/<name>.json).
// Sobrevive reinicios del proceso, como el local storage a una recarga.
type File struct {
	path string
	mu   sync.Mutex
}

// NewFile abre (sin crear todavía) el archivo de la sesión name.
func NewFile(dir, name string) (*File, error) {
	if name == "" || strings.ContainsAny(name, `/\.`) {
		return nil, fmt.Errorf("sessionstore: nombre de sesión inválido %q", name)
	}
	return &File{path: filepath.Join(dir, name+".json")}, nil
}

func (f *File) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := f.read()
	if err != nil {
		return "", false, err
	}
	v, ok := data[key]
	return v, ok, nil
}

func (f *File) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := f.read()
	if err != nil {
		// Archivo corrupto: se reemplaza en vez de bloquear el login.
		data = map[string]string{}
	}
	data[key] = value
	return f.write(data)
}

func (f *File) Delete(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := f.read()
	if err != nil {
		return os.Remove(f.path)
	}
	for _, k := range keys {
		delete(data, k)
	}
	if len(data) == 0 {
		if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}
	return f.write(data)
}

func (f *File) read() (map[string]string, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sessionstore: leer %s: %w", f.path, err)
	}
	data := map[string]string{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("sessionstore: %s corrupto: %w", f.path, err)
	}
	return data, nil
}

// write escribe a un temporal y renombra para no dejar archivos a medias.
func (f *File) write(data map[string]string) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("sessionstore: crear directorio: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("sessionstore: escribir: %w", err)
	}
	return os.Rename(tmp, f.path)
}

// FileFactory un archivo por sesión dentro de dir. Un id inválido recibe
// un storage en memoria que no persiste nada.
func FileFactory(dir string) session.StorageFactory {
	return func(sessionID string) session.Storage {
		f, err := NewFile(dir, sessionID)
		if err != nil {
			return NewMemory()
		}
		return f
	}
}
