package sessionstore

import "time"

// SetClock reemplaza el reloj del storage en pruebas.
func SetClock(m *Memory, now func() time.Time) { m.now = now }
