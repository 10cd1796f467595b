// Package guard decide si una ruta protegida se muestra, espera o redirige.
// Es una función pura del estado de sesión y de los roles permitidos.
package guard

import (
	"github.com/jhoicas/stitchdesk/internal/application/session"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
)

// Rutas fijas del shell.
const (
	LoginPath  = "/login"
	AdminHome  = "/admin/dashboard"
	WorkerHome = "/worker/work"
)

// Outcome resultado de evaluar la guarda.
type Outcome int

const (
	Render Outcome = iota
	Loading
	Redirect
)

// Decision resultado con destino cuando Outcome es Redirect.
type Decision struct {
	Outcome Outcome
	Target  string
}

// HomeFor pantalla inicial de cada rol.
func HomeFor(role entity.Role) (string, bool) {
	switch role {
	case entity.RoleAdmin:
		return AdminHome, true
	case entity.RoleWorker:
		return WorkerHome, true
	default:
		return "", false
	}
}

// Evaluate aplica, en orden:
//  1. restauración en curso → Loading (sin redirigir todavía);
//  2. sin usuario → login;
//  3. rol fuera de allowed → home del rol, o login si el rol es desconocido;
//  4. en otro caso → Render.
func Evaluate(st session.State, allowed ...entity.Role) Decision {
	if st.Loading {
		return Decision{Outcome: Loading}
	}
	if !st.IsAuthenticated() {
		return Decision{Outcome: Redirect, Target: LoginPath}
	}
	for _, r := range allowed {
		if r == st.Role && r != entity.RoleUnknown {
			return Decision{Outcome: Render}
		}
	}
	if home, ok := HomeFor(st.Role); ok {
		return Decision{Outcome: Redirect, Target: home}
	}
	return Decision{Outcome: Redirect, Target: LoginPath}
}
