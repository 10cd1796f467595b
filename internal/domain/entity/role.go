package entity

import (
	"strings"

	"golang.org/x/text/cases"
)

// Role nivel de privilegio normalizado. El backend envía "admin", "ADMIN",
// "owner", "OWNER", "worker" o "WORKER"; se normaliza una sola vez en la
// frontera de la sesión y el resto del código compara Role, nunca strings.
type Role int

const (
	RoleUnknown Role = iota
	RoleAdmin
	RoleWorker
)

var roleFold = cases.Fold()

// ParseRole normaliza el rol crudo. owner equivale a admin.
func ParseRole(raw string) Role {
	switch roleFold.String(strings.TrimSpace(raw)) {
	case "admin", "owner":
		return RoleAdmin
	case "worker":
		return RoleWorker
	default:
		return RoleUnknown
	}
}

// String nombre canónico (minúsculas) del rol.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleWorker:
		return "worker"
	default:
		return "unknown"
	}
}
