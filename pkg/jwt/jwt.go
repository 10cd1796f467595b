package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims lo que el shell necesita leer del token emitido por el backend.
// El backend no es uniforme: el id puede venir en "sub", "id" o "user_id".
type Claims struct {
	jwt.RegisteredClaims
	ID     any    `json:"id,omitempty"`
	UserID any    `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
}

// Decoded vista normalizada de los claims.
type Decoded struct {
	UserID    int64
	Email     string
	Role      string // tal cual viene; se normaliza en la sesión
	ExpiresAt time.Time
}

// Expired indica si el token ya venció respecto a now. Sin exp nunca vence.
func (d Decoded) Expired(now time.Time) bool {
	return !d.ExpiresAt.IsZero() && !now.Before(d.ExpiresAt)
}

// Decode lee los claims SIN verificar la firma. La firma la valida el backend;
// aquí solo se usa para decidir navegación por rol.
func Decode(tokenString string) (Decoded, error) {
	if tokenString == "" {
		return Decoded{}, fmt.Errorf("jwt: token vacío")
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return Decoded{}, fmt.Errorf("jwt: token malformado: %w", err)
	}
	out := Decoded{Email: claims.Email, Role: claims.Role}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	for _, raw := range []any{claims.UserID, claims.ID, claims.Subject} {
		if id, ok := toInt64(raw); ok {
			out.UserID = id
			break
		}
	}
	return out, nil
}

func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case float64:
		return int64(x), true
	case string:
		if x == "" {
			return 0, false
		}
		n, err := strconv.ParseInt(x, 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// Generate firma un token HS256 con el formato que emite el backend.
// Lo usan los backends simulados de los tests.
func Generate(secret string, userID int64, email, role string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
		Role:  role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
