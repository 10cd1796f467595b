package entity_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stitchdesk/internal/domain/entity"
)

func TestParseRole_VariantesDelBackend(t *testing.T) {
	for _, raw := range []string{"admin", "ADMIN", "owner", "OWNER", " Owner "} {
		assert.Equal(t, entity.RoleAdmin, entity.ParseRole(raw), raw)
	}
	for _, raw := range []string{"worker", "WORKER", "Worker"} {
		assert.Equal(t, entity.RoleWorker, entity.ParseRole(raw), raw)
	}
	for _, raw := range []string{"", "manager", "adm"} {
		assert.Equal(t, entity.RoleUnknown, entity.ParseRole(raw), raw)
	}
}

func TestDate_AceptaFechaSimpleYTimestamp(t *testing.T) {
	var payload struct {
		A entity.Date `json:"a"`
		B entity.Date `json:"b"`
		C entity.Date `json:"c"`
	}
	local := time.Date(2024, time.January, 5, 12, 0, 0, 0, time.Local).Format(time.RFC3339)
	raw := `{"a":"2024-01-05","b":"` + local + `","c":null}`
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	assert.Equal(t, "2024-01-05", payload.A.String())
	assert.Equal(t, "2024-01-05", payload.B.String())
	assert.True(t, payload.C.IsZero())

	out, err := json.Marshal(payload.A)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-01-05"`, string(out))
}

func TestDate_Invalida(t *testing.T) {
	var d entity.Date
	assert.Error(t, json.Unmarshal([]byte(`"05/01/2024"`), &d))
}

func TestAttendanceStatus_Valid(t *testing.T) {
	assert.True(t, entity.AttendanceHalfDay.Valid())
	assert.False(t, entity.AttendanceStatus("late").Valid())
}
