package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stitchdesk/internal/application/guard"
	"github.com/jhoicas/stitchdesk/internal/application/session"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
)

func stateFor(raw string) session.State {
	return session.State{
		User:  &entity.User{ID: 1, Role: raw},
		Token: "tok",
		Role:  entity.ParseRole(raw),
	}
}

func TestEvaluate_SinSesionVaALogin(t *testing.T) {
	for _, allowed := range [][]entity.Role{nil, {entity.RoleAdmin}, {entity.RoleWorker}, {entity.RoleAdmin, entity.RoleWorker}} {
		d := guard.Evaluate(session.State{}, allowed...)
		assert.Equal(t, guard.Decision{Outcome: guard.Redirect, Target: guard.LoginPath}, d)
	}
}

func TestEvaluate_CargandoNoRedirige(t *testing.T) {
	d := guard.Evaluate(session.State{Loading: true}, entity.RoleAdmin)
	assert.Equal(t, guard.Loading, d.Outcome)
	assert.Empty(t, d.Target)
}

func TestEvaluate_AdminEnRutaWorkerVaAlDashboard(t *testing.T) {
	d := guard.Evaluate(stateFor("OWNER"), entity.RoleWorker)
	assert.Equal(t, guard.Decision{Outcome: guard.Redirect, Target: guard.AdminHome}, d)
}

func TestEvaluate_WorkerEnRutaAdminVaASuTrabajo(t *testing.T) {
	d := guard.Evaluate(stateFor("worker"), entity.RoleAdmin)
	assert.Equal(t, guard.Decision{Outcome: guard.Redirect, Target: guard.WorkerHome}, d)
}

func TestEvaluate_WorkerEnRutaWorkerRenderiza(t *testing.T) {
	d := guard.Evaluate(stateFor("WORKER"), entity.RoleWorker)
	assert.Equal(t, guard.Render, d.Outcome)
}

func TestEvaluate_RolDesconocidoVaALogin(t *testing.T) {
	d := guard.Evaluate(stateFor("supervisor"), entity.RoleAdmin, entity.RoleWorker)
	assert.Equal(t, guard.Decision{Outcome: guard.Redirect, Target: guard.LoginPath}, d)
}

func TestEvaluate_Idempotente(t *testing.T) {
	st := stateFor("admin")
	first := guard.Evaluate(st, entity.RoleAdmin)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, guard.Evaluate(st, entity.RoleAdmin))
	}
}
