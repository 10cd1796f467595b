package backend

import (
	"net/url"
	"strconv"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
)

// query arma query params omitiendo vacíos: un filtro sin valor significa
// "todos" y el backend no debe recibir la clave.
type query struct {
	v url.Values
}

func newQuery() *query { return &query{v: url.Values{}} }

func (q *query) str(key, val string) *query {
	if val != "" {
		q.v.Set(key, val)
	}
	return q
}

func (q *query) id(key string, val *int64) *query {
	if val != nil {
		q.v.Set(key, strconv.FormatInt(*val, 10))
	}
	return q
}

func (q *query) date(key string, d entity.Date) *query {
	return q.str(key, d.String())
}

// dates emite startDate/endDate del modo activo.
func (q *query) dates(f dto.DateFilter) *query {
	start, end := f.Bounds()
	return q.date("startDate", start).date("endDate", end)
}

func (q *query) values() url.Values { return q.v }

func idPath(base string, id int64) string {
	return base + "/" + strconv.FormatInt(id, 10)
}
