package reports_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/application/reports"
	"github.com/jhoicas/stitchdesk/internal/domain"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
	"github.com/jhoicas/stitchdesk/internal/domain/repository"
)

type fakeAnalytics struct {
	repository.AnalyticsRepository
	report *entity.SalaryReport
	got    dto.ReportFilter
}

func (f *fakeAnalytics) Salary(_ context.Context, filter dto.ReportFilter) (*entity.SalaryReport, error) {
	f.got = filter
	return f.report, nil
}

type fakeUsers struct {
	repository.UserRepository
	byID map[int64]entity.User
	me   entity.User
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUsers) Me(context.Context) (*entity.User, error) {
	return &f.me, nil
}

type captureRenderer struct {
	got reports.Statement
	err error
}

func (r *captureRenderer) RenderStatement(_ context.Context, s reports.Statement) ([]byte, error) {
	r.got = s
	return []byte("%PDF-fake"), r.err
}

func salaryFixture() *entity.SalaryReport {
	return &entity.SalaryReport{
		TotalSalary: decimal.NewFromInt(750),
		TotalWork:   15,
		DaysWorked:  2,
		Rows: []entity.SalaryRow{
			row(2024, time.May, 2, 10, 500),
			row(2024, time.June, 1, 5, 250),
		},
	}
}

func TestStatement_ForWorker(t *testing.T) {
	analytics := &fakeAnalytics{report: salaryFixture()}
	users := &fakeUsers{byID: map[int64]entity.User{3: {ID: 3, Name: "Rosa"}}}
	renderer := &captureRenderer{}
	uc := reports.NewStatementUseCase(analytics, users, renderer)

	id := int64(3)
	f := dto.ReportFilter{Dates: dto.Between(entity.NewDate(2024, time.May, 1), entity.NewDate(2024, time.June, 30)), UserID: &id}
	doc, st, err := uc.ForWorker(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, "%PDF-fake", string(doc))
	assert.Equal(t, "Rosa", st.Worker.Name)
	assert.Equal(t, "2024-05-01 to 2024-06-30", st.Period())
	require.Len(t, st.Months, 2)
	assert.Equal(t, "2024-05", st.Months[0].Month)
	assert.Equal(t, st, renderer.got)
	assert.Contains(t, st.FileName(), "salary-3-")
}

func TestStatement_ForWorkerSinTrabajador(t *testing.T) {
	uc := reports.NewStatementUseCase(&fakeAnalytics{report: salaryFixture()}, &fakeUsers{}, &captureRenderer{})
	_, _, err := uc.ForWorker(context.Background(), dto.ReportFilter{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStatement_TrabajadorInexistente(t *testing.T) {
	uc := reports.NewStatementUseCase(&fakeAnalytics{report: salaryFixture()}, &fakeUsers{}, &captureRenderer{})
	id := int64(99)
	_, _, err := uc.ForWorker(context.Background(), dto.ReportFilter{UserID: &id})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStatement_MineUsaUsuarioDeSesion(t *testing.T) {
	analytics := &fakeAnalytics{report: salaryFixture()}
	users := &fakeUsers{me: entity.User{ID: 7, Name: "Ana"}}
	uc := reports.NewStatementUseCase(analytics, users, &captureRenderer{})

	_, st, err := uc.Mine(context.Background(), 7, dto.SingleDay(entity.NewDate(2024, time.May, 2)))
	require.NoError(t, err)
	require.NotNil(t, analytics.got.UserID)
	assert.EqualValues(t, 7, *analytics.got.UserID)
	assert.Equal(t, "2024-05-02", st.Period())
}

func TestStatement_ErrorDelRenderer(t *testing.T) {
	renderer := &captureRenderer{err: errors.New("font missing")}
	uc := reports.NewStatementUseCase(&fakeAnalytics{report: salaryFixture()}, &fakeUsers{me: entity.User{ID: 1}}, renderer)
	_, _, err := uc.Mine(context.Background(), 1, dto.DateFilter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render statement")
}
