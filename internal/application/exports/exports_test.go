package exports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/application/exports"
	"github.com/jhoicas/stitchdesk/internal/domain"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
)

type fakeExports struct {
	records map[int64]entity.ExportRecord
	filters []dto.ExportFilter
	gets    int
	created []dto.ExportRequest
}

func (f *fakeExports) List(_ context.Context, ef dto.ExportFilter) ([]entity.ExportRecord, error) {
	f.filters = append(f.filters, ef)
	out := make([]entity.ExportRecord, 0, len(f.records))
	for _, r := range f.records {
		out = append(out, r)
	}
	return out, nil
}
func (f *fakeExports) GetByID(_ context.Context, id int64) (*entity.ExportRecord, error) {
	f.gets++
	r, ok := f.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &r, nil
}
func (f *fakeExports) Create(_ context.Context, in dto.ExportRequest) error {
	f.created = append(f.created, in)
	return nil
}
func (f *fakeExports) Update(_ context.Context, id int64, in dto.ExportRequest) error {
	r := f.records[id]
	r.Date = in.Date
	r.CompanyName = in.CompanyName
	r.Quantity = in.Quantity
	r.PricePerUnit = in.PricePerUnit
	r.Description = in.Description
	r.PaymentReceived = in.PaymentReceived
	f.records[id] = r
	return nil
}
func (f *fakeExports) Delete(_ context.Context, id int64) error {
	delete(f.records, id)
	return nil
}
func (f *fakeExports) Descriptions(context.Context) ([]entity.ExportDescription, error) {
	return nil, nil
}
func (f *fakeExports) Companies(context.Context) ([]string, error) {
	return []string{"Acme"}, nil
}
func (f *fakeExports) Stats(context.Context, dto.ExportFilter) (*entity.ExportStats, error) {
	return &entity.ExportStats{}, nil
}

func record() entity.ExportRecord {
	return entity.ExportRecord{
		ID:           5,
		Date:         entity.NewDate(2024, time.April, 2),
		CompanyName:  "Acme",
		Quantity:     40,
		PricePerUnit: decimal.NewFromInt(12),
		Description:  "Shirts",
	}
}

func TestMarkPaid_CambiaIndicadorYConservaCampos(t *testing.T) {
	repo := &fakeExports{records: map[int64]entity.ExportRecord{5: record()}}
	uc := exports.NewUseCase(repo)

	require.NoError(t, uc.MarkPaid(context.Background(), 5, true))
	assert.Equal(t, 1, repo.gets, "lee el registro vigente antes de escribir")
	got := repo.records[5]
	assert.True(t, got.PaymentReceived)
	assert.Equal(t, "Acme", got.CompanyName)
	assert.Equal(t, 40, got.Quantity)
	assert.Equal(t, "12", got.PricePerUnit.String())
	assert.Equal(t, "Shirts", got.Description)

	// La lista recargada refleja el cambio.
	page, err := uc.Load(context.Background(), dto.ExportFilter{})
	require.NoError(t, err)
	require.Len(t, page.Records, 1)
	assert.True(t, page.Records[0].PaymentReceived)

	require.NoError(t, uc.MarkPaid(context.Background(), 5, false))
	assert.False(t, repo.records[5].PaymentReceived)
}

func TestMarkPaid_Inexistente(t *testing.T) {
	uc := exports.NewUseCase(&fakeExports{records: map[int64]entity.ExportRecord{}})
	assert.ErrorIs(t, uc.MarkPaid(context.Background(), 8, true), domain.ErrNotFound)
}

func TestCreate_EmpresaYFechaRequeridas(t *testing.T) {
	repo := &fakeExports{records: map[int64]entity.ExportRecord{}}
	uc := exports.NewUseCase(repo)

	err := uc.Create(context.Background(), dto.ExportRequest{CompanyName: "  ", Date: entity.NewDate(2024, time.April, 2)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.created)

	require.NoError(t, uc.Create(context.Background(), dto.ExportRequest{CompanyName: " Acme ", Date: entity.NewDate(2024, time.April, 2)}))
	assert.Equal(t, "Acme", repo.created[0].CompanyName)
}

func TestLoad_RecortaEmpresaDelFiltro(t *testing.T) {
	repo := &fakeExports{records: map[int64]entity.ExportRecord{}}
	uc := exports.NewUseCase(repo)
	page, err := uc.Load(context.Background(), dto.ExportFilter{CompanyName: "  Acme "})
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme"}, page.Companies)
	require.Len(t, repo.filters, 1)
	assert.Equal(t, "Acme", repo.filters[0].CompanyName)
}

func TestDelete_RequiereConfirmacion(t *testing.T) {
	repo := &fakeExports{records: map[int64]entity.ExportRecord{5: record()}}
	uc := exports.NewUseCase(repo)
	assert.ErrorIs(t, uc.Delete(context.Background(), 5, false), domain.ErrNotConfirmed)
	assert.Len(t, repo.records, 1)
	require.NoError(t, uc.Delete(context.Background(), 5, true))
	assert.Empty(t, repo.records)
}
