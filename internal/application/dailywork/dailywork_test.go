package dailywork_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stitchdesk/internal/application/dailywork"
	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/domain"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeWork struct {
	entries []entity.WorkEntry
	descs   []entity.WorkDescription
	created []dto.WorkEntryRequest
	updated map[int64]dto.WorkEntryRequest
	newDesc []dto.DescriptionRequest
	failOn  string
}

func (f *fakeWork) fail(op string) error {
	if f.failOn == op {
		return domain.ErrServer
	}
	return nil
}

func (f *fakeWork) ListEntries(context.Context, dto.WorkFilter) ([]entity.WorkEntry, error) {
	return f.entries, f.fail("list")
}
func (f *fakeWork) GetEntry(_ context.Context, id int64) (*entity.WorkEntry, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, domain.ErrNotFound
}
func (f *fakeWork) CreateEntry(_ context.Context, in dto.WorkEntryRequest) error {
	f.created = append(f.created, in)
	return f.fail("create")
}
func (f *fakeWork) UpdateEntry(_ context.Context, id int64, in dto.WorkEntryRequest) error {
	if f.updated == nil {
		f.updated = map[int64]dto.WorkEntryRequest{}
	}
	f.updated[id] = in
	return nil
}
func (f *fakeWork) DeleteEntry(context.Context, int64) error { return nil }
func (f *fakeWork) Stats(context.Context, dto.WorkFilter) (*entity.WorkStats, error) {
	return &entity.WorkStats{TotalEntries: len(f.entries)}, f.fail("stats")
}
func (f *fakeWork) ListDescriptions(context.Context) ([]entity.WorkDescription, error) {
	return f.descs, nil
}
func (f *fakeWork) CreateDescription(_ context.Context, in dto.DescriptionRequest) (*entity.WorkDescription, error) {
	f.newDesc = append(f.newDesc, in)
	return &entity.WorkDescription{ID: 99, Name: in.Name, Price: in.Price}, nil
}
func (f *fakeWork) MyEntries(context.Context, dto.DateFilter) ([]entity.WorkEntry, error) {
	return f.entries, nil
}

type fakeUsers struct{ users []entity.User }

func (f *fakeUsers) List(context.Context) ([]entity.User, error)          { return f.users, nil }
func (f *fakeUsers) Stats(context.Context) (*entity.UserStats, error)     { return &entity.UserStats{}, nil }
func (f *fakeUsers) Me(context.Context) (*entity.User, error)             { return &entity.User{}, nil }
func (f *fakeUsers) GetByID(context.Context, int64) (*entity.User, error) { return &entity.User{}, nil }
func (f *fakeUsers) Create(context.Context, dto.CreateUserRequest) error  { return nil }
func (f *fakeUsers) Delete(context.Context, int64) error                  { return nil }
func (f *fakeUsers) Update(context.Context, int64, dto.UpdateUserRequest) error {
	return nil
}
func (f *fakeUsers) ChangePassword(context.Context, int64, dto.ChangePasswordRequest) error {
	return nil
}

func price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func baseForm() dailywork.EntryForm {
	return dailywork.EntryForm{
		UserID:   1,
		Date:     entity.NewDate(2024, time.January, 5),
		Quantity: 10,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestSelect_AutocompletaPrecioRecordado(t *testing.T) {
	work := &fakeWork{descs: []entity.WorkDescription{{ID: 12, Name: "Hemming", Price: price(120)}}}
	uc := dailywork.NewUseCase(work, &fakeUsers{})

	form, err := uc.Select(context.Background(), baseForm(), 12)
	require.NoError(t, err)
	assert.Equal(t, "120", form.PricePerUnit.String())
	assert.Equal(t, "Hemming", form.Description.Text)
	assert.True(t, form.Description.Linked())

	require.NoError(t, uc.Save(context.Background(), form))
	require.Len(t, work.created, 1)
	require.NotNil(t, work.created[0].DescriptionID)
	assert.Equal(t, int64(12), *work.created[0].DescriptionID)
}

func TestSelect_SinPrecioNoTocaElCampo(t *testing.T) {
	work := &fakeWork{descs: []entity.WorkDescription{{ID: 3, Name: "Buttons"}}}
	uc := dailywork.NewUseCase(work, &fakeUsers{})
	form := baseForm()
	form.PricePerUnit = decimal.NewFromInt(7)

	form, err := uc.Select(context.Background(), form, 3)
	require.NoError(t, err)
	assert.Equal(t, "7", form.PricePerUnit.String())
}

func TestSelect_Inexistente(t *testing.T) {
	uc := dailywork.NewUseCase(&fakeWork{}, &fakeUsers{})
	_, err := uc.Select(context.Background(), baseForm(), 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestType_EditarTextoRompeVinculo(t *testing.T) {
	work := &fakeWork{descs: []entity.WorkDescription{{ID: 12, Name: "Hemming", Price: price(120)}}}
	uc := dailywork.NewUseCase(work, &fakeUsers{})

	form, err := uc.Select(context.Background(), baseForm(), 12)
	require.NoError(t, err)
	form.Description.Type("Hemming pants")
	assert.False(t, form.Description.Linked())
	assert.Nil(t, form.Description.LinkedID)
	assert.Equal(t, "120", form.PricePerUnit.String(), "el precio queda como estaba")

	// Volver a escribir el nombre original no restaura el vínculo.
	form.Description.Type("Hemming")
	assert.False(t, form.Description.Linked())

	require.NoError(t, uc.Save(context.Background(), form))
	require.Len(t, work.created, 1)
	assert.Nil(t, work.created[0].DescriptionID, "sin vínculo no se envía descriptionId")
	assert.Empty(t, work.newDesc)
}

func TestSave_FormularioManipuladoNoReusaID(t *testing.T) {
	work := &fakeWork{}
	uc := dailywork.NewUseCase(work, &fakeUsers{})
	form := baseForm()
	id := int64(12)
	form.Description = dailywork.DescriptionField{Text: "Other", LinkedID: &id, LinkedName: "Hemming"}

	require.NoError(t, uc.Save(context.Background(), form))
	assert.Nil(t, work.created[0].DescriptionID)
}

func TestSave_IDAjenoAlCatalogoSeDescarta(t *testing.T) {
	work := &fakeWork{descs: []entity.WorkDescription{{ID: 1, Name: "Hemming"}}}
	uc := dailywork.NewUseCase(work, &fakeUsers{})
	form := baseForm()
	id := int64(999)
	form.Description = dailywork.DescriptionField{Text: "Hemming", LinkedID: &id, LinkedName: "Hemming"}

	require.NoError(t, uc.Save(context.Background(), form))
	require.Len(t, work.created, 1)
	assert.Nil(t, work.created[0].DescriptionID)
	assert.Equal(t, "Hemming", work.created[0].Description)
}

func TestSave_IDConOtroNombreSeDescarta(t *testing.T) {
	work := &fakeWork{descs: []entity.WorkDescription{{ID: 1, Name: "Hemming"}}}
	uc := dailywork.NewUseCase(work, &fakeUsers{})
	form := baseForm()
	id := int64(1)
	form.Description = dailywork.DescriptionField{Text: "Buttons", LinkedID: &id, LinkedName: "Buttons"}

	require.NoError(t, uc.Save(context.Background(), form))
	assert.Nil(t, work.created[0].DescriptionID)
}

func TestSave_IDAjenoConGuardarEnCatalogoCreaNueva(t *testing.T) {
	work := &fakeWork{descs: []entity.WorkDescription{{ID: 1, Name: "Hemming"}}}
	uc := dailywork.NewUseCase(work, &fakeUsers{})
	form := baseForm()
	id := int64(999)
	form.Description = dailywork.DescriptionField{Text: "Zipper", LinkedID: &id, LinkedName: "Zipper"}
	form.SaveToCatalog = true

	require.NoError(t, uc.Save(context.Background(), form))
	require.Len(t, work.newDesc, 1)
	assert.Equal(t, int64(99), *work.created[0].DescriptionID)
}

func TestSave_GuardarEnCatalogoVinculaNueva(t *testing.T) {
	work := &fakeWork{}
	uc := dailywork.NewUseCase(work, &fakeUsers{})
	form := baseForm()
	form.PricePerUnit = decimal.NewFromInt(35)
	form.Description.Type("Zipper")
	form.SaveToCatalog = true

	require.NoError(t, uc.Save(context.Background(), form))
	require.Len(t, work.newDesc, 1)
	assert.Equal(t, "Zipper", work.newDesc[0].Name)
	assert.Equal(t, int64(99), *work.created[0].DescriptionID)
}

func TestSave_EdicionUsaUpdate(t *testing.T) {
	work := &fakeWork{entries: []entity.WorkEntry{{ID: 4, UserID: 1, Date: entity.NewDate(2024, time.January, 5), Quantity: 2, PricePerUnit: decimal.NewFromInt(10), Description: "Hem"}}}
	uc := dailywork.NewUseCase(work, &fakeUsers{})

	form, err := uc.Edit(context.Background(), 4)
	require.NoError(t, err)
	form.Quantity = 3
	require.NoError(t, uc.Save(context.Background(), form))
	assert.Empty(t, work.created)
	assert.Equal(t, 3, work.updated[4].Quantity)
}

func TestSave_CamposRequeridos(t *testing.T) {
	uc := dailywork.NewUseCase(&fakeWork{}, &fakeUsers{})
	err := uc.Save(context.Background(), dailywork.EntryForm{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "invalid input: worker is required", domain.Message(err))
}

func TestLoad_FalloParcialFallaTodo(t *testing.T) {
	work := &fakeWork{entries: []entity.WorkEntry{{ID: 1, Quantity: 1}}, failOn: "stats"}
	uc := dailywork.NewUseCase(work, &fakeUsers{})
	data, err := uc.Load(context.Background(), dto.WorkFilter{})
	assert.ErrorIs(t, err, domain.ErrServer)
	assert.Empty(t, data.Entries)
}

func TestLoad_CalculaResumen(t *testing.T) {
	work := &fakeWork{entries: []entity.WorkEntry{
		{ID: 1, Date: entity.NewDate(2024, time.January, 5), Quantity: 10, PricePerUnit: decimal.NewFromInt(50)},
	}}
	uc := dailywork.NewUseCase(work, &fakeUsers{users: []entity.User{{ID: 1, Name: "W1", Role: "worker"}}})
	data, err := uc.Load(context.Background(), dto.WorkFilter{})
	require.NoError(t, err)
	assert.Equal(t, "500", data.Summary.TotalAmount.String())
	assert.Len(t, data.Workers, 1)
}

func TestMyWork_DesgloseMensual(t *testing.T) {
	work := &fakeWork{entries: []entity.WorkEntry{
		{Date: entity.NewDate(2024, time.January, 5), Quantity: 10, PricePerUnit: decimal.NewFromInt(50)},
		{Date: entity.NewDate(2024, time.February, 1), Quantity: 1, PricePerUnit: decimal.NewFromInt(120)},
	}}
	uc := dailywork.NewUseCase(work, &fakeUsers{})
	data, err := uc.MyWork(context.Background(), dto.DateFilter{})
	require.NoError(t, err)
	require.Len(t, data.Months, 2)
	assert.Equal(t, "500", data.Months[0].Amount.String())
	assert.Equal(t, "620", data.Summary.TotalAmount.String())
}

func TestDelete_RequiereConfirmacion(t *testing.T) {
	uc := dailywork.NewUseCase(&fakeWork{}, &fakeUsers{})
	assert.ErrorIs(t, uc.Delete(context.Background(), 1, false), domain.ErrNotConfirmed)
	assert.NoError(t, uc.Delete(context.Background(), 1, true))
}
