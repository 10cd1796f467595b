package dailywork

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/application/reports"
	"github.com/jhoicas/stitchdesk/internal/domain"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
	"github.com/jhoicas/stitchdesk/internal/domain/repository"
)

// PageData todo lo que muestra la página de trabajo diario del admin.
type PageData struct {
	Entries      []entity.WorkEntry       `json:"entries"`
	Stats        *entity.WorkStats        `json:"stats"`
	Descriptions []entity.WorkDescription `json:"descriptions"`
	Workers      []entity.User            `json:"workers"`
	Summary      reports.Summary          `json:"summary"`
}

// MyWorkData vista del trabajador sobre su propio trabajo.
type MyWorkData struct {
	Entries []entity.WorkEntry   `json:"entries"`
	Summary reports.Summary      `json:"summary"`
	Months  []reports.MonthTotal `json:"months"`
}

// UseCase trabajo diario.
type UseCase struct {
	work  repository.WorkRepository
	users repository.UserRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(work repository.WorkRepository, users repository.UserRepository) *UseCase {
	return &UseCase{work: work, users: users}
}

// Load trae entradas, estadísticas, catálogo y trabajadores en paralelo.
func (uc *UseCase) Load(ctx context.Context, f dto.WorkFilter) (PageData, error) {
	var data PageData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		entries, err := uc.work.ListEntries(gctx, f)
		data.Entries = entries
		return err
	})
	g.Go(func() error {
		stats, err := uc.work.Stats(gctx, f)
		data.Stats = stats
		return err
	})
	g.Go(func() error {
		descs, err := uc.work.ListDescriptions(gctx)
		data.Descriptions = descs
		return err
	})
	g.Go(func() error {
		users, err := uc.users.List(gctx)
		data.Workers = users
		return err
	})
	if err := g.Wait(); err != nil {
		return PageData{}, err
	}
	data.Summary = reports.Summarize(data.Entries)
	return data, nil
}

// Select aplica una entrada del catálogo al formulario.
func (uc *UseCase) Select(ctx context.Context, form EntryForm, descriptionID int64) (EntryForm, error) {
	descs, err := uc.work.ListDescriptions(ctx)
	if err != nil {
		return form, err
	}
	for _, d := range descs {
		if d.ID == descriptionID {
			form.Select(d)
			return form, nil
		}
	}
	return form, fmt.Errorf("description %d: %w", descriptionID, domain.ErrNotFound)
}

// Save crea o actualiza una entrada. Con SaveToCatalog y sin vínculo vigente
// la descripción se da de alta antes y la entrada se vincula a la nueva.
func (uc *UseCase) Save(ctx context.Context, form EntryForm) error {
	req, err := form.Request()
	if err != nil {
		return err
	}
	if req.DescriptionID != nil {
		ok, err := uc.linkValid(ctx, *req.DescriptionID, req.Description)
		if err != nil {
			return err
		}
		if !ok {
			req.DescriptionID = nil
		}
	}
	if req.DescriptionID == nil && form.SaveToCatalog {
		price := req.PricePerUnit
		desc, err := uc.work.CreateDescription(ctx, dto.DescriptionRequest{Name: req.Description, Price: &price})
		if err != nil {
			return err
		}
		id := desc.ID
		req.DescriptionID = &id
	}
	if form.ID != nil {
		return uc.work.UpdateEntry(ctx, *form.ID, req)
	}
	return uc.work.CreateEntry(ctx, req)
}

// linkValid confirma contra el catálogo que el id existe y conserva el nombre
// enviado. El formulario viaja por el cliente y no se le cree.
func (uc *UseCase) linkValid(ctx context.Context, id int64, name string) (bool, error) {
	descs, err := uc.work.ListDescriptions(ctx)
	if err != nil {
		return false, err
	}
	for _, d := range descs {
		if d.ID == id {
			return d.Name == name, nil
		}
	}
	return false, nil
}

// Delete borra una entrada ya confirmada.
func (uc *UseCase) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return domain.ErrNotConfirmed
	}
	return uc.work.DeleteEntry(ctx, id)
}

// Edit precarga el formulario de una entrada existente.
func (uc *UseCase) Edit(ctx context.Context, id int64) (EntryForm, error) {
	e, err := uc.work.GetEntry(ctx, id)
	if err != nil {
		return EntryForm{}, err
	}
	return FormFromEntry(*e), nil
}

// MyWork trabajo propio del trabajador autenticado en el rango.
func (uc *UseCase) MyWork(ctx context.Context, dates dto.DateFilter) (MyWorkData, error) {
	entries, err := uc.work.MyEntries(ctx, dates)
	if err != nil {
		return MyWorkData{}, err
	}
	rows := make([]entity.SalaryRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, entity.SalaryRow{Date: e.Date, UserID: e.UserID, Quantity: e.Quantity, TotalAmount: reports.EntryAmount(e)})
	}
	return MyWorkData{
		Entries: entries,
		Summary: reports.Summarize(entries),
		Months:  reports.GroupByMonth(rows),
	}, nil
}
