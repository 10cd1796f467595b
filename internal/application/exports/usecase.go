// Package exports exportaciones a empresas cliente.
package exports

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/domain"
	"github.com/jhoicas/stitchdesk/internal/domain/repository"
)

// UseCase página de exportaciones.
type UseCase struct {
	exports repository.ExportRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(exports repository.ExportRepository) *UseCase {
	return &UseCase{exports: exports}
}

// Load registros, totales, empresas y catálogo de descripciones.
func (uc *UseCase) Load(ctx context.Context, f dto.ExportFilter) (dto.ExportsPageDTO, error) {
	f.CompanyName = strings.TrimSpace(f.CompanyName)
	var page dto.ExportsPageDTO
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := uc.exports.List(gctx, f)
		page.Records = records
		return err
	})
	g.Go(func() error {
		stats, err := uc.exports.Stats(gctx, f)
		page.Stats = stats
		return err
	})
	g.Go(func() error {
		companies, err := uc.exports.Companies(gctx)
		page.Companies = companies
		return err
	})
	g.Go(func() error {
		descs, err := uc.exports.Descriptions(gctx)
		page.Descriptions = descs
		return err
	})
	if err := g.Wait(); err != nil {
		return dto.ExportsPageDTO{}, err
	}
	return page, nil
}

func validate(in dto.ExportRequest) (dto.ExportRequest, error) {
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.Description = strings.TrimSpace(in.Description)
	if in.CompanyName == "" || in.Date.IsZero() {
		return in, fmt.Errorf("%w: company and date are required", domain.ErrInvalidInput)
	}
	return in, nil
}

func (uc *UseCase) Create(ctx context.Context, in dto.ExportRequest) error {
	in, err := validate(in)
	if err != nil {
		return err
	}
	return uc.exports.Create(ctx, in)
}

func (uc *UseCase) Update(ctx context.Context, id int64, in dto.ExportRequest) error {
	in, err := validate(in)
	if err != nil {
		return err
	}
	return uc.exports.Update(ctx, id, in)
}

// MarkPaid cambia el indicador de pago de una exportación existente.
func (uc *UseCase) MarkPaid(ctx context.Context, id int64, paid bool) error {
	rec, err := uc.exports.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return uc.exports.Update(ctx, id, dto.ExportRequest{
		Date:            rec.Date,
		CompanyName:     rec.CompanyName,
		Quantity:        rec.Quantity,
		PricePerUnit:    rec.PricePerUnit,
		Description:     rec.Description,
		PaymentReceived: paid,
	})
}

func (uc *UseCase) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return domain.ErrNotConfirmed
	}
	return uc.exports.Delete(ctx, id)
}
