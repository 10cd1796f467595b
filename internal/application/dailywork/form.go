// Package dailywork casos de uso de la página de trabajo diario: listado
// filtrado, formulario de alta/edición con el catálogo de descripciones y
// vista del propio trabajador.
package dailywork

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/domain"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
)

// DescriptionField texto libre opcionalmente vinculado a una entrada del
// catálogo. El vínculo se mantiene solo mientras el texto coincida con el
// nombre seleccionado.
type DescriptionField struct {
	Text       string `json:"text"`
	LinkedID   *int64 `json:"linkedId,omitempty"`
	LinkedName string `json:"linkedName,omitempty"`
}

// Linked indica si la descripción sigue vinculada al catálogo.
func (d DescriptionField) Linked() bool {
	return d.LinkedID != nil && d.Text == d.LinkedName
}

// Type reemplaza el texto. Si deja de coincidir con la selección, el
// vínculo se pierde hasta volver a seleccionar.
func (d *DescriptionField) Type(text string) {
	d.Text = text
	if d.LinkedID != nil && text != d.LinkedName {
		d.LinkedID = nil
		d.LinkedName = ""
	}
}

// EntryForm estado del formulario (modal) de trabajo diario.
type EntryForm struct {
	ID            *int64           `json:"id,omitempty"`
	UserID        int64            `json:"userId"`
	Date          entity.Date      `json:"date"`
	Quantity      int              `json:"quantity"`
	PricePerUnit  decimal.Decimal  `json:"pricePerUnit"`
	Description   DescriptionField `json:"description"`
	SaveToCatalog bool             `json:"saveToCatalog,omitempty"`
}

// Select vincula una entrada del catálogo. Si tiene precio recordado, lo
// copia al campo de precio.
func (f *EntryForm) Select(desc entity.WorkDescription) {
	id := desc.ID
	f.Description = DescriptionField{Text: desc.Name, LinkedID: &id, LinkedName: desc.Name}
	if desc.Price != nil {
		f.PricePerUnit = *desc.Price
	}
}

// FormFromEntry precarga el formulario para editar una entrada existente.
func FormFromEntry(e entity.WorkEntry) EntryForm {
	id := e.ID
	form := EntryForm{
		ID:           &id,
		UserID:       e.UserID,
		Date:         e.Date,
		Quantity:     e.Quantity,
		PricePerUnit: e.PricePerUnit,
		Description:  DescriptionField{Text: e.Description},
	}
	if e.DescriptionID != nil {
		linked := *e.DescriptionID
		form.Description.LinkedID = &linked
		form.Description.LinkedName = e.Description
	}
	return form
}

// Request arma el payload. Sin vínculo vigente no se envía descriptionId.
func (f EntryForm) Request() (dto.WorkEntryRequest, error) {
	text := strings.TrimSpace(f.Description.Text)
	switch {
	case f.UserID <= 0:
		return dto.WorkEntryRequest{}, fmt.Errorf("%w: worker is required", domain.ErrInvalidInput)
	case f.Date.IsZero():
		return dto.WorkEntryRequest{}, fmt.Errorf("%w: date is required", domain.ErrInvalidInput)
	case text == "":
		return dto.WorkEntryRequest{}, fmt.Errorf("%w: description is required", domain.ErrInvalidInput)
	}
	req := dto.WorkEntryRequest{
		UserID:       f.UserID,
		Date:         f.Date,
		Quantity:     f.Quantity,
		PricePerUnit: f.PricePerUnit,
		Description:  text,
	}
	if f.Description.Linked() {
		id := *f.Description.LinkedID
		req.DescriptionID = &id
	}
	return req, nil
}
