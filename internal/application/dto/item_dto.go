package dto

import (
	"time"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ItemResponse medicamento de bodega. Fechas en formato yyyy-MM-dd.
type ItemResponse struct {
	ID                 int64           `json:"id"`
	GenericName        string          `json:"nombre_generico"`
	MedicalName        string          `json:"nombre_medico"`
	Manufacturer       string          `json:"fabricante"`
	Content            string          `json:"contenido"`
	PharmaceuticalForm string          `json:"forma_farmaceutica"`
	Presentation       string          `json:"presentacion"`
	ManufacturedAt     string          `json:"fecha_fabricacion,omitempty"`
	ExpiresAt          string          `json:"fecha_caducidad,omitempty"`
	UnitsPerBox        int             `json:"unidades_por_caja"`
	Stock              int             `json:"stock"`
	Price              decimal.Decimal `json:"precio"`
}

// ItemFromEntity mapea la entidad al DTO de salida.
func ItemFromEntity(it *entity.Item) ItemResponse {
	return ItemResponse{
		ID:                 it.ID,
		GenericName:        it.GenericName,
		MedicalName:        it.MedicalName,
		Manufacturer:       it.Manufacturer,
		Content:            it.Content,
		PharmaceuticalForm: it.PharmaceuticalForm,
		Presentation:       it.Presentation,
		ManufacturedAt:     formatDate(it.ManufacturedAt),
		ExpiresAt:          formatDate(it.ExpiresAt),
		UnitsPerBox:        it.UnitsPerBox,
		Stock:              it.Stock,
		Price:              it.Price,
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
