package dto

// ReplenishRequest body para PUT /api/v1/medicamentos-bodega/:id/reabastecer.
type ReplenishRequest struct {
	Quantity int `json:"cantidad" validate:"required,gt=0"`
}

// ReplenishBatchEntry elemento del lote de reabastecimiento. Sin tags de validación:
// las entradas inválidas se omiten en el caso de uso, no se rechazan.
type ReplenishBatchEntry struct {
	ItemID   int64 `json:"id"`
	Quantity int   `json:"cantidad"`
}

// Estados por ítem en reportes de lote.
const (
	ItemStatusApplied = "aplicado"
	ItemStatusSkipped = "omitido"
	ItemStatusSuccess = "success"
	ItemStatusError   = "error"
)

// BatchItemResult resultado por ítem del lote de reabastecimiento.
type BatchItemResult struct {
	ItemID   int64  `json:"id"`
	Quantity int    `json:"cantidad"`
	Status   string `json:"status"`
	Reason   string `json:"motivo,omitempty"`
	NewStock *int   `json:"stock_actualizado,omitempty"`
}

// BatchSummary conteos del lote.
type BatchSummary struct {
	Total   int `json:"total"`
	Applied int `json:"aplicados"`
	Skipped int `json:"omitidos"`
}

// ReplenishBatchResponse respuesta del reabastecimiento múltiple.
type ReplenishBatchResponse struct {
	Message string            `json:"mensaje"`
	Results []BatchItemResult `json:"resultados"`
	Summary BatchSummary      `json:"resumen"`
}

// SyncStockItem producto a sumar en el inventario de la farmacia.
type SyncStockItem struct {
	Name     string `json:"nombre_producto"`
	Quantity int    `json:"cantidad_producto"`
}

// SyncStockRequest body para POST /api/v1/bodega/actualizar-stock.
type SyncStockRequest struct {
	Table    string          `json:"tabla_farmacia" validate:"required"`
	Products []SyncStockItem `json:"productos" validate:"required"`
}

// SyncItemResult resultado por producto de la sincronización.
type SyncItemResult struct {
	Name          string `json:"nombre"`
	Status        string `json:"status"`
	Message       string `json:"mensaje,omitempty"`
	PreviousStock *int   `json:"stock_anterior,omitempty"`
	UpdatedStock  *int   `json:"stock_actualizado,omitempty"`
}

// SyncSummary conteos de la sincronización.
type SyncSummary struct {
	Total     int `json:"total"`
	Succeeded int `json:"exitosos"`
	Failed    int `json:"errores"`
}

// SyncStockResponse reporte por ítem de la sincronización.
type SyncStockResponse struct {
	Message string           `json:"message"`
	Table   string           `json:"tabla_farmacia"`
	Results []SyncItemResult `json:"resultados"`
	Summary SyncSummary      `json:"resumen"`
}
