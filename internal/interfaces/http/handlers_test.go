package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/inventory"
	"github.com/jhoicas/Bodega-api/internal/application/ledger"
	"github.com/jhoicas/Bodega-api/internal/application/orders"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Bodega-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Bodega-api/internal/interfaces/http"
)

// buildApp API completa sobre el store en memoria. secret vacío = sin autenticación.
func buildApp(t *testing.T, secret string) (*fiber.App, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.InitBalance(entity.Balance{Saldo: decimal.Zero, Ingresos: decimal.Zero, Egresos: decimal.Zero})
	store.PutItem(entity.Item{ID: 1, GenericName: "Paracetamol", Price: decimal.NewFromInt(2500), Stock: 100})
	store.PutItem(entity.Item{ID: 2, GenericName: "Ibuprofeno", Price: decimal.NewFromInt(4800), Stock: 20})
	store.PutOrder(entity.Order{ID: 1, Status: entity.OrderStatusPending, UpdatedAt: time.Now()})
	store.PutPharmacyStock("farmacia_centro", "Paracetamol", 10)

	app := fiber.New()
	app.Use(apphttp.RequestLogger(zerolog.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		OrderUC:    orders.NewOrderUseCase(store),
		SaleUC:     inventory.NewSaleUseCase(store, true),
		StockUC:    inventory.NewStockUseCase(store, zerolog.Nop(), nil),
		LowStockUC: inventory.NewLowStockUseCase(store, 50, infrapdf.NewMarotoPDFGenerator("test")),
		LedgerUC:   ledger.NewLedgerUseCase(store),
		JWTSecret:  secret,
		JWTIssuer:  testIssuer,
	})
	return app, store
}

func send(t *testing.T, app *fiber.App, method, path, body string, header ...string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ── Pedidos ──────────────────────────────────────────────────────────────────

func TestOrders_ConfirmarYConflicto(t *testing.T) {
	app, store := buildApp(t, "")

	resp := send(t, app, http.MethodPost, "/api/v1/bodega/confirmar-pedido", `{"pedido_id":1}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.OrderTransitionResponse](t, resp)
	assert.Equal(t, "confirmado", out.Status)

	resp = send(t, app, http.MethodPost, "/api/v1/bodega/confirmar-pedido", `{"pedido_id":1}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "un conflicto de estado responde 400")
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, apphttp.CodeStateConflict, errBody.Code)
	assert.Equal(t, "Este pedido ya está confirmado", errBody.Message)

	o, _ := store.Order(1)
	assert.Equal(t, "Pedido confirmado por bodega", o.Notes)
}

func TestOrders_CancelarDesdeFarmacia(t *testing.T) {
	app, store := buildApp(t, "")

	resp := send(t, app, http.MethodPost, "/api/v1/farmacias/cancelar-pedido", `{"pedido_id":1,"motivo":"Ya no se necesita"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	o, _ := store.Order(1)
	assert.Equal(t, entity.OrderStatusCancelled, o.Status)
	assert.Equal(t, "Cancelado por farmacia: Ya no se necesita", o.Notes)
}

func TestOrders_SinMotivo_400(t *testing.T) {
	app, _ := buildApp(t, "")
	resp := send(t, app, http.MethodPost, "/api/v1/bodega/cancelar-pedido", `{"pedido_id":1}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeValidation, decode[dto.ErrorResponse](t, resp).Code)
}

func TestOrders_Inexistente_404(t *testing.T) {
	app, _ := buildApp(t, "")
	resp := send(t, app, http.MethodPost, "/api/v1/bodega/marcar-pedido-completado", `{"pedido_id":42}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = send(t, app, http.MethodGet, "/api/v1/pedidos/42", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestOrders_CuerpoInvalido(t *testing.T) {
	app, _ := buildApp(t, "")
	resp := send(t, app, http.MethodPost, "/api/v1/bodega/confirmar-pedido", `{"pedido_id":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeInvalidBody, decode[dto.ErrorResponse](t, resp).Code)
}

// ── Ventas y stock ───────────────────────────────────────────────────────────

func TestSales_Registrar201(t *testing.T) {
	app, store := buildApp(t, "")
	body := `{"detalles":[{"id_medicamento":1,"cantidad":3,"precio_unitario":2500,"precio_subtotal":"7500.00"}]}`

	resp := send(t, app, http.MethodPost, "/api/v1/ventas-bodega", body)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	out := decode[dto.RecordSaleResponse](t, resp)
	assert.Equal(t, int64(1), out.SaleID)

	it, _ := store.Item(1)
	assert.Equal(t, 97, it.Stock)
}

func TestSales_SinDetalles_400(t *testing.T) {
	app, _ := buildApp(t, "")
	resp := send(t, app, http.MethodPost, "/api/v1/ventas-bodega", `{"detalles":[]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStock_Reabastecer(t *testing.T) {
	app, store := buildApp(t, "")

	resp := send(t, app, http.MethodPut, "/api/v1/medicamentos-bodega/2/reabastecer", `{"cantidad":5}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	it, _ := store.Item(2)
	assert.Equal(t, 25, it.Stock)

	resp = send(t, app, http.MethodPut, "/api/v1/medicamentos-bodega/2/reabastecer", `{"cantidad":0}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = send(t, app, http.MethodPut, "/api/v1/medicamentos-bodega/abc/reabastecer", `{"cantidad":1}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStock_ValidaCuerpoConTags(t *testing.T) {
	app, store := buildApp(t, "")

	resp := send(t, app, http.MethodPut, "/api/v1/medicamentos-bodega/2/reabastecer", `{"cantidad":-2}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, apphttp.CodeValidation, body.Code)
	assert.Equal(t, "cantidad debe ser mayor a 0", body.Message)

	resp = send(t, app, http.MethodPost, "/api/v1/bodega/actualizar-stock", `{"productos":[{"nombre_producto":"Paracetamol","cantidad_producto":1}]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body = decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, apphttp.CodeValidation, body.Code)
	assert.Equal(t, "tabla_farmacia es obligatorio", body.Message)

	resp = send(t, app, http.MethodPost, "/api/v1/bodega/actualizar-stock", `{"tabla_farmacia":"farmacia_centro"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "productos es obligatorio", decode[dto.ErrorResponse](t, resp).Message)

	it, _ := store.Item(2)
	assert.Equal(t, 20, it.Stock)
	n, _ := store.PharmacyStock("farmacia_centro", "Paracetamol")
	assert.Equal(t, 10, n)
}

func TestStock_ReabastecerMultiple(t *testing.T) {
	app, _ := buildApp(t, "")
	resp := send(t, app, http.MethodPut, "/api/v1/medicamentos-bodega/reabastecer-multiple",
		`[{"id":1,"cantidad":1},{"id":0,"cantidad":3},{"id":99,"cantidad":2}]`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.ReplenishBatchResponse](t, resp)
	assert.Equal(t, dto.BatchSummary{Total: 3, Applied: 1, Skipped: 2}, out.Summary)
}

func TestStock_ActualizarStockFarmacia(t *testing.T) {
	app, store := buildApp(t, "")
	resp := send(t, app, http.MethodPost, "/api/v1/bodega/actualizar-stock",
		`{"tabla_farmacia":"farmacia_centro","productos":[{"nombre_producto":"paracetamol","cantidad_producto":4},{"nombre_producto":"Otro","cantidad_producto":1}]}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.SyncStockResponse](t, resp)
	assert.Equal(t, dto.SyncSummary{Total: 2, Succeeded: 1, Failed: 1}, out.Summary)

	n, _ := store.PharmacyStock("farmacia_centro", "Paracetamol")
	assert.Equal(t, 14, n)
}

func TestStock_TablaInvalida_400(t *testing.T) {
	app, _ := buildApp(t, "")
	resp := send(t, app, http.MethodPost, "/api/v1/bodega/actualizar-stock",
		`{"tabla_farmacia":"farmacia_centro;--","productos":[{"nombre_producto":"x","cantidad_producto":1}]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ── Caja ─────────────────────────────────────────────────────────────────────

func TestLedger_MovimientoYSaldo(t *testing.T) {
	app, _ := buildApp(t, "")

	resp := send(t, app, http.MethodPost, "/api/v1/transacciones-bodega", `{"descripcion":"Venta","monto":150.25,"tipo":"ingreso"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = send(t, app, http.MethodPost, "/api/v1/transacciones-bodega", `{"descripcion":"Flete","monto":"50","tipo":"egreso"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = send(t, app, http.MethodGet, "/api/v1/saldo-bodega", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	b := decode[dto.BalanceResponse](t, resp)
	assert.True(t, b.Saldo.Equal(decimal.RequireFromString("100.25")), b.Saldo.String())

	resp = send(t, app, http.MethodGet, "/api/v1/movimientos-bodega?limit=1", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.MovementListResponse](t, resp)
	require.Len(t, list.Movements, 1)
	assert.Equal(t, "Flete", list.Movements[0].Description)
}

func TestLedger_LimiteFueraDeRango_400(t *testing.T) {
	app, _ := buildApp(t, "")

	resp := send(t, app, http.MethodGet, "/api/v1/movimientos-bodega?limit=5000", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, apphttp.CodeValidation, body.Code)
	assert.Equal(t, "limit no puede superar 100", body.Message)

	resp = send(t, app, http.MethodGet, "/api/v1/movimientos-bodega?offset=-1", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = send(t, app, http.MethodGet, "/api/v1/movimientos-bodega?limit=100", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLedger_TipoInvalido_400(t *testing.T) {
	app, _ := buildApp(t, "")
	resp := send(t, app, http.MethodPost, "/api/v1/transacciones-bodega", `{"descripcion":"x","monto":1,"tipo":"prestamo"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ── Inventario ───────────────────────────────────────────────────────────────

func TestInventory_BajoStock(t *testing.T) {
	app, _ := buildApp(t, "")

	resp := send(t, app, http.MethodGet, "/api/v1/inventario-bodega/bajo-stock", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]dto.ItemResponse](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "Ibuprofeno", list[0].GenericName)

	resp = send(t, app, http.MethodGet, "/api/v1/inventario-bodega/bajo-stock?umbral=101", "")
	assert.Len(t, decode[[]dto.ItemResponse](t, resp), 2)

	resp = send(t, app, http.MethodGet, "/api/v1/inventario-bodega/bajo-stock?umbral=abc", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInventory_ReportePDF(t *testing.T) {
	app, _ := buildApp(t, "")
	resp := send(t, app, http.MethodGet, "/api/v1/inventario-bodega/bajo-stock/pdf", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestRequestLogger_PropagaRequestID(t *testing.T) {
	app, _ := buildApp(t, "")
	resp := send(t, app, http.MethodGet, "/api/v1/inventario-bodega", "", apphttp.HeaderRequestID, "abc-123")
	assert.Equal(t, "abc-123", resp.Header.Get(apphttp.HeaderRequestID))

	resp = send(t, app, http.MethodGet, "/api/v1/inventario-bodega", "")
	assert.Len(t, resp.Header.Get(apphttp.HeaderRequestID), 36, "uuid generado")
}

// ── Autenticación en el router ───────────────────────────────────────────────

func TestRouter_ConJWT_RolesPorRuta(t *testing.T) {
	app, _ := buildApp(t, testJWTSecret)

	resp := send(t, app, http.MethodGet, "/api/v1/inventario-bodega", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	farmacia := tokenForRole(t, "farmacia")
	resp = send(t, app, http.MethodGet, "/api/v1/inventario-bodega", "", "Authorization", farmacia)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = send(t, app, http.MethodPost, "/api/v1/bodega/confirmar-pedido", `{"pedido_id":1}`, "Authorization", farmacia)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = send(t, app, http.MethodPost, "/api/v1/farmacias/cancelar-pedido", `{"pedido_id":1,"motivo":"x"}`, "Authorization", farmacia)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
