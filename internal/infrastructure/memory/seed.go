package memory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/inventory"
)

// Funciones de carga e inspección fuera de transacción. Los pedidos los crea un sistema
// externo, por eso se cargan aquí y no mediante un caso de uso.

// PutItem inserta o reemplaza un medicamento.
func (s *Store) PutItem(it entity.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.items[it.ID] = it
}

// PutOrder inserta o reemplaza un pedido.
func (s *Store) PutOrder(o entity.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.orders[o.ID] = o
}

// InitBalance crea la fila única de saldo.
func (s *Store) InitBalance(b entity.Balance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.balance = &b
}

// PutPharmacyStock carga una fila en la tabla de inventario de una farmacia (la crea si no existe).
// El nombre de tabla se guarda en minúsculas, como un identificador sin comillas en PostgreSQL.
func (s *Store) PutPharmacyStock(table, genericName string, stock int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	table = inventory.CanonicalTableName(table)
	rows, ok := s.st.pharmacy[table]
	if !ok {
		rows = make(map[string]int)
		s.st.pharmacy[table] = rows
	}
	rows[genericName] = stock
}

// Item devuelve el medicamento confirmado.
func (s *Store) Item(id int64) (entity.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.st.items[id]
	return it, ok
}

// Order devuelve el pedido confirmado.
func (s *Store) Order(id int64) (entity.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.st.orders[id]
	return o, ok
}

// Balance saldo confirmado; cero si no fue inicializado.
func (s *Store) Balance() entity.Balance {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.st.balance == nil {
		return entity.Balance{Saldo: decimal.Zero, Ingresos: decimal.Zero, Egresos: decimal.Zero}
	}
	return *s.st.balance
}

// PharmacyStock stock confirmado de un producto de farmacia.
func (s *Store) PharmacyStock(table, genericName string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stock, ok := s.st.pharmacy[inventory.CanonicalTableName(table)][genericName]
	return stock, ok
}

// Counts cantidad de ventas, detalles y movimientos confirmados.
func (s *Store) Counts() (sales, lines, movements int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.sales), len(s.st.lines), len(s.st.movements)
}
