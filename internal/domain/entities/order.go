package entities

import "time"

// OrderStatus advances monotonically: en_curso -> entregado -> pagado.
// A paid order stays unassigned (empty RegisterSessionID) until a register
// close sweeps it into the session being closed.

type OrderStatus string

const (
	OrderStatusEnCurso   OrderStatus = "en_curso"
	OrderStatusEntregado OrderStatus = "entregado"
	OrderStatusPagado    OrderStatus = "pagado"
)

type OrderKind string

const (
	OrderKindMesa   OrderKind = "mesa"
	OrderKindLlevar OrderKind = "llevar"
)

type PaymentMethod string

const (
	PaymentMethodEfectivo PaymentMethod = "efectivo"
	PaymentMethodQR       PaymentMethod = "qr"
)

// Line-item type tags carried over from the catalog. A "s.eleccion" product
// requires the customer to pick flavors; a "promo" collapses a bundle into a
// single line with an embedded component payload.
const (
	LineItemTypePromo        = "promo"
	LineItemTypeFlavorChoice = "s.eleccion"
	CategoryPromos           = "promos"
)

// Order is a settled customer order persisted in the pedidos table.
//
// Storage model (DynamoDB):
//   - pedidos PK: id
//   - detalle_pedido PK: id, GSI pedido_id-index (PK: pedido_id)
//
// Invariants:
//   - TableNumber is 1..9 when Kind is mesa and 0 when Kind is llevar.
//   - TotalAmount equals the sum of its line items' subtotals.
//   - RegisterSessionID is set exactly once, at register-close time.
type Order struct {
	ID                string          `json:"id"`
	UserID            string          `json:"usuario_id"`
	Kind              OrderKind       `json:"tipo"`
	TableNumber       int             `json:"mesa_numero,omitempty"`
	Status            OrderStatus     `json:"estado"`
	PaymentMethod     PaymentMethod   `json:"metodo_pago,omitempty"`
	TotalAmount       float64         `json:"monto_total"`
	Note              string          `json:"nota,omitempty"`
	CreatedAt         time.Time       `json:"creado_en"`
	DeliveredAt       time.Time       `json:"entregado_en,omitempty"`
	PaidAt            time.Time       `json:"pagado_en,omitempty"`
	RegisterSessionID string          `json:"caja_id,omitempty"`
	Items             []OrderLineItem `json:"detalle_pedido,omitempty"`
}

// OrderLineItem is one row of detalle_pedido. Two variants share the row
// shape, distinguished by Category:
//   - simple product: Category is a catalog category, PromoDetail is nil and
//     Note may carry the chosen flavors as text;
//   - promotion: Category is "promos" and PromoDetail holds the bundle
//     components, serialized to a JSON string at the storage boundary.
type OrderLineItem struct {
	ID          string           `json:"id"`
	OrderID     string           `json:"pedido_id"`
	Category    string           `json:"categoria"`
	ProductID   string           `json:"producto_id"`
	Quantity    int              `json:"cantidad"`
	UnitPrice   float64          `json:"precio_unitario"`
	Subtotal    float64          `json:"subtotal"`
	Note        string           `json:"nota,omitempty"`
	PromoDetail []PromoComponent `json:"detalle,omitempty"`
}

// IsPromo reports whether the line carries an embedded promotion payload.
func (i OrderLineItem) IsPromo() bool {
	return i.Category == CategoryPromos
}

// PromoComponent describes one product inside a promotion line.
// Flavors holds one flavor list per ordered unit and is present only for
// flavor-choice components.
type PromoComponent struct {
	Name      string     `json:"nombre"`
	Category  string     `json:"categoria"`
	ProductID string     `json:"producto_id"`
	Quantity  int        `json:"cantidad"`
	Type      string     `json:"tipo"`
	Flavors   [][]string `json:"sabores,omitempty"`
}
