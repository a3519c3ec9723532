package entities

// DraftOrder is the ephemeral, client-held order under construction. It is
// never persisted to the ledger tables; Confirm converts a valid draft into
// an Order plus its line items in a single shot.
//
// Table is either "llevar" or the table number as typed by the staff member
// ("1".."9"); it is parsed and validated only at settlement time.
type DraftOrder struct {
	Table string      `json:"mesa"`
	Items []DraftItem `json:"items"`
	Note  string      `json:"nota"`
}

// DraftItem carries enough information to become one OrderLineItem.
// Type "" is a plain product, "s.eleccion" adds a flavor list, "promo"
// replaces ProductID with PromoID and carries the bundle components.
type DraftItem struct {
	Type       string                `json:"tipo"`
	Category   string                `json:"categoria"`
	ProductID  string                `json:"producto_id"`
	PromoID    string                `json:"promo_id,omitempty"`
	Name       string                `json:"nombre"`
	Quantity   int                   `json:"cantidad"`
	UnitPrice  float64               `json:"precio"`
	Subtotal   float64               `json:"subtotal"`
	Flavors    []string              `json:"sabores,omitempty"`
	Components []DraftPromoComponent `json:"detalle,omitempty"`
}

// DraftPromoComponent mirrors PromoComponent at the draft stage.
// FlavorsPerUnit holds one chosen flavor list per ordered unit.
type DraftPromoComponent struct {
	Name           string     `json:"nombre"`
	Category       string     `json:"categoria"`
	ProductID      string     `json:"producto_id"`
	Quantity       int        `json:"cantidad"`
	Type           string     `json:"tipo"`
	FlavorsPerUnit [][]string `json:"sabores_por_unidad,omitempty"`
}
