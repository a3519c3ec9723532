package request

import "github.com/copdilan8-rgb/lacopita/internal/domain/entities"

type DraftPromoComponentRequest struct {
	Name           string     `json:"nombre"`
	Category       string     `json:"categoria"`
	ProductID      string     `json:"producto_id"`
	Quantity       int        `json:"cantidad"`
	Type           string     `json:"tipo"`
	FlavorsPerUnit [][]string `json:"sabores_por_unidad"`
}

type DraftItemRequest struct {
	Type       string                       `json:"tipo"`
	Category   string                       `json:"categoria"`
	ProductID  string                       `json:"producto_id"`
	PromoID    string                       `json:"promo_id"`
	Name       string                       `json:"nombre" binding:"required"`
	Quantity   int                          `json:"cantidad" binding:"required"`
	UnitPrice  float64                      `json:"precio"`
	Subtotal   float64                      `json:"subtotal"`
	Flavors    []string                     `json:"sabores"`
	Components []DraftPromoComponentRequest `json:"detalle"`
}

// ConfirmOrderRequest settles a draft into a persisted order. ClientID ties
// the request back to the device-held draft so it can be cleared server-side
// once settled.
type ConfirmOrderRequest struct {
	ClientID string             `json:"client_id"`
	Table    string             `json:"mesa"`
	Note     string             `json:"nota"`
	Items    []DraftItemRequest `json:"items"`
}

func (r ConfirmOrderRequest) ToDraft() entities.DraftOrder {
	items := make([]entities.DraftItem, 0, len(r.Items))
	for _, it := range r.Items {
		components := make([]entities.DraftPromoComponent, 0, len(it.Components))
		for _, c := range it.Components {
			components = append(components, entities.DraftPromoComponent{
				Name:           c.Name,
				Category:       c.Category,
				ProductID:      c.ProductID,
				Quantity:       c.Quantity,
				Type:           c.Type,
				FlavorsPerUnit: c.FlavorsPerUnit,
			})
		}
		items = append(items, entities.DraftItem{
			Type:       it.Type,
			Category:   it.Category,
			ProductID:  it.ProductID,
			PromoID:    it.PromoID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			Subtotal:   it.Subtotal,
			Flavors:    it.Flavors,
			Components: components,
		})
	}
	return entities.DraftOrder{
		Table: r.Table,
		Items: items,
		Note:  r.Note,
	}
}

// PayOrderRequest marks a delivered order as paid.
type PayOrderRequest struct {
	PaymentMethod string `json:"metodo_pago" binding:"required"`
}
