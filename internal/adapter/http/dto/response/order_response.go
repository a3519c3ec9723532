package response

import (
	"time"

	"github.com/copdilan8-rgb/lacopita/internal/domain/entities"
)

type PromoComponentResponse struct {
	Name      string     `json:"nombre"`
	Category  string     `json:"categoria"`
	ProductID string     `json:"producto_id"`
	Quantity  int        `json:"cantidad"`
	Type      string     `json:"tipo"`
	Flavors   [][]string `json:"sabores,omitempty"`
}

type OrderLineItemResponse struct {
	ID          string                   `json:"id"`
	Category    string                   `json:"categoria"`
	ProductID   string                   `json:"producto_id"`
	Quantity    int                      `json:"cantidad"`
	UnitPrice   float64                  `json:"precio_unitario"`
	Subtotal    float64                  `json:"subtotal"`
	Note        string                   `json:"nota,omitempty"`
	PromoDetail []PromoComponentResponse `json:"detalle,omitempty"`
}

type OrderResponse struct {
	ID                string                  `json:"id"`
	UserID            string                  `json:"usuario_id"`
	Kind              string                  `json:"tipo"`
	TableNumber       int                     `json:"mesa_numero,omitempty"`
	Status            string                  `json:"estado"`
	PaymentMethod     string                  `json:"metodo_pago,omitempty"`
	TotalAmount       float64                 `json:"monto_total"`
	Note              string                  `json:"nota,omitempty"`
	CreatedAt         time.Time               `json:"creado_en"`
	DeliveredAt       *time.Time              `json:"entregado_en,omitempty"`
	PaidAt            *time.Time              `json:"pagado_en,omitempty"`
	RegisterSessionID string                  `json:"caja_id,omitempty"`
	Items             []OrderLineItemResponse `json:"detalle_pedido,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	resp := OrderResponse{
		ID:                o.ID,
		UserID:            o.UserID,
		Kind:              string(o.Kind),
		TableNumber:       o.TableNumber,
		Status:            string(o.Status),
		PaymentMethod:     string(o.PaymentMethod),
		TotalAmount:       o.TotalAmount,
		Note:              o.Note,
		CreatedAt:         o.CreatedAt,
		RegisterSessionID: o.RegisterSessionID,
	}
	if !o.DeliveredAt.IsZero() {
		at := o.DeliveredAt
		resp.DeliveredAt = &at
	}
	if !o.PaidAt.IsZero() {
		at := o.PaidAt
		resp.PaidAt = &at
	}
	for _, line := range o.Items {
		resp.Items = append(resp.Items, fromOrderLineItem(line))
	}
	return resp
}

func FromOrders(orders []entities.Order) []OrderResponse {
	resp := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, FromOrder(o))
	}
	return resp
}

func fromOrderLineItem(line entities.OrderLineItem) OrderLineItemResponse {
	resp := OrderLineItemResponse{
		ID:        line.ID,
		Category:  line.Category,
		ProductID: line.ProductID,
		Quantity:  line.Quantity,
		UnitPrice: line.UnitPrice,
		Subtotal:  line.Subtotal,
		Note:      line.Note,
	}
	for _, c := range line.PromoDetail {
		resp.PromoDetail = append(resp.PromoDetail, PromoComponentResponse{
			Name:      c.Name,
			Category:  c.Category,
			ProductID: c.ProductID,
			Quantity:  c.Quantity,
			Type:      c.Type,
			Flavors:   c.Flavors,
		})
	}
	return resp
}
