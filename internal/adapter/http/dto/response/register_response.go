package response

import (
	"time"

	"github.com/copdilan8-rgb/lacopita/internal/domain/entities"
	"github.com/copdilan8-rgb/lacopita/internal/usecase"
)

type RegisterSessionResponse struct {
	ID                string     `json:"id"`
	OpenedBy          string     `json:"abierta_por"`
	OpenedAt          time.Time  `json:"fecha_apertura"`
	InitialCashAmount float64    `json:"monto_inicial_efectivo"`
	ClosedBy          string     `json:"cerrada_por,omitempty"`
	ClosedAt          *time.Time `json:"fecha_cierre,omitempty"`
	FinalCashAmount   float64    `json:"monto_final_efectivo,omitempty"`
	FinalQRAmount     float64    `json:"monto_final_qr,omitempty"`
	DayCashSum        float64    `json:"sm_dia,omitempty"`
	DiscountAmount    float64    `json:"m_descuento,omitempty"`
	TotalSales        float64    `json:"total_v,omitempty"`
	Observations      string     `json:"observaciones,omitempty"`
	Status            string     `json:"estado"`
}

func FromRegisterSession(s entities.RegisterSession) RegisterSessionResponse {
	resp := RegisterSessionResponse{
		ID:                s.ID,
		OpenedBy:          s.OpenedBy,
		OpenedAt:          s.OpenedAt,
		InitialCashAmount: s.InitialCashAmount,
		ClosedBy:          s.ClosedBy,
		FinalCashAmount:   s.FinalCashAmount,
		FinalQRAmount:     s.FinalQRAmount,
		DayCashSum:        s.DayCashSum,
		DiscountAmount:    s.DiscountAmount,
		TotalSales:        s.TotalSales,
		Observations:      s.Observations,
		Status:            string(s.Status),
	}
	if !s.ClosedAt.IsZero() {
		closedAt := s.ClosedAt
		resp.ClosedAt = &closedAt
	}
	return resp
}

// CurrentRegisterResponse answers "which session is open right now"; Caja is
// null when none is.
type CurrentRegisterResponse struct {
	Caja *RegisterSessionResponse `json:"caja"`
}

func FromCurrentRegister(s entities.RegisterSession) CurrentRegisterResponse {
	if s.ID == "" {
		return CurrentRegisterResponse{}
	}
	caja := FromRegisterSession(s)
	return CurrentRegisterResponse{Caja: &caja}
}

type RegisterStateResponse struct {
	Abierta bool `json:"abierta"`
}

type ClosedSummaryResponse struct {
	OrdersProcessed int     `json:"pedidos_procesados"`
	InitialAmount   float64 `json:"monto_inicial"`
	FinalCashAmount float64 `json:"monto_final_efectivo"`
	FinalQRAmount   float64 `json:"monto_final_qr"`
	DayCashSum      float64 `json:"sumatoria_dia_efectivo"`
	GrandTotal      float64 `json:"total_general"`
}

type CloseRegisterResponse struct {
	Caja    RegisterSessionResponse `json:"caja"`
	Resumen ClosedSummaryResponse   `json:"resumen"`
}

func FromClosedRegister(s entities.RegisterSession, sum entities.ClosedSummary) CloseRegisterResponse {
	return CloseRegisterResponse{
		Caja: FromRegisterSession(s),
		Resumen: ClosedSummaryResponse{
			OrdersProcessed: sum.OrdersProcessed,
			InitialAmount:   sum.InitialAmount,
			FinalCashAmount: sum.FinalCashAmount,
			FinalQRAmount:   sum.FinalQRAmount,
			DayCashSum:      sum.DayCashSum,
			GrandTotal:      sum.GrandTotal,
		},
	}
}

type PendingSummaryResponse struct {
	Count      int     `json:"cantidad_pedidos"`
	CashTotal  float64 `json:"total_efectivo"`
	QRTotal    float64 `json:"total_qr"`
	GrandTotal float64 `json:"total_general"`
}

type PendingOrdersResponse struct {
	Pedidos []OrderResponse        `json:"pedidos"`
	Resumen PendingSummaryResponse `json:"resumen"`
}

func FromPendingOrders(orders []entities.Order, sum entities.PendingSummary) PendingOrdersResponse {
	return PendingOrdersResponse{
		Pedidos: FromOrders(orders),
		Resumen: PendingSummaryResponse{
			Count:      sum.Count,
			CashTotal:  sum.CashTotal,
			QRTotal:    sum.QRTotal,
			GrandTotal: sum.GrandTotal,
		},
	}
}

type RegisterHistoryResponse struct {
	Cajas []RegisterSessionResponse `json:"cajas"`
	Total int                       `json:"total"`
}

func FromRegisterHistory(sessions []entities.RegisterSession, total int) RegisterHistoryResponse {
	resp := RegisterHistoryResponse{
		Cajas: make([]RegisterSessionResponse, 0, len(sessions)),
		Total: total,
	}
	for _, s := range sessions {
		resp.Cajas = append(resp.Cajas, FromRegisterSession(s))
	}
	return resp
}

type RegisterHistoryEntryResponse struct {
	RegisterSessionResponse
	OpenedByName string          `json:"abierta_por_nombre"`
	ClosedByName string          `json:"cerrada_por_nombre"`
	Orders       []OrderResponse `json:"pedidos"`
	CashOrders   int             `json:"pedidos_efectivo"`
	QROrders     int             `json:"pedidos_qr"`
}

type RegisterHistoryDetailedResponse struct {
	Cajas []RegisterHistoryEntryResponse `json:"cajas"`
	Total int                            `json:"total"`
}

func FromRegisterHistoryDetailed(entries []usecase.RegisterHistoryEntry, total int) RegisterHistoryDetailedResponse {
	resp := RegisterHistoryDetailedResponse{
		Cajas: make([]RegisterHistoryEntryResponse, 0, len(entries)),
		Total: total,
	}
	for _, e := range entries {
		resp.Cajas = append(resp.Cajas, RegisterHistoryEntryResponse{
			RegisterSessionResponse: FromRegisterSession(e.Session),
			OpenedByName:            e.OpenedByName,
			ClosedByName:            e.ClosedByName,
			Orders:                  FromOrders(e.Orders),
			CashOrders:              e.CashOrders,
			QROrders:                e.QROrders,
		})
	}
	return resp
}
