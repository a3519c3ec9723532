package entities

import "time"

// RegisterStatus represents the lifecycle of a cash-register session (caja).
//
// Domain notes:
//   - There is a single shared register for the whole shop; at most one
//     session may be "abierta" system-wide at any time.
//   - The only transition is abierta -> cerrada, applied once at close time.

type RegisterStatus string

const (
	RegisterStatusAbierta RegisterStatus = "abierta"
	RegisterStatusCerrada RegisterStatus = "cerrada"
)

// RegisterSession is one open-to-close lifecycle of the cash drawer,
// persisted in the caja_sesiones table.
//
// Storage model (DynamoDB):
//   - PK: id
//   - A singleton marker item (id = "current") holds the id of the open
//     session and enforces the single-open invariant with a conditional put.
//
// Monetary representation:
//   - FinalCashAmount is seeded with InitialCashAmount at close time.
//   - DayCashSum counts only the day's cash orders, excluding the seed.
//   - DiscountAmount stores the net cash (final cash minus entered discount).
//   - TotalSales = DayCashSum + FinalQRAmount.
type RegisterSession struct {
	ID                string         `json:"id"`
	OpenedBy          string         `json:"abierta_por"`
	OpenedAt          time.Time      `json:"fecha_apertura"`
	InitialCashAmount float64        `json:"monto_inicial_efectivo"`
	ClosedBy          string         `json:"cerrada_por,omitempty"`
	ClosedAt          time.Time      `json:"fecha_cierre,omitempty"`
	FinalCashAmount   float64        `json:"monto_final_efectivo,omitempty"`
	FinalQRAmount     float64        `json:"monto_final_qr,omitempty"`
	DayCashSum        float64        `json:"sm_dia,omitempty"`
	DiscountAmount    float64        `json:"m_descuento,omitempty"`
	TotalSales        float64        `json:"total_v,omitempty"`
	Observations      string         `json:"observaciones,omitempty"`
	Status            RegisterStatus `json:"estado"`
}

// ClosedSummary is the financial recap returned by a successful close.
type ClosedSummary struct {
	OrdersProcessed int     `json:"pedidos_procesados"`
	InitialAmount   float64 `json:"monto_inicial"`
	FinalCashAmount float64 `json:"monto_final_efectivo"`
	FinalQRAmount   float64 `json:"monto_final_qr"`
	DayCashSum      float64 `json:"sumatoria_dia_efectivo"`
	GrandTotal      float64 `json:"total_general"`
}

// PendingSummary recaps the paid orders not yet attributed to any session.
type PendingSummary struct {
	Count      int     `json:"cantidad_pedidos"`
	CashTotal  float64 `json:"total_efectivo"`
	QRTotal    float64 `json:"total_qr"`
	GrandTotal float64 `json:"total_general"`
}
