package request

// OpenRegisterRequest opens a cash register session. The initial amount is
// the cash physically counted into the drawer.
type OpenRegisterRequest struct {
	InitialCashAmount float64 `json:"monto_inicial_efectivo"`
}

// CloseRegisterRequest closes the session identified by CajaID. Discount is
// subtracted from the counted cash total before it is stored.
type CloseRegisterRequest struct {
	CajaID       string  `json:"caja_id" binding:"required"`
	Observations string  `json:"observaciones"`
	Discount     float64 `json:"m_descuento"`
}
