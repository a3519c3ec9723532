package request

import "github.com/copdilan8-rgb/lacopita/internal/domain/entities"

// SaveDraftRequest replaces the stored draft for a client device.
type SaveDraftRequest struct {
	Table string             `json:"mesa"`
	Note  string             `json:"nota"`
	Items []DraftItemRequest `json:"items"`
}

func (r SaveDraftRequest) ToDraft() entities.DraftOrder {
	return ConfirmOrderRequest{Table: r.Table, Note: r.Note, Items: r.Items}.ToDraft()
}
