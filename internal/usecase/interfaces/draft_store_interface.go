package interfaces

import "github.com/copdilan8-rgb/lacopita/internal/domain/entities"

// IDraftStore holds the in-progress draft order for each client key, the
// server-side analog of the per-tab session storage the UI keeps. Entries are
// ephemeral: settlement success and explicit resets delete them, and stale
// entries expire on their own.

type IDraftStore interface {
	Get(clientID string) (entities.DraftOrder, bool)
	Put(clientID string, draft entities.DraftOrder)
	Delete(clientID string)
}
