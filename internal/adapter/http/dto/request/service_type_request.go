package request

import "turismo_xpto/internal/usecase/interfaces"

type SortOrderItemRequest struct {
	ID        string `json:"id" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

// ReorderServiceTypesRequest reassigns listing positions for the whole
// category catalog in one batch.
type ReorderServiceTypesRequest struct {
	Items []SortOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r ReorderServiceTypesRequest) ToUpdates() []interfaces.SortOrderUpdate {
	updates := make([]interfaces.SortOrderUpdate, 0, len(r.Items))
	for _, it := range r.Items {
		updates = append(updates, interfaces.SortOrderUpdate{ID: it.ID, SortOrder: it.SortOrder})
	}
	return updates
}
