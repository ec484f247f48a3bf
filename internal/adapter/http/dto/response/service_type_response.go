package response

import (
	"time"

	"turismo_xpto/internal/domain/entities"
)

type ServiceTypeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromServiceTypes(types []entities.ServiceType) []ServiceTypeResponse {
	out := make([]ServiceTypeResponse, 0, len(types))
	for _, st := range types {
		out = append(out, ServiceTypeResponse{
			ID:        st.ID,
			Name:      st.Name,
			SortOrder: st.SortOrder,
			CreatedAt: st.CreatedAt,
			UpdatedAt: st.UpdatedAt,
		})
	}
	return out
}
