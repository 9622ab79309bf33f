package response

import (
	"time"

	"gearshare/internal/usecase/queries"
)

type ItemRequestResponse struct {
	ID          int64          `json:"id"`
	Description string         `json:"description"`
	Created     time.Time      `json:"created"`
	Items       []ItemResponse `json:"items"`
}

func FromRequestView(v *queries.RequestView) *ItemRequestResponse {
	return &ItemRequestResponse{
		ID:          v.ID,
		Description: v.Description,
		Created:     v.Created,
		Items:       FromItemList(v.Items),
	}
}

func FromRequestList(views []queries.RequestView) []ItemRequestResponse {
	out := make([]ItemRequestResponse, len(views))
	for i := range views {
		out[i] = *FromRequestView(&views[i])
	}
	return out
}
