package response

import (
	"time"

	"gearshare/internal/usecase/queries"
)

type BookingResponse struct {
	ID     int64           `json:"id"`
	Start  time.Time       `json:"start"`
	End    time.Time       `json:"end"`
	Status string          `json:"status"`
	Item   ItemRefResponse `json:"item"`
	Booker UserRefResponse `json:"booker"`
}

type ItemRefResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type UserRefResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:     v.ID,
		Start:  v.Start,
		End:    v.End,
		Status: v.Status,
		Item:   ItemRefResponse{ID: v.Item.ID, Name: v.Item.Name},
		Booker: UserRefResponse{ID: v.Booker.ID, Name: v.Booker.Name},
	}
}

func FromBookingList(views []queries.BookingView) []BookingResponse {
	out := make([]BookingResponse, len(views))
	for i := range views {
		out[i] = *FromBookingView(&views[i])
	}
	return out
}
