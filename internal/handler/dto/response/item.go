package response

import (
	"time"

	"gearshare/internal/usecase/queries"
)

type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// BookingRefResponse is the short booking form embedded in an owner's item
// view.
type BookingRefResponse struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

type ItemDetailResponse struct {
	ItemResponse
	Comments    []CommentResponse   `json:"comments"`
	NextBooking *BookingRefResponse `json:"nextBooking"`
	LastBooking *BookingRefResponse `json:"lastBooking"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	return &ItemResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Available:   v.Available,
		RequestID:   v.RequestID,
	}
}

func FromItemList(views []queries.ItemView) []ItemResponse {
	out := make([]ItemResponse, len(views))
	for i := range views {
		out[i] = *FromItemView(&views[i])
	}
	return out
}

func FromItemDetailView(v *queries.ItemDetailView) *ItemDetailResponse {
	return &ItemDetailResponse{
		ItemResponse: *FromItemView(&v.ItemView),
		Comments:     FromCommentList(v.Comments),
		NextBooking:  bookingRef(v.NextBooking),
		LastBooking:  bookingRef(v.LastBooking),
	}
}

func FromItemDetailList(views []queries.ItemDetailView) []ItemDetailResponse {
	out := make([]ItemDetailResponse, len(views))
	for i := range views {
		out[i] = *FromItemDetailView(&views[i])
	}
	return out
}

func FromCommentView(v *queries.CommentView) *CommentResponse {
	return &CommentResponse{
		ID:         v.ID,
		Text:       v.Text,
		AuthorName: v.AuthorName,
		Created:    v.Created,
	}
}

func FromCommentList(views []queries.CommentView) []CommentResponse {
	out := make([]CommentResponse, len(views))
	for i := range views {
		out[i] = *FromCommentView(&views[i])
	}
	return out
}

func bookingRef(v *queries.BookingView) *BookingRefResponse {
	if v == nil {
		return nil
	}
	return &BookingRefResponse{ID: v.ID, BookerID: v.Booker.ID}
}
