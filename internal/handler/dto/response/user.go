package response

import "gearshare/internal/usecase/queries"

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:    v.ID,
		Name:  v.Name,
		Email: v.Email,
	}
}

func FromUserList(views []queries.UserView) []UserResponse {
	out := make([]UserResponse, len(views))
	for i := range views {
		out[i] = *FromUserView(&views[i])
	}
	return out
}
