package request

import "gearshare/internal/usecase/commands"

type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

func (r CreateItemRequest) ToInput() commands.CreateItemInput {
	return commands.CreateItemInput{
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available != nil && *r.Available,
		RequestID:   r.RequestID,
	}
}

type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
	RequestID   *int64  `json:"requestId,omitempty"`
}

func (r UpdateItemRequest) ToInput() commands.UpdateItemInput {
	return commands.UpdateItemInput{
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
		RequestID:   r.RequestID,
	}
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}
