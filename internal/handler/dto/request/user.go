package request

import "gearshare/internal/usecase/commands"

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

func (r CreateUserRequest) ToInput() commands.CreateUserInput {
	return commands.CreateUserInput{
		Name:  r.Name,
		Email: r.Email,
	}
}

type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

func (r UpdateUserRequest) ToInput() commands.UpdateUserInput {
	return commands.UpdateUserInput{
		Name:  r.Name,
		Email: r.Email,
	}
}
