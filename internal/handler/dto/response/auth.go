package response

import (
	"time"

	"portaria/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

type LoginResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"accessToken"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

func FromAuthorizedUserRM(rm *readmodel.AuthorizedUserRM) UserResponse {
	return UserResponse{
		ID:          rm.ID,
		DisplayName: rm.DisplayName,
		Email:       rm.Email,
		Role:        rm.Role,
		CreatedAt:   rm.CreatedAt,
	}
}
