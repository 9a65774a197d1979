package handler

import (
	"time"

	"github.com/Soruj24/e-Commarce-tsx-server/internal/core/domain"
)

// envelope is the uniform response wrapper used by every endpoint, success
// and failure alike, so clients need a single parsing path.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Payload any    `json:"payload,omitempty"`
}

type signupRequest struct {
	Username        string `json:"username" form:"username" validate:"required,min=3,max=30"`
	Email           string `json:"email"    form:"email"    validate:"required,strict_email"`
	Password        string `json:"password" form:"password" validate:"required,min=6,password_complexity"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"required,eqfield=Password"`
}

// updateUserRequest uses pointers so an email key that is merely present
// can be told apart from one that is absent.
type updateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Image     string    `json:"image"`
	Role      string    `json:"role"`
	IsAdmin   bool      `json:"isAdmin"`
	IsActive  bool      `json:"isActive"`
	IsBanned  bool      `json:"isBanned"`
	CreatedAt time.Time `json:"createdAt"`
}

type paginationResponse struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

type listUsersPayload struct {
	Users      []userResponse     `json:"users"`
	Count      int                `json:"count"`
	TotalUser  int64              `json:"totalUser"`
	Pagination paginationResponse `json:"pagination"`
}

type userPayload struct {
	User userResponse `json:"user"`
}

// toUserResponse maps the domain entity to the wire shape. The password
// digest has no representation here at all.
func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Image:     u.ImageURL,
		Role:      u.Role,
		IsAdmin:   u.IsAdmin,
		IsActive:  u.IsActive,
		IsBanned:  u.IsBanned,
		CreatedAt: u.CreatedAt,
	}
}

func toUserListResponse(users []*domain.User) []userResponse {
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return out
}
