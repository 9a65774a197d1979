package ports

import (
	"context"

	"github.com/Soruj24/e-Commarce-tsx-server/internal/core/domain"
)

// SignupInput is the validated payload forwarded by the transport layer.
// ImagePath is the local temp file written by the upload middleware, or
// empty when the request carried no image.
type SignupInput struct {
	Username  string
	Email     string
	Password  string
	ImagePath string
}

// UpdateUserInput distinguishes absent fields from empty ones: a non-nil
// Email means the client tried to change it, which is always rejected.
type UpdateUserInput struct {
	ID       string
	Username *string
	Email    *string
}

// ListUsersInput carries all parameters for the list endpoint.
type ListUsersInput struct {
	Page     int
	Limit    int
	Search   string
	Role     string
	IsActive *bool
	SortBy   string
	Order    string // asc or desc
}

// Pagination describes the page window returned by ListUsers.
type Pagination struct {
	Page       int
	Limit      int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// ListUsersResult is returned by ListUsers.
type ListUsersResult struct {
	Items      []*domain.User
	Total      int64
	Pagination Pagination
}

// UserService defines the user lifecycle use-cases.
type UserService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context, input ListUsersInput) (*ListUsersResult, error)
	UpdateUser(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) (*domain.User, error)
}
