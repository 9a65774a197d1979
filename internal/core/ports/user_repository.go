package ports

import (
	"context"

	"github.com/Soruj24/e-Commarce-tsx-server/internal/core/domain"
)

// ListUsersFilter carries all query parameters for a paginated user listing.
type ListUsersFilter struct {
	Search    string // optional: case-insensitive substring over username/email/role
	Role      string // optional: exact match
	IsActive  *bool  // optional: exact match
	SortBy    string // createdAt, username or email
	Ascending bool
	Page      int // 1-based
	Limit     int // rows per page
}

// UserRepository defines persistence operations for user accounts.
// Create must fail with domain.ErrEmailTaken when the store's unique email
// constraint is violated; callers treat that as authoritative over any
// pre-check. All id-taking methods receive a syntactically valid id.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdateByID(ctx context.Context, id string, username string) (*domain.User, error)
	DeleteByID(ctx context.Context, id string) (*domain.User, error)
	// FindPage returns a page of users matching filter and the total match count.
	FindPage(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
}
