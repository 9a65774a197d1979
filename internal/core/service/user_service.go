package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Soruj24/e-Commarce-tsx-server/internal/core/domain"
	"github.com/Soruj24/e-Commarce-tsx-server/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// UserService orchestrates the user lifecycle: signup, lookup, listing,
// update and delete. It owns the ordering of the signup pipeline; the
// transport layer has already run field validation by the time Signup is
// called.
type UserService struct {
	repo     ports.UserRepository
	uploader ports.ImageUploader
	hasher   ports.PasswordHasher
	// requireImage switches signup between the upload-required and
	// image-optional variants of the API.
	requireImage bool
	logger       zerolog.Logger
}

func NewUserService(
	repo ports.UserRepository,
	uploader ports.ImageUploader,
	hasher ports.PasswordHasher,
	requireImage bool,
	logger zerolog.Logger,
) *UserService {
	return &UserService{
		repo:         repo,
		uploader:     uploader,
		hasher:       hasher,
		requireImage: requireImage,
		logger:       logger,
	}
}

// Signup runs the pipeline: upload image (or skip) → uniqueness pre-check →
// hash password → persist. The first failing step aborts the rest; the
// store's unique index remains the final arbiter on concurrent signups with
// the same email.
func (s *UserService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	imageURL := domain.DefaultImageURL
	switch {
	case input.ImagePath != "":
		url, err := s.uploader.Upload(ctx, input.ImagePath)
		if err != nil {
			s.logger.Error().Err(err).Str("email", input.Email).Msg("image upload failed")
			return nil, domain.ErrUploadFailed
		}
		imageURL = url
	case s.requireImage:
		return nil, domain.ErrNoImage
	}

	// Fail-fast optimization only; the unique index decides under races.
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        strings.ToLower(input.Email),
		PasswordHash: digest,
		ImageURL:     imageURL,
		Role:         domain.RoleUser,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user created")
	return created, nil
}

// GetUser validates the id shape and fetches the record.
func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if !domain.IsValidID(id) {
		return nil, domain.ErrInvalidUserID
	}
	return s.repo.FindByID(ctx, id)
}

// ListUsers returns a page of users with pagination metadata.
func (s *UserService) ListUsers(ctx context.Context, input ports.ListUsersInput) (*ports.ListUsersResult, error) {
	page := input.Page
	if page <= 0 {
		page = defaultPage
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	filter := ports.ListUsersFilter{
		Search:    input.Search,
		Role:      input.Role,
		IsActive:  input.IsActive,
		SortBy:    normalizeSortField(input.SortBy),
		Ascending: !strings.EqualFold(input.Order, "desc"),
		Page:      page,
		Limit:     limit,
	}

	items, total, err := s.repo.FindPage(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list users")
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListUsersResult{
		Items: items,
		Total: total,
		Pagination: ports.Pagination{
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}

// UpdateUser applies the field filter: email changes are rejected outright,
// username is the only mutable field, and an update that leaves nothing to
// change fails instead of performing a no-op write.
func (s *UserService) UpdateUser(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	if !domain.IsValidID(input.ID) {
		return nil, domain.ErrInvalidUserID
	}
	if _, err := s.repo.FindByID(ctx, input.ID); err != nil {
		return nil, err
	}

	if input.Email != nil {
		return nil, domain.ErrEmailImmutable
	}
	if input.Username == nil || strings.TrimSpace(*input.Username) == "" {
		return nil, domain.ErrNothingToUpdate
	}

	username := strings.TrimSpace(*input.Username)
	if len(username) < 3 {
		return nil, domain.NewValidationError("username must be at least 3 characters long")
	}
	if len(username) > 30 {
		return nil, domain.NewValidationError("username must be at most 30 characters long")
	}

	updated, err := s.repo.UpdateByID(ctx, input.ID, username)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", input.ID).Msg("user updated")
	return updated, nil
}

// DeleteUser fetches before deleting so a missing record yields 404 rather
// than a false success; repeating the delete reports 404 on the second call.
func (s *UserService) DeleteUser(ctx context.Context, id string) (*domain.User, error) {
	if !domain.IsValidID(id) {
		return nil, domain.ErrInvalidUserID
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	removed, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return removed, nil
}

func normalizeSortField(field string) string {
	switch field {
	case "username", "email", "createdAt":
		return field
	default:
		return "createdAt"
	}
}
