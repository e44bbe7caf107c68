package service

import (
	"context"
	"errors"
	"strings"

	"newsroom/internal/models"
	"newsroom/internal/repository"
)

// PostService implements post operations.
type PostService struct {
	postRepo  repository.PostRepository
	userRepo  repository.UserRepository
	groupRepo repository.GroupRepository
}

// CreatePostInput carries the fields for a new post.
type CreatePostInput struct {
	Title   string
	Content string
	UserID  uint
	GroupID uint
}

// EditPostInput carries optional replacement fields for an edit. Nil leaves
// the respective field untouched; the timestamp is bumped regardless.
type EditPostInput struct {
	Title   *string
	Content *string
}

// NewPostService returns a PostService with all collaborators injected.
func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
) *PostService {
	return &PostService{
		postRepo:  postRepo,
		userRepo:  userRepo,
		groupRepo: groupRepo,
	}
}

// CreatePost validates that author and group resolve to existing entities,
// then persists the post immediately.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required")
	}

	author, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, asReferenceError(err, "Author does not exist")
	}
	if _, err := s.groupRepo.GetByID(ctx, in.GroupID); err != nil {
		return nil, asReferenceError(err, "Group does not exist")
	}

	post := &models.Post{
		Title:   in.Title,
		Content: in.Content,
		UserID:  in.UserID,
		GroupID: in.GroupID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	post.User = *author
	return post, nil
}

// asReferenceError converts a not-found lookup into a validation failure,
// since an unresolvable reference at create time is a caller input error.
func asReferenceError(err error, message string) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) && appErr.Code == "NOT_FOUND" {
		return models.NewValidationError(message)
	}
	return err
}

// GetPost fetches a post with its author loaded.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// EditPost applies whichever of title/content is supplied. Supplying neither
// is a valid no-op aside from the timestamp bump, which Save always performs.
func (s *PostService) EditPost(ctx context.Context, postID uint, in EditPostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, models.NewValidationError("Title must not be empty")
		}
		post.Title = *in.Title
	}
	if in.Content != nil {
		if strings.TrimSpace(*in.Content) == "" {
			return nil, models.NewValidationError("Content must not be empty")
		}
		post.Content = *in.Content
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a single post.
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	if _, err := s.postRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, id)
}

// DeleteAllInGroup clears every post in the group; the underlying delete is
// transactional so a failure leaves the group's posts intact.
func (s *PostService) DeleteAllInGroup(ctx context.Context, groupID uint) error {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return err
	}
	return s.postRepo.DeleteAllInGroup(ctx, groupID)
}
