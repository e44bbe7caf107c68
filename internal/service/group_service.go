package service

import (
	"context"
	"strings"

	"newsroom/internal/models"
	"newsroom/internal/prompt"
	"newsroom/internal/repository"
)

// recentPostsInDetail is how many posts the detail projection attaches.
const recentPostsInDetail = 10

// GroupService implements news group operations, including the membership
// roster and the weekly prompt refresh.
type GroupService struct {
	groupRepo repository.GroupRepository
	postRepo  repository.PostRepository
	userRepo  repository.UserRepository
	generator prompt.Generator
}

// NewGroupService returns a GroupService with all collaborators injected.
func NewGroupService(
	groupRepo repository.GroupRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	generator prompt.Generator,
) *GroupService {
	return &GroupService{
		groupRepo: groupRepo,
		postRepo:  postRepo,
		userRepo:  userRepo,
		generator: generator,
	}
}

// CreateGroup creates and persists a news group. The initial prompt is
// optional.
func (s *GroupService) CreateGroup(ctx context.Context, name, category, initialPrompt string) (*models.NewsGroup, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.NewValidationError("Group name is required")
	}

	group := &models.NewsGroup{
		Name:            name,
		Category:        strings.TrimSpace(category),
		PromptOfTheWeek: initialPrompt,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// UpdateGroup renames and/or recategorizes the group. Empty values leave the
// respective field untouched.
func (s *GroupService) UpdateGroup(ctx context.Context, groupID uint, name, category string) (*models.NewsGroup, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(name); v != "" {
		group.Name = v
	}
	if v := strings.TrimSpace(category); v != "" {
		group.Category = v
	}

	if err := s.groupRepo.Update(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// GetGroupByID fetches a single group.
func (s *GroupService) GetGroupByID(ctx context.Context, id uint) (*models.NewsGroup, error) {
	return s.groupRepo.GetByID(ctx, id)
}

// ListGroups pages through all groups.
func (s *GroupService) ListGroups(ctx context.Context, limit, offset int) ([]models.NewsGroup, error) {
	return s.groupRepo.List(ctx, limit, offset)
}

// AddMember adds the user to the group's roster. Adding an existing member
// is a no-op reported as false.
func (s *GroupService) AddMember(ctx context.Context, groupID, userID uint) (bool, error) {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return false, err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return false, err
	}
	return s.groupRepo.AddMember(ctx, groupID, userID)
}

// RemoveMember removes the user from the roster; removing a non-member
// reports false.
func (s *GroupService) RemoveMember(ctx context.Context, groupID, userID uint) (bool, error) {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return false, err
	}
	return s.groupRepo.RemoveMember(ctx, groupID, userID)
}

// ListPosts returns the group's posts, most recent first. Re-querying
// reflects current state.
func (s *GroupService) ListPosts(ctx context.Context, groupID uint, limit, offset int) ([]*models.Post, error) {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByGroupID(ctx, groupID, limit, offset)
}

// RefreshPrompt asks the generator for a new question of the week. Only a
// non-empty result is stored; otherwise the prior prompt survives and is
// returned unchanged.
func (s *GroupService) RefreshPrompt(ctx context.Context, groupID uint) (string, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(s.generator.Generate(ctx, group.Category, group.Name))
	if text == "" {
		return group.PromptOfTheWeek, nil
	}

	group.PromptOfTheWeek = text
	if err := s.groupRepo.Update(ctx, group); err != nil {
		return "", err
	}
	return text, nil
}

// Detail builds the group projection. Member summaries and the most recent
// posts are attached only when the corresponding flag is set.
func (s *GroupService) Detail(ctx context.Context, groupID uint, includeMembers, includePosts bool) (*models.GroupDetail, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	memberCount, err := s.groupRepo.MemberCount(ctx, groupID)
	if err != nil {
		return nil, err
	}
	postCount, err := s.groupRepo.PostCount(ctx, groupID)
	if err != nil {
		return nil, err
	}

	detail := &models.GroupDetail{
		ID:          group.ID,
		Name:        group.Name,
		Category:    group.Category,
		Prompt:      group.PromptOfTheWeek,
		MemberCount: memberCount,
		PostCount:   postCount,
	}

	if includeMembers {
		members, err := s.groupRepo.Members(ctx, groupID)
		if err != nil {
			return nil, err
		}
		detail.Members = make([]models.UserSummary, 0, len(members))
		for i := range members {
			detail.Members = append(detail.Members, members[i].Summary())
		}
	}

	if includePosts {
		posts, err := s.postRepo.GetByGroupID(ctx, groupID, recentPostsInDetail, 0)
		if err != nil {
			return nil, err
		}
		detail.Posts = make([]models.PostDict, 0, len(posts))
		for _, post := range posts {
			detail.Posts = append(detail.Posts, post.Dict())
		}
	}

	return detail, nil
}
