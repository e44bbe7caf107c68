package service

import (
	"context"
	"testing"

	"newsroom/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupService_CreateGroup(t *testing.T) {
	t.Parallel()

	t.Run("blank name is rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewGroupService(noopGroupRepo(), noopPostRepo(), noopUserRepo(), &stubGenerator{})
		_, err := svc.CreateGroup(context.Background(), "   ", "News", "")
		assertValidationError(t, err)
	})

	t.Run("name and category are trimmed", func(t *testing.T) {
		t.Parallel()
		repo := noopGroupRepo()
		var created *models.NewsGroup
		repo.createFn = func(_ context.Context, g *models.NewsGroup) error {
			created = g
			g.ID = 4
			return nil
		}
		svc := NewGroupService(repo, noopPostRepo(), noopUserRepo(), &stubGenerator{})
		group, err := svc.CreateGroup(context.Background(), " K-Pop Fans ", " Music ", "")
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "K-Pop Fans", group.Name)
		assert.Equal(t, "Music", group.Category)
	})
}

func TestGroupService_UpdateGroup(t *testing.T) {
	t.Parallel()

	t.Run("empty fields leave prior values", func(t *testing.T) {
		t.Parallel()
		repo := noopGroupRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.NewsGroup, error) {
			return &models.NewsGroup{ID: id, Name: "World News", Category: "News"}, nil
		}
		svc := NewGroupService(repo, noopPostRepo(), noopUserRepo(), &stubGenerator{})

		group, err := svc.UpdateGroup(context.Background(), 1, "Global News", "")
		require.NoError(t, err)
		assert.Equal(t, "Global News", group.Name)
		assert.Equal(t, "News", group.Category, "category should be unchanged when not provided")

		group, err = svc.UpdateGroup(context.Background(), 1, "", "Politics")
		require.NoError(t, err)
		assert.Equal(t, "World News", group.Name, "name should be unchanged when not provided")
		assert.Equal(t, "Politics", group.Category)
	})
}

func TestGroupService_Membership(t *testing.T) {
	t.Parallel()

	t.Run("add requires existing group and user", func(t *testing.T) {
		t.Parallel()
		groupRepo := noopGroupRepo()
		groupRepo.getByIDFn = func(_ context.Context, id uint) (*models.NewsGroup, error) {
			return nil, models.NewNotFoundError("NewsGroup", id)
		}
		svc := NewGroupService(groupRepo, noopPostRepo(), noopUserRepo(), &stubGenerator{})
		_, err := svc.AddMember(context.Background(), 99, 1)
		assertErrorCode(t, err, "NOT_FOUND")
	})

	t.Run("repeated add reports false", func(t *testing.T) {
		t.Parallel()
		groupRepo := noopGroupRepo()
		joined := map[uint]bool{}
		groupRepo.addMemberFn = func(_ context.Context, _, userID uint) (bool, error) {
			if joined[userID] {
				return false, nil
			}
			joined[userID] = true
			return true, nil
		}
		svc := NewGroupService(groupRepo, noopPostRepo(), noopUserRepo(), &stubGenerator{})

		added, err := svc.AddMember(context.Background(), 1, 5)
		require.NoError(t, err)
		assert.True(t, added)

		added, err = svc.AddMember(context.Background(), 1, 5)
		require.NoError(t, err)
		assert.False(t, added, "second add of the same member must be a no-op")
	})

	t.Run("removing a non-member reports false", func(t *testing.T) {
		t.Parallel()
		groupRepo := noopGroupRepo()
		groupRepo.removeMemberFn = func(_ context.Context, _, _ uint) (bool, error) {
			return false, nil
		}
		svc := NewGroupService(groupRepo, noopPostRepo(), noopUserRepo(), &stubGenerator{})
		removed, err := svc.RemoveMember(context.Background(), 1, 5)
		require.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestGroupService_RefreshPrompt(t *testing.T) {
	t.Parallel()

	t.Run("stores and returns a non-empty generated prompt", func(t *testing.T) {
		t.Parallel()
		repo := noopGroupRepo()
		group := &models.NewsGroup{ID: 1, Name: "K-Pop Fans", Category: "Music", PromptOfTheWeek: "old question?"}
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.NewsGroup, error) { return group, nil }
		var saved *models.NewsGroup
		repo.updateFn = func(_ context.Context, g *models.NewsGroup) error {
			saved = g
			return nil
		}
		svc := NewGroupService(repo, noopPostRepo(), noopUserRepo(), &stubGenerator{text: "Which comeback surprised you most?"})

		text, err := svc.RefreshPrompt(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Which comeback surprised you most?", text)
		require.NotNil(t, saved)
		assert.Equal(t, "Which comeback surprised you most?", saved.PromptOfTheWeek)
	})

	t.Run("blank generator output keeps the prior prompt", func(t *testing.T) {
		t.Parallel()
		repo := noopGroupRepo()
		group := &models.NewsGroup{ID: 1, Name: "K-Pop Fans", Category: "Music", PromptOfTheWeek: "old question?"}
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.NewsGroup, error) { return group, nil }
		updated := false
		repo.updateFn = func(_ context.Context, _ *models.NewsGroup) error {
			updated = true
			return nil
		}
		svc := NewGroupService(repo, noopPostRepo(), noopUserRepo(), &stubGenerator{text: "   "})

		text, err := svc.RefreshPrompt(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "old question?", text, "prior prompt must survive a blank generation")
		assert.False(t, updated)
	})
}

func TestGroupService_Detail(t *testing.T) {
	t.Parallel()

	repo := noopGroupRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.NewsGroup, error) {
		return &models.NewsGroup{ID: id, Name: "Tech Weekly", Category: "Technology", PromptOfTheWeek: "q?"}, nil
	}
	repo.memberCountFn = func(context.Context, uint) (int64, error) { return 3, nil }
	repo.postCountFn = func(context.Context, uint) (int64, error) { return 8, nil }
	repo.membersFn = func(context.Context, uint) ([]models.User, error) {
		return []models.User{{ID: 1, Username: "ada"}, {ID: 2, Username: "bob"}}, nil
	}
	postRepo := noopPostRepo()
	postRepo.getByGroupIDFn = func(_ context.Context, _ uint, limit, _ int) ([]*models.Post, error) {
		assert.Equal(t, recentPostsInDetail, limit)
		return []*models.Post{{ID: 10, Title: "t", Content: "c", User: models.User{Username: "ada"}}}, nil
	}
	svc := NewGroupService(repo, postRepo, noopUserRepo(), &stubGenerator{})

	t.Run("counts only by default", func(t *testing.T) {
		detail, err := svc.Detail(context.Background(), 1, false, false)
		require.NoError(t, err)
		assert.Equal(t, int64(3), detail.MemberCount)
		assert.Equal(t, int64(8), detail.PostCount)
		assert.Nil(t, detail.Members)
		assert.Nil(t, detail.Posts)
	})

	t.Run("flags attach roster and recent posts", func(t *testing.T) {
		detail, err := svc.Detail(context.Background(), 1, true, true)
		require.NoError(t, err)
		require.Len(t, detail.Members, 2)
		assert.Equal(t, "ada", detail.Members[0].Username)
		require.Len(t, detail.Posts, 1)
		assert.Equal(t, "ada", detail.Posts[0].Author)
	})
}
