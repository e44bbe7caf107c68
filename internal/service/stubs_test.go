package service

import (
	"context"
	"errors"
	"testing"

	"newsroom/internal/models"
)

type userRepoStub struct {
	getByIDFn          func(context.Context, uint) (*models.User, error)
	getByIDWithPostsFn func(context.Context, uint, int) (*models.User, error)
	getByEmailFn       func(context.Context, string) (*models.User, error)
	getByUsernameFn    func(context.Context, string) (*models.User, error)
	createFn           func(context.Context, *models.User) error
	updateFn           func(context.Context, *models.User) error
	listFn             func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDWithPosts(ctx context.Context, id uint, limit int) (*models.User, error) {
	return s.getByIDWithPostsFn(ctx, id, limit)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:          func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByIDWithPostsFn: func(context.Context, uint, int) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:       func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:           func(context.Context, *models.User) error { return nil },
		updateFn:           func(context.Context, *models.User) error { return nil },
		listFn:             func(context.Context, int, int) ([]models.User, error) { return nil, nil },
	}
}

type groupRepoStub struct {
	getByIDFn      func(context.Context, uint) (*models.NewsGroup, error)
	createFn       func(context.Context, *models.NewsGroup) error
	updateFn       func(context.Context, *models.NewsGroup) error
	listFn         func(context.Context, int, int) ([]models.NewsGroup, error)
	addMemberFn    func(context.Context, uint, uint) (bool, error)
	removeMemberFn func(context.Context, uint, uint) (bool, error)
	membersFn      func(context.Context, uint) ([]models.User, error)
	memberCountFn  func(context.Context, uint) (int64, error)
	postCountFn    func(context.Context, uint) (int64, error)
}

func (s *groupRepoStub) GetByID(ctx context.Context, id uint) (*models.NewsGroup, error) {
	return s.getByIDFn(ctx, id)
}
func (s *groupRepoStub) Create(ctx context.Context, group *models.NewsGroup) error {
	return s.createFn(ctx, group)
}
func (s *groupRepoStub) Update(ctx context.Context, group *models.NewsGroup) error {
	return s.updateFn(ctx, group)
}
func (s *groupRepoStub) List(ctx context.Context, limit, offset int) ([]models.NewsGroup, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *groupRepoStub) AddMember(ctx context.Context, groupID, userID uint) (bool, error) {
	return s.addMemberFn(ctx, groupID, userID)
}
func (s *groupRepoStub) RemoveMember(ctx context.Context, groupID, userID uint) (bool, error) {
	return s.removeMemberFn(ctx, groupID, userID)
}
func (s *groupRepoStub) Members(ctx context.Context, groupID uint) ([]models.User, error) {
	return s.membersFn(ctx, groupID)
}
func (s *groupRepoStub) MemberCount(ctx context.Context, groupID uint) (int64, error) {
	return s.memberCountFn(ctx, groupID)
}
func (s *groupRepoStub) PostCount(ctx context.Context, groupID uint) (int64, error) {
	return s.postCountFn(ctx, groupID)
}

func noopGroupRepo() *groupRepoStub {
	return &groupRepoStub{
		getByIDFn:      func(context.Context, uint) (*models.NewsGroup, error) { return &models.NewsGroup{}, nil },
		createFn:       func(context.Context, *models.NewsGroup) error { return nil },
		updateFn:       func(context.Context, *models.NewsGroup) error { return nil },
		listFn:         func(context.Context, int, int) ([]models.NewsGroup, error) { return nil, nil },
		addMemberFn:    func(context.Context, uint, uint) (bool, error) { return true, nil },
		removeMemberFn: func(context.Context, uint, uint) (bool, error) { return true, nil },
		membersFn:      func(context.Context, uint) ([]models.User, error) { return nil, nil },
		memberCountFn:  func(context.Context, uint) (int64, error) { return 0, nil },
		postCountFn:    func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

type postRepoStub struct {
	createFn           func(context.Context, *models.Post) error
	getByIDFn          func(context.Context, uint) (*models.Post, error)
	getByGroupIDFn     func(context.Context, uint, int, int) ([]*models.Post, error)
	getByUserIDFn      func(context.Context, uint, int, int) ([]*models.Post, error)
	updateFn           func(context.Context, *models.Post) error
	deleteFn           func(context.Context, uint) error
	deleteAllInGroupFn func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) GetByGroupID(ctx context.Context, groupID uint, limit, offset int) ([]*models.Post, error) {
	return s.getByGroupIDFn(ctx, groupID, limit, offset)
}
func (s *postRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) DeleteAllInGroup(ctx context.Context, groupID uint) error {
	return s.deleteAllInGroupFn(ctx, groupID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:           func(context.Context, *models.Post) error { return nil },
		getByIDFn:          func(context.Context, uint) (*models.Post, error) { return &models.Post{}, nil },
		getByGroupIDFn:     func(context.Context, uint, int, int) ([]*models.Post, error) { return nil, nil },
		getByUserIDFn:      func(context.Context, uint, int, int) ([]*models.Post, error) { return nil, nil },
		updateFn:           func(context.Context, *models.Post) error { return nil },
		deleteFn:           func(context.Context, uint) error { return nil },
		deleteAllInGroupFn: func(context.Context, uint) error { return nil },
	}
}

// stubGenerator returns a fixed string for every call.
type stubGenerator struct {
	text string
}

func (g *stubGenerator) Generate(context.Context, string, string) string {
	return g.text
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *models.AppError, got %v", err)
	}
	if appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %s", appErr.Code)
	}
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *models.AppError, got %v", err)
	}
	if appErr.Code != code {
		t.Fatalf("expected %s, got %s", code, appErr.Code)
	}
}
