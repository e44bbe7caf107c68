package repository

import (
	"context"
	"errors"

	"newsroom/internal/cache"
	"newsroom/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GroupRepository defines persistence operations for news groups and their
// membership roster.
type GroupRepository interface {
	GetByID(ctx context.Context, id uint) (*models.NewsGroup, error)
	Create(ctx context.Context, group *models.NewsGroup) error
	Update(ctx context.Context, group *models.NewsGroup) error
	List(ctx context.Context, limit, offset int) ([]models.NewsGroup, error)
	AddMember(ctx context.Context, groupID, userID uint) (bool, error)
	RemoveMember(ctx context.Context, groupID, userID uint) (bool, error)
	Members(ctx context.Context, groupID uint) ([]models.User, error)
	MemberCount(ctx context.Context, groupID uint) (int64, error)
	PostCount(ctx context.Context, groupID uint) (int64, error)
}

type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository returns a new GroupRepository implementation.
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) GetByID(ctx context.Context, id uint) (*models.NewsGroup, error) {
	var group models.NewsGroup
	key := cache.GroupKey(id)

	err := cache.Aside(ctx, key, &group, cache.GroupTTL, func() error {
		if err := r.db.WithContext(ctx).First(&group, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("NewsGroup", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) Create(ctx context.Context, group *models.NewsGroup) error {
	if err := r.db.WithContext(ctx).Create(group).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *groupRepository) Update(ctx context.Context, group *models.NewsGroup) error {
	if err := r.db.WithContext(ctx).Save(group).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateGroup(ctx, group.ID)
	return nil
}

func (r *groupRepository) List(ctx context.Context, limit, offset int) ([]models.NewsGroup, error) {
	var groups []models.NewsGroup
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&groups).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return groups, nil
}

// AddMember inserts the membership row. The composite primary key makes the
// insert idempotent: a duplicate add affects zero rows and reports false.
func (r *groupRepository) AddMember(ctx context.Context, groupID, userID uint) (bool, error) {
	membership := models.GroupMembership{GroupID: groupID, UserID: userID}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&membership)
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	if res.RowsAffected > 0 {
		cache.InvalidateGroup(ctx, groupID)
	}
	return res.RowsAffected > 0, nil
}

// RemoveMember deletes the membership row; removing a non-member affects
// zero rows and reports false.
func (r *groupRepository) RemoveMember(ctx context.Context, groupID, userID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&models.GroupMembership{})
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	if res.RowsAffected > 0 {
		cache.InvalidateGroup(ctx, groupID)
	}
	return res.RowsAffected > 0, nil
}

func (r *groupRepository) Members(ctx context.Context, groupID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Joins("JOIN group_memberships gm ON gm.user_id = users.id").
		Where("gm.group_id = ?", groupID).
		Order("users.username ASC").
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *groupRepository) MemberCount(ctx context.Context, groupID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.GroupMembership{}).
		Where("group_id = ?", groupID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *groupRepository) PostCount(ctx context.Context, groupID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("group_id = ?", groupID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
