package seed

import (
	"fmt"
	"math/rand"
	"time"

	"newsroom/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // weak randomness is fine for seeding
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser constructs and persists a sample user. All seeded users share
// the password "password123". Optional override functions may modify the
// generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		Username:   gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:      gofakeit.Email(),
		Password:   string(hashed),
		ProfilePic: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateGroup constructs and persists a sample news group.
func (f *Factory) CreateGroup(overrides ...func(*models.NewsGroup)) (*models.NewsGroup, error) {
	group := &models.NewsGroup{
		Name:     gofakeit.BuzzWord() + " " + gofakeit.NounAbstract(),
		Category: gofakeit.RandomString([]string{"News", "Technology", "Finance", "Sports", "Science", "Culture"}),
	}

	for _, override := range overrides {
		override(group)
	}

	if err := f.db.Create(group).Error; err != nil {
		return nil, err
	}
	return group, nil
}

// JoinGroup makes the user a member of the group. Joining twice is a no-op.
func (f *Factory) JoinGroup(user *models.User, group *models.NewsGroup) error {
	membership := models.GroupMembership{GroupID: group.ID, UserID: user.ID}
	return f.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&membership).Error
}

// CreatePost constructs and persists a post by the user in the group, with
// a creation time spread over the last 90 days for realistic timelines.
func (f *Factory) CreatePost(user *models.User, group *models.NewsGroup, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Title:   gofakeit.Sentence(5),
		Content: gofakeit.Paragraph(1, 3, 5, "\n"),
		UserID:  user.ID,
		GroupID: group.ID,
	}

	daysBack := f.r.Intn(90)
	hoursBack := f.r.Intn(24)
	when := time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)
	post.CreatedAt = when
	post.UpdatedAt = when

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}
