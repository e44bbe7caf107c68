// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"newsroom/internal/models"
	"newsroom/internal/prompt"

	"gorm.io/gorm"
)

// Seeder populates the database with demo users, groups, and posts.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// builtinGroups are the groups every fresh installation starts with.
var builtinGroups = []models.NewsGroup{
	{Name: "World News", Category: "News"},
	{Name: "Tech Weekly", Category: "Technology"},
	{Name: "Markets and Money", Category: "Finance"},
	{Name: "Local Sports", Category: "Sports"},
	{Name: "Science Digest", Category: "Science"},
	{Name: "Arts and Culture", Category: "Culture"},
}

// ClearAll removes all seeded data. Postgres only.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE posts, group_memberships, news_groups, users RESTART IDENTITY CASCADE;`
	return s.db.Exec(sql).Error
}

// EnsureBuiltinGroups creates the default groups if they are missing.
// Existing groups with the same name are left untouched.
func (s *Seeder) EnsureBuiltinGroups() ([]models.NewsGroup, error) {
	groups := make([]models.NewsGroup, 0, len(builtinGroups))
	for _, g := range builtinGroups {
		group := g
		if group.PromptOfTheWeek == "" {
			group.PromptOfTheWeek = prompt.Fallback(group.Name)
		}
		var existing models.NewsGroup
		err := s.db.Where("name = ?", group.Name).First(&existing).Error
		switch {
		case err == nil:
			groups = append(groups, existing)
			continue
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, fmt.Errorf("lookup group %q: %w", group.Name, err)
		}
		if err := s.db.Create(&group).Error; err != nil {
			return nil, fmt.Errorf("create group %q: %w", group.Name, err)
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// SeedCommunity creates users, makes them members of random groups, and
// writes posts on their behalf. Returns the created users.
func (s *Seeder) SeedCommunity(numUsers, numPosts int) ([]*models.User, error) {
	f := NewFactory(s.db)

	groups, err := s.EnsureBuiltinGroups()
	if err != nil {
		return nil, err
	}
	log.Printf("%d groups available", len(groups))

	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("%d users created", len(users))

	//nolint:gosec // weak randomness is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Each user joins one to three groups.
	for _, user := range users {
		joins := 1 + r.Intn(3)
		for j := 0; j < joins; j++ {
			group := groups[r.Intn(len(groups))]
			if err := f.JoinGroup(user, &group); err != nil {
				return nil, fmt.Errorf("join group: %w", err)
			}
		}
	}

	for i := 0; i < numPosts; i++ {
		user := users[r.Intn(len(users))]
		group := groups[r.Intn(len(groups))]
		if _, err := f.CreatePost(user, &group); err != nil {
			return nil, fmt.Errorf("create post: %w", err)
		}
	}
	log.Printf("%d posts created", numPosts)

	return users, nil
}
