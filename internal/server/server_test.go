package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"newsroom/internal/config"
	"newsroom/internal/database"
	"newsroom/internal/models"
	"newsroom/internal/prompt"
	"newsroom/internal/repository"
	"newsroom/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// recordGenerator captures the arguments of the last Generate call and
// returns a canned string.
type recordGenerator struct {
	text      string
	category  string
	groupName string
}

func (g *recordGenerator) Generate(_ context.Context, category, groupName string) string {
	g.category = category
	g.groupName = groupName
	if g.text != "" {
		return g.text
	}
	return prompt.Fallback(groupName)
}

// newTestServer builds a Server over an in-memory SQLite database. Redis is
// absent, so caching degrades to direct loads.
func newTestServer(t *testing.T) (*Server, *gorm.DB, *recordGenerator) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	gen := &recordGenerator{}
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	postRepo := repository.NewPostRepository(db)

	s := &Server{
		config:    &config.Config{JWTSecret: "test_secret", Env: "test"},
		db:        db,
		userRepo:  userRepo,
		groupRepo: groupRepo,
		postRepo:  postRepo,
		generator: gen,
	}
	s.userService = service.NewUserService(userRepo)
	s.groupService = service.NewGroupService(groupRepo, postRepo, userRepo, gen)
	s.postService = service.NewPostService(postRepo, userRepo, groupRepo)
	return s, db, gen
}

// asUser injects the authenticated user ID the way AuthRequired would.
func asUser(userID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	}
}

func seedUser(t *testing.T, db *gorm.DB, username, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedGroup(t *testing.T, db *gorm.DB, name, category string) *models.NewsGroup {
	t.Helper()
	group := &models.NewsGroup{Name: name, Category: category}
	require.NoError(t, db.Create(group).Error)
	return group
}

func decodeBody(t *testing.T, resp *http.Response, dest interface{}) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, dest))
}
