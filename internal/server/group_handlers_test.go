package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"newsroom/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupMembershipEndpoints(t *testing.T) {
	s, db, _ := newTestServer(t)
	user := seedUser(t, db, "ada", "pw")
	group := seedGroup(t, db, "World News", "News")

	app := fiber.New()
	app.Post("/api/groups/:id/members", asUser(user.ID), s.AddGroupMember)
	app.Delete("/api/groups/:id/members", asUser(user.ID), s.RemoveGroupMember)

	join := func() *http.Response {
		req := httptest.NewRequest(http.MethodPost, "/api/groups/1/members", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	var body map[string]bool

	// First join reports true.
	decodeBody(t, join(), &body)
	assert.True(t, body["added"])

	// Second join is idempotent and reports false.
	decodeBody(t, join(), &body)
	assert.False(t, body["added"])

	var count int64
	require.NoError(t, db.Model(&models.GroupMembership{}).Where("group_id = ?", group.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Leave reports true, a repeat leave reports false.
	req := httptest.NewRequest(http.MethodDelete, "/api/groups/1/members", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	decodeBody(t, resp, &body)
	assert.True(t, body["removed"])

	req = httptest.NewRequest(http.MethodDelete, "/api/groups/1/members", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	decodeBody(t, resp, &body)
	assert.False(t, body["removed"])
}

func TestAddGroupMember_UnknownGroup(t *testing.T) {
	s, db, _ := newTestServer(t)
	user := seedUser(t, db, "ada", "pw")

	app := fiber.New()
	app.Post("/api/groups/:id/members", asUser(user.ID), s.AddGroupMember)

	req := httptest.NewRequest(http.MethodPost, "/api/groups/999/members", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetGroup_DetailFlags(t *testing.T) {
	s, db, _ := newTestServer(t)
	ada := seedUser(t, db, "ada", "pw")
	bob := seedUser(t, db, "bob", "pw")
	group := seedGroup(t, db, "Tech Weekly", "Technology")

	require.NoError(t, db.Create(&models.GroupMembership{GroupID: group.ID, UserID: ada.ID}).Error)
	require.NoError(t, db.Create(&models.GroupMembership{GroupID: group.ID, UserID: bob.ID}).Error)
	require.NoError(t, db.Create(&models.Post{
		Title: "A headline", Content: "Body", UserID: ada.ID, GroupID: group.ID,
	}).Error)

	app := fiber.New()
	app.Get("/api/groups/:id", s.GetGroup)

	t.Run("counts only by default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/groups/1", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		var detail models.GroupDetail
		decodeBody(t, resp, &detail)
		assert.Equal(t, "Tech Weekly", detail.Name)
		assert.Equal(t, int64(2), detail.MemberCount)
		assert.Equal(t, int64(1), detail.PostCount)
		assert.Empty(t, detail.Members)
		assert.Empty(t, detail.Posts)
	})

	t.Run("flags attach roster and posts", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/groups/1?include_members=true&include_posts=true", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		var detail models.GroupDetail
		decodeBody(t, resp, &detail)
		require.Len(t, detail.Members, 2)
		assert.Equal(t, "ada", detail.Members[0].Username)
		require.Len(t, detail.Posts, 1)
		assert.Equal(t, "ada", detail.Posts[0].Author)
		assert.NotEmpty(t, detail.Posts[0].Timestamp)
	})
}

func TestRefreshGroupPrompt(t *testing.T) {
	s, db, gen := newTestServer(t)
	user := seedUser(t, db, "ada", "pw")
	group := seedGroup(t, db, "K-Pop Fans", "Music")
	group.PromptOfTheWeek = "old question?"
	require.NoError(t, db.Save(group).Error)

	app := fiber.New()
	app.Post("/api/groups/:id/prompt/refresh", asUser(user.ID), s.RefreshGroupPrompt)

	gen.text = "Which comeback surprised you most?"
	req := httptest.NewRequest(http.MethodPost, "/api/groups/1/prompt/refresh", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Which comeback surprised you most?", body["prompt"])
	assert.Equal(t, "Music", gen.category)
	assert.Equal(t, "K-Pop Fans", gen.groupName)

	var stored models.NewsGroup
	require.NoError(t, db.First(&stored, group.ID).Error)
	assert.Equal(t, "Which comeback surprised you most?", stored.PromptOfTheWeek)
}

func TestClearGroupPosts(t *testing.T) {
	s, db, _ := newTestServer(t)
	ada := seedUser(t, db, "ada", "pw")
	tech := seedGroup(t, db, "Tech Weekly", "Technology")
	sports := seedGroup(t, db, "Local Sports", "Sports")

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Post{
			Title: "t", Content: "c", UserID: ada.ID, GroupID: tech.ID,
		}).Error)
	}
	require.NoError(t, db.Create(&models.Post{
		Title: "s", Content: "c", UserID: ada.ID, GroupID: sports.ID,
	}).Error)

	app := fiber.New()
	app.Delete("/api/groups/:id/posts", asUser(ada.ID), s.ClearGroupPosts)

	req := httptest.NewRequest(http.MethodDelete, "/api/groups/1/posts", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "posts cleared", body["status"])

	var techCount, sportsCount int64
	require.NoError(t, db.Model(&models.Post{}).Where("group_id = ?", tech.ID).Count(&techCount).Error)
	require.NoError(t, db.Model(&models.Post{}).Where("group_id = ?", sports.ID).Count(&sportsCount).Error)
	assert.Equal(t, int64(0), techCount)
	assert.Equal(t, int64(1), sportsCount)
}

func TestCreateGroup(t *testing.T) {
	s, db, _ := newTestServer(t)
	user := seedUser(t, db, "ada", "pw")

	app := fiber.New()
	app.Post("/api/groups", asUser(user.ID), s.CreateGroup)

	payload, _ := json.Marshal(map[string]string{
		"name":     "Science Digest",
		"category": "Science",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/groups", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var group models.NewsGroup
	decodeBody(t, resp, &group)
	assert.Equal(t, "Science Digest", group.Name)
	assert.NotZero(t, group.ID)
}
