package server

import (
	"newsroom/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetGroups handles GET /api/groups
func (s *Server) GetGroups(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	groups, err := s.groupService.ListGroups(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(groups)
}

// GetGroup handles GET /api/groups/:id. The query flags include_members and
// include_posts attach the member roster and the most recent posts.
func (s *Server) GetGroup(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	includeMembers := c.QueryBool("include_members", false)
	includePosts := c.QueryBool("include_posts", false)

	detail, err := s.groupService.Detail(c.Context(), id, includeMembers, includePosts)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(detail)
}

// CreateGroup handles POST /api/groups
func (s *Server) CreateGroup(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		Category string `json:"category"`
		Prompt   string `json:"prompt"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	group, err := s.groupService.CreateGroup(c.Context(), req.Name, req.Category, req.Prompt)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}

// UpdateGroup handles PATCH /api/groups/:id
func (s *Server) UpdateGroup(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name     string `json:"name"`
		Category string `json:"category"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	group, err := s.groupService.UpdateGroup(c.Context(), id, req.Name, req.Category)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(group)
}

// AddGroupMember handles POST /api/groups/:id/members. The optional body
// field user_id defaults to the caller, covering both "join" and "add".
func (s *Server) AddGroupMember(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		UserID uint `json:"user_id"`
	}
	// Body is optional; ignore parse errors for an empty body.
	_ = c.BodyParser(&req)

	userID := req.UserID
	if userID == 0 {
		userID = currentUserID(c)
	}

	added, err := s.groupService.AddMember(c.Context(), id, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"added": added})
}

// RemoveGroupMember handles DELETE /api/groups/:id/members
func (s *Server) RemoveGroupMember(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		UserID uint `json:"user_id"`
	}
	_ = c.BodyParser(&req)

	userID := req.UserID
	if userID == 0 {
		userID = currentUserID(c)
	}

	removed, err := s.groupService.RemoveMember(c.Context(), id, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"removed": removed})
}

// GetGroupPosts handles GET /api/groups/:id/posts
func (s *Server) GetGroupPosts(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	p := parsePagination(c, 20)

	posts, err := s.groupService.ListPosts(c.Context(), id, p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	dicts := make([]models.PostDict, 0, len(posts))
	for _, post := range posts {
		dicts = append(dicts, post.Dict())
	}
	return c.JSON(dicts)
}

// RefreshGroupPrompt handles POST /api/groups/:id/prompt/refresh
func (s *Server) RefreshGroupPrompt(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	text, err := s.groupService.RefreshPrompt(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"prompt": text})
}

// ClearGroupPosts handles DELETE /api/groups/:id/posts
func (s *Server) ClearGroupPosts(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeleteAllInGroup(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"status": "posts cleared"})
}
