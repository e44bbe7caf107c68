package server

import (
	"newsroom/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me. The caller gets their full record
// with their most recent posts attached.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	user, err := s.userRepo.GetByIDWithPosts(c.Context(), userID, 10)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// GetUserProfile handles GET /api/users/:id. Other users are exposed only
// through the non-secret summary projection.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUserByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user.Summary())
}

// GetAllUsers handles GET /api/users
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	users, err := s.userService.ListUsers(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}
	return c.JSON(summaries)
}

// GetUserPosts handles GET /api/users/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	p := parsePagination(c, 20)

	posts, err := s.postRepo.GetByUserID(c.Context(), id, p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	dicts := make([]models.PostDict, 0, len(posts))
	for _, post := range posts {
		dicts = append(dicts, post.Dict())
	}
	return c.JSON(dicts)
}

// UpdateMyProfilePicture handles PUT /api/users/me
func (s *Server) UpdateMyProfilePicture(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		ProfilePic string `json:"profile_pic"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfilePicture(c.Context(), userID, req.ProfilePic)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// UpdateMyEmail handles PUT /api/users/me/email
func (s *Server) UpdateMyEmail(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateEmail(c.Context(), userID, req.Email)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// ChangeMyPassword handles PUT /api/users/me/password
func (s *Server) ChangeMyPassword(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.userService.ChangePassword(c.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"status": "password updated"})
}
