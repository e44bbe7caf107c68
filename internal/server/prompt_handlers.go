package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetWeeklyPrompt handles GET /api/weekly-prompt. It accepts groupName and
// category query parameters and falls back to generic placeholders so the
// endpoint always produces a usable prompt, even for anonymous callers.
func (s *Server) GetWeeklyPrompt(c *fiber.Ctx) error {
	groupName := c.Query("groupName", "Your Group")
	category := c.Query("category", "General")

	text := s.generator.Generate(c.Context(), category, groupName)

	// Embeddable widgets load this from arbitrary origins.
	c.Set("Access-Control-Allow-Origin", "*")
	return c.JSON(fiber.Map{"prompt": text})
}
