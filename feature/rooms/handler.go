package rooms

import (
	"bas-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for rooms.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the rooms routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/rooms")
	group.Get("/", h.HandleListRooms)
	group.Get("/:identifier", h.HandleGetRoomDetail)
}

// HandleListRooms returns a summary of every rostered room.
// @Summary List Rooms
// @Description List all rooms in the curated roster.
// @Tags rooms
// @Accept json
// @Produce json
// @Success 200 {array} models.RoomSummary "Rooms"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /rooms [get]
func (h *Handler) HandleListRooms(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	summaries, err := h.service.ListRooms(c.Context())
	if err != nil {
		l.Error("Room listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(summaries)
}

// HandleGetRoomDetail returns a detailed report for a single room.
// @Summary Get Room Detail
// @Description Get detailed integrity report for a specific room.
// @Tags rooms
// @Accept json
// @Produce json
// @Param identifier path string true "Room ID or occupant name (e.g. 'A3-70')"
// @Success 200 {object} models.RoomDetailReport "Room Detail"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /rooms/{identifier} [get]
func (h *Handler) HandleGetRoomDetail(c *fiber.Ctx) error {
	identifier := c.Params("identifier")
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.GetRoomDetail(c.Context(), identifier)
	if err != nil {
		l.Error("Room detail check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
