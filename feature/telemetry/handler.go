package telemetry

import (
	"time"

	"bas-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for telemetry.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the telemetry routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/telemetry")
	group.Get("/outside-air", h.HandleGetOutsideAir)
	group.Get("/:room/occupancy", h.HandleGetRoomOccupancy)
	group.Get("/:room", h.HandleGetRoomSeries)
}

// HandleGetOutsideAir returns the building-wide outside-air series.
// @Summary Get Outside Air
// @Description Get the outside-air temperature and humidity series.
// @Tags telemetry
// @Accept json
// @Produce json
// @Success 200 {object} Series "Outside Air Series"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /telemetry/outside-air [get]
func (h *Handler) HandleGetOutsideAir(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	series, err := h.service.OutsideAir(c.Context())
	if err != nil {
		l.Error("Outside air lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(series)
}

// HandleGetRoomOccupancy returns a room's series from the occupancy subset.
// @Summary Get Room Occupancy Series
// @Description Get the occupancy-subset sensor series for a single room.
// @Tags telemetry
// @Accept json
// @Produce json
// @Param room path string true "Room Identifier (e.g. 'A3-70')"
// @Success 200 {object} Series "Occupancy Series"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /telemetry/{room}/occupancy [get]
func (h *Handler) HandleGetRoomOccupancy(c *fiber.Ctx) error {
	room := c.Params("room")
	l := logger.WithRayID(h.service.logger, c)

	series, err := h.service.OccupancySeries(c.Context(), room)
	if err != nil {
		l.Error("Occupancy series lookup failed", zap.String("room", room), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(series)
}

// HandleGetRoomSeries returns a room's sensor series.
// @Summary Get Room Series
// @Description Get the sensor time series for a single room.
// @Tags telemetry
// @Accept json
// @Produce json
// @Param room path string true "Room Identifier (e.g. 'A3-70')"
// @Param occupied query bool false "Keep only occupied-schedule rows"
// @Param oa query bool false "Merge outside-air columns"
// @Param from query string false "Lower bound (RFC 3339)"
// @Param to query string false "Upper bound (RFC 3339)"
// @Success 200 {object} Series "Room Series"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /telemetry/{room} [get]
func (h *Handler) HandleGetRoomSeries(c *fiber.Ctx) error {
	room := c.Params("room")
	l := logger.WithRayID(h.service.logger, c)

	query := SeriesQuery{
		OccupiedOnly:    c.QueryBool("occupied"),
		MergeOutsideAir: c.QueryBool("oa"),
	}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid 'from' timestamp",
			})
		}
		query.From = t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid 'to' timestamp",
			})
		}
		query.To = t
	}

	series, err := h.service.RoomSeries(c.Context(), room, query)
	if err != nil {
		l.Error("Room series lookup failed", zap.String("room", room), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(series)
}
