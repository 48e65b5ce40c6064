package integrity

import (
	"bas-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/naming", h.HandleNamingCheck)
	group.Get("/oa", h.HandleOutsideAirCheck)
	group.Get("/occupancy", h.HandleOccupancyCheck)
	group.Get("/database", h.HandleDatabaseCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Structure, Naming, Outside Air, Occupancy, Database).
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	// Structure
	if missing, err := h.service.CheckStructure(ctx); err != nil {
		report["structure"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["structure"] = map[string]interface{}{"status": "ok", "missing": missing}
	}

	// Naming
	if strays, err := h.service.CheckNaming(ctx); err != nil {
		report["naming"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["naming"] = map[string]interface{}{"status": "ok", "strays": strays}
	}

	// Outside air
	if oaReport, err := h.service.CheckOutsideAir(ctx); err != nil {
		report["oa"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["oa"] = oaReport
	}

	// Occupancy subset
	if occReport, err := h.service.CheckOccupancy(ctx); err != nil {
		report["occupancy"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["occupancy"] = occReport
	}

	// Database schema
	if dbReport, err := h.service.CheckDatabase(); err != nil {
		report["database"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["database"] = dbReport
	}

	return c.JSON(report)
}

// HandleStructureCheck checks and optionally fixes the bucket layout.
// @Summary Check Structure
// @Description Checks if the required prefixes and data objects exist in the storage bucket. Optionally creates missing prefixes.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Create missing prefixes"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	missing, err := h.service.CheckStructure(c.Context())
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing layout entries detected", zap.Strings("missing", missing))

		if fix {
			l.Info("Attempting to create missing prefixes")
			if err := h.service.FixStructure(c.Context(), missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleNamingCheck checks and optionally removes stray objects.
// @Summary Check Naming
// @Description Lists objects under the per-room prefixes that break the file naming convention. Optionally deletes them.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Delete stray objects"
// @Success 200 {object} map[string]interface{} "Naming Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/naming [get]
func (h *Handler) HandleNamingCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	strays, err := h.service.CheckNaming(c.Context())
	if err != nil {
		l.Error("Naming check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(strays) > 0 {
		l.Warn("Stray objects detected", zap.Strings("strays", strays))

		if fix {
			l.Info("Deleting stray objects")
			if err := h.service.FixNaming(c.Context(), strays); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to delete strays",
					"details": err.Error(),
					"strays":  strays,
				})
			}
			return c.JSON(fiber.Map{
				"status":  "fixed",
				"deleted": strays,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status": "checked",
		"strays": strays,
	})
}

// HandleOutsideAirCheck verifies the outside-air series.
// @Summary Check Outside Air
// @Description Verifies the outside-air series starts on the expected date and has no gaps.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.OAReport "Outside Air Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/oa [get]
func (h *Handler) HandleOutsideAirCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckOutsideAir(c.Context())
	if err != nil {
		l.Error("Outside air check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandleOccupancyCheck verifies the occupancy subset.
// @Summary Check Occupancy Subset
// @Description Verifies every occupancy-subset room has a full BAS export, a roster entry, and a listed sensor.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.OccupancyReport "Occupancy Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/occupancy [get]
func (h *Handler) HandleOccupancyCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckOccupancy(c.Context())
	if err != nil {
		l.Error("Occupancy check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandleDatabaseCheck checks the rooms table schema.
// @Summary Check Database Schema
// @Description Checks if the rooms table schema matches the expected model.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.DatabaseReport "Database Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/database [get]
func (h *Handler) HandleDatabaseCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckDatabase()
	if err != nil {
		l.Error("Database schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}
