package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/guard_dispatch_system/internal/config"
	"github.com/shenikar/guard_dispatch_system/internal/registry"
	"github.com/shenikar/guard_dispatch_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	locationService service.LocationService
	dispatchService service.DispatchService
	zoneService     service.ZoneService
	geofenceService service.GeofenceService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	locationService service.LocationService,
	dispatchService service.DispatchService,
	zoneService service.ZoneService,
	geofenceService service.GeofenceService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		locationService: locationService,
		dispatchService: dispatchService,
		zoneService:     zoneService,
		geofenceService: geofenceService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// writeError переводит ошибку сервиса в HTTP-статус
func writeError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, registry.ErrInvalidRecord),
		errors.Is(err, service.ErrInvalidDispatchRequest),
		errors.Is(err, service.ErrInvalidZone):
		log.WithError(err).Warn("Rejected invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrGuardNotFound):
		log.WithError(err).Info("Guard not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "guard not found"})
	case errors.Is(err, service.ErrZoneNotFound):
		log.WithError(err).Info("Zone not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "zone not found"})
	case errors.Is(err, registry.ErrStaleWrite):
		log.WithError(err).Info("Out-of-order location")
		c.JSON(http.StatusConflict, gin.H{"error": "location is older than the stored one"})
	case errors.Is(err, service.ErrZoneExists):
		log.WithError(err).Info("Zone already exists")
		c.JSON(http.StatusConflict, gin.H{"error": "zone already exists"})
	case errors.Is(err, service.ErrUnknownContainment):
		log.WithError(err).Info("Containment unknown")
		c.JSON(http.StatusConflict, gin.H{"error": "containment unknown: guard location is stale"})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindAndValidate разбирает тело запроса и проверяет его
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary Report guard location
// @Description Store the latest position of a guard and evaluate geofences. Requires API key.
// @Tags Guards
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body ReportLocationRequest true "Guard location"
// @Success 202 {object} ReportLocationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Location is older than the stored one"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /guards/locations [post]
func (h *Handler) reportLocation(c *gin.Context) {
	var input ReportLocationRequest
	log := h.logger.WithField("method", "reportLocation")

	if !h.bindAndValidate(c, log, &input) {
		return
	}
	log = log.WithField("guard_id", input.GuardID)

	if err := h.locationService.ReportLocation(c.Request.Context(), DTOToLocationRecord(input)); err != nil {
		writeError(c, log, err)
		return
	}

	// ошибки мониторинга зон не отменяют приём позиции
	changes, err := h.geofenceService.EvaluateGuard(c.Request.Context(), input.GuardID)
	if err != nil {
		log.WithError(err).Warn("Geofence evaluation failed")
	}

	c.JSON(http.StatusAccepted, ReportLocationResponse{GuardID: input.GuardID, ContainmentEvents: len(changes)})
}

// @Summary Get guard location
// @Description Get the latest known position of a guard. Requires API key.
// @Tags Guards
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Guard ID"
// @Success 200 {object} GuardLocationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Guard not found"
// @Router /guards/{id}/location [get]
func (h *Handler) getLocation(c *gin.Context) {
	guardID := c.Param("id")
	log := h.logger.WithField("method", "getLocation").WithField("guard_id", guardID)

	record, err := h.locationService.GetLocation(c.Request.Context(), guardID)
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToLocationResponse(record))
}

// @Summary Sign off a guard
// @Description Remove the guard from the location registry at the end of a shift. Requires API key.
// @Tags Guards
// @Security ApiKeyAuth
// @Param id path string true "Guard ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Guard not found"
// @Router /guards/{id} [delete]
func (h *Handler) signOff(c *gin.Context) {
	guardID := c.Param("id")
	log := h.logger.WithField("method", "signOff").WithField("guard_id", guardID)

	if err := h.locationService.SignOff(c.Request.Context(), guardID); err != nil {
		writeError(c, log, err)
		return
	}
	h.geofenceService.Forget(guardID)

	c.Status(http.StatusNoContent)
}

// @Summary Zones containing a guard
// @Description List active zones that contain the guard's fresh position. Requires API key.
// @Tags Guards
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Guard ID"
// @Success 200 {array} GeofenceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Guard not found"
// @Failure 409 {object} map[string]string "Guard location is stale"
// @Router /guards/{id}/zones [get]
func (h *Handler) guardZones(c *gin.Context) {
	guardID := c.Param("id")
	log := h.logger.WithField("method", "guardZones").WithField("guard_id", guardID)

	zones, err := h.geofenceService.ZonesContaining(c.Request.Context(), guardID)
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToGeofenceResponses(zones))
}

// @Summary Find dispatch candidates
// @Description Rank guards near an incident by estimated travel time. Requires API key.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body DispatchRequest true "Incident location and limits"
// @Success 200 {object} DispatchResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dispatch/candidates [post]
func (h *Handler) findCandidates(c *gin.Context) {
	var input DispatchRequest
	log := h.logger.WithField("method", "findCandidates")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	req := DTOToDispatchRequest(input, h.cfg.DispatchDefaultRadius, h.cfg.DispatchMaxCandidates)
	result, err := h.dispatchService.FindDispatchCandidates(c.Request.Context(), req)
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDispatchResponse(result, input.RequireBackup))
}

// @Summary Create a new geofence
// @Description Create a circular zone monitored for guard presence. Requires API key.
// @Tags Geofences
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param geofence body CreateGeofenceRequest true "Geofence creation request"
// @Success 201 {object} GeofenceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Zone already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /geofences [post]
func (h *Handler) createGeofence(c *gin.Context) {
	var input CreateGeofenceRequest
	log := h.logger.WithField("method", "createGeofence")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := CreateDTOToGeofence(input)
	if err := h.zoneService.CreateZone(c.Request.Context(), model); err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToGeofenceResponse(model))
}

// @Summary Get a list of geofences
// @Description Get a paginated list of all geofences. Requires API key.
// @Tags Geofences
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} GeofenceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /geofences [get]
func (h *Handler) listGeofences(c *gin.Context) {
	log := h.logger.WithField("method", "listGeofences")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	zones, err := h.zoneService.ListZones(c.Request.Context(), page, pageSize)
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToGeofenceResponses(zones))
}

// @Summary Get geofence by ID
// @Tags Geofences
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Zone ID"
// @Success 200 {object} GeofenceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Zone not found"
// @Router /geofences/{id} [get]
func (h *Handler) getGeofence(c *gin.Context) {
	zoneID := c.Param("id")
	log := h.logger.WithField("method", "getGeofence").WithField("zone_id", zoneID)

	zone, err := h.zoneService.GetZone(c.Request.Context(), zoneID)
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToGeofenceResponse(zone))
}

// @Summary Update an existing geofence
// @Tags Geofences
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Zone ID"
// @Param geofence body UpdateGeofenceRequest true "Geofence update request"
// @Success 200 {object} GeofenceResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Zone not found"
// @Router /geofences/{id} [put]
func (h *Handler) updateGeofence(c *gin.Context) {
	zoneID := c.Param("id")
	log := h.logger.WithField("method", "updateGeofence").WithField("zone_id", zoneID)

	var input UpdateGeofenceRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := UpdateDTOToGeofence(zoneID, input)
	if err := h.zoneService.UpdateZone(c.Request.Context(), model); err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToGeofenceResponse(model))
}

// @Summary Deactivate a geofence
// @Description Stop monitoring the zone. Requires API key.
// @Tags Geofences
// @Security ApiKeyAuth
// @Param id path string true "Zone ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Zone not found"
// @Router /geofences/{id} [delete]
func (h *Handler) deleteGeofence(c *gin.Context) {
	zoneID := c.Param("id")
	log := h.logger.WithField("method", "deleteGeofence").WithField("zone_id", zoneID)

	if err := h.zoneService.DeleteZone(c.Request.Context(), zoneID); err != nil {
		writeError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Overlapping geofences
// @Description List active zones overlapping the given one with the covered share of its area. Requires API key.
// @Tags Geofences
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Zone ID"
// @Success 200 {array} ZoneOverlapResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Zone not found"
// @Router /geofences/{id}/overlaps [get]
func (h *Handler) geofenceOverlaps(c *gin.Context) {
	zoneID := c.Param("id")
	log := h.logger.WithField("method", "geofenceOverlaps").WithField("zone_id", zoneID)

	overlaps, err := h.zoneService.ZoneOverlaps(c.Request.Context(), zoneID)
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToOverlapResponses(overlaps))
}

// @Summary Remove inactive geofences
// @Description Permanently delete deactivated zones. Requires API key.
// @Tags Geofences
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} CleanupResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /geofences/cleanup [post]
func (h *Handler) cleanupGeofences(c *gin.Context) {
	log := h.logger.WithField("method", "cleanupGeofences")

	removed, err := h.zoneService.CleanupInactiveZones(c.Request.Context())
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, CleanupResponse{Removed: removed})
}

// @Summary Check guard containment
// @Description Check whether a guard is inside a zone. A stale position yields 409 instead of false. Requires API key.
// @Tags Geofences
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Zone ID"
// @Param guard_id path string true "Guard ID"
// @Success 200 {object} ContainmentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Guard or zone not found"
// @Failure 409 {object} map[string]string "Guard location is stale"
// @Router /geofences/{id}/guards/{guard_id} [get]
func (h *Handler) checkContainment(c *gin.Context) {
	zoneID, guardID := c.Param("id"), c.Param("guard_id")
	log := h.logger.WithFields(logrus.Fields{
		"method":   "checkContainment",
		"zone_id":  zoneID,
		"guard_id": guardID,
	})

	inside, err := h.geofenceService.CheckZone(c.Request.Context(), guardID, zoneID)
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ContainmentResponse{GuardID: guardID, ZoneID: zoneID, Inside: inside})
}

// @Summary Get registry statistics
// @Description Get guard counts by freshness and the configured route providers. Requires API key.
// @Tags System
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /system/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	stats := h.locationService.Stats(c.Request.Context())

	providers := h.cfg.RouteProviders
	if providers == nil {
		providers = []string{}
	}
	c.JSON(http.StatusOK, StatsResponse{
		TotalGuards:    stats.Total,
		ActiveGuards:   stats.Active,
		StaleGuards:    stats.Stale,
		RouteProviders: providers,
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
