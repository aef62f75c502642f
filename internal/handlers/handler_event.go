package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/caterops/catering_backend/internal/apperrors"
	portssvc "github.com/caterops/catering_backend/internal/core/ports/services"
	"github.com/caterops/catering_backend/internal/dto"
	"github.com/caterops/catering_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// eventHandler handles HTTP requests related to events: authoring,
// live quoting and the closing transition.
type eventHandler struct {
	eventService     portssvc.EventSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

// newEventHandler creates a new eventHandler.
func newEventHandler(es portssvc.EventSvcFacade, rs portssvc.ReportingSvcFacade) *eventHandler {
	return &eventHandler{
		eventService:     es,
		reportingService: rs,
	}
}

// registerEventRoutes registers routes related to events.
func registerEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvcFacade, reportingService portssvc.ReportingSvcFacade) {
	h := newEventHandler(eventService, reportingService)

	events := rg.Group("/events")
	{
		events.POST("", h.createEvent)
		events.GET("", h.listEvents)
		events.POST("/quote", h.quote)
		events.GET("/:eventID", h.getEventByID)
		events.PUT("/:eventID", h.updateEvent)
		events.DELETE("/:eventID", h.deleteEvent)
		events.POST("/:eventID/close", h.closeEvent)
		events.GET("/:eventID/consumption", h.eventConsumption)
	}
}

// createEvent godoc
// @Summary Create a new event
// @Description Creates an event draft, seeding default quantities, copying extra costs and computing planned pricing
// @Tags events
// @Accept  json
// @Produce  json
// @Param   event body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} map[string]string "Invalid input or missing catalog reference"
// @Failure 500 {object} map[string]string "Failed to create event"
// @Router /events [post]
func (h *eventHandler) createEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create event", slog.String("client_name", req.ClientName))

	createdEvent, err := h.eventService.CreateEvent(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrMissingCatalogRef) {
			logger.Warn("Validation error creating event", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create event in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		}
		return
	}

	logger.Info("Event created successfully", slog.String("event_id", createdEvent.EventID))
	c.JSON(http.StatusCreated, dto.ToEventResponse(createdEvent))
}

// getEventByID godoc
// @Summary Get an event by ID
// @Tags events
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Failed to retrieve event"
// @Router /events/{eventID} [get]
func (h *eventHandler) getEventByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")
	logger = logger.With(slog.String("event_id", eventID))
	logger.Info("Received request to get event by ID")

	event, err := h.eventService.GetEventByID(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Event not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			logger.Error("Failed to get event from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve event"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// listEvents godoc
// @Summary List all events
// @Description Retrieves all events ordered by date, most recent first
// @Tags events
// @Produce  json
// @Success 200 {array} dto.EventResponse
// @Failure 500 {object} map[string]string "Failed to list events"
// @Router /events [get]
func (h *eventHandler) listEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list events")

	events, err := h.eventService.ListEvents(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list events from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListEventResponse(events))
}

// updateEvent godoc
// @Summary Update an open event
// @Description Updates an event and recomputes planned pricing; closed events reject all mutations
// @Tags events
// @Accept  json
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Param   event body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} map[string]string "Invalid input or missing catalog reference"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 409 {object} map[string]string "Event already closed"
// @Failure 500 {object} map[string]string "Failed to update event"
// @Router /events/{eventID} [put]
func (h *eventHandler) updateEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")
	logger = logger.With(slog.String("event_id", eventID))

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to update event")

	updatedEvent, err := h.eventService.UpdateEvent(c.Request.Context(), eventID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Event not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else if errors.Is(err, apperrors.ErrEventClosed) {
			logger.Warn("Attempted to update a closed event")
			c.JSON(http.StatusConflict, gin.H{"error": "Event is already closed"})
		} else if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrMissingCatalogRef) {
			logger.Warn("Validation error updating event", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update event in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		}
		return
	}

	logger.Info("Event updated successfully")
	c.JSON(http.StatusOK, dto.ToEventResponse(updatedEvent))
}

// deleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Failed to delete event"
// @Router /events/{eventID} [delete]
func (h *eventHandler) deleteEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")
	logger = logger.With(slog.String("event_id", eventID))
	logger.Info("Received request to delete event")

	if err := h.eventService.DeleteEvent(c.Request.Context(), eventID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Event not found for delete")
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			logger.Error("Failed to delete event in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		}
		return
	}

	logger.Info("Event deleted successfully")
	c.Status(http.StatusNoContent)
}

// quote godoc
// @Summary Evaluate pricing for a draft
// @Description Runs the pricing engine against an unsaved selection; the editor's live recalculation endpoint
// @Tags events
// @Accept  json
// @Produce  json
// @Param   draft body dto.QuoteRequest true "Draft selection"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} map[string]string "Invalid input or missing catalog reference"
// @Failure 500 {object} map[string]string "Failed to compute quote"
// @Router /events/quote [post]
func (h *eventHandler) quote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Quote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to quote a draft", slog.Int("pax", req.Pax))

	result, err := h.eventService.Quote(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrMissingCatalogRef) {
			logger.Warn("Validation error quoting draft", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute quote in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute quote"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.QuoteResponse{
		TotalCost:      result.TotalCost,
		SuggestedPrice: result.SuggestedPrice,
		PerPersonPrice: result.PerPersonPrice,
	})
}

// closeEvent godoc
// @Summary Close an event
// @Description Records actual consumption, computes real cost and revenue and freezes the event as CLOSED
// @Tags events
// @Accept  json
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Param   closing body dto.CloseEventRequest true "Actual quantities"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} map[string]string "Invalid input or missing catalog reference"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 409 {object} map[string]string "Event already closed"
// @Failure 500 {object} map[string]string "Failed to close event"
// @Router /events/{eventID}/close [post]
func (h *eventHandler) closeEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")
	logger = logger.With(slog.String("event_id", eventID))

	var req dto.CloseEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CloseEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to close event")

	closedEvent, err := h.eventService.CloseEvent(c.Request.Context(), eventID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Event not found for close")
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else if errors.Is(err, apperrors.ErrEventClosed) {
			logger.Warn("Attempted to close an already closed event")
			c.JSON(http.StatusConflict, gin.H{"error": "Event is already closed"})
		} else if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrMissingCatalogRef) {
			logger.Warn("Validation error closing event", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to close event in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close event"})
		}
		return
	}

	logger.Info("Event closed successfully")
	c.JSON(http.StatusOK, dto.ToEventResponse(closedEvent))
}

// eventConsumption godoc
// @Summary Get the consumption report for an event
// @Description Compares planned and real per-person consumption factors for each line item
// @Tags events
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Success 200 {array} dto.ConsumptionRowResponse
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Failed to build consumption report"
// @Router /events/{eventID}/consumption [get]
func (h *eventHandler) eventConsumption(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")
	logger = logger.With(slog.String("event_id", eventID))
	logger.Info("Received request for event consumption report")

	rows, err := h.reportingService.ConsumptionReport(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Event not found for consumption report")
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			logger.Error("Failed to build consumption report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build consumption report"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToConsumptionRowsResponse(rows))
}
