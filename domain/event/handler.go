package event

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"school-cms/config"
	"school-cms/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ListEventsHandler returns all events for a locale, optionally bounded by
// an inclusive [start, end] date range. Bounds apply only when both are
// present. Dates are ISO strings, so the range filter is a plain
// lexicographic comparison.
func ListEventsHandler(c echo.Context) error {
	log := logger.FromContext(c.Request().Context()).WithComponent("event")

	locale := c.QueryParam("locale")
	if locale == "" {
		locale = DefaultLocale
	}
	start := c.QueryParam("start")
	end := c.QueryParam("end")

	events := []Event{}
	var err error
	if start != "" && end != "" {
		err = config.DB.Select(&events, `
			SELECT id, title, description, date, start_time, end_time, type, location, locale, created_at, updated_at
			FROM events
			WHERE locale = ? AND date >= ? AND date <= ?
			ORDER BY date ASC, start_time ASC
		`, locale, start, end)
	} else {
		err = config.DB.Select(&events, `
			SELECT id, title, description, date, start_time, end_time, type, location, locale, created_at, updated_at
			FROM events
			WHERE locale = ?
			ORDER BY date ASC, start_time ASC
		`, locale)
	}
	if err != nil {
		log.Error("Failed to list events", err, logger.Locale(locale))
		return c.JSON(http.StatusInternalServerError, EventsResponse{
			Success: false,
			Message: "Failed to fetch events",
		})
	}

	return c.JSON(http.StatusOK, EventsResponse{Success: true, Events: events})
}

// GetEventHandler fetches a single event by id
func GetEventHandler(c echo.Context) error {
	log := logger.FromContext(c.Request().Context()).WithComponent("event")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, EventResponse{
			Success: false,
			Message: "Invalid event id",
		})
	}

	var ev Event
	err = config.DB.Get(&ev, `
		SELECT id, title, description, date, start_time, end_time, type, location, locale, created_at, updated_at
		FROM events WHERE id = ?
	`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, EventResponse{
				Success: false,
				Message: "Event not found",
			})
		}
		log.Error("Failed to fetch event", err, logger.EventID(id))
		return c.JSON(http.StatusInternalServerError, EventResponse{
			Success: false,
			Message: "Failed to fetch event",
		})
	}

	return c.JSON(http.StatusOK, EventResponse{Success: true, Event: &ev})
}

// CreateEventHandler inserts a new event. Requires authentication.
func CreateEventHandler(c echo.Context) error {
	log := logger.FromContext(c.Request().Context()).WithComponent("event")

	req := new(EventRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, EventResponse{
			Success: false,
			Message: "Invalid request payload",
		})
	}

	if msg := req.Validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, EventResponse{
			Success: false,
			Message: msg,
		})
	}

	if req.Locale == "" {
		req.Locale = DefaultLocale
	}

	now := time.Now().UTC()
	result, err := config.DB.Exec(`
		INSERT INTO events (title, description, date, start_time, end_time, type, location, locale, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, req.Title, req.Description, req.Date, req.StartTime, req.EndTime, req.Type, req.Location, req.Locale, now, now)
	if err != nil {
		log.Error("Failed to insert event", err)
		return c.JSON(http.StatusInternalServerError, EventResponse{
			Success: false,
			Message: "Failed to create event",
		})
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Error("Failed to read inserted event id", err)
		return c.JSON(http.StatusInternalServerError, EventResponse{
			Success: false,
			Message: "Failed to create event",
		})
	}

	ev := Event{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Type:        req.Type,
		Location:    req.Location,
		Locale:      req.Locale,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	log.Info("Event created", logger.EventID(id), logger.Locale(req.Locale))
	return c.JSON(http.StatusCreated, EventResponse{Success: true, Event: &ev})
}

// UpdateEventHandler overwrites all mutable fields of an existing event.
// The locale tag is not updatable through this operation. Requires
// authentication.
func UpdateEventHandler(c echo.Context) error {
	log := logger.FromContext(c.Request().Context()).WithComponent("event")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, EventResponse{
			Success: false,
			Message: "Invalid event id",
		})
	}

	var existing Event
	err = config.DB.Get(&existing, `
		SELECT id, title, description, date, start_time, end_time, type, location, locale, created_at, updated_at
		FROM events WHERE id = ?
	`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, EventResponse{
				Success: false,
				Message: "Event not found",
			})
		}
		log.Error("Failed to fetch event for update", err, logger.EventID(id))
		return c.JSON(http.StatusInternalServerError, EventResponse{
			Success: false,
			Message: "Failed to update event",
		})
	}

	req := new(EventRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, EventResponse{
			Success: false,
			Message: "Invalid request payload",
		})
	}

	if msg := req.Validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, EventResponse{
			Success: false,
			Message: msg,
		})
	}

	now := time.Now().UTC()
	_, err = config.DB.Exec(`
		UPDATE events
		SET title = ?, description = ?, date = ?, start_time = ?, end_time = ?, type = ?, location = ?, updated_at = ?
		WHERE id = ?
	`, req.Title, req.Description, req.Date, req.StartTime, req.EndTime, req.Type, req.Location, now, id)
	if err != nil {
		log.Error("Failed to update event", err, logger.EventID(id))
		return c.JSON(http.StatusInternalServerError, EventResponse{
			Success: false,
			Message: "Failed to update event",
		})
	}

	ev := Event{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Type:        req.Type,
		Location:    req.Location,
		Locale:      existing.Locale,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   now,
	}

	log.Info("Event updated", logger.EventID(id))
	return c.JSON(http.StatusOK, EventResponse{Success: true, Event: &ev})
}

// DeleteEventHandler removes an event. Lookup first, so a missing id is a
// 404 and no write is attempted. Requires authentication.
func DeleteEventHandler(c echo.Context) error {
	log := logger.FromContext(c.Request().Context()).WithComponent("event")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, EventResponse{
			Success: false,
			Message: "Invalid event id",
		})
	}

	var exists int
	err = config.DB.Get(&exists, "SELECT 1 FROM events WHERE id = ?", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, EventResponse{
				Success: false,
				Message: "Event not found",
			})
		}
		log.Error("Failed to fetch event for delete", err, logger.EventID(id))
		return c.JSON(http.StatusInternalServerError, EventResponse{
			Success: false,
			Message: "Failed to delete event",
		})
	}

	if _, err := config.DB.Exec("DELETE FROM events WHERE id = ?", id); err != nil {
		log.Error("Failed to delete event", err, logger.EventID(id))
		return c.JSON(http.StatusInternalServerError, EventResponse{
			Success: false,
			Message: "Failed to delete event",
		})
	}

	log.Info("Event deleted", logger.EventID(id))
	return c.JSON(http.StatusOK, EventResponse{
		Success: true,
		Message: "Event deleted successfully",
	})
}

// UpcomingEventsHandler is the public upcoming-events feed. No
// authentication: the site calendar widget reads it directly.
func UpcomingEventsHandler(c echo.Context) error {
	log := logger.FromContext(c.Request().Context()).WithComponent("event")

	locale := c.QueryParam("locale")
	if locale == "" {
		locale = DefaultLocale
	}

	limit := 10
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	today := time.Now().Format("2006-01-02")

	events := []Event{}
	err := config.DB.Select(&events, `
		SELECT id, title, description, date, start_time, end_time, type, location, locale, created_at, updated_at
		FROM events
		WHERE locale = ? AND date >= ?
		ORDER BY date ASC, start_time ASC
		LIMIT ?
	`, locale, today, limit)
	if err != nil {
		log.Error("Failed to fetch upcoming events", err, logger.Locale(locale))
		return c.JSON(http.StatusInternalServerError, EventsResponse{
			Success: false,
			Message: "Failed to fetch events",
		})
	}

	return c.JSON(http.StatusOK, EventsResponse{Success: true, Events: events})
}
