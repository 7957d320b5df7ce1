package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// List godoc
// @Summary     List recent events
// @Description Returns the most recent events ordered by occurrence time, newest first.
// @Tags        Events
// @Produce     json
// @Param       limit      query int    false "Max events (default from ui.max_events_display, ceiling 100)"
// @Param       event_type query string false "Filter: push, pull_request or merge"
// @Param       repository query string false "Filter: owner/name"
// @Success     200 {object} listResp
// @Failure     400 {object} failResp "Bad Request"
// @Failure     500 {object} failResp "Event store unavailable"
// @Router      /api/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, newFailResp(err.Error()))
		return
	}

	output, err := h.uc.Recent(ctx, req.toInput(h.cfg.DefaultLimit))
	if err != nil {
		h.l.Errorf(ctx, "uc.Recent: %v", err)
		status, msg := h.mapError(err)
		c.JSON(status, newFailResp(msg))
		return
	}

	c.JSON(http.StatusOK, h.newListResp(output.Events))
}

// ByAuthor godoc
// @Summary     List events by author
// @Tags        Events
// @Produce     json
// @Param       author path  string true  "Author login or pusher name"
// @Param       limit  query int    false "Max events (default 20, ceiling 100)"
// @Success     200 {object} listResp
// @Failure     400 {object} failResp "Bad Request"
// @Failure     500 {object} failResp "Event store unavailable"
// @Router      /api/authors/{author}/events [GET]
func (h *handler) ByAuthor(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAuthorReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, newFailResp(err.Error()))
		return
	}

	events, err := h.uc.EventsByAuthor(ctx, req.Author, req.Limit)
	if err != nil {
		h.l.Errorf(ctx, "uc.EventsByAuthor: %v", err)
		status, msg := h.mapError(err)
		c.JSON(status, newFailResp(msg))
		return
	}

	c.JSON(http.StatusOK, h.newListResp(events))
}

// ByRepository godoc
// @Summary     List events by repository
// @Tags        Events
// @Produce     json
// @Param       repository path  string true  "Repository full name, owner/name"
// @Param       limit      query int    false "Max events (default 20, ceiling 100)"
// @Success     200 {object} listResp
// @Failure     400 {object} failResp "Bad Request"
// @Failure     500 {object} failResp "Event store unavailable"
// @Router      /api/repositories/{repository} [GET]
func (h *handler) ByRepository(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRepositoryReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, newFailResp(err.Error()))
		return
	}

	events, err := h.uc.EventsByRepository(ctx, req.Repository, req.Limit)
	if err != nil {
		h.l.Errorf(ctx, "uc.EventsByRepository: %v", err)
		status, msg := h.mapError(err)
		c.JSON(status, newFailResp(msg))
		return
	}

	c.JSON(http.StatusOK, h.newListResp(events))
}

// Stats godoc
// @Summary     Event statistics
// @Description Total count, per-type counts and the five most active authors.
// @Tags        Events
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     500 {object} failResp "Event store unavailable"
// @Router      /api/events/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.uc.Statistics(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Statistics: %v", err)
		status, msg := h.mapError(err)
		c.JSON(status, newFailResp(msg))
		return
	}

	c.JSON(http.StatusOK, h.newStatsResp(stats))
}

// Settings godoc
// @Summary     Dashboard settings
// @Tags        Events
// @Produce     json
// @Success     200 {object} settingsResp
// @Router      /api/settings [GET]
func (h *handler) Settings(c *gin.Context) {
	c.JSON(http.StatusOK, settingsResp{
		RefreshIntervalSeconds: int(h.cfg.RefreshInterval.Seconds()),
		MaxEventsDisplay:       h.cfg.DefaultLimit,
	})
}
