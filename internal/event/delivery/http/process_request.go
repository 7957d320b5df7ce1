package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Rohith-AI-HUB/webhook-repo/internal/model"
)

// processListReq binds and validates the /api/events query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidLimit
	}
	return req, req.validate()
}

// processAuthorReq reads the author path param and optional limit.
func (h *handler) processAuthorReq(c *gin.Context) (authorReq, error) {
	limit, err := queryLimit(c)
	return authorReq{Author: c.Param("author"), Limit: limit}, err
}

// processRepositoryReq reads the owner/name catch-all param and optional limit.
func (h *handler) processRepositoryReq(c *gin.Context) (repositoryReq, error) {
	limit, err := queryLimit(c)
	repository := strings.Trim(c.Param("repository"), "/")
	return repositoryReq{Repository: repository, Limit: limit}, err
}

func queryLimit(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errInvalidLimit
	}
	return n, nil
}

func (r listReq) validate() error {
	if r.Limit < 0 {
		return errInvalidLimit
	}
	if r.EventType != "" && !model.EventType(r.EventType).Valid() {
		return errInvalidEventType
	}
	return nil
}
