package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mobile-todo-backend/internal/middleware"
	"mobile-todo-backend/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns the caller's tasks grouped into today, inbox and completed,
// @Description plus the current undo toast. Pass refresh=true to re-fetch from storage first.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       refresh query bool false "Re-fetch from storage before listing"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    SessionToken
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	if c.Query("refresh") == "true" {
		if err := h.uc.Refresh(ctx, sc); err != nil {
			h.l.Errorf(ctx, "uc.Refresh: %v", err)
			response.Error(c, h.mapError(err), nil)
			return
		}
	}

	output, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Create a task
// @Description Creates a task from raw text. With ai_mode the text is run through
// @Description the LLM extractor for title, description and due date.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task text"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     422 {object} response.Resp "Unsupported action"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    SessionToken
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	created, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(created))
}

// ToggleCompletion godoc
// @Summary     Toggle task completion
// @Description Sets a task's completion flag. The due date is untouched.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body toggleReq true "Completion flag"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    SessionToken
// @Router      /api/v1/tasks/{id}/completion [PATCH]
func (h *handler) ToggleCompletion(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processToggleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.ToggleCompletion(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.ToggleCompletion: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes the task from view immediately and schedules the storage
// @Description deletion after a grace window during which undo is possible.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    SessionToken
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.ScheduleDelete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.ScheduleDelete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Undo godoc
// @Summary     Undo a pending deletion
// @Description Restores a task whose deletion is still within the grace window.
// @Description A no-op once the window has elapsed.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    SessionToken
// @Router      /api/v1/tasks/{id}/undo [POST]
func (h *handler) Undo(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Undo(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.Undo: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// DismissToast godoc
// @Summary     Dismiss the undo toast
// @Description Hides the undo toast without cancelling any pending deletion.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Security    SessionToken
// @Router      /api/v1/toast [DELETE]
func (h *handler) DismissToast(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	h.uc.DismissToast(ctx, sc)
	response.OK(c, nil)
}
