package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artisan-works/commission-system/internal/core/domain"
	"github.com/artisan-works/commission-system/internal/core/ports"
)

// JobHandler handles the commission lifecycle and job chat endpoints.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// Create handles POST /v1/jobs.
//
// @Summary      Commission a job from an owned artwork
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  jobResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	job, err := h.service.Create(c.Request().Context(), session, ports.CreateJobInput{
		ArtworkID:   req.ArtworkID,
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toJobResponse(job))
}

// UpdateStatus handles PATCH /v1/jobs/:id/status — one forward transition.
//
// @Summary      Advance a job's status
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Job id"
// @Param        body  body      updateJobStatusRequest  true  "Target status"
// @Success      200   {object}  jobResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/jobs/{id}/status [patch]
func (h *JobHandler) UpdateStatus(c echo.Context) error {
	var req updateJobStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	next, err := domain.ParseJobStatus(req.Status)
	if err != nil {
		return err
	}

	job, err := h.service.UpdateStatus(c.Request().Context(), session, c.Param("id"), next)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// Get handles GET /v1/jobs/:id.
//
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Job id"
// @Success      200 {object}  jobResponse
// @Failure      403 {object}  errorResponse
// @Failure      404 {object}  errorResponse
// @Router       /v1/jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	job, err := h.service.Get(c.Request().Context(), session, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// List handles GET /v1/jobs?view=board|buyer|artist (default board).
//
// @Summary      List jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        view  query     string  false  "board (default), buyer or artist"
// @Success      200   {array}   jobSummaryResponse
// @Router       /v1/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	view := ports.JobListView(c.QueryParam("view"))
	switch view {
	case ports.JobViewBoard, ports.JobViewBuyer, ports.JobViewArtist:
	case "":
		view = ports.JobViewBoard
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown view")
	}

	jobs, err := h.service.List(c.Request().Context(), session, view)
	if err != nil {
		return err
	}

	out := make([]jobSummaryResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toJobSummaryResponse(j))
	}
	return c.JSON(http.StatusOK, out)
}

// AddMessage handles POST /v1/jobs/:id/messages.
//
// @Summary      Post a chat message on a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Job id"
// @Param        body  body      addMessageRequest  true  "Message text"
// @Success      201   {object}  messageResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/jobs/{id}/messages [post]
func (h *JobHandler) AddMessage(c echo.Context) error {
	var req addMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	msg, err := h.service.AddMessage(c.Request().Context(), session, c.Param("id"), req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toMessageResponse(*msg))
}

// ListMessages handles GET /v1/jobs/:id/messages — the thread in append order.
//
// @Summary      List a job's chat thread
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path     string  true  "Job id"
// @Success      200 {array}  messageResponse
// @Failure      403 {object} errorResponse
// @Failure      404 {object} errorResponse
// @Router       /v1/jobs/{id}/messages [get]
func (h *JobHandler) ListMessages(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	messages, err := h.service.ListMessages(c.Request().Context(), session, c.Param("id"))
	if err != nil {
		return err
	}

	out := make([]messageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, toMessageResponse(m))
	}
	return c.JSON(http.StatusOK, out)
}
