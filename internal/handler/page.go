package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/oggyb/pagetracker/internal/domain/page"
	"github.com/oggyb/pagetracker/internal/request"
	"github.com/oggyb/pagetracker/internal/response"
	"github.com/oggyb/pagetracker/internal/scheduler"
	"github.com/oggyb/pagetracker/internal/service"
	"github.com/oggyb/pagetracker/internal/tracker"
)

// PageHandler wires HTTP endpoints to the page service and the snapshot
// scheduler.
type PageHandler struct {
	pageSvc service.PageService
	schSvc  scheduler.SchedulerService
}

// NewPageHandler constructs a new PageHandler with its dependencies.
func NewPageHandler(pageSvc service.PageService, schSvc scheduler.SchedulerService) *PageHandler {
	return &PageHandler{
		pageSvc: pageSvc,
		schSvc:  schSvc,
	}
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, page.ErrEmptyURL),
		errors.Is(err, page.ErrInvalidURL),
		errors.Is(err, page.ErrURLTooLong),
		errors.Is(err, tracker.ErrEmptyIdentifier):
		return http.StatusBadRequest
	case errors.Is(err, page.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, tracker.ErrFetchFailed):
		return http.StatusBadGateway
	case errors.Is(err, tracker.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, service.ErrLedgerDisabled):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// GetPage godoc
// @Summary     Fetch a page
// @Description Returns the page body, served from cache when a fresh copy exists. Every call counts as an access, including failed ones.
// @Tags        pages
// @Produce     json
// @Param       url query string true "Absolute http(s) URL"
// @Success     200 {object} response.PageResponse
// @Failure     400 {object} response.JSONResponse
// @Failure     502 {object} response.JSONResponse
// @Failure     503 {object} response.JSONResponse
// @Router      /pages [get]
func (h *PageHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	res, err := h.pageSvc.Get(r.Context(), r.URL.Query().Get("url"))
	if err != nil {
		response.RespondError(w, statusFor(err), err.Error())
		return
	}

	payload := response.PagePayload{
		URL:         res.URL,
		Content:     res.Content,
		Cached:      res.Cached,
		AccessCount: res.AccessCount,
	}

	response.RespondJSON(w, http.StatusOK, payload)
}

// GetAccessCount godoc
// @Summary     Access count
// @Description Returns how many times the URL has been requested. Reading the count does not change it.
// @Tags        pages
// @Produce     json
// @Param       url query string true "Absolute http(s) URL"
// @Success     200 {object} response.AccessCountResponse
// @Failure     400 {object} response.JSONResponse
// @Failure     503 {object} response.JSONResponse
// @Router      /pages/count [get]
func (h *PageHandler) GetAccessCount(w http.ResponseWriter, r *http.Request) {
	u, n, err := h.pageSvc.AccessCount(r.Context(), r.URL.Query().Get("url"))
	if err != nil {
		response.RespondError(w, statusFor(err), err.Error())
		return
	}

	payload := response.AccessCountPayload{
		URL:         u,
		AccessCount: n,
	}

	response.RespondJSON(w, http.StatusOK, payload)
}

// GetTracked godoc
// @Summary     Ledger entry
// @Description Returns the ledger row for one URL: last outcome, last error and the latest counter snapshot.
// @Tags        pages
// @Produce     json
// @Param       url query string true "Absolute http(s) URL"
// @Success     200 {object} response.TrackedPageResponse
// @Failure     400 {object} response.JSONResponse
// @Failure     404 {object} response.JSONResponse
// @Failure     501 {object} response.JSONResponse
// @Router      /pages/ledger [get]
func (h *PageHandler) GetTracked(w http.ResponseWriter, r *http.Request) {
	p, err := h.pageSvc.GetTracked(r.Context(), r.URL.Query().Get("url"))
	if err != nil {
		response.RespondError(w, statusFor(err), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, response.FromDomainPage(p))
}

// ListTracked godoc
// @Summary     List tracked pages
// @Description Returns a paginated list of pages recorded in the ledger.
// @Tags        pages
// @Produce     json
// @Param       page  query int false "Page number"         default(1)
// @Param       limit query int false "Page size (max 100)" default(20)
// @Success     200 {object} response.TrackedPagesResponse
// @Failure     501 {object} response.JSONResponse
// @Router      /pages/tracked [get]
func (h *PageHandler) ListTracked(w http.ResponseWriter, r *http.Request) {
	pageNum := 1
	limit := 20

	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		pageNum = v
	}

	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}

	items, total, err := h.pageSvc.ListTracked(r.Context(), pageNum, limit)
	if err != nil {
		response.RespondError(w, statusFor(err), err.Error())
		return
	}

	payload := response.TrackedPagesPayload{
		Items: response.FromDomainPages(items),
		Total: total,
		Page:  pageNum,
		Limit: limit,
	}

	response.RespondJSON(w, http.StatusOK, payload)
}

// ControlScheduler godoc
// @Summary     Control snapshot scheduler
// @Description Starts or stops periodic counter snapshots, or runs one immediately.
// @Tags        scheduler
// @Accept      json
// @Produce     json
// @Param       request body request.SchedulerRequest true "Scheduler action (start|stop|run)"
// @Success     200 {object} response.SchedulerControlResponse
// @Failure     400 {object} response.JSONResponse
// @Failure     409 {object} response.JSONResponse
// @Router      /scheduler [post]
func (h *PageHandler) ControlScheduler(w http.ResponseWriter, r *http.Request) {
	var req request.SchedulerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var (
		err error
		msg string
	)

	switch req.Action {
	case "start":
		err, msg = h.schSvc.Start(), "scheduler started"
	case "stop":
		err, msg = h.schSvc.Stop(), "scheduler stopped"
	case "run":
		err, msg = h.schSvc.RunNow(), "snapshot triggered"
	default:
		response.RespondError(w, http.StatusBadRequest, "action must be 'start', 'stop' or 'run'")
		return
	}

	if errors.Is(err, scheduler.ErrBatchInProgress) {
		response.RespondError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, response.SchedulerControlPayload{Message: msg})
}
