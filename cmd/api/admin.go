package main

import (
	"net/http"
	"time"

	"github.com/Beka01247/dormeats/internal/domain"
)

const (
	defaultTopStores = 5
	maxTopStores     = 50
	defaultPageSize  = 50
	maxPageSize      = 200
)

type UpdateStoreStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED"`
	Reason string `json:"reason" validate:"max=500"`
}

type RecordStatsRequest struct {
	WeekStart       string    `json:"weekStart" validate:"omitempty,datetime=2006-01-02"`
	WeeklyRevenue   []float64 `json:"weeklyRevenue" validate:"required"`
	WeeklyOrders    []int64   `json:"weeklyOrders" validate:"required"`
	PendingStores   int64     `json:"pendingStores"`
	PendingShippers int64     `json:"pendingShippers"`
	NewUsers        int64     `json:"newUsers"`
}

func (req RecordStatsRequest) toStats() (*domain.AdminDashboardStats, error) {
	stats := &domain.AdminDashboardStats{
		WeeklyRevenue:   req.WeeklyRevenue,
		WeeklyOrders:    req.WeeklyOrders,
		PendingStores:   req.PendingStores,
		PendingShippers: req.PendingShippers,
		NewUsers:        req.NewUsers,
	}

	if req.WeekStart != "" {
		weekStart, err := time.Parse(time.DateOnly, req.WeekStart)
		if err != nil {
			return nil, err
		}
		stats.WeekStart = weekStart
	}

	return stats, nil
}

type ReplaceTopStoresRequest struct {
	Stores []domain.TopStoreRevenue `json:"stores" validate:"max=100"`
}

// getDashboardHandler godoc
//
//	@Summary		Admin dashboard
//	@Description	Latest weekly stats and the top stores by revenue. A failed top stores query is reported in the error field.
//	@Tags			admin
//	@Produce		json
//	@Param			top	query		int	false	"Number of top stores"
//	@Success		200	{object}	domain.DashboardView
//	@Failure		400	{object}	map[string]string
//	@Failure		403	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/admin/dashboard [get]
func (app *application) getDashboardHandler(w http.ResponseWriter, r *http.Request) {
	top, err := intQuery(r, "top", defaultTopStores, maxTopStores)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	view, err := app.dashboardService.Get(r.Context(), top)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, view); err != nil {
		app.internalServerError(w, r, err)
	}
}

// recordStatsHandler godoc
//
//	@Summary		Record weekly dashboard stats
//	@Tags			admin
//	@Accept			json
//	@Param			request	body	RecordStatsRequest	true	"Weekly stats"
//	@Success		204
//	@Failure		400	{object}	map[string]string
//	@Failure		403	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/admin/dashboard/stats [put]
func (app *application) recordStatsHandler(w http.ResponseWriter, r *http.Request) {
	var req RecordStatsRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	stats, err := req.toStats()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.dashboardService.RecordStats(r.Context(), stats); err != nil {
		app.serviceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// replaceTopStoresHandler godoc
//
//	@Summary		Replace top stores
//	@Tags			admin
//	@Accept			json
//	@Param			request	body	ReplaceTopStoresRequest	true	"Top stores"
//	@Success		204
//	@Failure		400	{object}	map[string]string
//	@Failure		403	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/admin/dashboard/top-stores [put]
func (app *application) replaceTopStoresHandler(w http.ResponseWriter, r *http.Request) {
	var req ReplaceTopStoresRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.dashboardService.ReplaceTopStores(r.Context(), req.Stores); err != nil {
		app.serviceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// listStoresByStatusHandler godoc
//
//	@Summary		List stores by status
//	@Tags			admin
//	@Produce		json
//	@Param			status	query		string	false	"PENDING, APPROVED or REJECTED"	default(PENDING)
//	@Param			limit	query		int		false	"Page size"
//	@Success		200		{array}		domain.Store
//	@Failure		400		{object}	map[string]string
//	@Failure		403		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/admin/stores [get]
func (app *application) listStoresByStatusHandler(w http.ResponseWriter, r *http.Request) {
	status := domain.StoreStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = domain.StoreStatusPending
	}

	limit, err := intQuery(r, "limit", defaultPageSize, maxPageSize)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	stores, err := app.storeService.ListByStatus(r.Context(), status, limit)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, stores); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateStoreStatusHandler godoc
//
//	@Summary		Approve or reject a store
//	@Description	Queues the status change; the store and its audit trail are updated by the worker
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			store_id	path		string						true	"Store ID"
//	@Param			request		body		UpdateStoreStatusRequest	true	"Status update request"
//	@Success		202			{object}	map[string]interface{}
//	@Failure		400			{object}	map[string]string
//	@Failure		403			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/admin/stores/{store_id}/status [patch]
func (app *application) updateStoreStatusHandler(w http.ResponseWriter, r *http.Request) {
	storeID, err := objectIDParam(r, "store_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req UpdateStoreStatusRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.storeService.RequestStatusChange(r.Context(), actorFromCtx(r), storeID, domain.StoreStatus(req.Status), req.Reason)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	response := map[string]interface{}{
		"success": true,
		"message": "Status update queued",
	}

	if err := app.jsonResponse(w, http.StatusAccepted, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getStoreAuditHandler godoc
//
//	@Summary		Store status history
//	@Tags			admin
//	@Produce		json
//	@Param			store_id	path		string	true	"Store ID"
//	@Param			limit		query		int		false	"Max entries"
//	@Success		200			{array}		domain.StoreStatusAudit
//	@Failure		400			{object}	map[string]string
//	@Failure		403			{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/admin/stores/{store_id}/audit [get]
func (app *application) getStoreAuditHandler(w http.ResponseWriter, r *http.Request) {
	storeID, err := objectIDParam(r, "store_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	limit, err := intQuery(r, "limit", defaultPageSize, maxPageSize)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	history, err := app.storeService.StatusHistory(r.Context(), storeID, limit)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, history); err != nil {
		app.internalServerError(w, r, err)
	}
}
