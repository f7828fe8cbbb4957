package main

import (
	"net/http"
)

type CreateImportTaskRequest struct {
	SpreadsheetID string `json:"spreadsheet_id" validate:"required"`
}

// createImportTaskHandler godoc
//
//	@Summary		Import foods from Google Sheets
//	@Description	Queues a task that reads name, price, description, availability and image URL columns
//	@Tags			imports
//	@Accept			json
//	@Produce		json
//	@Param			store_id	path		string					true	"Store ID"
//	@Param			request		body		CreateImportTaskRequest	true	"Import request"
//	@Success		202			{object}	domain.FoodImportTask
//	@Failure		400			{object}	map[string]string
//	@Failure		403			{object}	map[string]string
//	@Failure		409			{object}	map[string]string
//	@Failure		503			{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/stores/{store_id}/imports [post]
func (app *application) createImportTaskHandler(w http.ResponseWriter, r *http.Request) {
	storeID, err := objectIDParam(r, "store_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req CreateImportTaskRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	task, err := app.importService.CreateImportTask(r.Context(), actorFromCtx(r), storeID, req.SpreadsheetID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusAccepted, task); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getImportTaskHandler godoc
//
//	@Summary		Get import task status
//	@Tags			imports
//	@Produce		json
//	@Param			task_id	path		string	true	"Task ID"
//	@Success		200		{object}	domain.FoodImportTask
//	@Failure		400		{object}	map[string]string
//	@Failure		403		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/imports/{task_id} [get]
func (app *application) getImportTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID, err := objectIDParam(r, "task_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	task, err := app.importService.GetTask(r.Context(), actorFromCtx(r), taskID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, task); err != nil {
		app.internalServerError(w, r, err)
	}
}
