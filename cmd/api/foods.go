package main

import (
	"net/http"

	"github.com/Beka01247/dormeats/internal/service"
)

type FoodPayload struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description" validate:"max=1000"`
	Available   *bool   `json:"available"`
}

func (p FoodPayload) input() service.FoodInput {
	available := true
	if p.Available != nil {
		available = *p.Available
	}

	return service.FoodInput{
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Available:   available,
	}
}

// UpdateFoodPayload leaves omitted fields unchanged.
type UpdateFoodPayload struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Description *string  `json:"description" validate:"omitempty,max=1000"`
	Available   *bool    `json:"available"`
}

func (p UpdateFoodPayload) patch() service.FoodPatch {
	return service.FoodPatch{
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Available:   p.Available,
	}
}

type AvailabilityPayload struct {
	Available *bool `json:"available" validate:"required"`
}

// listFoodsHandler godoc
//
//	@Summary		List store foods
//	@Tags			foods
//	@Produce		json
//	@Param			store_id	path		string	true	"Store ID"
//	@Param			available	query		bool	false	"Only available foods"
//	@Success		200			{array}		domain.Food
//	@Failure		400			{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/stores/{store_id}/foods [get]
func (app *application) listFoodsHandler(w http.ResponseWriter, r *http.Request) {
	storeID, err := objectIDParam(r, "store_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	onlyAvailable := r.URL.Query().Get("available") == "true"

	foods, err := app.foodService.ListByStore(r.Context(), storeID, onlyAvailable)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, foods); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createFoodHandler godoc
//
//	@Summary		Add food to a store
//	@Tags			foods
//	@Accept			json
//	@Produce		json
//	@Param			store_id	path		string		true	"Store ID"
//	@Param			payload		body		FoodPayload	true	"Food"
//	@Success		201			{object}	domain.Food
//	@Failure		400			{object}	map[string]string
//	@Failure		403			{object}	map[string]string
//	@Failure		409			{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/stores/{store_id}/foods [post]
func (app *application) createFoodHandler(w http.ResponseWriter, r *http.Request) {
	storeID, err := objectIDParam(r, "store_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload FoodPayload
	if err := readJson(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	food, err := app.foodService.Create(r.Context(), actorFromCtx(r), storeID, payload.input())
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, food); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getFoodHandler godoc
//
//	@Summary		Get food by ID
//	@Tags			foods
//	@Produce		json
//	@Param			food_id	path		string	true	"Food ID"
//	@Success		200		{object}	domain.Food
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/foods/{food_id} [get]
func (app *application) getFoodHandler(w http.ResponseWriter, r *http.Request) {
	foodID, err := objectIDParam(r, "food_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	food, err := app.foodService.Get(r.Context(), foodID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, food); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateFoodHandler godoc
//
//	@Summary		Update food
//	@Tags			foods
//	@Accept			json
//	@Produce		json
//	@Param			food_id	path		string		true	"Food ID"
//	@Param			payload	body		UpdateFoodPayload	true	"Fields to change"
//	@Success		200		{object}	domain.Food
//	@Failure		400		{object}	map[string]string
//	@Failure		403		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/foods/{food_id} [patch]
func (app *application) updateFoodHandler(w http.ResponseWriter, r *http.Request) {
	foodID, err := objectIDParam(r, "food_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload UpdateFoodPayload
	if err := readJson(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	food, err := app.foodService.Update(r.Context(), actorFromCtx(r), foodID, payload.patch())
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, food); err != nil {
		app.internalServerError(w, r, err)
	}
}

// setFoodAvailabilityHandler godoc
//
//	@Summary		Toggle food availability
//	@Tags			foods
//	@Accept			json
//	@Param			food_id	path	string				true	"Food ID"
//	@Param			payload	body	AvailabilityPayload	true	"Availability"
//	@Success		204
//	@Failure		400	{object}	map[string]string
//	@Failure		403	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/foods/{food_id}/availability [patch]
func (app *application) setFoodAvailabilityHandler(w http.ResponseWriter, r *http.Request) {
	foodID, err := objectIDParam(r, "food_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload AvailabilityPayload
	if err := readJson(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.foodService.SetAvailability(r.Context(), actorFromCtx(r), foodID, *payload.Available); err != nil {
		app.serviceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteFoodHandler godoc
//
//	@Summary		Delete food
//	@Tags			foods
//	@Param			food_id	path	string	true	"Food ID"
//	@Success		204
//	@Failure		400	{object}	map[string]string
//	@Failure		403	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/foods/{food_id} [delete]
func (app *application) deleteFoodHandler(w http.ResponseWriter, r *http.Request) {
	foodID, err := objectIDParam(r, "food_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.foodService.Delete(r.Context(), actorFromCtx(r), foodID); err != nil {
		app.serviceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// uploadFoodImageHandler godoc
//
//	@Summary		Upload food image
//	@Description	Stores a JPEG, PNG or WebP image of at most 5 MB
//	@Tags			foods
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			food_id	path		string	true	"Food ID"
//	@Param			image	formData	file	true	"Image"
//	@Success		200		{object}	ImageResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		403		{object}	map[string]string
//	@Failure		413		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/foods/{food_id}/image [post]
func (app *application) uploadFoodImageHandler(w http.ResponseWriter, r *http.Request) {
	foodID, err := objectIDParam(r, "food_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	data, err := readImage(w, r)
	if err != nil {
		app.imageError(w, r, err)
		return
	}

	url, err := app.foodService.UploadImage(r.Context(), actorFromCtx(r), foodID, data)
	if app.metrics != nil {
		app.metrics.ImageUploaded("food", err)
	}
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, ImageResponse{ImageURL: url}); err != nil {
		app.internalServerError(w, r, err)
	}
}
