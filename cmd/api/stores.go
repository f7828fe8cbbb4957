package main

import (
	"fmt"
	"net/http"

	"github.com/Beka01247/dormeats/internal/domain"
	"github.com/Beka01247/dormeats/internal/service"
	"github.com/skip2/go-qrcode"
)

const qrSize = 256

type StorePayload struct {
	Name         string `json:"name" validate:"required,max=100"`
	Description  string `json:"description" validate:"max=1000"`
	Location     string `json:"location" validate:"required,max=200"`
	OpeningHours string `json:"openingHours" validate:"max=100"`
}

func (p StorePayload) input() service.StoreInput {
	return service.StoreInput{
		Name:         p.Name,
		Description:  p.Description,
		Location:     p.Location,
		OpeningHours: p.OpeningHours,
	}
}

type MyStoreResponse struct {
	Status domain.StoreStatus `json:"status"`
	Store  *domain.Store      `json:"store"`
}

type ImageResponse struct {
	ImageURL string `json:"imageUrl"`
}

// registerStoreHandler godoc
//
//	@Summary		Register a store
//	@Description	Creates the caller's store in PENDING status
//	@Tags			stores
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		StorePayload	true	"Store"
//	@Success		201		{object}	domain.Store
//	@Failure		400		{object}	map[string]string
//	@Failure		409		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/stores [post]
func (app *application) registerStoreHandler(w http.ResponseWriter, r *http.Request) {
	var payload StorePayload
	if err := readJson(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	store, err := app.storeService.Register(r.Context(), actorFromCtx(r), payload.input())
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, store); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getMyStoreHandler godoc
//
//	@Summary		Get the caller's store
//	@Description	Returns the store and its status, or status NONE when the caller has not registered one
//	@Tags			stores
//	@Produce		json
//	@Success		200	{object}	MyStoreResponse
//	@Failure		500	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/stores/me [get]
func (app *application) getMyStoreHandler(w http.ResponseWriter, r *http.Request) {
	store, status, err := app.storeService.GetForOwner(r.Context(), actorFromCtx(r).UserID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, MyStoreResponse{Status: status, Store: store}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getStoreHandler godoc
//
//	@Summary		Get store by ID
//	@Tags			stores
//	@Produce		json
//	@Param			store_id	path		string	true	"Store ID"
//	@Success		200			{object}	domain.Store
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/stores/{store_id} [get]
func (app *application) getStoreHandler(w http.ResponseWriter, r *http.Request) {
	storeID, err := objectIDParam(r, "store_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	store, err := app.storeService.Get(r.Context(), storeID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, store); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateStoreHandler godoc
//
//	@Summary		Update store profile
//	@Tags			stores
//	@Accept			json
//	@Produce		json
//	@Param			store_id	path		string			true	"Store ID"
//	@Param			payload		body		StorePayload	true	"Store"
//	@Success		200			{object}	domain.Store
//	@Failure		400			{object}	map[string]string
//	@Failure		403			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/stores/{store_id} [patch]
func (app *application) updateStoreHandler(w http.ResponseWriter, r *http.Request) {
	storeID, err := objectIDParam(r, "store_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload StorePayload
	if err := readJson(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	store, err := app.storeService.Update(r.Context(), actorFromCtx(r), storeID, payload.input())
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, store); err != nil {
		app.internalServerError(w, r, err)
	}
}

// uploadStoreImageHandler godoc
//
//	@Summary		Upload store image
//	@Description	Stores a JPEG, PNG or WebP image of at most 5 MB
//	@Tags			stores
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			store_id	path		string	true	"Store ID"
//	@Param			image		formData	file	true	"Image"
//	@Success		200			{object}	ImageResponse
//	@Failure		400			{object}	map[string]string
//	@Failure		403			{object}	map[string]string
//	@Failure		413			{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/stores/{store_id}/image [post]
func (app *application) uploadStoreImageHandler(w http.ResponseWriter, r *http.Request) {
	storeID, err := objectIDParam(r, "store_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	data, err := readImage(w, r)
	if err != nil {
		app.imageError(w, r, err)
		return
	}

	url, err := app.storeService.UploadImage(r.Context(), actorFromCtx(r), storeID, data)
	if app.metrics != nil {
		app.metrics.ImageUploaded("store", err)
	}
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, ImageResponse{ImageURL: url}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getStoreQRHandler godoc
//
//	@Summary		Store menu QR code
//	@Description	PNG QR code pointing at the store's menu page
//	@Tags			stores
//	@Produce		png
//	@Param			store_id	path		string	true	"Store ID"
//	@Success		200			{file}		binary
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/stores/{store_id}/qr [get]
func (app *application) getStoreQRHandler(w http.ResponseWriter, r *http.Request) {
	storeID, err := objectIDParam(r, "store_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	store, err := app.storeService.Get(r.Context(), storeID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	link := fmt.Sprintf("%s/stores/%s", app.config.frontendURL, store.ID.Hex())
	png, err := qrcode.Encode(link, qrcode.Medium, qrSize)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
