package main

import "net/http"

// getSessionHandler godoc
//
//	@Summary		Resolve the signed-in user
//	@Description	Returns the role, landing screen and store status of the caller
//	@Tags			session
//	@Produce		json
//	@Success		200	{object}	service.Session
//	@Failure		401	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/me [get]
func (app *application) getSessionHandler(w http.ResponseWriter, r *http.Request) {
	claims := getClaimsFromCtx(r)

	session, err := app.sessionService.Resolve(r.Context(), actorFromCtx(r), claims.Role)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, session); err != nil {
		app.internalServerError(w, r, err)
	}
}
