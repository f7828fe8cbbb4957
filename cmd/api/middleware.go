package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"
	"net/http"
	"strings"

	"github.com/Beka01247/dormeats/internal/auth"
	"github.com/Beka01247/dormeats/internal/service"
)

type claimsKey string

const claimsCtx claimsKey = "claims"

func (app *application) AuthTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			app.unauthorizedErrorResponse(w, r, errors.New("authorization header is missing"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			app.unauthorizedErrorResponse(w, r, errors.New("authorization header is malformed"))
			return
		}

		claims, err := app.authenticator.ValidateToken(parts[1])
		if err != nil {
			app.unauthorizedErrorResponse(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), claimsCtx, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) requireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := getClaimsFromCtx(r)
			if claims == nil || claims.Role != role {
				app.forbiddenResponse(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.rateLimiter.Enabled {
			if allow, retryAfter := app.rateLimiter.Allow(r.Context(), clientIP(r)); !allow {
				app.rateLimitExceededResponse(w, r, fmt.Sprintf("%d", int(math.Ceil(retryAfter.Seconds()))))
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func getClaimsFromCtx(r *http.Request) *auth.Claims {
	claims, _ := r.Context().Value(claimsCtx).(*auth.Claims)
	return claims
}

func actorFromCtx(r *http.Request) service.Actor {
	claims := getClaimsFromCtx(r)
	if claims == nil {
		return service.Actor{}
	}
	return service.Actor{UserID: claims.UserID, Admin: claims.IsAdmin()}
}
