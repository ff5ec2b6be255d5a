package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/Abdulllah321/sports-landing-sub001/internal/browse"
	"github.com/Abdulllah321/sports-landing-sub001/internal/metrics"
	"github.com/go-chi/chi/v5"
)

type catalogKey string

const catalogCtx catalogKey = "catalog"

func (app *application) BasicAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// read the auth header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("authorization header is missing"))
				return
			}

			// parse it -> get the base64
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Basic" {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("authorization header is malformed"))
				return
			}

			// decode it
			decoded, err := base64.StdEncoding.DecodeString(parts[1])
			if err != nil {
				app.unauthorizedBasicErrorResponse(w, r, err)
				return
			}

			// check the credentials
			username := app.config.auth.basic.user
			pass := app.config.auth.basic.pass

			creds := strings.SplitN(string(decoded), ":", 2)
			if username == "" || len(creds) != 2 || creds[0] != username || creds[1] != pass {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("invalid credentials"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !app.config.rateLimiter.Enabled {
			next.ServeHTTP(w, r)
			return
		}

		// RealIP has already rewritten RemoteAddr; it may still carry a port
		ip := r.RemoteAddr
		if host, _, err := net.SplitHostPort(ip); err == nil {
			ip = host
		}

		if allow, retryAfter := app.rateLimiter.Allow(ip); !allow {
			metrics.RateLimited.Inc()
			app.rateLimitExceededResponse(w, r, retryAfter)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// catalogContextMiddleware resolves the {kind} URL segment to its catalog.
func (app *application) catalogContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind := chi.URLParam(r, "kind")

		cat, ok := app.catalogs[kind]
		if !ok {
			app.notFoundResponse(w, r, fmt.Errorf("unknown catalog %q", kind))
			return
		}

		ctx := context.WithValue(r.Context(), catalogCtx, cat)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getCatalogFromContext(r *http.Request) browse.Catalog {
	cat, _ := r.Context().Value(catalogCtx).(browse.Catalog)
	return cat
}
