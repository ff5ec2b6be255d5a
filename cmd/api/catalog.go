package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Abdulllah321/sports-landing-sub001/internal/metrics"
	"github.com/Abdulllah321/sports-landing-sub001/internal/params"
	"github.com/go-chi/chi/v5"
)

type updateStatusPayload struct {
	Status string `json:"status" validate:"required,max=20"`
}

// BrowseCatalog godoc
//
//	@Summary		Browse a catalog
//	@Description	Filters one catalog kind and returns a page of matches together with stats, the kind's summary cards and the filter options
//	@Tags			Catalog
//	@Produce		json
//	@Param			kind		path		string	true	"facilities, academies, bookings, ads, tournaments or videos"
//	@Param			search		query		string	false	"Case-insensitive text search"
//	@Param			category	query		string	false	"Category or all"
//	@Param			location	query		string	false	"Location or all"
//	@Param			status		query		string	false	"Status or all"
//	@Param			date		query		string	false	"YYYY-MM-DD or any"
//	@Param			time_slot	query		string	false	"HH:MM or all, only used with a date"
//	@Param			page		query		int		false	"Page number (default: 1)"
//	@Param			limit		query		int		false	"Items per page (default: 15, max: 30)"
//	@Success		200			{object}	map[string]interface{}
//	@Failure		400			{object}	error	"Bad Request: Invalid parameters"
//	@Failure		404			{object}	error	"Unknown catalog"
//	@Failure		500			{object}	error	"Internal Server Error"
//	@Router			/{kind} [get]
func (app *application) browseCatalogHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cat := getCatalogFromContext(r)
	q := r.URL.Query()

	criteria, err := parseCriteria(q)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	p := params.ParsePagination(q)

	start := time.Now()
	page, matched, err := cat.Browse(ctx, criteria, p)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	metrics.ObserveBrowse(cat.Kind(), matched, time.Since(start))

	app.jsonResponse(w, http.StatusOK, page)
}

// GetTimeSlots godoc
//
//	@Summary		Time slots for a date
//	@Description	Lists the distinct time slots offered on a date across the whole catalog, ascending
//	@Tags			Catalog
//	@Produce		json
//	@Param			kind	path		string	true	"Catalog kind"
//	@Param			date	query		string	true	"YYYY-MM-DD"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	error	"Bad Request: missing or malformed date"
//	@Router			/{kind}/options/time-slots [get]
func (app *application) timeSlotsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cat := getCatalogFromContext(r)

	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		app.badRequestResponse(w, r, errInvalidRequest("date is required"))
		return
	}
	if err := validDate(date); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	slots, err := cat.TimeSlots(ctx, date)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]any{
		"date":       date,
		"time_slots": slots,
	})
}

// GetRecord godoc
//
//	@Summary		Get one record
//	@Tags			Catalog
//	@Produce		json
//	@Param			kind		path		string	true	"Catalog kind"
//	@Param			recordID	path		string	true	"Record ID"
//	@Success		200			{object}	map[string]interface{}
//	@Failure		404			{object}	error	"Not Found"
//	@Router			/{kind}/{recordID} [get]
func (app *application) getRecordHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cat := getCatalogFromContext(r)

	rec, err := cat.Get(ctx, chi.URLParam(r, "recordID"))
	if err != nil {
		app.recordError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, rec)
}

// CreateRecord godoc
//
//	@Summary		Create a record
//	@Description	Adds a record to a catalog. The id is generated when omitted and the status defaults to the kind's first status.
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			kind	path		string	true	"Catalog kind"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		400		{object}	error	"Bad Request: invalid payload or status"
//	@Failure		409		{object}	error	"Conflict: id already taken"
//	@Router			/{kind} [post]
func (app *application) createRecordHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cat := getCatalogFromContext(r)

	rec, err := cat.Create(ctx, func(dst any) error {
		if err := readJSON(w, r, dst); err != nil {
			return errInvalidRequest(err.Error())
		}
		return Validate.Struct(dst)
	})
	metrics.ObserveMutation(cat.Kind(), "create", err)
	if err != nil {
		app.recordError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusCreated, rec)
}

// UpdateRecordStatus godoc
//
//	@Summary		Change a record's status
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			kind		path		string					true	"Catalog kind"
//	@Param			recordID	path		string					true	"Record ID"
//	@Param			payload		body		updateStatusPayload		true	"New status"
//	@Success		200			{object}	map[string]interface{}
//	@Failure		400			{object}	error	"Bad Request: unknown status"
//	@Failure		404			{object}	error	"Not Found"
//	@Router			/{kind}/{recordID}/status [patch]
func (app *application) updateRecordStatusHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cat := getCatalogFromContext(r)

	var payload updateStatusPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	rec, err := cat.SetStatus(ctx, chi.URLParam(r, "recordID"), payload.Status)
	metrics.ObserveMutation(cat.Kind(), "status", err)
	if err != nil {
		app.recordError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, rec)
}

// DeleteRecord godoc
//
//	@Summary		Delete a record
//	@Tags			Catalog
//	@Param			kind		path	string	true	"Catalog kind"
//	@Param			recordID	path	string	true	"Record ID"
//	@Success		204
//	@Failure		404	{object}	error	"Not Found"
//	@Router			/{kind}/{recordID} [delete]
func (app *application) deleteRecordHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cat := getCatalogFromContext(r)

	err := cat.Delete(ctx, chi.URLParam(r, "recordID"))
	metrics.ObserveMutation(cat.Kind(), "delete", err)
	if err != nil {
		app.recordError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
