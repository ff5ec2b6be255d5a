package main

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Abdulllah321/sports-landing-sub001/internal/catalog"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())

	// Price labels carry an amount ("$50/hour") unless they say the price is
	// free or on request ("Free trial", "Contact for pricing").
	Validate.RegisterValidation("pricetext", func(fl validator.FieldLevel) bool {
		text := fl.Field().String()
		if _, ok := catalog.ParsePrice(text); ok {
			return true
		}
		lower := strings.ToLower(text)
		return strings.Contains(lower, "free") || strings.Contains(lower, "contact")
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// it parses body into Go struct.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1_048_578 //1mb
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(data)
}

func writeJSONError(w http.ResponseWriter, status int, message string) error {
	type envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Status  int    `json:"status"`
	}

	return writeJSON(w, status, &envelope{
		Success: false,
		Message: message,
		Status:  status,
	})
}

func (app *application) jsonResponse(w http.ResponseWriter, status int, data any) error {
	type envelope struct {
		Data any `json:"data"`
	}
	return writeJSON(w, status, &envelope{Data: data})
}
