package handlers

import (
	"log"
	"net/http"

	"github.com/AlenaMolokova/canadasin/internal/sin"
	"github.com/AlenaMolokova/canadasin/internal/utils"
	"github.com/AlenaMolokova/canadasin/internal/validation"
)

type ValidateHandler struct {
	validator validation.NumberValidator
	kind      sin.Kind
}

func NewValidateHandler(validator validation.NumberValidator, kind sin.Kind) *ValidateHandler {
	return &ValidateHandler{validator: validator, kind: kind}
}

func (h *ValidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := readNumberRequest(w, r)
	if err != nil {
		log.Printf("Failed to read validate request: %v", err)
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	style, ok := sin.ParseFormatStyle(req.Style)
	if !ok {
		log.Printf("Unknown format style %q", req.Style)
		utils.WriteJSONError(w, http.StatusBadRequest, "Unknown format style")
		return
	}

	res := h.validator.Validate(req.Number, h.kind)
	if res.Parsed {
		log.Printf("Validated %s %s: %s", h.kind, res.Masked(), res.Outcome)
	} else {
		log.Printf("Validated %s: %s (%v)", h.kind, res.Outcome, res.Err)
	}

	utils.WriteJSON(w, statusFor(res), newValidationResponse(res, style))
}
