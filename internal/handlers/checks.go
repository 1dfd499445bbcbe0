package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/AlenaMolokova/canadasin/internal/middleware"
	"github.com/AlenaMolokova/canadasin/internal/sin"
	"github.com/AlenaMolokova/canadasin/internal/utils"
)

type CheckHandler struct {
	checkUC CheckUseCase
}

func NewCheckHandler(checkUC CheckUseCase) *CheckHandler {
	return &CheckHandler{checkUC: checkUC}
}

func (h *CheckHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		log.Printf("Unauthorized: missing user_id in context")
		utils.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	req, err := readNumberRequest(w, r)
	if err != nil {
		log.Printf("Failed to read check request: %v", err)
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	kind := sin.KindSIN
	if req.Kind != "" {
		if kind, err = sin.ParseKind(req.Kind); err != nil {
			log.Printf("Unknown kind %q from user %d", req.Kind, userID)
			utils.WriteJSONError(w, http.StatusBadRequest, "Unknown kind")
			return
		}
	}
	style, ok := sin.ParseFormatStyle(req.Style)
	if !ok {
		utils.WriteJSONError(w, http.StatusBadRequest, "Unknown format style")
		return
	}

	res, check, err := h.checkUC.Check(r.Context(), userID, req.Number, kind)
	if err != nil {
		log.Printf("Failed to record check for user %d: %v", userID, err)
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := newValidationResponse(res, style)
	resp.ID = check.ID.String()
	log.Printf("Recorded check %s for user %d: %s", check.ID, userID, check.Outcome)
	utils.WriteJSON(w, statusFor(res), resp)
}

type CheckResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Number    string `json:"number,omitempty"`
	Outcome   string `json:"outcome"`
	Class     string `json:"class,omitempty"`
	CheckedAt string `json:"checked_at"`
}

type ChecksGetHandler struct {
	checkUC CheckUseCase
}

func NewChecksGetHandler(checkUC CheckUseCase) *ChecksGetHandler {
	return &ChecksGetHandler{checkUC: checkUC}
}

func (h *ChecksGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		log.Printf("Unauthorized: missing user_id in context")
		utils.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	checks, err := h.checkUC.GetUserChecks(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to get checks for user %d: %v", userID, err)
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(checks) == 0 {
		log.Printf("No checks found for user %d", userID)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := make([]CheckResponse, len(checks))
	for i, c := range checks {
		response[i] = CheckResponse{
			ID:        c.ID.String(),
			Kind:      c.Kind,
			Number:    c.Masked,
			Outcome:   c.Outcome,
			Class:     c.Class,
			CheckedAt: c.CheckedAt.Time.Format(time.RFC3339),
		}
	}

	utils.WriteJSON(w, http.StatusOK, response)
	log.Printf("Returned %d checks for user %d", len(checks), userID)
}
