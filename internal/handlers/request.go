package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"
)

const maxBodyBytes = 1 << 10

var errEmptyNumber = errors.New("number is required")

type numberRequest struct {
	Number string `json:"number"`
	Kind   string `json:"kind"`
	Style  string `json:"style"`
}

// readNumberRequest accepts a JSON body or, like the order upload it grew
// out of, a bare text/plain number.
func readNumberRequest(w http.ResponseWriter, r *http.Request) (numberRequest, error) {
	var req numberRequest
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			return numberRequest{}, err
		}
	} else {
		raw, err := io.ReadAll(body)
		if err != nil {
			return numberRequest{}, err
		}
		req.Number = string(raw)
	}

	req.Number = strings.TrimSpace(req.Number)
	if req.Number == "" {
		return numberRequest{}, errEmptyNumber
	}
	return req, nil
}
