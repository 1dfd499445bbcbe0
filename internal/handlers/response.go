package handlers

import (
	"errors"
	"net/http"

	"github.com/AlenaMolokova/canadasin/internal/sin"
	"github.com/AlenaMolokova/canadasin/internal/validation"
)

type ValidationResponse struct {
	ID       string   `json:"id,omitempty"`
	Valid    bool     `json:"valid"`
	Kind     string   `json:"kind"`
	Number   string   `json:"number,omitempty"`
	Class    string   `json:"class,omitempty"`
	Assigned bool     `json:"assigned"`
	Types    []string `json:"types,omitempty"`
	Outcome  string   `json:"outcome"`
	Error    string   `json:"error,omitempty"`
	Expected *uint8   `json:"expected,omitempty"`
	Actual   *uint8   `json:"actual,omitempty"`
	Position *int     `json:"position,omitempty"`
}

func newValidationResponse(res validation.Result, style sin.FormatStyle) ValidationResponse {
	resp := ValidationResponse{
		Valid:   res.Valid(),
		Kind:    res.Kind.String(),
		Outcome: res.Outcome,
	}
	if c := res.Class(); c != nil {
		resp.Class = c.String()
		resp.Assigned = c.Assigned()
		if res.Kind == sin.KindSIN {
			for _, t := range res.Digits.Types() {
				resp.Types = append(resp.Types, t.String())
			}
		}
	}
	if res.Valid() {
		resp.Number = sin.Format(res.Number, style)
		return resp
	}

	resp.Error = res.Err.Error()
	var sumErr *sin.ChecksumError
	if errors.As(res.Err, &sumErr) {
		resp.Expected = &sumErr.Expected
		resp.Actual = &sumErr.Actual
	}
	var charErr *sin.InvalidCharacterError
	if errors.As(res.Err, &charErr) {
		resp.Position = &charErr.Position
	}
	return resp
}

func statusFor(res validation.Result) int {
	if res.Valid() {
		return http.StatusOK
	}
	return http.StatusUnprocessableEntity
}
