package validation

import (
	"github.com/AlenaMolokova/canadasin/internal/constants"
	"github.com/AlenaMolokova/canadasin/internal/sin"
)

type NumberValidator interface {
	Validate(raw string, kind sin.Kind) Result
}

// Result carries everything a caller needs to report one validation.
// Digits is set whenever parsing succeeded, even if the checksum failed.
type Result struct {
	Kind    sin.Kind
	Number  sin.Number
	Digits  sin.Digits
	Parsed  bool
	Outcome string
	Err     error
}

func (r Result) Valid() bool {
	return r.Err == nil
}

// Class is nil unless the number parsed.
func (r Result) Class() sin.Class {
	if !r.Parsed {
		return nil
	}
	return sin.Classify(r.Digits, r.Kind)
}

// Masked is empty unless the number parsed.
func (r Result) Masked() string {
	if !r.Parsed {
		return ""
	}
	return r.Digits.Masked()
}

type Observer interface {
	ObserveValidation(kind, outcome string)
}

type SINValidator struct {
	observer Observer
}

func NewSINValidator(observer Observer) *SINValidator {
	return &SINValidator{observer: observer}
}

func (v *SINValidator) Validate(raw string, kind sin.Kind) Result {
	res := Result{Kind: kind}
	d, err := sin.Parse(raw)
	switch {
	case err != nil:
		res.Err = err
		res.Outcome = constants.OutcomeMalformed
	default:
		res.Digits = d
		res.Parsed = true
		res.Number, res.Err = sin.Validate(d, kind)
		switch {
		case res.Err != nil:
			res.Outcome = constants.OutcomeInvalidChecksum
		case !res.Number.Class().Assigned():
			res.Outcome = constants.OutcomeUnassigned
		default:
			res.Outcome = constants.OutcomeValid
		}
	}
	if v.observer != nil {
		v.observer.ObserveValidation(kind.String(), res.Outcome)
	}
	return res
}
