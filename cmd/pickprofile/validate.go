// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Labels are the user-facing build choices. Validation belongs to this shell;
// the build core treats the labels as opaque strings.
type Labels struct {
	State  string `validate:"required,caseinsensitiveoneof=OH DC FL GA PA LA VA DE"`
	Draw   string `validate:"required,caseinsensitiveoneof=mid eve"`
	Recent int    `validate:"min=0,max=100000"`
}

// Normalized returns the labels in canonical case: STATE upper, draw lower.
func (l Labels) Normalized() Labels {
	l.State = strings.ToUpper(strings.TrimSpace(l.State))
	l.Draw = strings.ToLower(strings.TrimSpace(l.Draw))

	return l
}

func newValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("caseinsensitiveoneof", caseInsensitiveOneOf)

	return validate
}

func caseInsensitiveOneOf(fl validator.FieldLevel) bool {
	val := strings.ToLower(strings.TrimSpace(fl.Field().String()))
	for _, v := range strings.Fields(strings.ToLower(fl.Param())) {
		if val == v {
			return true
		}
	}

	return false
}
