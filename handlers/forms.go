// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/danielhkuo/todolists/models"
)

// Validation messages shown next to form fields
const (
	msgRequired   = "This field is required."
	msgNotInteger = "Not a valid integer value."
)

var msgTooLong = fmt.Sprintf("Field cannot be longer than %d characters.", models.MaxFieldLength)

// decodeCreateListForm reads the create-list form. The name is trimmed and
// required; items are kept verbatim.
func decodeCreateListForm(r *http.Request) (models.CreateListForm, models.FormErrors) {
	form := models.CreateListForm{
		Name:  strings.TrimSpace(r.PostFormValue("name")),
		Items: r.PostFormValue("items"),
	}

	errs := models.FormErrors{}
	switch {
	case form.Name == "":
		errs["name"] = msgRequired
	case utf8.RuneCountInString(form.Name) > models.MaxFieldLength:
		errs["name"] = msgTooLong
	}
	return form, errs
}

// decodeUpdatePriorityForm reads new_priority. Zero counts as missing.
func decodeUpdatePriorityForm(r *http.Request) (models.UpdatePriorityForm, models.FormErrors) {
	form := models.UpdatePriorityForm{Raw: strings.TrimSpace(r.PostFormValue("new_priority"))}

	errs := models.FormErrors{}
	if form.Raw == "" {
		errs["new_priority"] = msgRequired
		return form, errs
	}

	p, err := strconv.Atoi(form.Raw)
	if err != nil {
		errs["new_priority"] = msgNotInteger
		return form, errs
	}
	if p == 0 {
		errs["new_priority"] = msgRequired
		return form, errs
	}
	form.NewPriority = p
	return form, errs
}
