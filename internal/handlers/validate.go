package handlers

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/apperr"
)

// Share preview limits.
const (
	maxShareTitle       = 120
	maxShareDescription = 300
	maxShareSiteName    = 60
)

var packageID = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,39}$`)

// validateShareMeta checks the share preview form. Title and description
// are required.
func validateShareMeta(title, description, siteName string) []apperr.FieldError {
	var out []apperr.FieldError
	check := func(field, v string, max int, required bool) {
		v = strings.TrimSpace(v)
		switch {
		case required && v == "":
			out = append(out, apperr.FieldError{Field: field, Message: "This field is required"})
		case utf8.RuneCountInString(v) > max:
			out = append(out, apperr.FieldError{Field: field, Message: "Maximum " + strconv.Itoa(max)})
		}
	}
	check("title", title, maxShareTitle, true)
	check("description", description, maxShareDescription, true)
	check("siteName", siteName, maxShareSiteName, false)
	return out
}

// validatePackageID checks a credit package id such as credits-10.
func validatePackageID(id string) string {
	if !packageID.MatchString(id) {
		return "Package ID must be 2-40 lowercase letters, digits or dashes."
	}
	return ""
}
