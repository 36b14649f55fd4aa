package controllers

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/manishasuddala09/customercrudfrontend/internal/api"
)

// ErrInvalidForm is returned by form submits that were blocked by
// client-side validation; the field errors carry the details.
var ErrInvalidForm = errors.New("form validation failed")

var (
	phonePattern   = regexp.MustCompile(`^[0-9]{10}$`)
	pinCodePattern = regexp.MustCompile(`^[0-9]{6}$`)
)

// FieldErrors maps a field key to its validation message. Address block
// fields are keyed per index, e.g. "pin_code_2".
type FieldErrors map[string]string

func (e FieldErrors) Get(key string) string { return e[key] }

func indexedKey(field string, index int) string {
	return fmt.Sprintf("%s_%d", field, index)
}

func requireNonEmpty(errs FieldErrors, key, value, message string) bool {
	if strings.TrimSpace(value) == "" {
		errs[key] = message
		return false
	}
	return true
}

func validatePhoneNumber(errs FieldErrors, key, value string) {
	if !requireNonEmpty(errs, key, value, "Phone number is required") {
		return
	}
	if !phonePattern.MatchString(value) {
		errs[key] = "Phone number must be 10 digits"
	}
}

func validatePinCode(errs FieldErrors, key, value string) {
	if !requireNonEmpty(errs, key, value, "PIN code is required") {
		return
	}
	if !pinCodePattern.MatchString(value) {
		errs[key] = "PIN code must be 6 digits"
	}
}

// validateAddressFields checks one address block; key maps a field name to
// its error key so the customer form can scope errors per block index.
func validateAddressFields(errs FieldErrors, block AddressBlock, key func(field string) string) {
	requireNonEmpty(errs, key("address_details"), block.AddressDetails, "Address is required")
	requireNonEmpty(errs, key("city"), block.City, "City is required")
	requireNonEmpty(errs, key("state"), block.State, "State is required")
	validatePinCode(errs, key("pin_code"), block.PinCode)
}

// errText prefers the backend's message for an API error and falls back to
// the per-operation generic string.
func errText(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
