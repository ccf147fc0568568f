// Package forms parses and validates submitted form values, producing
// typed per-field errors. It knows nothing about rendering; handlers pass
// the form and its errors back to the template layer for redisplay.
package forms

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldErrors maps a lowercase field name to a human-readable message.
type FieldErrors map[string]string

var validate = validator.New(validator.WithRequiredStructEnabled())

// Registration carries the sign-up form input.
type Registration struct {
	Username string `validate:"required,max=150"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func ParseRegistration(values url.Values) (Registration, FieldErrors) {
	f := Registration{
		Username: strings.TrimSpace(values.Get("username")),
		Email:    strings.TrimSpace(values.Get("email")),
		Password: values.Get("password"),
	}

	return f, check(f)
}

// Login carries the sign-in form input.
type Login struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

func ParseLogin(values url.Values) (Login, FieldErrors) {
	f := Login{
		Username: strings.TrimSpace(values.Get("username")),
		Password: values.Get("password"),
	}

	return f, check(f)
}

// Transaction carries the create/edit form input. Amount stays a string
// here so invalid input can be redisplayed verbatim; call AmountValue
// only after validation passed.
type Transaction struct {
	Title    string `validate:"required,max=200"`
	Amount   string `validate:"required"`
	Type     string `validate:"required,oneof=income expense"`
	Category string `validate:"required,oneof=food rent shopping travel salary investment other"`
}

func ParseTransaction(values url.Values) (Transaction, FieldErrors) {
	f := Transaction{
		Title:    strings.TrimSpace(values.Get("title")),
		Amount:   strings.TrimSpace(values.Get("amount")),
		Type:     values.Get("type"),
		Category: values.Get("category"),
	}

	errs := check(f)

	if f.Amount != "" {
		if _, err := decimal.NewFromString(f.Amount); err != nil {
			if errs == nil {
				errs = FieldErrors{}
			}

			errs["amount"] = "enter a valid decimal amount"
		}
	}

	return f, errs
}

// AmountValue returns the parsed amount. Only valid after ParseTransaction
// returned no errors.
func (f Transaction) AmountValue() decimal.Decimal {
	d, _ := decimal.NewFromString(f.Amount)
	return d
}

func check(v any) FieldErrors {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"": "invalid input"}
	}

	errs := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		errs[strings.ToLower(fe.Field())] = message(fe)
	}

	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return "invalid value"
	}
}
