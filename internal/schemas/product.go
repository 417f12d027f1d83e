package schemas

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"botica/internal/models"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single violated rule on one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors aggregates every violation found in one input. All fields are
// checked independently so the caller sees the full list, not just the first.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// validate applies the per-field range and length rules after coercion.
var validate = validator.New()

// ProductCreate is the inbound field bag for create and update requests.
// Fields stay untyped until Validate coerces them, so that null, wrong-type
// and out-of-range values can each be reported with a distinct message.
// An id is never accepted here; ids exist only on stored representations.
type ProductCreate struct {
	Name        interface{} `json:"name"`
	Description interface{} `json:"description"`
	Price       interface{} `json:"price"`
	Stock       interface{} `json:"stock"`
}

// ParseProductCreate decodes a raw JSON body into a ProductCreate.
// Numbers are kept as json.Number so integer and decimal coercion stay exact.
// A syntactically invalid body is the only error returned here; field-level
// problems are left for Validate.
func ParseProductCreate(body []byte) (*ProductCreate, error) {
	var input ProductCreate
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&input); err != nil {
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}
	return &input, nil
}

// Validate checks every field against its rule and either returns a fully
// populated Product (without id) or the complete list of violations. It is a
// pure check-and-transform step and never touches the store.
//
// Rules: name present with length >= 1 (not trimmed, so a whitespace-only
// name passes); description present, any text including empty; price a
// decimal number or numeric string, strictly greater than 0; stock an
// integer or integer string, strictly greater than 0.
func (p *ProductCreate) Validate() (*models.Product, FieldErrors) {
	var errs FieldErrors

	name, nameIsString := p.Name.(string)
	switch {
	case p.Name == nil:
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	case !nameIsString:
		errs = append(errs, FieldError{Field: "name", Message: "name must be a string"})
	case validate.Var(name, "min=1") != nil:
		errs = append(errs, FieldError{Field: "name", Message: "name must have at least 1 character"})
	}

	description, descIsString := p.Description.(string)
	switch {
	case p.Description == nil:
		errs = append(errs, FieldError{Field: "description", Message: "description is required"})
	case !descIsString:
		errs = append(errs, FieldError{Field: "description", Message: "description must be a string"})
	}

	price, priceErr := coerceDecimal(p.Price)
	switch {
	case p.Price == nil:
		errs = append(errs, FieldError{Field: "price", Message: "price is required"})
	case priceErr != nil:
		errs = append(errs, FieldError{Field: "price", Message: "price must be a valid decimal number"})
	case validate.Var(price, "gt=0") != nil:
		errs = append(errs, FieldError{Field: "price", Message: "price must be greater than 0"})
	}

	stock, stockErr := coerceInt(p.Stock)
	switch {
	case p.Stock == nil:
		errs = append(errs, FieldError{Field: "stock", Message: "stock is required"})
	case stockErr != nil:
		errs = append(errs, FieldError{Field: "stock", Message: "stock must be a valid integer"})
	case validate.Var(stock, "gt=0") != nil:
		errs = append(errs, FieldError{Field: "stock", Message: "stock must be greater than 0"})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &models.Product{
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
	}, nil
}

// coerceDecimal accepts a JSON number or a numeric string.
func coerceDecimal(v interface{}) (float64, error) {
	switch val := v.(type) {
	case json.Number:
		return val.Float64()
	case string:
		return strconv.ParseFloat(strings.TrimSpace(val), 64)
	default:
		return 0, fmt.Errorf("not a decimal value: %v", v)
	}
}

// coerceInt accepts a JSON integer or an integer string. Fractional numbers
// are rejected rather than truncated.
func coerceInt(v interface{}) (int, error) {
	switch val := v.(type) {
	case json.Number:
		n, err := strconv.ParseInt(val.String(), 10, 64)
		return int(n), err
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		return int(n), err
	default:
		return 0, fmt.Errorf("not an integer value: %v", v)
	}
}
