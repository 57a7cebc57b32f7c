// Package forms holds the declarative schemas for submitted form data.
// Parsing never panics on malformed input; bad fields come back as
// per-field error lists the form component can render.
package forms

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Errors maps a field name to its ordered list of user-facing messages.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

const (
	MsgCustomerRequired = "Please select a customer."
	MsgAmountInvalid    = "Please enter an amount greater than $0."
	MsgStatusInvalid    = "Please select an invoice status."
	MsgNameRequired     = "Please enter a name!"
	MsgEmailInvalid     = "Please enter a valid email!"
	MsgEmailTaken       = "Email already exists!"
	MsgImageRequired    = "Please upload an image!"
)

// InvoiceInput is the validated shape of an invoice form. The id and date
// are supplied by the orchestrator, never by the end user.
type InvoiceInput struct {
	CustomerID string  `validate:"required"`
	Amount     float64 `validate:"gt=0"`
	Status     string  `validate:"oneof=pending paid"`
}

// ParseInvoice validates raw invoice form values. A non-numeric amount is
// an amount field error, not a failure of the parse itself.
func ParseInvoice(values url.Values) (InvoiceInput, Errors) {
	errs := Errors{}

	in := InvoiceInput{
		CustomerID: values.Get("customerId"),
		Status:     values.Get("status"),
	}

	amountCoerced := true
	if raw := values.Get("amount"); raw != "" {
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			amountCoerced = false
			errs.Add("amount", MsgAmountInvalid)
		} else {
			in.Amount = amount
		}
	}

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				switch fe.StructField() {
				case "CustomerID":
					errs.Add("customerId", MsgCustomerRequired)
				case "Amount":
					if amountCoerced {
						errs.Add("amount", MsgAmountInvalid)
					}
				case "Status":
					errs.Add("status", MsgStatusInvalid)
				}
			}
		}
	}

	return in, errs
}

// Upload carries the submitted image file.
type Upload struct {
	Name    string
	Content []byte
}

// CustomerInput is the validated shape of a customer form. ImageName is the
// uploaded file's original name; the stored path is derived from it later.
type CustomerInput struct {
	Name      string `validate:"required"`
	Email     string `validate:"required,email"`
	ImageName string `validate:"required"`
}

func ParseCustomer(values url.Values, upload *Upload) (CustomerInput, Errors) {
	errs := Errors{}

	in := CustomerInput{
		Name:  values.Get("name"),
		Email: values.Get("email"),
	}
	if upload != nil {
		in.ImageName = upload.Name
	}

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				switch fe.StructField() {
				case "Name":
					errs.Add("name", MsgNameRequired)
				case "Email":
					errs.Add("email", MsgEmailInvalid)
				case "ImageName":
					errs.Add("image_url", MsgImageRequired)
				}
			}
		}
	}

	return in, errs
}
