package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/raasdandiya/checkout/internal/core/domain"
)

// Gate holds the per-step predicates. Each step reports every failing field
// at once, keyed by field name, so the caller can render all problems inline.
type Gate struct {
	v              *validator.Validate
	approvedDomain string
}

func New(approvedEmailDomain string) *Gate {
	g := &Gate{
		v:              validator.New(validator.WithRequiredStructEnabled()),
		approvedDomain: strings.ToLower(strings.TrimPrefix(approvedEmailDomain, "@")),
	}

	_ = g.v.RegisterValidation("eventdate", validEventDate)
	_ = g.v.RegisterValidation("maildomain", g.approvedMailDomain)
	_ = g.v.RegisterValidation("phone10", tenDigits)

	return g
}

type selectionForm struct {
	EventDate string `validate:"required,eventdate"`
	Quantity  int    `validate:"min=1"`
}

type contactForm struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email,maildomain"`
	Phone string `validate:"required,phone10"`
}

// SelectionStep gates SELECTING -> CONTACT. There is deliberately no upper
// bound on quantity.
func (g *Gate) SelectionStep(sel domain.TicketSelection) map[string]string {
	form := selectionForm{
		EventDate: strings.TrimSpace(sel.EventDate),
		Quantity:  sel.Quantity,
	}

	return g.messages(g.v.Struct(form))
}

// ContactStep gates CONTACT -> REVIEW. The phone number is reduced to digits
// before the length check, and the normalized contact is returned so the
// caller stores exactly what was validated.
func (g *Gate) ContactStep(contact domain.ContactInfo) (domain.ContactInfo, map[string]string) {
	contact.FullName = strings.TrimSpace(contact.FullName)
	contact.Email = strings.TrimSpace(contact.Email)
	contact.Phone = digitsOnly(contact.Phone)

	form := contactForm{
		Name:  contact.FullName,
		Email: contact.Email,
		Phone: contact.Phone,
	}

	return contact, g.messages(g.v.Struct(form))
}

func (g *Gate) messages(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"form": err.Error()}
	}

	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		field, msg := g.describe(fe)
		out[field] = msg
	}

	return out
}

func (g *Gate) describe(fe validator.FieldError) (string, string) {
	switch fe.StructField() {
	case "EventDate":
		if fe.Tag() == "required" {
			return "eventDate", "Please select an event date"
		}
		return "eventDate", "Event date must be a valid date (YYYY-MM-DD)"
	case "Quantity":
		return "quantity", "Please select at least 1 ticket"
	case "Name":
		return "name", "Please enter your full name"
	case "Email":
		switch fe.Tag() {
		case "required":
			return "email", "Please enter your email address"
		case "email":
			return "email", "Please enter a valid email address"
		default:
			return "email", fmt.Sprintf("Only @%s email addresses are allowed", g.approvedDomain)
		}
	case "Phone":
		if fe.Tag() == "required" {
			return "phone", "Please enter your phone number"
		}
		return "phone", "Phone number must be exactly 10 digits"
	}

	return strings.ToLower(fe.StructField()), fe.Error()
}

func validEventDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

func (g *Gate) approvedMailDomain(fl validator.FieldLevel) bool {
	addr := strings.ToLower(fl.Field().String())

	at := strings.LastIndex(addr, "@")
	if at < 0 {
		return false
	}

	return addr[at+1:] == g.approvedDomain
}

func tenDigits(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 10 {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
