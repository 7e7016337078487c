package models

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// OrderSubmission is the wire payload of one order. Binding tags reject
// grossly malformed bodies at decode time; Validate covers the rules the
// tags cannot express (catalog membership, quantity floor, phone format).
type OrderSubmission struct {
	Name          string         `json:"name" binding:"required,max=100"`
	Email         string         `json:"email" binding:"omitempty,email"`
	PhoneNumber   string         `json:"phoneNumber" binding:"required"`
	BurritoOrders map[string]int `json:"burritoOrders" binding:"required,min=1"`
	Preferences   string         `json:"preferences" binding:"omitempty,max=500"`
}

// FieldError ties a validation message to the form field that caused it so
// the client can surface it next to the right input.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	phonePattern = regexp.MustCompile(`^\+1\d{10}$`)
	validate     = validator.New()
)

// Validate re-checks the full submission server-side, never trusting what
// the client form already validated. Returns the first failing field.
func (o *OrderSubmission) Validate() error {
	if strings.TrimSpace(o.Name) == "" {
		return &FieldError{Field: "name", Message: "name is required"}
	}
	if o.Email != "" {
		if err := validate.Var(o.Email, "email"); err != nil {
			return &FieldError{Field: "email", Message: "email must be a valid email address"}
		}
	}
	if !phonePattern.MatchString(o.PhoneNumber) {
		return &FieldError{Field: "phoneNumber", Message: "phone number must be +1 followed by 10 digits"}
	}
	if len(o.BurritoOrders) == 0 {
		return &FieldError{Field: "burritoOrders", Message: "at least one burrito must be selected"}
	}
	for item, qty := range o.BurritoOrders {
		if !InCatalog(item) {
			return &FieldError{Field: "burritoOrders", Message: fmt.Sprintf("%q is not on the menu", item)}
		}
		if qty < 1 {
			return &FieldError{Field: "burritoOrders", Message: fmt.Sprintf("quantity for %q must be at least 1", item)}
		}
	}
	return nil
}

// SheetHeader is the first row of the order worksheet.
var SheetHeader = []string{"Timestamp", "Name", "Email", "PhoneNumber", "BurritoOrders", "Preferences"}

// SheetRow is one persisted order record. All cells are strings; the
// burrito selection is stored as compact JSON object text.
type SheetRow struct {
	Timestamp     string
	Name          string
	Email         string
	PhoneNumber   string
	BurritoOrders string
	Preferences   string
}

func NewSheetRow(o *OrderSubmission, now time.Time) (SheetRow, error) {
	// json.Marshal would HTML-escape the & in item names; the sheet stores
	// the literal character.
	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(o.BurritoOrders); err != nil {
		return SheetRow{}, fmt.Errorf("failed to serialize burrito orders: %w", err)
	}
	orders := strings.TrimSuffix(buf.String(), "\n")
	return SheetRow{
		Timestamp:     now.UTC().Format(time.RFC3339),
		Name:          o.Name,
		Email:         o.Email,
		PhoneNumber:   o.PhoneNumber,
		BurritoOrders: orders,
		Preferences:   o.Preferences,
	}, nil
}

// Values returns the row cells in header order for the append call.
func (r SheetRow) Values() []interface{} {
	return []interface{}{r.Timestamp, r.Name, r.Email, r.PhoneNumber, r.BurritoOrders, r.Preferences}
}
