package form

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"burrito_orders/internal/models"
	"burrito_orders/pkg/intake"
)

// Phase is the submission lifecycle of the form.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseSubmitting
)

// ErrSubmissionInFlight rejects a second Submit while one is running; the
// submit control stays disabled for the duration.
var ErrSubmissionInFlight = errors.New("a submission is already in flight")

// Sender posts a finished submission to the intake endpoint.
type Sender interface {
	SubmitOrder(ctx context.Context, order intake.OrderRequest) (*intake.OrderResponse, error)
}

// State holds the order form's fields and the per-item quantity sub-state
// derived from the selection set. Quantities of deselected items are
// retained, so re-selecting an item restores the quantity the user last set.
type State struct {
	Name        string
	Email       string
	PhoneNumber string
	Preferences string

	selection  []string
	quantities map[string]int // current, selection-aligned
	remembered map[string]int // retained across deselection

	phase  Phase
	sender Sender
}

func NewState(sender Sender) *State {
	return &State{
		quantities: make(map[string]int),
		remembered: make(map[string]int),
		sender:     sender,
	}
}

// DeriveQuantities recomputes the quantity map for a new selection set.
// Newly selected items default to 1; items still selected keep a previous
// positive quantity and are reset to 1 otherwise. Pure function.
func DeriveQuantities(selection []string, previous map[string]int) map[string]int {
	next := make(map[string]int, len(selection))
	for _, item := range selection {
		if q, ok := previous[item]; ok && q >= 1 {
			next[item] = q
		} else {
			next[item] = 1
		}
	}
	return next
}

// ToggleItem adds the item to the selection, or removes it if already
// selected, and recomputes the quantity sub-state.
func (s *State) ToggleItem(item string) error {
	if !models.InCatalog(item) {
		return fmt.Errorf("unknown item %q", item)
	}

	idx := -1
	for i, sel := range s.selection {
		if sel == item {
			idx = i
			break
		}
	}
	if idx >= 0 {
		s.selection = append(s.selection[:idx], s.selection[idx+1:]...)
	} else {
		s.selection = append(s.selection, item)
	}

	for name, q := range s.quantities {
		s.remembered[name] = q
	}
	s.quantities = DeriveQuantities(s.selection, s.remembered)
	return nil
}

// SetQuantity sets a selected item's quantity, clamped to a minimum of 1.
func (s *State) SetQuantity(item string, qty int) {
	if _, ok := s.quantities[item]; !ok {
		return
	}
	if qty < 1 {
		qty = 1
	}
	s.quantities[item] = qty
}

// CommitQuantity resolves a raw quantity input on blur. Non-numeric, empty
// or sub-1 input becomes 1.
func (s *State) CommitQuantity(item, raw string) {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || qty < 1 {
		qty = 1
	}
	s.SetQuantity(item, qty)
}

// SetPhone runs the progressive phone formatter over the typed value.
func (s *State) SetPhone(input string) {
	s.PhoneNumber = NormalizePhone(input)
}

func (s *State) Selection() []string {
	out := make([]string, len(s.selection))
	copy(out, s.selection)
	return out
}

func (s *State) Quantity(item string) int {
	return s.quantities[item]
}

func (s *State) Phase() Phase {
	return s.phase
}

func (s *State) submission() *models.OrderSubmission {
	orders := make(map[string]int, len(s.selection))
	for _, item := range s.selection {
		orders[item] = s.quantities[item]
	}
	return &models.OrderSubmission{
		Name:          s.Name,
		Email:         s.Email,
		PhoneNumber:   s.PhoneNumber,
		BurritoOrders: orders,
		Preferences:   s.Preferences,
	}
}

// Validate runs the full local schema check and returns the first failing
// field, without touching the network.
func (s *State) Validate() error {
	return s.submission().Validate()
}

// Submit validates and posts the order. On validation failure no network
// call is made. On success all fields and quantity state are cleared and
// the server's confirmation message is returned.
func (s *State) Submit(ctx context.Context) (string, error) {
	if s.phase != PhaseIdle {
		return "", ErrSubmissionInFlight
	}

	s.phase = PhaseValidating
	sub := s.submission()
	if err := sub.Validate(); err != nil {
		s.phase = PhaseIdle
		return "", err
	}

	s.phase = PhaseSubmitting
	resp, err := s.sender.SubmitOrder(ctx, intake.OrderRequest{
		Name:          sub.Name,
		Email:         sub.Email,
		PhoneNumber:   sub.PhoneNumber,
		BurritoOrders: sub.BurritoOrders,
		Preferences:   sub.Preferences,
	})
	s.phase = PhaseIdle
	if err != nil {
		return "", fieldErrorFromAPI(err)
	}

	s.Reset()
	return resp.Message, nil
}

// fieldErrorFromAPI maps a server-side validation rejection back onto the
// offending form field. The intake endpoint reports these as a 400 with
// "field: message" details; anything else passes through unchanged.
func fieldErrorFromAPI(err error) error {
	var apiErr *intake.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusBadRequest || apiErr.Details == "" {
		return err
	}
	field, message, ok := strings.Cut(apiErr.Details, ": ")
	if !ok || field == "" {
		return err
	}
	return &models.FieldError{Field: field, Message: message}
}

// Reset clears every field and all quantity state.
func (s *State) Reset() {
	s.Name = ""
	s.Email = ""
	s.PhoneNumber = ""
	s.Preferences = ""
	s.selection = nil
	s.quantities = make(map[string]int)
	s.remembered = make(map[string]int)
}
