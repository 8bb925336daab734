// Package card holds the per-outlet inline editor used by the board views.
//
// A Presenter owns one outlet's display/edit state. Text fields are edited
// as drafts and committed on blur (or confirm, for single-line fields) only
// when the value changed. Dates and cities commit immediately. A card that
// is being edited cannot be dragged.
package card

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/domain"
)

// DateLayout is the display and input format for the assigned date.
const DateLayout = "2006-01-02"

// DescriptionPlaceholder is shown in place of an empty description.
const DescriptionPlaceholder = "Click to add description..."

var (
	// ErrEditing is returned by StartDrag while a field is being edited.
	ErrEditing = errors.New("card is being edited")
	// ErrInvalidDate is returned when a date input cannot be parsed. The
	// outlet keeps its previous date.
	ErrInvalidDate = errors.New("invalid date")
)

// Field identifies an editable text field on the card.
type Field int

// Editable fields. FieldNone means the card is in display mode.
const (
	FieldNone Field = iota
	FieldName
	FieldDescription
	FieldDate
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldDescription:
		return "description"
	case FieldDate:
		return "date"
	}
	return "none"
}

// multiline reports whether confirm keystrokes insert text rather than commit.
func (f Field) multiline() bool { return f == FieldDescription }

// Updater applies a patch to an outlet and returns the stored result.
// *service.BoardService satisfies it.
type Updater interface {
	Update(ctx context.Context, id string, patch domain.OutletPatch) (domain.Outlet, error)
}

// DragPayload is the data carried from a card to the column it is dropped on.
type DragPayload struct {
	OutletID string `json:"outletId"`
}

// Presenter is the edit state of one card. It is not safe for concurrent use;
// a view drives it from a single event loop.
type Presenter struct {
	outlet  domain.Outlet
	updater Updater
	editing Field
	draft   string
}

// New returns a Presenter in display mode for o.
func New(o domain.Outlet, u Updater) *Presenter {
	return &Presenter{outlet: o, updater: u}
}

// Outlet returns the outlet as last seen by the card.
func (p *Presenter) Outlet() domain.Outlet { return p.outlet }

// Editing returns the field in edit mode, or FieldNone.
func (p *Presenter) Editing() Field { return p.editing }

// Draft returns the in-progress value of the field being edited.
func (p *Presenter) Draft() string { return p.draft }

// Sync replaces the card's outlet with a fresher copy from the store.
// An edit in progress keeps its draft.
func (p *Presenter) Sync(o domain.Outlet) { p.outlet = o }

// BeginEdit enters edit mode for f with the draft set to the current value.
// Any other field being edited is committed first.
func (p *Presenter) BeginEdit(ctx context.Context, f Field) error {
	if f == p.editing {
		return nil
	}
	if p.editing != FieldNone {
		if err := p.Blur(ctx); err != nil {
			return err
		}
	}
	p.editing = f
	switch f {
	case FieldName:
		p.draft = p.outlet.Name
	case FieldDescription:
		p.draft = p.outlet.Description
	case FieldDate:
		p.draft = p.DateValue()
	default:
		p.editing = FieldNone
		p.draft = ""
	}
	return nil
}

// SetDraft replaces the draft of the field being edited.
func (p *Presenter) SetDraft(v string) {
	if p.editing != FieldNone {
		p.draft = v
	}
}

// Blur leaves edit mode and commits the draft if it differs from the outlet.
func (p *Presenter) Blur(ctx context.Context) error {
	f, draft := p.editing, p.draft
	p.editing, p.draft = FieldNone, ""

	switch f {
	case FieldName:
		// A blank name is discarded rather than saved.
		if strings.TrimSpace(draft) == "" || draft == p.outlet.Name {
			return nil
		}
		return p.commit(ctx, domain.OutletPatch{Name: &draft})
	case FieldDescription:
		if draft == p.outlet.Description {
			return nil
		}
		return p.commit(ctx, domain.OutletPatch{Description: &draft})
	case FieldDate:
		return p.ChangeDate(ctx, draft)
	}
	return nil
}

// Confirm is the explicit commit keystroke. It commits single-line fields and
// is ignored while editing the description.
func (p *Presenter) Confirm(ctx context.Context) error {
	if p.editing == FieldNone || p.editing.multiline() {
		return nil
	}
	return p.Blur(ctx)
}

// Cancel leaves edit mode without committing.
func (p *Presenter) Cancel() {
	p.editing, p.draft = FieldNone, ""
}

// Draggable reports whether the card may be picked up.
func (p *Presenter) Draggable() bool { return p.editing == FieldNone }

// StartDrag returns the payload for a drag of this card, or ErrEditing.
func (p *Presenter) StartDrag() (DragPayload, error) {
	if !p.Draggable() {
		return DragPayload{}, fmt.Errorf("card %s: %w", p.outlet.ID, ErrEditing)
	}
	return DragPayload{OutletID: p.outlet.ID}, nil
}

// DateValue is the assigned date formatted for display and input.
func (p *Presenter) DateValue() string {
	return p.outlet.AssignedAt().Format(DateLayout)
}

// DescriptionText is the description, or the placeholder when it is empty.
func (p *Presenter) DescriptionText() string {
	if p.outlet.Description == "" {
		return DescriptionPlaceholder
	}
	return p.outlet.Description
}

// ChangeDate parses value as a UTC calendar date and commits it as the
// outlet's timestamp. An unparsable value returns ErrInvalidDate and leaves
// the outlet untouched. The same date does not write.
func (p *Presenter) ChangeDate(ctx context.Context, value string) error {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return fmt.Errorf("card %s: %q: %w", p.outlet.ID, value, ErrInvalidDate)
	}
	if t.Format(DateLayout) == p.DateValue() {
		return nil
	}
	ts := t.UnixMilli()
	return p.commit(ctx, domain.OutletPatch{Timestamp: &ts})
}

// SelectCity commits a city choice immediately. Selecting the current city
// does not write.
func (p *Presenter) SelectCity(ctx context.Context, city domain.City) error {
	if city == p.outlet.City {
		return nil
	}
	return p.commit(ctx, domain.OutletPatch{City: &city})
}

func (p *Presenter) commit(ctx context.Context, patch domain.OutletPatch) error {
	o, err := p.updater.Update(ctx, p.outlet.ID, patch)
	if err != nil {
		return fmt.Errorf("card.Presenter: %w", err)
	}
	p.outlet = o
	return nil
}
