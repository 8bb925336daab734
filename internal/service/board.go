// Package service contains the business logic for the outlet onboarding board.
// Services validate inputs against the catalogs, apply changes through the
// record store and expose derived views (analytics, export, save status).
// No persistence code lives here; services depend on the RecordStore interface.
package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/analytics"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/domain"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/export"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/store"
)

// Defaults for newly created outlets.
const (
	DefaultDescription = "Enter specific details about this onboarding request."
	DefaultBrand       = "General"
	DefaultRequestedBy = "Admin"
	DefaultPriority    = domain.PriorityMedium
)

// maxQueryDistance is the largest edit distance at which a query word still
// matches a word of an outlet name.
const maxQueryDistance = 2

// RecordStore is the subset of *store.Store the board depends on.
type RecordStore interface {
	Records() ([]domain.Outlet, uint64)
	Mutate(ctx context.Context, fn store.MutateFunc) error
	Stages() domain.StageCatalog
	Cities() domain.CityCatalog
}

// OpRecorder receives the outcome of every board operation.
type OpRecorder interface {
	BoardOp(op string, err error)
}

// BoardService implements the board operations: create, move, update,
// delete, export and analytics.
type BoardService struct {
	store     RecordStore
	indicator *SaveIndicator
	ops       OpRecorder
	memo      analytics.Memo
	now       func() time.Time
	newID     func() string
}

// Option configures a BoardService.
type Option func(*BoardService)

// WithClock overrides time.Now for new outlet timestamps and export filenames.
func WithClock(now func() time.Time) Option {
	return func(s *BoardService) { s.now = now }
}

// WithIDGenerator overrides the outlet id generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *BoardService) { s.newID = fn }
}

// WithOpRecorder reports every operation outcome to r.
func WithOpRecorder(r OpRecorder) Option {
	return func(s *BoardService) { s.ops = r }
}

// NewBoardService constructs a BoardService. indicator may be nil, in which
// case SaveStatus always reports idle.
func NewBoardService(st RecordStore, indicator *SaveIndicator, opts ...Option) *BoardService {
	s := &BoardService{
		store:     st,
		indicator: indicator,
		now:       time.Now,
		newID:     newOutletID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newOutletID returns an upper-case random UUID.
func newOutletID() string {
	return strings.ToUpper(uuid.NewString())
}

func (s *BoardService) record(op string, err error) {
	if s.ops != nil {
		s.ops.BoardOp(op, err)
	}
}

// Stages returns the stage catalog.
func (s *BoardService) Stages() domain.StageCatalog {
	return s.store.Stages()
}

// Cities returns the city catalog.
func (s *BoardService) Cities() domain.CityCatalog {
	return s.store.Cities()
}

// Create adds a new outlet with default values at the front of the board, in
// the first stage and first city.
func (s *BoardService) Create(ctx context.Context) (domain.Outlet, error) {
	id := s.newID()
	short := id
	if len(short) > 5 {
		short = short[:5]
	}
	o := domain.Outlet{
		ID:          id,
		Name:        "New Outlet " + short,
		Description: DefaultDescription,
		Brand:       DefaultBrand,
		RequestedBy: DefaultRequestedBy,
		Priority:    DefaultPriority,
		City:        s.store.Cities().First(),
		Stage:       s.store.Stages().First(),
		Timestamp:   s.now().UnixMilli(),
	}

	err := s.store.Mutate(ctx, func(records []domain.Outlet) ([]domain.Outlet, bool, error) {
		if indexOf(records, id) >= 0 {
			return nil, false, fmt.Errorf("%w: duplicate outlet id %s", domain.ErrValidation, id)
		}
		return append([]domain.Outlet{o}, records...), true, nil
	})
	s.record("create", err)
	if err != nil {
		return domain.Outlet{}, fmt.Errorf("service.BoardService.Create: %w", err)
	}
	return o, nil
}

// Get returns a single outlet by id.
func (s *BoardService) Get(_ context.Context, id string) (domain.Outlet, error) {
	records, _ := s.store.Records()
	i := indexOf(records, id)
	if i < 0 {
		return domain.Outlet{}, fmt.Errorf("service.BoardService.Get: outlet %s: %w", id, domain.ErrNotFound)
	}
	return records[i], nil
}

// List returns the outlets matching f in board order.
func (s *BoardService) List(_ context.Context, f domain.ListFilter) ([]domain.Outlet, error) {
	if f.Stage != "" && !s.store.Stages().Contains(f.Stage) {
		return nil, fmt.Errorf("service.BoardService.List: %w: unknown stage %q", domain.ErrValidation, f.Stage)
	}
	if f.City != "" && !s.store.Cities().Contains(f.City) {
		return nil, fmt.Errorf("service.BoardService.List: %w: unknown city %q", domain.ErrValidation, f.City)
	}

	records, _ := s.store.Records()
	query := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]domain.Outlet, 0, len(records))
	for _, o := range records {
		if f.Stage != "" && o.Stage != f.Stage {
			continue
		}
		if f.City != "" && o.City != f.City {
			continue
		}
		if query != "" && !nameMatches(o.Name, query) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

// nameMatches reports whether every word of query is a substring of name or
// within maxQueryDistance edits of one of its words. query is lower-case.
func nameMatches(name, query string) bool {
	name = strings.ToLower(name)
	if strings.Contains(name, query) {
		return true
	}
	words := strings.Fields(name)
	for _, q := range strings.Fields(query) {
		if !slices.ContainsFunc(words, func(w string) bool {
			return strings.Contains(w, q) || levenshtein.ComputeDistance(w, q) <= maxQueryDistance
		}) {
			return false
		}
	}
	return true
}

// Move reassigns an outlet to stage. Any stage may move to any other stage.
// Moving an outlet to the stage it is already in does not write.
func (s *BoardService) Move(ctx context.Context, id string, stage domain.Stage) (domain.Outlet, error) {
	if !s.store.Stages().Contains(stage) {
		err := fmt.Errorf("service.BoardService.Move: %w: unknown stage %q", domain.ErrValidation, stage)
		s.record("move", err)
		return domain.Outlet{}, err
	}

	var moved domain.Outlet
	err := s.store.Mutate(ctx, func(records []domain.Outlet) ([]domain.Outlet, bool, error) {
		i := indexOf(records, id)
		if i < 0 {
			return nil, false, fmt.Errorf("outlet %s: %w", id, domain.ErrNotFound)
		}
		moved = records[i]
		if records[i].Stage == stage {
			return records, false, nil
		}
		records[i].Stage = stage
		moved = records[i]
		return records, true, nil
	})
	s.record("move", err)
	if err != nil {
		return domain.Outlet{}, fmt.Errorf("service.BoardService.Move: %w", err)
	}
	return moved, nil
}

// Update applies a partial patch to an outlet. City and priority must belong
// to their catalogs; an empty city unassigns the outlet. A patch that
// changes nothing does not write.
func (s *BoardService) Update(ctx context.Context, id string, patch domain.OutletPatch) (domain.Outlet, error) {
	if err := s.validatePatch(patch); err != nil {
		err = fmt.Errorf("service.BoardService.Update: %w", err)
		s.record("update", err)
		return domain.Outlet{}, err
	}

	var updated domain.Outlet
	err := s.store.Mutate(ctx, func(records []domain.Outlet) ([]domain.Outlet, bool, error) {
		i := indexOf(records, id)
		if i < 0 {
			return nil, false, fmt.Errorf("outlet %s: %w", id, domain.ErrNotFound)
		}
		next, changed := patch.Apply(records[i])
		updated = next
		records[i] = next
		return records, changed, nil
	})
	s.record("update", err)
	if err != nil {
		return domain.Outlet{}, fmt.Errorf("service.BoardService.Update: %w", err)
	}
	return updated, nil
}

func (s *BoardService) validatePatch(p domain.OutletPatch) error {
	if p.City != nil && *p.City != "" && !s.store.Cities().Contains(*p.City) {
		return fmt.Errorf("%w: unknown city %q", domain.ErrValidation, *p.City)
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", domain.ErrValidation, *p.Priority)
	}
	if p.Timestamp != nil && *p.Timestamp < 0 {
		return fmt.Errorf("%w: timestamp must not be negative", domain.ErrValidation)
	}
	return nil
}

// Delete removes an outlet. confirmed must be true; without it nothing is
// removed and domain.ErrConfirmationRequired is returned.
func (s *BoardService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		err := fmt.Errorf("service.BoardService.Delete: outlet %s: %w", id, domain.ErrConfirmationRequired)
		s.record("delete", err)
		return err
	}
	err := s.store.Mutate(ctx, func(records []domain.Outlet) ([]domain.Outlet, bool, error) {
		i := indexOf(records, id)
		if i < 0 {
			return nil, false, fmt.Errorf("outlet %s: %w", id, domain.ErrNotFound)
		}
		return slices.Delete(records, i, i+1), true, nil
	})
	s.record("delete", err)
	if err != nil {
		return fmt.Errorf("service.BoardService.Delete: %w", err)
	}
	return nil
}

// Export returns one row per outlet in board order.
func (s *BoardService) Export(_ context.Context) ([]domain.ExportRow, error) {
	records, _ := s.store.Records()
	s.record("export", nil)
	return export.Rows(records), nil
}

// ExportFilename is the download name for an export taken now.
func (s *BoardService) ExportFilename() string {
	return export.Filename(s.now())
}

// Analytics returns the report for the current board, recomputing only
// when the store has changed since the last call.
func (s *BoardService) Analytics(_ context.Context) (analytics.Report, error) {
	records, rev := s.store.Records()
	return s.memo.Get(rev, func() analytics.Report {
		return analytics.Compute(records, s.store.Stages(), s.store.Cities())
	}), nil
}

// SaveStatus reports the saving indicator.
func (s *BoardService) SaveStatus() domain.SaveStatus {
	if s.indicator == nil {
		return domain.SaveStatus{}
	}
	return s.indicator.Status()
}

// DropTargets returns the stages that accept a drop. Every stage is a valid
// target while a drag is in progress; none otherwise.
func (s *BoardService) DropTargets(dragging bool) []domain.Stage {
	if !dragging {
		return nil
	}
	return s.store.Stages().IDs()
}

func indexOf(records []domain.Outlet, id string) int {
	return slices.IndexFunc(records, func(o domain.Outlet) bool { return o.ID == id })
}
