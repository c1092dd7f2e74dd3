package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"connectrpc.com/connect"

	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/editor"
	"github.com/mmynk/billsplit/internal/metrics"
	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/report"
	"github.com/mmynk/billsplit/internal/storage"
	"github.com/mmynk/billsplit/pkg/api"
)

// DefaultSessionKey is the store key of the session bill.
const DefaultSessionKey = "bill-splitter-storage"

var _ api.BillServiceHandler = (*BillService)(nil)

var errTotalsOverflow = errors.New("bill totals are not finite numbers")

// BillService implements the Connect BillService. It owns one session bill
// and serializes every call that touches it.
type BillService struct {
	mu         sync.Mutex
	store      storage.Store
	formatter  *calculator.CurrencyFormatter
	sessionKey string
	epsilon    float64
	metrics    *metrics.Metrics
	editorOpts []editor.Option
}

// Option configures a BillService.
type Option func(*BillService)

// WithSessionKey sets the store key of the session bill.
func WithSessionKey(key string) Option {
	return func(s *BillService) { s.sessionKey = key }
}

// WithEpsilon sets the tolerance of the consistency check.
func WithEpsilon(epsilon float64) Option {
	return func(s *BillService) { s.epsilon = epsilon }
}

// WithMetrics counts unbalanced summaries in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *BillService) { s.metrics = m }
}

// WithEditorOptions passes opts to every editor the service creates.
func WithEditorOptions(opts ...editor.Option) Option {
	return func(s *BillService) { s.editorOpts = append(s.editorOpts, opts...) }
}

// NewBillService creates a BillService backed by store. Amounts in reports
// are rendered with formatter.
func NewBillService(store storage.Store, formatter *calculator.CurrencyFormatter, opts ...Option) *BillService {
	s := &BillService{
		store:      store,
		formatter:  formatter,
		sessionKey: DefaultSessionKey,
		epsilon:    calculator.DefaultEpsilon,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetBill returns the session bill, creating and storing an empty one on
// first use.
func (s *BillService) GetBill(ctx context.Context, req *connect.Request[api.GetBillRequest]) (*connect.Response[api.BillResponse], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bill, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		bill = editor.New(nil, s.editorOpts...).Bill()
		if err := s.save(ctx, bill); err != nil {
			return nil, err
		}
		slog.Info("Created session bill", "bill_id", bill.ID)
	}
	return s.respond(bill)
}

func (s *BillService) RenameBill(ctx context.Context, req *connect.Request[api.RenameBillRequest]) (*connect.Response[api.BillResponse], error) {
	return s.mutate(ctx, func(e *editor.Editor) error {
		return e.Rename(req.Msg.Name)
	})
}

// ResetBill replaces the session bill with a new, empty one.
func (s *BillService) ResetBill(ctx context.Context, req *connect.Request[api.ResetBillRequest]) (*connect.Response[api.BillResponse], error) {
	return s.mutate(ctx, func(e *editor.Editor) error {
		e.Reset()
		return nil
	})
}

func (s *BillService) AddLineItem(ctx context.Context, req *connect.Request[api.AddLineItemRequest]) (*connect.Response[api.BillResponse], error) {
	return s.mutate(ctx, func(e *editor.Editor) error {
		_, err := e.AddLineItem(req.Msg.Name, req.Msg.Price, req.Msg.Quantity)
		return err
	})
}

func (s *BillService) UpdateLineItem(ctx context.Context, req *connect.Request[api.UpdateLineItemRequest]) (*connect.Response[api.BillResponse], error) {
	return s.mutate(ctx, func(e *editor.Editor) error {
		_, err := e.UpdateLineItem(req.Msg.ID, req.Msg.Update)
		return err
	})
}

// DeleteLineItem removes the item and its assignment.
func (s *BillService) DeleteLineItem(ctx context.Context, req *connect.Request[api.DeleteLineItemRequest]) (*connect.Response[api.BillResponse], error) {
	return s.mutate(ctx, func(e *editor.Editor) error {
		return e.DeleteLineItem(req.Msg.ID)
	})
}

func (s *BillService) AddPerson(ctx context.Context, req *connect.Request[api.AddPersonRequest]) (*connect.Response[api.BillResponse], error) {
	return s.mutate(ctx, func(e *editor.Editor) error {
		_, err := e.AddPerson(req.Msg.Name)
		return err
	})
}

func (s *BillService) UpdatePerson(ctx context.Context, req *connect.Request[api.UpdatePersonRequest]) (*connect.Response[api.BillResponse], error) {
	return s.mutate(ctx, func(e *editor.Editor) error {
		_, err := e.UpdatePerson(req.Msg.ID, req.Msg.Update)
		return err
	})
}

// DeletePerson removes the person from the bill and from every assignment.
func (s *BillService) DeletePerson(ctx context.Context, req *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.BillResponse], error) {
	return s.mutate(ctx, func(e *editor.Editor) error {
		return e.DeletePerson(req.Msg.ID)
	})
}

func (s *BillService) AddAdjustment(ctx context.Context, req *connect.Request[api.AddAdjustmentRequest]) (*connect.Response[api.BillResponse], error) {
	return s.mutate(ctx, func(e *editor.Editor) error {
		_, err := e.AddAdjustment(req.Msg.Type, req.Msg.Description, req.Msg.Value, req.Msg.IsPercentage)
		return err
	})
}

func (s *BillService) UpdateAdjustment(ctx context.Context, req *connect.Request[api.UpdateAdjustmentRequest]) (*connect.Response[api.BillResponse], error) {
	return s.mutate(ctx, func(e *editor.Editor) error {
		_, err := e.UpdateAdjustment(req.Msg.ID, req.Msg.Update)
		return err
	})
}

func (s *BillService) DeleteAdjustment(ctx context.Context, req *connect.Request[api.DeleteAdjustmentRequest]) (*connect.Response[api.BillResponse], error) {
	return s.mutate(ctx, func(e *editor.Editor) error {
		return e.DeleteAdjustment(req.Msg.ID)
	})
}

func (s *BillService) TogglePersonAssignment(ctx context.Context, req *connect.Request[api.TogglePersonAssignmentRequest]) (*connect.Response[api.BillResponse], error) {
	return s.mutate(ctx, func(e *editor.Editor) error {
		return e.TogglePersonAssignment(req.Msg.ItemID, req.Msg.PersonID)
	})
}

func (s *BillService) AssignAllPeople(ctx context.Context, req *connect.Request[api.AssignAllPeopleRequest]) (*connect.Response[api.BillResponse], error) {
	return s.mutate(ctx, func(e *editor.Editor) error {
		return e.AssignAllPeople(req.Msg.ItemID)
	})
}

func (s *BillService) ClearItemAssignments(ctx context.Context, req *connect.Request[api.ClearItemAssignmentsRequest]) (*connect.Response[api.BillResponse], error) {
	return s.mutate(ctx, func(e *editor.Editor) error {
		return e.ClearItemAssignments(req.Msg.ItemID)
	})
}

// ComputeSummary computes the summary of the bill in the request. The store
// is not touched.
func (s *BillService) ComputeSummary(ctx context.Context, req *connect.Request[api.ComputeSummaryRequest]) (*connect.Response[api.SummaryResponse], error) {
	bill := req.Msg.Bill
	slog.Debug("Computing summary",
		"items", len(bill.Items),
		"people", len(bill.People),
		"adjustments", len(bill.Adjustments),
	)
	summary, rec := s.summarize(bill)
	if !calculator.IsFinite(summary) {
		return nil, connect.NewError(connect.CodeInvalidArgument, errTotalsOverflow)
	}
	return connect.NewResponse(&api.SummaryResponse{
		Summary:        summary,
		Reconciliation: rec,
		Report:         report.Build(bill, summary, rec, s.formatter),
	}), nil
}

// mutate runs one editor operation against the session bill and stores the
// result. Nothing is stored when fn fails.
func (s *BillService) mutate(ctx context.Context, fn func(*editor.Editor) error) (*connect.Response[api.BillResponse], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bill, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	ed := editor.New(bill, s.editorOpts...)
	if err := fn(ed); err != nil {
		return nil, toConnectError(err)
	}

	next := ed.Bill()
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}
	return s.respond(next)
}

// load returns the session bill, or nil when none is stored yet.
func (s *BillService) load(ctx context.Context) (*models.Bill, error) {
	bill, err := s.store.LoadBill(ctx, s.sessionKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		slog.Error("Failed to load session bill", "session_key", s.sessionKey, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return bill, nil
}

func (s *BillService) save(ctx context.Context, bill *models.Bill) error {
	if err := s.store.SaveBill(ctx, s.sessionKey, bill); err != nil {
		slog.Error("Failed to save session bill", "bill_id", bill.ID, "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}
	return nil
}

// respond fails when the stored bill's totals overflow; ResetBill or
// deleting the offending entry recovers the session.
func (s *BillService) respond(bill *models.Bill) (*connect.Response[api.BillResponse], error) {
	summary, rec := s.summarize(*bill)
	if !calculator.IsFinite(summary) {
		slog.Warn("Session bill totals overflow", "bill_id", bill.ID)
		return nil, connect.NewError(connect.CodeFailedPrecondition, errTotalsOverflow)
	}
	return connect.NewResponse(&api.BillResponse{
		Bill:           bill,
		Summary:        summary,
		Reconciliation: rec,
		Report:         report.Build(*bill, summary, rec, s.formatter),
	}), nil
}

func (s *BillService) summarize(bill models.Bill) (models.BillSummary, models.Reconciliation) {
	summary := calculator.ComputeSummary(bill)
	rec := calculator.Reconcile(bill, summary, s.epsilon)
	s.metrics.ObserveSummary(rec.Balanced)
	if !rec.Balanced {
		slog.Debug("Summary not balanced",
			"bill_id", bill.ID,
			"difference", rec.Difference,
			"unassigned_items", len(rec.UnassignedItemIDs),
		)
	}
	return summary, rec
}

func toConnectError(err error) error {
	switch {
	case errors.Is(err, editor.ErrItemNotFound),
		errors.Is(err, editor.ErrPersonNotFound),
		errors.Is(err, editor.ErrAdjustmentNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, editor.ErrInvalidInput):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		slog.Error("Bill edit failed", "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}
}
