// Package invoices holds the invoice mutation orchestrators: validate the
// submitted form, transform, persist, audit, invalidate the cached listing,
// and hand back a tagged result.
package invoices

import (
	"math"
	"net/url"
	"time"

	"business-dashboard-backend/internal/action"
	"business-dashboard-backend/internal/cache"
	"business-dashboard-backend/internal/forms"
	"business-dashboard-backend/internal/logging"
	"business-dashboard-backend/internal/models"

	"github.com/google/uuid"
)

// ListingPath is the cached route every invoice mutation invalidates.
const ListingPath = "/dashboard/invoices"

type Store interface {
	Insert(inv *models.Invoice) error
	Update(id, customerID uuid.UUID, amountCents int64, status string) error
	Delete(id uuid.UUID) error
}

type AuditStore interface {
	Record(entity, entityID, act string, details map[string]interface{}) error
}

type Service struct {
	store    Store
	audit    AuditStore
	cache    cache.Invalidator
	reporter logging.Reporter
	now      func() time.Time
}

func NewService(store Store, audit AuditStore, inv cache.Invalidator, reporter logging.Reporter) *Service {
	return &Service{
		store:    store,
		audit:    audit,
		cache:    inv,
		reporter: reporter,
		now:      time.Now,
	}
}

// Create validates and persists a new invoice. The stored amount is in
// minor units and the issue date defaults to today's calendar date.
func (s *Service) Create(values url.Values) action.Result {
	// 1. Parse & validate
	in, errs := forms.ParseInvoice(values)
	if len(errs) > 0 {
		return action.FormError(errs, "Missing Fields. Failed to Create Invoice.")
	}

	customerID, err := uuid.Parse(in.CustomerID)
	if err != nil {
		errs.Add("customerId", forms.MsgCustomerRequired)
		return action.FormError(errs, "Missing Fields. Failed to Create Invoice.")
	}

	// 2. Transform
	inv := &models.Invoice{
		CustomerID: customerID,
		Amount:     toCents(in.Amount),
		Status:     in.Status,
		Date:       s.now().Format("2006-01-02"),
	}

	// 3. Persist
	if err := s.store.Insert(inv); err != nil {
		s.reporter.Report("invoices.create", err)
		return action.Failure("Database Error: Failed to Create Invoice.")
	}

	s.recordAudit(inv.ID, "create", in)

	// 4. Invalidate cached listing, then hand control to it
	s.cache.Invalidate(ListingPath)
	return action.Redirect(ListingPath)
}

// Update changes every invoice field but the issue date. Updating an id
// with no row behind it is a silent success, per relational semantics.
func (s *Service) Update(id uuid.UUID, values url.Values) action.Result {
	in, errs := forms.ParseInvoice(values)
	if len(errs) > 0 {
		return action.FormError(errs, "Missing Fields. Failed to Update Invoice.")
	}

	customerID, err := uuid.Parse(in.CustomerID)
	if err != nil {
		errs.Add("customerId", forms.MsgCustomerRequired)
		return action.FormError(errs, "Missing Fields. Failed to Update Invoice.")
	}

	if err := s.store.Update(id, customerID, toCents(in.Amount), in.Status); err != nil {
		s.reporter.Report("invoices.update", err)
		return action.Failure("Database Error: Failed to Update Invoice.")
	}

	s.recordAudit(id, "update", in)

	s.cache.Invalidate(ListingPath)
	return action.Redirect(ListingPath)
}

// Delete removes an invoice by id. No validation, no redirect — the
// current page re-renders after the cached listing is dropped.
func (s *Service) Delete(id uuid.UUID) action.Result {
	if err := s.store.Delete(id); err != nil {
		s.reporter.Report("invoices.delete", err)
		return action.Failure("Database Error: Failed to Delete Invoice.")
	}

	s.recordAudit(id, "delete", forms.InvoiceInput{})

	s.cache.Invalidate(ListingPath)
	return action.Done()
}

func (s *Service) recordAudit(id uuid.UUID, act string, in forms.InvoiceInput) {
	err := s.audit.Record("invoice", id.String(), act, map[string]interface{}{
		"customer_id": in.CustomerID,
		"amount":      in.Amount,
		"status":      in.Status,
	})
	if err != nil {
		// The mutation already committed; an audit miss is reported, not fatal.
		s.reporter.Report("invoices.audit", err)
	}
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
