// Package customers holds the customer mutation orchestrators.
package customers

import (
	"errors"
	"net/url"
	"time"

	"business-dashboard-backend/internal/action"
	"business-dashboard-backend/internal/cache"
	"business-dashboard-backend/internal/forms"
	"business-dashboard-backend/internal/logging"
	"business-dashboard-backend/internal/models"
	"business-dashboard-backend/internal/repository"
	"business-dashboard-backend/internal/storage"

	"github.com/google/uuid"
)

// ListingPath is the cached route every customer mutation invalidates.
const ListingPath = "/dashboard/customers"

// PublicPrefix is the URL prefix stored in customers.image_url.
const PublicPrefix = "/customers/"

type Store interface {
	Insert(c *models.Customer) error
	CountByEmail(email string) (int64, error)
	GetImagePath(id uuid.UUID) (string, error)
	Delete(id uuid.UUID) error
}

type FileStore interface {
	Store(name string, content []byte) error
	Remove(path string) error
}

type InvoiceCounter interface {
	CountByCustomer(customerID uuid.UUID) (int64, error)
}

type AuditStore interface {
	Record(entity, entityID, act string, details map[string]interface{}) error
}

type Service struct {
	store    Store
	files    FileStore
	invoices InvoiceCounter
	audit    AuditStore
	cache    cache.Invalidator
	reporter logging.Reporter
	now      func() time.Time
}

func NewService(store Store, files FileStore, invoices InvoiceCounter, audit AuditStore, inv cache.Invalidator, reporter logging.Reporter) *Service {
	return &Service{
		store:    store,
		files:    files,
		invoices: invoices,
		audit:    audit,
		cache:    inv,
		reporter: reporter,
		now:      time.Now,
	}
}

// Create validates the form, gates on email uniqueness, inserts the row and
// then writes the image file. The unique index on email backs the
// CountByEmail pre-check, so a create that races past the check still comes
// back as the same email field error.
func (s *Service) Create(values url.Values, upload *forms.Upload) action.Result {
	// 1. Parse & validate
	in, errs := forms.ParseCustomer(values, upload)
	if len(errs) > 0 {
		return action.FormError(errs, "Missing Fields. Failed to Create Customer.")
	}

	// 2. Uniqueness gate
	count, err := s.store.CountByEmail(in.Email)
	if err != nil {
		s.reporter.Report("customers.create", err)
		return action.Failure("Database Error: Failed to Create Customer.")
	}
	if count > 0 {
		errs.Add("email", forms.MsgEmailTaken)
		return action.FormError(errs, "Failed to Create Customer.")
	}

	// 3. Persist the row first, then the file
	imageName := storage.BuildName(in.ImageName, s.now())
	customer := &models.Customer{
		Name:     in.Name,
		Email:    in.Email,
		ImageURL: PublicPrefix + imageName,
	}
	if err := s.store.Insert(customer); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			errs.Add("email", forms.MsgEmailTaken)
			return action.FormError(errs, "Failed to Create Customer.")
		}
		s.reporter.Report("customers.create", err)
		return action.Failure("Database Error: Failed to Create Customer.")
	}

	if err := s.files.Store(imageName, upload.Content); err != nil {
		// The row is already committed; there is no compensating delete.
		s.reporter.Report("customers.create", err)
		return action.Failure("Failed to store customer image.")
	}

	s.recordAudit(customer.ID, "create", map[string]interface{}{
		"name":      in.Name,
		"email":     in.Email,
		"image_url": customer.ImageURL,
	})

	// 4. Invalidate cached listing, then hand control to it
	s.cache.Invalidate(ListingPath)
	return action.Redirect(ListingPath)
}

// Delete removes a customer row and its backing image. The row lookup must
// succeed before anything is touched, and deletion is refused while
// invoices still reference the customer.
func (s *Service) Delete(id uuid.UUID) action.Result {
	imagePath, err := s.store.GetImagePath(id)
	if errors.Is(err, repository.ErrNotFound) {
		return action.Failure("Customer not found!")
	}
	if err != nil {
		s.reporter.Report("customers.delete", err)
		return action.Failure("Database Error: Failed to Delete Customer.")
	}

	referenced, err := s.invoices.CountByCustomer(id)
	if err != nil {
		s.reporter.Report("customers.delete", err)
		return action.Failure("Database Error: Failed to Delete Customer.")
	}
	if referenced > 0 {
		return action.Failure("Cannot delete a customer with existing invoices!")
	}

	if err := s.store.Delete(id); err != nil {
		s.reporter.Report("customers.delete", err)
		return action.Failure("Database Error: Failed to Delete Customer.")
	}

	// File removal happens only after the row is gone; a miss here is
	// reported but the delete already succeeded.
	if err := s.files.Remove(imagePath); err != nil {
		s.reporter.Report("customers.delete", err)
	}

	s.recordAudit(id, "delete", map[string]interface{}{"image_url": imagePath})

	s.cache.Invalidate(ListingPath)
	return action.Done()
}

func (s *Service) recordAudit(id uuid.UUID, act string, details map[string]interface{}) {
	if err := s.audit.Record("customer", id.String(), act, details); err != nil {
		s.reporter.Report("customers.audit", err)
	}
}
