package customers

import (
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"business-dashboard-backend/internal/action"
	"business-dashboard-backend/internal/forms"
	"business-dashboard-backend/internal/models"
	"business-dashboard-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store with error injection for failure paths.
type fakeStore struct {
	customers       map[uuid.UUID]models.Customer
	ErrorOnNextCall error
}

func newFakeStore() *fakeStore {
	return &fakeStore{customers: make(map[uuid.UUID]models.Customer)}
}

func (f *fakeStore) checkError() error {
	err := f.ErrorOnNextCall
	f.ErrorOnNextCall = nil
	return err
}

func (f *fakeStore) Insert(c *models.Customer) error {
	if err := f.checkError(); err != nil {
		return err
	}
	for _, existing := range f.customers {
		if existing.Email == c.Email {
			return repository.ErrDuplicateEmail
		}
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	f.customers[c.ID] = *c
	return nil
}

func (f *fakeStore) CountByEmail(email string) (int64, error) {
	if err := f.checkError(); err != nil {
		return 0, err
	}
	var count int64
	for _, c := range f.customers {
		if c.Email == email {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) GetImagePath(id uuid.UUID) (string, error) {
	if err := f.checkError(); err != nil {
		return "", err
	}
	c, ok := f.customers[id]
	if !ok {
		return "", repository.ErrNotFound
	}
	return c.ImageURL, nil
}

func (f *fakeStore) Delete(id uuid.UUID) error {
	if err := f.checkError(); err != nil {
		return err
	}
	delete(f.customers, id)
	return nil
}

type fakeFiles struct {
	stored          map[string][]byte
	removed         []string
	ErrorOnNextCall error
}

func newFakeFiles() *fakeFiles {
	return &fakeFiles{stored: make(map[string][]byte)}
}

func (f *fakeFiles) Store(name string, content []byte) error {
	if f.ErrorOnNextCall != nil {
		err := f.ErrorOnNextCall
		f.ErrorOnNextCall = nil
		return err
	}
	f.stored[name] = content
	return nil
}

func (f *fakeFiles) Remove(path string) error {
	f.removed = append(f.removed, path)
	return nil
}

type fakeInvoiceCounter struct {
	counts map[uuid.UUID]int64
}

func (f *fakeInvoiceCounter) CountByCustomer(customerID uuid.UUID) (int64, error) {
	return f.counts[customerID], nil
}

type fakeAudit struct {
	entries []string
}

func (f *fakeAudit) Record(entity, entityID, act string, details map[string]interface{}) error {
	f.entries = append(f.entries, entity+":"+act)
	return nil
}

type fakeInvalidator struct {
	prefixes []string
}

func (f *fakeInvalidator) Invalidate(prefix string) {
	f.prefixes = append(f.prefixes, prefix)
}

type fakeReporter struct {
	ops []string
}

func (f *fakeReporter) Report(op string, err error) {
	f.ops = append(f.ops, op)
}

type deps struct {
	store    *fakeStore
	files    *fakeFiles
	invoices *fakeInvoiceCounter
	audit    *fakeAudit
	inv      *fakeInvalidator
	rep      *fakeReporter
}

func newTestService() (*Service, *deps) {
	d := &deps{
		store:    newFakeStore(),
		files:    newFakeFiles(),
		invoices: &fakeInvoiceCounter{counts: make(map[uuid.UUID]int64)},
		audit:    &fakeAudit{},
		inv:      &fakeInvalidator{},
		rep:      &fakeReporter{},
	}
	svc := NewService(d.store, d.files, d.invoices, d.audit, d.inv, d.rep)
	svc.now = func() time.Time { return time.Unix(1756600000, 0) }
	return svc, d
}

func validValues() url.Values {
	return url.Values{"name": {"Ada"}, "email": {"ada@example.com"}}
}

func validUpload() *forms.Upload {
	return &forms.Upload{Name: "ada portrait.png", Content: []byte("png-bytes")}
}

func TestCreate_WritesRowThenFile(t *testing.T) {
	svc, d := newTestService()

	res := svc.Create(validValues(), validUpload())

	assert.Equal(t, action.KindRedirect, res.Kind)
	assert.Equal(t, ListingPath, res.Target)

	require.Len(t, d.store.customers, 1)
	for _, c := range d.store.customers {
		assert.Equal(t, "Ada", c.Name)
		assert.Equal(t, "ada@example.com", c.Email)
		assert.Equal(t, "/customers/1756600000-ada_portrait.png", c.ImageURL)
	}

	assert.Equal(t, []byte("png-bytes"), d.files.stored["1756600000-ada_portrait.png"])
	assert.Equal(t, []string{ListingPath}, d.inv.prefixes)
	assert.Equal(t, []string{"customer:create"}, d.audit.entries)
}

func TestCreate_InvalidEmailWritesNothing(t *testing.T) {
	svc, d := newTestService()

	values := validValues()
	values.Set("email", "bad-email")
	res := svc.Create(values, validUpload())

	assert.Equal(t, action.KindFormError, res.Kind)
	assert.Equal(t, []string{forms.MsgEmailInvalid}, res.Errors["email"])
	assert.Empty(t, d.store.customers, "no row on validation failure")
	assert.Empty(t, d.files.stored, "no file on validation failure")
}

func TestCreate_DuplicateEmailPreCheck(t *testing.T) {
	svc, d := newTestService()

	require.Equal(t, action.KindRedirect, svc.Create(validValues(), validUpload()).Kind)

	res := svc.Create(validValues(), validUpload())

	assert.Equal(t, action.KindFormError, res.Kind)
	assert.Equal(t, []string{forms.MsgEmailTaken}, res.Errors["email"])
	assert.Len(t, d.store.customers, 1, "second insert must not happen")
	assert.Len(t, d.files.stored, 1, "second file must not be written")
}

func TestCreate_DuplicateEmailFromInsertTranslates(t *testing.T) {
	// The pre-check can race; a duplicate-key failure from the insert must
	// surface as the same email field error.
	svc, d := newTestService()
	require.Equal(t, action.KindRedirect, svc.Create(validValues(), validUpload()).Kind)

	// Blind the pre-check so the insert itself has to catch the collision
	svc.store = &racingStore{fakeStore: d.store}

	res := svc.Create(validValues(), validUpload())

	assert.Equal(t, action.KindFormError, res.Kind)
	assert.Equal(t, []string{forms.MsgEmailTaken}, res.Errors["email"])
}

// racingStore reports no duplicates from CountByEmail so the insert itself
// has to catch the collision.
type racingStore struct {
	*fakeStore
}

func (r *racingStore) CountByEmail(email string) (int64, error) { return 0, nil }

func TestCreate_MissingUpload(t *testing.T) {
	svc, d := newTestService()

	res := svc.Create(validValues(), nil)

	assert.Equal(t, action.KindFormError, res.Kind)
	assert.Equal(t, []string{forms.MsgImageRequired}, res.Errors["image_url"])
	assert.Empty(t, d.store.customers)
}

func TestCreate_FileWriteFailureIsReported(t *testing.T) {
	svc, d := newTestService()
	d.files.ErrorOnNextCall = errors.New("disk full")

	res := svc.Create(validValues(), validUpload())

	assert.Equal(t, action.KindFormError, res.Kind)
	assert.Equal(t, "Failed to store customer image.", res.Message)
	assert.Len(t, d.store.customers, 1, "the row is already committed")
	assert.Equal(t, []string{"customers.create"}, d.rep.ops)
	assert.Empty(t, d.inv.prefixes)
}

func TestDelete_MissingRowSkipsFileRemoval(t *testing.T) {
	svc, d := newTestService()

	res := svc.Delete(uuid.New())

	assert.Equal(t, action.KindFormError, res.Kind)
	assert.Equal(t, "Customer not found!", res.Message)
	assert.Empty(t, d.files.removed, "no file deletion without a row")
	assert.Empty(t, d.inv.prefixes)
}

func TestDelete_RefusedWhileInvoicesReference(t *testing.T) {
	svc, d := newTestService()

	require.Equal(t, action.KindRedirect, svc.Create(validValues(), validUpload()).Kind)
	var id uuid.UUID
	for cid := range d.store.customers {
		id = cid
	}
	d.invoices.counts[id] = 3

	res := svc.Delete(id)

	assert.Equal(t, action.KindFormError, res.Kind)
	assert.Equal(t, "Cannot delete a customer with existing invoices!", res.Message)
	assert.Len(t, d.store.customers, 1, "row must survive")
	assert.Empty(t, d.files.removed)
}

func TestDelete_RemovesRowThenFile(t *testing.T) {
	svc, d := newTestService()

	require.Equal(t, action.KindRedirect, svc.Create(validValues(), validUpload()).Kind)
	var id uuid.UUID
	for cid := range d.store.customers {
		id = cid
	}

	res := svc.Delete(id)

	assert.Equal(t, action.KindDone, res.Kind)
	assert.Empty(t, d.store.customers)
	require.Len(t, d.files.removed, 1)
	assert.True(t, strings.HasPrefix(d.files.removed[0], "/customers/"))
	assert.Contains(t, d.inv.prefixes, ListingPath)
	assert.Contains(t, d.audit.entries, "customer:delete")
}
