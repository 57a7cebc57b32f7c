package handler

import (
	"encoding/json"
	"net/http"

	"business-dashboard-backend/internal/cache"
	"business-dashboard-backend/internal/repository"
	"business-dashboard-backend/internal/services/invoices"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoiceHandler struct {
	service *invoices.Service
	repo    *repository.InvoiceRepository
	pages   *cache.PageCache
}

func NewInvoiceHandler(service *invoices.Service, repo *repository.InvoiceRepository, pages *cache.PageCache) *InvoiceHandler {
	return &InvoiceHandler{service: service, repo: repo, pages: pages}
}

// List serves the invoices listing from the page cache, repopulating on miss.
func (h *InvoiceHandler) List(c *gin.Context) {
	if body, ok := h.pages.Get(invoices.ListingPath); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	items, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load invoices"})
		return
	}

	body, err := json.Marshal(gin.H{"invoices": items})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render invoices"})
		return
	}
	h.pages.Set(invoices.ListingPath, body)
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
		return
	}
	renderResult(c, h.service.Create(c.Request.PostForm))
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
		return
	}
	renderResult(c, h.service.Update(id, c.Request.PostForm))
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}
	renderResult(c, h.service.Delete(id))
}
