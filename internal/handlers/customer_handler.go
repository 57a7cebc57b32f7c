package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"business-dashboard-backend/internal/cache"
	"business-dashboard-backend/internal/forms"
	"business-dashboard-backend/internal/repository"
	"business-dashboard-backend/internal/services/customers"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Uploaded images are small avatars; anything beyond this is rejected.
const maxUploadBytes = 8 << 20

type CustomerHandler struct {
	service *customers.Service
	repo    *repository.CustomerRepository
	pages   *cache.PageCache
}

func NewCustomerHandler(service *customers.Service, repo *repository.CustomerRepository, pages *cache.PageCache) *CustomerHandler {
	return &CustomerHandler{service: service, repo: repo, pages: pages}
}

// List serves the customers listing from the page cache, repopulating on miss.
func (h *CustomerHandler) List(c *gin.Context) {
	if body, ok := h.pages.Get(customers.ListingPath); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	items, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load customers"})
		return
	}

	body, err := json.Marshal(gin.H{"customers": items})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render customers"})
		return
	}
	h.pages.Set(customers.ListingPath, body)
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// Create accepts the multipart customer form. A missing file is not a
// transport error — the form layer reports it as an image_url field error.
func (h *CustomerHandler) Create(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxUploadBytes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
		return
	}

	var upload *forms.Upload
	file, header, err := c.Request.FormFile("image_url")
	if err == nil {
		defer file.Close()
		content, readErr := io.ReadAll(file)
		if readErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded image"})
			return
		}
		upload = &forms.Upload{Name: header.Filename, Content: content}
	}

	renderResult(c, h.service.Create(c.Request.PostForm, upload))
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer ID"})
		return
	}
	renderResult(c, h.service.Delete(id))
}
