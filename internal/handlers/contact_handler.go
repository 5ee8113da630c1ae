package handlers

import (
	"net/http"

	"github.com/anonto42/picture-pink/backend/internal/models"
	"github.com/anonto42/picture-pink/backend/internal/realtime"
	"github.com/anonto42/picture-pink/backend/internal/repositories"
	"github.com/anonto42/picture-pink/backend/internal/response"
	"github.com/labstack/echo/v4"
)

// ContactHandler handles contact-message HTTP requests
type ContactHandler struct {
	contactRepository repositories.ContactRepository
	notifier          realtime.Notifier
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactRepo repositories.ContactRepository, notifier realtime.Notifier) *ContactHandler {
	return &ContactHandler{
		contactRepository: contactRepo,
		notifier:          notifier,
	}
}

// RegisterContactRoutes registers contact-related routes
func (h *ContactHandler) RegisterContactRoutes(g *echo.Group, auth echo.MiddlewareFunc) {
	g.GET("", h.GetContacts)
	g.POST("", h.CreateContact)
	g.DELETE("/:id", h.DeleteContact, auth)
}

// GetContacts retrieves all contact messages
func (h *ContactHandler) GetContacts(c echo.Context) error {
	contacts, err := h.contactRepository.GetContacts(c.Request().Context())
	if err != nil {
		return err
	}
	if len(contacts) == 0 {
		return response.Error(c, http.StatusNotFound, "No records found!")
	}
	return response.Success(c, http.StatusOK, "Contacts found", contacts)
}

// CreateContact stores an inbound message from any visitor
func (h *ContactHandler) CreateContact(c echo.Context) error {
	var req models.CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := h.contactRepository.CreateContact(c.Request().Context(), contact); err != nil {
		return err
	}

	h.notifier.Emit(realtime.EventContactCreated, contact)
	return response.Success(c, http.StatusCreated, "Contact send successfully", contact)
}

// DeleteContact deletes a contact message by ID
func (h *ContactHandler) DeleteContact(c echo.Context) error {
	id := c.Param("id")

	if err := h.contactRepository.DeleteContact(c.Request().Context(), id); err != nil {
		switch err {
		case repositories.ErrInvalidID:
			return response.Error(c, http.StatusNotFound, "Contact is invalid")
		case repositories.ErrNotFound:
			return response.Error(c, http.StatusNotFound, "Contact not found")
		}
		return err
	}

	h.notifier.Emit(realtime.EventContactDeleted, id)
	return response.Success(c, http.StatusOK, "Contact deleted successfully", nil)
}
