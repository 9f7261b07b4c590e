package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cogniboost/progress-system/internal/core/ports"
)

// ContactDispatcher is the interface the handler uses to enqueue messages.
type ContactDispatcher interface {
	Enqueue(in ports.ContactInput)
}

// ContactHandler handles contact-form ingestion.
type ContactHandler struct {
	dispatcher ContactDispatcher
}

// NewContactHandler creates a ContactHandler backed by the given dispatcher.
func NewContactHandler(dispatcher ContactDispatcher) *ContactHandler {
	return &ContactHandler{dispatcher: dispatcher}
}

// Receive handles POST /v1/contact. It enqueues the message and returns 202.
//
// @Summary      Submit a contact-form message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact message"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/contact [post]
func (h *ContactHandler) Receive(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	h.dispatcher.Enqueue(ports.ContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Mobile:    req.Mobile,
		Message:   req.Message,
	})
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "message accepted"})
}
