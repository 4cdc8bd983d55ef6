package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"message-api/internal/domain"
	"message-api/internal/store"
	"message-api/internal/validation"
)

// CreateMessage creates a new message.
// POST /messages
func (h *Handler) CreateMessage(c echo.Context) error {
	var req domain.MessageCreateRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "INVALID_REQUEST", "Request body must be JSON with a 'text' field")
	}

	h.metrics.RecordCreationAttempt()

	msg, err := h.service.CreateMessage(c.Request().Context(), req.Text)
	if err != nil {
		h.metrics.RecordCreationResult(false)

		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			h.log.Warn("validation failed", "code", verr.Code, "reason", verr.Message)
			return errorJSON(c, http.StatusBadRequest, "VALIDATION_ERROR", verr.Message)
		case errors.Is(err, store.ErrDuplicate):
			h.log.Warn("duplicate message rejected")
			return errorJSON(c, http.StatusConflict, "DUPLICATE_MESSAGE", "Message already exists")
		default:
			h.log.Error("failed to create message", "error", err)
			return errorJSON(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create message")
		}
	}

	h.metrics.RecordCreationResult(true)
	h.log.Info("message created", "message_id", msg.ID)
	return c.JSON(http.StatusCreated, msg)
}

// ListMessages returns all stored messages in insertion order.
// GET /messages
func (h *Handler) ListMessages(c echo.Context) error {
	messages := h.service.ListMessages(c.Request().Context())
	if messages == nil {
		messages = []domain.Message{}
	}
	return c.JSON(http.StatusOK, messages)
}

// GetMessage returns a message by id.
// GET /messages/:message_id
func (h *Handler) GetMessage(c echo.Context) error {
	messageID := c.Param("message_id")

	msg, err := h.service.GetMessage(c.Request().Context(), messageID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return errorJSON(c, http.StatusNotFound, "MESSAGE_NOT_FOUND",
				fmt.Sprintf("Message with ID '%s' not found", messageID))
		}
		h.log.Error("failed to get message", "message_id", messageID, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get message")
	}

	return c.JSON(http.StatusOK, msg)
}

// DeleteMessage deletes a message by id.
// DELETE /messages/:message_id
func (h *Handler) DeleteMessage(c echo.Context) error {
	messageID := c.Param("message_id")

	if err := h.service.DeleteMessage(c.Request().Context(), messageID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return errorJSON(c, http.StatusNotFound, "MESSAGE_NOT_FOUND",
				fmt.Sprintf("Message with ID '%s' not found", messageID))
		}
		h.log.Error("failed to delete message", "message_id", messageID, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete message")
	}

	h.log.Info("message deleted", "message_id", messageID)
	return c.NoContent(http.StatusNoContent)
}

// DeleteAllMessages deletes every stored message.
// DELETE /messages
func (h *Handler) DeleteAllMessages(c echo.Context) error {
	count := h.service.DeleteAllMessages(c.Request().Context())
	h.log.Info("all messages deleted", "count", count)

	return c.JSON(http.StatusOK, domain.DeleteAllResponse{
		Status:       http.StatusOK,
		Message:      fmt.Sprintf("All %d message(s) have been deleted", count),
		DeletedCount: count,
	})
}
