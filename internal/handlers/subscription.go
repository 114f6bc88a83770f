package handlers

import (
	"errors"
	"net/http"

	"installations_api/internal/logging"
	"installations_api/internal/metrics"
	"installations_api/internal/response"
	"installations_api/internal/subscription"

	"github.com/gin-gonic/gin"
)

// SubscribeHandler registers a subscriber for a set of boroughs.
// @Summary		Subscribe to boroughs
// @Description	Validates the document, stores the subscriber and returns it
// @Tags			abonnement
// @Accept			json
// @Produce		json
// @Param			input	body		response.SubscriptionRequest	true	"Subscriber"
// @Success		201		{object}	object					"Subscriber document: id, full_name, email, boroughs_to_follow"
// @Failure		400		{object}	response.ErrorResponse	"Invalid document (VALIDATION_ERROR)"
// @Failure		500		{object}	response.ErrorResponse	"Storage error (DB_ERROR)"
// @Router			/api/abonnement [post]
func (h *Handler) SubscribeHandler(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		metrics.SubscriptionsTotal.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: subscription.InvalidMessage,
			Details: err.Error(),
		})
		return
	}

	doc, err := h.subscriptions.Subscribe(c.Request.Context(), body)
	if err != nil {
		var vErr *subscription.ValidationError
		if errors.As(err, &vErr) {
			metrics.SubscriptionsTotal.WithLabelValues("invalid").Inc()
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Code:    "VALIDATION_ERROR",
				Message: subscription.InvalidMessage,
				Details: vErr.Reason,
			})
			return
		}
		metrics.SubscriptionsTotal.WithLabelValues("storage_error").Inc()
		logging.Ctx(c.Request.Context()).Error().Err(err).Msg("subscribe")
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: subscription.StorageMessage,
		})
		return
	}

	metrics.SubscriptionsTotal.WithLabelValues("created").Inc()
	c.JSON(http.StatusCreated, doc)
}
