package handlers

import (
	"net/http"

	"installations_api/internal/response"
	"installations_api/internal/serializer"

	"github.com/gin-gonic/gin"
)

// GetBoroughsHandler lists the boroughs.
// @Summary		List boroughs
// @Tags			arrondissements
// @Produce		json
// @Success		200	{array}		object	"Borough documents: id, nom, cle, date_maj"
// @Failure		500	{object}	response.ErrorResponse	"Storage error (DB_ERROR)"
// @Router			/api/arrondissements [get]
func (h *Handler) GetBoroughsHandler(c *gin.Context) {
	boroughs, err := h.boroughs.Boroughs(c.Request.Context())
	if err != nil {
		readFailed(c, err, "list boroughs")
		return
	}
	c.JSON(http.StatusOK, serializer.Many(boroughs, serializer.BoroughDocument))
}

// HealthHandler reports liveness and storage reachability.
// @Summary		Health check
// @Tags			health
// @Produce		json
// @Success		200	{object}	response.HealthResponse
// @Failure		503	{object}	response.HealthResponse
// @Router			/healthz [get]
func (h *Handler) HealthHandler(c *gin.Context) {
	if err := h.boroughs.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, response.HealthResponse{Status: "degraded", Storage: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.HealthResponse{Status: "ok", Storage: "ok"})
}
