package handlers

import (
	"context"
	"net/http"

	"installations_api/internal/facilities"
	"installations_api/internal/logging"
	"installations_api/internal/models"
	"installations_api/internal/response"
	"installations_api/internal/subscription"

	"github.com/gin-gonic/gin"
)

// BoroughStore is the storage read directly by the handlers.
type BoroughStore interface {
	Boroughs(ctx context.Context) ([]models.Borough, error)
	Ping(ctx context.Context) error
}

// Handler serves every /api endpoint.
type Handler struct {
	facilities    *facilities.Service
	subscriptions *subscription.Service
	boroughs      BoroughStore
	updateYear    string
}

func NewHandler(fs *facilities.Service, ss *subscription.Service, boroughs BoroughStore, updateYear string) *Handler {
	return &Handler{
		facilities:    fs,
		subscriptions: ss,
		boroughs:      boroughs,
		updateYear:    updateYear,
	}
}

// Register mounts the endpoints on an /api group.
func (h *Handler) Register(api *gin.RouterGroup) {
	api.GET("/installations", h.GetInstallationsHandler)
	api.GET("/installations-maj-2021", h.GetUpdatedInstallationsHandler)
	api.GET("/installations-maj-2021.xml", h.GetUpdatedInstallationsXMLHandler)
	api.GET("/installations-maj/:annee", h.GetInstallationsUpdatedInYearHandler)
	api.GET("/installations-noms", h.GetInstallationNamesHandler)
	api.GET("/installations-recherche-nom", h.SearchInstallationsHandler)
	api.GET("/arrondissements", h.GetBoroughsHandler)
	api.POST("/abonnement", h.SubscribeHandler)
}

func readFailed(c *gin.Context, err error, what string) {
	logging.Ctx(c.Request.Context()).Error().Err(err).Msg(what)
	c.JSON(http.StatusInternalServerError, response.ErrorResponse{
		Code:    "DB_ERROR",
		Message: "error occurred while reading data from storage",
	})
}
