package handlers

import (
	"net/http"

	"installations_api/internal/facilities"
	"installations_api/internal/serializer"

	"github.com/gin-gonic/gin"
)

const xmlContentType = "application/xml; charset=utf-8"

// GetInstallationsHandler lists every facility, optionally for one borough.
// @Summary		List facilities
// @Description	Returns aquatic installations, ice rinks and slides. With arrondissement, only the facilities of the borough with exactly that name.
// @Tags			installations
// @Produce		json
// @Param			arrondissement	query		string	false	"Borough name (exact match)"
// @Success		200				{object}	response.InstallationsResponse
// @Failure		500				{object}	response.ErrorResponse	"Storage error (DB_ERROR)"
// @Router			/api/installations [get]
func (h *Handler) GetInstallationsHandler(c *gin.Context) {
	var borough *string
	if name, ok := c.GetQuery("arrondissement"); ok {
		borough = &name
	}
	result, err := h.facilities.List(c.Request.Context(), borough)
	if err != nil {
		readFailed(c, err, "list installations")
		return
	}
	c.JSON(http.StatusOK, result.Groups())
}

// GetUpdatedInstallationsHandler lists the facilities updated in the
// configured year.
// @Summary		Facilities updated in 2021
// @Description	Aquatic installations and slides whose borough was updated in the year, ice rinks whose date contains it. Each group sorted by name.
// @Tags			installations
// @Produce		json
// @Success		200	{object}	response.InstallationsResponse
// @Failure		500	{object}	response.ErrorResponse	"Storage error (DB_ERROR)"
// @Router			/api/installations-maj-2021 [get]
func (h *Handler) GetUpdatedInstallationsHandler(c *gin.Context) {
	result, ok := h.updatedIn(c, h.updateYear)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, result.Groups())
}

// GetUpdatedInstallationsXMLHandler is the XML rendition of
// GetUpdatedInstallationsHandler.
// @Summary		Facilities updated in 2021 (XML)
// @Tags			installations
// @Produce		xml
// @Success		200	{string}	string	"installations document"
// @Failure		500	{object}	response.ErrorResponse	"Storage error (DB_ERROR)"
// @Router			/api/installations-maj-2021.xml [get]
func (h *Handler) GetUpdatedInstallationsXMLHandler(c *gin.Context) {
	result, ok := h.updatedIn(c, h.updateYear)
	if !ok {
		return
	}
	h.writeXML(c, result.Groups())
}

// GetInstallationsUpdatedInYearHandler does the same for any year.
// @Summary		Facilities updated in a year
// @Tags			installations
// @Produce		json,xml
// @Param			annee	path		string	true	"Year, e.g. 2022"
// @Param			format	query		string	false	"xml for an XML document"
// @Success		200		{object}	response.InstallationsResponse
// @Failure		500		{object}	response.ErrorResponse	"Storage error (DB_ERROR)"
// @Router			/api/installations-maj/{annee} [get]
func (h *Handler) GetInstallationsUpdatedInYearHandler(c *gin.Context) {
	result, ok := h.updatedIn(c, c.Param("annee"))
	if !ok {
		return
	}
	if c.Query("format") == "xml" {
		h.writeXML(c, result.Groups())
		return
	}
	c.JSON(http.StatusOK, result.Groups())
}

// GetInstallationNamesHandler returns every facility name sorted.
// @Summary		Facility names
// @Tags			installations
// @Produce		json
// @Success		200	{array}		string
// @Failure		500	{object}	response.ErrorResponse	"Storage error (DB_ERROR)"
// @Router			/api/installations-noms [get]
func (h *Handler) GetInstallationNamesHandler(c *gin.Context) {
	result, err := h.facilities.List(c.Request.Context(), nil)
	if err != nil {
		readFailed(c, err, "list installation names")
		return
	}
	c.JSON(http.StatusOK, result.Names())
}

// SearchInstallationsHandler finds facilities by exact name.
// @Summary		Search facilities by name
// @Description	Without nom every facility is returned. With nom (even empty) only exact matches.
// @Tags			installations
// @Produce		json
// @Param			nom	query		string	false	"Facility name (exact match)"
// @Success		200	{object}	response.InstallationsResponse
// @Failure		500	{object}	response.ErrorResponse	"Storage error (DB_ERROR)"
// @Router			/api/installations-recherche-nom [get]
func (h *Handler) SearchInstallationsHandler(c *gin.Context) {
	var name *string
	if nom, ok := c.GetQuery("nom"); ok {
		name = &nom
	}
	result, err := h.facilities.SearchByName(c.Request.Context(), name)
	if err != nil {
		readFailed(c, err, "search installations")
		return
	}
	c.JSON(http.StatusOK, result.Groups())
}

func (h *Handler) updatedIn(c *gin.Context, year string) (facilities.Facilities, bool) {
	result, err := h.facilities.UpdatedIn(c.Request.Context(), year)
	if err != nil {
		readFailed(c, err, "list updated installations")
		return facilities.Facilities{}, false
	}
	return result, true
}

func (h *Handler) writeXML(c *gin.Context, g serializer.Groups) {
	body, err := serializer.ToXML(g)
	if err != nil {
		readFailed(c, err, "encode installations xml")
		return
	}
	c.Data(http.StatusOK, xmlContentType, body)
}
