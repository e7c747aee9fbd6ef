package handlers

import (
	"net/http"
	"strconv"
	"time"

	response "projectvoortgang/internal/adapter/http/dto/response"
	"projectvoortgang/internal/usecase/interfaces"
	"projectvoortgang/pkg"

	"github.com/gin-gonic/gin"
)

// DWHHandler exposes the read-only warehouse catalog: open hoofdprojecten,
// their deelprojecten and bestekparagrafen per grouping level.

type DWHHandler struct {
	warehouse interfaces.IWarehouseGateway
}

func NewDWHHandler(warehouse interfaces.IWarehouseGateway) *DWHHandler {
	return &DWHHandler{warehouse: warehouse}
}

func (h *DWHHandler) ListHoofdprojecten(c *gin.Context) {
	tenant, appErr := tenantFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	refs, err := h.warehouse.ListMainProjects(c.Request.Context(), tenant.Customer)
	if err != nil {
		appErr := warehouseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjects(refs))
}

func (h *DWHHandler) ListDeelprojecten(c *gin.Context) {
	tenant, appErr := tenantFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	mainProjectKey, err := strconv.Atoi(c.Param("hoofdproject_key"))
	if err != nil || mainProjectKey <= 0 {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid hoofdproject_key", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	refs, err := h.warehouse.ListSubProjects(c.Request.Context(), tenant.Customer, mainProjectKey)
	if err != nil {
		appErr := warehouseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjects(refs))
}

func (h *DWHHandler) ListBestekparagrafen(c *gin.Context) {
	tenant, appErr := tenantFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	projectKey, err := strconv.Atoi(c.Param("project_key"))
	if err != nil || projectKey <= 0 {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid project_key", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	niveau, err := strconv.Atoi(c.DefaultQuery("niveau", "1"))
	if err != nil || niveau < 1 || niveau > 4 {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid niveau", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	refs, err := h.warehouse.ListParagraphs(c.Request.Context(), tenant.Customer, projectKey, niveau)
	if err != nil {
		appErr := warehouseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromParagraphs(refs))
}

// ListProjectdata exposes the raw warehouse rows for a hoofdproject, the
// same dataset the populator resolves into line items. The boekdatum query
// parameters bound the booking window.
func (h *DWHHandler) ListProjectdata(c *gin.Context) {
	tenant, appErr := tenantFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	mainProjectKey, err := strconv.Atoi(c.Param("hoofdproject_key"))
	if err != nil || mainProjectKey <= 0 {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid hoofdproject_key", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	start, err := optionalDateQuery(c, "start_boekdatum")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid start_boekdatum, expected YYYY-MM-DD", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	end, err := optionalDateQuery(c, "einde_boekdatum")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid einde_boekdatum, expected YYYY-MM-DD", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	rows, err := h.warehouse.GetProjectData(c.Request.Context(), tenant.Customer, mainProjectKey, start, end)
	if err != nil {
		appErr := warehouseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjectData(rows))
}

func optionalDateQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func warehouseError(err error) *pkg.AppError {
	return pkg.NewDomainError("WAREHOUSE_UNAVAILABLE", "Data warehouse unavailable", err, http.StatusBadGateway)
}
