package handlers

import (
	"log"
	"net/http"

	request "projectvoortgang/internal/adapter/http/dto/request"
	response "projectvoortgang/internal/adapter/http/dto/response"
	"projectvoortgang/internal/domain/entities"
	"projectvoortgang/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RegelHandler handles HTTP requests for the line items of one assessment:
// warehouse population, listing and the completion editor's batch commit.

type RegelHandler struct {
	usecase usecase.ILineItemUseCase
}

func NewRegelHandler(uc usecase.ILineItemUseCase) *RegelHandler {
	return &RegelHandler{usecase: uc}
}

// PopulateRegels fills the assessment with one line per bestekparagraaf and
// per deelproject from the warehouse. Re-running replaces the full set.
func (h *RegelHandler) PopulateRegels(c *gin.Context) {
	tenant, appErr := tenantFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	opnameKey := c.Param("opname_key")

	lines, err := h.usecase.Populate(c.Request.Context(), tenant, opnameKey)
	if err != nil {
		log.Printf("[regel][handler] populate failed klant=%d opname=%s err=%v", tenant.Customer, opnameKey, err)
		appErr := mapOpnameError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRegels(lines))
}

func (h *RegelHandler) ListRegels(c *gin.Context) {
	tenant, appErr := tenantFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	lines, err := h.usecase.List(c.Request.Context(), tenant, c.Param("opname_key"))
	if err != nil {
		appErr := mapOpnameError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRegels(lines))
}

// BatchUpdateRegels commits a set of sparse completion edits. Out-of-range
// percentages are clamped to [0,100], never rejected.
func (h *RegelHandler) BatchUpdateRegels(c *gin.Context) {
	tenant, appErr := tenantFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.RegelBatchUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOpnamePayload.HTTPStatus, errInvalidOpnamePayload.ToHTTPError())
		return
	}

	updates := make([]entities.PartialUpdate, 0, len(payload.Updates))
	for _, u := range payload.Updates {
		updates = append(updates, entities.PartialUpdate{
			LineKey:       u.LineKey,
			Purchasing:    u.Purchasing,
			AssemblyLabor: u.AssemblyLabor,
			ProjectBound:  u.ProjectBound,
		})
	}

	lines, err := h.usecase.CommitUpdates(c.Request.Context(), tenant, c.Param("opname_key"), updates)
	if err != nil {
		log.Printf("[regel][handler] batch update failed klant=%d opname=%s count=%d err=%v", tenant.Customer, c.Param("opname_key"), len(updates), err)
		appErr := mapOpnameError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRegels(lines))
}
