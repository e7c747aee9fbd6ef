package handlers

import (
	"errors"
	"log"
	"net/http"

	request "projectvoortgang/internal/adapter/http/dto/request"
	response "projectvoortgang/internal/adapter/http/dto/response"
	"projectvoortgang/internal/domain/entities"
	"projectvoortgang/internal/usecase"
	"projectvoortgang/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOpnamePayload = pkg.NewDomainErrorSimple("INVALID_OPNAME_INPUT", "Invalid opname payload", http.StatusBadRequest)

// OpnameHandler handles HTTP requests for assessments: header CRUD, the
// recompute endpoint and the authorization lifecycle.

type OpnameHandler struct {
	usecase usecase.IAssessmentUseCase
}

func NewOpnameHandler(uc usecase.IAssessmentUseCase) *OpnameHandler {
	return &OpnameHandler{usecase: uc}
}

// ListOpnames returns every assessment of one customer, newest first is the
// repository's concern.
func (h *OpnameHandler) ListOpnames(c *gin.Context) {
	tenant, appErr := tenantFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	items, err := h.usecase.List(c.Request.Context(), tenant)
	if err != nil {
		appErr := mapOpnameError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOpnames(items))
}

func (h *OpnameHandler) GetOpname(c *gin.Context) {
	tenant, appErr := tenantFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	a, err := h.usecase.GetByKey(c.Request.Context(), tenant, c.Param("opname_key"))
	if err != nil {
		appErr := mapOpnameError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOpname(a))
}

func (h *OpnameHandler) CreateOpname(c *gin.Context) {
	tenant, appErr := tenantFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.CreateOpnameRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOpnamePayload.HTTPStatus, errInvalidOpnamePayload.ToHTTPError())
		return
	}

	start, err := payload.ResolveStartBookingDate()
	if err != nil {
		c.JSON(errInvalidOpnamePayload.HTTPStatus, errInvalidOpnamePayload.ToHTTPError())
		return
	}
	end, err := payload.ResolveEndBookingDate()
	if err != nil {
		c.JSON(errInvalidOpnamePayload.HTTPStatus, errInvalidOpnamePayload.ToHTTPError())
		return
	}

	a, err := h.usecase.Create(c.Request.Context(), tenant, usecase.CreateAssessmentParams{
		MainProjectKey:         payload.MainProjectKey,
		MainProjectName:        payload.MainProjectName,
		HighestSelectedLevel:   payload.HighestSelectedLevel,
		StartBookingDate:       start,
		EndBookingDate:         end,
		BudgetCostBasis:        entities.BudgetCostBasis(payload.BudgetCostBasis),
		BookedCostBasis:        entities.BookedCostBasis(payload.BookedCostBasis),
		ParagraphGroupingLevel: payload.ParagraphGroupingLevel,
		Remark:                 payload.Remark,
	})
	if err != nil {
		log.Printf("[opname][handler] create failed klant=%d project=%d err=%v", tenant.Customer, payload.MainProjectKey, err)
		appErr := mapOpnameError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOpname(a))
}

func (h *OpnameHandler) UpdateOpname(c *gin.Context) {
	tenant, appErr := tenantFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.UpdateOpnameRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOpnamePayload.HTTPStatus, errInvalidOpnamePayload.ToHTTPError())
		return
	}

	params := usecase.UpdateAssessmentParams{
		Remark:                 payload.Remark,
		ParagraphGroupingLevel: payload.ParagraphGroupingLevel,
	}
	if payload.BudgetCostBasis != nil {
		basis := entities.BudgetCostBasis(*payload.BudgetCostBasis)
		params.BudgetCostBasis = &basis
	}
	if payload.BookedCostBasis != nil {
		basis := entities.BookedCostBasis(*payload.BookedCostBasis)
		params.BookedCostBasis = &basis
	}

	a, err := h.usecase.Update(c.Request.Context(), tenant, c.Param("opname_key"), params)
	if err != nil {
		appErr := mapOpnameError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOpname(a))
}

func (h *OpnameHandler) DeleteOpname(c *gin.Context) {
	tenant, appErr := tenantFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), tenant, c.Param("opname_key")); err != nil {
		appErr := mapOpnameError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// RecomputeOpname recalculates the aggregate block from the committed lines.
func (h *OpnameHandler) RecomputeOpname(c *gin.Context) {
	tenant, appErr := tenantFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	a, err := h.usecase.Recompute(c.Request.Context(), tenant, c.Param("opname_key"))
	if err != nil {
		appErr := mapOpnameError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOpname(a))
}

// SaveOpname recalculates and flags the assessment als opgeslagen without
// leaving Concept.
func (h *OpnameHandler) SaveOpname(c *gin.Context) {
	tenant, appErr := tenantFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	a, err := h.usecase.Save(c.Request.Context(), tenant, c.Param("opname_key"))
	if err != nil {
		appErr := mapOpnameError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOpname(a))
}

// AuthorizeOpname moves the assessment through the one-way authorization
// gate. An empty payload targets Geautoriseerd.
func (h *OpnameHandler) AuthorizeOpname(c *gin.Context) {
	tenant, appErr := tenantFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.AuthorizeOpnameRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidOpnamePayload.HTTPStatus, errInvalidOpnamePayload.ToHTTPError())
			return
		}
	}

	a, err := h.usecase.Finalize(c.Request.Context(), tenant, c.Param("opname_key"), entities.AssessmentStatus(payload.Status))
	if err != nil {
		log.Printf("[opname][handler] authorize failed klant=%d opname=%s err=%v", tenant.Customer, c.Param("opname_key"), err)
		appErr := mapOpnameError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOpname(a))
}

func mapOpnameError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomer),
		errors.Is(err, usecase.ErrInvalidAssessmentKey),
		errors.Is(err, usecase.ErrInvalidProjectKey),
		errors.Is(err, usecase.ErrInvalidGroupingLevel),
		errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAssessmentNotFound):
		return pkg.NewDomainErrorSimple("OPNAME_NOT_FOUND", "Opname not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("REGEL_NOT_FOUND", "Opnameregel not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Hoofdproject not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAssessmentLocked):
		return pkg.NewDomainErrorSimple("OPNAME_LOCKED", "Opname is no longer editable", http.StatusForbidden)
	case errors.Is(err, usecase.ErrWarehouseUnavailable):
		return pkg.NewDomainErrorSimple("WAREHOUSE_UNAVAILABLE", "Data warehouse unavailable", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
