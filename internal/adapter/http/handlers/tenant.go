package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"projectvoortgang/internal/domain/entities"
	"projectvoortgang/pkg"

	"github.com/gin-gonic/gin"
)

// userHeader carries the acting user for the audit trail. Authentication
// itself happens upstream; absent means a system action.
const userHeader = "X-User"

const defaultUser = "system"

var errInvalidKlantnummer = pkg.NewDomainErrorSimple("INVALID_KLANTNUMMER", "Invalid klantnummer", http.StatusBadRequest)

// tenantFrom builds the request tenant from the :klantnummer path segment
// and the X-User header. Every data-touching route carries both.
func tenantFrom(c *gin.Context) (entities.Tenant, *pkg.AppError) {
	customer, err := strconv.Atoi(c.Param("klantnummer"))
	if err != nil || customer <= 0 {
		return entities.Tenant{}, errInvalidKlantnummer
	}
	user := strings.TrimSpace(c.GetHeader(userHeader))
	if user == "" {
		user = defaultUser
	}
	return entities.Tenant{Customer: customer, UserID: user}, nil
}
