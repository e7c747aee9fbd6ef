package routes

import (
	"projectvoortgang/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathOpnames = "/opnames"

func addOpnameRoutes(rg *gin.RouterGroup, opnameHandler *handlers.OpnameHandler, regelHandler *handlers.RegelHandler) {
	opnames := rg.Group(PathOpnames)
	{
		opnames.GET("/:klantnummer", opnameHandler.ListOpnames)
		opnames.POST("/:klantnummer", opnameHandler.CreateOpname)
		opnames.GET("/:klantnummer/:opname_key", opnameHandler.GetOpname)
		opnames.PUT("/:klantnummer/:opname_key", opnameHandler.UpdateOpname)
		opnames.DELETE("/:klantnummer/:opname_key", opnameHandler.DeleteOpname)

		// Aggregation and lifecycle.
		opnames.POST("/:klantnummer/:opname_key/bereken", opnameHandler.RecomputeOpname)
		opnames.POST("/:klantnummer/:opname_key/opslaan", opnameHandler.SaveOpname)
		opnames.POST("/:klantnummer/:opname_key/autoriseren", opnameHandler.AuthorizeOpname)

		// Line items.
		opnames.GET("/:klantnummer/:opname_key/regels", regelHandler.ListRegels)
		opnames.POST("/:klantnummer/:opname_key/regels/populate", regelHandler.PopulateRegels)
		opnames.PUT("/:klantnummer/:opname_key/regels/batch", regelHandler.BatchUpdateRegels)
	}
}
