package routes

import (
	"projectvoortgang/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathDWH = "/dwh"

func addDWHRoutes(rg *gin.RouterGroup, dwhHandler *handlers.DWHHandler) {
	dwh := rg.Group(PathDWH)
	{
		dwh.GET("/:klantnummer/hoofdprojecten", dwhHandler.ListHoofdprojecten)
		dwh.GET("/:klantnummer/deelprojecten/:hoofdproject_key", dwhHandler.ListDeelprojecten)
		dwh.GET("/:klantnummer/bestekparagrafen/:project_key", dwhHandler.ListBestekparagrafen)
		dwh.GET("/:klantnummer/projectdata/:hoofdproject_key", dwhHandler.ListProjectdata)
	}
}
