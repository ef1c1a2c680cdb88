package datasetapi

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(api *gin.RouterGroup, handler *Handler) {
	datasets := api.Group("/datasets")
	{
		datasets.POST("", handler.Generate)
	}
}
