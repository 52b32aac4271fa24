package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gooms-gusto/excel-generation-api/contracts"
)

const ApiVersion = "v1"

const generatePath = "generate"
const bulkPath = "generate/bulk"
const templatesPath = "templates"
const validateTemplatePath = "templates/validate"
const infoPath = "info"

func SetupRouter(controller contracts.ApiController) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	apiRouterGroup := router.Group("/api/" + ApiVersion)
	apiRouterGroup.POST("/"+generatePath, controller.GenerateAction)
	apiRouterGroup.POST("/"+bulkPath, controller.BulkGenerateAction)
	apiRouterGroup.POST("/"+validateTemplatePath, controller.ValidateTemplateAction)
	apiRouterGroup.POST("/"+templatesPath, controller.UploadTemplateAction)
	apiRouterGroup.GET("/"+templatesPath, controller.ListTemplatesAction)
	apiRouterGroup.GET("/"+infoPath, controller.InfoAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}
