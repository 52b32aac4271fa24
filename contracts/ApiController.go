package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	GenerateAction(c *gin.Context)
	BulkGenerateAction(c *gin.Context)
	ValidateTemplateAction(c *gin.Context)
	UploadTemplateAction(c *gin.Context)
	ListTemplatesAction(c *gin.Context)
	InfoAction(c *gin.Context)
}
