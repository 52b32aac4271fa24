package main

import (
	"github.com/gin-gonic/gin"
	"github.com/gooms-gusto/excel-generation-api/contracts"
	"go.etcd.io/bbolt"
)

type ServiceContainer struct {
	Database           *bbolt.DB
	Generator          contracts.WorkbookGenerator
	TemplateInspector  contracts.TemplateInspector
	TemplateRepository contracts.TemplateRepository
	Mailer             contracts.Mailer
	ApiController      contracts.ApiController
	Router             *gin.Engine
}

func BuildServiceContainer(config *Config) (container ServiceContainer, err error) {
	container.Database, err = bbolt.Open(config.DatabaseFilepath, 0600, nil)

	executor := NewExpressionExecutor()
	container.Generator = NewWorkbookAssembler(NewMappingEngine(executor), NewTableBuilder())
	container.TemplateInspector = NewTemplateInspector()
	container.TemplateRepository = NewTemplateRepository(container.Database)
	container.Mailer = NewSendGridMailer(config.SendGridApiKey, config.EmailFrom)

	container.ApiController = NewApiController(
		container.Generator, container.TemplateInspector,
		container.TemplateRepository, container.Mailer, config.MaxUploadBytes,
	)

	container.Router = SetupRouter(container.ApiController)

	return
}
