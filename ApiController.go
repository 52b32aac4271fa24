package main

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	json "github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/gooms-gusto/excel-generation-api/contracts"
)

const templateFileField = "template"

type ApiController struct {
	Generator          contracts.WorkbookGenerator
	TemplateInspector  contracts.TemplateInspector
	TemplateRepository contracts.TemplateRepository
	Mailer             contracts.Mailer
	Validator          *RequestValidator
	MaxUploadBytes     int64
}

type BulkItemResult struct {
	Index    int    `json:"index"`
	FileName string `json:"fileName"`
	Size     int    `json:"size"`
	Content  string `json:"content"`
}

type BulkItemError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

func NewApiController(
	generator contracts.WorkbookGenerator, inspector contracts.TemplateInspector,
	repository contracts.TemplateRepository, mailer contracts.Mailer, maxUploadBytes int64,
) *ApiController {
	return &ApiController{
		Generator:          generator,
		TemplateInspector:  inspector,
		TemplateRepository: repository,
		Mailer:             mailer,
		Validator:          NewRequestValidator(),
		MaxUploadBytes:     maxUploadBytes,
	}
}

func (api *ApiController) GenerateAction(c *gin.Context) {
	request := &contracts.GenerateRequest{}
	var template []byte
	var err error

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		template, err = api.bindMultipartRequest(c, request)
	} else {
		err = c.ShouldBindJSON(request)
	}

	if err != nil {
		api.respondUploadError(c, err)
		return
	}

	if fieldErrors := api.Validator.Validate(request); len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": fieldErrors})
		return
	}

	if template == nil && request.TemplateName != "" {
		template, err = api.TemplateRepository.Get(request.TemplateName)
	}

	var buffer []byte
	if err == nil {
		buffer, err = api.Generator.Generate(request, template)
	}

	if errors.Is(err, contracts.TemplateNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else if request.Mode == contracts.ModeEmail {
		api.deliverByEmail(c, request, buffer)
	} else {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", request.OutputFileName()))
		c.Data(http.StatusOK, xlsxContentType, buffer)
	}
}

func (api *ApiController) deliverByEmail(c *gin.Context, request *contracts.GenerateRequest, buffer []byte) {
	err := api.Mailer.SendWorkbook(request.EmailAddress, request.OutputFileName(), buffer)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "file generated and sent",
		"emailAddress": request.EmailAddress,
		"fileName":     request.OutputFileName(),
	})
}

func (api *ApiController) BulkGenerateAction(c *gin.Context) {
	requests := make([]contracts.GenerateRequest, 0)

	if err := c.ShouldBindJSON(&requests); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(requests) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one generation request is required"})
		return
	}

	results := make([]BulkItemResult, 0, len(requests))
	itemErrors := make([]BulkItemError, 0)

	// strictly sequential, one bad item never blocks the rest
	for i := range requests {
		buffer, err := api.generateBulkItem(&requests[i])
		if err != nil {
			itemErrors = append(itemErrors, BulkItemError{Index: i, Error: err.Error()})
			continue
		}

		results = append(results, BulkItemResult{
			Index:    i,
			FileName: requests[i].OutputFileName(),
			Size:     len(buffer),
			Content:  base64.StdEncoding.EncodeToString(buffer),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"errors":  itemErrors,
		"summary": gin.H{
			"total":     len(requests),
			"succeeded": len(results),
			"failed":    len(itemErrors),
		},
	})
}

func (api *ApiController) generateBulkItem(request *contracts.GenerateRequest) ([]byte, error) {
	if fieldErrors := api.Validator.Validate(request); len(fieldErrors) > 0 {
		return nil, fmt.Errorf("validation failed: %s", formatFieldErrors(fieldErrors))
	}

	// bulk items carry no template
	return api.Generator.Generate(request, nil)
}

func (api *ApiController) ValidateTemplateAction(c *gin.Context) {
	buffer, ok := api.readTemplateUpload(c)
	if !ok {
		return
	}

	validation := api.TemplateInspector.Validate(buffer)
	if !validation.IsValid {
		c.JSON(http.StatusOK, validation)
		return
	}

	infos, err := api.TemplateInspector.Info(buffer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"isValid":   true,
		"sheets":    validation.Sheets,
		"sheetInfo": infos,
	})
}

func (api *ApiController) UploadTemplateAction(c *gin.Context) {
	buffer, ok := api.readTemplateUpload(c)
	if !ok {
		return
	}

	validation := api.TemplateInspector.Validate(buffer)
	if !validation.IsValid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template: " + validation.Error})
		return
	}

	name := c.PostForm("name")
	if name == "" {
		fileHeader, _ := c.FormFile(templateFileField)
		name = strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename))
	}

	if err := api.TemplateRepository.Put(name, buffer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"name":    name,
		"sheets":  validation.Sheets,
	})
}

func (api *ApiController) ListTemplatesAction(c *gin.Context) {
	names, err := api.TemplateRepository.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"templates": names})
}

func (api *ApiController) InfoAction(c *gin.Context) {
	email := gin.H{"healthy": true}
	if err := api.Mailer.Health(); err != nil {
		email["healthy"] = false
		email["error"] = err.Error()
	}

	c.JSON(http.StatusOK, gin.H{
		"service": "excel-generation-api",
		"version": ApiVersion,
		"capabilities": gin.H{
			"modes":          []string{contracts.ModeDownload, contracts.ModeEmail},
			"formats":        []string{"currency", "percentage", "date", "datetime", "number", "integer"},
			"templates":      true,
			"bulk":           true,
			"maxUploadBytes": api.MaxUploadBytes,
		},
		"email": email,
	})
}

// readTemplateUpload pulls the uploaded template file and writes the error
// response itself when the upload is missing or rejected.
func (api *ApiController) readTemplateUpload(c *gin.Context) ([]byte, bool) {
	fileHeader, err := c.FormFile(templateFileField)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "template file is required"})
		return nil, false
	}

	buffer, err := api.readUpload(fileHeader)
	if err != nil {
		api.respondUploadError(c, err)
		return nil, false
	}

	return buffer, true
}

func (api *ApiController) bindMultipartRequest(c *gin.Context, request *contracts.GenerateRequest) (template []byte, err error) {
	fileHeader, fileErr := c.FormFile(templateFileField)
	if fileErr == nil {
		template, err = api.readUpload(fileHeader)
		if err != nil {
			return nil, err
		}
	}

	jsonFields := map[string]any{
		"jsonData":      &request.JsonData,
		"mappingConfig": &request.MappingConfig,
		"tables":        &request.Tables,
		"options":       &request.Options,
	}

	for field, target := range jsonFields {
		raw := c.PostForm(field)
		if raw == "" {
			continue
		}

		if err = json.Unmarshal([]byte(raw), target); err != nil {
			return nil, fmt.Errorf("%s: %s", field, err)
		}
	}

	request.Mode = c.PostForm("mode")
	request.EmailAddress = c.PostForm("emailAddress")
	request.FileName = c.PostForm("fileName")
	request.TemplateName = c.PostForm("templateName")

	return template, nil
}

func (api *ApiController) readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	if fileHeader.Size > api.MaxUploadBytes {
		return nil, fmt.Errorf("%w (%d bytes, limit %d)", contracts.FileTooLargeError, fileHeader.Size, api.MaxUploadBytes)
	}

	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".xlsx") {
		return nil, fmt.Errorf("%w: %s", contracts.WrongFileTypeError, fileHeader.Filename)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

func (api *ApiController) respondUploadError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, contracts.FileTooLargeError) {
		status = http.StatusRequestEntityTooLarge
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

func formatFieldErrors(fieldErrors []contracts.FieldError) string {
	messages := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		messages = append(messages, fieldError.Field+": "+fieldError.Message)
	}

	return strings.Join(messages, "; ")
}
