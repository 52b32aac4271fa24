package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gooms-gusto/excel-generation-api/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	expectedApiRoutes := [][3]string{
		{http.MethodPost, "/" + generatePath, "GenerateAction"},
		{http.MethodPost, "/" + bulkPath, "BulkGenerateAction"},
		{http.MethodPost, "/" + validateTemplatePath, "ValidateTemplateAction"},
		{http.MethodPost, "/" + templatesPath, "UploadTemplateAction"},
		{http.MethodGet, "/" + templatesPath, "ListTemplatesAction"},
		{http.MethodGet, "/" + infoPath, "InfoAction"},
	}

	for _, expectedRoute := range expectedApiRoutes {
		t.Run("Route "+expectedRoute[2], func(t *testing.T) {
			apiController := mocks.NewApiController(t)
			router := SetupRouter(apiController)

			apiController.On(expectedRoute[2], mock.Anything).Return()

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(expectedRoute[0], "/api/"+ApiVersion+expectedRoute[1], nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			apiController.AssertNumberOfCalls(t, expectedRoute[2], 1)
		})
	}

	t.Run("healthcheck", func(t *testing.T) {
		apiController := mocks.NewApiController(t)
		router := SetupRouter(apiController)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/healthcheck", nil)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "health", w.Body.String())
	})
}
