package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fridgetofork/pantry-admin/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lineInput struct {
	IngredientID string `json:"ingredient_id" binding:"required,uuid"`
}

type recipeInput struct {
	Title       string      `json:"title" binding:"required,max=10"`
	Difficulty  string      `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	VideoURL    string      `json:"video_url" binding:"omitempty,url"`
	Ingredients []lineInput `json:"ingredients" binding:"dive"`
}

func validationRouter() *gin.Engine {
	SetupValidator()

	router := gin.New()
	router.Use(RequestID())
	router.POST("/test", func(c *gin.Context) {
		var req recipeInput
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
	return router
}

func postJSON(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleValidationError_ReportsJSONFieldNames(t *testing.T) {
	w := postJSON(validationRouter(), `{
		"title": "A very long recipe title",
		"difficulty": "extreme",
		"video_url": "not a url",
		"ingredients": [{"ingredient_id": "nope"}]
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	assert.Equal(t, "req-1", resp.Error.RequestID)

	got := map[string]string{}
	for _, d := range resp.Error.Details {
		got[d.Field] = d.Message
	}
	assert.Equal(t, map[string]string{
		"title":                        "Must be at most 10 characters",
		"difficulty":                   "Must be one of: easy medium hard",
		"video_url":                    "Invalid URL format",
		"ingredients[0].ingredient_id": "Invalid UUID format",
	}, got)
}

func TestHandleValidationError_Required(t *testing.T) {
	w := postJSON(validationRouter(), `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"title"`)
	assert.Contains(t, w.Body.String(), "This field is required")
}

func TestValidInputPasses(t *testing.T) {
	w := postJSON(validationRouter(), `{"title": "Omelette", "difficulty": "easy"}`)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGetValidationMessage(t *testing.T) {
	type sample struct {
		Short string `validate:"min=5"`
		Count int    `validate:"min=2"`
		Ratio int    `validate:"gte=10"`
		Other string `validate:"alpha"`
	}

	err := validator.New().Struct(sample{Short: "ab", Count: 1, Ratio: 3, Other: "123"})
	require.Error(t, err)

	messages := map[string]string{}
	for _, e := range err.(validator.ValidationErrors) {
		messages[e.Field()] = getValidationMessage(e)
	}
	assert.Equal(t, "Must be at least 5 characters", messages["Short"])
	assert.Equal(t, "Must be at least 2", messages["Count"])
	assert.Equal(t, "Must be greater than or equal to 10", messages["Ratio"])
	assert.Equal(t, "Invalid value", messages["Other"])
}

func TestFormatValidationErrors_NonValidatorError(t *testing.T) {
	resp := FormatValidationErrors(assert.AnError, "req-2")

	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	assert.Empty(t, resp.Error.Details)
}
