// Package docs registers the OpenAPI document of the admin API with swag so
// gin-swagger can serve it.
package docs

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag/v2"
)

// OpenAPI is the OpenAPI 3 document served at /openapi.json
//
//go:embed openapi.json
var OpenAPI []byte

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Pantry Admin API",
	Description:      "Back-office API over pantry stock, recipes, meal plans and shopping lists.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  string(OpenAPI),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Handler serves the raw document
func Handler(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", OpenAPI)
}
