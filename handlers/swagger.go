package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers the API documentation endpoints.
// - GET /swagger/index.html  -> Swagger UI page loading the document below
// - GET /swagger/doc.json    -> OpenAPI document for the website ideas API
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>website-ideas — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "website-ideas", "version": "v0.1.0" },
  "components": {
    "schemas": {
      "Section": {
        "type": "object",
        "properties": {
          "id": { "type": "string" },
          "name": { "type": "string" },
          "content": { "type": "string" },
          "order": { "type": "integer", "minimum": 1 }
        }
      },
      "WebsiteIdea": {
        "type": "object",
        "properties": {
          "id": { "type": "string" },
          "idea": { "type": "string" },
          "sections": { "type": "array", "items": { "$ref": "#/components/schemas/Section" } },
          "createdAt": { "type": "string", "format": "date-time" },
          "updatedAt": { "type": "string", "format": "date-time" }
        }
      },
      "Envelope": {
        "type": "object",
        "properties": {
          "success": { "type": "boolean" },
          "data": { "nullable": true },
          "message": { "type": "string" }
        }
      }
    }
  },
  "paths": {
    "/api/website-ideas": {
      "post": {
        "summary": "Generate and store sections for a website idea",
        "requestBody": { "content": { "application/json": { "schema": { "type": "object", "required": ["idea"], "properties": { "idea": { "type": "string", "minLength": 5, "maxLength": 500 } } } } } },
        "responses": {
          "201": { "description": "created", "content": { "application/json": { "schema": { "$ref": "#/components/schemas/Envelope" } } } },
          "400": { "description": "invalid idea text" },
          "429": { "description": "rate limited" },
          "500": { "description": "storage failure" }
        }
      },
      "get": {
        "summary": "List website ideas, newest first",
        "responses": { "200": { "description": "list" }, "500": { "description": "storage failure" } }
      }
    },
    "/api/website-ideas/{id}": {
      "get": {
        "summary": "Get one website idea",
        "parameters": [ { "name": "id", "in": "path", "required": true, "schema": { "type": "string" } } ],
        "responses": { "200": { "description": "found" }, "404": { "description": "not found" }, "500": { "description": "storage failure" } }
      }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "exposition format" } } } }
  }
}`
