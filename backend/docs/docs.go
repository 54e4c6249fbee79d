// Package docs registers the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/courses": {
            "get": {"tags": ["courses"], "summary": "List courses", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"SessionCookie": []}], "tags": ["courses"], "summary": "Create course", "consumes": ["application/json"], "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/courses/{id}": {
            "get": {"tags": ["courses"], "summary": "Get course", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"security": [{"SessionCookie": []}], "tags": ["courses"], "summary": "Update course", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "422": {"description": "Unprocessable Entity"}}},
            "delete": {"security": [{"SessionCookie": []}], "tags": ["courses"], "summary": "Delete course", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/registrations": {
            "get": {"security": [{"SessionCookie": []}], "tags": ["registrations"], "summary": "List registrations", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["registrations"], "summary": "Register for a course", "consumes": ["application/json"], "responses": {"201": {"description": "Created"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/registrations/{id}/status": {
            "patch": {"security": [{"SessionCookie": []}], "tags": ["registrations"], "summary": "Change registration status", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/banners": {
            "get": {"tags": ["banners"], "summary": "List banners", "parameters": [{"type": "boolean", "name": "active", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"SessionCookie": []}], "tags": ["banners"], "summary": "Create banner", "responses": {"201": {"description": "Created"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/banners/{id}": {
            "patch": {"security": [{"SessionCookie": []}], "tags": ["banners"], "summary": "Update banner", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"SessionCookie": []}], "tags": ["banners"], "summary": "Delete banner", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/website-settings": {
            "get": {"tags": ["settings"], "summary": "List website settings", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"SessionCookie": []}], "tags": ["settings"], "summary": "Create website setting", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/website-settings/{key}": {
            "patch": {"security": [{"SessionCookie": []}], "tags": ["settings"], "summary": "Update a setting value", "parameters": [{"type": "string", "name": "key", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/contact": {
            "post": {"tags": ["contact"], "summary": "Send a contact message", "responses": {"201": {"description": "Created"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/dashboard/stats": {
            "get": {"security": [{"SessionCookie": []}], "tags": ["dashboard"], "summary": "Dashboard statistics", "parameters": [{"type": "string", "name": "startDate", "in": "query"}, {"type": "string", "name": "endDate", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/admin/login": {
            "post": {"tags": ["admin"], "summary": "Admin login", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/admin/logout": {
            "post": {"tags": ["admin"], "summary": "Admin logout", "responses": {"200": {"description": "OK"}}}
        },
        "/admin/me": {
            "get": {"security": [{"SessionCookie": []}], "tags": ["admin"], "summary": "Current admin", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        }
    },
    "securityDefinitions": {
        "SessionCookie": {"type": "apiKey", "name": "academy_session", "in": "cookie"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Academy API",
	Description:      "Courses, registrations, banners and site settings for the training academy.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
