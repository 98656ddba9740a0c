// Package docs registers the Swagger document served at /swagger/*any.
// Regenerate with: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}, "503": {"description": "Cache unavailable"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}},
        "/api/v1/screens/dashboard": {
            "post": {"tags": ["Dashboard"], "summary": "Open the edit-dashboard screen", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/api/v1/screens/dashboard/{session_id}": {
            "get": {"tags": ["Dashboard"], "summary": "Read the dashboard snapshot", "parameters": [{"type": "string", "name": "session_id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["Dashboard"], "summary": "Close the dashboard screen", "parameters": [{"type": "string", "name": "session_id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/screens/dashboard/{session_id}/intents": {
            "post": {"tags": ["Dashboard"], "summary": "Send a dashboard intent", "parameters": [{"type": "string", "name": "session_id", "in": "path", "required": true}], "responses": {"202": {"description": "Accepted"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/screens/dashboard/{session_id}/ws": {
            "get": {"tags": ["Dashboard"], "summary": "Stream dashboard snapshots", "parameters": [{"type": "string", "name": "session_id", "in": "path", "required": true}], "responses": {"101": {"description": "Switching Protocols"}}}
        },
        "/api/v1/screens/courses/{course_id}/modules": {
            "post": {"tags": ["Modules"], "summary": "Open the module list of a course", "parameters": [{"type": "integer", "name": "course_id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/screens/courses/{course_id}/modules/{session_id}": {
            "get": {"tags": ["Modules"], "summary": "Read the module list snapshot", "parameters": [{"type": "integer", "name": "course_id", "in": "path", "required": true}, {"type": "string", "name": "session_id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["Modules"], "summary": "Close the module list", "parameters": [{"type": "integer", "name": "course_id", "in": "path", "required": true}, {"type": "string", "name": "session_id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/screens/courses/{course_id}/modules/{session_id}/intents": {
            "post": {"tags": ["Modules"], "summary": "Send a module list intent", "parameters": [{"type": "integer", "name": "course_id", "in": "path", "required": true}, {"type": "string", "name": "session_id", "in": "path", "required": true}], "responses": {"202": {"description": "Accepted"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/screens/courses/{course_id}/modules/{session_id}/ws": {
            "get": {"tags": ["Modules"], "summary": "Stream module list snapshots over a websocket", "parameters": [{"type": "integer", "name": "course_id", "in": "path", "required": true}, {"type": "string", "name": "session_id", "in": "path", "required": true}], "responses": {"101": {"description": "Switching Protocols"}}}
        },
        "/api/v1/calendar/filters": {
            "get": {"tags": ["Calendar"], "summary": "Read calendar filters", "parameters": [{"type": "integer", "name": "observee_id", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["Calendar"], "summary": "Replace calendar filters", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/sync/courses": {
            "post": {"tags": ["Sync"], "summary": "Sync offline courses now", "responses": {"200": {"description": "OK"}, "409": {"description": "Offline mode disabled"}, "502": {"description": "Canvas unreachable"}}}
        },
        "/api/v1/sync/courses/{course_id}": {
            "put": {"tags": ["Sync"], "summary": "Mark a course for offline use", "parameters": [{"type": "integer", "name": "course_id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Canvas Offline Data API",
	Description:      "Screen sessions and offline sync over the Canvas LMS REST API, with a local SQLite cache.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
