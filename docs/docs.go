// Package docs registers the Swagger document served at /swagger/*any.
// Regenerate with `swag init -g cmd/api/main.go` after changing annotations.
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
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object"}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {"200": {"description": "API is ready", "schema": {"type": "object"}}}
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"type": "object"}}}
            }
        },
        "/whatsapp": {
            "post": {
                "description": "Twilio posts each inbound WhatsApp message here; the reply is returned as TwiML.",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/xml"],
                "tags": ["WhatsApp"],
                "summary": "WhatsApp webhook",
                "parameters": [
                    {"type": "string", "description": "Sender, e.g. whatsapp:+5215550001111", "name": "From", "in": "formData", "required": true},
                    {"type": "string", "description": "Message text", "name": "Body", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "TwiML response", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/descargar/{user_id}": {
            "get": {
                "description": "Returns the stored conversation log for a user key.",
                "produces": ["text/plain"],
                "tags": ["WhatsApp"],
                "summary": "Download conversation",
                "parameters": [
                    {"type": "string", "description": "User key from the download link", "name": "user_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Conversation log", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/webhook/telegram": {
            "post": {
                "description": "Receives Telegram updates and answers asynchronously through the Bot API.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Telegram"],
                "summary": "Telegram webhook",
                "parameters": [
                    {"description": "Telegram update", "name": "update", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        }
    },
    "definitions": {
        "response.Resp": {
            "type": "object",
            "properties": {
                "data": {},
                "error_code": {"type": "integer"},
                "errors": {},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Campus Assistant API",
	Description:      "University Q&A assistant over WhatsApp and Telegram, backed by an LLM and institutional web pages.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
