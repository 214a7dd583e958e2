// Package docs registra el contrato de /cats que consume la vista.
// Se sirve en /swagger/ como referencia del upstream.
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
        "/cats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cats"],
                "summary": "List cats",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/cats.Cat"}
                        }
                    }
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cats"],
                "summary": "Create a cat",
                "parameters": [
                    {
                        "description": "New cat",
                        "name": "cat",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/cats.CreateInput"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/cats.Cat"}
                    }
                }
            }
        }
    },
    "definitions": {
        "cats.Cat": {
            "type": "object",
            "required": ["id"],
            "properties": {
                "id": {"description": "server-assigned, opaque"},
                "name": {"type": "string"},
                "breed": {"type": "string"},
                "age": {"type": "integer", "minimum": 0}
            }
        },
        "cats.CreateInput": {
            "type": "object",
            "required": ["name", "breed", "age"],
            "properties": {
                "name": {"type": "string"},
                "breed": {"type": "string"},
                "age": {"type": "integer", "minimum": 0}
            }
        }
    }
}`

// SwaggerInfo se puede ajustar en runtime (p.ej. Host).
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Cats API",
	Description:      "Records endpoint consumed by the cats form; reached through the dev proxy.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
