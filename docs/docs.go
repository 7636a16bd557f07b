// Package docs registers the OpenAPI description served under /swagger.
// Maintained by hand alongside the controller annotations.
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
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a student account",
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Exchange credentials for a JWT",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/catalog": {
            "get": {
                "tags": ["catalog"],
                "summary": "List catalog categories",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/catalog/{category_id}/subcategories": {
            "get": {
                "tags": ["catalog"],
                "summary": "List subcategories of a category",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/subcategories/{subcat_id}/tests": {
            "get": {
                "tags": ["catalog"],
                "summary": "List tests of a subcategory",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/catalog/tests/{test_id}": {
            "get": {
                "tags": ["tests"],
                "summary": "Fetch a test for taking; the answer key is never included",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}
            }
        },
        "/tests/{test_id}/submit": {
            "post": {
                "tags": ["tests"],
                "summary": "Submit answers for grading",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/tests/{test_id}/rank": {
            "get": {
                "tags": ["tests"],
                "summary": "Rank a score among all results for a test",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/tests/{test_id}/results": {
            "get": {
                "tags": ["tests"],
                "summary": "List the caller's results for a test, newest first",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/admin/categories": {
            "post": {
                "tags": ["admin"],
                "summary": "Create a category",
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}
            }
        },
        "/admin/categories/{id}": {
            "delete": {
                "tags": ["admin"],
                "summary": "Delete a category and everything underneath it",
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/admin/subcategories": {
            "post": {
                "tags": ["admin"],
                "summary": "Create a subcategory under a category",
                "responses": {"201": {"description": "Created"}, "404": {"description": "Not Found"}}
            }
        },
        "/admin/subcategories/{id}": {
            "delete": {
                "tags": ["admin"],
                "summary": "Delete a subcategory and everything underneath it",
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/admin/tests": {
            "post": {
                "tags": ["admin"],
                "summary": "Create a test under a subcategory",
                "responses": {"201": {"description": "Created"}, "404": {"description": "Not Found"}}
            }
        },
        "/admin/tests/{id}": {
            "delete": {
                "tags": ["admin"],
                "summary": "Delete a test, its questions and its results",
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/admin/tests/{id}/questions": {
            "post": {
                "tags": ["admin"],
                "summary": "Add one question to a test",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            },
            "get": {
                "tags": ["admin"],
                "summary": "List a test's questions with the answer key",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/admin/questions": {
            "post": {
                "tags": ["admin"],
                "summary": "Bulk-insert questions; rejects the whole batch on any invalid item",
                "responses": {"201": {"description": "Created"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/admin/tests/{id}/questions/import": {
            "post": {
                "tags": ["admin"],
                "summary": "Import questions from a CSV upload",
                "responses": {"201": {"description": "Created"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/admin/tests/{id}/generate": {
            "post": {
                "tags": ["admin"],
                "summary": "Generate questions with the configured AI model and insert them",
                "responses": {"201": {"description": "Created"}, "422": {"description": "Unprocessable Entity"}, "502": {"description": "Bad Gateway"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "PrepForge API",
	Description:      "Exam preparation platform: catalog, question bank, scoring and leaderboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
