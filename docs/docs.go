// Package docs registers the OpenAPI document served under /swagger.
// Keep it in step with the handler annotations when routes change.
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
        "/api/v1/topics": {
            "get": {
                "produces": ["application/json"],
                "tags": ["topics"],
                "summary": "List topics",
                "parameters": [
                    {"type": "string", "description": "en or es", "name": "locale", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.TopicListResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/v1/topics/refresh-counts": {
            "post": {
                "produces": ["application/json"],
                "tags": ["topics"],
                "summary": "Recount questions per topic",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.RefreshCountsResponse"}}
                }
            }
        },
        "/api/v1/topics/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["topics"],
                "summary": "Get a topic",
                "parameters": [
                    {"type": "string", "description": "Topic ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "en or es", "name": "locale", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.TopicView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/v1/questions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "List questions",
                "parameters": [
                    {"type": "string", "name": "topic", "in": "query"},
                    {"type": "string", "name": "difficulty", "in": "query"},
                    {"type": "string", "name": "type", "in": "query"},
                    {"type": "boolean", "name": "randomize", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Question"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Create a question",
                "parameters": [
                    {"description": "Question data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Question"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Question"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/v1/questions/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Get a question",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Question"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Replace a question",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Question"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Question"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Delete a question",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/v1/practice": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["practice"],
                "summary": "Start a practice session",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.StartPracticeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.PracticeResponse"}},
                    "404": {"description": "topic has no questions; go back to topic selection", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/v1/practice/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["practice"],
                "summary": "Get session state",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.PracticeResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/v1/practice/{id}/select": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["practice"],
                "summary": "Select an answer",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SelectAnswerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.PracticeResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/v1/practice/{id}/submit": {
            "post": {
                "produces": ["application/json"],
                "tags": ["practice"],
                "summary": "Lock in the selected answer",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.PracticeResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/v1/practice/{id}/feedback": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["practice"],
                "summary": "Ask for feedback on a justification",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.FeedbackRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/handlers.PracticeResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/v1/practice/{id}/next": {
            "post": {
                "produces": ["application/json"],
                "tags": ["practice"],
                "summary": "Advance to the next question",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.PracticeResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/v1/practice/{id}/previous": {
            "post": {
                "produces": ["application/json"],
                "tags": ["practice"],
                "summary": "Go back one question",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.PracticeResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/v1/practice/{id}/locale": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["practice"],
                "summary": "Switch session language",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LocaleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.PracticeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/v1/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["summary"],
                "summary": "Render a practice summary",
                "parameters": [
                    {"type": "integer", "name": "correct", "in": "query", "required": true},
                    {"type": "integer", "name": "incorrect", "in": "query", "required": true},
                    {"type": "string", "name": "topic", "in": "query"},
                    {"type": "string", "name": "locale", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SummaryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/v1/translations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["summary"],
                "summary": "Interface strings",
                "parameters": [{"type": "string", "name": "locale", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/results/{session_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["results"],
                "summary": "Get the stored result of a finished session",
                "parameters": [{"type": "string", "name": "session_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PracticeResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/v1/results/topics/{topic}/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["results"],
                "summary": "Aggregate results for a topic",
                "parameters": [{"type": "string", "name": "topic", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.TopicStats"}}
                }
            }
        },
        "/api/v1/evaluate-justification": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["feedback"],
                "summary": "Evaluate a justification",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.EvaluateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.EvaluateResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.EvaluateResponse"}}
                }
            }
        },
        "/ws/practice/{id}": {
            "get": {
                "tags": ["websocket"],
                "summary": "WebSocket connection for practice feedback",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string", "example": "something went wrong"}}
        },
        "handlers.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "operation successful"}}
        },
        "handlers.TopicView": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "javascript"},
                "name": {"type": "string", "example": "JavaScript"},
                "description": {"type": "string"},
                "question_count": {"type": "integer", "example": 10},
                "questions_label": {"type": "string", "example": "10 questions"},
                "available": {"type": "boolean"},
                "notice": {"type": "string"}
            }
        },
        "handlers.TopicListResponse": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "example": "Choose a topic"},
                "topics": {"type": "array", "items": {"$ref": "#/definitions/handlers.TopicView"}}
            }
        },
        "handlers.RefreshCountsResponse": {
            "type": "object",
            "properties": {"counts": {"type": "object", "additionalProperties": {"type": "integer"}}}
        },
        "handlers.StartPracticeRequest": {
            "type": "object",
            "required": ["topic"],
            "properties": {
                "topic": {"type": "string", "example": "javascript"},
                "randomize": {"type": "boolean", "example": true},
                "locale": {"type": "string", "example": "en"}
            }
        },
        "handlers.SelectAnswerRequest": {
            "type": "object",
            "required": ["answer"],
            "properties": {"answer": {"type": "string", "example": "ReferenceError"}}
        },
        "handlers.FeedbackRequest": {
            "type": "object",
            "required": ["justification"],
            "properties": {"justification": {"type": "string", "example": "let is in the temporal dead zone"}}
        },
        "handlers.LocaleRequest": {
            "type": "object",
            "required": ["locale"],
            "properties": {"locale": {"type": "string", "example": "es"}}
        },
        "handlers.PracticeResponse": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "state": {"$ref": "#/definitions/practice.View"},
                "progress": {"type": "string", "example": "Question 1 of 10"},
                "summary": {"$ref": "#/definitions/handlers.SummaryResponse"}
            }
        },
        "handlers.SummaryResponse": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "topic": {"type": "string"},
                "correct_count": {"type": "integer"},
                "incorrect_count": {"type": "integer"},
                "accuracy": {"type": "integer", "example": 67},
                "rating": {"type": "string", "example": "good"},
                "message": {"type": "string"},
                "labels": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "handlers.EvaluateRequest": {
            "type": "object",
            "required": ["userJustification", "questionExplanation"],
            "properties": {
                "userJustification": {"type": "string"},
                "questionExplanation": {"type": "string"},
                "isCorrect": {"type": "boolean"},
                "locale": {"type": "string"}
            }
        },
        "handlers.EvaluateResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "feedback": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "practice.View": {
            "type": "object",
            "properties": {
                "topic": {"type": "string"},
                "locale": {"type": "string"},
                "position": {"type": "integer"},
                "total": {"type": "integer"},
                "is_last": {"type": "boolean"},
                "question": {"type": "object"},
                "selected_answer": {"type": "string"},
                "answered": {"type": "boolean"},
                "was_correct": {"type": "boolean"},
                "correct_answer": {"type": "string"},
                "explanation": {"type": "string"},
                "correct_count": {"type": "integer"},
                "incorrect_count": {"type": "integer"},
                "accuracy": {"type": "integer"},
                "justification": {"type": "string"},
                "feedback": {"type": "string"},
                "feedback_status": {"type": "string"},
                "finished": {"type": "boolean"}
            }
        },
        "models.Question": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "javascript-1"},
                "topic": {"type": "string", "example": "javascript"},
                "difficulty": {"type": "string", "enum": ["Easy", "Medium", "Hard"]},
                "type": {"type": "string", "enum": ["multiple-choice", "code-output", "true-false"]},
                "question": {"type": "object", "additionalProperties": {"type": "string"}},
                "code": {"type": "string"},
                "options": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}},
                "correctAnswer": {"type": "string"},
                "explanation": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "models.PracticeResult": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "session_id": {"type": "string"},
                "topic": {"type": "string"},
                "locale": {"type": "string"},
                "correct_count": {"type": "integer"},
                "incorrect_count": {"type": "integer"},
                "total_questions": {"type": "integer"},
                "created_at": {"type": "string"}
            }
        },
        "services.TopicStats": {
            "type": "object",
            "properties": {
                "topic": {"type": "string"},
                "sessions": {"type": "integer"},
                "correct_count": {"type": "integer"},
                "incorrect_count": {"type": "integer"},
                "accuracy": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Interview Helper API",
	Description:      "Bilingual programming practice quizzes with AI feedback on answer justifications",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
