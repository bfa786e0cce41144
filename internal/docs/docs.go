// Package docs registers the OpenAPI document served at /swagger.
//
// The document is maintained by hand in swag's output format. Keep it in step
// with the @Router annotations on the handlers; server.TestDocsMatchRoutes
// fails when a route and its documented operation diverge.
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
        "/companies": {
            "get": {
                "produces": ["application/json"],
                "tags": ["market"],
                "summary": "List companies",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Company"}}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/company/{symbol}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["market"],
                "summary": "Company profile",
                "parameters": [
                    {"type": "string", "description": "Ticker symbol", "name": "symbol", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.CompanyResponse"}},
                    "404": {"description": "Company not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/company/{symbol}/graph": {
            "get": {
                "description": "All rows for the company in ascending date order.",
                "produces": ["application/json"],
                "tags": ["market"],
                "summary": "Company price history",
                "parameters": [
                    {"type": "string", "description": "Ticker symbol", "name": "symbol", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.StockResponse"}}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/favorites/add": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Adds the symbol to the user's favorites. Adding twice is a no-op.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["favorites"],
                "summary": "Add a favorite",
                "parameters": [
                    {"description": "User and symbol", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.FavoriteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Invalid token", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "403": {"description": "Token belongs to another user", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Unknown user or company", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/favorites/remove": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Removes the symbol from the user's favorites. Removing an absent pair succeeds.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["favorites"],
                "summary": "Remove a favorite",
                "parameters": [
                    {"description": "User and symbol", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.FavoriteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Invalid token", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "403": {"description": "Token belongs to another user", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/favorites/{user_id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["favorites"],
                "summary": "List favorites",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "user_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}},
                    "400": {"description": "Invalid user id", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "403": {"description": "Token belongs to another user", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/index_data": {
            "get": {
                "description": "The market index row for the given day. Defaults to today.",
                "produces": ["application/json"],
                "tags": ["market"],
                "summary": "Daily index row",
                "parameters": [
                    {"type": "string", "description": "Day as YYYY-MM-DD", "name": "date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.IndexResponse"}},
                    "400": {"description": "Invalid date", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "No index row for the day", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "description": "Authenticate with email and password",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Login credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.LoginResponse"}},
                    "400": {"description": "Invalid input or credentials", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/seed_full_data": {
            "post": {
                "security": [{"SeedKey": []}],
                "description": "Creates catalog companies and rows from 30 days ago through 10 days ahead. Existing rows are kept.",
                "produces": ["application/json"],
                "tags": ["seed"],
                "summary": "Seed full window",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SeedResponse"}},
                    "401": {"description": "Missing or invalid seed key", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/seed_week_data": {
            "post": {
                "security": [{"SeedKey": []}],
                "description": "Creates rows for today through six days ahead. Existing rows are kept.",
                "produces": ["application/json"],
                "tags": ["seed"],
                "summary": "Seed one week",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SeedResponse"}},
                    "401": {"description": "Missing or invalid seed key", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/signup": {
            "post": {
                "description": "Register a new user and return a session token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Create an account",
                "parameters": [
                    {"description": "Signup data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.SignupResponse"}},
                    "400": {"description": "Invalid input or email already registered", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/stocks": {
            "get": {
                "description": "Rows for every company on the given day, with company names. Defaults to today.",
                "produces": ["application/json"],
                "tags": ["market"],
                "summary": "Daily stock rows",
                "parameters": [
                    {"type": "string", "description": "Day as YYYY-MM-DD", "name": "date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.StockResponse"}}},
                    "400": {"description": "Invalid date", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.CompanyResponse": {
            "type": "object",
            "properties": {
                "latest_market": {"$ref": "#/definitions/handlers.StockResponse"},
                "profile": {"$ref": "#/definitions/models.Company"}
            }
        },
        "handlers.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handlers.ErrorDetail"}
            }
        },
        "handlers.FavoriteRequest": {
            "type": "object",
            "required": ["stock_symbol", "user_id"],
            "properties": {
                "stock_symbol": {"type": "string"},
                "user_id": {"type": "integer", "minimum": 1}
            }
        },
        "handlers.IndexResponse": {
            "type": "object",
            "properties": {
                "confidence_lower": {"type": "number"},
                "confidence_upper": {"type": "number"},
                "date": {"type": "string", "example": "2026-10-19"},
                "high": {"type": "number"},
                "last": {"type": "number"},
                "low": {"type": "number"},
                "open": {"type": "number"},
                "pred_close": {"type": "number"},
                "volume": {"type": "integer"}
            }
        },
        "handlers.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handlers.LoginResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "token": {"type": "string"},
                "user": {"type": "string"},
                "user_id": {"type": "integer"}
            }
        },
        "handlers.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "handlers.SeedResponse": {
            "type": "object",
            "properties": {
                "companies_created": {"type": "integer"},
                "index_created": {"type": "integer"},
                "message": {"type": "string"},
                "stocks_created": {"type": "integer"}
            }
        },
        "handlers.SignupRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "maxLength": 100},
                "firstName": {"type": "string", "maxLength": 50},
                "lastName": {"type": "string", "maxLength": 50},
                "password": {"type": "string", "maxLength": 128},
                "phone": {"type": "string"}
            }
        },
        "handlers.SignupResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "token": {"type": "string"},
                "user_id": {"type": "integer"}
            }
        },
        "handlers.StockResponse": {
            "type": "object",
            "properties": {
                "confidence_lower": {"type": "number"},
                "confidence_upper": {"type": "number"},
                "date": {"type": "string", "example": "2026-10-19"},
                "high": {"type": "number"},
                "last": {"type": "number"},
                "low": {"type": "number"},
                "name": {"type": "string"},
                "open": {"type": "number"},
                "pred_close": {"type": "number"},
                "symbol": {"type": "string"},
                "volume": {"type": "integer"}
            }
        },
        "models.Company": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "loss_per_share": {"type": "string"},
                "market_cap": {"type": "string"},
                "name": {"type": "string"},
                "sector": {"type": "string"},
                "status": {"type": "string"},
                "symbol": {"type": "string"},
                "total_assets": {"type": "string"},
                "total_liabilities": {"type": "string"},
                "volumetric_growth": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        },
        "SeedKey": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Nomix Trade API",
	Description:      "Synthetic stock market data, forecasts, and watchlists for the Nomix Trade dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
