// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

// Package docs registers the OpenAPI document served at /swagger/doc.json.
// Regenerate with: swag init -g cmd/server/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/recommendations": {
            "post": {
                "description": "Builds a feature profile from the rated games and ranks IGDB games sharing their genres, themes, perspectives and modes. Rated games are never recommended.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Get game recommendations",
                "parameters": [
                    {
                        "description": "IGDB game id to rating",
                        "name": "ratings",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "additionalProperties": {"type": "number"}
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Ranked recommendations, best first",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/models.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {"$ref": "#/definitions/recommend.ScoredGame"}
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Malformed body, bad ids or ratings, or too many entries",
                        "schema": {"$ref": "#/definitions/models.APIResponse"}
                    },
                    "429": {
                        "description": "Rate limit exceeded",
                        "schema": {"$ref": "#/definitions/models.APIResponse"}
                    }
                }
            }
        },
        "/games/search": {
            "get": {
                "description": "Case-insensitive name prefix search over main games, most highly rated first. Returns an empty list when IGDB is unavailable.",
                "produces": ["application/json"],
                "tags": ["Games"],
                "summary": "Search games by name",
                "parameters": [
                    {
                        "maxLength": 100,
                        "type": "string",
                        "description": "Name prefix",
                        "name": "name",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Matching games",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/models.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {"$ref": "#/definitions/igdb.SearchResult"}
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Missing or overlong name",
                        "schema": {"$ref": "#/definitions/models.APIResponse"}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Reports uptime, whether an IGDB token is cached and the IGDB circuit breaker state. Status is \"degraded\" while the breaker is open.",
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Get service health",
                "responses": {
                    "200": {
                        "description": "Health status",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/models.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/models.HealthStatus"}
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "igdb.SearchResult": {
            "type": "object",
            "properties": {
                "first_release_date": {"type": "integer"},
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "models.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true},
                "message": {"type": "string"}
            }
        },
        "models.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/models.APIError"},
                "metadata": {"$ref": "#/definitions/models.Metadata"},
                "status": {"type": "string"}
            }
        },
        "models.HealthStatus": {
            "type": "object",
            "properties": {
                "circuit_breaker": {"type": "string"},
                "igdb_token_valid": {"type": "boolean"},
                "status": {"type": "string"},
                "uptime": {"type": "number"},
                "version": {"type": "string"}
            }
        },
        "models.Metadata": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "query_time_ms": {"type": "integer"},
                "timestamp": {"type": "string"}
            }
        },
        "recommend.ScoredGame": {
            "type": "object",
            "properties": {
                "age_ratings": {"type": "array", "items": {"type": "integer"}},
                "game_modes": {"type": "array", "items": {"type": "integer"}},
                "genres": {"type": "array", "items": {"type": "integer"}},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "player_perspectives": {"type": "array", "items": {"type": "integer"}},
                "score": {"type": "number"},
                "themes": {"type": "array", "items": {"type": "integer"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "GameRec API",
	Description:      "Content-based game recommendations over the IGDB catalog.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
