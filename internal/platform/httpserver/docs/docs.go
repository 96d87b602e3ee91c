// Package docs holds the OpenAPI document served under /swagger. It mirrors
// the swag annotations on the asset-service HTTP handlers and the DTOs in
// transport/http; regenerate with swag init when either changes.
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
        "/add-to-team": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "team"
                ],
                "summary": "Affiliate an employee directly",
                "parameters": [
                    {
                        "description": "Employee",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/httptransport.AddToTeamRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httptransport.AddToTeamResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/all-requests": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "requests"
                ],
                "summary": "List company requests",
                "parameters": [
                    {
                        "description": "Requester name or email substring",
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "pending, approved, rejected or returned",
                        "name": "status",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/httptransport.RequestDTO"
                            }
                        }
                    }
                }
            }
        },
        "/asset-requests": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "requests"
                ],
                "summary": "Request an asset",
                "parameters": [
                    {
                        "description": "Request payload",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/httptransport.SubmitRequestRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httptransport.SubmitRequestResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/assets": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Adds an asset to the HR company's inventory.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "assets"
                ],
                "summary": "Create asset",
                "parameters": [
                    {
                        "description": "Asset payload",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/httptransport.CreateAssetRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/httptransport.CreateAssetResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    }
                }
            },
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Paginated inventory of the caller's company.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "assets"
                ],
                "summary": "List HR assets",
                "parameters": [
                    {
                        "description": "Page number (default 1)",
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    },
                    {
                        "description": "Page size (default 10, max 100)",
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    },
                    {
                        "description": "Product name substring",
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Returnable or Non-returnable",
                        "name": "type",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "dateAdded, productName, productQuantity, availableQuantity, productType",
                        "name": "sort",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "asc or desc",
                        "name": "order",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ListAssetsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/available-assets": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "assets"
                ],
                "summary": "List requestable assets",
                "parameters": [
                    {
                        "description": "Product name substring",
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Returnable or Non-returnable",
                        "name": "type",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/httptransport.AssetDTO"
                            }
                        }
                    }
                }
            }
        },
        "/available-employees": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "team"
                ],
                "summary": "List employees without any affiliation",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/httptransport.UserDTO"
                            }
                        }
                    }
                }
            }
        },
        "/employee-stats": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "stats"
                ],
                "summary": "Employee dashboard summary",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httptransport.EmployeeStatsResponse"
                        }
                    }
                }
            }
        },
        "/hr-package-status": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "team"
                ],
                "summary": "Caller capacity",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httptransport.PackageStatusResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/hr-stats": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "stats"
                ],
                "summary": "HR dashboard summary",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httptransport.HRStatsResponse"
                        }
                    }
                }
            }
        },
        "/my-employees": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "team"
                ],
                "summary": "List affiliated employees",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httptransport.MyEmployeesResponse"
                        }
                    }
                }
            }
        },
        "/my-requests": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "requests"
                ],
                "summary": "List own requests",
                "parameters": [
                    {
                        "description": "Asset name substring",
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "pending, approved, rejected or returned",
                        "name": "status",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/httptransport.RequestDTO"
                            }
                        }
                    }
                }
            }
        },
        "/my-team": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Returns the HR account first, followed by its affiliated employees.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "team"
                ],
                "summary": "List caller's team",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/httptransport.UserDTO"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/packages": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "List slot packages",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/httptransport.PackageDTO"
                            }
                        }
                    }
                }
            }
        },
        "/payment-checkout-session": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Start slot checkout",
                "parameters": [
                    {
                        "description": "Price and member count",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/httptransport.CheckoutRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httptransport.CheckoutResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/payment-history": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Payment history",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/httptransport.PaymentDTO"
                            }
                        }
                    }
                }
            }
        },
        "/payment-success": {
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Raises the package limit once per payment intent.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Confirm a paid checkout",
                "parameters": [
                    {
                        "description": "Checkout session id",
                        "name": "session_id",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ConfirmPaymentResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/remove-employee/{email}": {
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "team"
                ],
                "summary": "Remove an employee from the team",
                "parameters": [
                    {
                        "description": "Employee email",
                        "name": "email",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httptransport.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/requests/approve/{id}": {
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Approves a pending request, takes one unit of stock and affiliates the requester.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "requests"
                ],
                "summary": "Approve request",
                "parameters": [
                    {
                        "description": "Request id",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ApproveRequestResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/requests/cancel/{id}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "requests"
                ],
                "summary": "Cancel own pending request",
                "parameters": [
                    {
                        "description": "Request id",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httptransport.CancelRequestResponse"
                        }
                    }
                }
            }
        },
        "/requests/reject/{id}": {
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "requests"
                ],
                "summary": "Reject request",
                "parameters": [
                    {
                        "description": "Request id",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httptransport.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/requests/return/{id}": {
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "requests"
                ],
                "summary": "Return an approved asset",
                "parameters": [
                    {
                        "description": "Request id",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httptransport.MessageResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/users": {
            "post": {
                "description": "Inserts the user unless the email already exists.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Register user on first sign-in",
                "parameters": [
                    {
                        "description": "User profile",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/httptransport.RegisterUserRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httptransport.RegisterUserResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/users/{email}/role": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Get user role",
                "parameters": [
                    {
                        "description": "User email",
                        "name": "email",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httptransport.UserRoleResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httptransport.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "httptransport.AddToTeamRequest": {
            "type": "object",
            "properties": {
                "employeeEmail": {
                    "type": "string"
                },
                "employeeName": {
                    "type": "string"
                }
            }
        },
        "httptransport.AddToTeamResponse": {
            "type": "object",
            "properties": {
                "affiliation": {
                    "$ref": "#/definitions/httptransport.AffiliationDTO"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "httptransport.AffiliationDTO": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "affiliationDate": {
                    "type": "string"
                },
                "companyLogo": {
                    "type": "string"
                },
                "companyName": {
                    "type": "string"
                },
                "employeeEmail": {
                    "type": "string"
                },
                "employeeName": {
                    "type": "string"
                },
                "hrEmail": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "httptransport.ApproveRequestResponse": {
            "type": "object",
            "properties": {
                "affiliated": {
                    "type": "boolean"
                },
                "message": {
                    "type": "string"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "httptransport.AssetDTO": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "availableQuantity": {
                    "type": "integer"
                },
                "companyName": {
                    "type": "string"
                },
                "dateAdded": {
                    "type": "string"
                },
                "hrEmail": {
                    "type": "string"
                },
                "productImage": {
                    "type": "string"
                },
                "productName": {
                    "type": "string"
                },
                "productQuantity": {
                    "type": "integer"
                },
                "productType": {
                    "type": "string"
                }
            }
        },
        "httptransport.AvailableAssetsRequest": {
            "type": "object",
            "properties": {}
        },
        "httptransport.CancelRequestResponse": {
            "type": "object",
            "properties": {
                "deletedCount": {
                    "type": "integer"
                }
            }
        },
        "httptransport.CheckoutRequest": {
            "type": "object",
            "properties": {
                "members": {
                    "type": "integer"
                },
                "price": {
                    "type": "number"
                }
            }
        },
        "httptransport.CheckoutResponse": {
            "type": "object",
            "properties": {
                "url": {
                    "type": "string"
                }
            }
        },
        "httptransport.ConfirmPaymentRequest": {
            "type": "object",
            "properties": {}
        },
        "httptransport.ConfirmPaymentResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "newLimit": {
                    "type": "integer"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "httptransport.CreateAssetRequest": {
            "type": "object",
            "properties": {
                "productImage": {
                    "type": "string"
                },
                "productName": {
                    "type": "string"
                },
                "productQuantity": {
                    "type": "integer"
                },
                "productType": {
                    "type": "string"
                }
            }
        },
        "httptransport.CreateAssetResponse": {
            "type": "object",
            "properties": {
                "asset": {
                    "$ref": "#/definitions/httptransport.AssetDTO"
                },
                "insertedId": {
                    "type": "string"
                }
            }
        },
        "httptransport.EmployeeStatsResponse": {
            "type": "object",
            "properties": {
                "affiliation": {
                    "$ref": "#/definitions/httptransport.AffiliationDTO"
                },
                "monthlyRequests": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/httptransport.RequestDTO"
                    }
                },
                "pendingRequests": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/httptransport.RequestDTO"
                    }
                }
            }
        },
        "httptransport.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "httptransport.HRStatsResponse": {
            "type": "object",
            "properties": {
                "pendingRequests": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/httptransport.RequestDTO"
                    }
                },
                "pieData": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/httptransport.PieSliceDTO"
                    }
                },
                "totalRequests": {
                    "type": "integer"
                }
            }
        },
        "httptransport.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                }
            }
        },
        "httptransport.ListAssetsRequest": {
            "type": "object",
            "properties": {}
        },
        "httptransport.ListAssetsResponse": {
            "type": "object",
            "properties": {
                "assets": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/httptransport.AssetDTO"
                    }
                },
                "currentPage": {
                    "type": "integer"
                },
                "totalAssets": {
                    "type": "integer"
                },
                "totalPages": {
                    "type": "integer"
                }
            }
        },
        "httptransport.ListRequestsRequest": {
            "type": "object",
            "properties": {}
        },
        "httptransport.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "httptransport.MyEmployeesResponse": {
            "type": "object",
            "properties": {
                "currentEmployees": {
                    "type": "integer"
                },
                "employees": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/httptransport.AffiliationDTO"
                    }
                },
                "packageLimit": {
                    "type": "integer"
                }
            }
        },
        "httptransport.PackageDTO": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "employeeLimit": {
                    "type": "integer"
                },
                "features": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "name": {
                    "type": "string"
                },
                "price": {
                    "type": "number"
                }
            }
        },
        "httptransport.PackageStatusResponse": {
            "type": "object",
            "properties": {
                "currentEmployees": {
                    "type": "integer"
                },
                "packageLimit": {
                    "type": "integer"
                }
            }
        },
        "httptransport.PaymentDTO": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "addedSlots": {
                    "type": "integer"
                },
                "amount": {
                    "type": "number"
                },
                "date": {
                    "type": "string"
                },
                "hrEmail": {
                    "type": "string"
                },
                "sessionId": {
                    "type": "string"
                },
                "transactionId": {
                    "type": "string"
                }
            }
        },
        "httptransport.PieSliceDTO": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "value": {
                    "type": "integer"
                }
            }
        },
        "httptransport.RegisterUserRequest": {
            "type": "object",
            "properties": {
                "companyLogo": {
                    "type": "string"
                },
                "companyName": {
                    "type": "string"
                },
                "dateOfBirth": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "photo": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                }
            },
            "required": [
                "email",
                "role"
            ]
        },
        "httptransport.RegisterUserResponse": {
            "type": "object",
            "properties": {
                "inserted": {
                    "type": "boolean"
                },
                "insertedId": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "httptransport.RequestDTO": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "approvalDate": {
                    "type": "string"
                },
                "assetId": {
                    "type": "string"
                },
                "assetImage": {
                    "type": "string"
                },
                "assetName": {
                    "type": "string"
                },
                "assetType": {
                    "type": "string"
                },
                "companyName": {
                    "type": "string"
                },
                "hrEmail": {
                    "type": "string"
                },
                "note": {
                    "type": "string"
                },
                "requestDate": {
                    "type": "string"
                },
                "requestStatus": {
                    "type": "string"
                },
                "requesterEmail": {
                    "type": "string"
                },
                "requesterName": {
                    "type": "string"
                },
                "returnDate": {
                    "type": "string"
                }
            }
        },
        "httptransport.SubmitRequestRequest": {
            "type": "object",
            "properties": {
                "assetId": {
                    "type": "string"
                },
                "note": {
                    "type": "string"
                },
                "requesterName": {
                    "type": "string"
                }
            },
            "required": [
                "assetId"
            ]
        },
        "httptransport.SubmitRequestResponse": {
            "type": "object",
            "properties": {
                "insertedId": {
                    "type": "string"
                },
                "request": {
                    "$ref": "#/definitions/httptransport.RequestDTO"
                }
            }
        },
        "httptransport.UserDTO": {
            "type": "object",
            "properties": {
                "companyLogo": {
                    "type": "string"
                },
                "companyName": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "currentEmployees": {
                    "type": "integer"
                },
                "dateOfBirth": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "lastUpgrade": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "packageLimit": {
                    "type": "integer"
                },
                "photo": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                }
            }
        },
        "httptransport.UserRoleResponse": {
            "type": "object",
            "properties": {
                "role": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Assetverse API",
	Description:      "HR asset management: inventory, requests, team affiliations and slot upgrades.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
