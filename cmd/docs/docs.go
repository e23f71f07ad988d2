// Package docs holds the OpenAPI description of the HTTP API served at /swagger.
// It follows the layout swag init produces and must be kept in step with the
// handler annotations by hand.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{marshal .Schemes}},
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
		"/businesses/{business_id}/accounts": {
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
					"accounts"
				],
				"summary": "List accounts",
				"parameters": [
					{
						"type": "string",
						"description": "Business ID",
						"name": "business_id",
						"in": "path",
						"required": true
					},
					{
						"type": "boolean",
						"description": "Include deactivated accounts",
						"name": "includeInactive",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListAccountsResponse"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"accounts"
				],
				"summary": "Create an account",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Business ID",
						"name": "business_id",
						"in": "path",
						"required": true
					},
					{
						"description": "Account details",
						"name": "account",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateAccountRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.AccountResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/businesses/{business_id}/accounts/defaults": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"accounts"
				],
				"summary": "Seed the default chart of accounts",
				"parameters": [
					{
						"type": "string",
						"description": "Business ID",
						"name": "business_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SeedChartResponse"
						}
					}
				}
			}
		},
		"/businesses/{business_id}/accounts/by-code/{code}": {
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
					"accounts"
				],
				"summary": "Get an account by code",
				"parameters": [
					{
						"type": "string",
						"description": "Business ID",
						"name": "business_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "4-digit account code",
						"name": "code",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.AccountResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/businesses/{business_id}/accounts/{account_id}": {
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
					"accounts"
				],
				"summary": "Get an account",
				"parameters": [
					{
						"type": "string",
						"description": "Business ID",
						"name": "business_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Account ID",
						"name": "account_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.AccountResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
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
					"accounts"
				],
				"summary": "Update an account",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Business ID",
						"name": "business_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Account ID",
						"name": "account_id",
						"in": "path",
						"required": true
					},
					{
						"description": "Fields to change",
						"name": "account",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.UpdateAccountRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.AccountResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
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
					"accounts"
				],
				"summary": "Delete an account",
				"parameters": [
					{
						"type": "string",
						"description": "Business ID",
						"name": "business_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Account ID",
						"name": "account_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/businesses/{business_id}/accounts/{account_id}/deactivate": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"accounts"
				],
				"summary": "Deactivate an account",
				"parameters": [
					{
						"type": "string",
						"description": "Business ID",
						"name": "business_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Account ID",
						"name": "account_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/businesses/{business_id}/accounts/{account_id}/balance": {
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
					"accounts"
				],
				"summary": "Get account balance",
				"parameters": [
					{
						"type": "string",
						"description": "Business ID",
						"name": "business_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Account ID",
						"name": "account_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.AccountBalanceResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/businesses/{business_id}/accounts/{account_id}/ledger": {
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
					"accounts"
				],
				"summary": "Get the general ledger of an account",
				"parameters": [
					{
						"type": "string",
						"description": "Business ID",
						"name": "business_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Account ID",
						"name": "account_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.AccountLedgerResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/businesses/{business_id}/bank-accounts/{bank_account_id}/accounts": {
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
					"accounts"
				],
				"summary": "Remove accounts backing a bank account",
				"parameters": [
					{
						"type": "string",
						"description": "Business ID",
						"name": "business_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Bank account ID",
						"name": "bank_account_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.BankAccountCascadeResponse"
						}
					}
				}
			}
		},
		"/businesses/{business_id}/journal-entries": {
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
					"journal-entries"
				],
				"summary": "List journal entries",
				"parameters": [
					{
						"type": "string",
						"description": "Business ID",
						"name": "business_id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Page size (1-500)",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Token from the previous page",
						"name": "nextToken",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListJournalEntriesResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"journal-entries"
				],
				"summary": "Create a journal entry",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Business ID",
						"name": "business_id",
						"in": "path",
						"required": true
					},
					{
						"description": "Journal entry",
						"name": "entry",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateJournalEntryRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.JournalEntryResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/businesses/{business_id}/journal-entries/{entry_id}": {
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
					"journal-entries"
				],
				"summary": "Get a journal entry",
				"parameters": [
					{
						"type": "string",
						"description": "Business ID",
						"name": "business_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Entry ID",
						"name": "entry_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.JournalEntryResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"journal-entries"
				],
				"summary": "Update a draft",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Business ID",
						"name": "business_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Entry ID",
						"name": "entry_id",
						"in": "path",
						"required": true
					},
					{
						"description": "Fields to change",
						"name": "entry",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.UpdateJournalEntryRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.JournalEntryResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
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
					"journal-entries"
				],
				"summary": "Delete a draft",
				"parameters": [
					{
						"type": "string",
						"description": "Business ID",
						"name": "business_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Entry ID",
						"name": "entry_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/businesses/{business_id}/journal-entries/{entry_id}/post": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"journal-entries"
				],
				"summary": "Post a draft",
				"parameters": [
					{
						"type": "string",
						"description": "Business ID",
						"name": "business_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Entry ID",
						"name": "entry_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.JournalEntryResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/businesses/{business_id}/journal-entries/{entry_id}/reverse": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"journal-entries"
				],
				"summary": "Reverse a posted entry",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Business ID",
						"name": "business_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Entry ID",
						"name": "entry_id",
						"in": "path",
						"required": true
					},
					{
						"description": "Date and description of the reversal",
						"name": "reversal",
						"in": "body",
						"required": false,
						"schema": {
							"$ref": "#/definitions/dto.ReverseJournalEntryRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.JournalEntryResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/businesses/{business_id}/reports/trial-balance": {
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
					"reports"
				],
				"summary": "Generate trial balance report",
				"parameters": [
					{
						"type": "string",
						"description": "Business ID",
						"name": "business_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Report date (YYYY-MM-DD)",
						"name": "asOf",
						"in": "query"
					},
					{
						"type": "boolean",
						"description": "Hide accounts with a zero balance",
						"name": "hideZero",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.TrialBalanceResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/businesses/{business_id}/reports/general-ledger": {
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
					"reports"
				],
				"summary": "Generate the general ledger",
				"parameters": [
					{
						"type": "string",
						"description": "Business ID",
						"name": "business_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.GeneralLedgerResponse"
						}
					}
				}
			}
		},
		"/businesses/{business_id}/reports/profit-and-loss": {
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
					"reports"
				],
				"summary": "Generate profit and loss report",
				"parameters": [
					{
						"type": "string",
						"description": "Business ID",
						"name": "business_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Start date (YYYY-MM-DD)",
						"name": "from",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "End date (YYYY-MM-DD)",
						"name": "to",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ProfitAndLossResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/businesses/{business_id}/reports/balance-sheet": {
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
					"reports"
				],
				"summary": "Generate balance sheet report",
				"parameters": [
					{
						"type": "string",
						"description": "Business ID",
						"name": "business_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Report date (YYYY-MM-DD)",
						"name": "asOf",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.BalanceSheetResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/businesses/{business_id}/reports/integrity": {
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
					"reports"
				],
				"summary": "Check the books",
				"parameters": [
					{
						"type": "string",
						"description": "Business ID",
						"name": "business_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.IntegrityReport"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"handlers.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"kind": {
					"type": "string"
				},
				"rule": {
					"type": "string"
				},
				"lineNo": {
					"type": "integer"
				},
				"difference": {
					"type": "number"
				},
				"balance": {
					"description": "Posted balance, set for the insufficiency rules",
					"type": "number"
				},
				"required": {
					"description": "Amount the entry needs, set for the insufficiency rules",
					"type": "number"
				},
				"accountIDs": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"dto.CreateAccountRequest": {
			"type": "object",
			"required": [
				"accountType",
				"code",
				"name"
			],
			"properties": {
				"code": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"accountType": {
					"type": "string"
				},
				"subcategory": {
					"type": "string"
				},
				"inventoryRole": {
					"type": "string"
				},
				"bankAccountID": {
					"type": "string"
				}
			}
		},
		"dto.UpdateAccountRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"subcategory": {
					"type": "string"
				},
				"inventoryRole": {
					"type": "string"
				},
				"clearRole": {
					"type": "boolean"
				}
			}
		},
		"dto.AccountResponse": {
			"type": "object",
			"properties": {
				"accountID": {
					"type": "string"
				},
				"businessID": {
					"type": "string"
				},
				"code": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"accountType": {
					"type": "string"
				},
				"subcategory": {
					"type": "string"
				},
				"inventoryRole": {
					"type": "string"
				},
				"bankAccountID": {
					"type": "string"
				},
				"isActive": {
					"type": "boolean"
				},
				"createdAt": {
					"type": "string"
				}
			}
		},
		"dto.ListAccountsResponse": {
			"type": "object",
			"properties": {
				"accounts": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.AccountResponse"
					}
				}
			}
		},
		"dto.SeedChartResponse": {
			"type": "object",
			"properties": {
				"created": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.AccountResponse"
					}
				},
				"skipped": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"dto.AccountBalanceResponse": {
			"type": "object",
			"properties": {
				"accountID": {
					"type": "string"
				},
				"code": {
					"type": "string"
				},
				"balance": {
					"type": "number"
				}
			}
		},
		"dto.BankAccountCascadeResponse": {
			"type": "object",
			"properties": {
				"bankAccountID": {
					"type": "string"
				},
				"deleted": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"deactivated": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"dto.CreateJournalEntryRequest": {
			"type": "object",
			"required": [
				"entryDate"
			],
			"properties": {
				"entryDate": {
					"type": "string"
				},
				"referenceNumber": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"lines": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"accountID": {
								"type": "string"
							},
							"debitAmount": {
								"type": "number"
							},
							"creditAmount": {
								"type": "number"
							},
							"memo": {
								"type": "string"
							}
						}
					}
				},
				"post": {
					"type": "boolean"
				}
			}
		},
		"dto.UpdateJournalEntryRequest": {
			"type": "object",
			"properties": {
				"entryDate": {
					"type": "string"
				},
				"referenceNumber": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"lines": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"accountID": {
								"type": "string"
							},
							"debitAmount": {
								"type": "number"
							},
							"creditAmount": {
								"type": "number"
							},
							"memo": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"dto.ReverseJournalEntryRequest": {
			"type": "object",
			"properties": {
				"entryDate": {
					"type": "string"
				},
				"description": {
					"type": "string"
				}
			}
		},
		"dto.JournalEntryResponse": {
			"type": "object",
			"properties": {
				"entryID": {
					"type": "string"
				},
				"businessID": {
					"type": "string"
				},
				"entryDate": {
					"type": "string"
				},
				"referenceNumber": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"isPosted": {
					"type": "boolean"
				},
				"postedAt": {
					"type": "string"
				},
				"reversesEntryID": {
					"type": "string"
				},
				"totalDebit": {
					"type": "number"
				},
				"totalCredit": {
					"type": "number"
				},
				"lines": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"lineID": {
								"type": "string"
							},
							"lineNo": {
								"type": "integer"
							},
							"accountID": {
								"type": "string"
							},
							"accountCode": {
								"type": "string"
							},
							"accountName": {
								"type": "string"
							},
							"debitAmount": {
								"type": "number"
							},
							"creditAmount": {
								"type": "number"
							},
							"memo": {
								"type": "string"
							}
						}
					}
				},
				"createdAt": {
					"type": "string"
				},
				"createdBy": {
					"type": "string"
				},
				"lastUpdatedAt": {
					"type": "string"
				},
				"lastUpdatedBy": {
					"type": "string"
				}
			}
		},
		"dto.ListJournalEntriesResponse": {
			"type": "object",
			"properties": {
				"entries": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.JournalEntryResponse"
					}
				},
				"nextToken": {
					"type": "string"
				}
			}
		},
		"dto.TrialBalanceResponse": {
			"type": "object",
			"properties": {
				"asOf": {
					"type": "string"
				},
				"rows": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"accountID": {
								"type": "string"
							},
							"accountCode": {
								"type": "string"
							},
							"accountName": {
								"type": "string"
							},
							"accountType": {
								"type": "string"
							},
							"debit": {
								"type": "number"
							},
							"credit": {
								"type": "number"
							}
						}
					}
				},
				"isBalanced": {
					"type": "boolean"
				},
				"difference": {
					"type": "number"
				},
				"totals": {
					"type": "object",
					"properties": {
						"debit": {
							"type": "number"
						},
						"credit": {
							"type": "number"
						}
					}
				}
			}
		},
		"dto.AccountLedgerResponse": {
			"type": "object",
			"properties": {
				"accountID": {
					"type": "string"
				},
				"accountCode": {
					"type": "string"
				},
				"accountName": {
					"type": "string"
				},
				"accountType": {
					"type": "string"
				},
				"rows": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"entryID": {
								"type": "string"
							},
							"entryDate": {
								"type": "string"
							},
							"referenceNumber": {
								"type": "string"
							},
							"description": {
								"type": "string"
							},
							"debit": {
								"type": "number"
							},
							"credit": {
								"type": "number"
							},
							"balance": {
								"type": "number"
							}
						}
					}
				},
				"closingBalance": {
					"type": "number"
				}
			}
		},
		"dto.GeneralLedgerResponse": {
			"type": "object",
			"properties": {
				"accounts": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.AccountLedgerResponse"
					}
				}
			}
		},
		"dto.ProfitAndLossResponse": {
			"type": "object",
			"properties": {
				"fromDate": {
					"type": "string"
				},
				"toDate": {
					"type": "string"
				},
				"revenue": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"accountID": {
								"type": "string"
							},
							"accountCode": {
								"type": "string"
							},
							"accountName": {
								"type": "string"
							},
							"amount": {
								"type": "number"
							}
						}
					}
				},
				"costOfSales": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"accountID": {
								"type": "string"
							},
							"accountCode": {
								"type": "string"
							},
							"accountName": {
								"type": "string"
							},
							"amount": {
								"type": "number"
							}
						}
					}
				},
				"expenses": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"accountID": {
								"type": "string"
							},
							"accountCode": {
								"type": "string"
							},
							"accountName": {
								"type": "string"
							},
							"amount": {
								"type": "number"
							}
						}
					}
				},
				"otherIncome": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"accountID": {
								"type": "string"
							},
							"accountCode": {
								"type": "string"
							},
							"accountName": {
								"type": "string"
							},
							"amount": {
								"type": "number"
							}
						}
					}
				},
				"otherExpenses": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"accountID": {
								"type": "string"
							},
							"accountCode": {
								"type": "string"
							},
							"accountName": {
								"type": "string"
							},
							"amount": {
								"type": "number"
							}
						}
					}
				},
				"grossProfit": {
					"type": "number"
				},
				"netProfit": {
					"type": "number"
				}
			}
		},
		"dto.BalanceSheetResponse": {
			"type": "object",
			"properties": {
				"asOf": {
					"type": "string"
				},
				"assets": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"accountID": {
								"type": "string"
							},
							"accountCode": {
								"type": "string"
							},
							"accountName": {
								"type": "string"
							},
							"amount": {
								"type": "number"
							}
						}
					}
				},
				"liabilities": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"accountID": {
								"type": "string"
							},
							"accountCode": {
								"type": "string"
							},
							"accountName": {
								"type": "string"
							},
							"amount": {
								"type": "number"
							}
						}
					}
				},
				"equity": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"accountID": {
								"type": "string"
							},
							"accountCode": {
								"type": "string"
							},
							"accountName": {
								"type": "string"
							},
							"amount": {
								"type": "number"
							}
						}
					}
				},
				"retainedEarnings": {
					"type": "number"
				},
				"totalAssets": {
					"type": "number"
				},
				"totalLiabilitiesAndEquity": {
					"type": "number"
				},
				"isBalanced": {
					"type": "boolean"
				}
			}
		},
		"domain.IntegrityReport": {
			"type": "object",
			"properties": {
				"businessID": {
					"type": "string"
				},
				"trialBalanceBalanced": {
					"type": "boolean"
				},
				"difference": {
					"type": "number"
				},
				"unbalancedEntries": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"entryID": {
								"type": "string"
							},
							"referenceNumber": {
								"type": "string"
							},
							"totalDebit": {
								"type": "number"
							},
							"totalCredit": {
								"type": "number"
							}
						}
					}
				},
				"duplicateReferences": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"referenceNumber": {
								"type": "string"
							},
							"entryIDs": {
								"type": "array",
								"items": {
									"type": "string"
								}
							}
						}
					}
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and JWT token.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "BizLedger API",
	Description:      "Double-entry bookkeeping for small manufacturing businesses.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
