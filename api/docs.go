// Package api holds the OpenAPI 2.0 document served by the swagger UI.
package api

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
        "/": {
            "get": {
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": [
                    "General"
                ],
                "summary": "API root",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.RootResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "General"
                ],
                "summary": "Get health",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1": {
            "get": {
                "description": "Returns general information about the v1 API",
                "tags": [
                    "v1"
                ],
                "summary": "v1 API",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.V1Response"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "v1"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/accounts/summary": {
            "post": {
                "description": "Returns the total balance, the pending charges on credit accounts and the funds available across all accounts",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Accounts"
                ],
                "summary": "Summarize accounts",
                "parameters": [
                    {
                        "description": "Accounts",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.AccountSummaryRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountSummaryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Accounts"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/archives": {
            "post": {
                "description": "Returns all transactions of a calendar year with totals, per category spend and a monthly breakdown",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analytics"
                ],
                "summary": "Archive a year",
                "parameters": [
                    {
                        "description": "Snapshot and year",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.ArchiveRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ArchiveResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Analytics"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/budgets/adjustments": {
            "post": {
                "description": "Changes the amount of a budget and records the adjustment in the compliance log",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Adjust a budget",
                "parameters": [
                    {
                        "description": "Budget and new amount",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetAdjustmentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetAdjustmentResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Budgets"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/budgets/analyses": {
            "post": {
                "description": "Returns the spend, remaining amount and daily limit for every budget",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Analyze budgets",
                "parameters": [
                    {
                        "description": "Budgets and snapshot",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetAnalysisRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetAnalysisResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Budgets"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/business-days/adjust": {
            "post": {
                "description": "Moves the date back to the latest business day on or before it",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Calendar"
                ],
                "summary": "Adjust to a business day",
                "parameters": [
                    {
                        "description": "Date and calendar options",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.BusinessDayAdjustRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BusinessDayAdjustResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Calendar"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/comparisons": {
            "post": {
                "description": "Compares the spend per category of two ranges, or of a period and the one before it",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analytics"
                ],
                "summary": "Compare periods",
                "parameters": [
                    {
                        "description": "Snapshot and ranges",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.ComparisonRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ComparisonResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Analytics"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/goals/projections": {
            "post": {
                "description": "Returns when each goal will be reached with its current contributions",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Goals"
                ],
                "summary": "Project goals",
                "parameters": [
                    {
                        "description": "Goals",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.GoalProjectionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalProjectionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Goals"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/holidays": {
            "get": {
                "description": "Returns all holidays of the year in the regime with their observed dates",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Calendar"
                ],
                "summary": "Get holidays",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Year",
                        "name": "year",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Holiday regime, 'bank' or 'federal'",
                        "name": "regime",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.HolidayListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Calendar"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/holidays/check": {
            "get": {
                "description": "Returns if the date is a holiday, either on its nominal or observed date, and if it is a business day",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Calendar"
                ],
                "summary": "Check a date",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Date in YYYY-MM-DD format",
                        "name": "date",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Holiday regime, 'bank' or 'federal'",
                        "name": "regime",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.HolidayCheckResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Calendar"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/pay-dates/next": {
            "post": {
                "description": "Returns the pay period following the last pay date. The pay date is moved back to a business day.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Calendar"
                ],
                "summary": "Next pay period",
                "parameters": [
                    {
                        "description": "Last pay date, frequency and calendar options",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.NextPayDateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.NextPayDateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Calendar"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/reports": {
            "post": {
                "description": "Builds the hierarchical expense report for a date range or a period",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analytics"
                ],
                "summary": "Create expense report",
                "parameters": [
                    {
                        "description": "Snapshot and range",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.ReportRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ReportResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Analytics"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/trends": {
            "post": {
                "description": "Returns the monthly spend of a category, its trend direction and the projected spend for a year",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analytics"
                ],
                "summary": "Project spending trend",
                "parameters": [
                    {
                        "description": "Snapshot and category",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.TrendRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TrendResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Analytics"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": [
                    "General"
                ],
                "summary": "API version",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.VersionResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        }
    },
    "definitions": {
        "analytics.AccountAvailability": {
            "type": "object",
            "properties": {
                "accountId": {
                    "type": "string",
                    "example": "af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"
                },
                "available": {
                    "description": "Credit limit plus balance for credit accounts, pending balance otherwise",
                    "type": "number",
                    "example": 2389.1
                },
                "balance": {
                    "type": "number",
                    "example": 2417.33
                },
                "name": {
                    "type": "string",
                    "example": "Everyday Checking"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "checking",
                        "savings",
                        "credit"
                    ],
                    "example": "checking"
                }
            }
        },
        "analytics.AccountSummary": {
            "type": "object",
            "properties": {
                "accounts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.AccountAvailability"
                    }
                },
                "netAvailableFunds": {
                    "type": "number",
                    "example": 16169.13
                },
                "totalBalance": {
                    "type": "number",
                    "example": 16217.33
                },
                "totalPendingCharges": {
                    "description": "Pending charges on credit accounts",
                    "type": "number",
                    "example": 48.2
                }
            }
        },
        "analytics.ArchiveSummary": {
            "type": "object",
            "properties": {
                "categorySummary": {
                    "description": "Rolled up spend for every category",
                    "type": "object",
                    "additionalProperties": {
                        "type": "number"
                    }
                },
                "monthlyBreakdown": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.MonthlySpending"
                    }
                },
                "netAmount": {
                    "type": "number",
                    "example": 16749.1
                },
                "totalIncome": {
                    "type": "number",
                    "example": 48000
                },
                "totalSpent": {
                    "type": "number",
                    "example": 31250.9
                },
                "totalTransactions": {
                    "type": "integer",
                    "example": 412
                }
            }
        },
        "analytics.CategoryChange": {
            "type": "object",
            "properties": {
                "difference": {
                    "type": "number",
                    "example": -35.1
                },
                "percentageChange": {
                    "type": "number",
                    "example": -8.2
                },
                "trend": {
                    "type": "string",
                    "enum": [
                        "up",
                        "down",
                        "stable"
                    ],
                    "example": "down"
                }
            }
        },
        "analytics.Comparison": {
            "type": "object",
            "properties": {
                "categoryChanges": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/analytics.CategoryChange"
                    }
                },
                "totalDifference": {
                    "type": "number",
                    "example": 150.25
                },
                "totalPercentageChange": {
                    "type": "number",
                    "example": 7.3
                }
            }
        },
        "analytics.DataPoint": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "example": 410.2
                },
                "cumulativeAmount": {
                    "type": "number",
                    "example": 1190.75
                },
                "date": {
                    "description": "First day of the month",
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-01"
                }
            }
        },
        "analytics.ExpenseCategoryReport": {
            "type": "object",
            "properties": {
                "averageTransaction": {
                    "type": "number",
                    "example": 35.32
                },
                "categoryId": {
                    "type": "string",
                    "example": "5b2e3d0c-88d0-4b4e-b8a4-52b0e0a33a7e"
                },
                "categoryName": {
                    "type": "string",
                    "example": "Food"
                },
                "monthlyBreakdown": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.MonthlySpending"
                    }
                },
                "parentCategoryId": {
                    "type": "string",
                    "example": "0e4c4a3e-1d8e-4f0a-93a7-7ac2dfe1bba9"
                },
                "percentageOfTotal": {
                    "type": "number",
                    "example": 27.5
                },
                "subcategories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.ExpenseCategoryReport"
                    }
                },
                "topMerchants": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.MerchantSpending"
                    }
                },
                "totalSpent": {
                    "type": "number",
                    "example": 812.4
                },
                "transactionCount": {
                    "type": "integer",
                    "example": 23
                }
            }
        },
        "analytics.ExpenseReport": {
            "type": "object",
            "properties": {
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.ExpenseCategoryReport"
                    }
                },
                "createdAt": {
                    "type": "string",
                    "example": "2024-04-01T08:00:00Z"
                },
                "endDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-31"
                },
                "formattedTotal": {
                    "description": "TotalSpent in the configured locale and currency",
                    "type": "string",
                    "example": "$ 2,954.17"
                },
                "id": {
                    "type": "string",
                    "example": "3f0c2a1b-7d4e-4a55-8c1e-0b1f2d3c4e5f"
                },
                "name": {
                    "type": "string",
                    "example": "Expense Report Jan 01 - Mar 31, 2024"
                },
                "startDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-01-01"
                },
                "totalSpent": {
                    "description": "Sum of all categorized expenses",
                    "type": "number",
                    "example": 2954.17
                },
                "uncategorizedSpent": {
                    "description": "Expenses without a category, not part of TotalSpent",
                    "type": "number",
                    "example": 120.0
                }
            }
        },
        "analytics.MerchantSpending": {
            "type": "object",
            "properties": {
                "lastTransactionDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-28"
                },
                "merchant": {
                    "type": "string",
                    "example": "Corner Grocery"
                },
                "totalSpent": {
                    "type": "number",
                    "example": 412.8
                },
                "transactionCount": {
                    "type": "integer",
                    "example": 9
                }
            }
        },
        "analytics.MonthlySpending": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "example": 1320.45
                },
                "month": {
                    "type": "string",
                    "example": "Jan"
                },
                "transactionCount": {
                    "type": "integer",
                    "example": 14
                },
                "year": {
                    "type": "integer",
                    "example": 2024
                }
            }
        },
        "analytics.PeriodSummary": {
            "type": "object",
            "properties": {
                "categoryBreakdown": {
                    "description": "Rolled up spend for every category",
                    "type": "object",
                    "additionalProperties": {
                        "type": "number"
                    }
                },
                "endDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-31"
                },
                "startDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-01"
                },
                "totalSpent": {
                    "description": "All expenses in the range, categorized or not",
                    "type": "number",
                    "example": 2210.15
                }
            }
        },
        "analytics.SpendingTrend": {
            "type": "object",
            "properties": {
                "averageMonthlySpend": {
                    "type": "number",
                    "example": 396.92
                },
                "categoryId": {
                    "type": "string",
                    "example": "5b2e3d0c-88d0-4b4e-b8a4-52b0e0a33a7e"
                },
                "categoryName": {
                    "type": "string",
                    "example": "Groceries"
                },
                "dataPoints": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.DataPoint"
                    }
                },
                "projectedYearEnd": {
                    "type": "number",
                    "example": 4763.0
                },
                "trendDirection": {
                    "type": "string",
                    "enum": [
                        "up",
                        "down",
                        "stable"
                    ],
                    "example": "up"
                }
            }
        },
        "analytics.TimeComparisonData": {
            "type": "object",
            "properties": {
                "comparison": {
                    "$ref": "#/definitions/analytics.Comparison"
                },
                "currentPeriod": {
                    "$ref": "#/definitions/analytics.PeriodSummary"
                },
                "previousPeriod": {
                    "$ref": "#/definitions/analytics.PeriodSummary"
                }
            }
        },
        "analytics.TransactionArchive": {
            "type": "object",
            "properties": {
                "summary": {
                    "$ref": "#/definitions/analytics.ArchiveSummary"
                },
                "transactions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Transaction"
                    }
                },
                "year": {
                    "type": "integer",
                    "example": 2024
                }
            }
        },
        "budget.Analysis": {
            "type": "object",
            "properties": {
                "budgetId": {
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "budgetedAmount": {
                    "type": "number",
                    "example": 450
                },
                "categoryId": {
                    "type": "string",
                    "example": "5b2e3d0c-88d0-4b4e-b8a4-52b0e0a33a7e"
                },
                "dailyLimit": {
                    "type": "number",
                    "example": 11.46
                },
                "daysRemaining": {
                    "type": "integer",
                    "example": 12
                },
                "isOverBudget": {
                    "type": "boolean",
                    "example": false
                },
                "percentageUsed": {
                    "type": "number",
                    "example": 69.43
                },
                "remainingAmount": {
                    "description": "Negative when the budget is overspent",
                    "type": "number",
                    "example": 137.55
                },
                "spentAmount": {
                    "type": "number",
                    "example": 312.45
                }
            }
        },
        "calendar.Holiday": {
            "type": "object",
            "properties": {
                "date": {
                    "description": "The nominal date of the holiday",
                    "type": "string",
                    "format": "date",
                    "example": "2026-07-04"
                },
                "description": {
                    "type": "string",
                    "example": "July 4th"
                },
                "name": {
                    "type": "string",
                    "example": "Independence Day"
                },
                "observedDate": {
                    "description": "The date the holiday is observed on",
                    "type": "string",
                    "format": "date",
                    "example": "2026-07-03"
                },
                "restricted": {
                    "description": "Only observed by a subset of employees, e.g. Inauguration Day",
                    "type": "boolean"
                }
            }
        },
        "goal.Projection": {
            "type": "object",
            "properties": {
                "estimatedCompletionDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2026-04-15"
                },
                "goalId": {
                    "type": "string",
                    "example": "9b0f9f3c-5e47-4bd2-9f0a-3c0de4a9a3f1"
                },
                "monthlyContribution": {
                    "description": "Contribution normalized to a month",
                    "type": "number",
                    "example": 200
                },
                "monthsRemaining": {
                    "type": "integer",
                    "example": 25
                },
                "percentageComplete": {
                    "type": "number",
                    "example": 50
                },
                "remainingAmount": {
                    "type": "number",
                    "example": 5000
                },
                "requiredMonthlyContribution": {
                    "type": "number",
                    "example": 200
                },
                "undefined": {
                    "type": "boolean",
                    "example": false
                }
            }
        },
        "httperror.Error": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "the start date must be set and must not be after the end date"
                }
            }
        },
        "models.Account": {
            "type": "object",
            "properties": {
                "balance": {
                    "description": "Current balance including pending transactions",
                    "type": "number",
                    "example": 2417.33
                },
                "creditLimit": {
                    "description": "Only set for credit accounts",
                    "type": "number",
                    "example": 5000
                },
                "id": {
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "institutionName": {
                    "description": "Name of the bank",
                    "type": "string",
                    "example": "First Federal Bank"
                },
                "maskedNumber": {
                    "type": "string",
                    "example": "****4321"
                },
                "name": {
                    "type": "string",
                    "example": "Everyday Checking"
                },
                "pendingBalance": {
                    "description": "Balance without pending transactions",
                    "type": "number",
                    "example": 2389.1
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "checking",
                        "savings",
                        "credit"
                    ],
                    "example": "checking"
                }
            }
        },
        "models.Budget": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "example": 450
                },
                "categoryId": {
                    "type": "string",
                    "example": "5b2e3d0c-88d0-4b4e-b8a4-52b0e0a33a7e"
                },
                "endDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-31"
                },
                "id": {
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "name": {
                    "type": "string",
                    "example": "Groceries March"
                },
                "period": {
                    "type": "string",
                    "enum": [
                        "monthly",
                        "pay-period"
                    ],
                    "example": "monthly"
                },
                "startDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-01"
                }
            }
        },
        "models.BudgetAdjustment": {
            "type": "object",
            "properties": {
                "adjustedBy": {
                    "type": "string",
                    "example": "User"
                },
                "budgetId": {
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "id": {
                    "type": "string",
                    "example": "c0ef3d2b-5fd9-4b64-9f2b-1f1f4f3b2c7a"
                },
                "newAmount": {
                    "type": "number",
                    "example": 450
                },
                "oldAmount": {
                    "type": "number",
                    "example": 400
                },
                "reason": {
                    "type": "string",
                    "example": "Manual adjustment"
                },
                "timestamp": {
                    "type": "string",
                    "example": "2024-03-14T09:26:53Z"
                }
            }
        },
        "models.Category": {
            "type": "object",
            "properties": {
                "color": {
                    "type": "string",
                    "example": "#22c55e"
                },
                "icon": {
                    "type": "string",
                    "example": "shopping-cart"
                },
                "id": {
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "name": {
                    "type": "string",
                    "example": "Groceries"
                },
                "parentId": {
                    "type": "string",
                    "example": "0e4c4a3e-1d8e-4f0a-93a7-7ac2dfe1bba9"
                }
            }
        },
        "models.Goal": {
            "type": "object",
            "properties": {
                "categoryId": {
                    "type": "string",
                    "example": "5b2e3d0c-88d0-4b4e-b8a4-52b0e0a33a7e"
                },
                "contributionAmount": {
                    "type": "number",
                    "example": 200
                },
                "contributionFrequency": {
                    "type": "string",
                    "enum": [
                        "weekly",
                        "bi-weekly",
                        "monthly",
                        "pay-period"
                    ],
                    "example": "monthly"
                },
                "currentAmount": {
                    "type": "number",
                    "example": 5000
                },
                "id": {
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "name": {
                    "type": "string",
                    "example": "Emergency fund"
                },
                "targetAmount": {
                    "type": "number",
                    "example": 10000
                },
                "targetDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2026-12-31"
                }
            }
        },
        "models.Transaction": {
            "type": "object",
            "properties": {
                "accountId": {
                    "type": "string",
                    "example": "af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"
                },
                "amount": {
                    "type": "number",
                    "example": -14.99
                },
                "categoryId": {
                    "type": "string",
                    "example": "5b2e3d0c-88d0-4b4e-b8a4-52b0e0a33a7e"
                },
                "date": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-01"
                },
                "description": {
                    "type": "string",
                    "example": "Monthly streaming subscription"
                },
                "id": {
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "merchant": {
                    "type": "string",
                    "example": "Streamflix"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "pending",
                        "cleared"
                    ],
                    "example": "cleared"
                }
            }
        },
        "router.RootLinks": {
            "type": "object",
            "properties": {
                "docs": {
                    "description": "Swagger API documentation",
                    "type": "string",
                    "example": "https://example.com/api/docs/index.html"
                },
                "healthz": {
                    "description": "Healthz endpoint",
                    "type": "string",
                    "example": "https://example.com/api/healthz"
                },
                "metrics": {
                    "description": "Endpoint returning Prometheus metrics",
                    "type": "string",
                    "example": "https://example.com/api/metrics"
                },
                "v1": {
                    "description": "List endpoint for all v1 endpoints",
                    "type": "string",
                    "example": "https://example.com/api/v1"
                },
                "version": {
                    "description": "Endpoint returning the version of the backend",
                    "type": "string",
                    "example": "https://example.com/api/version"
                }
            }
        },
        "router.RootResponse": {
            "type": "object",
            "properties": {
                "links": {
                    "$ref": "#/definitions/router.RootLinks"
                }
            }
        },
        "router.V1Links": {
            "type": "object",
            "properties": {
                "accounts": {
                    "description": "URL of the account endpoints",
                    "type": "string",
                    "example": "https://example.com/api/v1/accounts"
                },
                "archives": {
                    "description": "URL of the yearly archive endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/archives"
                },
                "budgets": {
                    "description": "URL of the budget endpoints",
                    "type": "string",
                    "example": "https://example.com/api/v1/budgets"
                },
                "businessDays": {
                    "description": "URL of the business day endpoints",
                    "type": "string",
                    "example": "https://example.com/api/v1/business-days"
                },
                "comparisons": {
                    "description": "URL of the period comparison endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/comparisons"
                },
                "goals": {
                    "description": "URL of the goal endpoints",
                    "type": "string",
                    "example": "https://example.com/api/v1/goals"
                },
                "holidays": {
                    "description": "URL of the holiday list endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/holidays"
                },
                "payDates": {
                    "description": "URL of the pay date endpoints",
                    "type": "string",
                    "example": "https://example.com/api/v1/pay-dates"
                },
                "reports": {
                    "description": "URL of the expense report endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/reports"
                },
                "trends": {
                    "description": "URL of the spending trend endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/trends"
                }
            }
        },
        "router.V1Response": {
            "type": "object",
            "properties": {
                "links": {
                    "description": "Links for the v1 API",
                    "allOf": [
                        {
                            "$ref": "#/definitions/router.V1Links"
                        }
                    ]
                }
            }
        },
        "router.VersionObject": {
            "type": "object",
            "properties": {
                "version": {
                    "description": "the running version of the engine",
                    "type": "string",
                    "example": "1.1.0"
                }
            }
        },
        "router.VersionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data object for the version endpoint",
                    "allOf": [
                        {
                            "$ref": "#/definitions/router.VersionObject"
                        }
                    ]
                }
            }
        },
        "types.Range": {
            "type": "object",
            "properties": {
                "end": {
                    "description": "Last day of the range, inclusive",
                    "type": "string",
                    "format": "date",
                    "example": "2024-01-31"
                },
                "start": {
                    "description": "First day of the range",
                    "type": "string",
                    "format": "date",
                    "example": "2024-01-01"
                }
            }
        },
        "v1.AccountSummaryRequest": {
            "type": "object",
            "properties": {
                "accounts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Account"
                    }
                }
            }
        },
        "v1.AccountSummaryResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/analytics.AccountSummary"
                }
            }
        },
        "v1.ArchiveRequest": {
            "type": "object",
            "properties": {
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Category"
                    }
                },
                "transactions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Transaction"
                    }
                },
                "year": {
                    "description": "Calendar year to archive",
                    "type": "integer",
                    "example": 2023
                }
            }
        },
        "v1.ArchiveResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/analytics.TransactionArchive"
                }
            }
        },
        "v1.BudgetAdjustment": {
            "type": "object",
            "properties": {
                "adjustment": {
                    "description": "The audit record of the change",
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.BudgetAdjustment"
                        }
                    ]
                },
                "budget": {
                    "description": "The budget with the new amount",
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Budget"
                        }
                    ]
                }
            }
        },
        "v1.BudgetAdjustmentRequest": {
            "type": "object",
            "properties": {
                "amount": {
                    "description": "The new amount, must be larger than zero",
                    "type": "string",
                    "example": "450.00"
                },
                "budget": {
                    "$ref": "#/definitions/models.Budget"
                },
                "reason": {
                    "description": "Defaults to \"Manual adjustment\"",
                    "type": "string",
                    "example": "Rent increase"
                }
            }
        },
        "v1.BudgetAdjustmentResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/v1.BudgetAdjustment"
                }
            }
        },
        "v1.BudgetAnalysisRequest": {
            "type": "object",
            "properties": {
                "budgets": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Budget"
                    }
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Category"
                    }
                },
                "today": {
                    "description": "Reference date for the remaining days. Defaults to today",
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "transactions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Transaction"
                    }
                }
            }
        },
        "v1.BudgetAnalysisResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/budget.Analysis"
                    }
                }
            }
        },
        "v1.BusinessDayAdjustRequest": {
            "type": "object",
            "properties": {
                "date": {
                    "description": "The date to adjust",
                    "type": "string",
                    "format": "date",
                    "example": "2026-07-04"
                },
                "extraHolidays": {
                    "description": "Additional days that are not business days",
                    "type": "array",
                    "items": {
                        "type": "string",
                        "format": "date"
                    }
                },
                "regime": {
                    "description": "Holiday regime, 'bank' or 'federal'. Defaults to 'bank'",
                    "type": "string",
                    "enum": [
                        "bank",
                        "federal"
                    ],
                    "example": "bank"
                }
            }
        },
        "v1.BusinessDayAdjustResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/v1.BusinessDayAdjustment"
                }
            }
        },
        "v1.BusinessDayAdjustment": {
            "type": "object",
            "properties": {
                "adjustedDate": {
                    "description": "Latest business day on or before the date",
                    "type": "string",
                    "format": "date",
                    "example": "2026-07-02"
                },
                "date": {
                    "type": "string",
                    "format": "date",
                    "example": "2026-07-04"
                },
                "isBusinessDay": {
                    "description": "Whether the date itself is a business day",
                    "type": "boolean",
                    "example": false
                }
            }
        },
        "v1.ComparisonRequest": {
            "type": "object",
            "properties": {
                "baseDate": {
                    "description": "Reference date for the period. Defaults to today",
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Category"
                    }
                },
                "current": {
                    "description": "Current range. Requires previous to be set",
                    "allOf": [
                        {
                            "$ref": "#/definitions/types.Range"
                        }
                    ]
                },
                "period": {
                    "description": "Used when no ranges are set: compares the period containing baseDate with the one before",
                    "type": "string",
                    "enum": [
                        "week",
                        "two-weeks",
                        "month",
                        "quarter",
                        "year",
                        "ytd",
                        "custom"
                    ],
                    "example": "month"
                },
                "previous": {
                    "description": "Previous range, must not overlap the current one",
                    "allOf": [
                        {
                            "$ref": "#/definitions/types.Range"
                        }
                    ]
                },
                "transactions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Transaction"
                    }
                }
            }
        },
        "v1.ComparisonResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/analytics.TimeComparisonData"
                }
            }
        },
        "v1.GoalProjectionRequest": {
            "type": "object",
            "properties": {
                "asOf": {
                    "description": "Reference date for the completion dates. Defaults to today",
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "goals": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Goal"
                    }
                }
            }
        },
        "v1.GoalProjectionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/goal.Projection"
                    }
                }
            }
        },
        "v1.HolidayCheck": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string",
                    "format": "date",
                    "example": "2026-07-03"
                },
                "isBusinessDay": {
                    "type": "boolean",
                    "example": false
                },
                "isHoliday": {
                    "type": "boolean",
                    "example": true
                },
                "name": {
                    "description": "Name of the holiday, if any",
                    "type": "string",
                    "example": "Independence Day"
                }
            }
        },
        "v1.HolidayCheckResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/v1.HolidayCheck"
                }
            }
        },
        "v1.HolidayListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of holidays, sorted by date",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/calendar.Holiday"
                    }
                }
            }
        },
        "v1.NextPayDate": {
            "type": "object",
            "properties": {
                "adjustedPayDate": {
                    "description": "The pay date moved to a business day",
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "daysUntilPayDate": {
                    "description": "Calendar days from today until the adjusted pay date, negative if it is in the past",
                    "type": "integer",
                    "example": 14
                },
                "endDate": {
                    "description": "The nominal next pay date",
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "payDate": {
                    "description": "The nominal next pay date",
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "startDate": {
                    "description": "Day after the last pay date",
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-01"
                }
            }
        },
        "v1.NextPayDateRequest": {
            "type": "object",
            "required": [
                "frequency"
            ],
            "properties": {
                "extraHolidays": {
                    "description": "Additional days that are not business days",
                    "type": "array",
                    "items": {
                        "type": "string",
                        "format": "date"
                    }
                },
                "frequency": {
                    "description": "One of 'weekly', 'bi-weekly', 'monthly', 'semi-monthly'",
                    "type": "string",
                    "enum": [
                        "weekly",
                        "bi-weekly",
                        "monthly",
                        "semi-monthly"
                    ],
                    "example": "semi-monthly"
                },
                "lastPayDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "regime": {
                    "description": "Holiday regime, 'bank' or 'federal'. Defaults to 'bank'",
                    "type": "string",
                    "enum": [
                        "bank",
                        "federal"
                    ],
                    "example": "bank"
                }
            }
        },
        "v1.NextPayDateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/v1.NextPayDate"
                }
            }
        },
        "v1.ReportRequest": {
            "type": "object",
            "properties": {
                "baseDate": {
                    "description": "Reference date for the period. Defaults to today",
                    "type": "string",
                    "format": "date",
                    "example": "2024-02-15"
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Category"
                    }
                },
                "endDate": {
                    "description": "Last day of the report, inclusive",
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-31"
                },
                "period": {
                    "description": "Used when no dates are set: the period containing baseDate",
                    "type": "string",
                    "enum": [
                        "week",
                        "two-weeks",
                        "month",
                        "quarter",
                        "year",
                        "ytd",
                        "custom"
                    ],
                    "example": "quarter"
                },
                "startDate": {
                    "description": "First day of the report",
                    "type": "string",
                    "format": "date",
                    "example": "2024-01-01"
                },
                "transactions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Transaction"
                    }
                }
            }
        },
        "v1.ReportResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/analytics.ExpenseReport"
                }
            }
        },
        "v1.TrendRequest": {
            "type": "object",
            "properties": {
                "asOf": {
                    "description": "Last day of the window. Defaults to today",
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Category"
                    }
                },
                "categoryId": {
                    "description": "Category to project. Only expenses tagged with it count, subcategories are not included",
                    "type": "string",
                    "example": "5b2e3d0c-88d0-4b4e-b8a4-52b0e0a33a7e"
                },
                "months": {
                    "description": "Number of months, ending with the month of asOf. Defaults to the configured window",
                    "type": "integer",
                    "example": 6
                },
                "transactions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Transaction"
                    }
                }
            }
        },
        "v1.TrendResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/analytics.SpendingTrend"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
