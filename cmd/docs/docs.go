// Package docs holds the Swagger 2.0 document served at /swagger. It mirrors the
// annotations in internal/handlers; regenerate with
// swag init -g cmd/cashflow_backend/main.go -o cmd/docs.
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
        "/dashboard": {
            "post": {
                "description": "Runs every analysis (summary, health, burn, alerts, forecast, ...) over the supplied ledger in one pass",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "dashboard"
                ],
                "summary": "Compute the cash-flow dashboard",
                "parameters": [
                    {
                        "type": "string",
                        "default": "current date",
                        "description": "Analysis date (YYYY-MM-DD)",
                        "name": "asOf",
                        "in": "query"
                    },
                    {
                        "description": "Business profile and transactions",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.DashboardRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.DashboardResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to generate dashboard",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/forecast": {
            "post": {
                "description": "Projects current-month income and the burn rate forward month by month",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "dashboard"
                ],
                "summary": "Project the cash balance",
                "parameters": [
                    {
                        "type": "string",
                        "default": "current date",
                        "description": "Analysis date (YYYY-MM-DD)",
                        "name": "asOf",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 6,
                        "description": "Forecast horizon in months (1-60)",
                        "name": "months",
                        "in": "query"
                    },
                    {
                        "description": "Business profile and transactions",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ForecastRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ForecastResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to generate forecast",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Liveness probe. The service keeps no state, so being up is being healthy.",
                "consumes": [
                    "*/*"
                ],
                "produces": [
                    "text/plain"
                ],
                "tags": [
                    "root"
                ],
                "summary": "Show the status of server.",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/what-if": {
            "post": {
                "description": "Applies hires and percentage changes to the current month and reports the new runway",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "dashboard"
                ],
                "summary": "Simulate a what-if scenario",
                "parameters": [
                    {
                        "type": "string",
                        "default": "current date",
                        "description": "Analysis date (YYYY-MM-DD)",
                        "name": "asOf",
                        "in": "query"
                    },
                    {
                        "description": "Ledger and scenario",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.WhatIfRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.WhatIfResult"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to simulate scenario",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.BurnBreakdown": {
            "type": "object",
            "properties": {
                "survivalBurn": {
                    "type": "string"
                },
                "growthBurn": {
                    "type": "string"
                },
                "wasteBurn": {
                    "type": "string"
                },
                "totalBurn": {
                    "type": "string"
                },
                "recommendations": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "domain.CFOInsight": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "hiring",
                        "expense",
                        "revenue",
                        "runway",
                        "general"
                    ]
                },
                "title": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "impact": {
                    "type": "string"
                },
                "priority": {
                    "type": "string",
                    "enum": [
                        "high",
                        "medium",
                        "low"
                    ]
                }
            }
        },
        "domain.CashFlowSummary": {
            "type": "object",
            "properties": {
                "currentBalance": {
                    "type": "string"
                },
                "totalIncome": {
                    "type": "string"
                },
                "totalExpenses": {
                    "type": "string"
                },
                "netCashFlow": {
                    "type": "string"
                },
                "burnRate": {
                    "type": "string"
                },
                "runwayMonths": {
                    "type": "integer"
                }
            }
        },
        "domain.CashHealthScore": {
            "type": "object",
            "properties": {
                "score": {
                    "type": "integer"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "critical",
                        "warning",
                        "moderate",
                        "healthy"
                    ]
                },
                "explanation": {
                    "type": "string"
                },
                "actionHint": {
                    "type": "string"
                },
                "factors": {
                    "$ref": "#/definitions/domain.HealthFactors"
                }
            }
        },
        "domain.Experiment": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "amount": {
                    "type": "string"
                },
                "date": {
                    "type": "string",
                    "format": "date-time"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "domain.ExperimentSummary": {
            "type": "object",
            "properties": {
                "totalSpend": {
                    "type": "string"
                },
                "experimentCount": {
                    "type": "integer"
                },
                "experiments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Experiment"
                    }
                },
                "noReturnExperiments": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "domain.FounderDrawImpact": {
            "type": "object",
            "properties": {
                "totalDraws": {
                    "type": "string"
                },
                "monthlyDrawAverage": {
                    "type": "string"
                },
                "runwayImpact": {
                    "type": "integer"
                },
                "warning": {
                    "type": "string"
                }
            }
        },
        "domain.HealthFactors": {
            "type": "object",
            "properties": {
                "balanceFactor": {
                    "type": "integer"
                },
                "burnRateFactor": {
                    "type": "integer"
                },
                "runwayFactor": {
                    "type": "integer"
                },
                "incomeTrendFactor": {
                    "type": "integer"
                },
                "expenseGrowthFactor": {
                    "type": "integer"
                }
            }
        },
        "domain.IncomeStability": {
            "type": "object",
            "properties": {
                "isStable": {
                    "type": "boolean"
                },
                "volatilityScore": {
                    "type": "integer"
                },
                "recurringPercentage": {
                    "type": "integer"
                },
                "warning": {
                    "type": "string"
                },
                "trend": {
                    "type": "string",
                    "enum": [
                        "increasing",
                        "stable",
                        "decreasing"
                    ]
                }
            }
        },
        "domain.Insight": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "info",
                        "warning",
                        "danger",
                        "success"
                    ]
                },
                "title": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "actionLabel": {
                    "type": "string"
                }
            }
        },
        "domain.MonthlyData": {
            "type": "object",
            "properties": {
                "key": {
                    "type": "string"
                },
                "month": {
                    "type": "string"
                },
                "income": {
                    "type": "string"
                },
                "expenses": {
                    "type": "string"
                },
                "balance": {
                    "type": "string"
                },
                "projectedBalance": {
                    "type": "string"
                }
            }
        },
        "domain.PanicAlert": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "runway_critical",
                        "expense_spike",
                        "consecutive_loss",
                        "payment_due"
                    ]
                },
                "title": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "severity": {
                    "type": "string",
                    "enum": [
                        "info",
                        "warning",
                        "critical"
                    ]
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "isRead": {
                    "type": "boolean"
                },
                "isDismissed": {
                    "type": "boolean"
                }
            }
        },
        "domain.SafeToSpend": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string"
                },
                "percentage": {
                    "type": "integer"
                },
                "explanation": {
                    "type": "string"
                },
                "minRunwayProtected": {
                    "type": "integer"
                }
            }
        },
        "domain.SilentExpenseKiller": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "monthlyAmount": {
                    "type": "string"
                },
                "growthRate": {
                    "type": "number"
                },
                "actionSuggestion": {
                    "type": "string"
                },
                "severity": {
                    "type": "string",
                    "enum": [
                        "low",
                        "medium",
                        "high"
                    ]
                }
            }
        },
        "domain.WeeklyAction": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "action": {
                    "type": "string"
                },
                "category": {
                    "type": "string",
                    "enum": [
                        "review",
                        "reduce",
                        "increase",
                        "delay"
                    ]
                },
                "isCompleted": {
                    "type": "boolean"
                },
                "reason": {
                    "type": "string"
                }
            }
        },
        "domain.WhatIfResult": {
            "type": "object",
            "properties": {
                "newIncome": {
                    "type": "string"
                },
                "newExpenses": {
                    "type": "string"
                },
                "newBurnRate": {
                    "type": "string"
                },
                "newRunway": {
                    "type": "integer"
                },
                "cashOutDate": {
                    "type": "string",
                    "format": "date-time"
                },
                "impactSummary": {
                    "type": "string"
                },
                "newNetCashFlow": {
                    "type": "string"
                }
            }
        },
        "dto.BusinessRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "service",
                        "product",
                        "saas",
                        "retail",
                        "other"
                    ]
                },
                "currency": {
                    "type": "string"
                },
                "startingBalance": {
                    "type": "number"
                },
                "monthlyFixedExpenses": {
                    "type": "number"
                }
            }
        },
        "dto.DashboardRequest": {
            "type": "object",
            "properties": {
                "business": {
                    "$ref": "#/definitions/dto.BusinessRequest"
                },
                "transactions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.TransactionRequest"
                    }
                },
                "minRunwayMonths": {
                    "type": "integer"
                },
                "dismissedAlertIds": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.DashboardResponse": {
            "type": "object",
            "properties": {
                "asOf": {
                    "type": "string",
                    "format": "date-time"
                },
                "currency": {
                    "type": "string"
                },
                "summary": {
                    "$ref": "#/definitions/domain.CashFlowSummary"
                },
                "history": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.MonthlyData"
                    }
                },
                "health": {
                    "$ref": "#/definitions/domain.CashHealthScore"
                },
                "safeToSpend": {
                    "$ref": "#/definitions/domain.SafeToSpend"
                },
                "burn": {
                    "$ref": "#/definitions/domain.BurnBreakdown"
                },
                "stability": {
                    "$ref": "#/definitions/domain.IncomeStability"
                },
                "insights": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Insight"
                    }
                },
                "cfoInsights": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.CFOInsight"
                    }
                },
                "alerts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.PanicAlert"
                    }
                },
                "silentKillers": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.SilentExpenseKiller"
                    }
                },
                "weeklyActions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.WeeklyAction"
                    }
                },
                "forecast": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.MonthlyData"
                    }
                },
                "experiments": {
                    "$ref": "#/definitions/domain.ExperimentSummary"
                },
                "founderDraws": {
                    "$ref": "#/definitions/domain.FounderDrawImpact"
                },
                "asOfDate": {
                    "type": "string"
                },
                "shortfallMonth": {
                    "type": "integer"
                }
            }
        },
        "dto.ForecastRequest": {
            "type": "object",
            "properties": {
                "business": {
                    "$ref": "#/definitions/dto.BusinessRequest"
                },
                "transactions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.TransactionRequest"
                    }
                }
            }
        },
        "dto.ForecastResponse": {
            "type": "object",
            "properties": {
                "asOf": {
                    "type": "string"
                },
                "months": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.MonthlyData"
                    }
                },
                "shortfallMonth": {
                    "type": "integer"
                }
            }
        },
        "dto.ScenarioRequest": {
            "type": "object",
            "properties": {
                "hireCount": {
                    "type": "integer"
                },
                "avgSalary": {
                    "type": "number"
                },
                "marketingChange": {
                    "type": "number"
                },
                "revenueChange": {
                    "type": "number"
                },
                "expenseChange": {
                    "type": "number"
                }
            }
        },
        "dto.TransactionRequest": {
            "type": "object",
            "required": [
                "category",
                "date",
                "type"
            ],
            "properties": {
                "id": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "income",
                        "expense"
                    ]
                },
                "amount": {
                    "type": "number"
                },
                "date": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "isRecurring": {
                    "type": "boolean"
                },
                "recurringFrequency": {
                    "type": "string",
                    "enum": [
                        "weekly",
                        "monthly",
                        "yearly"
                    ]
                },
                "burnCategory": {
                    "type": "string",
                    "enum": [
                        "survival",
                        "growth",
                        "waste"
                    ]
                },
                "isExperiment": {
                    "type": "boolean"
                },
                "experimentNotes": {
                    "type": "string"
                },
                "isFounderDraw": {
                    "type": "boolean"
                }
            }
        },
        "dto.WhatIfRequest": {
            "type": "object",
            "properties": {
                "business": {
                    "$ref": "#/definitions/dto.BusinessRequest"
                },
                "transactions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.TransactionRequest"
                    }
                },
                "scenario": {
                    "$ref": "#/definitions/dto.ScenarioRequest"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Cash Flow Dashboard API",
	Description:      "Cash-flow analysis for small businesses: runway, burn, health score, alerts and forecasts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
