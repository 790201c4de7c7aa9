package service

import (
	"pumpsizer/hydraulic"
	"time"
)

// CalculationInput is what the transport layer hands over: the hydraulic
// system plus workflow metadata the engine does not care about.
type CalculationInput struct {
	ProjectName string
	// Temperature is the fluid temperature in °C. It matters only when fluid
	// properties are left to the water defaults; zero means 20 °C.
	Temperature float64
	System      hydraulic.SystemConfiguration
}

// CalculationOutcome pairs a persisted case id with the engine result.
type CalculationOutcome struct {
	CaseID      string                      `json:"caseId"`
	ProjectName string                      `json:"projectName,omitempty"`
	Result      hydraulic.CalculationResult `json:"result"`
}

// CaseSummary is the listing view of a stored calculation case.
type CaseSummary struct {
	CaseID         string    `json:"caseId"`
	ProjectName    string    `json:"projectName,omitempty"`
	DesignFlow     float64   `json:"designFlow"`
	Hmt            float64   `json:"hmt"`
	NpshMargin     float64   `json:"npshMargin"`
	CavitationRisk bool      `json:"cavitationRisk"`
	HasReport      bool      `json:"hasReport"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CaseDetail is a fully hydrated case: the summary plus the stored request
// and result exactly as they were computed.
type CaseDetail struct {
	CaseSummary
	Request hydraulic.SystemConfiguration `json:"request"`
	Result  hydraulic.CalculationResult   `json:"result"`
}
