package model

import "time"

// PipeMaterial is one row of the pipe material catalog. Roughness is stored
// in meters; Model picks the friction formulation ("colebrook" or
// "hazen-williams").
type PipeMaterial struct {
	ID             int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string  `gorm:"type:varchar(64);uniqueIndex;not null" json:"name"`
	Roughness      float64 `gorm:"not null" json:"roughness"`
	HazenWilliamsC float64 `gorm:"column:hazen_williams_c" json:"hazenWilliamsC"`
	Model          string  `gorm:"type:varchar(32);not null;default:'colebrook'" json:"model"`
	Description    string  `gorm:"type:varchar(255)" json:"description"`
}

func (PipeMaterial) TableName() string { return "pipe_materials" }

// CalculationCase is one stored sizing run. The full request and result are
// kept as JSON; the headline numbers are lifted into columns so listings
// never have to parse the blobs.
type CalculationCase struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CaseID         string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"caseId"`
	ProjectName    string    `gorm:"type:varchar(128);index" json:"projectName"`
	RequestJSON    string    `gorm:"type:longtext" json:"-"`
	ResultJSON     string    `gorm:"type:longtext" json:"-"`
	DesignFlow     float64   `json:"designFlow"`
	Hmt            float64   `json:"hmt"`
	NpshMargin     float64   `json:"npshMargin"`
	CavitationRisk bool      `json:"cavitationRisk"`
	ReportPath     string    `gorm:"type:varchar(255)" json:"reportPath,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (CalculationCase) TableName() string { return "calculation_cases" }
