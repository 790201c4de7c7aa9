package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"os"
	"pumpsizer/hydraulic"
	"pumpsizer/model"
	"pumpsizer/pkg/logger"
)

// ErrCaseNotFound marks lookups for case ids that were never stored.
var ErrCaseNotFound = errors.New("calculation case not found")

const (
	defaultCaseLimit = 50
	maxCaseLimit     = 500
)

type Service struct {
	db      *gorm.DB
	catalog *hydraulic.Catalog
	reports ReportStore
}

// NewService loads the pipe material catalog from the database, seeding the
// table with the built-in defaults when it is empty.
func NewService(db *gorm.DB, reports ReportStore) (*Service, error) {
	catalog, err := loadCatalog(db)
	if err != nil {
		return nil, err
	}
	return &Service{
		db:      db,
		catalog: catalog,
		reports: reports,
	}, nil
}

func loadCatalog(db *gorm.DB) (*hydraulic.Catalog, error) {
	var rows []model.PipeMaterial
	if err := db.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load pipe materials: %w", err)
	}
	if len(rows) == 0 {
		for _, m := range hydraulic.DefaultMaterials() {
			rows = append(rows, model.PipeMaterial{
				Name:           m.Name,
				Roughness:      m.Roughness,
				HazenWilliamsC: m.HazenWilliamsC,
				Model:          string(m.Model),
				Description:    m.Description,
			})
		}
		if err := db.Create(&rows).Error; err != nil {
			return nil, fmt.Errorf("seed pipe materials: %w", err)
		}
		logger.Logger.Infof("seeded pipe material catalog with %d entries", len(rows))
	}

	materials := make([]hydraulic.Material, 0, len(rows))
	for _, r := range rows {
		materials = append(materials, hydraulic.Material{
			Name:           r.Name,
			Roughness:      r.Roughness,
			HazenWilliamsC: r.HazenWilliamsC,
			Model:          hydraulic.FrictionModel(r.Model),
			Description:    r.Description,
		})
	}
	return hydraulic.NewCatalog(materials)
}

// Materials lists the pipe materials available to calculations.
func (s *Service) Materials() []hydraulic.Material {
	return s.catalog.List()
}

// RunCalculation sizes the system, persists the run as a case and returns the
// result together with the new case id.
func (s *Service) RunCalculation(in CalculationInput) (*CalculationOutcome, error) {
	in.System.Fluid = applyWaterDefaults(in.System.Fluid, in.Temperature)

	result, err := hydraulic.Calculate(s.catalog, in.System)
	if err != nil {
		return nil, err
	}

	reqJSON, err := json.Marshal(in.System)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	resJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}

	row := model.CalculationCase{
		CaseID:         uuid.NewString(),
		ProjectName:    in.ProjectName,
		RequestJSON:    string(reqJSON),
		ResultJSON:     string(resJSON),
		DesignFlow:     result.DesignFlow,
		Hmt:            result.Hmt,
		NpshMargin:     result.Npsh.Margin,
		CavitationRisk: result.Npsh.CavitationRisk,
	}
	if err := s.db.Create(&row).Error; err != nil {
		logger.Logger.Errorf("persist case: %v", err)
		return nil, fmt.Errorf("persist case: %w", err)
	}

	logger.Logger.Infof("case %s: Hmt %.2f m at %.4f m³/s, NPSH margin %.2f m",
		row.CaseID, result.Hmt, result.DesignFlow, result.Npsh.Margin)
	return &CalculationOutcome{
		CaseID:      row.CaseID,
		ProjectName: in.ProjectName,
		Result:      result,
	}, nil
}

// ListCases returns the most recent cases, newest first. An empty project
// matches every case; a non-positive limit falls back to the default.
func (s *Service) ListCases(project string, limit int) ([]CaseSummary, error) {
	if limit <= 0 {
		limit = defaultCaseLimit
	}
	if limit > maxCaseLimit {
		limit = maxCaseLimit
	}

	q := s.db.Model(&model.CalculationCase{}).
		Order("created_at DESC, id DESC").
		Limit(limit)
	if project != "" {
		q = q.Where("project_name = ?", project)
	}

	var rows []model.CalculationCase
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	summaries := make([]CaseSummary, 0, len(rows))
	for i := range rows {
		summaries = append(summaries, summarizeCase(&rows[i]))
	}
	return summaries, nil
}

// GetCase hydrates one stored case, request and result included.
func (s *Service) GetCase(caseID string) (*CaseDetail, error) {
	row, err := s.fetchCase(caseID)
	if err != nil {
		return nil, err
	}
	return caseDetailFromRow(row)
}

// CaseReport renders the xlsx report for a case. The rendered file is kept in
// the report store and reused as long as it is still on disk.
func (s *Service) CaseReport(caseID string) (string, error) {
	row, err := s.fetchCase(caseID)
	if err != nil {
		return "", err
	}
	if row.ReportPath != "" {
		if _, statErr := os.Stat(row.ReportPath); statErr == nil {
			return row.ReportPath, nil
		}
	}

	detail, err := caseDetailFromRow(row)
	if err != nil {
		return "", err
	}
	wb, err := buildReportWorkbook(detail)
	if err != nil {
		return "", fmt.Errorf("build report: %w", err)
	}
	buf, err := wb.WriteToBuffer()
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}

	path, err := s.reports.Save(fmt.Sprintf("case-%s.xlsx", caseID), buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("store report: %w", err)
	}
	if err := s.db.Model(&model.CalculationCase{}).
		Where("case_id = ?", caseID).
		Update("report_path", path).Error; err != nil {
		logger.Logger.Warnf("cache report path for case %s: %v", caseID, err)
	}
	return path, nil
}

func (s *Service) fetchCase(caseID string) (*model.CalculationCase, error) {
	var row model.CalculationCase
	if err := s.db.Where("case_id = ?", caseID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCaseNotFound, caseID)
		}
		return nil, fmt.Errorf("fetch case %s: %w", caseID, err)
	}
	return &row, nil
}

func summarizeCase(row *model.CalculationCase) CaseSummary {
	return CaseSummary{
		CaseID:         row.CaseID,
		ProjectName:    row.ProjectName,
		DesignFlow:     row.DesignFlow,
		Hmt:            row.Hmt,
		NpshMargin:     row.NpshMargin,
		CavitationRisk: row.CavitationRisk,
		HasReport:      row.ReportPath != "",
		CreatedAt:      row.CreatedAt,
	}
}

func caseDetailFromRow(row *model.CalculationCase) (*CaseDetail, error) {
	detail := &CaseDetail{CaseSummary: summarizeCase(row)}
	if err := json.Unmarshal([]byte(row.RequestJSON), &detail.Request); err != nil {
		return nil, fmt.Errorf("decode stored request for case %s: %w", row.CaseID, err)
	}
	if err := json.Unmarshal([]byte(row.ResultJSON), &detail.Result); err != nil {
		return nil, fmt.Errorf("decode stored result for case %s: %w", row.CaseID, err)
	}
	return detail, nil
}
