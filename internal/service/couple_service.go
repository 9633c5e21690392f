package service

import (
	"context"
	"time"

	"assessment-service/internal/models"
	"assessment-service/internal/repository"
	"assessment-service/internal/scoring"
)

type CoupleService struct {
	Couples     *repository.CoupleRepository
	Assessments *AssessmentService
	cfg         *scoring.Config
}

func NewCoupleService(couples *repository.CoupleRepository, assessments *AssessmentService, cfg *scoring.Config) *CoupleService {
	if cfg == nil {
		cfg = scoring.DefaultConfig()
	}
	return &CoupleService{Couples: couples, Assessments: assessments, cfg: cfg}
}

// Process scores both partners, compares their answers, and derives the
// compatibility percentage. Both individual results and the paired result
// are persisted.
func (s *CoupleService) Process(ctx context.Context, submission *models.CoupleSubmission) (*models.CoupleResult, error) {
	primary, err := s.Assessments.Process(ctx, &submission.Primary, "live")
	if err != nil {
		return nil, err
	}
	spouse, err := s.Assessments.Process(ctx, &submission.Spouse, "live")
	if err != nil {
		return nil, err
	}

	cat, err := s.Assessments.Catalog.Current(ctx)
	if err != nil {
		return nil, err
	}

	analyzer := scoring.NewAnalyzer(cat, s.cfg)
	analysis := analyzer.Diff(primary.Respondent.Responses, spouse.Respondent.Responses)
	compatibility := scoring.Compatibility(&primary.Respondent.Scores, &spouse.Respondent.Scores, analysis, s.cfg)

	result := &models.CoupleResult{
		Primary:       *primary,
		Spouse:        *spouse,
		Analysis:      *analysis,
		Compatibility: compatibility,
		CreatedAt:     time.Now(),
	}
	if err := s.Couples.Create(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *CoupleService) GetResult(ctx context.Context, id string) (*models.CoupleResult, error) {
	return s.Couples.FindByID(ctx, id)
}

func (s *CoupleService) GetResultsByEmail(ctx context.Context, email string) ([]models.CoupleResult, error) {
	return s.Couples.FindByEmail(ctx, email)
}
