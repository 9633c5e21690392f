package service

import (
	"context"
	"log"
	"time"

	"assessment-service/internal/catalog"
	"assessment-service/internal/config"
	"assessment-service/internal/models"
	"assessment-service/internal/repository"
	"assessment-service/internal/scoring"
)

// BuildScoringConfig layers env overrides over the documented defaults.
func BuildScoringConfig(env config.ScoringConfig) *scoring.Config {
	cfg := scoring.DefaultConfig()
	if env.MajorDifferenceThreshold > 0 {
		cfg.MajorDifferenceThreshold = env.MajorDifferenceThreshold
	}
	if env.StrengthAreaCount > 0 {
		cfg.StrengthAreaCount = env.StrengthAreaCount
	}
	if env.VulnerabilityAreaCount > 0 {
		cfg.VulnerabilityAreaCount = env.VulnerabilityAreaCount
	}
	if env.ScoreGapPenalty > 0 {
		cfg.ScoreGapPenalty = env.ScoreGapPenalty
	}
	if env.DifferingAnswerPenalty > 0 {
		cfg.DifferingAnswerPenalty = env.DifferingAnswerPenalty
	}
	if env.MajorDifferencePenalty > 0 {
		cfg.MajorDifferencePenalty = env.MajorDifferencePenalty
	}
	return cfg
}

type AssessmentService struct {
	Results *repository.ResultRepository
	Catalog *CatalogService
	cfg     *scoring.Config
}

func NewAssessmentService(results *repository.ResultRepository, catalogSvc *CatalogService, cfg *scoring.Config) *AssessmentService {
	if cfg == nil {
		cfg = scoring.DefaultConfig()
	}
	return &AssessmentService{Results: results, Catalog: catalogSvc, cfg: cfg}
}

// Process runs the full pipeline for one submission: normalize, score,
// classify, persist. Malformed answers are skipped with warnings; only a
// missing catalog is fatal.
func (s *AssessmentService) Process(ctx context.Context, submission *models.AssessmentSubmission, kind string) (*models.AssessmentResult, error) {
	cat, err := s.Catalog.Current(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.scoreAgainst(cat, submission, kind)
	if err != nil {
		return nil, err
	}
	if err := s.Results.Create(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// scoreAgainst is the persistence-free pipeline, shared with the batch
// importer so hundreds of rows reuse one loaded catalog.
func (s *AssessmentService) scoreAgainst(cat *catalog.Catalog, submission *models.AssessmentSubmission, kind string) (*models.AssessmentResult, error) {
	responses, warnings := scoring.NormalizeAll(cat, submission.Answers)
	for _, w := range warnings {
		log.Printf("normalize warning for %s: %s", submission.Email, w)
	}

	scores, err := scoring.Score(cat, responses)
	if err != nil {
		return nil, err
	}

	gender := models.ParseGender(submission.Gender)
	classifier := scoring.NewClassifier(cat, s.cfg)
	profile := classifier.Classify(scores.Sections, gender)
	genderProfile := classifier.ClassifyGendered(scores.Sections, gender)

	result := &models.AssessmentResult{
		Respondent: models.Respondent{
			Demographics: models.Demographics{
				FirstName: submission.FirstName,
				LastName:  submission.LastName,
				Email:     submission.Email,
				Gender:    gender,
				Age:       submission.Age,
			},
			Responses:     responses,
			Scores:        *scores,
			Profile:       profile,
			GenderProfile: genderProfile,
		},
		SubmissionKind: kind,
		CreatedAt:      time.Now(),
	}
	for _, w := range warnings {
		result.Warnings = append(result.Warnings, w.String())
	}
	return result, nil
}

func (s *AssessmentService) GetResult(ctx context.Context, id string) (*models.AssessmentResult, error) {
	return s.Results.FindByID(ctx, id)
}

func (s *AssessmentService) GetResultsByEmail(ctx context.Context, email string) ([]models.AssessmentResult, error) {
	return s.Results.FindByEmail(ctx, email)
}
