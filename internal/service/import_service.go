package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"assessment-service/internal/models"
)

// ImportService scores historical submissions from legacy exports. Rows
// are independent of each other, so they run through a bounded worker
// pool sharing one read-only catalog. A malformed row is skipped and
// reported; only a missing catalog aborts the batch.
type ImportService struct {
	Assessments *AssessmentService
	workers     int
}

func NewImportService(assessments *AssessmentService, workers int) *ImportService {
	if workers < 1 {
		workers = 1
	}
	return &ImportService{Assessments: assessments, workers: workers}
}

func (s *ImportService) Run(ctx context.Context, rows []models.ImportRow) (*models.ImportSummary, error) {
	cat, err := s.Assessments.Catalog.Current(ctx)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	summary := &models.ImportSummary{}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, row := range rows {
		g.Go(func() error {
			if row.Email == "" || len(row.Answers) == 0 {
				mu.Lock()
				summary.Skipped++
				summary.Warnings = append(summary.Warnings, fmt.Sprintf("row %d: missing email or answers, skipped", i))
				mu.Unlock()
				return nil
			}

			submission := &models.AssessmentSubmission{
				Email:   row.Email,
				Gender:  row.Gender,
				Answers: row.Answers,
			}
			result, err := s.Assessments.scoreAgainst(cat, submission, "import")
			if err != nil {
				mu.Lock()
				summary.Skipped++
				summary.Warnings = append(summary.Warnings, fmt.Sprintf("row %d (%s): %s", i, row.Email, err))
				mu.Unlock()
				return nil
			}
			if err := s.Assessments.Results.Create(ctx, result); err != nil {
				mu.Lock()
				summary.Skipped++
				summary.Warnings = append(summary.Warnings, fmt.Sprintf("row %d (%s): persist failed: %s", i, row.Email, err))
				mu.Unlock()
				return nil
			}

			mu.Lock()
			summary.Processed++
			for _, w := range result.Warnings {
				summary.Warnings = append(summary.Warnings, fmt.Sprintf("row %d (%s): %s", i, row.Email, w))
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Printf("import finished: %d processed, %d skipped, %d warnings",
		summary.Processed, summary.Skipped, len(summary.Warnings))
	return summary, nil
}
