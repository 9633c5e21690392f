package service

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"

	"assessment-service/internal/cache"
	"assessment-service/internal/catalog"
	"assessment-service/internal/models"
	"assessment-service/internal/repository"
)

// CatalogService assembles the immutable catalog from MongoDB, keeps a
// redis snapshot so every instance serves the same set, and seeds the
// collections on first run.
type CatalogService struct {
	Questions *repository.QuestionRepository
	Profiles  *repository.ProfileRepository
	Cache     *cache.CatalogCache
}

func NewCatalogService(questions *repository.QuestionRepository, profiles *repository.ProfileRepository, c *cache.CatalogCache) *CatalogService {
	return &CatalogService{Questions: questions, Profiles: profiles, Cache: c}
}

// Current returns the catalog, from cache when possible.
func (s *CatalogService) Current(ctx context.Context) (*catalog.Catalog, error) {
	if snap := s.Cache.Get(ctx); snap != nil {
		cat, err := catalog.New(snap.Questions, snap.Profiles)
		if err == nil {
			return cat, nil
		}
		log.Printf("cached catalog snapshot invalid, reloading: %s", err)
	}

	questions, err := s.Questions.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	profiles, err := s.Profiles.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(questions) == 0 {
		questions, profiles, err = s.seed(ctx)
		if err != nil {
			return nil, err
		}
	}

	cat, err := catalog.New(questions, profiles)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(ctx, &cache.Snapshot{Questions: questions, Profiles: profiles})
	return cat, nil
}

// seed bootstraps empty collections with the built-in catalog.
func (s *CatalogService) seed(ctx context.Context) ([]models.Question, []models.Profile, error) {
	log.Println("questions collection empty, seeding built-in catalog")
	questions := catalog.SeedQuestions()
	profiles := catalog.SeedProfiles()
	if err := s.Questions.CreateMany(ctx, questions); err != nil {
		return nil, nil, err
	}
	if err := s.Profiles.CreateMany(ctx, profiles); err != nil {
		return nil, nil, err
	}
	return questions, profiles, nil
}

func (s *CatalogService) ListQuestions(ctx context.Context) ([]models.Question, error) {
	return s.Questions.FindAll(ctx)
}

func (s *CatalogService) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	return s.Questions.FindByID(ctx, id)
}

func (s *CatalogService) CreateQuestion(ctx context.Context, q *models.Question) error {
	if err := s.Questions.Create(ctx, q); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx)
	return nil
}

func (s *CatalogService) UpdateQuestion(ctx context.Context, id string, update bson.M) error {
	if err := s.Questions.Update(ctx, id, update); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx)
	return nil
}

func (s *CatalogService) DeleteQuestion(ctx context.Context, id string) error {
	if err := s.Questions.Delete(ctx, id); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx)
	return nil
}

func (s *CatalogService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	return s.Profiles.FindAll(ctx)
}

func (s *CatalogService) CreateProfile(ctx context.Context, p *models.Profile, order int) error {
	if err := s.Profiles.Create(ctx, p, order); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx)
	return nil
}

func (s *CatalogService) UpdateProfile(ctx context.Context, id string, update bson.M) error {
	if err := s.Profiles.Update(ctx, id, update); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx)
	return nil
}

func (s *CatalogService) DeleteProfile(ctx context.Context, id string) error {
	if err := s.Profiles.Delete(ctx, id); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx)
	return nil
}
