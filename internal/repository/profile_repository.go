package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"assessment-service/internal/models"
)

type ProfileRepository struct {
	Col *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{Col: db.Collection("profiles")}
}

// FindAll returns profiles sorted by their order field. Catalog order is
// semantically significant for classification, so the sort is explicit.
func (r *ProfileRepository) FindAll(ctx context.Context) ([]models.Profile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cur, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var profiles []models.Profile
	for cur.Next(ctx) {
		var p models.Profile
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*models.Profile, error) {
	var profile models.Profile
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile, order int) error {
	doc := bson.M{
		"_id":         profile.ID,
		"name":        profile.Name,
		"description": profile.Description,
		"criteria":    profile.Criteria,
		"order":       order,
	}
	if profile.GenderSpecific != "" {
		doc["gender_specific"] = profile.GenderSpecific
	}
	_, err := r.Col.InsertOne(ctx, doc)
	return err
}

func (r *ProfileRepository) CreateMany(ctx context.Context, profiles []models.Profile) error {
	docs := make([]interface{}, len(profiles))
	for i, p := range profiles {
		doc := bson.M{
			"_id":         p.ID,
			"name":        p.Name,
			"description": p.Description,
			"criteria":    p.Criteria,
			"order":       i,
		}
		if p.GenderSpecific != "" {
			doc["gender_specific"] = p.GenderSpecific
		}
		docs[i] = doc
	}
	_, err := r.Col.InsertMany(ctx, docs)
	return err
}

func (r *ProfileRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *ProfileRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *ProfileRepository) Count(ctx context.Context) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{})
}
