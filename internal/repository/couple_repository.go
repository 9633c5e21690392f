package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"assessment-service/internal/models"
)

type CoupleRepository struct {
	Col *mongo.Collection
}

func NewCoupleRepository(db *mongo.Database) *CoupleRepository {
	return &CoupleRepository{Col: db.Collection("couple_results")}
}

func (r *CoupleRepository) Create(ctx context.Context, result *models.CoupleResult) error {
	if result.ID == "" {
		result.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, result)
	return err
}

func (r *CoupleRepository) FindByID(ctx context.Context, id string) (*models.CoupleResult, error) {
	var result models.CoupleResult
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *CoupleRepository) FindByEmail(ctx context.Context, email string) ([]models.CoupleResult, error) {
	filter := bson.M{"$or": []bson.M{
		{"primary.respondent.demographics.email": email},
		{"spouse.respondent.demographics.email": email},
	}}
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var results []models.CoupleResult
	for cur.Next(ctx) {
		var res models.CoupleResult
		if err := cur.Decode(&res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
