package outcomes

import (
	"context"
	"outcomes-service/internal/app/contracts"
	"outcomes-service/internal/app/models"
	"outcomes-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/mongo"
)

type OutcomeRecordMongoRepository struct {
	Collection *mongo.Collection
}

func NewOutcomeRecordMongoRepository(db *mongo.Client, dbName, collectionName string) contracts.OutcomeRecordRepository {
	return &OutcomeRecordMongoRepository{
		Collection: db.Database(dbName).Collection(collectionName),
	}
}

func (repo *OutcomeRecordMongoRepository) Insert(ctx context.Context, record *models.OutcomeRecord) error {
	_, err := repo.Collection.InsertOne(ctx, record)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err, repo.Collection.Name())
	}
	return nil
}
