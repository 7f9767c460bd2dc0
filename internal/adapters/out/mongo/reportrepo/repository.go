// Package reportrepo stores generated reports as MongoDB documents.
package reportrepo

import (
	"context"
	"fmt"

	"pod/internal/core/domain/model/report"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "reports"

type MongoReportRepository struct {
	collection *mongo.Collection
}

func NewMongoReportRepository(db *mongo.Database) *MongoReportRepository {
	return &MongoReportRepository{collection: db.Collection(CollectionName)}
}

// EnsureIndexes creates the index backing List.
func (r *MongoReportRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "reportDate", Value: -1}, {Key: "generatedAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create reports index: %w", err)
	}
	return nil
}

func (r *MongoReportRepository) Add(ctx context.Context, aggregate *report.Report) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, err := r.collection.InsertOne(ctx, fromDomain(aggregate)); err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (r *MongoReportRepository) List(ctx context.Context) ([]*report.Report, error) {
	opts := options.Find().SetSort(bson.D{{Key: "reportDate", Value: -1}, {Key: "generatedAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find reports: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []ReportDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode reports: %w", err)
	}

	reports := make([]*report.Report, 0, len(docs))
	for _, doc := range docs {
		rep, err := toDomain(doc)
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}

	return reports, nil
}
