package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/summer0102/real-estate-showcase/storage"
)

type imageLister interface {
	List() ([]storage.ImageInfo, error)
}

// VerifySetup checks that the backing collection and image bucket are
// reachable at startup. Failures degrade to warnings; the service still
// starts and surfaces real errors per request.
func VerifySetup(ctx context.Context, collection *mongo.Collection, images imageLister, log *zap.Logger) {
	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Warn("properties collection check failed", zap.Error(err))
	} else {
		log.Info("properties collection reachable", zap.Int64("count", count))
	}

	infos, err := images.List()
	if err != nil {
		log.Warn("image bucket check failed", zap.Error(err))
	} else {
		log.Info("image bucket reachable", zap.Int("objects", len(infos)))
	}
}
