package repositories

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripweaver/internal/models/db_models"
	"tripweaver/pkg/utils"
)

type ItineraryRepository interface {
	InsertItinerary(ctx context.Context, record *db_models.ItineraryRecord) (uuid.UUID, error)
	ListItinerariesByOwner(ctx context.Context, ownerID string) ([]db_models.ItineraryRecord, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) InsertItinerary(ctx context.Context, record *db_models.ItineraryRecord) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		log.Printf("Failed to insert itinerary record: %v", err)
		return uuid.Nil, utils.ErrDatabaseError
	}
	return record.ID, nil
}

func (r *itineraryRepository) ListItinerariesByOwner(ctx context.Context, ownerID string) ([]db_models.ItineraryRecord, error) {
	var records []db_models.ItineraryRecord
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []db_models.ItineraryRecord{}, nil
		}
		log.Printf("Failed to list itineraries for owner %s: %v", ownerID, err)
		return nil, utils.ErrDatabaseError
	}
	return records, nil
}
