package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"tripweaver/internal/models/db_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/internal/repositories"
)

const defaultOwnerID = "demo-user"

type StorageServiceInterface interface {
	SaveItinerary(ctx context.Context, userID string, itinerary response_models.Itinerary) (string, error)
	ListItineraries(ctx context.Context, userID string) ([]response_models.SavedItinerary, error)
}

type storageService struct {
	repo repositories.ItineraryRepository
}

func NewStorageService(repo repositories.ItineraryRepository) StorageServiceInterface {
	return &storageService{repo: repo}
}

// SaveItinerary persists the itinerary under the given user and returns the
// new record id. An empty user id falls back to the shared demo owner.
func (s *storageService) SaveItinerary(ctx context.Context, userID string, itinerary response_models.Itinerary) (string, error) {
	if userID == "" {
		userID = defaultOwnerID
	}

	record, err := toRecord(userID, itinerary)
	if err != nil {
		return "", err
	}

	id, err := s.repo.InsertItinerary(ctx, record)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// ListItineraries returns the saved itineraries for a user, newest first.
func (s *storageService) ListItineraries(ctx context.Context, userID string) ([]response_models.SavedItinerary, error) {
	if userID == "" {
		userID = defaultOwnerID
	}

	records, err := s.repo.ListItinerariesByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	saved := make([]response_models.SavedItinerary, 0, len(records))
	for _, record := range records {
		itinerary, err := fromRecord(record)
		if err != nil {
			log.Printf("Skipping unreadable itinerary record %s: %v", record.ID, err)
			continue
		}
		saved = append(saved, itinerary)
	}
	return saved, nil
}

func toRecord(userID string, itinerary response_models.Itinerary) (*db_models.ItineraryRecord, error) {
	plans := itinerary.DailyPlans
	if plans == nil {
		plans = []response_models.DayPlan{}
	}
	encoded, err := json.Marshal(plans)
	if err != nil {
		return nil, fmt.Errorf("failed to encode daily plans: %w", err)
	}

	themes := make([]string, 0, len(plans))
	for _, day := range plans {
		if day.Theme != nil {
			themes = append(themes, *day.Theme)
		}
	}

	return &db_models.ItineraryRecord{
		OwnerID:     userID,
		Destination: itinerary.Destination,
		Persona:     itinerary.Persona,
		StartDate:   itinerary.StartDate,
		EndDate:     itinerary.EndDate,
		Summary:     itinerary.Summary,
		DayThemes:   themes,
		DailyPlans:  encoded,
	}, nil
}

func fromRecord(record db_models.ItineraryRecord) (response_models.SavedItinerary, error) {
	plans := []response_models.DayPlan{}
	if len(record.DailyPlans) > 0 {
		if err := json.Unmarshal(record.DailyPlans, &plans); err != nil {
			return response_models.SavedItinerary{}, fmt.Errorf("failed to decode daily plans: %w", err)
		}
	}

	return response_models.SavedItinerary{
		ID:     record.ID.String(),
		UserID: record.OwnerID,
		Itinerary: response_models.Itinerary{
			Destination: record.Destination,
			StartDate:   record.StartDate,
			EndDate:     record.EndDate,
			Persona:     record.Persona,
			Summary:     record.Summary,
			DailyPlans:  plans,
		},
	}, nil
}
