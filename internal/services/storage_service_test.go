package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripweaver/internal/models/db_models"
)

type fakeItineraryRepo struct {
	inserted *db_models.ItineraryRecord
	records  []db_models.ItineraryRecord
	err      error
}

func (f *fakeItineraryRepo) InsertItinerary(ctx context.Context, record *db_models.ItineraryRecord) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	record.ID = uuid.New()
	f.inserted = record
	return record.ID, nil
}

func (f *fakeItineraryRepo) ListItinerariesByOwner(ctx context.Context, ownerID string) ([]db_models.ItineraryRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matched []db_models.ItineraryRecord
	for _, record := range f.records {
		if record.OwnerID == ownerID {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

func TestSaveItineraryDefaultsOwner(t *testing.T) {
	repo := &fakeItineraryRepo{}
	service := NewStorageService(repo)

	id, err := service.SaveItinerary(context.Background(), "", baseItinerary())
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.NotNil(t, repo.inserted)
	assert.Equal(t, "demo-user", repo.inserted.OwnerID)
	assert.Equal(t, "Tokyo", repo.inserted.Destination)
	assert.Equal(t, []string{"Foodie day 1"}, []string(repo.inserted.DayThemes))
}

func TestSaveItineraryHandlesNilPlans(t *testing.T) {
	repo := &fakeItineraryRepo{}
	service := NewStorageService(repo)

	itinerary := baseItinerary()
	itinerary.DailyPlans = nil

	_, err := service.SaveItinerary(context.Background(), "user-1", itinerary)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(repo.inserted.DailyPlans))
}

func TestRecordConversionRoundTrip(t *testing.T) {
	itinerary := baseItinerary()

	record, err := toRecord("user-1", itinerary)
	require.NoError(t, err)
	record.ID = uuid.New()

	saved, err := fromRecord(*record)
	require.NoError(t, err)

	assert.Equal(t, record.ID.String(), saved.ID)
	assert.Equal(t, "user-1", saved.UserID)
	assert.Equal(t, itinerary, saved.Itinerary)
}

func TestListItinerariesFiltersByOwner(t *testing.T) {
	mine, err := toRecord("user-1", baseItinerary())
	require.NoError(t, err)
	mine.ID = uuid.New()
	other, err := toRecord("user-2", baseItinerary())
	require.NoError(t, err)
	other.ID = uuid.New()

	repo := &fakeItineraryRepo{records: []db_models.ItineraryRecord{*mine, *other}}
	service := NewStorageService(repo)

	saved, err := service.ListItineraries(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, saved, 1)
	assert.Equal(t, "user-1", saved[0].UserID)
	assert.Equal(t, "Tokyo", saved[0].Destination)
}

func TestListItinerariesSkipsCorruptRecords(t *testing.T) {
	good, err := toRecord("user-1", baseItinerary())
	require.NoError(t, err)
	good.ID = uuid.New()
	bad := *good
	bad.DailyPlans = []byte("{broken")

	repo := &fakeItineraryRepo{records: []db_models.ItineraryRecord{bad, *good}}
	service := NewStorageService(repo)

	saved, err := service.ListItineraries(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, good.ID.String(), saved[0].ID)
}

func TestListItinerariesReturnsEmptySliceNotNil(t *testing.T) {
	service := NewStorageService(&fakeItineraryRepo{})

	saved, err := service.ListItineraries(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotNil(t, saved)
	assert.Empty(t, saved)
}
