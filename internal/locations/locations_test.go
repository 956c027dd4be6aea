package locations_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crackKeeper/internal/locations"
	"crackKeeper/internal/locations/mocks"
	"crackKeeper/internal/models"
)

func TestListLoadAndMerge(t *testing.T) {
	storeMock := mocks.NewCustomLocationStore(t)

	custom := []models.CustomLocation{
		{ID: uuid.New(), Name: "Zapatera Extension", CreatedAt: time.Now()},
	}
	storeMock.On("ListLocations", mock.Anything).Return(custom, nil).Once()

	list := locations.NewList(storeMock)
	require.NoError(t, list.Load(context.Background()))

	all := list.All()
	require.Contains(t, all, "Basak")
	require.Contains(t, all, "Zapatera Extension")
	require.Len(t, all, len(locations.DefaultLocations)+1)

	// Merged list is sorted.
	require.IsIncreasing(t, all)

	require.True(t, list.IsCustom("Zapatera Extension"))
	require.False(t, list.IsCustom("Basak"))
}

func TestListAdd(t *testing.T) {
	storeMock := mocks.NewCustomLocationStore(t)
	storeMock.On("ListLocations", mock.Anything).Return(nil, nil).Once()
	storeMock.On("SaveLocation", mock.Anything, "Sitio Riverside").
		Return(&models.CustomLocation{ID: uuid.New(), Name: "Sitio Riverside"}, nil).Once()

	list := locations.NewList(storeMock)
	require.NoError(t, list.Load(context.Background()))

	added, err := list.Add(context.Background(), "  Sitio Riverside  ")
	require.NoError(t, err)
	require.Equal(t, "Sitio Riverside", added.Name)
	require.Contains(t, list.All(), "Sitio Riverside")
}

func TestListAddRejectsEmptyAndDuplicates(t *testing.T) {
	storeMock := mocks.NewCustomLocationStore(t)
	storeMock.On("ListLocations", mock.Anything).Return([]models.CustomLocation{
		{ID: uuid.New(), Name: "Sitio Riverside"},
	}, nil).Once()

	list := locations.NewList(storeMock)
	require.NoError(t, list.Load(context.Background()))

	// The store is never contacted for a rejected name: no SaveLocation
	// expectation is registered.
	_, err := list.Add(context.Background(), "   ")
	require.ErrorIs(t, err, locations.ErrEmptyName)

	_, err = list.Add(context.Background(), "basak")
	require.ErrorIs(t, err, locations.ErrExists)

	_, err = list.Add(context.Background(), "SITIO RIVERSIDE")
	require.ErrorIs(t, err, locations.ErrExists)
}

func TestListRemove(t *testing.T) {
	storeMock := mocks.NewCustomLocationStore(t)

	entry := models.CustomLocation{ID: uuid.New(), Name: "Sitio Riverside"}
	storeMock.On("ListLocations", mock.Anything).Return([]models.CustomLocation{entry}, nil).Once()
	storeMock.On("DeleteLocation", mock.Anything, entry.ID).Return(nil).Once()

	list := locations.NewList(storeMock)
	require.NoError(t, list.Load(context.Background()))

	require.NoError(t, list.Remove(context.Background(), entry.ID))
	require.NotContains(t, list.All(), "Sitio Riverside")
	require.Len(t, list.All(), len(locations.DefaultLocations))
}
