package impl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"healthtrack/internal/domain/entity"
	domainerrors "healthtrack/internal/domain/errors"
	"healthtrack/internal/domain/repository"
	mockRepo "healthtrack/internal/mocks/repository"
	mockSvc "healthtrack/internal/mocks/service"
	"healthtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type mealServiceFixtures struct {
	service  usecase.MealUsecase
	mealRepo *mockRepo.MockMealRepository
	images   *mockSvc.MockImageStore
}

func createTestMealService(t *testing.T) mealServiceFixtures {
	mealRepo := mockRepo.NewMockMealRepository(t)
	images := mockSvc.NewMockImageStore(t)

	service := NewMealService(MealServiceParams{
		MealRepo: mealRepo,
		Images:   images,
		Config:   newTestConfig(),
		Logger:   newDiscardLogger(),
	})

	return mealServiceFixtures{service: service, mealRepo: mealRepo, images: images}
}

func adminMeal() *entity.Meal {
	return &entity.Meal{
		ID:          uuid.New(),
		Ownership:   entity.Ownership{Source: entity.SourceAdmin, Visibility: entity.VisibilityPublic},
		Name:        "Oatmeal",
		MealType:    entity.MealTypeBreakfast,
		Calories:    320,
		Ingredients: []string{"oats", "milk"},
	}
}

func TestMealService_CreateMeal_Personal(t *testing.T) {
	fx := createTestMealService(t)

	userID := uuid.New()
	fx.mealRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(m *entity.Meal) bool {
			return m.OwnedBy(userID) && m.Source == entity.SourceCustom && m.Name == "Salad"
		})).
		Return(nil)

	meal, err := fx.service.CreateMeal(context.Background(), &userID, &usecase.MealInput{
		Name:       "  Salad ",
		Calories:   150,
		Visibility: entity.VisibilityHidden,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.VisibilityPublic, meal.Visibility)
}

func TestMealService_CreateMeal_Admin(t *testing.T) {
	fx := createTestMealService(t)

	fx.mealRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(m *entity.Meal) bool {
			return m.IsAdminItem() && m.Source == entity.SourceAdmin && m.Visibility == entity.VisibilityPublic
		})).
		Return(nil)

	_, err := fx.service.CreateMeal(context.Background(), nil, &usecase.MealInput{Name: "Soup"})
	require.NoError(t, err)

	_, err = fx.service.CreateMeal(context.Background(), nil, &usecase.MealInput{Name: "Soup", Visibility: "secret"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMealService_UpdateMeal_NotOwned(t *testing.T) {
	fx := createTestMealService(t)

	id, userID := uuid.New(), uuid.New()
	fx.mealRepo.EXPECT().FindOwned(mock.Anything, id, &userID).Return(nil, repository.ErrMealNotFound)

	_, err := fx.service.UpdateMeal(context.Background(), id, &userID, &usecase.MealInput{Name: "x"})

	assert.True(t, errors.Is(err, domainerrors.ErrMealNotFound))
}

func TestMealService_CopyMeal(t *testing.T) {
	fx := createTestMealService(t)

	userID := uuid.New()
	source := adminMeal()
	fx.mealRepo.EXPECT().FindVisible(mock.Anything, source.ID, userID).Return(source, nil)
	fx.mealRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Meal")).Return(nil)

	cp, err := fx.service.CopyMeal(context.Background(), source.ID, userID)

	require.NoError(t, err)
	assert.Equal(t, entity.SourceCopied, cp.Source)
	assert.True(t, cp.OwnedBy(userID))
	require.NotNil(t, cp.OriginID)
	assert.Equal(t, source.ID, *cp.OriginID)
	assert.Equal(t, source.Ingredients, cp.Ingredients)
}

func TestMealService_CopyMeal_PersonalItemRejected(t *testing.T) {
	fx := createTestMealService(t)

	userID := uuid.New()
	own := adminMeal()
	own.Ownership = entity.Ownership{OwnerID: &userID, Source: entity.SourceCustom, Visibility: entity.VisibilityPublic}
	fx.mealRepo.EXPECT().FindVisible(mock.Anything, own.ID, userID).Return(own, nil)

	_, err := fx.service.CopyMeal(context.Background(), own.ID, userID)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMealService_SetMealVisibility(t *testing.T) {
	fx := createTestMealService(t)

	meal := adminMeal()
	meal.Visibility = entity.VisibilityHidden
	fx.mealRepo.EXPECT().SetVisibility(mock.Anything, meal.ID, entity.VisibilityHidden).Return(nil)
	fx.mealRepo.EXPECT().FindOwned(mock.Anything, meal.ID, (*uuid.UUID)(nil)).Return(meal, nil)

	got, err := fx.service.SetMealVisibility(context.Background(), meal.ID, entity.VisibilityHidden)

	require.NoError(t, err)
	assert.Equal(t, entity.VisibilityHidden, got.Visibility)
}

func TestMealService_UploadMealImage(t *testing.T) {
	userID := uuid.New()
	meal := adminMeal()
	meal.Ownership = entity.Ownership{OwnerID: &userID, Source: entity.SourceCustom, Visibility: entity.VisibilityPublic}

	t.Run("stores png and records url", func(t *testing.T) {
		fx := createTestMealService(t)

		fx.mealRepo.EXPECT().FindOwned(mock.Anything, meal.ID, &userID).Return(meal, nil)
		fx.images.EXPECT().
			Put(mock.Anything, mock.MatchedBy(func(key string) bool {
				return strings.HasPrefix(key, "meals/"+meal.ID.String()+"/") && strings.HasSuffix(key, ".png")
			}), "image/png", mock.Anything).
			Return("/media/meals/x.png", nil)
		fx.mealRepo.EXPECT().SetImageURL(mock.Anything, meal.ID, &userID, "/media/meals/x.png").Return(nil)

		got, err := fx.service.UploadMealImage(context.Background(), meal.ID, &userID, &usecase.ImageUpload{
			Filename: "x.png",
			Size:     int64(len(pngHeader)),
			Content:  bytes.NewReader(pngHeader),
		})

		require.NoError(t, err)
		assert.Equal(t, "/media/meals/x.png", got.ImageURL)
	})

	t.Run("rejects oversized upload", func(t *testing.T) {
		fx := createTestMealService(t)

		fx.mealRepo.EXPECT().FindOwned(mock.Anything, meal.ID, &userID).Return(meal, nil)

		_, err := fx.service.UploadMealImage(context.Background(), meal.ID, &userID, &usecase.ImageUpload{
			Content: bytes.NewReader(make([]byte, 2048)),
		})

		assert.True(t, errors.Is(err, domainerrors.ErrImageTooLarge))
	})

	t.Run("rejects non image content", func(t *testing.T) {
		fx := createTestMealService(t)

		fx.mealRepo.EXPECT().FindOwned(mock.Anything, meal.ID, &userID).Return(meal, nil)

		_, err := fx.service.UploadMealImage(context.Background(), meal.ID, &userID, &usecase.ImageUpload{
			Content: strings.NewReader("plain text, not a picture"),
		})

		assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedImage))
	})

	t.Run("removes blob when the row update fails", func(t *testing.T) {
		fx := createTestMealService(t)

		fx.mealRepo.EXPECT().FindOwned(mock.Anything, meal.ID, &userID).Return(meal, nil)
		fx.images.EXPECT().Put(mock.Anything, mock.Anything, "image/png", mock.Anything).Return("/media/k.png", nil)
		fx.mealRepo.EXPECT().SetImageURL(mock.Anything, meal.ID, &userID, "/media/k.png").Return(repository.ErrMealNotFound)
		fx.images.EXPECT().Delete(mock.Anything, mock.AnythingOfType("string")).Return(nil)

		_, err := fx.service.UploadMealImage(context.Background(), meal.ID, &userID, &usecase.ImageUpload{
			Content: bytes.NewReader(pngHeader),
		})

		assert.True(t, errors.Is(err, domainerrors.ErrMealNotFound))
	})
}

func TestMealService_DeleteMeal_NotOwned(t *testing.T) {
	fx := createTestMealService(t)

	id, userID := uuid.New(), uuid.New()
	fx.mealRepo.EXPECT().Delete(mock.Anything, id, &userID).Return(repository.ErrMealNotFound)

	err := fx.service.DeleteMeal(context.Background(), id, &userID)

	assert.True(t, errors.Is(err, domainerrors.ErrMealNotFound))
}
