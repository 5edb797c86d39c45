package postgres

import (
	"context"
	"time"

	"healthtrack/internal/domain/entity"
	domainerrors "healthtrack/internal/domain/errors"
	"healthtrack/internal/domain/repository"
	"healthtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// feedbackRepository implements the repository.FeedbackRepository interface.
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (repo *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	feedbackM := &model.FeedbackModel{
		UserID:  feedback.UserID,
		Message: feedback.Message,
		Status:  string(feedback.Status),
	}

	if err := repo.db.WithContext(ctx).Create(feedbackM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create feedback")
	}

	feedback.ID = feedbackM.ID
	feedback.CreatedAt = feedbackM.CreatedAt
	feedback.UpdatedAt = feedbackM.UpdatedAt

	return nil
}

func (repo *feedbackRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Feedback, error) {
	var feedbackModels []*model.FeedbackModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&feedbackModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	out := make([]*entity.Feedback, 0, len(feedbackModels))
	for _, f := range feedbackModels {
		out = append(out, toFeedbackDomain(f, "", ""))
	}

	return out, nil
}

// List joins the sender so admins see who wrote each message.
func (repo *feedbackRepository) List(ctx context.Context, status *entity.FeedbackStatus) ([]*entity.Feedback, error) {
	var rows []*model.FeedbackWithSender

	query := repo.db.WithContext(ctx).
		Table("feedback AS f").
		Select("f.*, u.name AS user_name, u.email AS user_email").
		Joins("JOIN users u ON u.id = f.user_id")
	if status != nil {
		query = query.Where("f.status = ?", string(*status))
	}

	if err := query.Order("f.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list all feedback")
	}

	out := make([]*entity.Feedback, 0, len(rows))
	for _, r := range rows {
		out = append(out, toFeedbackDomain(&r.FeedbackModel, r.UserName, r.UserEmail))
	}

	return out, nil
}

func (repo *feedbackRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.FeedbackStatus) (*entity.Feedback, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.FeedbackModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now()})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update feedback")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrFeedbackNotFound
	}

	var feedbackM model.FeedbackModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&feedbackM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload feedback")
	}

	return toFeedbackDomain(&feedbackM, "", ""), nil
}

func (repo *feedbackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FeedbackModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete feedback")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFeedbackNotFound
	}

	return nil
}

func toFeedbackDomain(m *model.FeedbackModel, name, email string) *entity.Feedback {
	return &entity.Feedback{
		ID:        m.ID,
		UserID:    m.UserID,
		UserName:  name,
		UserEmail: email,
		Message:   m.Message,
		Status:    entity.FeedbackStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
