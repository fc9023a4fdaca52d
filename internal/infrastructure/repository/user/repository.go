package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "medianet/internal/domain/user"
	"medianet/internal/infrastructure/database/entities"
	"medianet/internal/utils/platformerrors"
)

// Repository handles account persistence.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, u *domain.User) error {
	entity := entities.User{
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
	}
	err := r.db.WithContext(ctx).Create(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return platformerrors.NewError(platformerrors.LayerRepository,
				platformerrors.ErrorTypeConflict, "user already exists", err)
		}
		return platformerrors.NewError(platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to create user", err)
	}
	u.ID = entity.ID
	u.CreatedAt = entity.CreatedAt
	return nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var entity entities.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, platformerrors.NewError(platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to find user by email", err)
	}
	u := mapEntity(entity)
	return &u, nil
}

func (r *Repository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var entity entities.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, platformerrors.NewError(platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to find user by id", err)
	}
	u := mapEntity(entity)
	return &u, nil
}

// Delete removes the account row; owned media rows go with it via the
// ON DELETE CASCADE constraints.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Delete(&entities.User{}, id).Error
	if err != nil {
		return platformerrors.NewError(platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to delete user", err)
	}
	return nil
}

func (r *Repository) ListCredentials(ctx context.Context) ([]domain.Credentials, error) {
	var rows []entities.User
	err := r.db.WithContext(ctx).Select("username", "password_hash").Find(&rows).Error
	if err != nil {
		return nil, platformerrors.NewError(platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to list credentials", err)
	}

	creds := make([]domain.Credentials, 0, len(rows))
	for _, row := range rows {
		creds = append(creds, domain.Credentials{
			Username:     row.Username,
			PasswordHash: row.PasswordHash,
		})
	}
	return creds, nil
}

func mapEntity(entity entities.User) domain.User {
	return domain.User{
		ID:           entity.ID,
		Username:     entity.Username,
		Email:        entity.Email,
		PasswordHash: entity.PasswordHash,
		CreatedAt:    entity.CreatedAt,
	}
}
