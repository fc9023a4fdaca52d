package media

import (
	"context"

	"gorm.io/gorm"

	domain "medianet/internal/domain/media"
	"medianet/internal/infrastructure/database/entities"
	"medianet/internal/utils/platformerrors"
)

// Repository handles catalog persistence. Each kind keeps its own table,
// matching the original schema; Insert and List dispatch on the kind.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Insert(ctx context.Context, rec *domain.Record) error {
	var err error
	switch rec.Kind {
	case domain.KindMusic:
		entity := entities.MusicTrack{
			UserID:    rec.UserID,
			Artist:    rec.Artist,
			Album:     rec.Album,
			Title:     rec.Title,
			Filename:  rec.Filename,
			Path:      rec.Path,
			MimeType:  rec.MimeType,
			SizeBytes: rec.SizeBytes,
		}
		if err = r.db.WithContext(ctx).Create(&entity).Error; err == nil {
			rec.ID, rec.UploadedAt = entity.ID, entity.UploadedAt
		}
	case domain.KindVideo:
		entity := entities.Video{
			UserID:    rec.UserID,
			Filename:  rec.Filename,
			Path:      rec.Path,
			MimeType:  rec.MimeType,
			SizeBytes: rec.SizeBytes,
		}
		if err = r.db.WithContext(ctx).Create(&entity).Error; err == nil {
			rec.ID, rec.UploadedAt = entity.ID, entity.UploadedAt
		}
	case domain.KindPhoto:
		entity := entities.Photo{
			UserID:    rec.UserID,
			Filename:  rec.Filename,
			Path:      rec.Path,
			MimeType:  rec.MimeType,
			SizeBytes: rec.SizeBytes,
		}
		if err = r.db.WithContext(ctx).Create(&entity).Error; err == nil {
			rec.ID, rec.UploadedAt = entity.ID, entity.UploadedAt
		}
	case domain.KindTVShow:
		entity := entities.TVShowEpisode{
			UserID:    rec.UserID,
			ShowName:  rec.ShowName,
			Season:    rec.Season,
			Episode:   rec.Episode,
			Filename:  rec.Filename,
			Path:      rec.Path,
			MimeType:  rec.MimeType,
			SizeBytes: rec.SizeBytes,
		}
		if err = r.db.WithContext(ctx).Create(&entity).Error; err == nil {
			rec.ID, rec.UploadedAt = entity.ID, entity.UploadedAt
		}
	}
	if err != nil {
		return platformerrors.NewError(platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to insert media record", err)
	}
	return nil
}

// List returns the user's rows of one kind. TV shows order by
// (show_name, season, episode) ascending; every other kind by upload time,
// newest first.
func (r *Repository) List(ctx context.Context, kind domain.Kind, userID uint) ([]domain.Record, error) {
	scoped := r.db.WithContext(ctx).Where("user_id = ?", userID)

	var (
		records []domain.Record
		err     error
	)
	switch kind {
	case domain.KindMusic:
		var rows []entities.MusicTrack
		err = scoped.Order("uploaded_at DESC").Find(&rows).Error
		for _, row := range rows {
			records = append(records, domain.Record{
				ID: row.ID, UserID: row.UserID, Kind: kind,
				Artist: row.Artist, Album: row.Album, Title: row.Title,
				Filename: row.Filename, Path: row.Path,
				MimeType: row.MimeType, SizeBytes: row.SizeBytes,
				UploadedAt: row.UploadedAt,
			})
		}
	case domain.KindVideo:
		var rows []entities.Video
		err = scoped.Order("uploaded_at DESC").Find(&rows).Error
		for _, row := range rows {
			records = append(records, domain.Record{
				ID: row.ID, UserID: row.UserID, Kind: kind,
				Filename: row.Filename, Path: row.Path,
				MimeType: row.MimeType, SizeBytes: row.SizeBytes,
				UploadedAt: row.UploadedAt,
			})
		}
	case domain.KindPhoto:
		var rows []entities.Photo
		err = scoped.Order("uploaded_at DESC").Find(&rows).Error
		for _, row := range rows {
			records = append(records, domain.Record{
				ID: row.ID, UserID: row.UserID, Kind: kind,
				Filename: row.Filename, Path: row.Path,
				MimeType: row.MimeType, SizeBytes: row.SizeBytes,
				UploadedAt: row.UploadedAt,
			})
		}
	case domain.KindTVShow:
		var rows []entities.TVShowEpisode
		err = scoped.Order("show_name ASC, season ASC, episode ASC").Find(&rows).Error
		for _, row := range rows {
			records = append(records, domain.Record{
				ID: row.ID, UserID: row.UserID, Kind: kind,
				ShowName: row.ShowName, Season: row.Season, Episode: row.Episode,
				Filename: row.Filename, Path: row.Path,
				MimeType: row.MimeType, SizeBytes: row.SizeBytes,
				UploadedAt: row.UploadedAt,
			})
		}
	}
	if err != nil {
		return nil, platformerrors.NewError(platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to list media records", err)
	}
	return records, nil
}

func (r *Repository) CountByKind(ctx context.Context, userID uint) (map[domain.Kind]int64, error) {
	counts := make(map[domain.Kind]int64, 4)
	for kind, model := range map[domain.Kind]any{
		domain.KindMusic:  &entities.MusicTrack{},
		domain.KindVideo:  &entities.Video{},
		domain.KindPhoto:  &entities.Photo{},
		domain.KindTVShow: &entities.TVShowEpisode{},
	} {
		var n int64
		if err := r.db.WithContext(ctx).Model(model).Where("user_id = ?", userID).Count(&n).Error; err != nil {
			return nil, platformerrors.NewError(platformerrors.LayerRepository,
				platformerrors.ErrorTypeDatabaseError, "failed to count media records", err)
		}
		counts[kind] = n
	}
	return counts, nil
}
