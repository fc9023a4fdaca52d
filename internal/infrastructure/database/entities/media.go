package entities

import "time"

// MusicTrack represents one row of the music catalog.
type MusicTrack struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"not null;index"`
	User       User   `gorm:"constraint:OnDelete:CASCADE"`
	Artist     string `gorm:"type:text;not null"`
	Album      string `gorm:"type:text;not null"`
	Title      string `gorm:"type:text"`
	Filename   string `gorm:"type:text;not null"`
	Path       string `gorm:"type:text;not null"`
	MimeType   string `gorm:"type:varchar(255)"`
	SizeBytes  int64
	UploadedAt time.Time `gorm:"autoCreateTime"`
}

func (MusicTrack) TableName() string {
	return "music"
}

// Video represents one row of the video catalog.
type Video struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"not null;index"`
	User       User   `gorm:"constraint:OnDelete:CASCADE"`
	Filename   string `gorm:"type:text;not null"`
	Path       string `gorm:"type:text;not null"`
	MimeType   string `gorm:"type:varchar(255)"`
	SizeBytes  int64
	UploadedAt time.Time `gorm:"autoCreateTime"`
}

func (Video) TableName() string {
	return "videos"
}

// Photo represents one row of the photo catalog.
type Photo struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"not null;index"`
	User       User   `gorm:"constraint:OnDelete:CASCADE"`
	Filename   string `gorm:"type:text;not null"`
	Path       string `gorm:"type:text;not null"`
	MimeType   string `gorm:"type:varchar(255)"`
	SizeBytes  int64
	UploadedAt time.Time `gorm:"autoCreateTime"`
}

func (Photo) TableName() string {
	return "photos"
}

// TVShowEpisode represents one row of the TV show catalog. Episode is
// optional; season is always present.
type TVShowEpisode struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"not null;index"`
	User       User   `gorm:"constraint:OnDelete:CASCADE"`
	ShowName   string `gorm:"type:text;not null"`
	Season     int    `gorm:"not null"`
	Episode    *int
	Filename   string `gorm:"type:text;not null"`
	Path       string `gorm:"type:text;not null"`
	MimeType   string `gorm:"type:varchar(255)"`
	SizeBytes  int64
	UploadedAt time.Time `gorm:"autoCreateTime"`
}

func (TVShowEpisode) TableName() string {
	return "tvshows"
}
