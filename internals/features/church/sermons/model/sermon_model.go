package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	Assembly "sepcam_backend/internals/features/church/assemblies/model"
)

type SermonModel struct {
	// PK
	SermonID uuid.UUID `gorm:"column:sermon_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"sermon_id"`

	// FK
	SermonAssemblyID uuid.UUID `gorm:"column:sermon_assembly_id;type:uuid;not null;index" json:"sermon_assembly_id"`

	Assembly Assembly.AssemblyModel `gorm:"foreignKey:SermonAssemblyID;references:AssemblyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"assembly,omitempty"`

	SermonTitle        string    `gorm:"column:sermon_title;size:200;not null;index" json:"sermon_title"`
	SermonPreacher     string    `gorm:"column:sermon_preacher;size:200;not null;index" json:"sermon_preacher"`
	SermonBiblePassage string    `gorm:"column:sermon_bible_passage;size:100" json:"sermon_bible_passage"`
	SermonDate         time.Time `gorm:"column:sermon_date;type:date;not null;index" json:"sermon_date"`
	SermonAudioURL     string    `gorm:"column:sermon_audio_url;size:255" json:"sermon_audio_url"`
	SermonVideoURL     string    `gorm:"column:sermon_video_url;size:255" json:"sermon_video_url"`
	SermonNotes        string    `gorm:"column:sermon_notes;type:text" json:"sermon_notes"`

	SermonCreatedAt time.Time      `gorm:"column:sermon_created_at;autoCreateTime" json:"sermon_created_at"`
	SermonUpdatedAt time.Time      `gorm:"column:sermon_updated_at;autoUpdateTime" json:"sermon_updated_at"`
	SermonDeletedAt gorm.DeletedAt `gorm:"column:sermon_deleted_at;index" json:"sermon_deleted_at,omitempty"`
}

func (SermonModel) TableName() string {
	return "sermons"
}
