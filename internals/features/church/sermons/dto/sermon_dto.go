package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"sepcam_backend/internals/features/church/sermons/model"
)

var validate = validator.New()

type SermonRequest struct {
	SermonAssemblyID uuid.UUID `json:"sermon_assembly_id" validate:"required"`

	SermonTitle        string    `json:"sermon_title" validate:"required,max=200"`
	SermonPreacher     string    `json:"sermon_preacher" validate:"required,max=200"`
	SermonBiblePassage string    `json:"sermon_bible_passage" validate:"max=100"`
	SermonDate         time.Time `json:"sermon_date" validate:"required"`
	SermonAudioURL     string    `json:"sermon_audio_url" validate:"omitempty,url"`
	SermonVideoURL     string    `json:"sermon_video_url" validate:"omitempty,url"`
	SermonNotes        string    `json:"sermon_notes"`
}

func (r *SermonRequest) Validate() error {
	return validate.Struct(r)
}

func (r *SermonRequest) ToModelCreate() *model.SermonModel {
	return &model.SermonModel{
		SermonAssemblyID:   r.SermonAssemblyID,
		SermonTitle:        r.SermonTitle,
		SermonPreacher:     r.SermonPreacher,
		SermonBiblePassage: r.SermonBiblePassage,
		SermonDate:         r.SermonDate,
		SermonAudioURL:     r.SermonAudioURL,
		SermonVideoURL:     r.SermonVideoURL,
		SermonNotes:        r.SermonNotes,
	}
}

func (r *SermonRequest) ApplyToModel(m *model.SermonModel) {
	m.SermonAssemblyID = r.SermonAssemblyID
	m.SermonTitle = r.SermonTitle
	m.SermonPreacher = r.SermonPreacher
	m.SermonBiblePassage = r.SermonBiblePassage
	m.SermonDate = r.SermonDate
	m.SermonAudioURL = r.SermonAudioURL
	m.SermonVideoURL = r.SermonVideoURL
	m.SermonNotes = r.SermonNotes
}
