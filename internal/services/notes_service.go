package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/ricemart/notes-api/internal/dto"
	"github.com/ricemart/notes-api/internal/models"
	"gorm.io/gorm"
)

const maxTitleLength = 150

var (
	ErrNoteNotFound    = errors.New("note not found")
	ErrContentRequired = errors.New("note content is required")
	ErrContentEmpty    = errors.New("note content cannot be empty")
	ErrTitleTooLong    = errors.New("note title must be 150 characters or fewer")
)

// NotesService owns note CRUD. Every operation is scoped to the caller's
// uid; a lookup that misses because the note belongs to someone else reads
// exactly like a lookup that misses because the note does not exist.
// That uniform "not found" is a deliberate policy, not a lookup accident.
type NotesService struct {
	db *gorm.DB
}

func NewNotesService(db *gorm.DB) *NotesService {
	return &NotesService{db: db}
}

func (s *NotesService) Create(uid string, req dto.CreateNoteRequest) (*models.Note, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentRequired
	}

	title, err := normalizeTitle(req.Title)
	if err != nil {
		return nil, err
	}

	note := models.Note{
		ID:      uuid.New(),
		UserID:  uid,
		Title:   title,
		Content: req.Content,
	}

	if err := s.db.Create(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// List returns the caller's notes newest-first.
func (s *NotesService) List(uid string) ([]models.Note, error) {
	notes := make([]models.Note, 0)
	err := s.db.Where("user_id = ?", uid).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

func (s *NotesService) Update(uid string, id uuid.UUID, req dto.UpdateNoteRequest) (*models.Note, error) {
	var note models.Note
	if err := s.db.Where("id = ? AND user_id = ?", id, uid).First(&note).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}

	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, ErrContentEmpty
		}
		note.Content = *req.Content
	}

	if req.Title != nil {
		title, err := normalizeTitle(req.Title)
		if err != nil {
			return nil, err
		}
		// A present-but-empty title clears it.
		note.Title = title
	}

	if err := s.db.Save(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *NotesService) Delete(uid string, id uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", id, uid).Delete(&models.Note{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoteNotFound
	}
	return nil
}

// normalizeTitle trims the optional title and maps an absent or blank one
// to NULL so it is stored as genuinely missing rather than "".
func normalizeTitle(title *string) (*string, error) {
	if title == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*title)
	if trimmed == "" {
		return nil, nil
	}
	if len(trimmed) > maxTitleLength {
		return nil, ErrTitleTooLong
	}
	return &trimmed, nil
}
