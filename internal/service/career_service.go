package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/models"
	"github.com/infoemi/campus-api/internal/repository"
)

// FileUploader stores a file and returns its public URL.
type FileUploader interface {
	Upload(ctx context.Context, name string, reader io.Reader) (string, error)
}

// CareerService manages academic programs.
type CareerService interface {
	List(ctx context.Context, activeOnly bool) ([]models.Career, error)
	Get(ctx context.Context, id uint) (models.Career, error)
	GetByCode(ctx context.Context, code string) (models.Career, error)
	Create(ctx context.Context, actorID uint, req dto.CareerRequest) (models.Career, error)
	Update(ctx context.Context, actorID uint, id uint, req dto.CareerRequest) (models.Career, error)
	Delete(ctx context.Context, actorID uint, id uint) error
	SetCurriculum(ctx context.Context, actorID uint, id uint, filename string, reader io.Reader) (models.Career, error)
}

type careerService struct {
	repo     repository.CareerRepository
	uploader FileUploader
	hooks    mutationHooks
	logger   zerolog.Logger
}

// NewCareerService constructs the career service. The uploader is optional;
// without one the curriculum endpoint reports a validation error.
func NewCareerService(repo repository.CareerRepository, uploader FileUploader, audit AuditService, knowledge KnowledgeInvalidator, logger zerolog.Logger) CareerService {
	scoped := logger.With().Str("component", "career_service").Logger()
	return &careerService{
		repo:     repo,
		uploader: uploader,
		hooks:    newMutationHooks(audit, knowledge, scoped),
		logger:   scoped,
	}
}

func (s *careerService) List(ctx context.Context, activeOnly bool) ([]models.Career, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *careerService) Get(ctx context.Context, id uint) (models.Career, error) {
	career, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Career{}, translateLookupError(err)
	}
	return career, nil
}

func (s *careerService) GetByCode(ctx context.Context, code string) (models.Career, error) {
	career, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return models.Career{}, translateLookupError(err)
	}
	return career, nil
}

func (s *careerService) Create(ctx context.Context, actorID uint, req dto.CareerRequest) (models.Career, error) {
	career := req.Model()
	if err := s.repo.Create(ctx, &career); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Career{}, ErrConflict
		}
		return models.Career{}, err
	}

	s.hooks.created(ctx, actorID, "careers", career.ID, req)
	return career, nil
}

func (s *careerService) Update(ctx context.Context, actorID uint, id uint, req dto.CareerRequest) (models.Career, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Career{}, translateLookupError(err)
	}

	oldPayload := dto.NewCareerRequestFromModel(existing)

	updated := req.Model()
	updated.ID = existing.ID
	updated.CurriculumURL = existing.CurriculumURL
	updated.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, &updated); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Career{}, ErrConflict
		}
		return models.Career{}, err
	}

	s.hooks.updated(ctx, actorID, "careers", updated.ID, oldPayload, req)
	return updated, nil
}

// Delete deactivates a career. Records stay in place so historic audit
// entries keep resolving.
func (s *careerService) Delete(ctx context.Context, actorID uint, id uint) error {
	rows, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.hooks.deleted(ctx, actorID, "careers", id)
	return nil
}

// SetCurriculum uploads a curriculum image and attaches its URL to the
// career. Only image uploads are accepted.
func (s *careerService) SetCurriculum(ctx context.Context, actorID uint, id uint, filename string, reader io.Reader) (models.Career, error) {
	if s.uploader == nil {
		return models.Career{}, fmt.Errorf("%w: uploads are not configured", ErrValidation)
	}

	career, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Career{}, translateLookupError(err)
	}

	kind, recycled, err := sniffMimeType(reader)
	if err != nil {
		return models.Career{}, err
	}
	if !kind.Is("image/jpeg") && !kind.Is("image/png") && !kind.Is("image/webp") {
		return models.Career{}, fmt.Errorf("%w: unsupported file type %s", ErrValidation, kind.String())
	}

	url, err := s.uploader.Upload(ctx, filename, recycled)
	if err != nil {
		return models.Career{}, err
	}

	previous := career.CurriculumURL
	career.CurriculumURL = url
	if err := s.repo.Update(ctx, &career); err != nil {
		return models.Career{}, err
	}

	s.hooks.updated(ctx, actorID, "careers", career.ID,
		map[string]interface{}{"curriculum_url": previous},
		map[string]interface{}{"curriculum_url": url})
	return career, nil
}

// sniffMimeType detects the content type and returns a reader that replays
// the bytes consumed during detection.
func sniffMimeType(reader io.Reader) (*mimetype.MIME, io.Reader, error) {
	header := make([]byte, 3072)
	n, err := io.ReadFull(reader, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, nil, err
	}
	header = header[:n]

	kind := mimetype.Detect(header)
	return kind, io.MultiReader(bytes.NewReader(header), reader), nil
}

// translateLookupError maps gorm's not-found sentinel onto the service
// error taxonomy.
func translateLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
