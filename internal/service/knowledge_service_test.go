package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/infoemi/campus-api/internal/models"
	"github.com/infoemi/campus-api/internal/repository"
)

func newKnowledgeFixture(t *testing.T, maxBytes int) (KnowledgeService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	service := NewKnowledgeService(
		repository.NewCareerRepository(db),
		repository.NewFAQRepository(db),
		repository.NewSystemConfigRepository(db),
		repository.NewScholarshipRepository(db),
		repository.NewPreUniversityRepository(db),
		maxBytes,
		zerolog.Nop(),
	)
	return service, db
}

func TestKnowledgeContextRendersPopulatedSectionsInOrder(t *testing.T) {
	service, db := newKnowledgeFixture(t, 0)

	require.NoError(t, db.Create(&models.Career{Code: "SIS", Name: "Sistemas", Duration: "5 años", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.FAQ{Question: "¿Dónde queda?", Answer: "La Paz", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.SystemConfig{ConfigKey: "university_phone", ConfigValue: "222-0000", IsPublic: true}).Error)
	require.NoError(t, db.Create(&models.Scholarship{Name: "Excelencia", Coverage: "100%", IsActive: true}).Error)

	document, err := service.Context(context.Background())
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(document, "Información oficial y actualizada de la Universidad (EMI):"))

	careers := strings.Index(document, "OFERTA ACADÉMICA")
	faqs := strings.Index(document, "BANCO DE PREGUNTAS FRECUENTES")
	contacts := strings.Index(document, "UBICACIONES Y CONTACTOS OFICIALES")
	scholarships := strings.Index(document, "BECAS Y DESCUENTOS DISPONIBLES")
	require.True(t, careers >= 0 && faqs > careers && contacts > faqs && scholarships > contacts)

	require.Contains(t, document, "Sistemas (SIS)")
	require.Contains(t, document, "P: ¿Dónde queda? R: La Paz")
	require.Contains(t, document, "222-0000")
}

func TestKnowledgeContextOmitsEmptySections(t *testing.T) {
	service, db := newKnowledgeFixture(t, 0)

	require.NoError(t, db.Create(&models.Career{Code: "SIS", Name: "Sistemas", IsActive: true}).Error)

	document, err := service.Context(context.Background())
	require.NoError(t, err)
	require.Contains(t, document, "OFERTA ACADÉMICA")
	require.NotContains(t, document, "BANCO DE PREGUNTAS FRECUENTES")
	require.NotContains(t, document, "BECAS Y DESCUENTOS DISPONIBLES")
	require.NotContains(t, document, "CURSOS PREUNIVERSITARIOS")
}

func TestKnowledgeContextExcludesInactiveAndPrivateRows(t *testing.T) {
	service, db := newKnowledgeFixture(t, 0)

	require.NoError(t, db.Create(&models.Career{Code: "OLD", Name: "Archivada", IsActive: false}).Error)
	require.NoError(t, db.Create(&models.SystemConfig{ConfigKey: "internal_token", ConfigValue: "secret", IsPublic: false}).Error)
	require.NoError(t, db.Create(&models.FAQ{Question: "¿Costos?", Answer: "Ver becas", IsActive: true}).Error)

	document, err := service.Context(context.Background())
	require.NoError(t, err)
	require.NotContains(t, document, "Archivada")
	require.NotContains(t, document, "secret")
	require.Contains(t, document, "¿Costos?")
}

func TestKnowledgeContextIsCachedUntilInvalidated(t *testing.T) {
	service, db := newKnowledgeFixture(t, 0)

	require.NoError(t, db.Create(&models.FAQ{Question: "A", Answer: "B", IsActive: true}).Error)

	first, err := service.Context(context.Background())
	require.NoError(t, err)

	// A direct write does not bust the cache.
	require.NoError(t, db.Create(&models.FAQ{Question: "C", Answer: "D", IsActive: true}).Error)

	stale, err := service.Context(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, stale)

	service.Invalidate()

	fresh, err := service.Context(context.Background())
	require.NoError(t, err)
	require.Contains(t, fresh, "P: C R: D")
}

func TestKnowledgeContextDropsSectionsPastSizeCap(t *testing.T) {
	// Cap small enough for the preamble and career section only.
	service, db := newKnowledgeFixture(t, 200)

	require.NoError(t, db.Create(&models.Career{Code: "SIS", Name: "Sistemas", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.FAQ{
		Question: strings.Repeat("pregunta ", 30),
		Answer:   strings.Repeat("respuesta ", 30),
		IsActive: true,
	}).Error)

	document, err := service.Context(context.Background())
	require.NoError(t, err)
	require.Contains(t, document, "OFERTA ACADÉMICA")
	require.NotContains(t, document, "BANCO DE PREGUNTAS FRECUENTES")
	require.LessOrEqual(t, len(document), 200)
}
