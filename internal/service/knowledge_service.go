package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/infoemi/campus-api/internal/observability"
	"github.com/infoemi/campus-api/internal/repository"
)

const knowledgePreamble = "Información oficial y actualizada de la Universidad (EMI):\n\n"

// KnowledgeService assembles the grounding document supplied to the
// assistant: a snapshot of every public-facing table, rendered as one plain
// text block. The document is cached; mutations invalidate it and the next
// reader rebuilds. Rebuilds are serialised and the cached string is swapped
// in a single assignment, so readers never observe a half-built document.
type KnowledgeService interface {
	Context(ctx context.Context) (string, error)
	Invalidate()
}

type knowledgeService struct {
	careers       repository.CareerRepository
	faqs          repository.FAQRepository
	config        repository.SystemConfigRepository
	scholarships  repository.ScholarshipRepository
	preuniversity repository.PreUniversityRepository
	maxBytes      int
	logger        zerolog.Logger

	mu     sync.Mutex
	cached atomic.Pointer[string]
}

// NewKnowledgeService constructs the context assembler. maxBytes caps the
// assembled document; sections past the cap are dropped whole, lowest
// priority first.
func NewKnowledgeService(
	careers repository.CareerRepository,
	faqs repository.FAQRepository,
	config repository.SystemConfigRepository,
	scholarships repository.ScholarshipRepository,
	preuniversity repository.PreUniversityRepository,
	maxBytes int,
	logger zerolog.Logger,
) KnowledgeService {
	return &knowledgeService{
		careers:       careers,
		faqs:          faqs,
		config:        config,
		scholarships:  scholarships,
		preuniversity: preuniversity,
		maxBytes:      maxBytes,
		logger:        logger.With().Str("component", "knowledge_service").Logger(),
	}
}

func (s *knowledgeService) Context(ctx context.Context) (string, error) {
	if cached := s.cached.Load(); cached != nil {
		return *cached, nil
	}
	return s.rebuild(ctx)
}

// Invalidate discards the cached document. The next Context call rebuilds.
func (s *knowledgeService) Invalidate() {
	s.cached.Store(nil)
}

func (s *knowledgeService) rebuild(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Another caller may have rebuilt while this one waited on the lock.
	if cached := s.cached.Load(); cached != nil {
		return *cached, nil
	}

	document, err := s.assemble(ctx)
	if err != nil {
		return "", err
	}

	s.cached.Store(&document)
	observability.KnowledgeRebuilds().Inc()
	s.logger.Debug().Int("bytes", len(document)).Msg("knowledge context rebuilt")

	return document, nil
}

// assemble renders the sections in fixed priority order. A section whose
// query returns zero rows is omitted; a section that would push the document
// past the size cap is dropped along with everything after it.
func (s *knowledgeService) assemble(ctx context.Context) (string, error) {
	sections := []func(context.Context) (string, error){
		s.careerSection,
		s.faqSection,
		s.configSection,
		s.scholarshipSection,
		s.preuniversitySection,
	}

	builder := strings.Builder{}
	builder.WriteString(knowledgePreamble)

	for _, build := range sections {
		section, err := build(ctx)
		if err != nil {
			return "", err
		}
		if section == "" {
			continue
		}
		if s.maxBytes > 0 && builder.Len()+len(section) > s.maxBytes {
			s.logger.Warn().Int("max_bytes", s.maxBytes).Msg("knowledge context truncated at size cap")
			break
		}
		builder.WriteString(section)
	}

	return builder.String(), nil
}

func (s *knowledgeService) careerSection(ctx context.Context) (string, error) {
	careers, err := s.careers.List(ctx, true)
	if err != nil {
		return "", err
	}
	if len(careers) == 0 {
		return "", nil
	}

	b := strings.Builder{}
	b.WriteString("🎓 OFERTA ACADÉMICA (CARRERAS):\n")
	for _, c := range careers {
		fmt.Fprintf(&b, "--- %s (%s) ---\n", c.Name, c.Code)
		if c.Description != "" {
			fmt.Fprintf(&b, "Descripción: %s\n", c.Description)
		}
		if c.Duration != "" {
			fmt.Fprintf(&b, "Duración: %s\n", c.Duration)
		}
		if c.Modality != "" {
			fmt.Fprintf(&b, "Modalidad: %s\n", c.Modality)
		}
		if c.Campus != "" {
			fmt.Fprintf(&b, "Sede: %s\n", c.Campus)
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

func (s *knowledgeService) faqSection(ctx context.Context) (string, error) {
	faqs, err := s.faqs.List(ctx, true)
	if err != nil {
		return "", err
	}
	if len(faqs) == 0 {
		return "", nil
	}

	b := strings.Builder{}
	b.WriteString("❓ BANCO DE PREGUNTAS FRECUENTES:\n")
	for _, f := range faqs {
		fmt.Fprintf(&b, "P: %s R: %s\n", f.Question, f.Answer)
	}
	b.WriteString("\n")
	return b.String(), nil
}

func (s *knowledgeService) configSection(ctx context.Context) (string, error) {
	entries, err := s.config.ListPublic(ctx)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", nil
	}

	b := strings.Builder{}
	b.WriteString("📍 UBICACIONES Y CONTACTOS OFICIALES:\n")
	for _, entry := range entries {
		fmt.Fprintf(&b, "- %s: %s\n", humanizeConfigKey(entry.ConfigKey), entry.ConfigValue)
	}
	b.WriteString("\n")
	return b.String(), nil
}

func (s *knowledgeService) scholarshipSection(ctx context.Context) (string, error) {
	scholarships, err := s.scholarships.List(ctx, true)
	if err != nil {
		return "", err
	}
	if len(scholarships) == 0 {
		return "", nil
	}

	b := strings.Builder{}
	b.WriteString("💰 BECAS Y DESCUENTOS DISPONIBLES:\n")
	for _, sc := range scholarships {
		fmt.Fprintf(&b, "- %s: Cobertura del %s\n", sc.Name, sc.Coverage)
		if sc.Description != "" {
			fmt.Fprintf(&b, "  Descripción: %s\n", sc.Description)
		}
		if sc.Requirements != "" {
			fmt.Fprintf(&b, "  Requisitos: %s\n", sc.Requirements)
		}
	}
	b.WriteString("\n")
	return b.String(), nil
}

func (s *knowledgeService) preuniversitySection(ctx context.Context) (string, error) {
	programs, err := s.preuniversity.List(ctx, true)
	if err != nil {
		return "", err
	}
	if len(programs) == 0 {
		return "", nil
	}

	b := strings.Builder{}
	b.WriteString("📚 CURSOS PREUNIVERSITARIOS:\n")
	for _, p := range programs {
		fmt.Fprintf(&b, "- %s: Costo %s Bs.\n", p.ProgramName, formatCost(p.Cost))
		if p.StartDate != nil {
			fmt.Fprintf(&b, "  Inicia: %s\n", p.StartDate.Format("2006-01-02"))
		}
	}
	b.WriteString("\n")
	return b.String(), nil
}

func humanizeConfigKey(key string) string {
	cleaned := strings.TrimPrefix(key, "university_")
	cleaned = strings.ReplaceAll(cleaned, "_", " ")
	if cleaned == "" {
		return key
	}
	return strings.ToUpper(cleaned[:1]) + cleaned[1:]
}

func formatCost(cost *float64) string {
	if cost == nil {
		return "a confirmar"
	}
	return fmt.Sprintf("%.2f", *cost)
}
