package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/models"
	"github.com/infoemi/campus-api/internal/repository"
)

const recentActivityWindow = 7 * 24 * time.Hour

// catalogTables are the tables counted by the stats endpoint.
var catalogTables = []string{
	"careers",
	"events",
	"faqs",
	"contacts",
	"scholarships",
	"academic_calendar",
	"pre_university",
	"inscriptions",
}

// AuditService records and exposes the administrative audit trail.
type AuditService interface {
	// Record appends one audit entry. It never returns an error: an audit
	// write failure must not roll back or block the mutation that already
	// committed, so failures are logged and swallowed.
	Record(ctx context.Context, entry models.AuditLog)
	List(ctx context.Context, req dto.AuditLogListRequest) (dto.AuditLogListResponse, error)
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type auditService struct {
	repo    repository.AuditLogRepository
	stats   repository.StatsRepository
	events  repository.EventRepository
	nats    *nats.Conn
	subject string
	logger  zerolog.Logger
}

// NewAuditService constructs the audit recorder. The NATS connection is
// optional; when present every recorded entry is also published for external
// consumers, again best-effort.
func NewAuditService(repo repository.AuditLogRepository, stats repository.StatsRepository, events repository.EventRepository, natsConn *nats.Conn, subject string, logger zerolog.Logger) AuditService {
	return &auditService{
		repo:    repo,
		stats:   stats,
		events:  events,
		nats:    natsConn,
		subject: subject,
		logger:  logger.With().Str("component", "audit_service").Logger(),
	}
}

func (s *auditService) Record(ctx context.Context, entry models.AuditLog) {
	if err := s.repo.Create(ctx, &entry); err != nil {
		s.logger.Error().Err(err).
			Str("action", entry.Action).
			Str("table", entry.TableName).
			Uint("record_id", entry.RecordID).
			Msg("failed to write audit entry")
		return
	}

	s.publish(entry)
}

func (s *auditService) publish(entry models.AuditLog) {
	if s.nats == nil || s.subject == "" {
		return
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to marshal audit event")
		return
	}

	if err := s.nats.Publish(s.subject, payload); err != nil {
		s.logger.Warn().Err(err).Msg("failed to publish audit event")
	}
}

func (s *auditService) List(ctx context.Context, req dto.AuditLogListRequest) (dto.AuditLogListResponse, error) {
	filter := repository.AuditLogFilter{
		Page:      req.Page,
		PageSize:  req.PageSize,
		Action:    req.Action,
		TableName: req.TableName,
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}

	entries, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return dto.AuditLogListResponse{}, err
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	totalPages := int((total + int64(filter.PageSize) - 1) / int64(filter.PageSize))

	return dto.AuditLogListResponse{
		Items: entries,
		Pagination: dto.PaginationMeta{
			Page:       page,
			PageSize:   filter.PageSize,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

// Stats aggregates active record counts per catalog table plus activity over
// the trailing seven-day window. A table that cannot be counted reports zero
// rather than failing the whole response.
func (s *auditService) Stats(ctx context.Context) (dto.StatsResponse, error) {
	tables := make(map[string]int64, len(catalogTables))
	for _, table := range catalogTables {
		count, err := s.stats.CountActive(ctx, table)
		if err != nil {
			s.logger.Warn().Err(err).Str("table", table).Msg("failed to count table")
			count = 0
		}
		tables[table] = count
	}

	upcoming, err := s.events.CountUpcoming(ctx, recentActivityWindow)
	if err != nil {
		return dto.StatsResponse{}, err
	}

	recent, err := s.repo.CountSince(ctx, time.Now().UTC().Add(-recentActivityWindow))
	if err != nil {
		return dto.StatsResponse{}, err
	}

	return dto.StatsResponse{
		Tables:         tables,
		UpcomingEvents: upcoming,
		RecentActivity: recent,
	}, nil
}
