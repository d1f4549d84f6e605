package dto

import (
	"time"

	"github.com/infoemi/campus-api/internal/models"
)

// CareerRequest is the create/update payload for academic programs.
type CareerRequest struct {
	Code         string   `json:"code" validate:"required,max=16"`
	Name         string   `json:"name" validate:"required,max=255"`
	Faculty      string   `json:"faculty" validate:"max=128"`
	Duration     string   `json:"duration" validate:"max=64"`
	Modality     string   `json:"modality" validate:"max=64"`
	Campus       string   `json:"campus" validate:"max=128"`
	Description  string   `json:"description"`
	Requirements string   `json:"requirements"`
	Cost         *float64 `json:"cost" validate:"omitempty,gte=0"`
	IsActive     *bool    `json:"is_active"`
}

// Model maps the payload onto a persistable career record.
func (r CareerRequest) Model() models.Career {
	return models.Career{
		Code:         r.Code,
		Name:         r.Name,
		Faculty:      r.Faculty,
		Duration:     r.Duration,
		Modality:     r.Modality,
		Campus:       r.Campus,
		Description:  r.Description,
		Requirements: r.Requirements,
		Cost:         r.Cost,
		IsActive:     activeOrDefault(r.IsActive),
	}
}

// NewCareerRequestFromModel rebuilds the wire payload a record corresponds to.
// Mutation diffs compare payloads, not models, so both sides share one shape.
func NewCareerRequestFromModel(m models.Career) CareerRequest {
	active := m.IsActive
	return CareerRequest{
		Code:         m.Code,
		Name:         m.Name,
		Faculty:      m.Faculty,
		Duration:     m.Duration,
		Modality:     m.Modality,
		Campus:       m.Campus,
		Description:  m.Description,
		Requirements: m.Requirements,
		Cost:         m.Cost,
		IsActive:     &active,
	}
}

// EventRequest is the create/update payload for events.
type EventRequest struct {
	Title            string `json:"title" validate:"required,max=255"`
	EventType        string `json:"event_type" validate:"required,max=64"`
	Description      string `json:"description"`
	Date             string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime        string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime          string `json:"end_time" validate:"omitempty,datetime=15:04"`
	Location         string `json:"location" validate:"max=255"`
	Organizer        string `json:"organizer" validate:"max=128"`
	RegistrationLink string `json:"registration_link" validate:"omitempty,url,max=512"`
	IsActive         *bool  `json:"is_active"`
}

// Model maps the payload onto a persistable event record.
func (r EventRequest) Model() (models.Event, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return models.Event{}, err
	}
	return models.Event{
		Title:            r.Title,
		EventType:        r.EventType,
		Description:      r.Description,
		Date:             date,
		StartTime:        r.StartTime,
		EndTime:          r.EndTime,
		Location:         r.Location,
		Organizer:        r.Organizer,
		RegistrationLink: r.RegistrationLink,
		IsActive:         activeOrDefault(r.IsActive),
	}, nil
}

// NewEventRequestFromModel rebuilds the wire payload a record corresponds to.
func NewEventRequestFromModel(m models.Event) EventRequest {
	active := m.IsActive
	return EventRequest{
		Title:            m.Title,
		EventType:        m.EventType,
		Description:      m.Description,
		Date:             m.Date.Format(dateLayout),
		StartTime:        m.StartTime,
		EndTime:          m.EndTime,
		Location:         m.Location,
		Organizer:        m.Organizer,
		RegistrationLink: m.RegistrationLink,
		IsActive:         &active,
	}
}

// FAQRequest is the create/update payload for FAQs.
type FAQRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Category string `json:"category" validate:"max=64"`
	Priority int    `json:"priority" validate:"gte=0"`
	IsActive *bool  `json:"is_active"`
}

// Model maps the payload onto a persistable FAQ record.
func (r FAQRequest) Model() models.FAQ {
	priority := r.Priority
	if priority == 0 {
		priority = 1
	}
	return models.FAQ{
		Question: r.Question,
		Answer:   r.Answer,
		Category: r.Category,
		Priority: priority,
		IsActive: activeOrDefault(r.IsActive),
	}
}

// NewFAQRequestFromModel rebuilds the wire payload a record corresponds to.
func NewFAQRequestFromModel(m models.FAQ) FAQRequest {
	active := m.IsActive
	return FAQRequest{
		Question: m.Question,
		Answer:   m.Answer,
		Category: m.Category,
		Priority: m.Priority,
		IsActive: &active,
	}
}

// ContactRequest is the create/update payload for contact records.
type ContactRequest struct {
	Department  string `json:"department" validate:"required,max=128"`
	Phone       string `json:"phone" validate:"max=32"`
	Email       string `json:"email" validate:"omitempty,email,max=160"`
	Office      string `json:"office" validate:"max=128"`
	Schedule    string `json:"schedule" validate:"max=128"`
	Responsible string `json:"responsible" validate:"max=128"`
	Priority    int    `json:"priority" validate:"gte=0"`
	IsActive    *bool  `json:"is_active"`
}

// Model maps the payload onto a persistable contact record.
func (r ContactRequest) Model() models.Contact {
	priority := r.Priority
	if priority == 0 {
		priority = 1
	}
	return models.Contact{
		Department:  r.Department,
		Phone:       r.Phone,
		Email:       r.Email,
		Office:      r.Office,
		Schedule:    r.Schedule,
		Responsible: r.Responsible,
		Priority:    priority,
		IsActive:    activeOrDefault(r.IsActive),
	}
}

// NewContactRequestFromModel rebuilds the wire payload a record corresponds to.
func NewContactRequestFromModel(m models.Contact) ContactRequest {
	active := m.IsActive
	return ContactRequest{
		Department:  m.Department,
		Phone:       m.Phone,
		Email:       m.Email,
		Office:      m.Office,
		Schedule:    m.Schedule,
		Responsible: m.Responsible,
		Priority:    m.Priority,
		IsActive:    &active,
	}
}

// ScholarshipRequest is the create/update payload for scholarships.
type ScholarshipRequest struct {
	Name            string   `json:"name" validate:"required,max=255"`
	Description     string   `json:"description"`
	Requirements    string   `json:"requirements"`
	Coverage        string   `json:"coverage" validate:"max=128"`
	Amount          *float64 `json:"amount" validate:"omitempty,gte=0"`
	Deadline        string   `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	ApplicationLink string   `json:"application_link" validate:"omitempty,url,max=512"`
	IsActive        *bool    `json:"is_active"`
}

// Model maps the payload onto a persistable scholarship record.
func (r ScholarshipRequest) Model() (models.Scholarship, error) {
	deadline, err := ParseDate(r.Deadline)
	if err != nil {
		return models.Scholarship{}, err
	}
	return models.Scholarship{
		Name:            r.Name,
		Description:     r.Description,
		Requirements:    r.Requirements,
		Coverage:        r.Coverage,
		Amount:          r.Amount,
		Deadline:        deadline,
		ApplicationLink: r.ApplicationLink,
		IsActive:        activeOrDefault(r.IsActive),
	}, nil
}

// NewScholarshipRequestFromModel rebuilds the wire payload a record corresponds to.
func NewScholarshipRequestFromModel(m models.Scholarship) ScholarshipRequest {
	active := m.IsActive
	return ScholarshipRequest{
		Name:            m.Name,
		Description:     m.Description,
		Requirements:    m.Requirements,
		Coverage:        m.Coverage,
		Amount:          m.Amount,
		Deadline:        FormatDate(m.Deadline),
		ApplicationLink: m.ApplicationLink,
		IsActive:        &active,
	}
}

// CalendarEntryRequest is the create/update payload for academic calendar entries.
type CalendarEntryRequest struct {
	EventName      string `json:"event_name" validate:"required,max=255"`
	EventType      string `json:"event_type" validate:"required,max=64"`
	StartDate      string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Description    string `json:"description"`
	AcademicPeriod string `json:"academic_period" validate:"max=64"`
	IsActive       *bool  `json:"is_active"`
}

// Model maps the payload onto a persistable calendar entry.
func (r CalendarEntryRequest) Model() (models.CalendarEntry, error) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return models.CalendarEntry{}, err
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return models.CalendarEntry{}, err
	}
	return models.CalendarEntry{
		EventName:      r.EventName,
		EventType:      r.EventType,
		StartDate:      start,
		EndDate:        end,
		Description:    r.Description,
		AcademicPeriod: r.AcademicPeriod,
		IsActive:       activeOrDefault(r.IsActive),
	}, nil
}

// NewCalendarEntryRequestFromModel rebuilds the wire payload a record corresponds to.
func NewCalendarEntryRequestFromModel(m models.CalendarEntry) CalendarEntryRequest {
	active := m.IsActive
	return CalendarEntryRequest{
		EventName:      m.EventName,
		EventType:      m.EventType,
		StartDate:      m.StartDate.Format(dateLayout),
		EndDate:        FormatDate(m.EndDate),
		Description:    m.Description,
		AcademicPeriod: m.AcademicPeriod,
		IsActive:       &active,
	}
}

// PreUniversityRequest is the create/update payload for preparatory programs.
type PreUniversityRequest struct {
	ProgramName      string   `json:"program_name" validate:"required,max=255"`
	Description      string   `json:"description" validate:"required"`
	Duration         string   `json:"duration" validate:"max=64"`
	Schedule         string   `json:"schedule" validate:"max=128"`
	StartDate        string   `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate          string   `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Cost             *float64 `json:"cost" validate:"omitempty,gte=0"`
	Requirements     string   `json:"requirements"`
	RegistrationLink string   `json:"registration_link" validate:"omitempty,url,max=512"`
	ContactEmail     string   `json:"contact_email" validate:"omitempty,email,max=160"`
	ContactPhone     string   `json:"contact_phone" validate:"max=32"`
	IsActive         *bool    `json:"is_active"`
}

// Model maps the payload onto a persistable program record.
func (r PreUniversityRequest) Model() (models.PreUniversityProgram, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return models.PreUniversityProgram{}, err
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return models.PreUniversityProgram{}, err
	}
	return models.PreUniversityProgram{
		ProgramName:      r.ProgramName,
		Description:      r.Description,
		Duration:         r.Duration,
		Schedule:         r.Schedule,
		StartDate:        start,
		EndDate:          end,
		Cost:             r.Cost,
		Requirements:     r.Requirements,
		RegistrationLink: r.RegistrationLink,
		ContactEmail:     r.ContactEmail,
		ContactPhone:     r.ContactPhone,
		IsActive:         activeOrDefault(r.IsActive),
	}, nil
}

// NewPreUniversityRequestFromModel rebuilds the wire payload a record corresponds to.
func NewPreUniversityRequestFromModel(m models.PreUniversityProgram) PreUniversityRequest {
	active := m.IsActive
	return PreUniversityRequest{
		ProgramName:      m.ProgramName,
		Description:      m.Description,
		Duration:         m.Duration,
		Schedule:         m.Schedule,
		StartDate:        FormatDate(m.StartDate),
		EndDate:          FormatDate(m.EndDate),
		Cost:             m.Cost,
		Requirements:     m.Requirements,
		RegistrationLink: m.RegistrationLink,
		ContactEmail:     m.ContactEmail,
		ContactPhone:     m.ContactPhone,
		IsActive:         &active,
	}
}

// InscriptionRequest is the create/update payload for enrollment windows.
type InscriptionRequest struct {
	Period       string `json:"period" validate:"required,max=64"`
	Requirements string `json:"requirements"`
	Process      string `json:"process"`
	Fees         string `json:"fees"`
	Schedule     string `json:"schedule" validate:"max=128"`
	StartDate    string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate      string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	IsActive     *bool  `json:"is_active"`
}

// Model maps the payload onto a persistable inscription record.
func (r InscriptionRequest) Model() (models.Inscription, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return models.Inscription{}, err
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return models.Inscription{}, err
	}
	return models.Inscription{
		Period:       r.Period,
		Requirements: r.Requirements,
		Process:      r.Process,
		Fees:         r.Fees,
		Schedule:     r.Schedule,
		StartDate:    start,
		EndDate:      end,
		IsActive:     activeOrDefault(r.IsActive),
	}, nil
}

// NewInscriptionRequestFromModel rebuilds the wire payload a record corresponds to.
func NewInscriptionRequestFromModel(m models.Inscription) InscriptionRequest {
	active := m.IsActive
	return InscriptionRequest{
		Period:       m.Period,
		Requirements: m.Requirements,
		Process:      m.Process,
		Fees:         m.Fees,
		Schedule:     m.Schedule,
		StartDate:    FormatDate(m.StartDate),
		EndDate:      FormatDate(m.EndDate),
		IsActive:     &active,
	}
}

// SystemConfigRequest updates the value of a public configuration key.
type SystemConfigRequest struct {
	ConfigValue string `json:"config_value" validate:"required"`
}

// CreatedResponse reports the identity assigned to a newly created record.
type CreatedResponse struct {
	ID uint `json:"id"`
}

func activeOrDefault(value *bool) bool {
	if value == nil {
		return true
	}
	return *value
}
