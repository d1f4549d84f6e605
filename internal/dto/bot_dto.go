package dto

import "github.com/infoemi/campus-api/internal/models"

// BotCareer is the reduced career projection rendered by the bot.
type BotCareer struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Faculty     string   `json:"faculty"`
	Duration    string   `json:"duration"`
	Modality    string   `json:"modality"`
	Description string   `json:"description"`
	Cost        *float64 `json:"cost"`
}

// NewBotCareer builds the bot projection of a career.
func NewBotCareer(m models.Career) BotCareer {
	return BotCareer{
		Code:        m.Code,
		Name:        m.Name,
		Faculty:     m.Faculty,
		Duration:    m.Duration,
		Modality:    m.Modality,
		Description: m.Description,
		Cost:        m.Cost,
	}
}

// BotEvent is the reduced event projection rendered by the bot.
type BotEvent struct {
	Title       string `json:"title"`
	EventType   string `json:"event_type"`
	Description string `json:"description"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Location    string `json:"location"`
	Organizer   string `json:"organizer"`
}

// NewBotEvent builds the bot projection of an event.
func NewBotEvent(m models.Event) BotEvent {
	return BotEvent{
		Title:       m.Title,
		EventType:   m.EventType,
		Description: m.Description,
		Date:        m.Date.Format(dateLayout),
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		Location:    m.Location,
		Organizer:   m.Organizer,
	}
}

// BotProgram is the reduced preparatory-program projection rendered by the bot.
type BotProgram struct {
	ID           uint     `json:"id"`
	ProgramName  string   `json:"program_name"`
	Description  string   `json:"description"`
	Duration     string   `json:"duration"`
	Schedule     string   `json:"schedule"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Cost         *float64 `json:"cost"`
	Requirements string   `json:"requirements"`
	ContactEmail string   `json:"contact_email"`
	ContactPhone string   `json:"contact_phone"`
}

// NewBotProgram builds the bot projection of a preparatory program.
func NewBotProgram(m models.PreUniversityProgram) BotProgram {
	return BotProgram{
		ID:           m.ID,
		ProgramName:  m.ProgramName,
		Description:  m.Description,
		Duration:     m.Duration,
		Schedule:     m.Schedule,
		StartDate:    FormatDate(m.StartDate),
		EndDate:      FormatDate(m.EndDate),
		Cost:         m.Cost,
		Requirements: m.Requirements,
		ContactEmail: m.ContactEmail,
		ContactPhone: m.ContactPhone,
	}
}

// BotScholarship is the reduced scholarship projection rendered by the bot.
type BotScholarship struct {
	Name            string `json:"name"`
	Coverage        string `json:"coverage"`
	Deadline        string `json:"deadline"`
	Description     string `json:"description"`
	Requirements    string `json:"requirements"`
	ApplicationLink string `json:"application_link"`
}

// NewBotScholarship builds the bot projection of a scholarship.
func NewBotScholarship(m models.Scholarship) BotScholarship {
	return BotScholarship{
		Name:            m.Name,
		Coverage:        m.Coverage,
		Deadline:        FormatDate(m.Deadline),
		Description:     m.Description,
		Requirements:    m.Requirements,
		ApplicationLink: m.ApplicationLink,
	}
}

// BotFAQ is the reduced FAQ projection rendered by the bot.
type BotFAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// NewBotFAQ builds the bot projection of an FAQ.
func NewBotFAQ(m models.FAQ) BotFAQ {
	return BotFAQ{Question: m.Question, Answer: m.Answer}
}

// BotContact is the reduced contact projection rendered by the bot.
type BotContact struct {
	Department  string `json:"department"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Office      string `json:"office"`
	Schedule    string `json:"schedule"`
	Responsible string `json:"responsible"`
}

// NewBotContact builds the bot projection of a contact record.
func NewBotContact(m models.Contact) BotContact {
	return BotContact{
		Department:  m.Department,
		Phone:       m.Phone,
		Email:       m.Email,
		Office:      m.Office,
		Schedule:    m.Schedule,
		Responsible: m.Responsible,
	}
}

// BotCalendarEntry is the reduced calendar projection rendered by the bot.
type BotCalendarEntry struct {
	EventName      string `json:"event_name"`
	EventType      string `json:"event_type"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	AcademicPeriod string `json:"academic_period"`
}

// NewBotCalendarEntry builds the bot projection of a calendar entry.
func NewBotCalendarEntry(m models.CalendarEntry) BotCalendarEntry {
	return BotCalendarEntry{
		EventName:      m.EventName,
		EventType:      m.EventType,
		StartDate:      m.StartDate.Format(dateLayout),
		EndDate:        FormatDate(m.EndDate),
		AcademicPeriod: m.AcademicPeriod,
	}
}

// BotInscription is the reduced enrollment projection rendered by the bot.
type BotInscription struct {
	Period       string `json:"period"`
	Requirements string `json:"requirements"`
	Process      string `json:"process"`
	Fees         string `json:"fees"`
	Schedule     string `json:"schedule"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

// NewBotInscription builds the bot projection of an inscription record.
func NewBotInscription(m models.Inscription) BotInscription {
	return BotInscription{
		Period:       m.Period,
		Requirements: m.Requirements,
		Process:      m.Process,
		Fees:         m.Fees,
		Schedule:     m.Schedule,
		StartDate:    FormatDate(m.StartDate),
		EndDate:      FormatDate(m.EndDate),
	}
}
