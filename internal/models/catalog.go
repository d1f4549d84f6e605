package models

import "time"

// Career represents an academic program offered by the university.
type Career struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Code          string    `gorm:"size:16;uniqueIndex;not null" json:"code"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Faculty       string    `gorm:"size:128" json:"faculty"`
	Duration      string    `gorm:"size:64" json:"duration"`
	Modality      string    `gorm:"size:64" json:"modality"`
	Campus        string    `gorm:"size:128" json:"campus"`
	Description   string    `gorm:"type:text" json:"description"`
	Requirements  string    `gorm:"type:text" json:"requirements"`
	Cost          *float64  `json:"cost"`
	CurriculumURL string    `gorm:"size:512" json:"curriculum_url"`
	IsActive      bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Event represents a scheduled university activity.
type Event struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Title            string    `gorm:"size:255;not null" json:"title"`
	EventType        string    `gorm:"size:64;not null" json:"event_type"`
	Description      string    `gorm:"type:text" json:"description"`
	Date             time.Time `gorm:"index;not null" json:"date"`
	StartTime        string    `gorm:"size:8" json:"start_time"`
	EndTime          string    `gorm:"size:8" json:"end_time"`
	Location         string    `gorm:"size:255" json:"location"`
	Organizer        string    `gorm:"size:128" json:"organizer"`
	RegistrationLink string    `gorm:"size:512" json:"registration_link"`
	IsActive         bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// FAQ stores a frequently asked question and its curated answer.
type FAQ struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	Category  string    `gorm:"size:64" json:"category"`
	Priority  int       `gorm:"default:1" json:"priority"`
	IsActive  bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Contact holds departmental contact information.
type Contact struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Department  string    `gorm:"size:128;not null" json:"department"`
	Phone       string    `gorm:"size:32" json:"phone"`
	Email       string    `gorm:"size:160" json:"email"`
	Office      string    `gorm:"size:128" json:"office"`
	Schedule    string    `gorm:"size:128" json:"schedule"`
	Responsible string    `gorm:"size:128" json:"responsible"`
	Priority    int       `gorm:"default:1" json:"priority"`
	IsActive    bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Scholarship describes a scholarship or discount program.
type Scholarship struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Name            string     `gorm:"size:255;not null" json:"name"`
	Description     string     `gorm:"type:text" json:"description"`
	Requirements    string     `gorm:"type:text" json:"requirements"`
	Coverage        string     `gorm:"size:128" json:"coverage"`
	Amount          *float64   `json:"amount"`
	Deadline        *time.Time `json:"deadline"`
	ApplicationLink string     `gorm:"size:512" json:"application_link"`
	IsActive        bool       `gorm:"default:true;index" json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// CalendarEntry marks a date range in the academic calendar.
type CalendarEntry struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	EventName      string     `gorm:"size:255;not null" json:"event_name"`
	EventType      string     `gorm:"size:64;not null" json:"event_type"`
	StartDate      time.Time  `gorm:"index;not null" json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Description    string     `gorm:"type:text" json:"description"`
	AcademicPeriod string     `gorm:"size:64" json:"academic_period"`
	IsActive       bool       `gorm:"default:true;index" json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TableName keeps the historical table name.
func (CalendarEntry) TableName() string {
	return "academic_calendar"
}

// PreUniversityProgram represents a preparatory course offered to applicants.
type PreUniversityProgram struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	ProgramName      string     `gorm:"size:255;not null" json:"program_name"`
	Description      string     `gorm:"type:text;not null" json:"description"`
	Duration         string     `gorm:"size:64" json:"duration"`
	Schedule         string     `gorm:"size:128" json:"schedule"`
	StartDate        *time.Time `gorm:"index" json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
	Cost             *float64   `json:"cost"`
	Requirements     string     `gorm:"type:text" json:"requirements"`
	RegistrationLink string     `gorm:"size:512" json:"registration_link"`
	ContactEmail     string     `gorm:"size:160" json:"contact_email"`
	ContactPhone     string     `gorm:"size:32" json:"contact_phone"`
	IsActive         bool       `gorm:"default:true;index" json:"is_active"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// TableName keeps the historical table name.
func (PreUniversityProgram) TableName() string {
	return "pre_university"
}

// Inscription publishes enrollment-window information for a given period.
type Inscription struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Period       string     `gorm:"size:64;not null" json:"period"`
	Requirements string     `gorm:"type:text" json:"requirements"`
	Process      string     `gorm:"type:text" json:"process"`
	Fees         string     `gorm:"type:text" json:"fees"`
	Schedule     string     `gorm:"size:128" json:"schedule"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	IsActive     bool       `gorm:"default:true;index" json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// SystemConfig is a key/value pair; public entries feed the assistant context.
type SystemConfig struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ConfigKey   string    `gorm:"size:128;uniqueIndex;not null" json:"config_key"`
	ConfigValue string    `gorm:"type:text;not null" json:"config_value"`
	IsPublic    bool      `gorm:"default:false;index" json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName keeps the historical table name.
func (SystemConfig) TableName() string {
	return "system_config"
}
