package model

import (
	"encoding/json"
	"regexp"
	"time"
)

// Status is the administrative disposition of an application.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConsidered Status = "considered"
	StatusDenied     Status = "denied"
)

// StatusAll is the listing sentinel meaning "no status filter".
const StatusAll = "all"

// Valid reports whether s is one of the three recognized statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConsidered, StatusDenied:
		return true
	default:
		return false
	}
}

var (
	discordIDPattern     = regexp.MustCompile(`^\d{17,19}$`)
	botExperiencePattern = regexp.MustCompile(`^[1-5]$`)
)

// Application represents a single staff-candidate submission.
//
// The core fields below are present in every form revision. Everything else the
// form collects (the essay questions) lives in Answers, keyed by the form field
// name, so the entity survives form revisions without schema churn. On the wire
// both are flattened into one object; see MarshalJSON/UnmarshalJSON.
type Application struct {
	ID              string
	DiscordUsername string
	DiscordUserID   string
	Country         string
	Timezone        string
	Age             string
	AboutYourself   string
	// BotExperience is the 1-5 self-rating, carried as a string ("1".."5")
	// because the form submits it as one.
	BotExperience string
	Answers       map[string]string
	Status        Status
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// coreFields maps the wire names of the fixed application fields. Answer keys
// never shadow these.
var coreFields = map[string]bool{
	"id":                   true,
	"discordUsername":      true,
	"discordUserId":        true,
	"country":              true,
	"timezone":             true,
	"age":                  true,
	"aboutYourself":        true,
	"discordBotExperience": true,
	"status":               true,
	"notes":                true,
	"createdAt":            true,
	"updatedAt":            true,
}

// MarshalJSON flattens the application into the single-level object the
// dashboard consumes: core fields and revision answers side by side.
func (a Application) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(a.Answers)+12)
	for k, v := range a.Answers {
		if !coreFields[k] {
			out[k] = v
		}
	}
	out["id"] = a.ID
	out["discordUsername"] = a.DiscordUsername
	out["discordUserId"] = a.DiscordUserID
	out["country"] = a.Country
	out["timezone"] = a.Timezone
	out["age"] = a.Age
	out["aboutYourself"] = a.AboutYourself
	out["discordBotExperience"] = a.BotExperience
	out["status"] = a.Status
	out["notes"] = a.Notes
	out["createdAt"] = a.CreatedAt.UTC().Format(time.RFC3339Nano)
	out["updatedAt"] = a.UpdatedAt.UTC().Format(time.RFC3339Nano)
	return json.Marshal(out)
}

// UnmarshalJSON is the inverse of MarshalJSON: known fields are bound, every
// other string-valued field becomes an answer.
func (a *Application) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	str := func(key string) string {
		if v, ok := raw[key].(string); ok {
			return v
		}
		return ""
	}

	a.ID = str("id")
	a.DiscordUsername = str("discordUsername")
	a.DiscordUserID = str("discordUserId")
	a.Country = str("country")
	a.Timezone = str("timezone")
	a.Age = str("age")
	a.AboutYourself = str("aboutYourself")
	a.BotExperience = str("discordBotExperience")
	a.Status = Status(str("status"))
	a.Notes = str("notes")

	if t, err := time.Parse(time.RFC3339Nano, str("createdAt")); err == nil {
		a.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339Nano, str("updatedAt")); err == nil {
		a.UpdatedAt = t
	}

	a.Answers = make(map[string]string)
	for k, v := range raw {
		if coreFields[k] {
			continue
		}
		if s, ok := v.(string); ok {
			a.Answers[k] = s
		}
	}
	return nil
}

// FormRevision describes one revision of the public application form: the set
// of required answer keys beyond the fixed core fields.
type FormRevision struct {
	Version  int
	Required []string
}

// CurrentFormRevision returns the revision the public form currently submits.
func CurrentFormRevision() FormRevision {
	return FormRevision{
		Version: 2,
		Required: []string{
			"whyJoin",
			"hoursPerWeek",
			"languages",
			"vcAvailability",
			"vcFrequency",
			"moderationExperience",
			"moderatorDefinition",
			"leadershipExperience",
			"automodKnowledge",
			"moderationBotsFamiliarity",
			"modCommandsKnowledge",
		},
	}
}

// SubmitApplicationRequest is the public form payload: a flat object of
// applicant-provided strings. A client-supplied status is accepted and
// discarded; submissions always start pending.
type SubmitApplicationRequest struct {
	DiscordUsername string
	DiscordUserID   string
	Country         string
	Timezone        string
	Age             string
	AboutYourself   string
	BotExperience   string
	Answers         map[string]string
}

// UnmarshalJSON accepts the flat form payload, binding core fields by name and
// collecting the remaining string fields as answers.
func (r *SubmitApplicationRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	str := func(key string) string {
		if v, ok := raw[key].(string); ok {
			return v
		}
		return ""
	}

	r.DiscordUsername = str("discordUsername")
	r.DiscordUserID = str("discordUserId")
	r.Country = str("country")
	r.Timezone = str("timezone")
	r.Age = str("age")
	r.AboutYourself = str("aboutYourself")
	r.BotExperience = str("discordBotExperience")

	r.Answers = make(map[string]string)
	for k, v := range raw {
		if coreFields[k] {
			continue
		}
		if s, ok := v.(string); ok {
			r.Answers[k] = s
		}
	}
	return nil
}

// Validate checks the request against the current form revision.
func (r *SubmitApplicationRequest) Validate() []FieldError {
	var errs []FieldError

	required := []struct {
		field string
		value string
	}{
		{"discordUsername", r.DiscordUsername},
		{"discordUserId", r.DiscordUserID},
		{"country", r.Country},
		{"timezone", r.Timezone},
		{"age", r.Age},
		{"aboutYourself", r.AboutYourself},
		{"discordBotExperience", r.BotExperience},
	}
	for _, f := range required {
		if f.value == "" {
			errs = append(errs, FieldError{Field: f.field, Message: f.field + " is required"})
		}
	}

	if r.DiscordUserID != "" && !discordIDPattern.MatchString(r.DiscordUserID) {
		errs = append(errs, FieldError{
			Field:   "discordUserId",
			Message: "discordUserId must be a 17-19 digit Discord user ID",
		})
	}
	if r.BotExperience != "" && !botExperiencePattern.MatchString(r.BotExperience) {
		errs = append(errs, FieldError{
			Field:   "discordBotExperience",
			Message: "discordBotExperience must be a rating from 1 to 5",
		})
	}

	for _, key := range CurrentFormRevision().Required {
		if r.Answers[key] == "" {
			errs = append(errs, FieldError{Field: key, Message: key + " is required"})
		}
	}

	return errs
}

// UpdateApplicationRequest is the partial review patch: a new status, new
// notes, or both.
type UpdateApplicationRequest struct {
	Status *Status `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// Validate checks the patch shape.
func (r *UpdateApplicationRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Status == nil && r.Notes == nil {
		errs = append(errs, FieldError{Field: "status", Message: "at least one of status or notes is required"})
	}
	if r.Status != nil && !r.Status.Valid() {
		errs = append(errs, FieldError{
			Field:   "status",
			Message: "status must be one of pending, considered, denied",
		})
	}
	return errs
}

// Stats are the aggregate counts shown on the review dashboard.
type Stats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	Considered int `json:"considered"`
	Denied     int `json:"denied"`
}
