package models

import (
	"encoding/json"
	"time"
)

// Observation is a daily-observation record in storage format: every
// reference is a foreign-key ID and the observation notes are flat
// top-level fields.
type Observation struct {
	ID      ID     `json:"id,omitempty"`
	Date    string `json:"date"`
	Weather string `json:"weather"`

	TeacherID string `json:"teacherId"`
	ClassID   string `json:"classId"`
	CampusID  string `json:"campusId,omitempty"`

	Timeline Timeline `json:"timeline"`

	LifeActivity     string `json:"lifeActivity,omitempty"`
	OutdoorActivity  string `json:"outdoorActivity,omitempty"`
	LearningActivity string `json:"learningActivity,omitempty"`
	GameActivity     string `json:"gameActivity,omitempty"`
	WonderfulMoment  string `json:"wonderfulMoment,omitempty"`
	HomeCooperation  string `json:"homeCooperation,omitempty"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Timestamp returns the creation time when known, else the last update time.
func (o Observation) Timestamp() *time.Time {
	return preferCreated(o.CreatedAt, o.UpdatedAt)
}

// UnmarshalJSON implements [json.Unmarshaler]. It accepts the legacy write
// aliases "teacher" and "class" for teacherId and classId, and snake_case
// timestamp spellings.
func (o *Observation) UnmarshalJSON(b []byte) error {
	type plain Observation
	var wire struct {
		plain
		legacyTimestamps
		Teacher string `json:"teacher"`
		Class   string `json:"class"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	*o = Observation(wire.plain)
	if o.TeacherID == "" {
		o.TeacherID = wire.Teacher
	}
	if o.ClassID == "" {
		o.ClassID = wire.Class
	}
	o.CreatedAt, o.UpdatedAt = wire.legacyTimestamps.merge(o.CreatedAt, o.UpdatedAt)

	return nil
}

// DutyReport is a duty-broadcast record in storage format.
type DutyReport struct {
	ID      ID     `json:"id,omitempty"`
	Date    string `json:"date"`
	Weather string `json:"weather"`

	LeaderID string `json:"leaderId"`
	CampusID string `json:"campusId,omitempty"`

	Timeline Timeline `json:"timeline"`

	SafetyCheck string `json:"safetyCheck,omitempty"`
	Incidents   string `json:"incidents,omitempty"`
	Summary     string `json:"summary,omitempty"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Timestamp returns the creation time when known, else the last update time.
func (d DutyReport) Timestamp() *time.Time {
	return preferCreated(d.CreatedAt, d.UpdatedAt)
}

// UnmarshalJSON implements [json.Unmarshaler]. It accepts the legacy write
// alias "leader" for leaderId and snake_case timestamp spellings.
func (d *DutyReport) UnmarshalJSON(b []byte) error {
	type plain DutyReport
	var wire struct {
		plain
		legacyTimestamps
		Leader string `json:"leader"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	*d = DutyReport(wire.plain)
	if d.LeaderID == "" {
		d.LeaderID = wire.Leader
	}
	d.CreatedAt, d.UpdatedAt = wire.legacyTimestamps.merge(d.CreatedAt, d.UpdatedAt)

	return nil
}

// legacyTimestamps is the single place where the snake_case timestamp
// spellings used by some backends are mapped onto the camelCase fields.
type legacyTimestamps struct {
	CreatedAtSnake *time.Time `json:"created_at"`
	UpdatedAtSnake *time.Time `json:"updated_at"`
}

func (l legacyTimestamps) merge(createdAt, updatedAt *time.Time) (*time.Time, *time.Time) {
	if createdAt == nil {
		createdAt = l.CreatedAtSnake
	}
	if updatedAt == nil {
		updatedAt = l.UpdatedAtSnake
	}
	return createdAt, updatedAt
}

func preferCreated(createdAt, updatedAt *time.Time) *time.Time {
	if createdAt != nil {
		return createdAt
	}
	return updatedAt
}
