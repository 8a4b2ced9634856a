package models

import "time"

// ObservationNotes groups the five free-text observation fields of the
// display format.
type ObservationNotes struct {
	LifeActivity     string `json:"lifeActivity"`
	OutdoorActivity  string `json:"outdoorActivity"`
	LearningActivity string `json:"learningActivity"`
	GameActivity     string `json:"gameActivity"`
	HomeCooperation  string `json:"homeCooperation"`
}

// DisplayObservation is the human-readable ("old") shape of a daily
// observation: references are names, notes are nested.
type DisplayObservation struct {
	ID      ID     `json:"id,omitempty"`
	Date    string `json:"date"`
	Weather string `json:"weather"`

	Teacher string `json:"teacher"`
	Class   string `json:"class"`
	School  string `json:"school"`

	Timeline     Timeline         `json:"timeline"`
	Observations ObservationNotes `json:"observations"`

	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// DutyReportNotes groups the free-text fields of a duty report.
type DutyReportNotes struct {
	SafetyCheck string `json:"safetyCheck"`
	Incidents   string `json:"incidents"`
	Summary     string `json:"summary"`
}

// DisplayDutyReport is the human-readable shape of a duty report.
type DisplayDutyReport struct {
	ID      ID     `json:"id,omitempty"`
	Date    string `json:"date"`
	Weather string `json:"weather"`

	Leader string `json:"leader"`
	School string `json:"school"`

	Timeline Timeline        `json:"timeline"`
	Report   DutyReportNotes `json:"report"`

	Timestamp *time.Time `json:"timestamp,omitempty"`
}
