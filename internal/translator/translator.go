// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package translator converts records between the display format, where
// references are names and notes are nested, and the storage format, where
// references are ids and notes are flat fields.
package translator

import (
	"github.com/MKhiriev/beichen-observer/internal/logger"
	"github.com/MKhiriev/beichen-observer/models"
)

// UnknownLabel replaces names that cannot be resolved from an id.
const UnknownLabel = "unknown"

// Display-format field names reported by [ResolutionError].
const (
	FieldTeacher = "teacher"
	FieldClass   = "class"
	FieldSchool  = "school"
	FieldLeader  = "leader"
)

// Resolver answers name/id lookups. *reference.Cache implements it.
type Resolver interface {
	IDByName(kind models.ReferenceKind, name string) (models.ID, bool)
	NameByID(kind models.ReferenceKind, id models.ID) (string, bool)
}

type Translator struct {
	resolver Resolver
	logger   *logger.Logger
}

func New(resolver Resolver, logger *logger.Logger) *Translator {
	return &Translator{resolver: resolver, logger: logger}
}

// ToStorageFormat resolves teacher and class, which are required, and school,
// which is left empty when unknown. Date, weather and timeline pass through.
func (t *Translator) ToStorageFormat(display models.DisplayObservation) (models.Observation, error) {
	teacherID, err := t.required(FieldTeacher, models.ReferenceTeacher, display.Teacher)
	if err != nil {
		return models.Observation{}, err
	}
	classID, err := t.required(FieldClass, models.ReferenceClass, display.Class)
	if err != nil {
		return models.Observation{}, err
	}

	return models.Observation{
		ID:               display.ID,
		Date:             display.Date,
		Weather:          display.Weather,
		TeacherID:        teacherID.String(),
		ClassID:          classID.String(),
		CampusID:         t.optional(FieldSchool, models.ReferenceCampus, display.School).String(),
		Timeline:         display.Timeline,
		LifeActivity:     display.Observations.LifeActivity,
		OutdoorActivity:  display.Observations.OutdoorActivity,
		LearningActivity: display.Observations.LearningActivity,
		GameActivity:     display.Observations.GameActivity,
		HomeCooperation:  display.Observations.HomeCooperation,
	}, nil
}

// ToDisplayFormat never fails: ids that do not resolve become [UnknownLabel].
func (t *Translator) ToDisplayFormat(record models.Observation) models.DisplayObservation {
	return models.DisplayObservation{
		ID:       record.ID,
		Date:     record.Date,
		Weather:  record.Weather,
		Teacher:  t.name(models.ReferenceTeacher, record.TeacherID),
		Class:    t.name(models.ReferenceClass, record.ClassID),
		School:   t.name(models.ReferenceCampus, record.CampusID),
		Timeline: record.Timeline,
		Observations: models.ObservationNotes{
			LifeActivity:     record.LifeActivity,
			OutdoorActivity:  record.OutdoorActivity,
			LearningActivity: record.LearningActivity,
			GameActivity:     record.GameActivity,
			HomeCooperation:  record.HomeCooperation,
		},
		Timestamp: record.Timestamp(),
	}
}

// ToStorageDutyReport resolves the leader, which is required, and the
// school, which is optional.
func (t *Translator) ToStorageDutyReport(display models.DisplayDutyReport) (models.DutyReport, error) {
	leaderID, err := t.required(FieldLeader, models.ReferenceLeader, display.Leader)
	if err != nil {
		return models.DutyReport{}, err
	}

	return models.DutyReport{
		ID:          display.ID,
		Date:        display.Date,
		Weather:     display.Weather,
		LeaderID:    leaderID.String(),
		CampusID:    t.optional(FieldSchool, models.ReferenceCampus, display.School).String(),
		Timeline:    display.Timeline,
		SafetyCheck: display.Report.SafetyCheck,
		Incidents:   display.Report.Incidents,
		Summary:     display.Report.Summary,
	}, nil
}

func (t *Translator) ToDisplayDutyReport(record models.DutyReport) models.DisplayDutyReport {
	return models.DisplayDutyReport{
		ID:       record.ID,
		Date:     record.Date,
		Weather:  record.Weather,
		Leader:   t.name(models.ReferenceLeader, record.LeaderID),
		School:   t.name(models.ReferenceCampus, record.CampusID),
		Timeline: record.Timeline,
		Report: models.DutyReportNotes{
			SafetyCheck: record.SafetyCheck,
			Incidents:   record.Incidents,
			Summary:     record.Summary,
		},
		Timestamp: record.Timestamp(),
	}
}

func (t *Translator) required(field string, kind models.ReferenceKind, name string) (models.ID, error) {
	id, ok := t.resolver.IDByName(kind, name)
	if !ok {
		return "", &ResolutionError{Field: field, Kind: kind, Name: name}
	}
	return id, nil
}

func (t *Translator) optional(field string, kind models.ReferenceKind, name string) models.ID {
	id, ok := t.resolver.IDByName(kind, name)
	if !ok && name != "" {
		t.logger.Warn().Str("field", field).Str("name", name).Msg("name not found, leaving reference empty")
	}
	return id
}

func (t *Translator) name(kind models.ReferenceKind, id string) string {
	name, ok := t.resolver.NameByID(kind, models.ID(id))
	if !ok {
		return UnknownLabel
	}
	return name
}
