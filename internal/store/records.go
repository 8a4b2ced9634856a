// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/beichen-observer/models"
)

// recordSchema maps one record type onto its table. columns lists the
// writable columns in the order produced by values; targets returns scan
// destinations for id, columns, created_at and updated_at, collecting the raw
// timeline payload into timeline.
type recordSchema[T any] struct {
	name        string
	table       string
	columns     []string
	values      func(record T) ([]any, error)
	targets     func(record *T, timeline *[]byte) []any
	setTimeline func(record *T, timeline models.Timeline)
}

func (s recordSchema[T]) selectColumns() []string {
	cols := make([]string, 0, len(s.columns)+3)
	cols = append(cols, "id")
	cols = append(cols, s.columns...)
	return append(cols, "created_at", "updated_at")
}

var observationSchema = recordSchema[models.Observation]{
	name:  "daily observation",
	table: "daily_observations",
	columns: []string{
		"date", "weather", `"teacherId"`, `"classId"`, `"campusId"`, "timeline",
		`"lifeActivity"`, `"outdoorActivity"`, `"learningActivity"`, `"gameActivity"`,
		`"wonderfulMoment"`, `"homeCooperation"`,
	},
	values: func(o models.Observation) ([]any, error) {
		timeline, err := timelineValue(o.Timeline)
		if err != nil {
			return nil, err
		}
		return []any{
			o.Date, o.Weather, o.TeacherID, o.ClassID, nullIfEmpty(o.CampusID), timeline,
			nullIfEmpty(o.LifeActivity), nullIfEmpty(o.OutdoorActivity), nullIfEmpty(o.LearningActivity),
			nullIfEmpty(o.GameActivity), nullIfEmpty(o.WonderfulMoment), nullIfEmpty(o.HomeCooperation),
		}, nil
	},
	targets: func(o *models.Observation, timeline *[]byte) []any {
		return []any{
			idTarget{&o.ID},
			textTarget{&o.Date}, textTarget{&o.Weather}, textTarget{&o.TeacherID}, textTarget{&o.ClassID},
			textTarget{&o.CampusID}, timeline,
			textTarget{&o.LifeActivity}, textTarget{&o.OutdoorActivity}, textTarget{&o.LearningActivity},
			textTarget{&o.GameActivity}, textTarget{&o.WonderfulMoment}, textTarget{&o.HomeCooperation},
			&o.CreatedAt, &o.UpdatedAt,
		}
	},
	setTimeline: func(o *models.Observation, timeline models.Timeline) {
		o.Timeline = timeline
	},
}

var dutyReportSchema = recordSchema[models.DutyReport]{
	name:  "duty report",
	table: "duty_reports",
	columns: []string{
		"date", "weather", `"leaderId"`, `"campusId"`, "timeline",
		`"safetyCheck"`, `"incidents"`, `"summary"`,
	},
	values: func(d models.DutyReport) ([]any, error) {
		timeline, err := timelineValue(d.Timeline)
		if err != nil {
			return nil, err
		}
		return []any{
			d.Date, d.Weather, d.LeaderID, nullIfEmpty(d.CampusID), timeline,
			nullIfEmpty(d.SafetyCheck), nullIfEmpty(d.Incidents), nullIfEmpty(d.Summary),
		}, nil
	},
	targets: func(d *models.DutyReport, timeline *[]byte) []any {
		return []any{
			idTarget{&d.ID},
			textTarget{&d.Date}, textTarget{&d.Weather}, textTarget{&d.LeaderID}, textTarget{&d.CampusID}, timeline,
			textTarget{&d.SafetyCheck}, textTarget{&d.Incidents}, textTarget{&d.Summary},
			&d.CreatedAt, &d.UpdatedAt,
		}
	},
	setTimeline: func(d *models.DutyReport, timeline models.Timeline) {
		d.Timeline = timeline
	},
}

// timelineValue encodes a timeline for the JSONB column; an empty timeline
// is stored as NULL.
func timelineValue(t models.Timeline) (any, error) {
	b, err := t.Value()
	if err != nil {
		return nil, fmt.Errorf("encode timeline: %w", err)
	}
	if b == nil {
		return nil, nil
	}
	return string(b), nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// textTarget scans a nullable text column into a string, NULL becoming "".
type textTarget struct {
	dst *string
}

func (t textTarget) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t.dst = ""
	case string:
		*t.dst = v
	case []byte:
		*t.dst = string(v)
	default:
		return fmt.Errorf("cannot scan %T into text", src)
	}
	return nil
}

// idTarget scans an integer key into a [models.ID].
type idTarget struct {
	dst *models.ID
}

func (t idTarget) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		*t.dst = models.IDFromInt64(v)
	case int32:
		*t.dst = models.IDFromInt64(int64(v))
	case string:
		*t.dst = models.ID(v)
	case []byte:
		*t.dst = models.ID(v)
	case nil:
		*t.dst = ""
	default:
		return fmt.Errorf("cannot scan %T into id", src)
	}
	return nil
}

// parseRecordID converts a path id into the integer key, reporting anything
// else as a missing record.
func parseRecordID(id models.ID) (int64, error) {
	v, err := strconv.ParseInt(id.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRecordNotFound, err)
	}
	return v, nil
}
