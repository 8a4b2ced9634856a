package validators

import (
	"context"
	"fmt"
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/MKhiriev/beichen-observer/models"
)

// JSON names of the validated fields. They select rules in Validate.
const (
	FieldDate      = "date"
	FieldWeather   = "weather"
	FieldTeacherID = "teacherId"
	FieldClassID   = "classId"
	FieldCampusID  = "campusId"
	FieldLeaderID  = "leaderId"
	FieldTimeline  = "timeline"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldRole      = "role"
	FieldPassword  = "password"
)

const (
	dateLayout       = "2006-01-02"
	maxWeatherLength = 50
	maxIDLength      = 100
	maxNameLength    = 100
)

var roles = []any{models.RoleAdmin, models.RoleTeacher, models.RoleLeader}

type PayloadValidator struct {
}

func NewPayloadValidator() Validator {
	return &PayloadValidator{}
}

func (v *PayloadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error

	switch value := obj.(type) {
	case models.Observation:
		err = validateObservation(&value, fields)
	case *models.Observation:
		err = validateObservation(value, fields)

	case models.DutyReport:
		err = validateDutyReport(&value, fields)
	case *models.DutyReport:
		err = validateDutyReport(value, fields)

	case models.CreateCampusRequest:
		err = validateStruct(&value, fields,
			namedRule{FieldName, validation.Field(&value.Name, validation.Required, validation.RuneLength(1, maxNameLength))},
		)

	case models.CreateClassRequest:
		err = validateStruct(&value, fields,
			namedRule{FieldName, validation.Field(&value.Name, validation.Required, validation.RuneLength(1, maxNameLength))},
			namedRule{FieldCampusID, validation.Field(&value.CampusID, validation.RuneLength(0, maxIDLength))},
		)

	case models.CreateUserRequest:
		err = validateStruct(&value, fields,
			namedRule{FieldName, validation.Field(&value.Name, validation.Required, validation.RuneLength(1, maxNameLength))},
			namedRule{FieldEmail, validation.Field(&value.Email, validation.Required, is.EmailFormat)},
			namedRule{FieldRole, validation.Field(&value.Role, validation.Required, validation.In(roles...))},
			namedRule{FieldPassword, validation.Field(&value.Password, validation.Length(6, 72))},
		)

	case models.Credentials:
		err = validateStruct(&value, fields,
			namedRule{FieldEmail, validation.Field(&value.Email, validation.Required)},
			namedRule{FieldPassword, validation.Field(&value.Password, validation.Required)},
		)

	default:
		return ErrUnsupportedType
	}

	return err
}

func validateObservation(o *models.Observation, fields []string) error {
	return validateStruct(o, fields,
		namedRule{FieldDate, validation.Field(&o.Date, validation.Required, validation.Date(dateLayout))},
		namedRule{FieldWeather, validation.Field(&o.Weather, validation.RuneLength(0, maxWeatherLength))},
		namedRule{FieldTeacherID, validation.Field(&o.TeacherID, validation.RuneLength(0, maxIDLength))},
		namedRule{FieldClassID, validation.Field(&o.ClassID, validation.RuneLength(0, maxIDLength))},
		namedRule{FieldCampusID, validation.Field(&o.CampusID, validation.RuneLength(0, maxIDLength))},
		namedRule{FieldTimeline, validation.Field(&o.Timeline, validation.By(timelineEvents))},
	)
}

func validateDutyReport(d *models.DutyReport, fields []string) error {
	return validateStruct(d, fields,
		namedRule{FieldDate, validation.Field(&d.Date, validation.Required, validation.Date(dateLayout))},
		namedRule{FieldWeather, validation.Field(&d.Weather, validation.RuneLength(0, maxWeatherLength))},
		namedRule{FieldLeaderID, validation.Field(&d.LeaderID, validation.RuneLength(0, maxIDLength))},
		namedRule{FieldCampusID, validation.Field(&d.CampusID, validation.RuneLength(0, maxIDLength))},
		namedRule{FieldTimeline, validation.Field(&d.Timeline, validation.By(timelineEvents))},
	)
}

// timelineEvents requires every event to name what happened.
func timelineEvents(value any) error {
	timeline, ok := value.(models.Timeline)
	if !ok {
		return nil
	}
	for i, event := range timeline.Events {
		if event.Event == "" {
			return fmt.Errorf("event %d has no description of what happened", i+1)
		}
	}
	return nil
}

type namedRule struct {
	name  string
	field *validation.FieldRules
}

// validateStruct applies the rules whose name is listed in fields, or all of
// them when fields is empty.
func validateStruct(structPtr any, fields []string, rules ...namedRule) error {
	for _, f := range fields {
		if !slices.ContainsFunc(rules, func(r namedRule) bool { return r.name == f }) {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	selected := make([]*validation.FieldRules, 0, len(rules))
	for _, r := range rules {
		if len(fields) == 0 || slices.Contains(fields, r.name) {
			selected = append(selected, r.field)
		}
	}

	if err := validation.ValidateStruct(structPtr, selected...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return nil
}
