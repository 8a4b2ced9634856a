package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservation_UnmarshalLegacyAliases(t *testing.T) {
	var o Observation
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 3,
		"date": "2025-03-01",
		"teacher": "u-1",
		"class": "5",
		"created_at": "2025-03-01T08:00:00Z"
	}`), &o))

	assert.Equal(t, ID("3"), o.ID)
	assert.Equal(t, "u-1", o.TeacherID)
	assert.Equal(t, "5", o.ClassID)
	require.NotNil(t, o.CreatedAt)
	assert.Equal(t, time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC), o.CreatedAt.UTC())
}

func TestObservation_CanonicalFieldsWin(t *testing.T) {
	var o Observation
	require.NoError(t, json.Unmarshal([]byte(`{
		"teacherId": "u-1", "teacher": "u-2",
		"classId": "5", "class": "6",
		"createdAt": "2025-03-01T08:00:00Z", "created_at": "2024-01-01T00:00:00Z"
	}`), &o))

	assert.Equal(t, "u-1", o.TeacherID)
	assert.Equal(t, "5", o.ClassID)
	assert.Equal(t, 2025, o.CreatedAt.Year())
}

func TestObservation_Timestamp(t *testing.T) {
	created := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	assert.Equal(t, &created, Observation{CreatedAt: &created, UpdatedAt: &updated}.Timestamp())
	assert.Equal(t, &updated, Observation{UpdatedAt: &updated}.Timestamp())
	assert.Nil(t, Observation{}.Timestamp())
}

func TestDutyReport_UnmarshalLegacyAliases(t *testing.T) {
	var d DutyReport
	require.NoError(t, json.Unmarshal([]byte(`{
		"date": "2025-03-02",
		"leader": "u-9",
		"updated_at": "2025-03-02T17:00:00Z",
		"timeline": [{"time": "07:30", "event": "巡查"}]
	}`), &d))

	assert.Equal(t, "u-9", d.LeaderID)
	assert.Nil(t, d.CreatedAt)
	require.NotNil(t, d.Timestamp())
	assert.Equal(t, 17, d.Timestamp().UTC().Hour())
	assert.Len(t, d.Timeline.Events, 1)
}

func TestObservation_MarshalUsesCanonicalNames(t *testing.T) {
	out, err := json.Marshal(Observation{ID: "1", Date: "2025-03-01", TeacherID: "u-1", ClassID: "5"})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 1,
		"date": "2025-03-01",
		"weather": "",
		"teacherId": "u-1",
		"classId": "5",
		"timeline": []
	}`, string(out))
}
