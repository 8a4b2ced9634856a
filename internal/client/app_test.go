package client

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/beichen-observer/internal/logger"
	"github.com/MKhiriev/beichen-observer/internal/mock"
	"github.com/MKhiriev/beichen-observer/internal/reference"
	"github.com/MKhiriev/beichen-observer/internal/service"
	"github.com/MKhiriev/beichen-observer/models"
)

type testApp struct {
	app          *App
	out          *bytes.Buffer
	observations *mock.MockClientRecordService[models.DisplayObservation]
	dutyReports  *mock.MockClientRecordService[models.DisplayDutyReport]
	references   *mock.MockClientReferenceService
	auth         *mock.MockClientAuthService
	configPaths  []string
}

func newTestApp(t *testing.T, stdin string) *testApp {
	t.Helper()
	ctrl := gomock.NewController(t)

	ta := &testApp{
		out:          &bytes.Buffer{},
		observations: mock.NewMockClientRecordService[models.DisplayObservation](ctrl),
		dutyReports:  mock.NewMockClientRecordService[models.DisplayDutyReport](ctrl),
		references:   mock.NewMockClientReferenceService(ctrl),
		auth:         mock.NewMockClientAuthService(ctrl),
	}
	services := &service.ClientServices{
		ObservationService: ta.observations,
		DutyReportService:  ta.dutyReports,
		ReferenceService:   ta.references,
		AuthService:        ta.auth,
	}
	connect := func(_ context.Context, configPath string) (*service.ClientServices, error) {
		ta.configPaths = append(ta.configPaths, configPath)
		return services, nil
	}
	ta.app = NewApp(connect, strings.NewReader(stdin), ta.out, logger.Nop())
	return ta
}

func (ta *testApp) run(args ...string) error {
	return ta.app.Run(context.Background(), append([]string{"beichen"}, args...))
}

func TestApp_ObservationsList(t *testing.T) {
	ta := newTestApp(t, "")
	ts := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	ta.observations.EXPECT().List(gomock.Any()).Return([]models.DisplayObservation{
		{
			ID: "7", Date: "2025-03-01", Weather: "晴", Teacher: "王老师", Class: "大一班", School: "北辰园",
			Timeline:  models.NewTimeline(models.TimelineEvent{Time: "08:00", Event: "入园"}),
			Timestamp: &ts,
		},
	}, nil)

	require.NoError(t, ta.run("--config", "client.yaml", "observations", "list"))

	out := ta.out.String()
	assert.Contains(t, out, "Daily observations")
	assert.Contains(t, out, "王老师")
	assert.Contains(t, out, "大一班")
	assert.Contains(t, out, "北辰园")
	assert.Equal(t, []string{"client.yaml"}, ta.configPaths)
}

func TestApp_EmptyList(t *testing.T) {
	ta := newTestApp(t, "")
	ta.dutyReports.EXPECT().List(gomock.Any()).Return(nil, nil)

	require.NoError(t, ta.run("duty", "list"))
	assert.Contains(t, ta.out.String(), "(empty)")
}

func TestApp_Show(t *testing.T) {
	ta := newTestApp(t, "")
	ta.dutyReports.EXPECT().Get(gomock.Any(), models.ID("3")).Return(models.DisplayDutyReport{
		ID: "3", Date: "2025-03-02", Leader: "李园长",
		Report: models.DutyReportNotes{Summary: "一切正常"},
	}, nil)

	require.NoError(t, ta.run("duty-reports", "show", "3"))

	out := ta.out.String()
	assert.Contains(t, out, "duty-reports 3")
	assert.Contains(t, out, `"leader": "李园长"`)
	assert.Contains(t, out, `"summary": "一切正常"`)
}

func TestApp_ShowRequiresID(t *testing.T) {
	ta := newTestApp(t, "")

	err := ta.run("observations", "show")
	assert.ErrorIs(t, err, errMissingID)
	assert.Empty(t, ta.configPaths, "nothing should connect before arguments are checked")
}

func TestApp_CreateFromFile(t *testing.T) {
	ta := newTestApp(t, "")
	path := filepath.Join(t.TempDir(), "obs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"date": "2025-03-01",
		"teacher": "王老师",
		"class": "大一班",
		"timeline": [{"time": "08:00", "event": "入园"}],
		"observations": {"lifeActivity": "自主进餐"}
	}`), 0o600))

	ta.observations.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o models.DisplayObservation) (models.ID, error) {
			assert.Equal(t, "王老师", o.Teacher)
			assert.Equal(t, "大一班", o.Class)
			assert.Equal(t, "自主进餐", o.Observations.LifeActivity)
			assert.Len(t, o.Timeline.Events, 1)
			return "12", nil
		})

	require.NoError(t, ta.run("obs", "create", "--file", path))
	assert.Contains(t, ta.out.String(), "created 12")
}

func TestApp_UpdateFromStdin(t *testing.T) {
	ta := newTestApp(t, `{"date": "2025-03-02", "leader": "李园长"}`)
	ta.dutyReports.EXPECT().
		Update(gomock.Any(), models.ID("4"), models.DisplayDutyReport{Date: "2025-03-02", Leader: "李园长"}).
		Return(models.ID("4"), nil)

	require.NoError(t, ta.run("duty", "update", "-f", "-", "4"))
	assert.Contains(t, ta.out.String(), "updated 4")
}

func TestApp_CreateRejectsBadFile(t *testing.T) {
	ta := newTestApp(t, "not json")

	err := ta.run("obs", "create", "-f", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding record file")

	err = ta.run("obs", "create", "-f", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error opening record file")
}

func TestApp_Delete(t *testing.T) {
	ta := newTestApp(t, "")
	ta.observations.EXPECT().Delete(gomock.Any(), models.ID("9")).Return(nil)

	require.NoError(t, ta.run("observations", "delete", "9"))
	assert.Contains(t, ta.out.String(), "deleted 9")
}

func TestApp_ServiceErrorIsReturned(t *testing.T) {
	ta := newTestApp(t, "")
	want := errors.New("server is down")
	ta.observations.EXPECT().List(gomock.Any()).Return(nil, want)

	assert.ErrorIs(t, ta.run("observations", "list"), want)
}

func TestApp_Reference(t *testing.T) {
	ta := newTestApp(t, "")
	ta.references.EXPECT().Load(gomock.Any()).Return(reference.Snapshot{
		models.ReferenceCampus: {Items: []models.ReferenceEntity{{ID: "1", Name: "北辰园"}}},
		models.ReferenceTeacher: {Items: []models.ReferenceEntity{
			{ID: "u-1", Name: "王老师", Role: "teacher", CampusID: "1"},
		}},
	}, nil)

	require.NoError(t, ta.run("reference"))

	out := ta.out.String()
	for _, kind := range models.ReferenceKinds {
		assert.Contains(t, out, string(kind))
	}
	assert.Contains(t, out, "北辰园")
	assert.Contains(t, out, "u-1")
}

func TestApp_LoginLogout(t *testing.T) {
	ta := newTestApp(t, "")
	gomock.InOrder(
		ta.auth.EXPECT().Login(gomock.Any()).Return(nil),
		ta.auth.EXPECT().Logout(gomock.Any()).Return(nil),
	)

	require.NoError(t, ta.run("login"))
	require.NoError(t, ta.run("logout"))

	assert.Contains(t, ta.out.String(), "logged in")
	assert.Contains(t, ta.out.String(), "logged out")
	assert.Len(t, ta.configPaths, 1, "services are built once per app")
}

func TestApp_ConnectError(t *testing.T) {
	connect := func(context.Context, string) (*service.ClientServices, error) {
		return nil, errors.New("bad config")
	}
	app := NewApp(connect, strings.NewReader(""), &bytes.Buffer{}, logger.Nop())

	err := app.Run(context.Background(), []string{"beichen", "logout"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error starting client: bad config")
}
