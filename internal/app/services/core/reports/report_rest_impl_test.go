package reports

import (
	"context"
	"testing"

	"nivlek-client/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRest struct {
	lastPath string
	respond  func(out interface{})
}

func (f *fakeRest) Get(ctx context.Context, path string, out interface{}, resourceName string) error {
	f.lastPath = path
	if f.respond != nil {
		f.respond(out)
	}
	return nil
}

func (f *fakeRest) Post(ctx context.Context, path string, body, out interface{}, resourceName string) error {
	return nil
}

func (f *fakeRest) Put(ctx context.Context, path string, body, out interface{}, resourceName string) error {
	return nil
}

func TestReportPaths(t *testing.T) {
	ctx := context.Background()

	t.Run("PatientStatistics", func(t *testing.T) {
		rest := &fakeRest{respond: func(out interface{}) {
			out.(*responses.PatientStatistics).TotalPatients = 48
		}}
		client := NewReportRestClient(rest, zap.NewNop())

		stats, err := client.GetPatientStatistics(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 48, stats.TotalPatients)
		assert.Equal(t, "/reports/patient-statistics", rest.lastPath)
	})

	t.Run("AppointmentStatistics", func(t *testing.T) {
		rest := &fakeRest{}
		client := NewReportRestClient(rest, zap.NewNop())

		_, err := client.GetAppointmentStatistics(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "/reports/appointment-statistics", rest.lastPath)
	})

	t.Run("MedicationStatistics", func(t *testing.T) {
		rest := &fakeRest{}
		client := NewReportRestClient(rest, zap.NewNop())

		_, err := client.GetMedicationStatistics(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "/reports/medication-statistics", rest.lastPath)
	})

	t.Run("PatientList", func(t *testing.T) {
		rest := &fakeRest{respond: func(out interface{}) {
			report := out.(*responses.PatientListReport)
			report.TotalCount = 2
			report.Patients = []responses.Patient{{ID: "p1"}, {ID: "p2"}}
		}}
		client := NewReportRestClient(rest, zap.NewNop())

		report, err := client.GetPatientListReport(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 2, report.TotalCount)
		assert.Len(t, report.Patients, 2)
		assert.Equal(t, "/reports/patient-list", rest.lastPath)
	})
}
