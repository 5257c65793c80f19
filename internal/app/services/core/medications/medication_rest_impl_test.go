package medications

import (
	"context"
	"testing"

	"nivlek-client/internal/pkg/constvars"
	"nivlek-client/internal/pkg/dto/requests"
	"nivlek-client/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRest struct {
	lastMethod string
	lastPath   string
	respond    func(out interface{})
}

func (f *fakeRest) Get(ctx context.Context, path string, out interface{}, resourceName string) error {
	f.lastMethod, f.lastPath = constvars.MethodGet, path
	if f.respond != nil {
		f.respond(out)
	}
	return nil
}

func (f *fakeRest) Post(ctx context.Context, path string, body, out interface{}, resourceName string) error {
	f.lastMethod, f.lastPath = constvars.MethodPost, path
	if f.respond != nil {
		f.respond(out)
	}
	return nil
}

func (f *fakeRest) Put(ctx context.Context, path string, body, out interface{}, resourceName string) error {
	f.lastMethod, f.lastPath = constvars.MethodPut, path
	return nil
}

func validCreateRequest() *requests.CreateMedication {
	return &requests.CreateMedication{
		PatientID:    "p1",
		Name:         "Amoxicillin",
		Dosage:       "500mg",
		Frequency:    "three times daily",
		Route:        "oral",
		StartDate:    "2026-08-01",
		Status:       "active",
		PrescribedBy: "Dr. Chen",
	}
}

func TestCreateMedication(t *testing.T) {
	ctx := context.Background()

	t.Run("ValidRequestPosts", func(t *testing.T) {
		rest := &fakeRest{respond: func(out interface{}) {
			out.(*responses.CreateMedication).Medication = responses.Medication{ID: "m1", Name: "Amoxicillin"}
		}}
		client := NewMedicationRestClient(rest, zap.NewNop())

		created, err := client.CreateMedication(ctx, validCreateRequest())
		assert.NoError(t, err)
		assert.Equal(t, "m1", created.ID)
		assert.Equal(t, "/medications", rest.lastPath)
	})

	t.Run("UnknownRouteRejected", func(t *testing.T) {
		rest := &fakeRest{}
		client := NewMedicationRestClient(rest, zap.NewNop())

		request := validCreateRequest()
		request.Route = "transdermal"
		_, err := client.CreateMedication(ctx, request)

		assert.Error(t, err)
		assert.Empty(t, rest.lastMethod)
	})
}

func TestUpdateMedicationStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("PutsToTheMedicationPath", func(t *testing.T) {
		rest := &fakeRest{}
		client := NewMedicationRestClient(rest, zap.NewNop())

		assert.NoError(t, client.UpdateMedicationStatus(ctx, "m7", "discontinued"))
		assert.Equal(t, constvars.MethodPut, rest.lastMethod)
		assert.Equal(t, "/medications/m7", rest.lastPath)
	})

	t.Run("UnknownStatusNeverHitsTheWire", func(t *testing.T) {
		rest := &fakeRest{}
		client := NewMedicationRestClient(rest, zap.NewNop())

		err := client.UpdateMedicationStatus(ctx, "m7", "paused")
		assert.Error(t, err)
		assert.Empty(t, rest.lastMethod)
	})
}
