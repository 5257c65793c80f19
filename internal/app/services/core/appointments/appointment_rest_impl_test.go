package appointments

import (
	"context"
	"testing"

	"nivlek-client/internal/pkg/constvars"
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
	if f.respond != nil {
		f.respond(out)
	}
	return nil
}

func TestUpdateAppointmentStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("PutsToTheAppointmentPath", func(t *testing.T) {
		rest := &fakeRest{}
		client := NewAppointmentRestClient(rest, zap.NewNop())

		assert.NoError(t, client.UpdateAppointmentStatus(ctx, "a42", "completed"))
		assert.Equal(t, constvars.MethodPut, rest.lastMethod)
		assert.Equal(t, "/appointments/a42", rest.lastPath)
	})

	t.Run("UnknownStatusNeverHitsTheWire", func(t *testing.T) {
		rest := &fakeRest{}
		client := NewAppointmentRestClient(rest, zap.NewNop())

		err := client.UpdateAppointmentStatus(ctx, "a42", "rescheduled")
		assert.Error(t, err)
		assert.Empty(t, rest.lastMethod)
	})
}

func TestFilterByStatus(t *testing.T) {
	list := []responses.Appointment{
		{ID: "a1", Status: "scheduled"},
		{ID: "a2", Status: "completed"},
		{ID: "a3", Status: "scheduled"},
		{ID: "a4", Status: "no-show"},
	}

	t.Run("AllReturnsInputUnchanged", func(t *testing.T) {
		assert.Equal(t, list, FilterByStatus(list, "all"))
		assert.Equal(t, list, FilterByStatus(list, ""))
	})

	t.Run("FiltersToMatchingStatus", func(t *testing.T) {
		filtered := FilterByStatus(list, "scheduled")
		assert.Len(t, filtered, 2)
		assert.Equal(t, "a1", filtered[0].ID)
		assert.Equal(t, "a3", filtered[1].ID)
	})

	t.Run("NoMatchesYieldsEmptySlice", func(t *testing.T) {
		assert.Empty(t, FilterByStatus(list, "cancelled"))
	})

	t.Run("NilInputIsSafe", func(t *testing.T) {
		assert.Empty(t, FilterByStatus(nil, "scheduled"))
	})
}

func TestListAppointments(t *testing.T) {
	ctx := context.Background()

	rest := &fakeRest{respond: func(out interface{}) {
		out.(*responses.AppointmentList).Appointments = []responses.Appointment{{ID: "a1"}}
	}}
	client := NewAppointmentRestClient(rest, zap.NewNop())

	list, err := client.ListAppointments(ctx)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "/appointments", rest.lastPath)
}
