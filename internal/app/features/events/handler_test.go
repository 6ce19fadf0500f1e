package events_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/eventhub/internal/app/features/events"
	eventstore "github.com/dalemusser/eventhub/internal/app/store/events"
	"github.com/dalemusser/eventhub/internal/app/store/fixtures"
	"github.com/dalemusser/eventhub/internal/app/system/auditlog"
	"github.com/dalemusser/eventhub/internal/domain/models"
	"github.com/dalemusser/eventhub/internal/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newRouter(store eventstore.Store, audit *auditlog.Logger) http.Handler {
	return events.Routes(events.NewHandler(store, audit, zap.NewNop()))
}

func do(h http.Handler, method, target string) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func listIDs(t *testing.T, store eventstore.Store) []string {
	t.Helper()
	refs, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	ids := make([]string, len(refs))
	for i, r := range refs {
		ids[i] = r.ID
	}
	return ids
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

type routeCase struct {
	name string
	url  func(base, id string) string
}

var deleteRoutes = []routeCase{
	{"path", func(base, id string) string { return base + "/" + id }},
	{"query", func(base, id string) string { return base + "/?id=" + id }},
}

func TestDelete_RemovesMatchingEntry(t *testing.T) {
	for _, rc := range deleteRoutes {
		t.Run(rc.name, func(t *testing.T) {
			store := eventstore.NewMemory(fixtures.EventRefs())
			router := newRouter(store, nil)

			rec := do(router, http.MethodDelete, rc.url("", "1"))
			rec.AssertStatus(t, http.StatusOK)

			var body struct {
				Message string `json:"message"`
			}
			rec.AssertJSON(t, &body)
			if body.Message != "Event deleted" {
				t.Errorf("message = %q", body.Message)
			}
			if got := listIDs(t, store); !equalIDs(got, []string{"2"}) {
				t.Errorf("remaining = %v, want [2]", got)
			}
		})
	}
}

func TestDelete_MissingIDIsBadRequest(t *testing.T) {
	store := eventstore.NewMemory(fixtures.EventRefs())
	router := newRouter(store, nil)

	for _, url := range []string{"/", "/?id="} {
		rec := do(router, http.MethodDelete, url)
		rec.AssertStatus(t, http.StatusBadRequest)

		var body struct {
			Error string `json:"error"`
		}
		rec.AssertJSON(t, &body)
		if body.Error != "Event ID is required" {
			t.Errorf("error = %q", body.Error)
		}
	}
	if got := listIDs(t, store); !equalIDs(got, []string{"1", "2"}) {
		t.Errorf("list changed: %v", got)
	}
}

func TestDelete_PathIgnoresQuery(t *testing.T) {
	store := eventstore.NewMemory(fixtures.EventRefs())
	router := newRouter(store, nil)

	rec := do(router, http.MethodDelete, "/2?id=1")
	rec.AssertStatus(t, http.StatusOK)
	if got := listIDs(t, store); !equalIDs(got, []string{"1"}) {
		t.Errorf("remaining = %v, want [1]", got)
	}
}

func TestDelete_UnknownIDStillSucceeds(t *testing.T) {
	for _, rc := range deleteRoutes {
		t.Run(rc.name, func(t *testing.T) {
			store := eventstore.NewMemory(fixtures.EventRefs())
			router := newRouter(store, nil)

			rec := do(router, http.MethodDelete, rc.url("", "999"))
			rec.AssertStatus(t, http.StatusOK)
			rec.AssertContains(t, "Event deleted")
			if got := listIDs(t, store); !equalIDs(got, []string{"1", "2"}) {
				t.Errorf("list changed: %v", got)
			}
		})
	}
}

func TestDelete_RemovesDuplicates(t *testing.T) {
	store := eventstore.NewMemory([]models.EventRef{{ID: "7"}, {ID: "3"}, {ID: "7"}})
	router := newRouter(store, nil)

	do(router, http.MethodDelete, "/7").AssertStatus(t, http.StatusOK)
	if got := listIDs(t, store); !equalIDs(got, []string{"3"}) {
		t.Errorf("remaining = %v, want [3]", got)
	}
}

type failingStore struct{ eventstore.Store }

func (failingStore) Delete(context.Context, string) (int, error) { return 0, errors.New("disk on fire") }
func (failingStore) List(context.Context) ([]models.EventRef, error) {
	return nil, errors.New("disk on fire")
}

func TestDelete_StoreFailureIs500(t *testing.T) {
	router := newRouter(failingStore{}, nil)

	rec := do(router, http.MethodDelete, "/1")
	rec.AssertStatus(t, http.StatusInternalServerError)
	rec.AssertContains(t, "Failed to delete event")

	do(router, http.MethodGet, "/").AssertStatus(t, http.StatusInternalServerError)
}

func TestList_ReturnsEntries(t *testing.T) {
	store := eventstore.NewMemory(fixtures.EventRefs())
	router := newRouter(store, nil)

	rec := do(router, http.MethodGet, "/")
	rec.AssertStatus(t, http.StatusOK)

	var body struct {
		Events []models.EventRef `json:"events"`
	}
	rec.AssertJSON(t, &body)
	if len(body.Events) != 2 || body.Events[0].ID != "1" {
		t.Errorf("events = %+v", body.Events)
	}
}

func TestDelete_WritesAuditEvent(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	audit := auditlog.New(zap.New(core), auditlog.Config{Admin: "log"})
	store := eventstore.NewMemory(fixtures.EventRefs())

	h := events.NewHandler(store, audit, zap.NewNop())
	req := testutil.WithChiURLParam(testutil.NewRequest(http.MethodDelete, "/api/admin/events/1"), "id", "1")
	rec := testutil.NewRecorder()
	h.DeleteByPath(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	entries := logs.FilterField(zap.String("event_type", auditlog.EventEventDeleted)).All()
	if len(entries) != 1 {
		t.Fatalf("audit entries = %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["detail_matched"]; got != "true" {
		t.Errorf("detail_matched = %v", got)
	}
}
