package heartbeat_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/eventhub/internal/app/features/dashboard"
	"github.com/dalemusser/eventhub/internal/app/features/heartbeat"
	"github.com/dalemusser/eventhub/internal/app/store/fixtures"
	"github.com/dalemusser/eventhub/internal/testutil"
	"go.uber.org/zap"
)

type fixedPeek struct {
	id string
	ok bool
}

func (f fixedPeek) Peek(*http.Request) (string, bool) { return f.id, f.ok }

func TestServeHeartbeat_TouchesView(t *testing.T) {
	reg := dashboard.NewRegistry(fixtures.Dashboard, 0, zap.NewNop())
	defer reg.CloseAll()
	vm, _ := reg.Get("v1")
	before := vm.LastSeen()
	time.Sleep(2 * time.Millisecond)

	h := heartbeat.NewHandler(fixedPeek{"v1", true}, reg, zap.NewNop())
	rec := testutil.NewRecorder()
	h.ServeHeartbeat(rec, testutil.NewRequest(http.MethodPost, "/api/heartbeat"))

	rec.AssertStatus(t, http.StatusNoContent)
	if !vm.LastSeen().After(before) {
		t.Error("heartbeat did not refresh the view")
	}
}

func TestServeHeartbeat_NoSession(t *testing.T) {
	reg := dashboard.NewRegistry(fixtures.Dashboard, 0, zap.NewNop())
	h := heartbeat.NewHandler(fixedPeek{}, reg, zap.NewNop())

	rec := testutil.NewRecorder()
	h.ServeHeartbeat(rec, testutil.NewRequest(http.MethodPost, "/api/heartbeat"))
	rec.AssertStatus(t, http.StatusOK)
	if reg.Len() != 0 {
		t.Error("heartbeat must not create views")
	}
}

func TestServeHeartbeat_UnknownView(t *testing.T) {
	reg := dashboard.NewRegistry(fixtures.Dashboard, 0, zap.NewNop())
	h := heartbeat.NewHandler(fixedPeek{"gone", true}, reg, zap.NewNop())

	rec := testutil.NewRecorder()
	h.ServeHeartbeat(rec, testutil.NewRequest(http.MethodPost, "/api/heartbeat"))
	rec.AssertStatus(t, http.StatusOK)
}
