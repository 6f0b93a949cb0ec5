package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"componentcreator/testhelpers"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.Request = req
	e.Response = rec
	return e
}

// newTestDeps wires handlers over the sample workbook with a pinned clock.
func newTestDeps(t *testing.T) *Deps {
	t.Helper()
	d := NewDeps(testhelpers.NewSampleStore(t), zap.NewNop())
	d.Now = func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }
	return d
}

// serve runs handler for a request and returns the recorder. pathName, when
// set, fills the {name} path value.
func serve(t *testing.T, handler func(*core.RequestEvent) error, method, target, pathName string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if pathName != "" {
		req.SetPathValue("name", pathName)
	}
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("response is not JSON: %v\nbody: %s", err, rec.Body.String())
	}
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}
