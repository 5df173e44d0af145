package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCount(t *testing.T) {
	s := New("photo_album")
	s.Count(HostingRequests, 1, []string{"destroy", "error"})
	s.Count(HostingRequests, 2, []string{"destroy", "error"})
	// Wrong label arity and unknown names are ignored.
	s.Count(HostingRequests, 1, []string{"destroy"})
	s.Count("unknown", 1, nil)

	got := testutil.ToFloat64(s.counters[HostingRequests].WithLabelValues("destroy", "error"))
	if got != 3 {
		t.Fatalf("unexpected counter value: %v", got)
	}
}

func TestHistogram(t *testing.T) {
	s := New("photo_album")
	s.Histogram(HTTPRequestDuration, 0.2, []string{"200", "list_albums"})
	s.Histogram(DBQueryDuration, 0.01, []string{"list_albums", "ok"})

	if n := testutil.CollectAndCount(s.histograms[HTTPRequestDuration]); n != 1 {
		t.Fatalf("expected 1 http series, got %d", n)
	}

	wr := httptest.NewRecorder()
	s.Handler().ServeHTTP(wr, httptest.NewRequest("GET", "/metrics", nil))
	body := wr.Body.String()
	for _, s := range []string{
		`photo_album_http_request_duration_seconds_count{code="200",route="list_albums"} 1`,
		`photo_album_db_query_duration_seconds_count{query="list_albums",status="ok"} 1`,
	} {
		if !strings.Contains(body, s) {
			t.Errorf("metrics output missing %q", s)
		}
	}
}
