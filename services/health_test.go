package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/FADHEEL1234/Online-Medical/apiclient"
	"github.com/FADHEEL1234/Online-Medical/session"
)

func TestProbeTracksBackendLiveness(t *testing.T) {
	var healthy atomic.Bool
	healthy.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health/" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if !healthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	monitor := NewBackendMonitor(apiclient.New(srv.URL, session.NewMemoryStore()))

	status := monitor.Probe(context.Background())
	if !status.Up || status.Err != "" {
		t.Fatalf("status = %+v, want up", status)
	}

	healthy.Store(false)
	status = monitor.Probe(context.Background())
	if status.Up {
		t.Fatalf("status = %+v, want down", status)
	}
	if status.Err == "" {
		t.Fatal("a failed probe must carry the banner message")
	}
	if got := monitor.Status(); got != status {
		t.Fatalf("Status() = %+v, want the latest snapshot %+v", got, status)
	}
}

func TestProbeReportsUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	monitor := NewBackendMonitor(apiclient.New(srv.URL, session.NewMemoryStore()))
	if status := monitor.Probe(context.Background()); status.Up {
		t.Fatalf("status = %+v, want down", status)
	}
}

func TestStartSchedulesProbes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	monitor := NewBackendMonitor(apiclient.New(srv.URL, session.NewMemoryStore()))
	if err := monitor.Start("@every 1h"); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer monitor.Stop()

	// Start runs an immediate probe before the first tick.
	if status := monitor.Status(); !status.Up || status.CheckedAt.IsZero() {
		t.Fatalf("status after start = %+v", status)
	}
}

func TestStartRejectsBadCronSpec(t *testing.T) {
	monitor := NewBackendMonitor(apiclient.New("http://localhost:0", session.NewMemoryStore()))
	if err := monitor.Start("not a cron spec"); err == nil {
		t.Fatal("expected an error for an invalid cron spec")
	}
}
