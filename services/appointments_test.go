package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/FADHEEL1234/Online-Medical/apiclient"
	"github.com/FADHEEL1234/Online-Medical/models"
	"github.com/FADHEEL1234/Online-Medical/session"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   []byte
}

func appointmentFixture(t *testing.T, status int, response string) (*AppointmentService, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.Method = r.Method
		rec.Path = r.URL.Path
		rec.Body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	store := session.NewMemoryStore()
	store.Set(context.Background(), "sid", models.Session{AccessToken: "A"})
	return &AppointmentService{API: apiclient.New(srv.URL, store)}, rec
}

func TestBookPostsAppointmentsPath(t *testing.T) {
	svc, rec := appointmentFixture(t, http.StatusCreated,
		`{"id":7,"doctor":3,"appointment_date":"2026-09-01T10:00:00Z","status":"Pending"}`)

	when := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	created, err := svc.Book(context.Background(), "sid", models.AppointmentRequest{Doctor: 3, AppointmentDate: when})
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if rec.Method != http.MethodPost || rec.Path != "/appointments/" {
		t.Fatalf("request = %s %s", rec.Method, rec.Path)
	}
	var sent models.AppointmentRequest
	if err := json.Unmarshal(rec.Body, &sent); err != nil {
		t.Fatalf("request body: %v", err)
	}
	if sent.Doctor != 3 || !sent.AppointmentDate.Equal(when) {
		t.Fatalf("sent %+v", sent)
	}
	if created.ID != 7 || created.Status != models.StatusPending {
		t.Fatalf("created %+v", created)
	}
}

func TestMineFetchesMyAppointments(t *testing.T) {
	svc, rec := appointmentFixture(t, http.StatusOK,
		`[{"id":1,"doctor":2,"doctor_name":"House","appointment_date":"2026-09-01T10:00:00Z","status":"Approved"}]`)

	mine, err := svc.Mine(context.Background(), "sid")
	if err != nil {
		t.Fatalf("mine: %v", err)
	}
	if rec.Method != http.MethodGet || rec.Path != "/my-appointments/" {
		t.Fatalf("request = %s %s", rec.Method, rec.Path)
	}
	if len(mine) != 1 || mine[0].DoctorName != "House" || mine[0].Status != models.StatusApproved {
		t.Fatalf("mine = %+v", mine)
	}
}

func TestCancelDeletesByID(t *testing.T) {
	svc, rec := appointmentFixture(t, http.StatusNoContent, "")

	if err := svc.Cancel(context.Background(), "sid", 42); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if rec.Method != http.MethodDelete || rec.Path != "/appointments/42/" {
		t.Fatalf("request = %s %s", rec.Method, rec.Path)
	}
}

func TestAdminListUsesAdminPath(t *testing.T) {
	svc, rec := appointmentFixture(t, http.StatusOK,
		`[{"id":1,"user_name":"alice","doctor_name":"House","doctor":2,"appointment_date":"2026-09-01T10:00:00Z","status":"Pending"}]`)

	all, err := svc.AdminList(context.Background(), "sid")
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if rec.Path != "/admin/appointments/" {
		t.Fatalf("path = %s", rec.Path)
	}
	if len(all) != 1 || all[0].UserName != "alice" {
		t.Fatalf("all = %+v", all)
	}
}

func TestAdminSetStatusPatchesStatusOnly(t *testing.T) {
	svc, rec := appointmentFixture(t, http.StatusOK,
		`{"id":5,"doctor":2,"appointment_date":"2026-09-01T10:00:00Z","status":"Approved"}`)

	updated, err := svc.AdminSetStatus(context.Background(), "sid", 5, models.StatusApproved)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if rec.Method != http.MethodPatch || rec.Path != "/admin/appointments/5/" {
		t.Fatalf("request = %s %s", rec.Method, rec.Path)
	}
	if string(rec.Body) != `{"status":"Approved"}` {
		t.Fatalf("body = %s", rec.Body)
	}
	if updated.Status != models.StatusApproved {
		t.Fatalf("updated = %+v", updated)
	}
}
