package controllers_test

import (
	"net/http"
	"testing"

	"github.com/medicore/hospital-app/models"
)

func newAvailabilityBody() map[string]any {
	return map[string]any{
		"doctorId":       "D1",
		"doctorName":     "Dr. X",
		"specialization": "Cardiology",
		"date":           "2024-10-15",
		"startTime":      "09:00",
		"endTime":        "17:00",
	}
}

func TestCreateThenGetAvailability(t *testing.T) {
	app := setupApp(t)
	token := authToken(t, models.RoleDoctor)

	resp := doJSON(t, app, http.MethodPost, "/doctor-availability/", newAvailabilityBody(), token)
	wantStatus(t, resp, http.StatusCreated)

	var created models.DoctorAvailability
	decode(t, resp, &created)
	if created.ID == 0 {
		t.Fatal("created record has no id")
	}

	resp = doJSON(t, app, http.MethodGet, "/doctor-availability/1", nil, "")
	wantStatus(t, resp, http.StatusOK)

	var got models.DoctorAvailability
	decode(t, resp, &got)
	if got.DoctorID != "D1" || got.DoctorName != "Dr. X" || got.Specialization != "Cardiology" ||
		got.Date != "2024-10-15" || got.StartTime != "09:00" || got.EndTime != "17:00" {
		t.Fatalf("stored record does not match input: %+v", got)
	}
	if !got.IsAvailable {
		t.Fatal("isAvailable should default to true")
	}
}

func TestCreateAvailabilityMissingFields(t *testing.T) {
	app := setupApp(t)
	token := authToken(t, models.RoleDoctor)

	body := newAvailabilityBody()
	delete(body, "startTime")

	resp := doJSON(t, app, http.MethodPost, "/doctor-availability/", body, token)
	wantStatus(t, resp, http.StatusBadRequest)
}

func TestAvailabilityWriteRequiresRole(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/doctor-availability/", newAvailabilityBody(), "")
	wantStatus(t, resp, http.StatusUnauthorized)

	resp = doJSON(t, app, http.MethodPost, "/doctor-availability/", newAvailabilityBody(), authToken(t, models.RolePatient))
	wantStatus(t, resp, http.StatusForbidden)
}

func TestUpdateAvailabilityPartialPatch(t *testing.T) {
	app := setupApp(t)
	token := authToken(t, models.RoleDoctor)

	resp := doJSON(t, app, http.MethodPost, "/doctor-availability/", newAvailabilityBody(), token)
	wantStatus(t, resp, http.StatusCreated)

	resp = doJSON(t, app, http.MethodPut, "/doctor-availability/1",
		map[string]any{"endTime": "18:00"}, token)
	wantStatus(t, resp, http.StatusOK)

	var got models.DoctorAvailability
	decode(t, resp, &got)
	if got.EndTime != "18:00" {
		t.Fatalf("endTime = %q, want 18:00", got.EndTime)
	}
	if got.StartTime != "09:00" || got.DoctorName != "Dr. X" {
		t.Fatalf("unpatched fields were not preserved: %+v", got)
	}
}

func TestUpdateAvailabilityIgnoresBodyID(t *testing.T) {
	app := setupApp(t)
	token := authToken(t, models.RoleDoctor)

	resp := doJSON(t, app, http.MethodPost, "/doctor-availability/", newAvailabilityBody(), token)
	wantStatus(t, resp, http.StatusCreated)

	// an id smuggled into the body must not redirect the write
	patch := map[string]any{"id": 99, "endTime": "18:00"}
	resp = doJSON(t, app, http.MethodPut, "/doctor-availability/1", patch, token)
	wantStatus(t, resp, http.StatusOK)

	var updated models.DoctorAvailability
	decode(t, resp, &updated)
	if updated.ID != 1 {
		t.Fatalf("updated record id = %d, want 1", updated.ID)
	}

	resp = doJSON(t, app, http.MethodGet, "/doctor-availability/1", nil, "")
	wantStatus(t, resp, http.StatusOK)
	var got models.DoctorAvailability
	decode(t, resp, &got)
	if got.EndTime != "18:00" {
		t.Fatalf("record 1 endTime = %q, want 18:00", got.EndTime)
	}

	resp = doJSON(t, app, http.MethodGet, "/doctor-availability/99", nil, "")
	wantStatus(t, resp, http.StatusNotFound)
}

func TestUpdateAvailabilityNotFound(t *testing.T) {
	app := setupApp(t)
	token := authToken(t, models.RoleDoctor)

	resp := doJSON(t, app, http.MethodPut, "/doctor-availability/99",
		map[string]any{"endTime": "18:00"}, token)
	wantStatus(t, resp, http.StatusNotFound)
}

func TestDeleteAvailabilityThenGet(t *testing.T) {
	app := setupApp(t)
	token := authToken(t, models.RoleDoctor)

	resp := doJSON(t, app, http.MethodPost, "/doctor-availability/", newAvailabilityBody(), token)
	wantStatus(t, resp, http.StatusCreated)

	resp = doJSON(t, app, http.MethodDelete, "/doctor-availability/1", nil, token)
	wantStatus(t, resp, http.StatusNoContent)

	resp = doJSON(t, app, http.MethodGet, "/doctor-availability/1", nil, "")
	wantStatus(t, resp, http.StatusNotFound)

	resp = doJSON(t, app, http.MethodDelete, "/doctor-availability/1", nil, token)
	wantStatus(t, resp, http.StatusNotFound)
}

func TestAvailabilityListScenario(t *testing.T) {
	app := setupApp(t)
	token := authToken(t, models.RoleDoctor)

	resp := doJSON(t, app, http.MethodPost, "/doctor-availability/", newAvailabilityBody(), token)
	wantStatus(t, resp, http.StatusCreated)

	resp = doJSON(t, app, http.MethodGet, "/doctor-availability/", nil, "")
	wantStatus(t, resp, http.StatusOK)

	var list []models.DoctorAvailability
	decode(t, resp, &list)
	matches := 0
	for _, a := range list {
		if a.DoctorID == "D1" && a.Date == "2024-10-15" && a.StartTime == "09:00" && a.EndTime == "17:00" {
			matches++
		}
	}
	if matches != 1 {
		t.Fatalf("list contains %d matching records, want 1", matches)
	}

	resp = doJSON(t, app, http.MethodDelete, "/doctor-availability/1", nil, token)
	wantStatus(t, resp, http.StatusNoContent)

	resp = doJSON(t, app, http.MethodGet, "/doctor-availability/", nil, "")
	var after []models.DoctorAvailability
	decode(t, resp, &after)
	for _, a := range after {
		if a.DoctorID == "D1" && a.Date == "2024-10-15" {
			t.Fatal("deleted record still listed")
		}
	}
}

func TestOverlappingWindowsAccepted(t *testing.T) {
	app := setupApp(t)
	token := authToken(t, models.RoleDoctor)

	resp := doJSON(t, app, http.MethodPost, "/doctor-availability/", newAvailabilityBody(), token)
	wantStatus(t, resp, http.StatusCreated)

	overlap := newAvailabilityBody()
	overlap["startTime"] = "12:00"
	overlap["endTime"] = "20:00"
	resp = doJSON(t, app, http.MethodPost, "/doctor-availability/", overlap, token)
	wantStatus(t, resp, http.StatusCreated)

	resp = doJSON(t, app, http.MethodGet, "/doctor-availability/", nil, "")
	var list []models.DoctorAvailability
	decode(t, resp, &list)
	if len(list) != 2 {
		t.Fatalf("list has %d records, want both overlapping windows", len(list))
	}
}

func TestAvailabilityListOrder(t *testing.T) {
	app := setupApp(t)
	token := authToken(t, models.RoleDoctor)

	records := []map[string]any{
		{"doctorId": "D1", "doctorName": "Dr. X", "specialization": "Cardiology",
			"date": "2024-10-14", "startTime": "09:00", "endTime": "12:00"},
		{"doctorId": "D2", "doctorName": "Dr. Y", "specialization": "Neurology",
			"date": "2024-10-15", "startTime": "13:00", "endTime": "17:00"},
		{"doctorId": "D3", "doctorName": "Dr. Z", "specialization": "Oncology",
			"date": "2024-10-15", "startTime": "08:00", "endTime": "11:00"},
	}
	for _, r := range records {
		resp := doJSON(t, app, http.MethodPost, "/doctor-availability/", r, token)
		wantStatus(t, resp, http.StatusCreated)
	}

	resp := doJSON(t, app, http.MethodGet, "/doctor-availability/", nil, "")
	wantStatus(t, resp, http.StatusOK)

	var list []models.DoctorAvailability
	decode(t, resp, &list)
	if len(list) != 3 {
		t.Fatalf("list has %d records, want 3", len(list))
	}

	// date desc, then start time asc within the same date
	want := []string{"D3", "D2", "D1"}
	for i, id := range want {
		if list[i].DoctorID != id {
			t.Fatalf("list[%d].DoctorID = %s, want %s (full: %+v)", i, list[i].DoctorID, id, list)
		}
	}
}
