package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"prescripto/middleware"
	"prescripto/models"
	"prescripto/services/booking"
)

// stubEngine returns scripted results so the handler's retry loop and
// status mapping can be observed in isolation.
type stubEngine struct {
	reserveErrs  []error
	reserveCalls int
	releaseErr   error
	slots        []string
	slotsErr     error
}

func (e *stubEngine) ReserveSlot(ctx context.Context, in booking.ReserveSlotInput) (*models.Appointment, error) {
	e.reserveCalls++
	if len(e.reserveErrs) > 0 {
		err := e.reserveErrs[0]
		e.reserveErrs = e.reserveErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return &models.Appointment{
		ID:        "appt-1",
		DoctorID:  in.DoctorID,
		PatientID: in.PatientID,
		Date:      in.Date,
		Time:      in.Time,
	}, nil
}

func (e *stubEngine) ReleaseSlot(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	if e.releaseErr != nil {
		return nil, e.releaseErr
	}
	return &models.Appointment{ID: appointmentID, Cancelled: true}, nil
}

func (e *stubEngine) IsBooked(ctx context.Context, doctorID, date, slotTime string) (bool, error) {
	return false, nil
}

func (e *stubEngine) BookedSlots(ctx context.Context, doctorID, date string) ([]string, error) {
	return e.slots, e.slotsErr
}

type stubApptRepo struct {
	appt *models.Appointment
	err  error
}

func (r *stubApptRepo) GetByID(id string) (*models.Appointment, error)       { return r.appt, r.err }
func (r *stubApptRepo) GetByDoctor(id string) ([]models.Appointment, error)  { return nil, nil }
func (r *stubApptRepo) GetByPatient(id string) ([]models.Appointment, error) { return nil, nil }
func (r *stubApptRepo) Count() (int64, error)                                { return 0, nil }
func (r *stubApptRepo) Latest(n int64) ([]models.Appointment, error)         { return nil, nil }

func engineErr(code string) error {
	return &booking.ReservationError{Code: code, Message: "scripted failure"}
}

func bookingRouter(engine *stubEngine, repo *stubApptRepo, patientID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(engine, repo, zap.NewNop())
	r := gin.New()
	asPatient := func(c *gin.Context) { c.Set(middleware.CtxSubjectKey, patientID) }
	r.POST("/book", asPatient, h.ReserveSlot)
	r.POST("/cancel", asPatient, h.ReleaseSlot)
	r.POST("/admin-cancel", h.AdminReleaseSlot)
	r.GET("/doctors/:doctorId/slots", h.BookedSlots)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func reserveBody() map[string]any {
	return map[string]any{"doctorId": "doc-1", "date": "2024-05-01", "time": "10:30"}
}

func TestReserveSlotHandler(t *testing.T) {
	engine := &stubEngine{}
	r := bookingRouter(engine, &stubApptRepo{}, "pat-1")

	w := doJSON(t, r, http.MethodPost, "/book", reserveBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Appointment models.Appointment `json:"appointment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pat-1", resp.Appointment.PatientID, "patient id comes from the token, not the body")
	assert.Equal(t, "doc-1", resp.Appointment.DoctorID)
}

func TestReserveSlotHandlerStatusMapping(t *testing.T) {
	cases := []struct {
		code       string
		wantStatus int
	}{
		{booking.CodeInvalidSlot, http.StatusBadRequest},
		{booking.CodeDoctorNotFound, http.StatusNotFound},
		{booking.CodeSlotUnavailable, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			engine := &stubEngine{reserveErrs: []error{engineErr(tc.code)}}
			r := bookingRouter(engine, &stubApptRepo{}, "pat-1")

			w := doJSON(t, r, http.MethodPost, "/book", reserveBody())
			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Equal(t, 1, engine.reserveCalls, "terminal errors must not be retried")
		})
	}
}

func TestReserveSlotHandlerRetriesStoreUnavailable(t *testing.T) {
	engine := &stubEngine{reserveErrs: []error{
		engineErr(booking.CodeStoreUnavailable),
		engineErr(booking.CodeStoreUnavailable),
		nil,
	}}
	r := bookingRouter(engine, &stubApptRepo{}, "pat-1")

	w := doJSON(t, r, http.MethodPost, "/book", reserveBody())
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 3, engine.reserveCalls)
}

func TestReserveSlotHandlerStoreUnavailableExhausted(t *testing.T) {
	engine := &stubEngine{reserveErrs: []error{
		engineErr(booking.CodeStoreUnavailable),
		engineErr(booking.CodeStoreUnavailable),
		engineErr(booking.CodeStoreUnavailable),
	}}
	r := bookingRouter(engine, &stubApptRepo{}, "pat-1")

	w := doJSON(t, r, http.MethodPost, "/book", reserveBody())
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, retryAttempts, engine.reserveCalls)
}

func TestReserveSlotHandlerRejectsMissingFields(t *testing.T) {
	engine := &stubEngine{}
	r := bookingRouter(engine, &stubApptRepo{}, "pat-1")

	w := doJSON(t, r, http.MethodPost, "/book", map[string]any{"doctorId": "doc-1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, engine.reserveCalls)
}

func TestReleaseSlotHandlerOwnership(t *testing.T) {
	repo := &stubApptRepo{appt: &models.Appointment{ID: "appt-1", PatientID: "pat-1"}}
	r := bookingRouter(&stubEngine{}, repo, "pat-1")

	w := doJSON(t, r, http.MethodPost, "/cancel", map[string]any{"appointmentId": "appt-1"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestReleaseSlotHandlerForbidsOtherPatients(t *testing.T) {
	repo := &stubApptRepo{appt: &models.Appointment{ID: "appt-1", PatientID: "pat-2"}}
	r := bookingRouter(&stubEngine{}, repo, "pat-1")

	w := doJSON(t, r, http.MethodPost, "/cancel", map[string]any{"appointmentId": "appt-1"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReleaseSlotHandlerUnknownAppointment(t *testing.T) {
	repo := &stubApptRepo{err: fmt.Errorf("not found")}
	r := bookingRouter(&stubEngine{}, repo, "pat-1")

	w := doJSON(t, r, http.MethodPost, "/cancel", map[string]any{"appointmentId": "appt-x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminReleaseSlotHandlerSkipsOwnership(t *testing.T) {
	// No appointment lookup is needed for the admin path.
	r := bookingRouter(&stubEngine{}, &stubApptRepo{err: fmt.Errorf("unused")}, "")

	w := doJSON(t, r, http.MethodPost, "/admin-cancel", map[string]any{"appointmentId": "appt-1"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestBookedSlotsHandler(t *testing.T) {
	engine := &stubEngine{slots: []string{"09:00", "10:30"}}
	r := bookingRouter(engine, &stubApptRepo{}, "")

	w := doJSON(t, r, http.MethodGet, "/doctors/doc-1/slots?date=2024-05-01", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		SlotsBooked []string `json:"slotsBooked"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"09:00", "10:30"}, resp.SlotsBooked)
}

func TestBookedSlotsHandlerRequiresDate(t *testing.T) {
	r := bookingRouter(&stubEngine{}, &stubApptRepo{}, "")

	w := doJSON(t, r, http.MethodGet, "/doctors/doc-1/slots", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookedSlotsHandlerUnknownDoctor(t *testing.T) {
	engine := &stubEngine{slotsErr: engineErr(booking.CodeDoctorNotFound)}
	r := bookingRouter(engine, &stubApptRepo{}, "")

	w := doJSON(t, r, http.MethodGet, "/doctors/doc-x/slots?date=2024-05-01", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
