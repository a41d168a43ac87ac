package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	listResult []*domain.Event
	listErr    error
	getResult  *domain.Event
	getErr     error
	createErr  error
	updateErr  error
	deleteErr  error
	approveErr error

	lastFilter    domain.EventFilter
	lastInput     domain.EventInput
	lastSession   *domain.Session
	lastID        string
	approveCalled bool
}

func (f *fakeEventService) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	f.lastFilter = filter
	return f.listResult, f.listErr
}

func (f *fakeEventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	f.lastID = id
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getResult, nil
}

func (f *fakeEventService) Create(ctx context.Context, input domain.EventInput, session *domain.Session) (*domain.Event, error) {
	f.lastInput = input
	f.lastSession = session
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.Event{ID: "e1", Title: input.Title}, nil
}

func (f *fakeEventService) Update(ctx context.Context, id string, input domain.EventInput, session *domain.Session) (*domain.Event, error) {
	f.lastID = id
	f.lastInput = input
	f.lastSession = session
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &domain.Event{ID: id, Title: input.Title}, nil
}

func (f *fakeEventService) Delete(ctx context.Context, id string) error {
	f.lastID = id
	return f.deleteErr
}

func (f *fakeEventService) Approve(ctx context.Context, id string) error {
	f.lastID = id
	f.approveCalled = true
	return f.approveErr
}

const validEventBody = `{
	"title":"Go Meetup",
	"date":"2024-03-15",
	"time":"18:30",
	"description":"Monthly meetup",
	"location":"Berlin",
	"image":"data:image/png;base64,AAAA",
	"category":"Meetup",
	"tags":"go, backend"
}`

func withSession(req *http.Request, sess *domain.Session) *http.Request {
	return req.WithContext(middleware.SetSession(req.Context(), sess))
}

func TestEventController_List(t *testing.T) {
	svc := &fakeEventService{listResult: []*domain.Event{{ID: "e1"}}}
	c := NewEventController(testLogger, svc)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/events?q=berlin&category=Meetup&sort=oldest", nil)

	c.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.lastFilter.ApprovedOnly, "public listing must be approved-only")
	assert.Equal(t, "berlin", svc.lastFilter.Search)
	assert.Equal(t, domain.CategoryMeetup, svc.lastFilter.Category)
	assert.Equal(t, domain.SortOldest, svc.lastFilter.Sort)
}

func TestEventController_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &fakeEventService{getResult: &domain.Event{ID: "e1", Title: "GopherCon"}}
		c := NewEventController(testLogger, svc)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/events/e1", nil)
		req.SetPathValue("id", "e1")

		c.Get(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "e1", svc.lastID)
	})

	t.Run("missing is 404", func(t *testing.T) {
		svc := &fakeEventService{getErr: domain.ErrNotFound}
		c := NewEventController(testLogger, svc)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/events/ghost", nil)
		req.SetPathValue("id", "ghost")

		c.Get(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		resp := decodeEnvelope(t, rec.Body)
		require.NotNil(t, resp.Error)
		assert.Equal(t, helpers.ErrCodeNotFound, resp.Error.Code)
	})
}

func TestEventController_Create(t *testing.T) {
	t.Run("created with the session from the guard", func(t *testing.T) {
		svc := &fakeEventService{}
		c := NewEventController(testLogger, svc)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(validEventBody))
		req = withSession(req, &domain.Session{ID: "u1", Username: "a1", Role: domain.RoleUser})

		c.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, svc.lastSession)
		assert.Equal(t, "u1", svc.lastSession.ID)
		assert.Equal(t, "go, backend", svc.lastInput.Tags)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		c := NewEventController(testLogger, &fakeEventService{})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(`{"title":"only"}`))
		req = withSession(req, &domain.Session{ID: "u1", Role: domain.RoleUser})

		c.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("service validation error maps to 400", func(t *testing.T) {
		svc := &fakeEventService{createErr: domain.ErrValidation}
		c := NewEventController(testLogger, svc)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(validEventBody))
		req = withSession(req, &domain.Session{ID: "u1", Role: domain.RoleUser})

		c.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestEventController_Update(t *testing.T) {
	t.Run("forbidden maps to 403", func(t *testing.T) {
		svc := &fakeEventService{updateErr: domain.ErrForbidden}
		c := NewEventController(testLogger, svc)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/events/e1", bytes.NewBufferString(validEventBody))
		req.SetPathValue("id", "e1")
		req = withSession(req, &domain.Session{ID: "u2", Role: domain.RoleUser})

		c.Update(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		svc := &fakeEventService{}
		c := NewEventController(testLogger, svc)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/events/e1", bytes.NewBufferString(validEventBody))
		req.SetPathValue("id", "e1")
		req = withSession(req, &domain.Session{ID: "u1", Role: domain.RoleUser})

		c.Update(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "e1", svc.lastID)
	})
}

func TestEventController_DeleteAndApprove(t *testing.T) {
	svc := &fakeEventService{}
	c := NewEventController(testLogger, svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/events/e1", nil)
	req.SetPathValue("id", "e1")
	c.Delete(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "e1", svc.lastID)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/events/e2/approve", nil)
	req.SetPathValue("id", "e2")
	c.Approve(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.approveCalled)
	assert.Equal(t, "e2", svc.lastID)
}

func TestEventController_Manage(t *testing.T) {
	t.Run("admin sees everything", func(t *testing.T) {
		svc := &fakeEventService{}
		c := NewEventController(testLogger, svc)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/manage/events", nil)
		req = withSession(req, &domain.Session{ID: "u1", Username: "root", Role: domain.RoleAdmin})

		c.Manage(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, svc.lastFilter.CreatorID)
		assert.False(t, svc.lastFilter.ApprovedOnly)
	})

	t.Run("user sees only their own", func(t *testing.T) {
		svc := &fakeEventService{}
		c := NewEventController(testLogger, svc)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/manage/events", nil)
		req = withSession(req, &domain.Session{ID: "u1", Username: "a1", Role: domain.RoleUser})

		c.Manage(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "u1", svc.lastFilter.CreatorID)
	})
}
