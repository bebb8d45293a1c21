package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/auth"
	projectdomain "github.com/Dipanshu0612/Time-Tracker-API/internal/projects/domain"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/tasks/domain"
)

type MockTaskManager struct {
	mock.Mock
}

func (m *MockTaskManager) Create(ctx context.Context, requesterID int64, req domain.CreateRequest) (int64, error) {
	args := m.Called(ctx, requesterID, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaskManager) Get(ctx context.Context, projectID, taskID int64) (*domain.Task, error) {
	args := m.Called(ctx, projectID, taskID)
	if t := args.Get(0); t != nil {
		return t.(*domain.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskManager) First(ctx context.Context, projectID int64) (*domain.Task, error) {
	args := m.Called(ctx, projectID)
	if t := args.Get(0); t != nil {
		return t.(*domain.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskManager) Update(ctx context.Context, requesterID, projectID, taskID int64, upd domain.UpdateRequest) (*domain.Task, error) {
	args := m.Called(ctx, requesterID, projectID, taskID, upd)
	if t := args.Get(0); t != nil {
		return t.(*domain.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func setupRouter(tm TaskManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		auth.SetUserID(c, 1)
		c.Next()
	})
	New(tm).Register(r)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var (
	start = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	end   = start.Add(90 * time.Minute)
)

func TestCreateTask(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		setup      func(*MockTaskManager)
		wantStatus int
		wantBody   string
	}{
		{
			name: "success",
			body: `{"project_id":4,"task_description":"Wireframes","start_time":"2024-06-01T10:00:00Z","end_time":"2024-06-01T11:30:00Z"}`,
			setup: func(m *MockTaskManager) {
				m.On("Create", mock.Anything, int64(1), mock.MatchedBy(func(req domain.CreateRequest) bool {
					return req.ProjectID == 4 && req.Description == "Wireframes" && req.StartTime.Equal(start) && req.EndTime.Equal(end)
				})).Return(int64(9), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":true,"message":"Task Created Successfully!","task_id":9}`,
		},
		{
			name:       "bad end bound",
			body:       `{"project_id":4,"task_description":"x","start_time":"2024-06-01T10:00:00Z","end_time":"soon"}`,
			setup:      func(*MockTaskManager) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"ok":false,"error":"end_time is not a valid timestamp (use RFC 3339 or 2006-01-02 15:04:05)"}`,
		},
		{
			name: "project missing",
			body: `{"project_id":40,"task_description":"x","start_time":"2024-06-01T10:00:00Z","end_time":"2024-06-01T11:30:00Z"}`,
			setup: func(m *MockTaskManager) {
				m.On("Create", mock.Anything, int64(1), mock.Anything).Return(int64(0), projectdomain.ErrProjectNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"ok":false,"error":"Project not found!"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tm := new(MockTaskManager)
			tc.setup(tm)

			w := serve(setupRouter(tm), http.MethodPost, "/create-project-task", tc.body)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.JSONEq(t, tc.wantBody, w.Body.String())
			tm.AssertExpectations(t)
		})
	}
}

func TestGetTasks(t *testing.T) {
	task := &domain.Task{ID: 9, ProjectID: 4, UserID: 1, Description: "Wireframes", Status: "Ongoing",
		StartTime: start, EndTime: end, CreatedAt: start}

	tm := new(MockTaskManager)
	tm.On("First", mock.Anything, int64(4)).Return(task, nil)
	tm.On("Get", mock.Anything, int64(4), int64(9)).Return(task, nil)
	tm.On("Get", mock.Anything, int64(4), int64(10)).Return(nil, domain.ErrTaskNotFound)
	r := setupRouter(tm)

	w := serve(r, http.MethodGet, "/get-project/4/tasks", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"task_id":9`)

	w = serve(r, http.MethodGet, "/get-project/4/tasks/9", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Ongoing"`)

	w = serve(r, http.MethodGet, "/get-project/4/tasks/10", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(r, http.MethodGet, "/get-project/4/tasks/x", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":"task_id must be a positive integer"}`, w.Body.String())
}

func TestUpdateTask(t *testing.T) {
	tm := new(MockTaskManager)
	done := "Done"
	tm.On("Update", mock.Anything, int64(1), int64(4), int64(9), domain.UpdateRequest{Status: &done}).
		Return(&domain.Task{ID: 9, ProjectID: 4, Status: "Done", StartTime: start, EndTime: end}, nil)
	r := setupRouter(tm)

	w := serve(r, http.MethodPut, "/get-project/4/tasks/9", `{"status":"Done"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Task Updated Successfully!"`)

	w = serve(r, http.MethodPut, "/get-project/4/tasks/9", `{"start_time":"noon"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	tm.AssertNumberOfCalls(t, "Update", 1)
}
