package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/apperr"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/auth/domain"
)

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Register(ctx context.Context, req domain.RegisterRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAuthenticator) Login(ctx context.Context, userID int64, password string) (string, error) {
	args := m.Called(ctx, userID, password)
	return args.String(0), args.Error(1)
}

func setupRouter(svc Authenticator, guards ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(svc).Register(r, guards...)
	return r
}

func doJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddUser(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		setup      func(*MockAuthenticator)
		wantStatus int
		wantBody   string
	}{
		{
			name: "success",
			body: `{"name":"Ada","email":"ada@example.com","password":"pw"}`,
			setup: func(m *MockAuthenticator) {
				m.On("Register", mock.Anything, domain.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "pw"}).
					Return(int64(3), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":true,"message":"User Added Successfully!!","user_id":3}`,
		},
		{
			name:       "invalid email",
			body:       `{"name":"Ada","email":"ada","password":"pw"}`,
			setup:      func(*MockAuthenticator) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"ok":false,"error":"email must be a valid email"}`,
		},
		{
			name: "conflict",
			body: `{"name":"Ada","email":"ada@example.com","password":"pw"}`,
			setup: func(m *MockAuthenticator) {
				m.On("Register", mock.Anything, mock.Anything).
					Return(int64(0), apperr.New(apperr.KindConflict, "Could not add user! Key (email)=(ada@example.com) already exists."))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"ok":false,"error":"Could not add user! Key (email)=(ada@example.com) already exists."}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(MockAuthenticator)
			tc.setup(svc)

			w := doJSON(setupRouter(svc), "/add-user", tc.body)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.JSONEq(t, tc.wantBody, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}

func TestVerifyUser(t *testing.T) {
	t.Run("returns token", func(t *testing.T) {
		svc := new(MockAuthenticator)
		svc.On("Login", mock.Anything, int64(1), "pw").Return("tok", nil)

		w := doJSON(setupRouter(svc), "/verify-user", `{"id":1,"password":"pw"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true,"message":"Successfully Verified User!","token":"tok"}`, w.Body.String())
	})

	t.Run("bad password is 401", func(t *testing.T) {
		svc := new(MockAuthenticator)
		svc.On("Login", mock.Anything, int64(1), "nope").Return("", apperr.ErrBadCredentials)

		w := doJSON(setupRouter(svc), "/verify-user", `{"id":1,"password":"nope"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"ok":false,"error":"Invalid Credentials!"}`, w.Body.String())
	})

	t.Run("guards run first", func(t *testing.T) {
		svc := new(MockAuthenticator)
		deny := func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "too many requests"})
		}

		w := doJSON(setupRouter(svc, deny), "/verify-user", `{"id":1,"password":"pw"}`)

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		svc.AssertNotCalled(t, "Login")
	})
}
