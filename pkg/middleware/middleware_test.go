package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	md "github.com/bookmart/admin-service/pkg/middleware"
)

func TestAdminContext(t *testing.T) {
	t.Parallel()

	newRouter := func() *echo.Echo {
		e := echo.New()
		g := e.Group("/admin", md.AdminContext)
		g.GET("/ping", func(c echo.Context) error {
			return c.String(http.StatusOK, md.Actor(c.Request().Context()))
		})
		return e
	}

	tests := []struct {
		name         string
		userName     string
		userRole     string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "admin passes and actor is set",
			userName:     "alice",
			userRole:     md.RoleAdmin,
			expectedCode: http.StatusOK,
			expectedBody: "alice",
		},
		{
			name:         "missing user name",
			userRole:     md.RoleAdmin,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "non-admin role",
			userName:     "bob",
			userRole:     "customer",
			expectedCode: http.StatusForbidden,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newRouter()
			r := httptest.NewRequest(http.MethodGet, "/admin/ping", http.NoBody)
			if tt.userName != "" {
				r.Header.Set(md.XUserNameHeader, tt.userName)
			}
			if tt.userRole != "" {
				r.Header.Set(md.XUserRoleHeader, tt.userRole)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}
