package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kmuriuki/campusreg/internal/middleware"
)

func roleContext(t *testing.T, role interface{}) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	if role != nil {
		ctx.Set(middleware.ContextRole, role)
	}
	return ctx
}

// Report reads and deletes fall back to the ownership check only for
// STUDENT callers; staff and admin roles see every report.
func TestIsStudentCaller(t *testing.T) {
	assert.True(t, isStudentCaller(roleContext(t, "STUDENT")))

	assert.False(t, isStudentCaller(roleContext(t, "STAFF")))
	assert.False(t, isStudentCaller(roleContext(t, "ADMIN")))
	assert.False(t, isStudentCaller(roleContext(t, "SUPER_ADMIN")))

	// Missing or malformed context values never grant the student path
	assert.False(t, isStudentCaller(roleContext(t, nil)))
	assert.False(t, isStudentCaller(roleContext(t, 42)))
}
