package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/placementhub/placement-mentor-hub/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseErrorMarksStorageOutagesRetryable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ResponseError(c, apperror.ErrStorageUnavailable)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestResponseErrorOmitsRetryAfterForTerminalErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ResponseError(c, apperror.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Header().Get("Retry-After"))
}

func TestGetUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("parses the authenticated id", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		id := uuid.New()
		c.Set("user_id", id.String())

		got, err := GetUserID(c)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("unauthenticated context", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		_, err := GetUserID(c)
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	})
}
