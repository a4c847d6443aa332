package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"WeddingServer/consts"
	"WeddingServer/pkg/result"
)

func TestTimeoutMiddleware(t *testing.T) {
	initMiddlewareTestLogger()

	t.Run("slow_handler_times_out", func(t *testing.T) {
		r := gin.New()
		r.Use(TimeoutMiddleware(20 * time.Millisecond))
		r.GET("/slow", func(c *gin.Context) {
			// 感知超时的下游：等 context 结束后放弃写响应
			<-c.Request.Context().Done()
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))

		assert.Equal(t, http.StatusGatewayTimeout, w.Code)
		var resp result.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int32(consts.CodeTimeoutError), resp.Code)
	})

	t.Run("fast_handler_untouched", func(t *testing.T) {
		r := gin.New()
		r.Use(TimeoutMiddleware(time.Second))
		r.GET("/fast", func(c *gin.Context) {
			result.Success(c, gin.H{"ok": true})
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fast", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
