package params

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(target string, p gin.Params) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	c.Params = p
	return c
}

func TestID(t *testing.T) {
	id, err := ID(testContext("/", gin.Params{{Key: "id", Value: "42"}}), "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"abc", "0", "-1", ""} {
		_, err := ID(testContext("/", gin.Params{{Key: "id", Value: raw}}), "id")
		assert.ErrorIs(t, err, ErrInvalid, raw)
	}
}

func TestPage(t *testing.T) {
	offset, limit, err := Page(testContext("/", nil), 100)
	require.NoError(t, err)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 100, limit)

	offset, limit, err = Page(testContext("/?skip=20&limit=5", nil), 100)
	require.NoError(t, err)
	assert.Equal(t, 20, offset)
	assert.Equal(t, 5, limit)

	for _, q := range []string{"?limit=0", "?limit=1001", "?skip=-1", "?limit=x"} {
		_, _, err := Page(testContext("/"+q, nil), 100)
		assert.ErrorIs(t, err, ErrInvalid, q)
	}
}

func TestBool(t *testing.T) {
	v, err := Bool(testContext("/", nil), "is_active")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = Bool(testContext("/?is_active=false", nil), "is_active")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.False(t, *v)

	_, err = Bool(testContext("/?is_active=maybe", nil), "is_active")
	assert.ErrorIs(t, err, ErrInvalid)
}
