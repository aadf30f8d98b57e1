package di

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/smartschool/connect/apps/web/echo"
	"github.com/smartschool/connect/core"
	"github.com/smartschool/connect/core/attendance"
	"github.com/smartschool/connect/storage/database"
)

func TestNew(t *testing.T) {
	t.Setenv("ENV", "TEST")
	t.Setenv("TEST_DATABASE_ENGINE", database.EngineInMemory)

	c := New()
	err := c.Invoke(func(conf *core.Config, st Storage, repo attendance.Repository, server *echoapi.Server) {
		assert.True(t, conf.TestMode)
		assert.Nil(t, st.DB)
		assert.NotNil(t, st.InMem)
		assert.NotNil(t, repo)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/roles", nil)
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
	require.NoError(t, err)
}

func TestNewStorage_sqlite(t *testing.T) {
	conf := core.NewTestConfig()
	conf.Database.Engine = database.EngineSQLite
	conf.Database.Name = ":memory:"

	st := newStorage(conf, DBLoggerParam{})
	require.NotNil(t, st.DB)
	defer func() { _ = st.DB.Close() }()

	assert.NotNil(t, newAttendanceRepository(st))
	assert.NotNil(t, newAssignmentRepository(st))
}
