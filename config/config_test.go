package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	conf, err := Parse([]byte(""))
	require.NoError(t, err)

	assert.Equal(t, 3000, conf.Server.Http)
	assert.Equal(t, CacheDriverRedis, conf.Cache.Driver)
	assert.False(t, conf.Cache.SingleFlight)
	assert.Equal(t, "default-secret", conf.Jwt.Secret)
	assert.Equal(t, 24*time.Hour, conf.Jwt.Expiry())
	assert.Equal(t, []string{"http://localhost:5173"}, conf.Cors.Origins)
	assert.Equal(t, "localhost:6379", conf.Redis.Addr())
	assert.Equal(t, "http://ml-service:5001", conf.Prediction.URL)
	assert.Equal(t, 5*time.Second, conf.Prediction.RequestTimeout())
	assert.Equal(t, 3*time.Second, conf.Prediction.HealthRequestTimeout())
	assert.False(t, conf.Debug())
}

func TestParse_ExpandsEnvironment(t *testing.T) {
	t.Setenv("MYSQL_HOST", "db.internal")
	t.Setenv("SESSION_SECRET", "s3cret")

	conf, err := Parse([]byte(`
mysql:
  host: ${MYSQL_HOST}
  username: app
  password: pw
  database: flights
jwt:
  secret: ${SESSION_SECRET}
cache:
  driver: memory
  single_flight: true
`))
	require.NoError(t, err)

	assert.Equal(t, "db.internal", conf.MySQL.Host)
	assert.Equal(t, "s3cret", conf.Jwt.Secret)
	assert.Equal(t, CacheDriverMemory, conf.Cache.Driver)
	assert.True(t, conf.Cache.SingleFlight)
	assert.Equal(t, "app:pw@tcp(db.internal:3306)/flights?charset=utf8mb4&parseTime=True&loc=Local", conf.MySQL.Dsn())
}

func TestNew_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.test.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app:\n  env: test\n  debug: true\nserver:\n  http: 8080\n"), 0o600))

	conf := New(path)
	assert.Equal(t, "test", conf.App.Env)
	assert.True(t, conf.Debug())
	assert.Equal(t, 8080, conf.Server.Http)

	assert.Panics(t, func() { New(filepath.Join(t.TempDir(), "missing.yaml")) })
}

func TestParse_RejectsBadYAML(t *testing.T) {
	_, err := Parse([]byte("server: [1, 2"))
	assert.Error(t, err)
}
