package env

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	assert := assert.New(t)

	assert.NotEmpty(Short())

	prev := Version
	defer func() { Version = prev }()
	Version = "v0.0.1-test"
	assert.Equal("v0.0.1-test", Short())

	rec := httptest.NewRecorder()
	VersionHandler(rec, httptest.NewRequest("GET", "/version", nil))
	assert.Equal("v0.0.1-test\n", rec.Body.String())
}
