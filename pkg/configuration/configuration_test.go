package configuration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/engity-com/killport/pkg/killport"
	"github.com/engity-com/killport/pkg/sys"
)

func TestConfiguration_LoadFromYaml(t *testing.T) {
	cases := []struct {
		name          string
		yaml          string
		expected      func(*testing.T, *Configuration)
		expectedError string
	}{{
		name: "empty-document-means-defaults",
		yaml: `{}`,
		expected: func(t *testing.T, actual *Configuration) {
			assert.Equal(t, sys.SIGKILL, actual.Signal)
			assert.Equal(t, killport.ModeAuto, actual.Mode)
			assert.False(t, actual.AbortOnError)
			assert.True(t, actual.Docker.TlsVerify)
		},
	}, {
		name: "everything-set",
		yaml: `
signal: SIGTERM
mode: container
abortOnError: true
docker:
  host: tcp://somewhere:2376
  apiVersion: "1.45"
  certPath: /etc/docker/certs
  tlsVerify: false
`,
		expected: func(t *testing.T, actual *Configuration) {
			assert.Equal(t, sys.SIGTERM, actual.Signal)
			assert.Equal(t, killport.ModeContainer, actual.Mode)
			assert.True(t, actual.AbortOnError)
			assert.Equal(t, "tcp://somewhere:2376", actual.Docker.Host)
			assert.Equal(t, "1.45", actual.Docker.ApiVersion)
			assert.Equal(t, "/etc/docker/certs", actual.Docker.CertPath)
			assert.False(t, actual.Docker.TlsVerify)
		},
	}, {
		name: "values-are-trimmed",
		yaml: `
docker:
  host: "  tcp://somewhere:2375  "
`,
		expected: func(t *testing.T, actual *Configuration) {
			assert.Equal(t, "tcp://somewhere:2375", actual.Docker.Host)
		},
	}, {
		name:          "illegal-signal",
		yaml:          `signal: SIGFOO`,
		expectedError: "unknown signal",
	}, {
		name:          "illegal-mode",
		yaml:          `mode: everything`,
		expectedError: "illegal mode",
	}}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var actual Configuration
			actualErr := actual.LoadFromYaml(strings.NewReader(c.yaml), "test.yaml")

			if expected := c.expectedError; expected != "" {
				require.ErrorContains(t, actualErr, expected)
			} else {
				require.NoError(t, actualErr)
				c.expected(t, &actual)
			}
		})
	}
}

func TestConfiguration_LoadFromFile_absent(t *testing.T) {
	var actual Configuration
	actualErr := actual.LoadFromFile("/does/not/exist.yaml")
	require.ErrorContains(t, actualErr, `configuration file "/does/not/exist.yaml" does not exist`)
}

func TestConfiguration_IsEqualTo(t *testing.T) {
	left := Configuration{Signal: sys.SIGKILL, Mode: killport.ModeAuto}
	right := Configuration{Signal: sys.SIGKILL, Mode: killport.ModeAuto}

	assert.True(t, left.IsEqualTo(right))
	assert.True(t, left.IsEqualTo(&right))

	right.Mode = killport.ModeProcess
	assert.False(t, left.IsEqualTo(right))
	assert.False(t, left.IsEqualTo(nil))
	assert.False(t, left.IsEqualTo("something"))
}
