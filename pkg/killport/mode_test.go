package killport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMode_Set(t *testing.T) {
	cases := []struct {
		plain         string
		expected      Mode
		expectedError string
	}{
		{plain: "auto", expected: ModeAuto},
		{plain: "process", expected: ModeProcess},
		{plain: "container", expected: ModeContainer},
		{plain: "Container", expected: ModeContainer},
		{plain: "something", expectedError: `illegal mode: "something"`},
		{plain: "", expectedError: `illegal mode: ""`},
	}

	for _, c := range cases {
		t.Run(c.plain, func(t *testing.T) {
			var actual Mode
			actualErr := actual.Set(c.plain)

			if expected := c.expectedError; expected != "" {
				require.EqualError(t, actualErr, expected)
			} else {
				require.NoError(t, actualErr)
				require.Equal(t, c.expected, actual)
			}
		})
	}
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "auto", ModeAuto.String())
	assert.Equal(t, "process", ModeProcess.String())
	assert.Equal(t, "container", ModeContainer.String())
	assert.Equal(t, "unknown-66", Mode(66).String())
}

func TestMode_Nouns(t *testing.T) {
	cases := []struct {
		mode             Mode
		expectedSingular string
		expectedPlural   string
	}{
		{ModeAuto, "service", "services"},
		{ModeProcess, "process", "processes"},
		{ModeContainer, "container", "containers"},
	}

	for _, c := range cases {
		t.Run(c.mode.String(), func(t *testing.T) {
			actualSingular, actualPlural := c.mode.Nouns()
			assert.Equal(t, c.expectedSingular, actualSingular)
			assert.Equal(t, c.expectedPlural, actualPlural)
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "process", KindProcess.String())
	assert.Equal(t, "container", KindContainer.String())
	assert.Equal(t, "unknown-66", Kind(66).String())
}
