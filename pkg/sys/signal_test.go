package sys

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignal_Set(t *testing.T) {
	cases := []struct {
		in          string
		expected    Signal
		expectedErr string
	}{{
		in:       "",
		expected: 0,
	}, {
		in:       "KILL",
		expected: SIGKILL,
	}, {
		in:       "kill",
		expected: SIGKILL,
	}, {
		in:       "SIGKILL",
		expected: SIGKILL,
	}, {
		in:       "sigterm",
		expected: SIGTERM,
	}, {
		in:       "15",
		expected: Signal(15),
	}, {
		in:       "0xf",
		expected: Signal(15),
	}, {
		in:          "NOPE",
		expectedErr: "unknown signal: NOPE",
	}, {
		in:          "SIGNOPE",
		expectedErr: "unknown signal: SIGNOPE",
	}}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var actual Signal
			actualErr := actual.Set(c.in)
			if expected := c.expectedErr; expected != "" {
				require.EqualError(t, actualErr, expected)
			} else {
				require.NoError(t, actualErr)
				require.Equal(t, c.expected, actual)
			}
		})
	}
}

func TestSignal_String(t *testing.T) {
	cases := []struct {
		in       Signal
		expected string
	}{{
		in:       0,
		expected: "",
	}, {
		in:       SIGKILL,
		expected: "SIGKILL",
	}, {
		in:       SIGTERM,
		expected: "SIGTERM",
	}, {
		in:       Signal(200),
		expected: "0xc8",
	}}

	for _, c := range cases {
		t.Run(c.expected, func(t *testing.T) {
			require.Equal(t, c.expected, c.in.String())
		})
	}
}
