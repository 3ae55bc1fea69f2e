package net

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPortRange(t *testing.T) {
	cases := []struct {
		in          string
		expected    PortRange
		expectedErr string
	}{{
		in:       "",
		expected: PortRange{},
	}, {
		in:       "8080",
		expected: PortRange{8080, 0},
	}, {
		in:       "8080-9090",
		expected: PortRange{8080, 9090},
	}, {
		in:       "8080-8080",
		expected: PortRange{8080, 0},
	}, {
		in:          "9090-8080",
		expectedErr: "illegal port-range: 9090-8080",
	}, {
		in:          "abc-def",
		expectedErr: "illegal port-range: abc-def",
	}, {
		in:          "8080-9090-666",
		expectedErr: "illegal port-range: 8080-9090-666",
	}}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			actual, actualErr := NewPortRange(c.in)
			if expected := c.expectedErr; expected != "" {
				require.EqualError(t, actualErr, expected)
			} else {
				require.NoError(t, actualErr)
				require.Equal(t, c.expected, actual)
			}
		})
	}
}

func TestPortRange_Iterate(t *testing.T) {
	cases := []struct {
		in       PortRange
		expected []uint16
	}{{
		in:       PortRange{},
		expected: nil,
	}, {
		in:       PortRange{8080, 0},
		expected: []uint16{8080},
	}, {
		in:       PortRange{8080, 8083},
		expected: []uint16{8080, 8081, 8082, 8083},
	}}

	for i, c := range cases {
		t.Run(fmt.Sprintf("c%d", i), func(t *testing.T) {
			var actual []uint16
			for v, err := range c.in.Iterate() {
				require.NoError(t, err)
				actual = append(actual, v)
			}
			require.Equal(t, c.expected, actual)
		})
	}
}

func TestPortRanges_Set(t *testing.T) {
	cases := []struct {
		in          string
		expected    PortRanges
		expectedErr string
	}{{
		in:       "",
		expected: nil,
	}, {
		in:       "8080",
		expected: PortRanges{{8080, 0}},
	}, {
		in:       "8080,9090-9092",
		expected: PortRanges{{8080, 0}, {9090, 9092}},
	}, {
		in:          "8080,oops",
		expectedErr: "illegal port-range: oops",
	}}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var actual PortRanges
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

func TestPortRanges_Set_appends(t *testing.T) {
	var actual PortRanges
	require.NoError(t, actual.Set("8080"))
	require.NoError(t, actual.Set("9090-9092"))
	require.Equal(t, PortRanges{{8080, 0}, {9090, 9092}}, actual)
	require.True(t, actual.IsCumulative())
}
