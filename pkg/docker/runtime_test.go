package docker

import (
	"testing"

	"github.com/docker/docker/api/types/container"
	"github.com/stretchr/testify/assert"
)

func Test_containerDisplayName(t *testing.T) {
	cases := []struct {
		name     string
		given    container.Summary
		expected string
	}{{
		name:     "leading-slash-is-stripped",
		given:    container.Summary{Names: []string{"/web"}},
		expected: "web",
	}, {
		name:     "first-usable-name-wins",
		given:    container.Summary{Names: []string{"/", "/web", "/other"}},
		expected: "web",
	}, {
		name:     "no-name-falls-back-to-short-id",
		given:    container.Summary{ID: "0123456789abcdef0123456789abcdef"},
		expected: "0123456789ab",
	}, {
		name:     "short-id-is-kept-as-is",
		given:    container.Summary{ID: "0123456789"},
		expected: "0123456789",
	}}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual := containerDisplayName(c.given)
			assert.Equal(t, c.expected, actual)
		})
	}
}
