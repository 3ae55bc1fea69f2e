package killport

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/engity-com/killport/pkg/sys"
)

type fakeKillable struct {
	kind    Kind
	name    string
	killed  []sys.Signal
	killErr error
}

func (this *fakeKillable) Kill(_ context.Context, signal sys.Signal) error {
	if this.killErr != nil {
		return this.killErr
	}
	this.killed = append(this.killed, signal)
	return nil
}

func (this *fakeKillable) Kind() Kind {
	return this.kind
}

func (this *fakeKillable) Name() string {
	return this.name
}

type fakeResolver struct {
	killables []Killable
	err       error
}

func (this *fakeResolver) Resolve(context.Context, uint16) ([]Killable, error) {
	return this.killables, this.err
}

type fakeRuntime struct {
	available bool
	killables []Killable
	err       error
}

func (this *fakeRuntime) Available(context.Context) bool {
	return this.available
}

func (this *fakeRuntime) FindTargetContainers(context.Context, uint16) ([]Killable, error) {
	return this.killables, this.err
}

func TestService_FindTargetKillables(t *testing.T) {
	process := func(name string) *fakeKillable {
		return &fakeKillable{kind: KindProcess, name: name}
	}
	container := func(name string) *fakeKillable {
		return &fakeKillable{kind: KindContainer, name: name}
	}

	cases := []struct {
		name     string
		resolver fakeResolver
		runtime  *fakeRuntime
		mode     Mode
		expected []string
	}{{
		name:     "processes-only-without-runtime",
		resolver: fakeResolver{killables: []Killable{process("nginx"), process("redis-server")}},
		mode:     ModeAuto,
		expected: []string{"nginx", "redis-server"},
	}, {
		name:     "runtime-shims-are-skipped",
		resolver: fakeResolver{killables: []Killable{process("docker-proxy"), process("nginx")}},
		runtime:  &fakeRuntime{available: true, killables: []Killable{container("web")}},
		mode:     ModeAuto,
		expected: []string{"nginx", "web"},
	}, {
		name:     "runtime-shims-survive-without-reachable-runtime",
		resolver: fakeResolver{killables: []Killable{process("docker-proxy")}},
		runtime:  &fakeRuntime{available: false},
		mode:     ModeAuto,
		expected: []string{"docker-proxy"},
	}, {
		name:     "process-mode-never-contacts-the-runtime",
		resolver: fakeResolver{killables: []Killable{process("nginx")}},
		runtime:  &fakeRuntime{available: true, killables: []Killable{container("web")}},
		mode:     ModeProcess,
		expected: []string{"nginx"},
	}, {
		name:     "container-mode-skips-native-processes",
		resolver: fakeResolver{killables: []Killable{process("nginx")}},
		runtime:  &fakeRuntime{available: true, killables: []Killable{container("web")}},
		mode:     ModeContainer,
		expected: []string{"web"},
	}, {
		name:     "empty-result-is-not-an-error",
		resolver: fakeResolver{},
		mode:     ModeAuto,
		expected: nil,
	}}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			instance := Service{Resolver: &c.resolver}
			if c.runtime != nil {
				instance.Runtime = c.runtime
			}

			actual, actualErr := instance.FindTargetKillables(context.Background(), 8080, c.mode)

			require.NoError(t, actualErr)
			var actualNames []string
			for _, v := range actual {
				actualNames = append(actualNames, v.Name())
			}
			assert.Equal(t, c.expected, actualNames)
		})
	}
}

func TestService_KillServiceByPort(t *testing.T) {
	instance := Service{
		Resolver: &fakeResolver{killables: []Killable{
			&fakeKillable{kind: KindProcess, name: "nginx"},
		}},
		Runtime: &fakeRuntime{available: true, killables: []Killable{
			&fakeKillable{kind: KindContainer, name: "web"},
		}},
	}

	actual, actualErr := instance.KillServiceByPort(context.Background(), 8080, sys.SIGKILL, ModeAuto, false)

	require.NoError(t, actualErr)
	assert.Equal(t, []Target{
		{KindProcess, "nginx"},
		{KindContainer, "web"},
	}, actual)

	for _, v := range instance.Resolver.(*fakeResolver).killables {
		assert.Equal(t, []sys.Signal{sys.SIGKILL}, v.(*fakeKillable).killed)
	}
}

func TestService_KillServiceByPort_dryRunDoesNotKill(t *testing.T) {
	target := &fakeKillable{kind: KindProcess, name: "nginx"}
	instance := Service{Resolver: &fakeResolver{killables: []Killable{target}}}

	actual, actualErr := instance.KillServiceByPort(context.Background(), 8080, sys.SIGTERM, ModeAuto, true)

	require.NoError(t, actualErr)
	assert.Equal(t, []Target{{KindProcess, "nginx"}}, actual)
	assert.Empty(t, target.killed)
}

func TestService_KillServiceByPort_firstFailureAborts(t *testing.T) {
	second := &fakeKillable{kind: KindProcess, name: "second"}
	instance := Service{Resolver: &fakeResolver{killables: []Killable{
		&fakeKillable{kind: KindProcess, name: "first", killErr: assert.AnError},
		second,
	}}}

	actual, actualErr := instance.KillServiceByPort(context.Background(), 8080, sys.SIGKILL, ModeAuto, false)

	require.ErrorContains(t, actualErr, "cannot kill process 'first' listening on port 8080")
	assert.Nil(t, actual)
	assert.Empty(t, second.killed)
}
