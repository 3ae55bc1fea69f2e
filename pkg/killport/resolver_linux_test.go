//go:build linux

package killport

import (
	"context"
	"net"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/engity-com/killport/pkg/common"
)

func TestProcfsResolver_Resolve(t *testing.T) {
	instance := NewResolver()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer common.IgnoreCloseError(listener)
	port := uint16(listener.Addr().(*net.TCPAddr).Port)

	actual, actualErr := instance.Resolve(context.Background(), port)

	require.NoError(t, actualErr)
	require.Len(t, actual, 1)
	require.IsType(t, &Process{}, actual[0])
	assert.Equal(t, int32(os.Getpid()), actual[0].(*Process).Pid())
	assert.Equal(t, KindProcess, actual[0].Kind())
	assert.NotEqual(t, unknownProcessName, actual[0].Name())
}

func TestProcfsResolver_Resolve_reportsEachProcessOnce(t *testing.T) {
	instance := NewResolver()

	// Two sockets on the same port of different protocols, both held by
	// this very process, still only yield one candidate.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer common.IgnoreCloseError(listener)
	addr := listener.Addr().(*net.TCPAddr)

	packetConn, err := net.ListenPacket("udp", addr.String())
	require.NoError(t, err)
	defer common.IgnoreCloseError(packetConn)

	actual, actualErr := instance.Resolve(context.Background(), uint16(addr.Port))

	require.NoError(t, actualErr)
	require.Len(t, actual, 1)
}

func TestProcfsResolver_Resolve_nothingListening(t *testing.T) {
	instance := NewResolver()

	// Bind and close immediately; afterwards nothing owns the port.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := uint16(listener.Addr().(*net.TCPAddr).Port)
	require.NoError(t, listener.Close())

	actual, actualErr := instance.Resolve(context.Background(), port)

	require.NoError(t, actualErr)
	assert.Empty(t, actual)
}
