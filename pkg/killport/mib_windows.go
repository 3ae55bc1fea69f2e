//go:build windows

package killport

// Layouts of the MIB_*ROW_OWNER_MODULE structures of iphlpapi. Only the
// local port and the owning PID are consumed; the remaining members exist
// to keep the row sizes and offsets exact.

type mibTCPRowOwnerModule struct {
	State            uint32
	LocalAddr        uint32
	LocalPort        uint32
	RemoteAddr       uint32
	RemotePort       uint32
	OwningPid        uint32
	CreateTimestamp  int64
	OwningModuleInfo [16]uint64
}

type mibTCP6RowOwnerModule struct {
	LocalAddr        [16]byte
	LocalScopeId     uint32
	LocalPort        uint32
	RemoteAddr       [16]byte
	RemoteScopeId    uint32
	RemotePort       uint32
	State            uint32
	OwningPid        uint32
	CreateTimestamp  int64
	OwningModuleInfo [16]uint64
}

type mibUDPRowOwnerModule struct {
	LocalAddr        uint32
	LocalPort        uint32
	OwningPid        uint32
	_                uint32
	CreateTimestamp  int64
	Flags            int32
	_                int32
	OwningModuleInfo [16]uint64
}

type mibUDP6RowOwnerModule struct {
	LocalAddr        [16]byte
	LocalScopeId     uint32
	LocalPort        uint32
	OwningPid        uint32
	CreateTimestamp  int64
	Flags            int32
	_                int32
	OwningModuleInfo [16]uint64
}
