//go:build windows

package killport

import (
	"context"
	"unsafe"

	"github.com/shirou/gopsutil/v4/process"
	"golang.org/x/sys/windows"

	"github.com/engity-com/killport/pkg/errors"
)

var (
	modiphlpapi             = windows.NewLazySystemDLL("iphlpapi.dll")
	procGetExtendedTcpTable = modiphlpapi.NewProc("GetExtendedTcpTable")
	procGetExtendedUdpTable = modiphlpapi.NewProc("GetExtendedUdpTable")
)

const (
	tcpTableOwnerModuleAll = 8
	udpTableOwnerModule    = 2

	// Every owner-module row starts on an 8 byte boundary (LARGE_INTEGER
	// member), so the DWORD entry count is followed by 4 bytes of padding.
	ownerTableHeaderSize = 8
)

func NewResolver() Resolver {
	return &extendedTableResolver{}
}

// extendedTableResolver reads the four extended owner-module tables
// (TCP/UDP x IPv4/IPv6) of the IP helper API.
type extendedTableResolver struct{}

type extendedTable struct {
	call       *windows.LazyProc
	family     uintptr
	class      uintptr
	rowSize    uintptr
	portOffset uintptr
	pidOffset  uintptr
}

var extendedTables = []extendedTable{{
	call:       procGetExtendedTcpTable,
	family:     windows.AF_INET,
	class:      tcpTableOwnerModuleAll,
	rowSize:    unsafe.Sizeof(mibTCPRowOwnerModule{}),
	portOffset: unsafe.Offsetof(mibTCPRowOwnerModule{}.LocalPort),
	pidOffset:  unsafe.Offsetof(mibTCPRowOwnerModule{}.OwningPid),
}, {
	call:       procGetExtendedTcpTable,
	family:     windows.AF_INET6,
	class:      tcpTableOwnerModuleAll,
	rowSize:    unsafe.Sizeof(mibTCP6RowOwnerModule{}),
	portOffset: unsafe.Offsetof(mibTCP6RowOwnerModule{}.LocalPort),
	pidOffset:  unsafe.Offsetof(mibTCP6RowOwnerModule{}.OwningPid),
}, {
	call:       procGetExtendedUdpTable,
	family:     windows.AF_INET,
	class:      udpTableOwnerModule,
	rowSize:    unsafe.Sizeof(mibUDPRowOwnerModule{}),
	portOffset: unsafe.Offsetof(mibUDPRowOwnerModule{}.LocalPort),
	pidOffset:  unsafe.Offsetof(mibUDPRowOwnerModule{}.OwningPid),
}, {
	call:       procGetExtendedUdpTable,
	family:     windows.AF_INET6,
	class:      udpTableOwnerModule,
	rowSize:    unsafe.Sizeof(mibUDP6RowOwnerModule{}),
	portOffset: unsafe.Offsetof(mibUDP6RowOwnerModule{}.LocalPort),
	pidOffset:  unsafe.Offsetof(mibUDP6RowOwnerModule{}.OwningPid),
}}

func (this *extendedTableResolver) Resolve(ctx context.Context, port uint16) ([]Killable, error) {
	seen := make(map[uint32]struct{})
	var pids []uint32
	for _, table := range extendedTables {
		buf, err := readExtendedTable(table)
		if err != nil {
			return nil, err
		}
		for _, pid := range collectOwningPids(buf, table, port) {
			if _, ok := seen[pid]; ok {
				continue
			}
			seen[pid] = struct{}{}
			pids = append(pids, pid)
		}
	}
	if len(pids) == 0 {
		return nil, nil
	}
	return this.toProcesses(ctx, pids, seen)
}

// readExtendedTable runs the sizing-then-read protocol: on an insufficient
// buffer signal the buffer is regrown to the size the API reports and the
// call retried. The loop can only end in success or a hard error.
func readExtendedTable(table extendedTable) ([]byte, error) {
	size := uint32(ownerTableHeaderSize)
	buf := make([]byte, size)
	for {
		ret, _, _ := table.call.Call(
			uintptr(unsafe.Pointer(&buf[0])),
			uintptr(unsafe.Pointer(&size)),
			0, // no sorting
			table.family,
			table.class,
			0,
		)
		switch windows.Errno(ret) {
		case windows.Errno(0):
			return buf, nil
		case windows.ERROR_INSUFFICIENT_BUFFER:
			buf = make([]byte, size)
		default:
			return nil, errors.System.Newf("cannot read extended table: %v", windows.Errno(ret))
		}
	}
}

// collectOwningPids walks the fixed-size rows of an extended table and
// returns the owning PIDs of all rows bound to port. The stored port DWORD
// carries the port in network byte order in its low word.
func collectOwningPids(buf []byte, table extendedTable, port uint16) []uint32 {
	if len(buf) < ownerTableHeaderSize {
		return nil
	}
	count := uintptr(*(*uint32)(unsafe.Pointer(&buf[0])))
	if limit := (uintptr(len(buf)) - ownerTableHeaderSize) / table.rowSize; count > limit {
		count = limit
	}

	var result []uint32
	for i := uintptr(0); i < count; i++ {
		row := uintptr(unsafe.Pointer(&buf[0])) + ownerTableHeaderSize + i*table.rowSize
		rawPort := *(*uint32)(unsafe.Pointer(row + table.portOffset))
		if ntohs(uint16(rawPort)) != port {
			continue
		}
		result = append(result, *(*uint32)(unsafe.Pointer(row + table.pidOffset)))
	}
	return result
}

func ntohs(v uint16) uint16 {
	return v>>8 | v<<8
}

// toProcesses resolves names from one process snapshot and applies the
// bounded ancestor policy: the direct parent of a matched process is added
// as an owner too (service wrappers often hold the binding while a child
// inherited the socket), but never more than one hop up.
func (this *extendedTableResolver) toProcesses(ctx context.Context, pids []uint32, seen map[uint32]struct{}) ([]Killable, error) {
	type procInfo struct {
		name string
		ppid uint32
	}
	snapshot := make(map[uint32]procInfo)
	if all, err := process.ProcessesWithContext(ctx); err == nil {
		for _, p := range all {
			info := procInfo{}
			if name, err := p.NameWithContext(ctx); err == nil {
				info.name = name
			}
			if ppid, err := p.PpidWithContext(ctx); err == nil {
				info.ppid = uint32(ppid)
			}
			snapshot[uint32(p.Pid)] = info
		}
	}

	var result []Killable
	for _, pid := range pids {
		info := snapshot[pid]
		result = append(result, NewProcess(int32(pid), info.name))

		parent := info.ppid
		if parent <= 4 {
			// Never touch the idle or System pseudo processes.
			continue
		}
		if _, ok := seen[parent]; ok {
			continue
		}
		parentInfo, ok := snapshot[parent]
		if !ok {
			continue
		}
		seen[parent] = struct{}{}
		result = append(result, NewProcess(int32(parent), parentInfo.name))
	}
	return result, nil
}
