//go:build darwin && cgo

package killport

/*
#include <arpa/inet.h>
#include <libproc.h>
#include <sys/proc_info.h>

static int killport_list_pids(int *buf, int bufsize) {
	return proc_listpids(PROC_ALL_PIDS, 0, buf, bufsize);
}

static int killport_list_fds(int pid, struct proc_fdinfo *buf, int bufsize) {
	return proc_pidinfo(pid, PROC_PIDLISTFDS, 0, buf, bufsize);
}

static int killport_socket_info(int pid, int fd, struct socket_fdinfo *info) {
	int rv = proc_pidfdinfo(pid, fd, PROC_PIDFDSOCKETINFO, info, PROC_PIDFDSOCKETINFO_SIZE);
	if (rv < PROC_PIDFDSOCKETINFO_SIZE) {
		return -1;
	}
	return 0;
}

// killport_local_port digs the local port out of the protocol specific
// union and converts it from network to host byte order. Kinds without a
// local port yield -1.
static int killport_local_port(const struct socket_fdinfo *info) {
	switch (info->psi.soi_kind) {
	case SOCKINFO_IN:
		return ntohs((uint16_t)info->psi.soi_proto.pri_in.insi_lport);
	case SOCKINFO_TCP:
		return ntohs((uint16_t)info->psi.soi_proto.pri_tcp.tcpsi_ini.insi_lport);
	default:
		return -1;
	}
}
*/
import "C"

import (
	"context"

	"github.com/engity-com/killport/pkg/errors"
)

func NewResolver() Resolver {
	return &libprocResolver{}
}

// libprocResolver asks libproc, per process, for the local ports of all its
// socket file descriptors.
type libprocResolver struct{}

func (this *libprocResolver) Resolve(ctx context.Context, port uint16) ([]Killable, error) {
	pids, err := this.listPids()
	if err != nil {
		return nil, err
	}

	var result []Killable
	for _, pid := range pids {
		if pid <= 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !this.ownsLocalPort(pid, port) {
			continue
		}
		result = append(result, NewProcess(int32(pid), processName(ctx, int32(pid))))
	}
	return result, nil
}

func (this *libprocResolver) listPids() ([]C.int, error) {
	const entrySize = C.sizeof_int
	size := C.killport_list_pids(nil, 0)
	if size <= 0 {
		return nil, errors.System.Newf("cannot enumerate processes")
	}
	// Headroom for processes spawned between the sizing and the read call.
	buf := make([]C.int, int(size)/entrySize+16)
	size = C.killport_list_pids(&buf[0], C.int(len(buf)*entrySize))
	if size <= 0 {
		return nil, errors.System.Newf("cannot enumerate processes")
	}
	return buf[:int(size)/entrySize], nil
}

// ownsLocalPort reports whether any socket fd of pid is locally bound to
// port. Processes which exited mid-scan or deny inspection are treated as
// not owning the port; an isolated failure never aborts the whole scan.
func (this *libprocResolver) ownsLocalPort(pid C.int, port uint16) bool {
	const entrySize = C.sizeof_struct_proc_fdinfo
	size := C.killport_list_fds(pid, nil, 0)
	if size <= 0 {
		return false
	}
	fds := make([]C.struct_proc_fdinfo, int(size)/entrySize+8)
	size = C.killport_list_fds(pid, &fds[0], C.int(len(fds)*entrySize))
	if size <= 0 {
		return false
	}

	for _, fd := range fds[:int(size)/entrySize] {
		if uint32(fd.proc_fdtype) != C.PROX_FDTYPE_SOCKET {
			continue
		}
		var info C.struct_socket_fdinfo
		if C.killport_socket_info(pid, C.int(fd.proc_fd), &info) != 0 {
			continue
		}
		if int(C.killport_local_port(&info)) == int(port) {
			return true
		}
	}
	return false
}
