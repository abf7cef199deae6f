//go:build !windows

package launcher

import "syscall"

// detachAttr decouples the supervisor from the wrapper's session so it
// survives the wrapper exiting.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
