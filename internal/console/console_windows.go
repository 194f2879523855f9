//go:build windows

package console

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

var (
	kernel32          = windows.NewLazySystemDLL("kernel32.dll")
	procAttachConsole = kernel32.NewProc("AttachConsole")
	procFreeConsole   = kernel32.NewProc("FreeConsole")
)

// ATTACH_PARENT_PROCESS is (DWORD)-1
const attachParentProcess = ^uint32(0)

func attach() (*Session, error) {
	// Fails when we already own a console (console subsystem builds) or the
	// parent has none. Either way stdout is the right place to write.
	if r, _, _ := procAttachConsole.Call(uintptr(attachParentProcess)); r == 0 {
		return &Session{Stdout: os.Stdout}, nil
	}
	out, err := os.OpenFile("CONOUT$", os.O_WRONLY, 0)
	if err != nil {
		procFreeConsole.Call()
		return nil, fmt.Errorf("console: unable to open CONOUT$: %w", err)
	}
	return &Session{
		Stdout: out,
		release: func() error {
			err := out.Close()
			procFreeConsole.Call()
			return err
		},
	}, nil
}
