package rcc

import (
	"fmt"
	"log"
	"os"
	"unsafe"

	mmap "github.com/edsrzf/mmap-go"
)

const (
	PAGE_SIZE = 4096
	MEM_FILE  = "/dev/mem"
)

// RCC is a handle to one clock control block. All operations go through a
// handle so that a simulator can stand in for the hardware; see NewWithRegs.
type RCC struct {
	buf  mmap.MMap
	regs *Regs
	wait Waiter
}

// New maps the RCC block at its fixed physical address.
func New() (*RCC, error) {
	return NewAt(RCC_BASE)
}

// NewAt maps an RCC block at the given physical address.
func NewAt(base uintptr) (*RCC, error) {
	buf, bufOffs, err := mapMem(base, int(unsafe.Sizeof(Regs{})))
	if err != nil {
		return nil, fmt.Errorf("couldn't map RCC at %08X: %v", base, err)
	}
	return &RCC{
		buf:  buf,
		regs: (*Regs)(unsafe.Pointer(&buf[bufOffs])),
		wait: spin,
	}, nil
}

// NewWithRegs wraps a caller-supplied register block. This is the entry
// point for simulators and tests; w replaces the default unbounded spin.
func NewWithRegs(r *Regs, w Waiter) *RCC {
	if w == nil {
		w = spin
	}
	return &RCC{regs: r, wait: w}
}

// SetWaiter replaces the hardware-wait strategy for this handle.
func (rc *RCC) SetWaiter(w Waiter) {
	rc.wait = w
}

func (rc *RCC) Close() error {
	if rc.buf == nil {
		return nil
	}
	err := rc.buf.Unmap()
	rc.buf = nil
	rc.regs = nil
	return err
}

// mapMem opens /dev/mem and uses mmap to map a given physical address into our
// address space. Since the mapping has to start at a page boundary, the
// physical address is rounded down to the nearest page boundary. mapMem
// returns the mapped memory and the offset that should be used to access it
// (=physAddr%PAGE_SIZE).
func mapMem(physAddr uintptr, size int) (mmap.MMap, uintptr, error) {
	f, err := os.OpenFile(MEM_FILE, os.O_RDWR|os.O_SYNC, os.ModePerm)
	if err != nil {
		return nil, 0, fmt.Errorf("couldn't open %s: %v", MEM_FILE, err)
	}

	pagemask := ^uintptr(PAGE_SIZE - 1)
	mapAddr := physAddr & pagemask
	size += int(physAddr - mapAddr)
	log.Printf("MapRegion(f, %d, RDWR, 0, %08X), physAddr %08X\n", size, int64(mapAddr), physAddr)
	mm, err := mmap.MapRegion(f, size, mmap.RDWR, 0, int64(mapAddr))
	if err != nil {
		return nil, 0, fmt.Errorf("couldn't map region (%v, %v): %v", physAddr, size, err)
	}
	f.Close() // Ignore error

	return mm, physAddr & (PAGE_SIZE - 1), nil
}
