package disasm

import (
	"os"
	"reflect"
	"unsafe"

	"golang.org/x/sys/unix"
	"golang.org/x/xerrors"
)

// MapFile maps the file at path read-only. The returned function unmaps it.
func MapFile(path string) (data []byte, unmap func() error, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	size := fi.Size()
	if size == 0 {
		return nil, func() error { return nil }, nil
	}
	if int64(int(size)) != size {
		return nil, nil, xerrors.Errorf("%s: file too large to map (%d bytes)", path, size)
	}
	data, err = unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, xerrors.Errorf("sys/unix.Mmap %s: %w", path, err)
	}
	return data, func() error { return unix.Munmap(data) }, nil
}

// MakeFunc copies code into newly mapped executable memory and sets the function value pointed
// to by dst to run it. The returned function unmaps the memory; dst must not be called after.
// This function is entirely unsafe.
//
// dst must be a pointer to a function value.
func MakeFunc(dst interface{}, code []byte) (release func() error, err error) {
	v := reflect.ValueOf(dst)
	if !v.IsValid() || v.Kind() != reflect.Ptr || v.IsNil() || !v.Elem().CanSet() || v.Elem().Kind() != reflect.Func {
		return nil, xerrors.New("destination for MakeFunc must be a pointer to a function-value")
	}
	if len(code) == 0 {
		return nil, xerrors.New("MakeFunc: empty code")
	}

	page := os.Getpagesize()
	size := (len(code) + page - 1) / page * page
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, xerrors.Errorf("sys/unix.Mmap failed: %w", err)
	}
	copy(mem, code)
	if err := unix.Mprotect(mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		unix.Munmap(mem)
		return nil, xerrors.Errorf("sys/unix.Mprotect failed: %w", err)
	}
	setFunctionCode(dst, mem)
	return func() error { return unix.Munmap(mem) }, nil
}

// setFunctionCode points the function value behind dstAddr at executable.
func setFunctionCode(dstAddr interface{}, executable []byte) {
	// See "Go 1.1 Function Calls":
	// https://docs.google.com/document/d/1bMwCey-gmqZVTpRax-ESeVuZGmjwbocYs1iHplK-cjo/pub
	type interfaceHeader struct {
		typ  uintptr
		addr **[]byte
	}
	header := *(*interfaceHeader)(unsafe.Pointer(&dstAddr))
	*header.addr = &executable
}
