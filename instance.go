package dynlib

import (
	"fmt"
	"unsafe"
)

// Instance owns one native object: something an exported constructor
// produced and a matching exported destructor takes back.
//
// The destructor is resolved when Close runs, not before; an address
// captured at construction could outlive the library that backs it. If the
// Library is no longer valid by then, the object is abandoned rather than
// destroyed through a dangling symbol.
type Instance struct {
	lib     *Library
	ptr     unsafe.Pointer
	destroy string
	byAddr  bool
	custom  func(unsafe.Pointer)
}

// NewInstance calls the exported constructor createName, which must take no
// arguments and return an object pointer, and arranges for destroyName,
// taking that pointer, to release the object on Close. Constructors with
// arguments can be bound with Bind and their result wrapped with Adopt.
func (l *Library) NewInstance(createName, destroyName string) (*Instance, error) {
	return l.newInstance(createName, destroyName, false)
}

// NewInstanceAddr is NewInstance for destructors that take the address of
// the object pointer rather than the pointer itself.
func (l *Library) NewInstanceAddr(createName, destroyName string) (*Instance, error) {
	return l.newInstance(createName, destroyName, true)
}

func (l *Library) newInstance(createName, destroyName string, byAddr bool) (*Instance, error) {
	var create func() unsafe.Pointer
	if err := l.Bind(&create, createName); err != nil {
		return nil, err
	}
	ptr := create()
	if ptr == nil {
		return nil, fmt.Errorf("constructor %q returned no object", createName)
	}
	return &Instance{lib: l, ptr: ptr, destroy: destroyName, byAddr: byAddr}, nil
}

// Adopt wraps an object produced elsewhere with a destructor of the
// caller's choosing. The destructor runs at most once, on the first Close.
func Adopt(ptr unsafe.Pointer, destroy func(unsafe.Pointer)) *Instance {
	return &Instance{ptr: ptr, custom: destroy}
}

// Ptr returns the native object, or nil once the Instance is closed or its
// producing Library is no longer valid.
func (i *Instance) Ptr() unsafe.Pointer {
	if i == nil || (i.lib != nil && !i.lib.Valid()) {
		return nil
	}
	return i.ptr
}

// Close releases the native object through its destructor, at most once.
// The stored pointer is cleared before the destructor runs, so a reentrant
// observer already sees the Instance empty. If the producing Library is no
// longer valid the object is abandoned and Close reports why.
func (i *Instance) Close() error {
	if i == nil || i.ptr == nil {
		return nil
	}
	ptr := i.ptr
	i.ptr = nil

	if i.custom != nil {
		i.custom(ptr)
		return nil
	}
	var destroy func(unsafe.Pointer)
	if err := i.lib.Bind(&destroy, i.destroy); err != nil {
		return fmt.Errorf("abandoning native object: %w", err)
	}
	if i.byAddr {
		destroy(unsafe.Pointer(&ptr))
	} else {
		destroy(ptr)
	}
	return nil
}
