package dynlib

import (
	"errors"
	"fmt"
)

// Bind resolves an exported symbol and binds it to the Go function that
// fptr points at, so the native function can be called as an ordinary Go
// function. fptr must be a non-nil pointer to a function variable; argument
// and result types follow the purego.RegisterFunc conversion rules.
//
// This is the package's one unchecked conversion: the declared signature is
// taken on trust, and calling a bound function whose Go signature does not
// match the native one is undefined behavior. The function variable is left
// untouched when Bind returns an error.
func (l *Library) Bind(fptr interface{}, name string) error {
	if !l.Valid() {
		return errors.New("library is not valid")
	}
	addr := l.Symbol(name)
	if addr == 0 {
		return fmt.Errorf("no exported symbol %q", name)
	}
	registerFunc(fptr, addr)
	return nil
}

// BindHandle is Bind for a borrowed raw handle, for callers that keep
// ownership through other means.
func BindHandle(handle uintptr, fptr interface{}, name string) error {
	if handle == 0 {
		return errors.New("zero library handle")
	}
	addr := ResolveSymbol(handle, name)
	if addr == 0 {
		return fmt.Errorf("no exported symbol %q", name)
	}
	registerFunc(fptr, addr)
	return nil
}
