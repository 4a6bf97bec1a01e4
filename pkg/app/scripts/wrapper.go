package scripts

import (
	"encoding/binary"
	"strconv"

	"github.com/google/uuid"
)

const (
	FunctionPrefix = "f_"
	// RegistryIdentifier is the name the scanner script reads to find the
	// wrapped user scripts.
	RegistryIdentifier = "SCRIPTS"
)

// WrappedScript is a user script isolated in its own zero-argument function.
type WrappedScript struct {
	FunctionName string
	Code         string
}

// NewFunctionName draws a 63-bit non-negative id from a random UUID and
// renders it as f_<decimal>.
func NewFunctionName() string {
	id := uuid.New()
	n := binary.BigEndian.Uint64(id[:8]) &^ (1 << 63)
	return FunctionPrefix + strconv.FormatUint(n, 10)
}

// Wrap places code, unmodified, inside a function with a fresh name.
func Wrap(code string) WrappedScript {
	return WrapAs(NewFunctionName(), code)
}

func WrapAs(functionName, code string) WrappedScript {
	return WrappedScript{
		FunctionName: functionName,
		Code:         "function " + functionName + " () { " + code + " };",
	}
}
