package interp

import "time"

// clockFn returns the zero-argument native function bound to "clock": the
// number of seconds since the Unix epoch, as a float.
func clockFn() *NativeFunction {
	return &NativeFunction{
		Name: "clock",
		Arg:  0,
		Fn: func(i *Interpreter, args []Value) (Value, error) {
			return Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	}
}
