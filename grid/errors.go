// SPDX-License-Identifier: MIT

package grid

import "errors"

// ErrInvalidSpec reports a grid specification outside its domain: LogN out of
// [MinLogN, MaxLogN], non-positive or non-finite alpha, or bad sizer settings.
var ErrInvalidSpec = errors.New("grid: invalid specification")
