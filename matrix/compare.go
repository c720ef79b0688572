// SPDX-License-Identifier: MIT

package matrix

import "math"

// AllClose reports whether a and b have the same shape and every pair of
// elements satisfies |a-b| <= atol + rtol*|b|.
//
// Errors:
//   - ErrNilMatrix for nil operands.
//
// Notes:
//   - A shape difference is reported as false, not as an error.
//   - NaN never compares close, not even to NaN.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	da, err := asDense(a)
	if err != nil {
		return false, err
	}
	db, err := asDense(b)
	if err != nil {
		return false, err
	}
	if da.r != db.r || da.c != db.c {
		return false, nil
	}

	for idx, av := range da.data {
		bv := db.data[idx]
		if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
			return false, nil
		}
	}

	return true, nil
}

// Equal reports whether a and b have the same shape and exactly equal values.
func Equal(a, b Matrix) (bool, error) {
	return AllClose(a, b, 0, 0)
}
