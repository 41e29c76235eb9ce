// SPDX-License-Identifier: MIT

package strided

// BroadcastShapes returns the shape that all inputs broadcast to.
// Shapes are right-aligned; each dimension must be equal or 1 across inputs.
func BroadcastShapes(shapes ...[]int) ([]int, error) {
	nd := 0
	for _, s := range shapes {
		nd = max(nd, len(s))
	}
	out := make([]int, nd)
	for i := range out {
		out[i] = 1
	}
	for _, s := range shapes {
		pad := nd - len(s)
		for d, n := range s {
			if n < 0 {
				return nil, stridedErrorf("BroadcastShapes", ErrBadShape)
			}
			cur := out[pad+d]
			switch {
			case cur == n || n == 1:
			case cur == 1:
				out[pad+d] = n
			default:
				return nil, stridedErrorf("BroadcastShapes", ErrNotBroadcastable)
			}
		}
	}

	return out, nil
}

// BroadcastStrides returns the strides that view (shape, strides) takes when
// broadcast to target. Repeated dimensions get stride 0.
func BroadcastStrides(shape, strides, target []int) ([]int, error) {
	if len(shape) > len(target) || len(shape) != len(strides) {
		return nil, ErrNotBroadcastable
	}
	pad := len(target) - len(shape)
	out := make([]int, len(target))
	for d := range target {
		if d < pad {
			continue // missing leading dimension repeats
		}
		n := shape[d-pad]
		switch {
		case n == target[d]:
			out[d] = strides[d-pad]
		case n == 1:
			out[d] = 0
		default:
			return nil, ErrNotBroadcastable
		}
	}

	return out, nil
}
