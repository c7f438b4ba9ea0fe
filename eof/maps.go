// SPDX-License-Identifier: MIT

package eof

// MeanMaps averages the EOF1 and EOF2 grid maps over the day-of-year range
// [startDOY, endDOY). Used to build seasonal mean patterns, e.g. to display
// the anomaly of a single day against its season.
//
// Errors: ErrNilSeries, ErrDayOutOfRange (empty or out-of-cycle range),
// ErrGridShape (axes do not describe the vectors).
func MeanMaps(s *Series, startDOY, endDOY int) (eof1, eof2 [][]float64, err error) {
	if s == nil {
		return nil, nil, eofErrorf("MeanMaps", ErrNilSeries)
	}
	if startDOY < 1 || endDOY > s.Days()+1 || endDOY <= startDOY {
		return nil, nil, eofErrorf("MeanMaps", ErrDayOutOfRange)
	}

	n := float64(endDOY - startDOY)
	for doy := startDOY; doy < endDOY; doy++ {
		f := s.frames[doy-1]
		m1, err := f.EOF1Map()
		if err != nil {
			return nil, nil, DayError("MeanMaps", doy, err)
		}
		m2, err := f.EOF2Map()
		if err != nil {
			return nil, nil, DayError("MeanMaps", doy, err)
		}
		if eof1 == nil {
			eof1, eof2 = zerosLike(m1), zerosLike(m2)
		}
		accumulate(eof1, m1, n)
		accumulate(eof2, m2, n)
	}

	return eof1, eof2, nil
}

func zerosLike(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i := range m {
		out[i] = make([]float64, len(m[i]))
	}

	return out
}

// accumulate adds src/n into dst element-wise.
func accumulate(dst, src [][]float64, n float64) {
	for i := range dst {
		for j := range dst[i] {
			dst[i][j] += src[i][j] / n
		}
	}
}
