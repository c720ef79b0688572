// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for the engine kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Kernels then take their generic (At-based) materialization path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RequireClose asserts equal shapes and element-wise closeness (relative rtol, absolute atol).
func RequireClose(t *testing.T, want, got matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, rtol, atol)
	require.NoError(t, err)
	require.True(t, ok, "matrices differ:\nwant:\n%v\ngot:\n%v", want, got)
}

// RandDominant returns an n×n matrix with entries in [-1,1) and n added to the
// diagonal, which keeps it well conditioned and non-singular.
func RandDominant(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v := rng.Float64()*2 - 1
			if i == j {
				v += float64(n)
			}
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// matrix5T is the transpose of the 5×5 sample matrix from a recorded sample
// session, exactly as the transpose operation printed it.
var matrix5T = [][]float64{
	{2.83370440492, 7.28480886542, 3.45785923929, 7.32063978786, 5.91152850814},
	{8.88917318028, 1.52160318639, 0.74100860429, 2.38237182721, 5.86496787885},
	{9.4905927449, 3.90610974464, 2.18731795539, 6.42597589941, 3.83524731446},
	{6.78923309631, 5.39168804669, 4.01333075669, 0.218148487722, 8.14470262646},
	{5.70598280323, 9.67236023847, 0.839364077355, 7.28209677491, 3.26078773162},
}

// matrix5Adjoint is the adjoint of the sample matrix as printed in the sample session.
var matrix5Adjoint = [][]float64{
	{853.402141095, 586.051710299, -62.9771902127, -973.157318575, -1042.23731172},
	{167.63255659, 569.973653663, 2438.21898098, -404.797263074, -1707.64858972},
	{-819.547379652, 331.822600441, -2132.00876013, -233.592517558, 1520.30454621},
	{-281.691471906, -571.145698543, -1179.45649552, 966.904633518, 331.378190844},
	{-181.125095064, -1051.32523536, 1182.32741783, 351.971559938, 254.922154423},
}

// matrix5Inverse is the inverse of the sample matrix as printed in the sample session.
var matrix5Inverse = [][]float64{
	{-0.1252139446, -0.0859874177159, 0.00924021868075, 0.142784814693, 0.152920456517},
	{-0.0245955952571, -0.0836283928249, -0.357743438533, 0.0593931742514, 0.250551768753},
	{0.12024666362, -0.0486860938212, 0.312815276552, 0.0342734557882, -0.223064039867},
	{0.0413306911935, 0.083800359071, 0.173053702559, -0.141867400355, -0.0486208885962},
	{0.0265752644935, 0.154253866305, -0.173474933641, -0.0516424148529, -0.0374030096528},
}

// Matrix5 rebuilds the 5×5 sample matrix from its printed transpose.
func Matrix5(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.Transpose(MustRows(t, matrix5T))
	require.NoError(t, err)

	return m
}
