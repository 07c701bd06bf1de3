// Package matrix offers a small row-major dense matrix and the linear
// operators the pricers need on top of it.
//
// The package provides:
//
//   - Matrix, a minimal read-only 2-D interface (Rows, Cols, At);
//   - Dense, its row-major implementation with a checked accessor;
//   - MatVec and MatVecInto, matrix–vector products with a *Dense fast path;
//   - NewToeplitz, which materialises a Toeplitz operator A[i,j] = f(j-i).
//
// A Toeplitz matrix is how a discrete correlation looks when written as a
// linear map: proj uses it as the O(N²) reference path for the kernel
// correlation that is otherwise evaluated by FFT in O(N log N).
//
// Every public accessor returns errors instead of panicking; sentinels live
// in errors.go and are matched with errors.Is.
package matrix
