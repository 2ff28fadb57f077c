// Package demo runs a fixed sequence of example computations through an
// arith.Calculator and renders the results as text or JSON. It exists for
// illustration only and is not part of the library's contract.
package demo
