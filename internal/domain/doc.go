// Package domain contains the core error kinds of the calculator. It is
// shared by the arithmetic library and its callers so that failures can be
// classified with errors.Is independent of any delivery mechanism.
package domain
