// Package types defines the type expression algebra shared by the codec
// package: scalar kinds and the Expr variants (scalar, optional, sum, named
// extension, absent marker). It carries no behavior beyond naming; codec
// resolution lives in the parent package.
package types
