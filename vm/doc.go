// Package vm implements the Alchemy runtime's value representation.
//
// This package contains:
//   - The tagged 64-bit value cell (short, reference and double layouts)
//   - Type identifiers and their name table
//   - Kind dispatch over live cells
//   - Numeric addition with standard promotion
package vm
