// Package kernel provides the shared domain primitives of the booking service.
//
// The package includes:
//   - ID: the identifier value object carried by every Order
//
// Identifiers minted by this service are random UUIDv4 strings. Identifiers
// restored from storage are accepted as any non-blank token, because order
// history written by earlier clients used timestamp-derived ids.
package kernel
