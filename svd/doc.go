// Package svd reads and writes CMSIS-SVD device descriptions.
//
// Only what patching needs is typed: a peripheral's name, base address,
// interrupts and registers. Everything else is carried as opaque elements
// and written back in schema order, so a read/write round trip keeps the
// rest of the document intact. Comments travel with the element that
// follows them; comments directly before a peripheral's name, baseAddress
// or interrupt elements, or at the end of a container, are dropped.
package svd
