// Package pervade applies element kernels across arrays of differing shape.
//
// Bin is the main engine: it reconciles mismatched shapes with the context's
// fill values, then walks the row structure of both operands, broadcasting
// scalars, and applies an Fn at the leaves. Generic is a simpler path for
// element types without fill values.
//
// The kernel tables (Add, Sub, ..., Eq, ..., Not, ...) hold one function
// per supported pair of element types plus an Error constructor for the
// pairs they do not support. Binary arithmetic kernels take the modifier
// first and the receiver second: Sub.NumNum(3, 10) is 7.
package pervade
