// Package glb writes and inspects binary glTF 2.0 containers.
//
// A container is a 12 byte preamble (magic, version, total length), a JSON
// chunk describing one mesh with POSITION and NORMAL attributes plus
// integer indices, and a binary chunk holding the little-endian buffers.
// Both chunks are padded to four byte boundaries, JSON with spaces and
// binary with zeros.
//
// Encoding is deterministic: the same mesh always yields the same bytes.
package glb
