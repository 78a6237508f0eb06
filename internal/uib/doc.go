// Package uib encodes node trees in the compiled .uib format.
//
// A file is the 4-byte magic "UIB1", a little-endian uint32 payload length
// and the payload. The payload holds a uvarint node count followed by every
// node in id order:
//
//	kind        byte
//	element id  string (empty for none)
//	attr count  uvarint, then (key string, value) pairs sorted by key
//	child count uvarint, then child node indices as uvarints
//
// Strings are a uvarint length followed by UTF-8 bytes. A value is a tag byte
// followed by its payload: 0 string, 1 number (float64 bits), 2 bool (one
// byte), 3 color (four float32 bits), 4 binding path (string). Fixed-width
// numbers are little-endian. Node 0 is the root and must be a container.
package uib
