// Package encoding packs sequences of tree codes into dense byte buffers and
// unpacks them by walking the tree.
//
// # Packed Layout
//
//	byte 0            byte 1            ...   last byte
//	[c c c c c r r r] [c c c c c c c c] ...   [0 0 0 c c c c c]
//	 bit 7 ... bit 0
//
// The three low bits of byte 0 (r) hold the total bit count, header
// included, modulo 8: the number of meaningful bits in the last byte, where
// 0 means the last byte is full. Code bits (c) start at bit 3 of byte 0 and
// fill each byte from its least significant bit upwards. Unused high bits of
// the last byte are zero.
//
// # Usage
//
//	root, _ := tree.Build(tree.FrequencyTable(message))
//	packed, err := encoding.Pack(root, message)
//	...
//	message, err = encoding.Unpack(root, packed)
//
// The tree itself is not part of the packed buffer. The frame package stores
// the symbol counts alongside the payload so a decoder can rebuild it.
package encoding
