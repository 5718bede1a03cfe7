// Package section defines the binary layout of a hufftree frame: the fixed
// header, its packed flag word, and the frequency entries from which a decoder
// rebuilds the coding tree.
//
// # Frame Structure
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (24 bytes, fixed)                                │
//	│  - Options (2 bytes): magic, endianness, checksum bit   │
//	│  - CompressionType (1 byte) + reserved (1 byte)         │
//	│  - MessageLength (4 bytes)                              │
//	│  - LeafCount (2 bytes) + reserved (2 bytes)             │
//	│  - PayloadLength (4 bytes)                              │
//	│  - Checksum (8 bytes): xxHash64 of the message          │
//	├─────────────────────────────────────────────────────────┤
//	│ Frequencies (LeafCount × 5 bytes)                       │
//	│  - Symbol (1 byte), Count (4 bytes)                     │
//	│  - Ascending symbol order                               │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (PayloadLength bytes)                           │
//	│  - Packed codes, optionally compressed                  │
//	└─────────────────────────────────────────────────────────┘
//
// # Byte Order
//
// The Options word is always little-endian so that its endianness bit can be
// read first. Every other multi-byte field uses the byte order that bit
// selects, little-endian by default.
//
// # Options Word
//
//	Bit   | Meaning
//	------|--------------------------------------------
//	0     | checksum present
//	1     | 0 = little-endian, 1 = big-endian
//	2-3   | reserved, must be 0
//	4-15  | magic number (0x485 for version 1)
//
// An empty message is framed as a header with MessageLength, LeafCount and
// PayloadLength all zero.
package section
