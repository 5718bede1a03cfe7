// Package frame stores a prefix-coded message as a self-describing byte frame.
//
// A coding tree is fully determined by the message's byte histogram, so a
// frame persists the histogram rather than the tree. The decoder counts are
// fed through the same frequency table and builder as the encoder's, which
// yields an identical tree and therefore identical codes.
//
// # Encoding
//
//	enc, err := frame.NewEncoder(frame.WithCompression(format.CompressionZstd))
//	if err != nil {
//		return err
//	}
//	data, err := enc.Encode(message)
//
// # Decoding
//
//	message, err := frame.Decode(data)
//
// NewDecoder gives access to the parsed header, the frequency entries and the
// rebuilt tree before the payload is unpacked.
//
// # Streams
//
// Frames carry their own length, so several can be concatenated. Encoder.EncodeTo
// and Read move single frames over an io.Writer and io.Reader, and Messages
// iterates the frames of a byte slice.
//
// See package section for the byte layout.
package frame
