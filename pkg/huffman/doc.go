// Package huffman builds prefix-free codes from symbol frequencies and uses
// them to encode and decode text.
//
// The pipeline is CountFrequencies -> Build -> GenerateCodes -> Encode, with
// Decode walking the same tree back. Trees are reproducible: the same
// frequencies always give the same codes, bit for bit.
//
//	c, err := huffman.NewFromText("heeeellooorrrrrr")
//	bits, err := c.Encode("heeeellooorrrrrr")
//	text, err := c.Decode(bits)
//
// Bits are carried as strings of '0' and '1'; Pack and Unpack convert them
// to and from bytes.
package huffman
