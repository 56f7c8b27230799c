package model

import "time"

// Session is one encoded input: the frequencies its tree was built from,
// the resulting code table and the encoded bits. The input text itself is
// not kept; decoding the bits gives it back.
type Session struct {
	ID          string            `json:"id"`
	Frequencies map[string]int    `json:"frequencies"`
	Codes       map[string]string `json:"codes"`
	Bits        string            `json:"bits"`
	Packed      []byte            `json:"packed"`
	BitLen      int               `json:"bitLen"`
	Symbols     int               `json:"symbols"`
	CreatedAt   time.Time         `json:"createdAt"`
}
