package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jluoherm/HuffmanCoding/pkg/codecapi"
	"github.com/jluoherm/HuffmanCoding/pkg/logger"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "server base URL")
	text := flag.String("text", "pipppperrr pippppar piippppeer", "text to encode")
	flag.Parse()

	logg := logger.New("roundtrip")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := codecapi.New(*addr)
	sess, err := c.Encode(ctx, *text)
	if err != nil {
		logg.Errorf("encode: %v", err)
		os.Exit(1)
	}
	logg.Infof("session %s: %d symbols -> %d bits (%d bytes packed)", sess.ID, sess.Symbols, sess.BitLen, len(sess.Packed))

	out, err := c.DecodePacked(ctx, sess.ID, sess.Packed, sess.BitLen)
	if err != nil {
		logg.Errorf("decode: %v", err)
		os.Exit(1)
	}
	fmt.Printf("%s\n%s\nmatch=%v\n", sess.Bits, out, out == *text)
}
