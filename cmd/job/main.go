package main

import (
	"fmt"
	"os"

	"github.com/jluoherm/HuffmanCoding/pkg/huffman"
)

// 샘플 문자열을 인코딩/디코딩해서 결과를 출력해요.
func main() {
	inputs := os.Args[1:]
	if len(inputs) == 0 {
		inputs = []string{
			"aaabbbbbccccccccdddddddddddd",
			"heeeellooorrrrrr",
			"pipppperrr pippppar piippppeer",
		}
	}
	for _, in := range inputs {
		if err := run(in); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}
}

func run(in string) error {
	c, err := huffman.NewFromText(in)
	if err != nil {
		return fmt.Errorf("%q: %w", in, err)
	}
	bits, err := c.Encode(in)
	if err != nil {
		return err
	}
	out, err := c.Decode(bits)
	if err != nil {
		return err
	}
	fmt.Println(in)
	fmt.Println(c.Table())
	fmt.Println(bits)
	fmt.Println(out)
	fmt.Println(out == in)
	return nil
}
