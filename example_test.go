package rds_test

import (
	"fmt"

	"github.com/openrds/rds"
	"github.com/openrds/rds/block"
)

// A station's Programme Service name confirms once its four segments
// have each arrived at least once.
func ExampleDecoder_Decode_programmeServiceName() {
	d := rds.New()

	segments := [4][2]byte{{'A', 'B'}, {'C', 'D'}, {'E', 'F'}, {'G', 'H'}}
	var snap rds.Metadata
	for i := 0; i < 5; i++ { // clears the PTY/TP mode filter windows too
		for index, chars := range segments {
			b2 := block.Block2(uint16(0)<<12 | uint16(index))
			b4 := block.Block4(uint16(chars[0])<<8 | uint16(chars[1]))
			snap = d.Decode(block.Message{
				Block2: block.Some(b2),
				Block4: block.Some(b4),
			})
		}
	}

	fmt.Println(snap.PS.Present, snap.PS.Value)
	// Output: true ABCDEFGH
}
