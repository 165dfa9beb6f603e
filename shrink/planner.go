package shrink

import (
	"github.com/netrixframework/proptest/types"
)

// MaxChunkSize is the largest chunk a single command edits.
const MaxChunkSize = 8

// chunkSizes are tried largest first: big edits make the most progress
// per replay. Chunks of 3 are common enough to deserve their own rung.
var chunkSizes = [...]uint8{8, 4, 3, 2, 1}

// Cmds plans the candidate commands for a sequence of the given length,
// in four phases: deletions, zeroing, sorting, then per-index
// minimization. Within a phase chunks are emitted largest first with
// ascending offsets; the order is deterministic.
//
// Size-1 chunks are planned only for deletion: zeroing a single choice
// is subsumed by MinimizeIndex's first try of 0, and sorting one element
// is a no-op.
func Cmds(length int) []Cmd {
	cmds := chunkCmds(length, true, func(c types.Chunk) Cmd { return DeleteChunk{Chunk: c} })
	cmds = append(cmds, chunkCmds(length, false, func(c types.Chunk) Cmd { return ZeroChunk{Chunk: c} })...)
	cmds = append(cmds, chunkCmds(length, false, func(c types.Chunk) Cmd { return SortChunk{Chunk: c} })...)
	for i := 0; i < length; i++ {
		cmds = append(cmds, MinimizeIndex{Index: i})
	}
	return cmds
}

// chunkCmds emits one command per chunk position for every chunk size
// that fits the length.
//
//	chunkCmds(10, false, sort)
//	-->
//	[ SortChunk{size=8, offset=0},   // [XXXXXXXX..]
//	  SortChunk{size=8, offset=1},   // [.XXXXXXXX.]
//	  SortChunk{size=8, offset=2},   // [..XXXXXXXX]
//	  SortChunk{size=4, offset=0},   // [XXXX......]
//	  ...
//	  SortChunk{size=2, offset=8} ]  // [........XX]
func chunkCmds(length int, allowSize1 bool, mk func(types.Chunk) Cmd) []Cmd {
	cmds := make([]Cmd, 0)
	for _, size := range chunkSizes {
		if size == 1 && !allowSize1 {
			continue
		}
		for offset := 0; offset+int(size) <= length; offset++ {
			cmds = append(cmds, mk(types.Chunk{Size: size, Offset: offset}))
		}
	}
	return cmds
}
