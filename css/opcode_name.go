package css

import (
	"sort"
	"sync"
)

// opcodeNames maps an Opcode back to one registered property name, for
// diagnostic output (cmd/cssdump and test failure messages). Several
// property names can share one opcode (a TRBL longhand registers the same
// opcode under four names, one per side); OpcodeName picks the
// lexicographically first so the result is deterministic across runs.
var (
	opcodeNamesOnce sync.Once
	opcodeNames     map[Opcode]string
)

func buildOpcodeNames() map[Opcode]string {
	byOp := map[Opcode][]string{}
	for name, desc := range propertyTable {
		byOp[desc.Opcode] = append(byOp[desc.Opcode], name)
	}
	out := make(map[Opcode]string, len(byOp))
	for op, names := range byOp {
		sort.Strings(names)
		out[op] = names[0]
	}
	return out
}

// OpcodeName returns the property name op was registered under (picking
// one deterministically when several names share an opcode, e.g. the
// margin-top/-right/-bottom/-left longhands all carry OpMarginTRBL), or
// "" if op is unknown.
func OpcodeName(op Opcode) string {
	opcodeNamesOnce.Do(func() { opcodeNames = buildOpcodeNames() })
	return opcodeNames[op]
}
