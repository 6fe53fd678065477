package versioncatalog

import (
	"strings"

	"github.com/pelletier/go-toml/v2/unstable"
)

// keySeparator joins key parts in the position index. Quoted TOML keys may
// contain dots, so a dot cannot be used.
const keySeparator = "\x00"

// positionIndex maps a full key path to the place where it is first introduced.
type positionIndex struct {
	data      []byte
	positions map[string]Position
}

// indexPositions walks the TOML document and records where every key path
// starts. The document is expected to be valid: decoding runs first and
// reports syntax errors, so a parser error here only truncates the index.
func indexPositions(data []byte) *positionIndex {
	idx := &positionIndex{data: data, positions: make(map[string]Position)}

	var p unstable.Parser
	p.Reset(data)

	var table []string
	for p.NextExpression() {
		expr := p.Expression()
		switch expr.Kind {
		case unstable.Table, unstable.ArrayTable:
			table = idx.recordKey(nil, expr.Key())
		case unstable.KeyValue:
			idx.recordKey(table, expr.Key())
			if v := expr.Value(); v != nil && v.Kind == unstable.InlineTable {
				idx.recordInline(append(table, keyParts(expr.Key())...), v)
			}
		}
	}
	return idx
}

// recordKey records each prefix of prefix+key and returns the full path.
func (idx *positionIndex) recordKey(prefix []string, it unstable.Iterator) []string {
	path := append([]string(nil), prefix...)
	for it.Next() {
		n := it.Node()
		path = append(path, string(n.Data))
		idx.record(path, n.Raw)
	}
	return path
}

// recordInline records keys declared inside an inline table.
func (idx *positionIndex) recordInline(prefix []string, table *unstable.Node) {
	children := table.Children()
	for children.Next() {
		kv := children.Node()
		if kv.Kind != unstable.KeyValue {
			continue
		}
		full := idx.recordKey(prefix, kv.Key())
		if v := kv.Value(); v != nil && v.Kind == unstable.InlineTable {
			idx.recordInline(full, v)
		}
	}
}

func (idx *positionIndex) record(path []string, raw unstable.Range) {
	key := strings.Join(path, keySeparator)
	if _, ok := idx.positions[key]; ok {
		return
	}
	idx.positions[key] = idx.offsetToPosition(int(raw.Offset))
}

// lookup returns the position of a key path, or the zero Position.
func (idx *positionIndex) lookup(path ...string) Position {
	if idx == nil {
		return Position{}
	}
	return idx.positions[strings.Join(path, keySeparator)]
}

func (idx *positionIndex) offsetToPosition(offset int) Position {
	if offset > len(idx.data) {
		offset = len(idx.data)
	}
	line, col := 1, 1
	for _, b := range idx.data[:offset] {
		if b == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return Position{Line: line, Column: col}
}

func keyParts(it unstable.Iterator) []string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}
