package query

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/umpc/go-sortedmap"
)

// Format renders the results as one "name: value" line each, in request order.
// Lines longer than width are truncated with "..."; width 0 means no limit.
func Format(results *Results, width uint) string {
	var sb strings.Builder
	for p := results.Oldest(); p != nil; p = p.Next() {
		writeLine(&sb, p.Key, p.Value, width)
	}
	return sb.String()
}

// FormatSorted is Format with the lines ordered by operation name.
func FormatSorted(results *Results, width uint) string {
	byName := sortedmap.New(results.Len(), func(x, y interface{}) bool {
		return x.(sortedmap.Record).Key.(string) < y.(sortedmap.Record).Key.(string)
	})
	for p := results.Oldest(); p != nil; p = p.Next() {
		byName.Insert(p.Key, sortedmap.Record{Key: p.Key, Val: p.Value})
	}
	var sb strings.Builder
	for _, key := range byName.Keys() {
		rec := byName.Map()[key].(sortedmap.Record)
		writeLine(&sb, rec.Key.(string), rec.Val, width)
	}
	return sb.String()
}

func writeLine(sb *strings.Builder, name string, value any, width uint) {
	line := fmt.Sprintf("%s: %v", name, value)
	if width > 0 {
		line = truncate.StringWithTail(line, width, "...")
	}
	sb.WriteString(line)
	sb.WriteString("\n")
}
