// ABOUTME: Segmenter splits a raw body into ordered table and text blocks
// ABOUTME: Tables are kept verbatim; text is left raw for per-block normalisation

package body

import (
	"strings"

	"swish-api/core/domain"
)

const (
	tableOpen  = "<table"
	tableClose = "</table>"
)

// Segment splits raw into blocks in document order.
//
// Every table is surrounded by text blocks, which may be empty. A <table with no
// closing tag takes the rest of the body as its table block.
func Segment(raw string) []domain.Block {
	var blocks []domain.Block
	rest := raw

	for {
		start := strings.Index(rest, tableOpen)
		if start == -1 {
			return append(blocks, domain.Block{Kind: domain.BlockText, Content: rest})
		}
		blocks = append(blocks, domain.Block{Kind: domain.BlockText, Content: rest[:start]})

		table := rest[start:]
		end := strings.Index(table[len(tableOpen):], tableClose)
		if end == -1 {
			return append(blocks, domain.Block{Kind: domain.BlockTable, Content: table})
		}
		end += len(tableOpen) + len(tableClose)

		blocks = append(blocks, domain.Block{Kind: domain.BlockTable, Content: table[:end]})
		rest = table[end:]
	}
}
