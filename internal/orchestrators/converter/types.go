package converter

import (
	"github.com/KirkDiggler/rpg-item-converter/internal/entities/item"
)

// ConvertItemInput is one pasted item description
type ConvertItemInput struct {
	// Text holds the name line, the tagline and the body text
	Text string
	// Source overrides the configured default source
	Source string
	Page   int
	// TitleCase title-cases the name line
	TitleCase bool
}

// ConvertItemOutput is the converted record and everything that needs a human look
type ConvertItemOutput struct {
	ConversionID string
	Result       item.Result
	Warnings     []string
}
