package ui

import (
	"testing"

	"shopbot/core/telegram/keyboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionMenuMarkup(t *testing.T) {
	menu := SelectionMenu{
		Unique: "usage",
		Items: []SelectionItem{
			{Label: "Running", Payload: "Running", Checked: true},
			{Label: "Walking", Payload: "Walking"},
			{Label: "Basketball", Payload: "Basketball"},
		},
		Actions: []keyboard.InlineBtn{
			{Text: "Done", Unique: "usage_done"},
		},
	}

	markup := menu.Markup()
	rows := markup.InlineKeyboard

	// three items at two per row plus one action row
	require.Len(t, rows, 3)
	require.Len(t, rows[0], 2)
	require.Len(t, rows[1], 1)
	require.Len(t, rows[2], 1)

	assert.Equal(t, "✅ Running", rows[0][0].Text, "checked items carry the checkmark")
	assert.Equal(t, "Walking", rows[0][1].Text)
	assert.Equal(t, "Done", rows[2][0].Text)
}

func TestSelectionMenuPerRowOverride(t *testing.T) {
	menu := SelectionMenu{
		Unique: "color",
		PerRow: 1,
		Items: []SelectionItem{
			{Label: "red", Payload: "red"},
			{Label: "white", Payload: "white"},
		},
	}

	rows := menu.Markup().InlineKeyboard
	require.Len(t, rows, 2)
	assert.Len(t, rows[0], 1)
}
