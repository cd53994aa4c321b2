package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/teicheck/teicheck/internal/adapters/outbound/tui"
)

func TestToSmallCaps_MapsLowercaseOnly(t *testing.T) {
	assert.Equal(t, "Rᴇᴘᴏʀᴛ: Cᴀᴛᴀʟᴏɢ Fɪʟᴇs", tui.ToSmallCaps("Report: Catalog Files"))
}

func TestToSmallCaps_LeavesNonLowercaseUnchanged(t *testing.T) {
	assert.Equal(t, "ABC 123 !?", tui.ToSmallCaps("ABC 123 !?"))
}

func TestToSmallCaps_FullAlphabet(t *testing.T) {
	assert.Equal(t,
		"ᴀʙᴄᴅᴇꜰɢʜɪᴊᴋʟᴍɴᴏᴘǫʀsᴛᴜᴠᴡxʏᴢ",
		tui.ToSmallCaps("abcdefghijklmnopqrstuvwxyz"))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Report: Tei Files", tui.TitleCase("Report: TEI files"))
}
