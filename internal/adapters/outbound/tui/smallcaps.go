package tui

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var smallCaps = func() map[rune]rune {
	m := make(map[rune]rune, 26)
	caps := []rune("ᴀʙᴄᴅᴇꜰɢʜɪᴊᴋʟᴍɴᴏᴘǫʀsᴛᴜᴠᴡxʏᴢ")
	for i, r := range "abcdefghijklmnopqrstuvwxyz" {
		m[r] = caps[i]
	}
	return m
}()

// ToSmallCaps replaces lowercase Latin letters with their small-caps
// equivalents. Everything else passes through unchanged.
func ToSmallCaps(s string) string {
	return strings.Map(func(r rune) rune {
		if c, ok := smallCaps[r]; ok {
			return c
		}
		return r
	}, s)
}

var titleCaser = cases.Title(language.English)

// TitleCase capitalizes the first letter of every word.
func TitleCase(s string) string {
	return titleCaser.String(s)
}
