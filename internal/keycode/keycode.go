// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package keycode maps MechVibes keycodes to Thock key names.
//
// MechVibes records keys by the scan codes its key hook reports on macOS;
// Thock identifies keys by name. Codes without a Thock equivalent (numpad,
// media keys, and so on) are not in the table.
package keycode

import "sort"

// Entry pairs a MechVibes keycode with its Thock key name.
type Entry struct {
	Code int    `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

var table = map[int]string{
	1: "esc",

	59: "f1", 60: "f2", 61: "f3", 62: "f4", 63: "f5", 64: "f6",
	65: "f7", 66: "f8", 67: "f9", 68: "f10", 87: "f11", 88: "f12",

	41: "`",
	2:  "1", 3: "2", 4: "3", 5: "4", 6: "5", 7: "6", 8: "7", 9: "8", 10: "9", 11: "0",
	12: "-", 13: "=", 14: "backspace",

	15: "tab", 58: "capsLock",

	30: "a", 48: "b", 46: "c", 32: "d", 18: "e", 33: "f", 34: "g", 35: "h",
	23: "i", 36: "j", 37: "k", 38: "l", 50: "m", 49: "n", 24: "o", 25: "p",
	16: "q", 19: "r", 31: "s", 20: "t", 22: "u", 47: "v", 17: "w", 45: "x",
	21: "y", 44: "z",

	26: "[", 27: "]", 43: "\\", 39: ";", 40: "'", 28: "enter",
	51: ",", 52: ".", 53: "/", 57: "space",

	3666: "fn", 3667: "del", 3655: "home", 3663: "end", 3657: "pgUp", 3665: "pgDn",

	57416: "arrUp", 57419: "arrLeft", 57421: "arrRight", 57424: "arrDown",

	42: "shiftLeft", 54: "shiftRight", 29: "ctrlLeft",
	56: "optionLeft", 3640: "optionRight",

	// Left and right command share one Thock key.
	3675: "command", 3676: "command",
}

// Lookup returns the Thock key name for code. ok is false when the key has
// no Thock equivalent.
func Lookup(code int) (name string, ok bool) {
	name, ok = table[code]
	return name, ok
}

// Len returns the number of keycodes in the table.
func Len() int {
	return len(table)
}

// Entries returns every table entry, sorted by keycode.
func Entries() []Entry {
	entries := make([]Entry, 0, len(table))
	for code, name := range table {
		entries = append(entries, Entry{Code: code, Name: name})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Code < entries[j].Code
	})
	return entries
}
