// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SourceConfig is a MechVibes sound pack configuration as read from its
// config.json. It is loaded once and never mutated.
type SourceConfig struct {
	// ID is the MechVibes pack identifier (e.g. "sound-pack-1200000000001").
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Name is the display name of the pack. Nil when the field is absent.
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`

	// Sound is the default sound file played for keys without a define.
	Sound *string `json:"sound,omitempty" yaml:"sound,omitempty"`

	// KeyDefineType is "multi" (one file per key) or "single" (one sprite
	// file with per-key offsets). Informational only.
	KeyDefineType string `json:"key_define_type,omitempty" yaml:"key_define_type,omitempty"`

	// IncludesNumpad reports whether the pack defines numpad keys.
	IncludesNumpad bool `json:"includes_numpad,omitempty" yaml:"includes_numpad,omitempty"`

	// Defines maps keycodes to sound files in source order.
	Defines Defines `json:"defines,omitempty" yaml:"defines,omitempty"`
}

// Define is a single keycode entry from a MechVibes defines block.
type Define struct {
	// Keycode is the raw object key, normally a decimal integer.
	Keycode string `json:"keycode" yaml:"keycode"`

	// Raw holds the undecoded JSON value (a string, null, or something else).
	Raw json.RawMessage `json:"-" yaml:"-"`
}

// Sound returns the define's sound path. ok is false when the value is
// null or not a JSON string.
func (d Define) Sound() (sound string, ok bool) {
	if len(d.Raw) == 0 || bytes.Equal(d.Raw, []byte("null")) {
		return "", false
	}
	if err := json.Unmarshal(d.Raw, &sound); err != nil {
		return "", false
	}
	return sound, true
}

// IsNull reports whether the define's value is JSON null or missing.
func (d Define) IsNull() bool {
	return len(d.Raw) == 0 || bytes.Equal(d.Raw, []byte("null"))
}

// Defines is an ordered keycode → sound mapping. encoding/json maps lose
// object key order, so Defines decodes the object token by token.
type Defines []Define

// UnmarshalJSON decodes a JSON object, keeping its keys in source order.
// A duplicate key keeps its first position but takes the later value.
func (d *Defines) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*d = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("defines: expected object, got %v", tok)
	}

	var out Defines
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("defines: expected string key, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("defines[%q]: %w", key, err)
		}
		if i, seen := index[key]; seen {
			out[i].Raw = raw
			continue
		}
		index[key] = len(out)
		out = append(out, Define{Keycode: key, Raw: raw})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*d = out
	return nil
}

// MarshalJSON encodes the defines back into a JSON object in order.
func (d Defines) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, def := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(def.Keycode)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if len(def.Raw) == 0 {
			buf.WriteString("null")
		} else {
			buf.Write(def.Raw)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
