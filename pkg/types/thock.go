// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "github.com/google/uuid"

// DefaultKey is the sounds entry played for keys without their own binding.
const DefaultKey = "default"

// SoundBinding lists the sound files played on key press and release.
// Both lists are always non-nil so they encode as [] rather than null.
type SoundBinding struct {
	Down []string `json:"down" yaml:"down"`
	Up   []string `json:"up" yaml:"up"`
}

// NewSoundBinding returns a binding with the given press sounds and no
// release sounds.
func NewSoundBinding(down ...string) SoundBinding {
	if down == nil {
		down = []string{}
	}
	return SoundBinding{Down: down, Up: []string{}}
}

// License describes the licensing of a Thock sound pack.
type License struct {
	Type string `json:"type" yaml:"type"`
	URL  string `json:"url" yaml:"url"`
}

// DestConfig is a Thock sound pack configuration, written as config.json in
// the pack directory. Field names follow Thock's Mode and SoundConfig models.
type DestConfig struct {
	ID            uuid.UUID               `json:"id" yaml:"id"`
	Name          string                  `json:"name" yaml:"name"`
	IsNew         bool                    `json:"isNew" yaml:"isNew"`
	Source        string                  `json:"source" yaml:"source"`
	License       License                 `json:"license" yaml:"license"`
	SupportsKeyUp bool                    `json:"supportsKeyUp" yaml:"supportsKeyUp"`
	Sounds        map[string]SoundBinding `json:"sounds" yaml:"sounds"`
}
