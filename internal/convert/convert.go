// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert transforms MechVibes sound pack configs into Thock configs.
//
// Conversion is lenient: defines that are null, malformed, or have no Thock
// key are left out of the result. Every define gets an EntryResult in the
// returned Report so callers can show what was dropped and why.
package convert

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pdiddy/mechvibes2thock/internal/keycode"
	"github.com/pdiddy/mechvibes2thock/pkg/types"
)

// Status is the outcome for a single define.
type Status string

const (
	StatusKept       Status = "kept"
	StatusOverridden Status = "overridden"
	StatusDropped    Status = "dropped"
)

// Reason explains why a define was dropped.
type Reason string

const (
	ReasonEmptySound      Reason = "empty_sound"
	ReasonNullSound       Reason = "null_sound"
	ReasonInvalidValue    Reason = "invalid_value"
	ReasonBadKeycode      Reason = "bad_keycode"
	ReasonUnmappedKeycode Reason = "unmapped_keycode"
)

// EntryResult records what happened to one define.
type EntryResult struct {
	Keycode string `json:"keycode" yaml:"keycode"`
	Sound   string `json:"sound,omitempty" yaml:"sound,omitempty"`
	Key     string `json:"key,omitempty" yaml:"key,omitempty"`
	Status  Status `json:"status" yaml:"status"`
	Reason  Reason `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Report summarizes a conversion.
type Report struct {
	Name            string        `json:"name" yaml:"name"`
	KeyDefineType   string        `json:"key_define_type,omitempty" yaml:"key_define_type,omitempty"`
	DefaultSound    string        `json:"default_sound,omitempty" yaml:"default_sound,omitempty"`
	DefaultPromoted bool          `json:"default_promoted" yaml:"default_promoted"`
	Entries         []EntryResult `json:"entries" yaml:"entries"`
}

// Count returns the number of entries with status s.
func (r Report) Count(s Status) int {
	n := 0
	for _, e := range r.Entries {
		if e.Status == s {
			n++
		}
	}
	return n
}

// Log writes one debug line per dropped or overridden define.
func (r Report) Log(log zerolog.Logger) {
	for _, e := range r.Entries {
		switch e.Status {
		case StatusDropped:
			log.Debug().
				Str("keycode", e.Keycode).
				Str("sound", e.Sound).
				Str("reason", string(e.Reason)).
				Msg("define dropped")
		case StatusOverridden:
			log.Debug().
				Str("keycode", e.Keycode).
				Str("key", e.Key).
				Msg("define overridden by a later keycode")
		}
	}
	log.Debug().
		Int("kept", r.Count(StatusKept)).
		Int("overridden", r.Count(StatusOverridden)).
		Int("dropped", r.Count(StatusDropped)).
		Msg("conversion summary")
}

// Options controls the fixed fields of the generated config.
type Options struct {
	// SourceLabel is written to the Thock "source" field.
	SourceLabel string

	// DefaultName is used when the MechVibes config has no name.
	DefaultName string

	// NewID generates the pack ID. Defaults to uuid.New.
	NewID func() uuid.UUID
}

// OptionsFromConfig builds Options from run configuration.
func OptionsFromConfig(cfg types.Config) Options {
	cfg = cfg.WithDefaults()
	return Options{SourceLabel: cfg.SourceLabel, DefaultName: cfg.DefaultName}
}

func (o Options) withDefaults() Options {
	if o.SourceLabel == "" {
		o.SourceLabel = types.DefaultSourceLabel
	}
	if o.DefaultName == "" {
		o.DefaultName = types.DefaultPackName
	}
	if o.NewID == nil {
		o.NewID = uuid.New
	}
	return o
}

// Convert builds a Thock config from a MechVibes config. It never fails;
// unusable defines are reported in the returned Report and skipped.
func Convert(src *types.SourceConfig, opts Options) (types.DestConfig, Report) {
	opts = opts.withDefaults()

	sounds := map[string]types.SoundBinding{
		types.DefaultKey: types.NewSoundBinding(),
	}
	if src.Sound != nil && *src.Sound != "" {
		sounds[types.DefaultKey] = types.NewSoundBinding(*src.Sound)
	}

	report := Report{KeyDefineType: src.KeyDefineType}

	// order holds key names by first assignment; a later define for the
	// same key replaces the sound but not the position.
	var order []string
	owner := make(map[string]int)

	for _, def := range src.Defines {
		entry := classify(def)
		if entry.Status == StatusKept {
			if prev, ok := owner[entry.Key]; ok {
				report.Entries[prev].Status = StatusOverridden
			} else {
				order = append(order, entry.Key)
			}
			owner[entry.Key] = len(report.Entries)
			sounds[entry.Key] = types.NewSoundBinding(entry.Sound)
		}
		report.Entries = append(report.Entries, entry)
	}

	if len(sounds[types.DefaultKey].Down) == 0 && len(order) > 0 {
		first := sounds[order[0]].Down[0]
		sounds[types.DefaultKey] = types.NewSoundBinding(first)
		report.DefaultPromoted = true
	}
	if d := sounds[types.DefaultKey].Down; len(d) > 0 {
		report.DefaultSound = d[0]
	}

	name := opts.DefaultName
	if src.Name != nil && *src.Name != "" {
		name = *src.Name
	}
	report.Name = name

	dest := types.DestConfig{
		ID:            opts.NewID(),
		Name:          name,
		IsNew:         true,
		Source:        opts.SourceLabel,
		License:       types.License{Type: "unknown", URL: ""},
		SupportsKeyUp: false,
		Sounds:        sounds,
	}
	return dest, report
}

// classify decides whether a define maps to a Thock key.
func classify(def types.Define) EntryResult {
	entry := EntryResult{Keycode: def.Keycode, Status: StatusDropped}

	if def.IsNull() {
		entry.Reason = ReasonNullSound
		return entry
	}
	sound, ok := def.Sound()
	if !ok {
		entry.Reason = ReasonInvalidValue
		return entry
	}
	entry.Sound = sound
	if sound == "" {
		entry.Reason = ReasonEmptySound
		return entry
	}
	if strings.EqualFold(sound, "null") {
		entry.Reason = ReasonNullSound
		return entry
	}

	code, err := strconv.Atoi(def.Keycode)
	if err != nil {
		entry.Reason = ReasonBadKeycode
		return entry
	}
	key, ok := keycode.Lookup(code)
	if !ok {
		entry.Reason = ReasonUnmappedKeycode
		return entry
	}

	entry.Key = key
	entry.Status = StatusKept
	return entry
}
