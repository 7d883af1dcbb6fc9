// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "path/filepath"

// ManagedPathSet is the ordered list of paths, relative to the live client
// installation, that are backed up and restored as one unit. Each entry is
// stored in a snapshot under its leaf name, so leaf names must be unique.
type ManagedPathSet []string

// DefaultManagedPaths are the Riot Client paths that hold a signed-in session.
var DefaultManagedPaths = ManagedPathSet{
	"Config",
	"Data/RiotGamesPrivateSettings.yaml",
	"Sessions",
}

// Leaf returns the snapshot entry name for the managed path at index i.
func (s ManagedPathSet) Leaf(i int) string {
	return filepath.Base(filepath.FromSlash(s[i]))
}

// Leaves returns all snapshot entry names in order.
func (s ManagedPathSet) Leaves() []string {
	out := make([]string, len(s))
	for i := range s {
		out[i] = s.Leaf(i)
	}
	return out
}

// AccountSnapshot describes a saved account: its name and the managed paths
// that were present in the live installation when it was saved.
type AccountSnapshot struct {
	Name     string   `json:"name"`
	Contents []string `json:"contents"`
}

// SaveStatus tags the result of saving the outgoing account during a switch.
type SaveStatus int

const (
	// SaveSkipped means there was no outgoing account to save (no marker, or
	// the marker already names the switch target).
	SaveSkipped SaveStatus = iota
	// Saved means the outgoing account's live state was captured.
	Saved
	// SaveFailed means the capture failed; the switch went ahead anyway.
	SaveFailed
)

func (s SaveStatus) String() string {
	switch s {
	case Saved:
		return "saved"
	case SaveFailed:
		return "save_failed"
	default:
		return "skipped"
	}
}

// SaveOutcome is the tagged outcome of the outgoing-account save step.
type SaveOutcome struct {
	Account string
	Status  SaveStatus
	Err     error
}

// SwitchResult is returned by a successful account switch.
type SwitchResult struct {
	Target   string
	Outgoing SaveOutcome
}
