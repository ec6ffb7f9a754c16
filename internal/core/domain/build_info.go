package domain

import "time"

// BuildRecord describes the last successfully assembled bundle of a package.
type BuildRecord struct {
	Package       string          `json:"package,omitzero"`
	Target        string          `json:"target,omitzero"`
	Platform      Platform        `json:"platform,omitzero"`
	Architectures ArchitectureSet `json:"architectures,omitzero"`
	BinaryHash    string          `json:"binary_hash,omitzero"`
	BundleHash    string          `json:"bundle_hash,omitzero"`
	Destination   string          `json:"destination,omitzero"`
	UseFramework  bool            `json:"use_framework"`
	SessionID     string          `json:"session_id,omitzero"`
	Timestamp     time.Time       `json:"timestamp,omitzero"`
}
