package config

const (
	// MaxWorkNameLength is the maximum length for work names.
	// Limited to 255 to provide reasonable UX (names should be
	// short and descriptive).
	MaxWorkNameLength = 255

	// MaxNodeTitleLength is the maximum length for node titles.
	// Same as work names for consistency.
	MaxNodeTitleLength = 255

	// MaxPromptNameLength is the maximum length for prompt template names.
	MaxPromptNameLength = 255

	// VersionRetentionLimit is the number of content versions kept per
	// node. Whenever a save inserts a new snapshot, versions beyond the
	// most recent VersionRetentionLimit are pruned, oldest first.
	VersionRetentionLimit = 10

	// TreePreviewLength is the number of leading characters of trimmed
	// node content shown next to each tree entry.
	TreePreviewLength = 10

	// VersionPreviewLength is the number of leading characters of a
	// snapshot shown in version listings. Computed at read time, never
	// stored.
	VersionPreviewLength = 100
)
