package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconComment  = "#" // Comment statement
	IconVdom     = "◆" // Inside a vdom frame
	IconPath     = "→" // Breadcrumb separator
	IconSelected = "»" // Target line in a context listing
	IconCopied   = "✓" // Clipboard / save succeeded
	IconFailed   = "✗" // Clipboard / save failed
)
