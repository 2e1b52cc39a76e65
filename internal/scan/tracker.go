package scan

// Tracker holds the open config and edit names while a file is scanned.
// It lives for one Extract call.
type Tracker struct {
	configs []string
	edits   []string
}

// OpenConfig enters a "config <name>" block.
func (t *Tracker) OpenConfig(name string) {
	t.configs = append(t.configs, name)
	t.trimEdits()
}

// CloseConfig leaves the innermost config block. A stray "end" is ignored.
func (t *Tracker) CloseConfig() {
	if len(t.configs) > 0 {
		t.configs = t.configs[:len(t.configs)-1]
	}
	t.trimEdits()
}

// OpenEdit enters an "edit <name>" entry of the current config block.
func (t *Tracker) OpenEdit(name string) {
	t.edits = append(t.edits, name)
	t.trimEdits()
}

// CloseEdit leaves the innermost edit entry. A stray "next" is ignored.
func (t *Tracker) CloseEdit() {
	if len(t.edits) > 0 {
		t.edits = t.edits[:len(t.edits)-1]
	}
}

// An edit can't outlive the config frame it belongs to.
func (t *Tracker) trimEdits() {
	if len(t.edits) > len(t.configs) {
		t.edits = t.edits[:len(t.configs)]
	}
}

// Depth returns the number of open config blocks and open edits.
func (t *Tracker) Depth() (configs, edits int) {
	return len(t.configs), len(t.edits)
}

// Snapshot copies the current path. The edit slice is padded with "" so
// both slices have the same length.
func (t *Tracker) Snapshot() (configPath, subPath []string) {
	configPath = make([]string, len(t.configs))
	copy(configPath, t.configs)
	subPath = make([]string, len(t.configs))
	copy(subPath, t.edits)
	return configPath, subPath
}
