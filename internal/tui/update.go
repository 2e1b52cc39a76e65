package tui

import (
	"fmt"

	"fgcomment/internal/model"
	"fgcomment/internal/scan"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusReloading = "Reloading..."

// MsgSourceLoaded carries the text of the configuration file.
type MsgSourceLoaded string

// MsgSourceChanged indicates the watched file was rewritten.
type MsgSourceChanged struct{}

// MsgError indicates an error occurred.
type MsgError error

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.ScriptViewport.Width = msg.Width / 2
		m.ScriptViewport.Height = msg.Height - 8 // minus header/footer/borders
		if m.ScriptViewport.Height < 3 {
			m.ScriptViewport.Height = 3
		}
		return m, nil

	case MsgSourceLoaded:
		m.Loading = false
		m.Err = nil
		m.Text = string(msg)
		if m.Status == statusReloading {
			m.Status = "Reloaded."
		}
		m.analyze()
		return m, nil

	case MsgSourceChanged:
		m.Status = "Source changed on disk, re-scanned."
		return m, tea.Batch(LoadSourceCmd(m.Path), WatchCmd(m.watcher))

	case MsgError:
		m.Err = msg
		m.Loading = false
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.Mode = model.ModeWildcard(m.InputBuffer.Value())
				m.analyze()
				return m, nil
			case tea.KeyEsc:
				// Leave pattern entry and drop the filter
				m.InputMode = false
				m.InputBuffer.Blur()
				m.InputBuffer.SetValue("")
				m.Mode = model.ModeNone()
				m.analyze()
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			return m, cmd
		}

		m.Status = ""
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.ShowScript {
				m.ShowScript = false
				return m, nil
			}
			if m.Mode.Kind() != model.ModeKindNone {
				m.Mode = model.ModeNone()
				m.analyze()
			}
		case "up", "k":
			if m.ShowScript {
				m.ScriptViewport, cmd = m.ScriptViewport.Update(msg)
				return m, cmd
			}
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
		case "down", "j":
			if m.ShowScript {
				m.ScriptViewport, cmd = m.ScriptViewport.Update(msg)
				return m, cmd
			}
			if m.SelectedIdx < len(m.Result.Records)-1 {
				m.SelectedIdx++
			}
		case "pgup", "pgdown":
			if m.ShowScript {
				m.ScriptViewport, cmd = m.ScriptViewport.Update(msg)
				return m, cmd
			}
		case "m":
			m.Mode = m.Mode.Next()
			m.analyze()
		case "/":
			m.InputMode = true
			m.InputBuffer.SetValue(m.Mode.Pattern())
			m.InputBuffer.CursorEnd()
			m.InputBuffer.Focus()
			return m, textinput.Blink
		case "g":
			m.ShowScript = !m.ShowScript
		case "c":
			m.copyScript()
		case "s":
			m.saveScript()
		case "r":
			m.Status = statusReloading
			return m, LoadSourceCmd(m.Path)
		}
	}

	return m, cmd
}

// analyze re-runs the pipeline on the loaded text with the current mode.
func (m *AppModel) analyze() {
	m.Result = m.analyzer.Analyze(m.Text, m.Mode)
	m.ScriptViewport.SetContent(m.Result.Script)
	m.ScriptViewport.GotoTop()

	// Bounds check
	if m.SelectedIdx >= len(m.Result.Records) {
		if len(m.Result.Records) > 0 {
			m.SelectedIdx = len(m.Result.Records) - 1
		} else {
			m.SelectedIdx = 0
		}
	}
}

func (m *AppModel) copyScript() {
	if m.Result.Script == "" {
		m.Status = "Nothing to copy."
		return
	}
	if err := m.copyFn(m.Result.Script); err != nil {
		m.logger.Warn("clipboard copy failed", "error", err)
		m.Status = fmt.Sprintf("%s Copy failed: %v", model.IconFailed, err)
		return
	}
	m.Status = model.IconCopied + " Copied removal script to clipboard."
}

func (m *AppModel) saveScript() {
	if m.Result.Script == "" {
		m.Status = "Nothing to save."
		return
	}
	if err := m.saveFn(m.savePath, m.Result.Script); err != nil {
		m.Status = fmt.Sprintf("%s %v", model.IconFailed, err)
		return
	}
	m.Status = fmt.Sprintf("%s Saved %s", model.IconCopied, m.savePath)
}

// LoadSourceCmd reads the configuration file in the background.
func LoadSourceCmd(path string) tea.Cmd {
	return func() tea.Msg {
		text, err := scan.ReadSource(path)
		if err != nil {
			return MsgError(err)
		}
		return MsgSourceLoaded(text)
	}
}

// WatchCmd waits for the next change of the watched file.
func WatchCmd(w *scan.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-w.Changes(); !ok {
			return nil
		}
		return MsgSourceChanged{}
	}
}
