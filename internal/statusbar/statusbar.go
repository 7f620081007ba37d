// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/bethropolis/worldedit/internal/placement"
	"github.com/bethropolis/worldedit/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style // Default background/foreground
	StyleModified  tcell.Style // Style for the modified indicator
	StyleMessage   tcell.Style // Style for temporary messages
	StyleError     tcell.Style // Style for reported errors
	StylePlacing   tcell.Style // Style while a placement session is active
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleModified:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlue).Bold(true),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		StyleError:     tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed).Bold(true),
		StylePlacing:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen),
		MessageTimeout: 4 * time.Second,
	}
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex
	now    func() time.Time

	docPath      string
	isModified   bool
	mode         placement.Mode
	placingLabel string
	cursor       types.Vec3
	selection    string

	tempMessage     string
	tempMessageTime time.Time
	tempIsError     bool
	onClick         func()
}

var _ placement.ErrorReporter = (*StatusBar)(nil)

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config, now: time.Now}
}

// SetDocumentInfo updates the document path and modified marker.
func (sb *StatusBar) SetDocumentInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.docPath = path
	sb.isModified = modified
}

// SetModified updates only the modified marker.
func (sb *StatusBar) SetModified(modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.isModified = modified
}

// SetCursorInfo updates the cursor's world position.
func (sb *StatusBar) SetCursorInfo(pos types.Vec3) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursor = pos
}

// SetMode updates the displayed placement mode.
func (sb *StatusBar) SetMode(mode placement.Mode) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.mode = mode
}

// SetPlacing shows label while a placement session runs. An empty label clears it.
func (sb *StatusBar) SetPlacing(label string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.placingLabel = label
}

// SetSelectionInfo shows a short description of the selection.
func (sb *StatusBar) SetSelectionInfo(text string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.selection = text
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
	sb.tempIsError = false
	sb.onClick = nil
}

// ReportError shows message in the error style. Clicking the status line
// while it is visible runs onClick, which may be nil.
func (sb *StatusBar) ReportError(message string, onClick func()) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = message
	sb.tempMessageTime = sb.now()
	sb.tempIsError = true
	sb.onClick = onClick
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.clearLocked()
}

func (sb *StatusBar) clearLocked() {
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
	sb.tempIsError = false
	sb.onClick = nil
}

// messageActiveLocked expires the temporary message when its time is up.
func (sb *StatusBar) messageActiveLocked() bool {
	if sb.tempMessageTime.IsZero() {
		return false
	}
	if sb.now().Sub(sb.tempMessageTime) > sb.config.MessageTimeout {
		sb.clearLocked()
		return false
	}
	return true
}

// HandleClick runs the click handler of a visible error when the click
// lands on the status line. It reports whether the click was consumed.
func (sb *StatusBar) HandleClick(x, y, width, height int) bool {
	if height <= 0 || y != height-1 || x < 0 || x >= width {
		return false
	}
	sb.mu.Lock()
	if !sb.messageActiveLocked() || sb.onClick == nil {
		sb.mu.Unlock()
		return false
	}
	onClick := sb.onClick
	sb.clearLocked()
	sb.mu.Unlock()

	onClick()
	return true
}

// Text returns the line Draw would render.
func (sb *StatusBar) Text() string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	text, _ := sb.displayLocked()
	return text
}

func (sb *StatusBar) displayLocked() (string, tcell.Style) {
	if sb.messageActiveLocked() {
		if sb.tempIsError {
			return sb.tempMessage, sb.config.StyleError
		}
		return sb.tempMessage, sb.config.StyleMessage
	}
	return sb.defaultTextLocked()
}

// defaultTextLocked builds the default status line text.
func (sb *StatusBar) defaultTextLocked() (string, tcell.Style) {
	name := "[No Name]"
	if sb.docPath != "" {
		name = filepath.Base(sb.docPath)
	}
	modifiedIndicator := ""
	if sb.isModified {
		modifiedIndicator = " [Modified]"
	}
	selection := ""
	if sb.selection != "" {
		selection = " -- " + sb.selection
	}
	text := fmt.Sprintf("%s%s -- X: %.1f Z: %.1f -- %s%s",
		name, modifiedIndicator, sb.cursor.X, sb.cursor.Z, sb.mode, selection)
	if sb.placingLabel != "" {
		return fmt.Sprintf("%s -- PLACING %s (Enter: place, Esc: done)", text, sb.placingLabel), sb.config.StylePlacing
	}
	if sb.isModified {
		return text, sb.config.StyleModified
	}
	return text, sb.config.StyleDefault
}

// Draw renders the status bar onto the screen using visual widths.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1 // Status bar is always the last line

	sb.mu.Lock()
	text, style := sb.displayLocked()
	sb.mu.Unlock()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			var combiningRunes []rune
			if len(runes) > 1 {
				combiningRunes = runes[1:]
			}
			screen.SetContent(currentX, y, runes[0], combiningRunes, style)
		}
		currentX += clusterWidth
	}
}
