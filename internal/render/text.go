// Package render provides a plain-text [upload.Surface] for one-shot runs.
//
// Nothing is printed while a cycle is running. When loading is hidden the
// surface writes whatever region is visible at that moment: the error line,
// or the cards, the segment table and the image source.
package render

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/MKhiriev/go-spine-client/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// previewLen is how much of the image data URI is printed.
const previewLen = 48

// TextSurface writes upload outcomes to an io.Writer.
type TextSurface struct {
	w io.Writer

	mu             sync.Mutex
	loading        bool
	resultsVisible bool
	errorVisible   bool
	dropActive     bool
	errorText      string
	imageSource    string
	cards          []models.AngleCard
	rows           []models.SegmentRow

	title   lipgloss.Style
	value   lipgloss.Style
	detail  lipgloss.Style
	errLine lipgloss.Style
	muted   lipgloss.Style
}

// NewTextSurface returns a surface writing to w. Colours are used only when
// w is a terminal that supports them.
func NewTextSurface(w io.Writer) *TextSurface {
	r := lipgloss.NewRenderer(w)

	return &TextSurface{
		w:       w,
		title:   r.NewStyle().Bold(true),
		value:   r.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		detail:  r.NewStyle().Foreground(lipgloss.Color("245")),
		errLine: r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		muted:   r.NewStyle().Faint(true),
	}
}

func (s *TextSurface) SetDropTargetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropActive = active
}

func (s *TextSurface) SetLoadingVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasLoading := s.loading
	s.loading = visible
	if wasLoading && !visible {
		s.flush()
	}
}

func (s *TextSurface) SetResultsVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resultsVisible = visible
}

func (s *TextSurface) SetErrorVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errorVisible = visible
}

func (s *TextSurface) SetErrorText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errorText = text
}

func (s *TextSurface) SetImageSource(src string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.imageSource = src
}

func (s *TextSurface) SetAngleCards(cards []models.AngleCard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = cards
}

func (s *TextSurface) SetSegmentRows(rows []models.SegmentRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = rows
}

// ErrorText returns the current error region text.
func (s *TextSurface) ErrorText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errorText
}

// ImageSource returns the current image source.
func (s *TextSurface) ImageSource() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.imageSource
}

// ResultsVisible reports whether the results region is shown.
func (s *TextSurface) ResultsVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resultsVisible
}

// ErrorVisible reports whether the error region is shown.
func (s *TextSurface) ErrorVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errorVisible
}

// flush writes the visible region. Caller holds s.mu.
func (s *TextSurface) flush() {
	if s.errorVisible {
		fmt.Fprintln(s.w, s.errLine.Render(s.errorText))
		return
	}
	if !s.resultsVisible {
		return
	}

	fmt.Fprint(s.w, s.renderCards())
	if len(s.rows) > 0 {
		fmt.Fprintln(s.w, SegmentTable(s.rows))
	}
	fmt.Fprintln(s.w, s.muted.Render("Annotated image: "+Preview(s.imageSource)))
}

func (s *TextSurface) renderCards() string {
	width := 0
	for _, c := range s.cards {
		width = max(width, lipgloss.Width(c.Label))
	}

	var b strings.Builder
	for _, c := range s.cards {
		line := s.title.Render(c.Label+strings.Repeat(" ", width-lipgloss.Width(c.Label))) + "  " + s.value.Render(c.Value)
		if c.Detail != "" {
			line += "  " + s.detail.Render(c.Detail)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// WriteDetails prints the optional parts of resp: image size and detected
// landmarks. Nothing is printed when both are absent.
func (s *TextSurface) WriteDetails(resp models.AnalysisResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if resp.ImageSize != nil {
		fmt.Fprintln(s.w, s.muted.Render(fmt.Sprintf("Image size: %dx%d px", resp.ImageSize.Width, resp.ImageSize.Height)))
	}
	if n := len(resp.Landmarks); n > 0 {
		names := make([]string, 0, n)
		for _, l := range resp.Landmarks {
			names = append(names, l.Vertebra)
		}
		fmt.Fprintln(s.w, s.muted.Render(fmt.Sprintf("Landmarks: %d vertebrae (%s)", n, strings.Join(names, ", "))))
	}
}

// SegmentTable renders rows as a two-column table in input order.
func SegmentTable(rows []models.SegmentRow) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Segment", "Angle")
	for _, r := range rows {
		t.Row(r.Segment, r.Angle)
	}
	return t.String()
}

// Preview shortens a data URI for display.
func Preview(src string) string {
	if len(src) <= previewLen {
		return src
	}
	return fmt.Sprintf("%s… (%d chars)", src[:previewLen], len(src))
}
