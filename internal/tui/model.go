package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-spine-client/internal/logger"
	"github.com/MKhiriev/go-spine-client/internal/service"
	"github.com/MKhiriev/go-spine-client/internal/upload"
	"github.com/MKhiriev/go-spine-client/models"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

type screen int

const (
	screenMain screen = iota
	screenPicker
	screenInfo
)

type healthState struct {
	known  bool
	status models.HealthStatus
	err    error
}

type model struct {
	ctx     context.Context
	uploads Uploader
	surface *Surface
	export  service.ExportService
	appInfo service.AppInfoService
	server  string
	logger  *logger.Logger

	screen   screen
	dropZone textinput.Model
	picker   filepicker.Model
	spinner  spinner.Model
	segments table.Model

	dropActive     bool
	loading        bool
	resultsVisible bool
	errorVisible   bool
	errorText      string
	imageSource    string
	cards          []models.AngleCard
	rows           []models.SegmentRow

	hint     string
	lastFile models.SelectedFile
	health   healthState
	status   string
	statusID int
}

func newModel(ctx context.Context, deps Deps, opts Options) model {
	in := textinput.New()
	in.Placeholder = "drop an X-ray here or type a path"
	in.Prompt = "› "
	in.Width = 60

	fp := filepicker.New()
	if opts.StartDir != "" {
		fp.CurrentDirectory = opts.StartDir
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	tbl := table.New(
		table.WithColumns([]table.Column{
			{Title: "Segment", Width: 12},
			{Title: "Angle", Width: 10},
		}),
		table.WithFocused(false),
		table.WithHeight(8),
	)

	return model{
		ctx:      ctx,
		uploads:  deps.Uploads,
		surface:  deps.Surface,
		export:   deps.Export,
		appInfo:  deps.AppInfo,
		server:   opts.ServerAddress,
		logger:   deps.Logger,
		dropZone: in,
		picker:   fp,
		spinner:  sp,
		segments: tbl,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dropTargetMsg:
		m.dropActive = msg.active
		return m, nil
	case loadingMsg:
		m.loading = msg.visible
		if msg.visible {
			return m, m.spinner.Tick
		}
		return m, nil
	case resultsVisibleMsg:
		m.resultsVisible = msg.visible
		return m, nil
	case errorVisibleMsg:
		m.errorVisible = msg.visible
		if !msg.visible {
			m.hint = ""
		}
		return m, nil
	case errorTextMsg:
		m.errorText = msg.text
		return m, nil
	case imageSourceMsg:
		m.imageSource = msg.src
		return m, nil
	case angleCardsMsg:
		m.cards = msg.cards
		return m, nil
	case segmentRowsMsg:
		m.rows = msg.rows
		m.segments.SetRows(tableRows(msg.rows))
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case uploadDoneMsg:
		return m.handleUploadDone(msg)
	case healthMsg:
		m.health = healthState{known: true, status: msg.status, err: msg.err}
		return m, nil
	case savedMsg:
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Msg("save annotated image")
			return m.setStatus("Save failed: " + msg.err.Error())
		}
		return m.setStatus("Saved to " + msg.path)
	case copiedMsg:
		if msg.err != nil {
			return m.setStatus("Copy failed: " + msg.err.Error())
		}
		return m.setStatus("Summary copied")
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.screen == screenPicker {
			return m.updatePicker(msg)
		}
		if m.dropZone.Focused() {
			var cmd tea.Cmd
			m.dropZone, cmd = m.dropZone.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.screen {
	case screenPicker:
		return m.updatePicker(msg)
	case screenInfo:
		if key.Matches(keyMsg, keys.back) || key.Matches(keyMsg, keys.quit) || key.Matches(keyMsg, keys.enter) {
			m.screen = screenMain
		}
		return m, nil
	}

	if keyMsg.Paste {
		return m.drop(string(keyMsg.Runes))
	}

	if m.dropZone.Focused() {
		return m.updateDropZone(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.focus):
		m.uploads.DragEnter()
		return m, m.dropZone.Focus()
	case key.Matches(keyMsg, keys.picker):
		m.screen = screenPicker
		return m, m.picker.Init()
	case key.Matches(keyMsg, keys.save):
		return m.save()
	case key.Matches(keyMsg, keys.copy):
		return m.copySummary()
	case key.Matches(keyMsg, keys.info):
		m.screen = screenInfo
		return m, nil
	}

	return m, nil
}

func (m model) updateDropZone(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.focus), key.Matches(msg, keys.back):
		m.dropZone.Blur()
		m.uploads.DragLeave()
		return m, nil
	case key.Matches(msg, keys.enter):
		text := m.dropZone.Value()
		m.dropZone.Reset()
		m.dropZone.Blur()
		return m.submit(models.FileEvent{Source: models.SourceDrop, Paths: parseDroppedPaths(text)})
	}

	var cmd tea.Cmd
	m.dropZone, cmd = m.dropZone.Update(msg)
	return m, cmd
}

// drop handles pasted text as a drag-and-drop onto the drop zone.
func (m model) drop(text string) (tea.Model, tea.Cmd) {
	if !m.dropZone.Focused() {
		m.uploads.DragEnter()
	}
	m.dropZone.Reset()
	m.dropZone.Blur()
	return m.submit(models.FileEvent{Source: models.SourceDrop, Paths: parseDroppedPaths(text)})
}

func (m model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "q" {
		m.screen = screenMain
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		m.screen = screenMain
		next, submitCmd := m.submit(models.FileEvent{Source: models.SourcePicker, Paths: []string{path}})
		return next, tea.Batch(cmd, submitCmd)
	}

	return m, cmd
}

// submit runs the upload in a command. The outcome goes through the surface
// queue so it is applied after every surface change the cycle made.
func (m model) submit(ev models.FileEvent) (tea.Model, tea.Cmd) {
	ctx := m.ctx
	uploads := m.uploads
	surface := m.surface

	return m, func() tea.Msg {
		file, err := uploads.SelectFile(ctx, ev)
		surface.send(uploadDoneMsg{file: file, err: err})
		return nil
	}
}

func (m model) handleUploadDone(msg uploadDoneMsg) (tea.Model, tea.Cmd) {
	switch {
	case errors.Is(msg.err, upload.ErrUploadInProgress):
		return m.setStatus("An upload is already running")
	case errors.Is(msg.err, upload.ErrNoFile):
		return m.setStatus("Nothing to upload")
	case msg.err != nil:
		m.hint = errorHint(msg.err)
		return m, nil
	}

	m.hint = ""
	m.lastFile = msg.file
	return m, nil
}

// lastShown returns the response on screen. After a failed upload the
// previous response is kept by the uploader but no longer shown.
func (m model) lastShown() (models.AnalysisResponse, bool) {
	if !m.resultsVisible {
		return models.AnalysisResponse{}, false
	}
	return m.uploads.Last()
}

func (m model) save() (tea.Model, tea.Cmd) {
	resp, ok := m.lastShown()
	if !ok {
		return m.setStatus("No results yet")
	}

	ctx := m.ctx
	export := m.export
	name := m.lastFile.Name

	return m, func() tea.Msg {
		path, err := export.SaveAnnotatedImage(ctx, resp, name)
		return savedMsg{path: path, err: err}
	}
}

func (m model) copySummary() (tea.Model, tea.Cmd) {
	resp, ok := m.lastShown()
	if !ok {
		return m.setStatus("No results yet")
	}

	export := m.export
	return m, func() tea.Msg {
		return copiedMsg{err: export.CopySummary(resp)}
	}
}

func (m model) setStatus(text string) (tea.Model, tea.Cmd) {
	m.statusID++
	m.status = text

	id := m.statusID
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func tableRows(rows []models.SegmentRow) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, table.Row{r.Segment, r.Angle})
	}
	return out
}

func (m model) healthBadge() string {
	switch {
	case !m.health.known:
		return helpStyle.Render("○ server: checking")
	case m.health.err != nil:
		return healthDownStyle.Render("● server: unreachable")
	case m.health.status.Ready():
		return healthReadyStyle.Render("● server: ready")
	case !m.health.status.ModelLoaded:
		return healthDegradedStyle.Render("● server: model not loaded")
	default:
		return healthDegradedStyle.Render("● server: " + strings.TrimSpace(m.health.status.Status))
	}
}
