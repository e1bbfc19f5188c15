// Package tui implements the full-screen browser: a filterable list of
// shorts with an inline upload form.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"shorts/internal/api"
	"shorts/internal/media"
	"shorts/internal/provider"
)

var (
	appStyle    = lipgloss.NewStyle().Padding(1, 2)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type mode int

const (
	modeBrowse mode = iota
	modeUpload
)

// Upload form field order.
const (
	fieldLink = iota
	fieldName
	fieldTags
	numFields
)

// item adapts a media.Short to the bubbles list.
type item struct {
	short   media.Short
	pattern *provider.Pattern
}

func (i item) Title() string { return i.short.DisplayName() }

func (i item) Description() string {
	source := "direct"
	if i.pattern.IsKnownURL(i.short.VideoURL) {
		source = "embed"
	}
	if len(i.short.Tags) == 0 {
		return source
	}
	return source + " · " + strings.Join(i.short.Tags, ", ")
}

func (i item) FilterValue() string {
	return i.short.DisplayName() + " " + strings.Join(i.short.Tags, " ")
}

type shortsLoadedMsg struct {
	shorts []media.Short
	err    error
}

type uploadDoneMsg struct {
	created *media.Short
	err     error
}

// Model is the bubbletea model for the browser.
type Model struct {
	client  *api.Client
	pattern *provider.Pattern

	list   list.Model
	mode   mode
	inputs [numFields]textinput.Model
	focus  int

	status    string
	statusErr bool
	loading   bool

	selection *media.Short

	width  int
	height int
}

// New creates the browser model.
func New(client *api.Client, pattern *provider.Pattern) Model {
	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, 0, 0)
	l.Title = "shorts"
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "play")),
			key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "upload")),
			key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		}
	}

	var inputs [numFields]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 512
		ti.Width = 60
		inputs[i] = ti
	}
	inputs[fieldLink].Placeholder = "https://…"
	inputs[fieldName].Placeholder = media.UntitledName
	inputs[fieldTags].Placeholder = "comma, separated, tags"

	m := Model{
		client:  client,
		pattern: pattern,
		list:    l,
		loading: true,
	}

	// Before the first WindowSizeMsg arrives, size from the terminal so the
	// initial frame is not zero-height.
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		m.setSize(w, h)
	}

	return m
}

// Selection returns the short chosen for playback, if any.
func (m Model) Selection() *media.Short {
	return m.selection
}

func (m *Model) setSize(w, h int) {
	m.width, m.height = w, h
	frameW, frameH := appStyle.GetFrameSize()
	m.list.SetSize(w-frameW, h-frameH-1) // one line reserved for the status
}

func (m Model) Init() tea.Cmd {
	return m.fetchShorts()
}

func (m Model) fetchShorts() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		shorts, err := client.Shorts()
		return shortsLoadedMsg{shorts: shorts, err: err}
	}
}

func (m Model) submitUpload(req media.UploadRequest) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		created, err := client.Upload(req)
		return uploadDoneMsg{created: created, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case shortsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("loading shorts: %v", msg.err), true)
			return m, nil
		}
		items := make([]list.Item, len(msg.shorts))
		for i, s := range msg.shorts {
			items[i] = item{short: s, pattern: m.pattern}
		}
		m.setStatus(fmt.Sprintf("%d shorts", len(msg.shorts)), false)
		return m, m.list.SetItems(items)

	case uploadDoneMsg:
		m.loading = false
		if msg.err != nil {
			// Backend messages surface verbatim; the form stays open for
			// another attempt.
			m.setStatus(msg.err.Error(), true)
			return m, nil
		}
		m.mode = modeBrowse
		name := media.UntitledName
		if msg.created != nil {
			name = msg.created.DisplayName()
		}
		m.setStatus(fmt.Sprintf("uploaded %q", name), false)
		m.loading = true
		return m, m.fetchShorts()

	case tea.KeyMsg:
		if m.mode == modeUpload {
			return m.updateUpload(msg)
		}
		return m.updateBrowse(msg)
	}

	// Non-key messages (cursor blinks, spinner ticks) go to whichever
	// component is active.
	var cmd tea.Cmd
	if m.mode == modeUpload {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the list filter prompt is active, every key belongs to it.
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "enter":
		if it, ok := m.list.SelectedItem().(item); ok {
			short := it.short
			m.selection = &short
			return m, tea.Quit
		}
		return m, nil

	case "u":
		m.openUploadForm()
		return m, textinput.Blink

	case "r":
		m.loading = true
		m.setStatus("refreshing…", false)
		return m, m.fetchShorts()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) openUploadForm() {
	m.mode = modeUpload
	m.focus = fieldLink
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.inputs[fieldLink].Focus()
	m.setStatus("", false)
}

func (m Model) updateUpload(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.mode = modeBrowse
		m.setStatus("upload cancelled", false)
		return m, nil

	case "tab", "down":
		return m.moveFocus(1)

	case "shift+tab", "up":
		return m.moveFocus(-1)

	case "enter":
		if m.focus < numFields-1 {
			return m.moveFocus(1)
		}
		link := m.inputs[fieldLink].Value()
		if strings.TrimSpace(link) == "" {
			// Validation failure: reported immediately, nothing is sent.
			m.setStatus(media.ErrEmptyLink.Error(), true)
			return m.focusField(fieldLink)
		}
		req := media.UploadRequest{
			VideoLink: link,
			Name:      strings.TrimSpace(m.inputs[fieldName].Value()),
			Tags:      media.ParseTags(m.inputs[fieldTags].Value()),
		}
		m.loading = true
		m.setStatus("uploading…", false)
		return m, m.submitUpload(req)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	next := (m.focus + delta + numFields) % numFields
	return m.focusField(next)
}

func (m Model) focusField(idx int) (tea.Model, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = idx
	return m, m.inputs[m.focus].Focus()
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m Model) statusLine() string {
	switch {
	case m.status == "":
		return ""
	case m.statusErr:
		return errorStyle.Render(m.status)
	default:
		return noticeStyle.Render(m.status)
	}
}

func (m Model) View() string {
	if m.mode == modeUpload {
		return appStyle.Render(m.uploadView())
	}
	return appStyle.Render(m.list.View() + "\n" + m.statusLine())
}

func (m Model) uploadView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Upload a video link"))
	b.WriteString("\n\n")

	labels := [numFields]string{"Link", "Name", "Tags"}
	for i, input := range m.inputs {
		b.WriteString(labelStyle.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("enter next/submit · tab cycle · esc cancel"))
	b.WriteString("\n")
	b.WriteString(m.statusLine())

	return b.String()
}
