package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/clip-keeper/internal/service"
	"github.com/MKhiriev/clip-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type pane int

const (
	paneSessions pane = iota
	paneHistory
)

type loopMode int

const (
	modeNormal loopMode = iota
	modeNewSession
	modeRenameSession
	modeSearch
	modeDetail
	modeConfirmDeleteSession
	modeConfirmClear
)

const sessionPaneWidth = 24

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	user     models.User

	pane pane
	mode loopMode

	sessions   []models.Session
	sessionIdx int
	active     models.Session

	entries     []models.ClipboardEntry
	entryIdx    int
	showDeleted bool
	searchQuery string
	searchType  models.ContentType
	detailEntry models.ClipboardEntry

	nameInput   textinput.Model
	searchInput textinput.Model

	// pending is the session a confirm dialog or rename acts on.
	pending models.Session

	loadingSessions bool
	loadingEntries  bool
	status          string
	errMsg          string

	showError bool
	overlay   errorOverlayModel
	confirm   confirmModel

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, user models.User, startup models.Session) mainLoopModel {
	return mainLoopModel{
		ctx:             ctx,
		services:        services,
		user:            user,
		pane:            paneHistory,
		active:          startup,
		loadingSessions: true,
		loadingEntries:  true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadSessions(), m.cmdLoadEntries(), m.cmdWaitMonitorEvent())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionsLoadedMsg:
		m.loadingSessions = false
		if msg.err != nil {
			m.openErrorOverlay(msg.err)
			return m, nil
		}
		m.sessions = msg.sessions
		if m.sessionIdx >= len(m.sessions) {
			m.sessionIdx = len(m.sessions) - 1
		}
		if m.sessionIdx < 0 {
			m.sessionIdx = 0
		}
		return m, nil

	case entriesLoadedMsg:
		m.loadingEntries = false
		if msg.err != nil {
			m.openErrorOverlay(msg.err)
			return m, nil
		}
		m.entries = msg.entries
		if m.entryIdx >= len(m.entries) {
			m.entryIdx = len(m.entries) - 1
		}
		if m.entryIdx < 0 {
			m.entryIdx = 0
		}
		return m, nil

	case sessionCreatedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.mode = modeNormal
		m.status = "сессия создана"
		m.errMsg = ""
		m.loadingSessions = true
		return m, tea.Batch(m.cmdLoadSessions(), cmdClearStatus())

	case sessionRenamedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.mode = modeNormal
		m.status = "сессия переименована"
		m.errMsg = ""
		m.loadingSessions = true
		if m.pending.ID == m.active.ID {
			// the header shows the active session name, refresh it too
			m.active.Name = strings.TrimSpace(m.nameInput.Value())
		}
		return m, tea.Batch(m.cmdLoadSessions(), cmdClearStatus())

	case sessionDeletedMsg:
		if msg.err != nil {
			m.openErrorOverlay(msg.err)
			return m, nil
		}
		m.status = "сессия удалена"
		m.loadingSessions = true
		cmds := []tea.Cmd{m.cmdLoadSessions(), cmdClearStatus()}
		if msg.deletedID == m.active.ID {
			m.resetHistoryView(msg.next)
			cmds = append(cmds, m.cmdLoadEntries(), m.cmdRememberSelection(msg.next.ID))
		}
		return m, tea.Batch(cmds...)

	case defaultSetMsg:
		if msg.err != nil {
			m.openErrorOverlay(msg.err)
			return m, nil
		}
		m.status = "сессия по умолчанию обновлена"
		m.loadingSessions = true
		return m, tea.Batch(m.cmdLoadSessions(), cmdClearStatus())

	case entryCopiedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "скопировано"
		m.errMsg = ""
		return m, cmdClearStatus()

	case entryDeletedMsg:
		if msg.err != nil {
			m.openErrorOverlay(msg.err)
			return m, nil
		}
		m.mode = modeNormal
		m.status = "запись удалена"
		m.loadingEntries = true
		return m, tea.Batch(m.cmdLoadEntries(), cmdClearStatus())

	case entryRestoredMsg:
		if msg.err != nil {
			m.openErrorOverlay(msg.err)
			return m, nil
		}
		m.mode = modeNormal
		m.status = "запись восстановлена"
		m.loadingEntries = true
		return m, tea.Batch(m.cmdLoadEntries(), cmdClearStatus())

	case historyClearedMsg:
		if msg.err != nil {
			m.openErrorOverlay(msg.err)
			return m, nil
		}
		m.status = "история очищена"
		m.loadingEntries = true
		return m, tea.Batch(m.cmdLoadEntries(), cmdClearStatus())

	case monitorEventMsg:
		cmds := []tea.Cmd{m.cmdWaitMonitorEvent()}
		if msg.event.Err != nil {
			m.openErrorOverlay(msg.event.Err)
			return m, tea.Batch(cmds...)
		}
		if msg.event.Entry.SessionID == m.active.ID && !m.showDeleted && !m.searchActive() {
			m.status = "запись сохранена"
			m.loadingEntries = true
			cmds = append(cmds, m.cmdLoadEntries(), cmdClearStatus())
		}
		return m, tea.Batch(cmds...)

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forwardToInput(msg)
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showError {
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
			m.showError = false
			m.overlay.message = ""
		}
		return m, nil
	}

	switch m.mode {
	case modeConfirmDeleteSession:
		if key.Matches(keyMsg, keys.yes) {
			m.mode = modeNormal
			return m, m.cmdDeleteSession(m.pending)
		}
		if key.Matches(keyMsg, keys.no) || key.Matches(keyMsg, keys.esc) {
			m.mode = modeNormal
		}
		return m, nil

	case modeConfirmClear:
		if key.Matches(keyMsg, keys.yes) {
			m.mode = modeNormal
			return m, m.cmdClearHistory(m.pending.ID)
		}
		if key.Matches(keyMsg, keys.no) || key.Matches(keyMsg, keys.esc) {
			m.mode = modeNormal
		}
		return m, nil

	case modeNewSession, modeRenameSession:
		return m.updateNameEntry(msg)

	case modeSearch:
		return m.updateSearch(msg)

	case modeDetail:
		return m.updateDetail(keyMsg)
	}

	return m.updateBrowse(keyMsg)
}

// updateBrowse handles the hotkeys of the two-pane browser.
func (m mainLoopModel) updateBrowse(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit

	case "tab":
		if m.pane == paneSessions {
			m.pane = paneHistory
		} else {
			m.pane = paneSessions
		}

	case "up", "k":
		if m.pane == paneSessions {
			if m.sessionIdx > 0 {
				m.sessionIdx--
			}
		} else if m.entryIdx > 0 {
			m.entryIdx--
		}

	case "down", "j":
		if m.pane == paneSessions {
			if m.sessionIdx < len(m.sessions)-1 {
				m.sessionIdx++
			}
		} else if m.entryIdx < len(m.entries)-1 {
			m.entryIdx++
		}

	case "enter":
		if m.pane == paneSessions {
			session, ok := m.currentSession()
			if !ok {
				return m, nil
			}
			m.resetHistoryView(session)
			return m, tea.Batch(m.cmdLoadEntries(), m.cmdRememberSelection(session.ID))
		}
		entry, ok := m.currentEntry()
		if !ok {
			m.status = "Нет записей"
			return m, nil
		}
		m.detailEntry = entry
		m.mode = modeDetail

	case "n":
		m.startNameEntry(modeNewSession, "")
		return m, textinput.Blink

	case "r":
		if m.pane != paneSessions {
			return m, nil
		}
		session, ok := m.currentSession()
		if !ok {
			return m, nil
		}
		m.pending = session
		m.startNameEntry(modeRenameSession, session.Name)
		return m, textinput.Blink

	case "d":
		if m.pane != paneSessions {
			return m, nil
		}
		session, ok := m.currentSession()
		if !ok {
			return m, nil
		}
		m.pending = session
		m.confirm = confirmModel{question: "Удалить сессию \"" + session.Name + "\" вместе с историей?"}
		m.mode = modeConfirmDeleteSession

	case "D":
		if m.pane != paneSessions {
			return m, nil
		}
		session, ok := m.currentSession()
		if !ok {
			return m, nil
		}
		return m, m.cmdSetDefault(session.ID)

	case "c":
		entry, ok := m.currentEntry()
		if !ok {
			m.status = "Нет записей"
			return m, nil
		}
		return m, m.cmdCopyEntry(entry.ID)

	case "x":
		if m.showDeleted {
			return m, nil
		}
		entry, ok := m.currentEntry()
		if !ok {
			m.status = "Нет записей"
			return m, nil
		}
		return m, m.cmdDeleteEntry(entry.ID)

	case "u":
		if m.showDeleted {
			entry, ok := m.currentEntry()
			if !ok {
				return m, nil
			}
			return m, m.cmdRestoreEntry(entry.ID)
		}
		m.showDeleted = true
		m.searchQuery = ""
		m.searchType = ""
		m.entryIdx = 0
		m.pane = paneHistory
		m.loadingEntries = true
		return m, m.cmdLoadEntries()

	case "/":
		m.startSearch()
		return m, textinput.Blink

	case "C":
		m.pending = m.active
		m.confirm = confirmModel{question: "Очистить историю сессии \"" + m.active.Name + "\"?"}
		m.mode = modeConfirmClear

	case "l":
		m.logout = true
		return m, tea.Quit

	case "esc":
		if m.showDeleted {
			m.showDeleted = false
			m.entryIdx = 0
			m.loadingEntries = true
			return m, m.cmdLoadEntries()
		}
		if m.searchActive() {
			m.searchQuery = ""
			m.searchType = ""
			m.entryIdx = 0
			m.loadingEntries = true
			return m, m.cmdLoadEntries()
		}
	}

	return m, nil
}

func (m mainLoopModel) updateNameEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeNormal
			m.errMsg = ""
			return m, nil
		case "enter":
			name := strings.TrimSpace(m.nameInput.Value())
			if name == "" {
				m.errMsg = "Название сессии не может быть пустым"
				return m, nil
			}

			m.errMsg = ""
			if m.mode == modeRenameSession {
				return m, m.cmdRenameSession(m.pending.ID, name)
			}
			return m, m.cmdCreateSession(name)
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeNormal
			m.errMsg = ""
			return m, nil
		case "ctrl+t":
			m.searchType = nextSearchType(m.searchType)
			return m, nil
		case "enter":
			m.searchQuery = strings.TrimSpace(m.searchInput.Value())
			m.mode = modeNormal
			m.errMsg = ""
			m.entryIdx = 0
			m.pane = paneHistory
			m.loadingEntries = true
			return m, m.cmdLoadEntries()
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.mode = modeNormal
	case "c":
		return m, m.cmdCopyEntry(m.detailEntry.ID)
	case "x":
		if m.showDeleted {
			return m, nil
		}
		return m, m.cmdDeleteEntry(m.detailEntry.ID)
	case "u":
		if !m.showDeleted {
			return m, nil
		}
		return m, m.cmdRestoreEntry(m.detailEntry.ID)
	}

	return m, nil
}

// forwardToInput routes non-key messages (cursor blinks) to the text input
// focused by the current mode.
func (m mainLoopModel) forwardToInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.mode {
	case modeNewSession, modeRenameSession:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case modeSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	}

	return m, cmd
}

// resetHistoryView points capture and browsing at the given session and
// drops the trash/search sub-views.
func (m *mainLoopModel) resetHistoryView(session models.Session) {
	m.active = session
	m.showDeleted = false
	m.searchQuery = ""
	m.searchType = ""
	m.entryIdx = 0
	m.loadingEntries = true
	m.services.Monitor.SetSession(session.ID)
}

func (m *mainLoopModel) openErrorOverlay(err error) {
	m.showError = true
	m.overlay = errorOverlayModel{message: humanizeError(err)}
}

func (m *mainLoopModel) startNameEntry(mode loopMode, initial string) {
	input := textinput.New()
	input.Placeholder = "название сессии"
	input.CharLimit = 64
	input.Width = 40
	input.SetValue(initial)
	input.Focus()

	m.nameInput = input
	m.errMsg = ""
	m.mode = mode
}

func (m *mainLoopModel) startSearch() {
	input := textinput.New()
	input.Placeholder = "подстрока"
	input.Width = 40
	input.SetValue(m.searchQuery)
	input.Focus()

	m.searchInput = input
	m.errMsg = ""
	m.mode = modeSearch
}

func (m mainLoopModel) searchActive() bool {
	return m.searchQuery != "" || m.searchType != ""
}

func (m mainLoopModel) currentSession() (models.Session, bool) {
	if len(m.sessions) == 0 || m.sessionIdx < 0 || m.sessionIdx >= len(m.sessions) {
		return models.Session{}, false
	}
	return m.sessions[m.sessionIdx], true
}

func (m mainLoopModel) currentEntry() (models.ClipboardEntry, bool) {
	if len(m.entries) == 0 || m.entryIdx < 0 || m.entryIdx >= len(m.entries) {
		return models.ClipboardEntry{}, false
	}
	return m.entries[m.entryIdx], true
}

func nextSearchType(t models.ContentType) models.ContentType {
	switch t {
	case "":
		return models.TypeText
	case models.TypeText:
		return models.TypeImage
	default:
		return ""
	}
}

func searchTypeLabel(t models.ContentType) string {
	switch t {
	case models.TypeText:
		return "текст"
	case models.TypeImage:
		return "изображения"
	default:
		return "любой"
	}
}

func (m mainLoopModel) cmdLoadSessions() tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	userID := m.user.ID

	return func() tea.Msg {
		list, err := sessions.List(ctx, userID)
		return sessionsLoadedMsg{sessions: list, err: err}
	}
}

func (m mainLoopModel) cmdLoadEntries() tea.Cmd {
	ctx := m.ctx
	history := m.services.HistoryService
	sessionID := m.active.ID
	deleted := m.showDeleted
	query := m.searchQuery
	contentType := m.searchType

	return func() tea.Msg {
		var (
			entries []models.ClipboardEntry
			err     error
		)

		switch {
		case deleted:
			entries, err = history.Deleted(ctx, sessionID)
		case query != "" || contentType != "":
			entries, err = history.Search(ctx, sessionID, query, contentType)
		default:
			entries, err = history.List(ctx, sessionID)
		}

		return entriesLoadedMsg{entries: entries, err: err}
	}
}

func (m mainLoopModel) cmdCreateSession(name string) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	userID := m.user.ID

	return func() tea.Msg {
		session, err := sessions.Create(ctx, userID, name)
		return sessionCreatedMsg{session: session, err: err}
	}
}

func (m mainLoopModel) cmdRenameSession(sessionID int64, name string) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService

	return func() tea.Msg {
		err := sessions.Rename(ctx, sessionID, name)
		return sessionRenamedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteSession(session models.Session) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	userID := m.user.ID

	return func() tea.Msg {
		next, err := sessions.Delete(ctx, userID, session.ID)
		return sessionDeletedMsg{deletedID: session.ID, next: next, err: err}
	}
}

func (m mainLoopModel) cmdSetDefault(sessionID int64) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	userID := m.user.ID

	return func() tea.Msg {
		err := sessions.SetDefault(ctx, userID, sessionID)
		return defaultSetMsg{err: err}
	}
}

func (m mainLoopModel) cmdRememberSelection(sessionID int64) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	userID := m.user.ID

	return func() tea.Msg {
		// failure only loses the startup preselection, the service logs it
		_ = sessions.RememberSelection(ctx, userID, sessionID)
		return nil
	}
}

func (m mainLoopModel) cmdCopyEntry(entryID int64) tea.Cmd {
	ctx := m.ctx
	history := m.services.HistoryService

	return func() tea.Msg {
		err := history.CopyToClipboard(ctx, entryID)
		return entryCopiedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteEntry(entryID int64) tea.Cmd {
	ctx := m.ctx
	history := m.services.HistoryService

	return func() tea.Msg {
		err := history.Delete(ctx, entryID)
		return entryDeletedMsg{err: err}
	}
}

func (m mainLoopModel) cmdRestoreEntry(entryID int64) tea.Cmd {
	ctx := m.ctx
	history := m.services.HistoryService

	return func() tea.Msg {
		err := history.Restore(ctx, entryID)
		return entryRestoredMsg{err: err}
	}
}

func (m mainLoopModel) cmdClearHistory(sessionID int64) tea.Cmd {
	ctx := m.ctx
	history := m.services.HistoryService

	return func() tea.Msg {
		err := history.Clear(ctx, sessionID)
		return historyClearedMsg{err: err}
	}
}

// cmdWaitMonitorEvent blocks on the monitor's event channel. The
// monitorEventMsg handler re-arms it after every delivery.
func (m mainLoopModel) cmdWaitMonitorEvent() tea.Cmd {
	ctx := m.ctx
	events := m.services.Monitor.Events()

	return func() tea.Msg {
		select {
		case event := <-events:
			return monitorEventMsg{event: event}
		case <-ctx.Done():
			return nil
		}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m mainLoopModel) View() string {
	if m.showError {
		return m.overlay.View()
	}

	switch m.mode {
	case modeConfirmDeleteSession, modeConfirmClear:
		return m.confirm.View()
	case modeNewSession:
		return m.viewNameEntry("НОВАЯ СЕССИЯ")
	case modeRenameSession:
		return m.viewNameEntry("ПЕРЕИМЕНОВАНИЕ СЕССИИ")
	case modeSearch:
		return m.viewSearch()
	case modeDetail:
		return m.viewDetail()
	}

	return m.viewBrowse()
}

func (m mainLoopModel) viewBrowse() string {
	var b strings.Builder

	b.WriteString("Пользователь: " + m.user.UserName + " │ Сессия: " + m.active.Name + "\n\n")

	if m.errMsg != "" {
		b.WriteString("Ошибка: " + m.errMsg + "\n")
	}
	if m.status != "" {
		b.WriteString("Статус: " + m.status + "\n")
	}
	if m.errMsg != "" || m.status != "" {
		b.WriteString("\n")
	}

	left := m.sessionLines()
	right := m.historyLines()

	rows := len(left)
	if len(right) > rows {
		rows = len(right)
	}
	for i := 0; i < rows; i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		b.WriteString(padRight(l, sessionPaneWidth))
		b.WriteString(" │ ")
		b.WriteString(r)
		b.WriteString("\n")
	}

	if preview := m.previewBox(); preview != "" {
		b.WriteString("\n")
		b.WriteString(preview)
	}

	hotKeys := "tab: история │ enter: выбрать │ n: новая │ r: переим. │ d: удалить │ D: по умолч. │ l: сменить акк."
	if m.pane == paneHistory {
		hotKeys = "tab: сессии │ enter: открыть │ c: копир. │ x: удалить │ u: корзина │ /: поиск │ C: очистить │ l: сменить акк."
	}

	return renderPage("ИСТОРИЯ БУФЕРА ОБМЕНА", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m mainLoopModel) sessionLines() []string {
	header := "СЕССИИ"
	if m.pane == paneSessions {
		header = "[ СЕССИИ ]"
	}
	lines := []string{header, strings.Repeat("─", sessionPaneWidth)}

	if m.loadingSessions {
		return append(lines, "Загрузка...")
	}
	if len(m.sessions) == 0 {
		return append(lines, "Сессий нет")
	}

	for i, session := range m.sessions {
		cursor := "  "
		if i == m.sessionIdx && m.pane == paneSessions {
			cursor = "> "
		}
		marker := "  "
		if session.Default {
			marker = "★ "
		}
		lines = append(lines, cursor+marker+fitText(session.Name, sessionPaneWidth-4))
	}

	return lines
}

func (m mainLoopModel) historyLines() []string {
	header := "ИСТОРИЯ"
	switch {
	case m.showDeleted:
		header = "КОРЗИНА"
	case m.searchActive():
		header = "ПОИСК: " + m.searchQuery + " (" + searchTypeLabel(m.searchType) + ")"
	}
	if m.pane == paneHistory {
		header = "[ " + header + " ]"
	}
	lines := []string{header, strings.Repeat("─", 40)}

	if m.loadingEntries {
		return append(lines, "Загрузка...")
	}
	if len(m.entries) == 0 {
		return append(lines, "Записей нет")
	}

	for i, entry := range m.entries {
		cursor := "  "
		if i == m.entryIdx && m.pane == paneHistory {
			cursor = "> "
		}
		stamp := entry.CapturedAt.Local().Format("02.01 15:04")
		lines = append(lines, fmt.Sprintf("%s%s │ %s", cursor, stamp, m.services.HistoryService.Preview(entry)))
	}

	return lines
}

func (m mainLoopModel) previewBox() string {
	entry, ok := m.currentEntry()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString("[ ПРЕДПРОСМОТР ]\n")

	if entry.ContentType == models.TypeImage {
		b.WriteString(fmt.Sprintf("Изображение %dx%d (PNG)\n", entry.Width, entry.Height))
		return b.String()
	}

	const maxPreviewLines = 4
	for i, line := range strings.Split(entry.Content, "\n") {
		if i == maxPreviewLines {
			b.WriteString("…\n")
			break
		}
		b.WriteString(fitText(line, 72))
		b.WriteString("\n")
	}

	return b.String()
}

func (m mainLoopModel) viewNameEntry(title string) string {
	out := "Название  │ [" + m.nameInput.View() + "]"
	if m.errMsg != "" {
		out += "\n\nОшибка: " + m.errMsg
	}

	return renderPage(title, out, "enter: сохранить │ esc: отмена")
}

func (m mainLoopModel) viewSearch() string {
	out := "Запрос    │ [" + m.searchInput.View() + "]\n"
	out += "Тип       │ " + searchTypeLabel(m.searchType)
	if m.errMsg != "" {
		out += "\n\nОшибка: " + m.errMsg
	}

	return renderPage("ПОИСК ПО ИСТОРИИ", out, "enter: искать │ ctrl+t: тип │ esc: отмена")
}

func (m mainLoopModel) viewDetail() string {
	entry := m.detailEntry

	var b strings.Builder
	b.WriteString("Снята     : " + entry.CapturedAt.Local().Format("02.01.2006 15:04:05") + "\n")

	title := "ЗАПИСЬ: ТЕКСТ"
	if entry.ContentType == models.TypeImage {
		title = "ЗАПИСЬ: ИЗОБРАЖЕНИЕ"
		b.WriteString(fmt.Sprintf("Размер    : %dx%d px\n", entry.Width, entry.Height))
		b.WriteString("\n[ СОДЕРЖИМОЕ ]\n")
		b.WriteString("PNG, хранится в base64. Нажмите c, чтобы вернуть в буфер обмена.\n")
	} else {
		b.WriteString("\n[ СОДЕРЖИМОЕ ]\n")
		const maxDetailLines = 20
		lines := strings.Split(entry.Content, "\n")
		for i, line := range lines {
			if i == maxDetailLines {
				b.WriteString(fmt.Sprintf("… ещё %d строк\n", len(lines)-maxDetailLines))
				break
			}
			b.WriteString(line + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\nСтатус: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nОшибка: " + m.errMsg + "\n")
	}

	hotKeys := "c: копировать │ x: удалить │ esc: назад"
	if m.showDeleted {
		hotKeys = "c: копировать │ u: восстановить │ esc: назад"
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}
