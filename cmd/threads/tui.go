package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ternvm/tern/thread"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type tickMsg time.Time

type registryModel struct {
	list   *thread.List
	table  table.Model
	cancel context.CancelFunc
	ctx    context.Context
}

func newRegistryModel(ctx context.Context, cancel context.CancelFunc, list *thread.List) registryModel {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "TID", Width: 8},
		{Title: "STATE", Width: 14},
		{Title: "STACK", Width: 12},
	}
	tbl := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderBottom(true)
	tbl.SetStyles(styles)

	m := registryModel{list: list, table: tbl, ctx: ctx, cancel: cancel}
	m.refresh()
	return m
}

func (m *registryModel) refresh() {
	snap := m.list.Snapshot()
	rows := make([]table.Row, 0, len(snap))
	for _, t := range snap {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", t.ID()),
			fmt.Sprintf("%d", t.NativeID()),
			t.State().String(),
			fmt.Sprintf("%d KiB", t.Stack().Size()/1024),
		})
	}
	m.table.SetRows(rows)
}

func tick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m registryModel) Init() tea.Cmd {
	return tick()
}

func (m registryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.cancel()
			return m, tea.Quit
		}
	case tickMsg:
		select {
		case <-m.ctx.Done():
			return m, tea.Quit
		default:
		}
		m.refresh()
		return m, tick()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m registryModel) View() string {
	header := titleStyle.Render("tern thread registry")
	count := countStyle.Render(fmt.Sprintf("%d thread(s) registered", len(m.table.Rows())))
	help := helpStyle.Render("q: quit")
	return header + "\n\n" + count + "\n" + m.table.View() + "\n" + help + "\n"
}

func runTUI(ctx context.Context, cancel context.CancelFunc, list *thread.List) error {
	p := tea.NewProgram(newRegistryModel(ctx, cancel, list))
	_, err := p.Run()
	return err
}
