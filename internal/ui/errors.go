package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"ytf/internal/domain"
)

// FailureViewer browses the failures of the run that just finished in an
// interactive TUI.
type FailureViewer struct {
	newApp func() *tview.Application
}

// NewFailureViewer creates a FailureViewer.
func NewFailureViewer() *FailureViewer {
	return &FailureViewer{newApp: tview.NewApplication}
}

// View blocks until the user quits the viewer.
func (fv *FailureViewer) View(failures []domain.CaseFailure) error {
	if len(failures) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	app := fv.newApp()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, failure := range failures {
		list.AddItem(listItemText(failure, i), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 2, 0, false).
		AddItem(detailsView, 0, 1, false)

	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" Test Failures (%d) | ↑↓ to navigate, → to view details, ← to go back, q or Ctrl+C to exit ", len(failures)))

	updateDetails := func(index int) {
		if index < 0 || index >= len(failures) {
			return
		}
		statsView.SetText(formatFailureStats(failures[index]))
		detailsView.SetText(formatFailureDetails(failures[index]))
		detailsView.ScrollToBeginning()
	}

	list.SetChangedFunc(func(index int, _ string, _ string, _ rune) {
		updateDetails(index)
	})
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})
	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})
	updateDetails(0)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(body, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func listItemText(failure domain.CaseFailure, i int) string {
	name := failure.Name
	if name == "" {
		name = fmt.Sprintf("Test %d", i+1)
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", i+1, tview.Escape(name))
}

// formatFailureStats renders the header line above the details pane.
func formatFailureStats(failure domain.CaseFailure) string {
	location := strings.TrimSuffix(strings.TrimSpace(failure.Location), ":")
	if location == "" {
		location = "unknown location"
	}
	return fmt.Sprintf("[cyan]test:[white] [yellow]%s[white] #%d\n[cyan]at:[white] %s",
		tview.Escape(failure.Name), failure.Index, tview.Escape(location))
}

// formatFailureDetails renders the failure message using tview colour tags.
func formatFailureDetails(failure domain.CaseFailure) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[red]✗ %s[white]\n\n", tview.Escape(failure.Name))
	fmt.Fprintf(&b, "[yellow]Message:[white]\n%s\n", tview.Escape(failure.Message))
	return b.String()
}
