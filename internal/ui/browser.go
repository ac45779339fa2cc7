package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"ctest/internal/domain"
)

// FailureBrowser displays the failures of a run in an interactive TUI
type FailureBrowser struct{}

// NewFailureBrowser creates a new FailureBrowser
func NewFailureBrowser() *FailureBrowser {
	return &FailureBrowser{}
}

// View lists the failed tests on the left and the selected failure on the
// right. Marking a failure as reviewed only lasts for the session.
func (fb *FailureBrowser) View(summary *domain.Summary) error {
	failures := summary.Failures()
	if len(failures) == 0 {
		return nil
	}

	reviewed := make(map[int]bool)

	// Create the application
	app := tview.NewApplication()

	// Create list for failed tests (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	updateListItem := func(index int) {
		if index < 0 || index >= list.GetItemCount() {
			return
		}
		list.SetItemText(index, listItemText(failures[index], reviewed[index]), "")
	}

	for i := range failures {
		list.AddItem(listItemText(failures[i], false), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	// Stats header (suite, test, location) and details (right side)
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	// List on left (1/3), details on right (2/3)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(headerText(summary, len(failures), countReviewed(reviewed)))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(failures) {
			statsView.SetText(formatFailureStats(failures[index]))
			detailsView.SetText(formatFailureDetails(failures[index]))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC, tcell.KeyEsc:
			app.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'r', 'R':
				index := list.GetCurrentItem()
				if index >= 0 && index < len(failures) {
					reviewed[index] = !reviewed[index]
					updateListItem(index)
					updateHeader()
				}
				return nil
			case 'q':
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

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run failure browser: %w", err)
	}
	return nil
}

func countReviewed(reviewed map[int]bool) int {
	n := 0
	for _, ok := range reviewed {
		if ok {
			n++
		}
	}
	return n
}

func headerText(summary *domain.Summary, failed, reviewed int) string {
	return fmt.Sprintf(" %s | %d failed, %d reviewed | ↑↓ navigate, [yellow]R[white] mark reviewed, → details, ← back, q quit ",
		tview.Escape(SummaryLine(summary)), failed, reviewed)
}

func listItemText(r domain.Result, reviewed bool) string {
	name := tview.Escape(r.Test.FullName())
	if reviewed {
		return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", r.Index, name)
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", r.Index, name)
}

// formatFailureDetails formats a failed test for display using tview color tags
func formatFailureDetails(r domain.Result) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "[red]✗ Test: %s[white]\n\n", tview.Escape(r.Test.FullName()))

	if r.Test.File != "" {
		fmt.Fprintf(w, "[cyan]Registered: %s:%d[white]\n", r.Test.File, r.Test.Line)
	}
	if r.Failure != nil {
		if loc := r.Failure.Location(); loc != "" {
			fmt.Fprintf(w, "[yellow]Location: %s[white]\n", loc)
		}
		fmt.Fprintf(w, "\n[yellow]Message:[white]\n%s\n\n", tview.Escape(r.Failure.Message))
	}

	if r.Output != "" {
		fmt.Fprintf(w, "[yellow]Output:[white]\n%s", tview.TranslateANSI(tview.Escape(r.Output)))
		if r.Truncated {
			fmt.Fprintf(w, "[gray]... message truncated[white]\n")
		}
	}

	w.Flush()
	return builder.String()
}

// formatFailureStats formats the stats header for a failed test
func formatFailureStats(r domain.Result) string {
	return fmt.Sprintf("[cyan]suite:[white] [yellow]%s[white]  [cyan]test:[white] [yellow]%s[white]  [cyan]#[white]%d\n",
		tview.Escape(r.Test.Suite), tview.Escape(r.Test.Name), r.Index)
}
