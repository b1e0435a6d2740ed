package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"jtr/internal/config"
	"jtr/internal/domain"
)

// FailureViewer displays extracted failures in an interactive TUI
type FailureViewer struct {
	config *config.Config
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(cfg *config.Config) *FailureViewer {
	return &FailureViewer{config: cfg}
}

// View displays failure records in an interactive TUI
func (fv *FailureViewer) View(output *domain.FailuresOutput) error {
	if len(output.Details) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()

	// List of failures (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i, failure := range output.Details {
		name := failure.TestName
		if name == "" {
			name = fmt.Sprintf("Test %d", i+1)
		}
		kindTag := "[red]"
		if failure.Kind == domain.KindError {
			kindTag = "[orange]"
		}
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s %s(%s)[white]", i+1, name, kindTag, failure.Kind), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	// Stats header (top right): class and location of the selected failure
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	// Failure details (right side)
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

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	headerView.SetText(fmt.Sprintf(
		" Test Failures (%d total: %d failures, %d errors) | Use ↑↓ to navigate, → to view details, ← to go back, Ctrl+C to exit ",
		len(output.Details), output.Meta.FailureCount, output.Meta.ErrorCount,
	))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(output.Details) {
			return
		}
		failure := output.Details[index]

		statsView.SetText(fmt.Sprintf(
			"\n [yellow]Class:[white] %s\n [yellow]Kind:[white]  %s",
			failure.ClassName, failure.Kind,
		))

		text := fmt.Sprintf("[yellow]Message:[white]\n%s\n", tview.Escape(failure.Message))
		if failure.Diff != nil {
			text += fmt.Sprintf(
				"\n[yellow]Diff:[white]\n[green]expected: %s[white]\n[red]actual:   %s[white]\n",
				tview.Escape(failure.Diff.Expected), tview.Escape(failure.Diff.Actual),
			)
		}
		text += fmt.Sprintf("\n[yellow]Stack trace:[white]\n%s", tview.Escape(failure.StackTrace))
		detailsView.SetText(text)
		detailsView.ScrollToBeginning()
	}

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	// Arrow keys switch focus between the list and the details pane
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyLeft:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run failures viewer: %w", err)
	}
	return nil
}
