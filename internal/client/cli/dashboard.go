package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/habitkeeper/internal/client/models"
	"github.com/fatih/color"
)

const (
	barWidth = 20
	// streakWindow is the number of days a full habit bar stands for.
	streakWindow = 7
)

// suggestedHabits are always shown in the tracker, checked in or not.
var suggestedHabits = []string{"reading", "essay"}

var (
	upcomingTasks = []string{
		"Essay: Monday & Thursday",
		"Weekly Test: Sunday",
		"Presentation topic practice",
	}
	storyPreview = []string{
		"Story preview",
		"A short cozy story or comic based on your interests.",
	}
	footerNote = "Share this app with friends: they can sign up and create their own local accounts on their device."
)

type palette struct {
	title  *color.Color
	header *color.Color
	accent *color.Color
	good   *color.Color
	muted  *color.Color
}

func newPalette(noColor bool) palette {
	p := palette{
		title:  color.New(color.FgMagenta, color.Bold),
		header: color.New(color.FgCyan, color.Bold),
		accent: color.New(color.FgYellow),
		good:   color.New(color.FgGreen),
		muted:  color.New(color.FgHiBlack),
	}
	if noColor {
		for _, c := range []*color.Color{p.title, p.header, p.accent, p.good, p.muted} {
			c.DisableColor()
		}
	}
	return p
}

// renderBar draws n out of total as a fixed-width bar. n is clamped.
func renderBar(n, total, width int) string {
	if total <= 0 {
		total = 1
	}
	n = max(0, min(total, n))
	filled := n * width / total
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

func (a *App) panel(w io.Writer, title string, lines ...string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, a.colors.header.Sprint(title))
	for _, l := range lines {
		fmt.Fprintln(w, "  "+l)
	}
}

func todayTasks(progress int) []string {
	return []string{
		"- Read 20 minutes",
		fmt.Sprintf("- Wren & Martin: Chapter %d (1 chapter per week)", progress+1),
		"- Presentation practice (short 2 min)",
		"- Fun weekly task",
	}
}

func progressLine(progress int) string {
	return fmt.Sprintf("Wren progress %s Chapters completed: %d/%d",
		renderBar(progress, models.MaxChapters, barWidth), progress, models.MaxChapters)
}

// Dashboard renders every panel of the home screen.
func (a *App) Dashboard(ctx context.Context) error {
	p, _, err := a.profileService.GetProfile(ctx, a.session.Email)
	if err != nil {
		return err
	}

	name := p.Name
	if name == "" {
		name = a.session.Email
	}
	fmt.Fprintln(a.out, a.colors.title.Sprint("English with Tim"), a.colors.muted.Sprintf("Hi, %s (%s)", name, p.Level))

	if err := a.Quote(ctx); err != nil {
		return err
	}
	if err := a.Tasks(ctx); err != nil {
		return err
	}
	if err := a.Habits(ctx); err != nil {
		return err
	}
	if err := a.Upcoming(ctx); err != nil {
		return err
	}
	if err := a.Stories(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, a.colors.muted.Sprint(footerNote))
	return nil
}

// Tasks renders Today's Tasks with the next chapter and the progress bar.
func (a *App) Tasks(ctx context.Context) error {
	n, err := a.progressService.GetProgress(ctx, a.session.Email)
	if err != nil {
		return err
	}
	lines := append(todayTasks(n), a.colors.good.Sprint(progressLine(n)))
	a.panel(a.out, "Today's Tasks", lines...)
	return nil
}

func (a *App) Upcoming(ctx context.Context) error {
	lines := make([]string, 0, len(upcomingTasks))
	for _, t := range upcomingTasks {
		lines = append(lines, "- "+t)
	}
	a.panel(a.out, "Upcoming Tasks", lines...)
	return nil
}

func (a *App) Stories(ctx context.Context) error {
	a.panel(a.out, "Stories & Comics",
		a.colors.accent.Sprint(storyPreview[0]),
		storyPreview[1],
	)
	return nil
}
