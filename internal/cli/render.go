package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/ospassport/internal/i18n"
	"github.com/dmitrijs2005/ospassport/internal/models"
)

var (
	colorPrimary = lipgloss.Color("#2E7D32")
	colorAccent  = lipgloss.Color("#E65100")
	colorMuted   = lipgloss.Color("#888888")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).MarginTop(1)
	careStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	tagStyle     = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	memoStyle    = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder(), false, false, false, true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)
	simpleCardStyle = lipgloss.NewStyle().Padding(0, 1)
)

// recentStampCount is how many stamps the input view lists.
const recentStampCount = 3

func renderAbout(l i18n.Lang) string {
	t := i18n.T(l)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(t.WelcomeTitle),
		t.WelcomeSub,
		headingStyle.Render(t.ConceptTitle),
		t.ConceptBody,
	))
}

// renderInput shows the editable state. Options are numbered from 1, the way
// the tag command addresses them; dictating marks the category being dictated.
func renderInput(l i18n.Lang, r models.Record, dictating models.CategoryID) string {
	t := i18n.T(l)

	care := []string{careStyle.Render(t.ParentCare), t.ParentCareText, stampMenu()}
	if recent := r.RecentStamps(recentStampCount); len(recent) > 0 {
		emojis := make([]string, 0, len(recent))
		for _, s := range recent {
			emojis = append(emojis, s.Emoji)
		}
		care = append(care, mutedStyle.Render(fmt.Sprintf("%s: %s", t.RecentStamps, strings.Join(emojis, " "))))
	}

	name := r.Name
	if name == "" {
		name = mutedStyle.Render(t.NamePlaceholder)
	}
	blocks := []string{
		cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, care...)),
		cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(t.NameLabel), name)),
	}

	for _, c := range models.Categories {
		e := r.Entry(c)
		lines := []string{titleStyle.Render(i18n.CategoryIcon(c) + " " + i18n.CategoryLabel(l, c))}
		for i := range models.OptionKeys(c) {
			label, _ := i18n.OptionLabel(l, c, i)
			box := "[ ]"
			if e.HasTag(i) {
				box = tagStyle.Render("[x]")
			}
			lines = append(lines, fmt.Sprintf("%s %d. %s", box, i+1, label))
		}

		memoHead := t.AddMemo
		if dictating == c {
			memoHead += " " + t.DictationStarted
		}
		lines = append(lines, mutedStyle.Render(memoHead))
		if e.Memo != "" {
			lines = append(lines, memoStyle.Render(e.Memo))
		}
		blocks = append(blocks, cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// renderPassport is the read-only view handed to supporters. Simple mode
// drops the frame and categories with nothing entered.
func renderPassport(l i18n.Lang, r models.Record, simple bool) string {
	t := i18n.T(l)

	name := r.Name
	if name == "" {
		name = t.Guest
	}
	lines := []string{mutedStyle.Render("OS PASSPORT"), titleStyle.Render(name)}

	for _, c := range models.Categories {
		e := r.Entry(c)
		if simple && e.IsEmpty() {
			continue
		}

		lines = append(lines, headingStyle.Render(i18n.CategoryIcon(c)+" "+i18n.CategoryLabel(l, c)))

		var tags []string
		for _, idx := range e.Tags {
			if label, ok := i18n.OptionLabel(l, c, idx); ok {
				tags = append(tags, tagStyle.Render(label))
			}
		}
		switch {
		case len(tags) > 0:
			lines = append(lines, strings.Join(tags, "  "))
		case !simple:
			lines = append(lines, mutedStyle.Render(t.NotSelected))
		}

		if e.Memo != "" {
			lines = append(lines, memoStyle.Render(e.Memo))
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if simple {
		return simpleCardStyle.Render(body)
	}
	return cardStyle.Render(body)
}

func stampMenu() string {
	items := make([]string, 0, len(models.StampEmojis))
	for i, e := range models.StampEmojis {
		items = append(items, fmt.Sprintf("%d:%s", i+1, e))
	}
	return strings.Join(items, "  ")
}
