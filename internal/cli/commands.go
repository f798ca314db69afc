package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/ospassport/internal/codec"
	"github.com/dmitrijs2005/ospassport/internal/common"
	"github.com/dmitrijs2005/ospassport/internal/dictation"
	"github.com/dmitrijs2005/ospassport/internal/i18n"
	"github.com/dmitrijs2005/ospassport/internal/models"
	"github.com/dmitrijs2005/ospassport/internal/services"
	"github.com/dmitrijs2005/ospassport/internal/share"
)

// errUsage marks a command invoked with wrong arguments.
var errUsage = errors.New("usage")

func usage(s string) error {
	return fmt.Errorf("%w: %s", errUsage, s)
}

func (a *App) Help(_ context.Context) error {
	t := i18n.T(a.lang)
	cmds := [][2]string{
		{"view [about|input|passport]", t.TabAbout + " / " + t.TabInput + " / " + t.TabPassport},
		{"lang <ja|en|pt>", ""},
		{"name <text>", t.NameLabel},
		{"tag <category> <n>", ""},
		{"memo <category> [text]", t.AddMemo},
	}
	if a.dictation != nil && a.dictation.Available() {
		cmds = append(cmds, [2]string{"dictate [category]", t.DictationStarted})
	}
	cmds = append(cmds,
		[2]string{"stamp <1-4|emoji>", t.ParentCare},
		[2]string{"save", t.SaveBtn},
		[2]string{"share", ""},
		[2]string{"open <link|token>", ""},
		[2]string{"simple", t.SimpleReport + " / " + t.Back},
		[2]string{"reset", ""},
		[2]string{"exit", ""},
	)
	a.println("Available commands:")
	for _, c := range cmds {
		if c[1] == "" {
			a.println("  " + c[0])
			continue
		}
		fmt.Fprintf(a.out, "  %-28s %s\n", c[0], mutedStyle.Render(c[1]))
	}
	a.println("Categories: " + categoryList())
	return nil
}

// ShowView switches to the named view, if any, and renders it.
func (a *App) ShowView(ctx context.Context, args string) error {
	if name := strings.TrimSpace(args); name != "" {
		v, err := parseView(name)
		if err != nil {
			return err
		}
		a.view = v
	}

	switch a.view {
	case services.ViewInput:
		var dictating models.CategoryID
		if a.dictation != nil {
			dictating, _ = a.dictation.Active()
		}
		a.println(renderInput(a.lang, a.record, dictating))
	case services.ViewPassport:
		t := i18n.T(a.lang)
		if a.simple {
			a.println(mutedStyle.Render(t.SimpleReport + "  (simple: " + t.Back + ")"))
		}
		a.println(renderPassport(a.lang, a.record, a.simple))
		if !a.simple {
			a.printLastSaved(ctx)
			_, err := a.writeShareLink()
			return err
		}
	default:
		a.println(renderAbout(a.lang))
	}
	return nil
}

func (a *App) SetLang(_ context.Context, args string) error {
	l, err := i18n.ParseLanguage(args)
	if err != nil {
		return err
	}
	a.lang = l
	a.println(i18n.T(l).TabAbout + " / " + i18n.T(l).TabInput + " / " + i18n.T(l).TabPassport)
	return nil
}

func (a *App) SetName(_ context.Context, args string) error {
	name := strings.TrimSpace(args)
	if err := models.ValidateText(name); err != nil {
		return err
	}
	a.record = models.SetName(a.record, name)
	a.println(i18n.T(a.lang).NameLabel + ": " + a.record.Name)
	return nil
}

// ToggleTag flips option n (counted from 1) of a category.
func (a *App) ToggleTag(_ context.Context, args string) error {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return usage("tag <category> <n>")
	}
	c, err := parseCategory(fields[0])
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return usage("tag <category> <n>")
	}

	r, err := models.ToggleTag(a.record, c, n-1)
	if err != nil {
		return err
	}
	a.record = r

	label, _ := i18n.OptionLabel(a.lang, c, n-1)
	mark := "[ ]"
	if r.Entry(c).HasTag(n - 1) {
		mark = "[x]"
	}
	a.println(mark + " " + label)
	return nil
}

// SetMemo replaces a category memo; no text clears it.
func (a *App) SetMemo(_ context.Context, args string) error {
	name, text, _ := strings.Cut(strings.TrimSpace(args), " ")
	if name == "" {
		return usage("memo <category> [text]")
	}
	c, err := parseCategory(name)
	if err != nil {
		return err
	}

	r, err := models.SetMemo(a.record, c, strings.TrimSpace(text))
	if err != nil {
		return err
	}
	a.record = r
	a.println(i18n.CategoryIcon(c) + " " + r.Entry(c).Memo)
	return nil
}

// Dictate toggles voice input for a category. Without one it targets
// sensor.
func (a *App) Dictate(ctx context.Context, args string) error {
	if a.dictation == nil || !a.dictation.Available() {
		return common.ErrDictationUnavailable
	}

	c := models.CategorySensor
	if name := strings.TrimSpace(args); name != "" {
		var err error
		if c, err = parseCategory(name); err != nil {
			return err
		}
	}

	running, err := a.dictation.Toggle(ctx, c, i18n.SpeechLocale(a.lang))
	if err != nil {
		return err
	}
	t := i18n.T(a.lang)
	if running {
		a.println(t.DictationStarted + " " + i18n.CategoryIcon(c) + " " + i18n.CategoryLabel(a.lang, c))
	} else {
		a.println(t.DictationStopped)
	}
	return nil
}

// Dictated appends a finished transcript to the memo of the category that
// was targeted when dictation started.
func (a *App) Dictated(ctx context.Context, res dictation.Result) {
	if res.Err != nil {
		a.println(i18n.T(a.lang).DictationStopped)
		return
	}
	r, err := models.AppendMemo(a.record, res.Category, res.Text)
	if err != nil {
		a.logger.Warn(ctx, "dropping transcript", "category", res.Category, "error", err)
		return
	}
	a.record = r
	a.println(i18n.CategoryIcon(res.Category) + " " + r.Entry(res.Category).Memo)
}

func (a *App) Stamp(_ context.Context, args string) error {
	arg := strings.TrimSpace(args)
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(models.StampEmojis) {
			return usage("stamp <1-4|emoji>")
		}
		arg = models.StampEmojis[n-1]
	}

	date := i18n.FormatDate(a.lang, a.now())
	r, err := models.AddStamp(a.record, arg, date, a.stampID(), a.config.StampCap)
	if err != nil {
		return err
	}
	a.record = r
	a.println(arg + " " + i18n.T(a.lang).StampSaved)
	return nil
}

// Save is the only operation that writes the record to local storage.
func (a *App) Save(ctx context.Context) error {
	t := i18n.T(a.lang)
	if err := a.store.Save(ctx, a.record); err != nil {
		return fmt.Errorf("%s: %w", t.SaveFailed, err)
	}
	a.println(t.SavedAlert)
	return nil
}

func (a *App) Share(_ context.Context) error {
	link, err := a.writeShareLink()
	if err != nil {
		return err
	}
	if a.config.QROutput == "" {
		return nil
	}

	path, err := share.WritePNG(a.config.QROutput, "passport", link)
	if err != nil {
		return err
	}
	a.println(path)
	return nil
}

// printLastSaved shows when the record was last saved, if ever.
func (a *App) printLastSaved(ctx context.Context) {
	at, ok := a.store.SavedAt(ctx)
	if !ok {
		return
	}
	at = at.In(a.location)
	a.println(mutedStyle.Render(fmt.Sprintf("%s: %s %s", i18n.T(a.lang).LastSaved, i18n.FormatDate(a.lang, at), at.Format("15:04"))))
}

func (a *App) writeShareLink() (string, error) {
	link, err := share.BuildURL(a.config.BaseURL, a.record)
	if err != nil {
		return "", err
	}
	if err := share.WriteQR(a.out, link); err != nil {
		return "", err
	}
	a.println(mutedStyle.Render(i18n.T(a.lang).QRHint))
	return link, nil
}

// Open replaces the record with one received as a link or token. A token
// that does not decode leaves the current record untouched and only prints a
// notice.
func (a *App) Open(ctx context.Context, args string) error {
	token, ok := share.TokenFromInput(args)
	if !ok {
		return usage("open <link|token>")
	}
	r, err := codec.Decode(token)
	if err != nil {
		a.logger.Warn(ctx, "ignoring shared record", "error", err)
		a.println(mutedStyle.Render(i18n.T(a.lang).OpenFailed))
		return nil
	}

	r, pruned := r.Prune()
	if pruned > 0 {
		a.logger.Warn(ctx, "dropped stale tags from shared record", "count", pruned)
	}
	a.adopt(services.Resolution{Record: r, View: services.ViewPassport})
	return a.ShowView(ctx, "")
}

// Reset forgets the stored record and starts over.
func (a *App) Reset(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	a.adopt(services.Resolution{Record: models.NewRecord(), View: services.ViewInput})
	return a.ShowView(ctx, "")
}

func (a *App) ToggleSimple(ctx context.Context) error {
	a.simple = !a.simple
	a.view = services.ViewPassport
	return a.ShowView(ctx, "")
}

func parseView(s string) (services.View, error) {
	switch v := services.View(strings.ToLower(s)); v {
	case services.ViewAbout, services.ViewInput, services.ViewPassport:
		return v, nil
	}
	return "", usage("view [about|input|passport]")
}

// parseCategory accepts a category id or any unambiguous prefix of one.
func parseCategory(s string) (models.CategoryID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	var found []models.CategoryID
	for _, c := range models.Categories {
		if string(c) == s {
			return c, nil
		}
		if s != "" && strings.HasPrefix(string(c), s) {
			found = append(found, c)
		}
	}
	if len(found) == 1 {
		return found[0], nil
	}
	return "", fmt.Errorf("%w: %q (%s)", common.ErrUnknownCategory, s, categoryList())
}

func categoryList() string {
	names := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
