package status

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"
)

// 📊 PtermBar draws progress with a pterm progress bar
type PtermBar struct {
	bar *pterm.ProgressbarPrinter
}

var _ Bar = (*PtermBar)(nil)

func NewPtermBar() *PtermBar {
	return &PtermBar{}
}

func (b *PtermBar) Start(total int, title string) error {
	// pterm refuses to draw an empty bar
	if total < 1 {
		total = 1
	}
	bar, err := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle(title).
		WithRemoveWhenDone(false).
		Start()
	if err != nil {
		return errors.Errorf("starting progress bar: %w", err)
	}
	b.bar = bar
	return nil
}

func (b *PtermBar) Set(done int, title string) {
	if b.bar == nil {
		return
	}
	if done > b.bar.Total {
		done = b.bar.Total
	}
	b.bar.UpdateTitle(title)
	b.bar.Add(done - b.bar.Current)
}

func (b *PtermBar) Stop(title string) error {
	if b.bar == nil {
		return nil
	}
	b.bar.UpdateTitle(title)
	if _, err := b.bar.Stop(); err != nil {
		return errors.Errorf("stopping progress bar: %w", err)
	}
	b.bar = nil
	return nil
}

// 📝 TextBar prints one line per update, for logs and pipes
type TextBar struct {
	out   io.Writer
	total int
}

var _ Bar = (*TextBar)(nil)

func NewTextBar(out io.Writer) *TextBar {
	return &TextBar{out: out}
}

func (b *TextBar) Start(total int, title string) error {
	b.total = total
	_, err := fmt.Fprintln(b.out, title)
	return err
}

func (b *TextBar) Set(done int, title string) {
	fmt.Fprintln(b.out, FormatBarLine(Progress{Done: done, Total: b.total, Entry: title}))
}

func (b *TextBar) Stop(title string) error {
	_, err := fmt.Fprintln(b.out, title)
	return err
}
