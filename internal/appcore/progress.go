package appcore

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// progress wraps an optional mpb bar; the zero value is a no-op.
type progress struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

func newProgress(enabled bool, out io.Writer, total int) *progress {
	if !enabled || total == 0 {
		return &progress{}
	}
	p := mpb.New(mpb.WithWidth(40), mpb.WithOutput(out))
	bar := p.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name("compared pairs: ", decor.WC{W: len("compared pairs: "), C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Name("ETA: ", decor.WC{W: len("ETA: ")}),
			decor.AverageETA(decor.ET_STYLE_GO),
			decor.OnComplete(decor.Name(""), ". done"),
		),
	)
	return &progress{p: p, bar: bar}
}

func (pr *progress) increment() {
	if pr.bar != nil {
		pr.bar.Increment()
	}
}

// finish waits for the bar to render; on failure the bar is aborted first.
func (pr *progress) finish(ok bool) {
	if pr.p == nil {
		return
	}
	if !ok {
		pr.bar.Abort(false)
	}
	pr.p.Wait()
}
