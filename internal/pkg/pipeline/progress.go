package pipeline

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ozacod/helperprep/internal/pkg/utils/terminal"
	"github.com/schollz/progressbar/v3"
)

const spinInterval = 100 * time.Millisecond

// spin shows a spinner on w while fn runs. The spinner line is cleared
// before spin returns so later output starts on a fresh line.
func spin(w io.Writer, current, total int, label string, fn func() error) error {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetDescription(fmt.Sprintf("[cyan][%d/%d][reset] %s", current, total, label)),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(spinInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()

	err := fn()

	close(done)
	wg.Wait()
	_ = bar.Finish()
	fmt.Fprint(w, terminal.ClearLine)

	return err
}
