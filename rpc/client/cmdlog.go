package client

import (
	"fmt"
	"github.com/ValentinKolb/redis-udf/rpc/common"
	"os"
)

// appendCommandLog appends line to the command log at path.
// The file is opened and closed for every line, so it can be rotated or removed at any time.
func (e *Executor) appendCommandLog(path, line string) error {
	e.logMu.Lock()
	defer e.logMu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrLogWrite, err)
	}

	if _, err := fmt.Fprintln(f, line); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", common.ErrLogWrite, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrLogWrite, err)
	}
	return nil
}
