package dbfgo

import "io"

// Close releases the sources owned by the Reader: the file or store blob it
// opened, plus any decompressor it interposed. A Reader built over a plain
// io.Reader owns nothing, so Close is a no-op there. Close is idempotent.
func (r *Reader) Close() error {
	if r == nil {
		return nil
	}
	err := closeAll(r.closers)
	r.closers = nil
	return err
}

// closeAll closes in reverse order so wrappers release before what they
// wrap. The first error wins.
func closeAll(closers []io.Closer) error {
	var firstErr error
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
