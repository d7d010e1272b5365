package dataset

import (
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
	"golang.org/x/exp/mmap"
)

// SnappySuffix marks a dataset file stored as a snappy framed stream
const SnappySuffix = ".sz"

type readCloser struct {
	io.Reader
	close func() error
}

func (rc readCloser) Close() error {
	return rc.close()
}

// openSource opens a dataset file for sequential reading. Plain files are
// memory-mapped; ".sz" files are decompressed on the fly.
func openSource(path string) (io.ReadCloser, error) {
	if strings.HasSuffix(path, SnappySuffix) {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		return readCloser{Reader: snappy.NewReader(f), close: f.Close}, nil
	}

	m, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	return readCloser{
		Reader: io.NewSectionReader(m, 0, int64(m.Len())),
		close:  m.Close,
	}, nil
}
