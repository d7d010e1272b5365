package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-routegraph/pkg/logging"
	"github.com/dd0wney/cluso-routegraph/pkg/metrics"
)

// Reader loads dataset files. The zero value is not usable; use NewReader.
type Reader struct {
	logger  logging.Logger
	metrics *metrics.Registry
}

// Option configures a Reader
type Option func(*Reader)

// WithLogger attaches a logger
func WithLogger(logger logging.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logger.With(logging.Component("dataset"))
		}
	}
}

// WithMetrics attaches a metrics registry for row and error counts
func WithMetrics(registry *metrics.Registry) Option {
	return func(r *Reader) {
		r.metrics = registry
	}
}

// NewReader creates a Reader
func NewReader(opts ...Option) *Reader {
	r := &Reader{logger: logging.NewNopLogger()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load reads the cities and routes files with a default Reader
func Load(citiesPath, routesPath string) (*Dataset, error) {
	return NewReader().Load(citiesPath, routesPath)
}

// Load reads both files. Any failure aborts the load.
func (r *Reader) Load(citiesPath, routesPath string) (*Dataset, error) {
	airports, err := r.ReadAirports(citiesPath)
	if err != nil {
		return nil, err
	}
	routes, err := r.ReadRoutes(routesPath)
	if err != nil {
		return nil, err
	}
	return &Dataset{Airports: airports, Routes: routes}, nil
}

// ReadAirports reads a cities file
func (r *Reader) ReadAirports(path string) ([]Airport, error) {
	var airports []Airport
	err := r.readFile("ReadAirports", FileCities, path, func(src io.Reader) error {
		var parseErr error
		airports, parseErr = ParseAirports(src, path)
		return parseErr
	})
	if err != nil {
		return nil, err
	}
	r.recordRows(FileCities, path, len(airports))
	r.warnAirports(path, airports)
	return airports, nil
}

// ReadRoutes reads a routes file
func (r *Reader) ReadRoutes(path string) ([]RawRoute, error) {
	var routes []RawRoute
	err := r.readFile("ReadRoutes", FileRoutes, path, func(src io.Reader) error {
		var parseErr error
		routes, parseErr = ParseRoutes(src, path)
		return parseErr
	})
	if err != nil {
		return nil, err
	}
	r.recordRows(FileRoutes, path, len(routes))
	r.warnRoutes(path, routes)
	return routes, nil
}

func (r *Reader) readFile(op, file, path string, parse func(io.Reader) error) error {
	src, err := openSource(path)
	if err != nil {
		r.recordError(file, path, err)
		return NewError(op).File(path).Unreadable(err)
	}
	defer src.Close()

	if err := parse(src); err != nil {
		r.recordError(file, path, err)
		return err
	}
	return nil
}

func (r *Reader) recordRows(file, path string, rows int) {
	r.logger.Info("dataset file loaded", logging.String("file", file), logging.Path(path), logging.Count(rows))
	if r.metrics != nil {
		r.metrics.RecordDatasetRows(file, rows)
	}
}

func (r *Reader) recordError(file, path string, err error) {
	r.logger.Error("dataset file failed", logging.String("file", file), logging.Path(path), logging.Error(err))
	if r.metrics != nil {
		r.metrics.RecordDatasetError(file)
	}
}

// warnAirports reports rows that load but are shadowed by an earlier row
func (r *Reader) warnAirports(path string, airports []Airport) {
	ids := make(map[int64]bool, len(airports))
	codes := make(map[string]bool, len(airports))
	var dupIDs, dupCodes int
	for _, a := range airports {
		if ids[a.ID] {
			dupIDs++
		}
		ids[a.ID] = true
		if codes[a.Code] {
			dupCodes++
		}
		codes[a.Code] = true
	}

	if dupIDs > 0 {
		r.logger.Warn("duplicate airport ids, first occurrence kept",
			logging.String("file", FileCities), logging.Path(path), logging.Count(dupIDs))
	}
	if dupCodes > 0 {
		r.logger.Warn("duplicate airport codes, first occurrence kept",
			logging.String("file", FileCities), logging.Path(path), logging.Count(dupCodes))
	}
}

// warnRoutes reports self-loop rows, which are kept as edges
func (r *Reader) warnRoutes(path string, routes []RawRoute) {
	loops := 0
	for _, rt := range routes {
		if rt.From == rt.To {
			loops++
		}
	}
	if loops > 0 {
		r.logger.Warn("self-loop routes",
			logging.String("file", FileRoutes), logging.Path(path), logging.Count(loops))
	}
}

// ParseAirports parses pipe-delimited airport rows. name is used in errors.
func ParseAirports(src io.Reader, name string) ([]Airport, error) {
	airports := make([]Airport, 0)
	err := scanLines(src, "ParseAirports", name, func(lineNo int, line string) error {
		fields := strings.Split(line, "|")
		if len(fields) != citiesFieldCount {
			return NewError("ParseAirports").File(name).Line(lineNo).
				Malformed(fmt.Errorf("expected %d fields, got %d", citiesFieldCount, len(fields)))
		}

		id, err := parseID(fields[1])
		if err != nil {
			return NewError("ParseAirports").File(name).Line(lineNo).Field("id").Malformed(err)
		}

		airports = append(airports, Airport{Code: fields[0], ID: id, Name: fields[2]})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return airports, nil
}

// ParseRoutes parses whitespace-delimited route rows. Only the first two
// columns are read.
func ParseRoutes(src io.Reader, name string) ([]RawRoute, error) {
	routes := make([]RawRoute, 0)
	err := scanLines(src, "ParseRoutes", name, func(lineNo int, line string) error {
		fields := strings.Fields(line)
		if len(fields) < routesMinFields {
			return NewError("ParseRoutes").File(name).Line(lineNo).
				Malformed(fmt.Errorf("expected at least %d fields, got %d", routesMinFields, len(fields)))
		}

		from, err := parseID(fields[0])
		if err != nil {
			return NewError("ParseRoutes").File(name).Line(lineNo).Field("from").Malformed(err)
		}
		to, err := parseID(fields[1])
		if err != nil {
			return NewError("ParseRoutes").File(name).Line(lineNo).Field("to").Malformed(err)
		}

		routes = append(routes, RawRoute{From: from, To: to})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return routes, nil
}

// scanLines calls fn for every non-blank line, with any trailing \r removed
func scanLines(src io.Reader, op, name string, fn func(lineNo int, line string) error) error {
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(lineNo, line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return NewError(op).File(name).Line(lineNo + 1).Unreadable(err)
	}
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	if id < 0 {
		return 0, fmt.Errorf("negative id %d", id)
	}
	return id, nil
}
