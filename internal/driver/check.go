package driver

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"tscfg/internal/ast"
	"tscfg/internal/diag"
	"tscfg/internal/observ"
	"tscfg/internal/options"
	"tscfg/internal/parser"
	"tscfg/internal/source"
)

// Input is one config file to check. Content, when non-nil, is used instead of
// reading Path from disk (stdin, editors, tests).
type Input struct {
	Path    string
	Content []byte
}

// Request describes a batch check.
type Request struct {
	Inputs []Input
	// BasePath resolves relative path options. Empty means the directory of
	// each config file.
	BasePath       string
	MaxDiagnostics int
	// Jobs bounds parallel workers; 0 means GOMAXPROCS.
	Jobs     int
	Host     options.Host
	Progress ProgressSink
	Timings  bool
}

// Paths builds inputs for files on disk.
func Paths(paths ...string) []Input {
	inputs := make([]Input, len(paths))
	for i, p := range paths {
		inputs[i] = Input{Path: p}
	}
	return inputs
}

// FileResult содержит результат проверки одного файла
type FileResult struct {
	Path    string
	FileID  source.FileID // source.NoFile если файл не загрузился
	File    *ast.File
	Result  options.Result
	Bag     *diag.Bag // синтаксис + опции, отсортировано по позиции
	LoadErr error
	Timing  *observ.Report
}

// HasErrors reports whether the file produced any error diagnostic.
func (r FileResult) HasErrors() bool {
	return r.Bag != nil && r.Bag.HasErrors()
}

type loaded struct {
	id   source.FileID
	err  error
	took time.Duration
}

// Check loads every input into a shared FileSet, then parses and converts the
// files in parallel. Results keep the order of req.Inputs. Per-file problems
// end up in FileResult.Bag; the returned error is only set on cancellation.
func Check(ctx context.Context, req Request) (*source.FileSet, []FileResult, error) {
	logger := zerolog.Ctx(ctx)
	host := req.Host
	if host == nil {
		host = NewHost()
	}
	fileSet := source.NewFileSetWithBase(host.CurrentDirectory())
	if len(req.Inputs) == 0 {
		return fileSet, nil, nil
	}

	// FileSet не потокобезопасен на запись: грузим последовательно
	loads := make([]loaded, len(req.Inputs))
	for _, in := range req.Inputs {
		emit(req.Progress, Event{File: in.Path, Stage: StageLoad, Status: StatusQueued})
	}
	for i, in := range req.Inputs {
		if err := ctx.Err(); err != nil {
			return fileSet, nil, err
		}
		start := time.Now()
		var id source.FileID
		var err error
		if in.Content != nil {
			id = fileSet.AddNormalized(in.Path, in.Content, source.FileVirtual)
		} else if prev, ok := fileSet.GetLatest(in.Path); ok && fileSet.Get(prev).Flags&source.FileVirtual == 0 {
			// один и тот же файл читаем один раз за прогон
			id = prev
		} else {
			id, err = fileSet.Load(in.Path)
		}
		loads[i] = loaded{id: id, err: err, took: time.Since(start)}
		status := StatusDone
		if err != nil {
			status = StatusError
			logger.Debug().Err(err).Str("path", in.Path).Msg("load failed")
		}
		emit(req.Progress, Event{File: in.Path, Stage: StageLoad, Status: status, Err: err, Elapsed: loads[i].took})
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FileResult, len(req.Inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(req.Inputs)))
	for i, in := range req.Inputs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = checkOne(fileSet, host, req, in, loads[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, nil, fmt.Errorf("check: %w", err)
	}

	logger.Debug().Int("files", len(results)).Int("jobs", jobs).Msg("check finished")
	return fileSet, results, nil
}

func checkOne(fileSet *source.FileSet, host options.Host, req Request, in Input, ld loaded) (res FileResult) {
	res = FileResult{Path: in.Path, FileID: source.NoFile, Bag: diag.NewBag(req.MaxDiagnostics)}

	var timer *observ.Timer
	if req.Timings {
		timer = observ.NewTimer()
		timer.Record(string(StageLoad), ld.took, "")
		defer func() {
			report := timer.Report()
			res.Timing = &report
		}()
	}

	if ld.err != nil {
		res.LoadErr = ld.err
		res.Bag.Add(diag.New(diag.CannotReadFile, source.NoSpan, in.Path))
		return res
	}
	res.FileID = ld.id
	file := fileSet.Get(ld.id)

	emit(req.Progress, Event{File: in.Path, Stage: StageParse, Status: StatusWorking})
	start := time.Now()
	idx := begin(timer, StageParse)
	res.File = parser.ParseFile(file, parser.Options{Reporter: diag.BagReporter{Bag: res.Bag}})
	end(timer, idx, fmt.Sprintf("%d bytes", len(file.Content)))
	emit(req.Progress, Event{File: in.Path, Stage: StageParse, Status: statusOf(res.File.HasSyntaxErrors()), Elapsed: time.Since(start)})

	emit(req.Progress, Event{File: in.Path, Stage: StageConvert, Status: StatusWorking})
	start = time.Now()
	idx = begin(timer, StageConvert)
	basePath := req.BasePath
	if basePath == "" {
		basePath = filepath.ToSlash(filepath.Dir(absPath(host, in.Path)))
	}
	res.Result = options.ParseJSONSourceFileConfig(res.File, host, basePath, filepath.ToSlash(in.Path))
	end(timer, idx, fmt.Sprintf("%d options", res.Result.Options.Len()))
	emit(req.Progress, Event{File: in.Path, Stage: StageConvert, Status: statusOf(res.Result.HasErrors()), Elapsed: time.Since(start)})

	res.Bag.AddAll(res.Result.Errors)
	res.Bag.Sort()
	return res
}

func absPath(host options.Host, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.FromSlash(host.CurrentDirectory()), p)
}

func statusOf(failed bool) Status {
	if failed {
		return StatusError
	}
	return StatusDone
}

func begin(t *observ.Timer, stage Stage) int {
	if t == nil {
		return -1
	}
	return t.Begin(string(stage))
}

func end(t *observ.Timer, idx int, note string) {
	if t != nil {
		t.End(idx, note)
	}
}
