package diagfmt

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"tscfg/internal/diag"
	"tscfg/internal/source"
)

// Msgpack пишет диагностики bag в w; ключи те же, что в JSON.
func Msgpack(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	return writeMsgpack(w, BuildDiagnosticsOutput(bag, fs, opts))
}

// WriteReportMsgpack пишет отчёт check в w.
func WriteReportMsgpack(w io.Writer, r Report) error {
	return writeMsgpack(w, r)
}

func writeMsgpack(w io.Writer, v any) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("json")
	return enc.Encode(v)
}
