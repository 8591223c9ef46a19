package options

// libNames are the identifiers accepted by "lib", in the order diagnostics
// list them.
var libNames = []string{
	"es5", "es6", "es2015", "es7", "es2016", "es2017", "es2018", "esnext",
	"dom", "dom.iterable", "webworker", "webworker.importscripts", "scripthost",
	"es2015.core", "es2015.collection", "es2015.generator", "es2015.iterable",
	"es2015.promise", "es2015.proxy", "es2015.reflect", "es2015.symbol",
	"es2015.symbol.wellknown", "es2016.array.include", "es2017.object",
	"es2017.sharedmemory", "es2017.string", "es2017.intl", "es2017.typedarrays",
	"es2018.asynciterable", "es2018.intl", "es2018.promise", "es2018.regexp",
	"esnext.array", "esnext.symbol", "esnext.intl", "esnext.bigint",
	"esnext.string", "esnext.promise",
}

// libAliases are the identifiers whose file does not follow lib.<id>.d.ts.
var libAliases = map[string]string{
	"es6": "lib.es2015.d.ts",
	"es7": "lib.es2016.d.ts",
}

// LibFileName maps a lib identifier to the declaration file it loads.
func LibFileName(id string) string {
	if f, ok := libAliases[id]; ok {
		return f
	}
	return "lib." + id + ".d.ts"
}

func libEnum() *EnumSet {
	values := make([]EnumValue, len(libNames))
	for i, id := range libNames {
		values[i] = EnumValue{Literal: id, Value: LibFileName(id)}
	}
	return NewEnumSet(values...)
}
