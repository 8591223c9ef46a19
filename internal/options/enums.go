package options

// ModuleKind is the converted value of the "module" option.
type ModuleKind int

const (
	ModuleNone     ModuleKind = 0
	ModuleCommonJS ModuleKind = 1
	ModuleAMD      ModuleKind = 2
	ModuleUMD      ModuleKind = 3
	ModuleSystem   ModuleKind = 4
	ModuleES2015   ModuleKind = 5
	ModuleES2020   ModuleKind = 6
	ModuleES2022   ModuleKind = 7
	ModuleESNext   ModuleKind = 99
)

func (k ModuleKind) String() string {
	switch k {
	case ModuleNone:
		return "None"
	case ModuleCommonJS:
		return "CommonJS"
	case ModuleAMD:
		return "AMD"
	case ModuleUMD:
		return "UMD"
	case ModuleSystem:
		return "System"
	case ModuleES2015:
		return "ES2015"
	case ModuleES2020:
		return "ES2020"
	case ModuleES2022:
		return "ES2022"
	case ModuleESNext:
		return "ESNext"
	}
	return "ModuleKind(?)"
}

// ScriptTarget is the converted value of the "target" option.
type ScriptTarget int

const (
	TargetES3    ScriptTarget = 0
	TargetES5    ScriptTarget = 1
	TargetES2015 ScriptTarget = 2
	TargetES2016 ScriptTarget = 3
	TargetES2017 ScriptTarget = 4
	TargetES2018 ScriptTarget = 5
	TargetES2019 ScriptTarget = 6
	TargetESNext ScriptTarget = 99
)

func (t ScriptTarget) String() string {
	switch t {
	case TargetES3:
		return "ES3"
	case TargetES5:
		return "ES5"
	case TargetES2015:
		return "ES2015"
	case TargetES2016:
		return "ES2016"
	case TargetES2017:
		return "ES2017"
	case TargetES2018:
		return "ES2018"
	case TargetES2019:
		return "ES2019"
	case TargetESNext:
		return "ESNext"
	}
	return "ScriptTarget(?)"
}

// JsxEmit is the converted value of the "jsx" option.
type JsxEmit int

const (
	JsxNone        JsxEmit = 0
	JsxPreserve    JsxEmit = 1
	JsxReact       JsxEmit = 2
	JsxReactNative JsxEmit = 3
)

func (j JsxEmit) String() string {
	switch j {
	case JsxNone:
		return "None"
	case JsxPreserve:
		return "Preserve"
	case JsxReact:
		return "React"
	case JsxReactNative:
		return "ReactNative"
	}
	return "JsxEmit(?)"
}

// NewLineKind is the converted value of the "newLine" option.
type NewLineKind int

const (
	NewLineCRLF NewLineKind = 0
	NewLineLF   NewLineKind = 1
)

func (n NewLineKind) String() string {
	switch n {
	case NewLineCRLF:
		return "CarriageReturnLineFeed"
	case NewLineLF:
		return "LineFeed"
	}
	return "NewLineKind(?)"
}

// ModuleResolutionKind is the converted value of "moduleResolution".
type ModuleResolutionKind int

const (
	ResolutionClassic ModuleResolutionKind = 1
	ResolutionNodeJs  ModuleResolutionKind = 2
)

func (m ModuleResolutionKind) String() string {
	switch m {
	case ResolutionClassic:
		return "Classic"
	case ResolutionNodeJs:
		return "NodeJs"
	}
	return "ModuleResolutionKind(?)"
}

// ImportsNotUsedAsValues is the converted value of the option of the same name.
type ImportsNotUsedAsValues int

const (
	ImportsRemove   ImportsNotUsedAsValues = 0
	ImportsPreserve ImportsNotUsedAsValues = 1
	ImportsError    ImportsNotUsedAsValues = 2
)

func (i ImportsNotUsedAsValues) String() string {
	switch i {
	case ImportsRemove:
		return "Remove"
	case ImportsPreserve:
		return "Preserve"
	case ImportsError:
		return "Error"
	}
	return "ImportsNotUsedAsValues(?)"
}
