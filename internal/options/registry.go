package options

var (
	moduleEnum = NewEnumSet(
		EnumValue{"none", ModuleNone},
		EnumValue{"commonjs", ModuleCommonJS},
		EnumValue{"amd", ModuleAMD},
		EnumValue{"system", ModuleSystem},
		EnumValue{"umd", ModuleUMD},
		EnumValue{"es6", ModuleES2015},
		EnumValue{"es2015", ModuleES2015},
		EnumValue{"es2020", ModuleES2020},
		EnumValue{"es2022", ModuleES2022},
		EnumValue{"esnext", ModuleESNext},
	)
	targetEnum = NewEnumSet(
		EnumValue{"es3", TargetES3},
		EnumValue{"es5", TargetES5},
		EnumValue{"es6", TargetES2015},
		EnumValue{"es2015", TargetES2015},
		EnumValue{"es2016", TargetES2016},
		EnumValue{"es2017", TargetES2017},
		EnumValue{"es2018", TargetES2018},
		EnumValue{"es2019", TargetES2019},
		EnumValue{"esnext", TargetESNext},
	)
	jsxEnum = NewEnumSet(
		EnumValue{"preserve", JsxPreserve},
		EnumValue{"react-native", JsxReactNative},
		EnumValue{"react", JsxReact},
	)
	newLineEnum = NewEnumSet(
		EnumValue{"crlf", NewLineCRLF},
		EnumValue{"lf", NewLineLF},
	)
	moduleResolutionEnum = NewEnumSet(
		EnumValue{"node", ResolutionNodeJs},
		EnumValue{"classic", ResolutionClassic},
	)
	importsNotUsedEnum = NewEnumSet(
		EnumValue{"remove", ImportsRemove},
		EnumValue{"preserve", ImportsPreserve},
		EnumValue{"error", ImportsError},
	)
)

// declarations is the option table in listing order. Adding an option is a
// one-line change here.
var declarations = []*OptionDeclaration{
	// Projects
	boolOpt("incremental", CatProjects),
	boolOpt("composite", CatProjects),
	pathOpt("tsBuildInfoFile", CatProjects),
	boolOpt("disableSourceOfProjectReferenceRedirect", CatProjects),
	boolOpt("disableSolutionSearching", CatProjects),
	boolOpt("disableReferencedProjectLoad", CatProjects),

	// Language and Environment
	enumOpt("target", CatLanguage, targetEnum),
	listOpt("lib", CatLanguage, enumOpt("lib", CatLanguage, libEnum())),
	enumOpt("jsx", CatLanguage, jsxEnum),
	boolOpt("experimentalDecorators", CatLanguage),
	boolOpt("emitDecoratorMetadata", CatLanguage),
	stringOpt("jsxFactory", CatLanguage),
	stringOpt("jsxFragmentFactory", CatLanguage),
	stringOpt("jsxImportSource", CatLanguage),
	stringOpt("reactNamespace", CatLanguage),
	boolOpt("noLib", CatLanguage),
	boolOpt("useDefineForClassFields", CatLanguage),

	// Modules
	enumOpt("module", CatModules, moduleEnum),
	pathOpt("rootDir", CatModules),
	enumOpt("moduleResolution", CatModules, moduleResolutionEnum),
	pathOpt("baseUrl", CatModules),
	{Name: "paths", Kind: KindObject, Category: CatModules},
	listOpt("rootDirs", CatModules, pathOpt("rootDirs", CatModules)),
	listOpt("typeRoots", CatModules, pathOpt("typeRoots", CatModules)),
	listOpt("types", CatModules, stringOpt("types", CatModules)),
	{Name: "moduleSuffixes", Kind: KindFreeList, Category: CatModules},
	boolOpt("allowUmdGlobalAccess", CatModules),
	boolOpt("resolveJsonModule", CatModules),
	boolOpt("noResolve", CatModules),

	// JavaScript Support
	boolOpt("allowJs", CatJavaScript),
	boolOpt("checkJs", CatJavaScript),
	numberOpt("maxNodeModuleJsDepth", CatJavaScript),

	// Emit
	boolOpt("declaration", CatEmit),
	boolOpt("declarationMap", CatEmit),
	boolOpt("emitDeclarationOnly", CatEmit),
	boolOpt("sourceMap", CatEmit),
	pathOpt("outFile", CatEmit),
	pathOpt("outDir", CatEmit),
	boolOpt("removeComments", CatEmit),
	boolOpt("noEmit", CatEmit),
	boolOpt("importHelpers", CatEmit),
	enumOpt("importsNotUsedAsValues", CatEmit, importsNotUsedEnum),
	boolOpt("downlevelIteration", CatEmit),
	stringOpt("sourceRoot", CatEmit),
	stringOpt("mapRoot", CatEmit),
	boolOpt("inlineSourceMap", CatEmit),
	boolOpt("inlineSources", CatEmit),
	boolOpt("emitBOM", CatEmit),
	enumOpt("newLine", CatEmit, newLineEnum),
	boolOpt("stripInternal", CatEmit),
	boolOpt("noEmitHelpers", CatEmit),
	boolOpt("noEmitOnError", CatEmit),
	boolOpt("preserveConstEnums", CatEmit),
	pathOpt("declarationDir", CatEmit),
	boolOpt("preserveValueImports", CatEmit),

	// Interop Constraints
	boolOpt("isolatedModules", CatInterop),
	boolOpt("allowSyntheticDefaultImports", CatInterop),
	boolOpt("esModuleInterop", CatInterop),
	boolOpt("preserveSymlinks", CatInterop),
	boolOpt("forceConsistentCasingInFileNames", CatInterop),

	// Type Checking
	boolOpt("strict", CatTypeChecking),
	boolOpt("noImplicitAny", CatTypeChecking),
	boolOpt("strictNullChecks", CatTypeChecking),
	boolOpt("strictFunctionTypes", CatTypeChecking),
	boolOpt("strictBindCallApply", CatTypeChecking),
	boolOpt("strictPropertyInitialization", CatTypeChecking),
	boolOpt("noImplicitThis", CatTypeChecking),
	boolOpt("useUnknownInCatchVariables", CatTypeChecking),
	boolOpt("alwaysStrict", CatTypeChecking),
	boolOpt("noUnusedLocals", CatTypeChecking),
	boolOpt("noUnusedParameters", CatTypeChecking),
	boolOpt("exactOptionalPropertyTypes", CatTypeChecking),
	boolOpt("noImplicitReturns", CatTypeChecking),
	boolOpt("noFallthroughCasesInSwitch", CatTypeChecking),
	boolOpt("noUncheckedIndexedAccess", CatTypeChecking),
	boolOpt("noImplicitOverride", CatTypeChecking),
	boolOpt("noPropertyAccessFromIndexSignature", CatTypeChecking),
	boolOpt("allowUnusedLabels", CatTypeChecking),
	boolOpt("allowUnreachableCode", CatTypeChecking),

	// Completeness
	boolOpt("skipDefaultLibCheck", CatCompleteness),
	boolOpt("skipLibCheck", CatCompleteness),

	// Output Formatting
	boolOpt("pretty", CatOutput),
	boolOpt("noErrorTruncation", CatOutput),

	// Compiler Diagnostics
	boolOpt("diagnostics", CatDiagnostics),
	boolOpt("extendedDiagnostics", CatDiagnostics),
	boolOpt("listFiles", CatDiagnostics),
	boolOpt("listEmittedFiles", CatDiagnostics),
	boolOpt("traceResolution", CatDiagnostics),
	pathOpt("generateCpuProfile", CatDiagnostics),

	// Editor Support
	boolOpt("disableSizeLimit", CatEditor),

	// Backwards Compatibility
	stringOpt("charset", CatBackwardsComp),
	boolOpt("keyofStringsOnly", CatBackwardsComp),
	boolOpt("noImplicitUseStrict", CatBackwardsComp),
	boolOpt("noStrictGenericChecks", CatBackwardsComp),
	pathOpt("out", CatBackwardsComp),
	boolOpt("suppressExcessPropertyErrors", CatBackwardsComp),
	boolOpt("suppressImplicitAnyIndexErrors", CatBackwardsComp),
}

var byName = func() map[string]*OptionDeclaration {
	m := make(map[string]*OptionDeclaration, len(declarations))
	for _, d := range declarations {
		if _, dup := m[d.Name]; dup {
			panic("options: duplicate declaration " + d.Name)
		}
		m[d.Name] = d
	}
	return m
}()

// Lookup returns the declaration of a compiler option. Names are
// case-sensitive, as in config files.
func Lookup(name string) (*OptionDeclaration, bool) {
	d, ok := byName[name]
	return d, ok
}

// Declarations returns every declaration in listing order. The slice is a
// copy; the declarations themselves are shared and must not be modified.
func Declarations() []*OptionDeclaration {
	return append([]*OptionDeclaration(nil), declarations...)
}
