package parser_test

import (
	"testing"

	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sources(t *testing.T, content string) []string {
	t.Helper()
	var out []string
	for _, imp := range parser.ParseImports("/p/src/a.ts", []byte(content)) {
		out = append(out, imp.Source)
	}
	return out
}

func TestParseImports_ESModuleForms(t *testing.T) {
	content := `import React from "react";
import { a, b } from './lib';
import * as api from "../api";
import Default, { named } from "../../entities/user";
import "./styles.css";
  import { indented } from "./indented";
`
	assert.Equal(t, []string{
		"react",
		"./lib",
		"../api",
		"../../entities/user",
		"./styles.css",
		"./indented",
	}, sources(t, content))
}

func TestParseImports_Require(t *testing.T) {
	content := `const fs = require("fs");
let { join } = require('path');
var cfg = require("../config");
require("./side-effect");
module.exports = require("./reexport");
`
	assert.Equal(t, []string{"fs", "path", "../config"}, sources(t, content))
}

func TestParseImports_UnrecognizedForms(t *testing.T) {
	content := "const mod = await import(\"./lazy\");\n" +
		"export * from \"./ui\";\n" +
		"export { a } from './model';\n" +
		"import {\n  multi,\n} from \"./multi\";\n" +
		"// import x from \"./commented\"\n" +
		"const x = `import y from \"./template\"`;\n"
	assert.Empty(t, sources(t, content))
}

func TestParseImports_TwoMatchesOnOneLine(t *testing.T) {
	imports := parser.ParseImports("/p/src/a.ts", []byte(`import "./a"; const b = require("./b");`))
	require.Len(t, imports, 2)
	assert.Equal(t, "./a", imports[0].Source)
	assert.Equal(t, "./b", imports[1].Source)
	assert.Equal(t, 1, imports[0].Line)
	assert.Equal(t, 1, imports[1].Line)
}

func TestParseImports_LineNumbersAndRelativity(t *testing.T) {
	content := "// header\n\nimport x from \"/abs/x\";\r\nimport y from \"@scope/y\";\n"
	imports := parser.ParseImports("/p/src/a.ts", []byte(content))
	require.Len(t, imports, 2)

	assert.Equal(t, 3, imports[0].Line)
	assert.True(t, imports[0].IsRelative)
	assert.Equal(t, "/p/src/a.ts", imports[0].File)

	assert.Equal(t, 4, imports[1].Line)
	assert.False(t, imports[1].IsRelative)
	assert.Empty(t, imports[1].Layer)
}

func TestParseImports_BinaryContent(t *testing.T) {
	assert.Empty(t, parser.ParseImports("/p/a.js", []byte{0xff, 0xfe, 'i', 'm', 'p', 0x00}))
}

func TestParseImports_ByteOrderMark(t *testing.T) {
	imports := parser.ParseImports("/p/src/shared/x/index.ts", []byte("\xEF\xBB\xBFimport { y } from \"../../features/auth\";\nimport z from \"./z\";\n"))
	require.Len(t, imports, 2)
	assert.Equal(t, "../../features/auth", imports[0].Source)
	assert.Equal(t, 1, imports[0].Line)
	assert.Equal(t, "./z", imports[1].Source)
}

func TestImportParser_ExtractImports(t *testing.T) {
	imports, err := parser.New().ExtractImports("/p/src/a.tsx", []byte(`import { Button } from "../../shared/ui";`))
	require.NoError(t, err)
	require.Len(t, imports, 1)
	assert.Equal(t, "../../shared/ui", imports[0].Source)
	assert.Equal(t, "/p/src/a.tsx", imports[0].File)
}

func TestIsRelative(t *testing.T) {
	assert.True(t, parser.IsRelative("./a"))
	assert.True(t, parser.IsRelative("../a"))
	assert.True(t, parser.IsRelative("/a"))
	assert.False(t, parser.IsRelative("react"))
	assert.False(t, parser.IsRelative("@/features/auth"))
}
