// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package tonicgen

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// outputWriter places generated Rust sources in a directory.
type outputWriter struct {
	dir    string
	logger *zap.Logger
}

func newOutputWriter(dir string, logger *zap.Logger) *outputWriter {
	return &outputWriter{dir: dir, logger: logger}
}

// writeService writes text as the source file for the service whose file
// base name is base, and returns the Rust module name the file answers to.
// The file is rewritten on every run; only the module index is
// change-detected.
func (w *outputWriter) writeService(base string, text []byte) (string, error) {
	module := identifierName(base)
	path := filepath.Join(w.dir, module+".rs")
	if err := ioutil.WriteFile(path, text, 0644); err != nil {
		return "", err
	}
	w.logger.Debug("wrote service module",
		zap.String("module", module),
		zap.String("path", path),
	)
	return module, nil
}

// writeModuleIndex writes a mod.rs declaring every module in modules, in
// order. Keyword module names are escaped in the declarations; the files on
// disk keep the unescaped name.
//
// An index identical to the one on disk is not rewritten, keeping its
// mtime stable across runs. It reports whether a write happened.
func (w *outputWriter) writeModuleIndex(modules []string) (bool, error) {
	var b strings.Builder
	for _, module := range modules {
		fmt.Fprintf(&b, "pub mod %s;\n", sanitizeIdent(module))
	}
	content := []byte(b.String())

	path := filepath.Join(w.dir, "mod.rs")
	if existing, err := ioutil.ReadFile(path); err == nil && bytes.Equal(existing, content) {
		w.logger.Debug("module index unchanged", zap.String("path", path))
		return false, nil
	}
	if err := ioutil.WriteFile(path, content, 0644); err != nil {
		return false, err
	}
	w.logger.Debug("wrote module index",
		zap.String("path", path),
		zap.Int("modules", len(modules)),
	)
	return true, nil
}
