// Package scanner finds implied dependencies of a component by static analysis of its source files.
package scanner

import (
	"context"
	"regexp"
	"strings"

	"github.com/umisama/go-regexpcache"

	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
)

const (
	includePattern      = `(?m)^[\t ]*include[\t ]+(\S.*?)[\t \r]*$`
	mixinRefPattern     = `(?m)^[\t ]*@include[\t ]+([\w-]+)[\t ]*(\(.*\))?[\t ]*;?[\t \r]*$`
	moduleArrayPattern  = `(?s)\b(?:define|require|requirejs)\s*\(\s*(?:['"][^'"]*['"]\s*,\s*)?\[(.*?)\]`
	moduleIDPattern     = `['"]([^'"]+)['"]`
	relativeSegmentExpr = `\.{1,2}/`
)

type Scanner struct {
	fs     filesystem.Fs
	logger log.Logger
}

func New(fs filesystem.Fs, logger log.Logger) *Scanner {
	return &Scanner{fs: fs, logger: logger.WithComponent("scanner")}
}

// ScanComponentIncludes returns one component reference per "include <path>" line, in the file order.
// All "./" and "../" segments are removed, the last segment (file name) is dropped,
// for example "include ../molecules/foo/foo.jade" -> "molecules/foo".
// Includes without a directory part are ignored. Results are not de-duplicated.
func (s *Scanner) ScanComponentIncludes(markup string) []string {
	var out []string
	for _, match := range regexpcache.MustCompile(includePattern).FindAllStringSubmatch(markup, -1) {
		path := regexpcache.MustCompile(relativeSegmentExpr).ReplaceAllString(match[1], "")
		parts := strings.Split(path, "/")
		parts = parts[:len(parts)-1]
		if ref := strings.Join(parts, "/"); ref != "" {
			out = append(out, ref)
		}
	}
	return out
}

// ScanStyleMixinRefs returns names of mixins used by "@include <name>;" lines, in the file order.
func (s *Scanner) ScanStyleMixinRefs(style string) []string {
	var out []string
	for _, match := range regexpcache.MustCompile(mixinRefPattern).FindAllStringSubmatch(style, -1) {
		out = append(out, match[1])
	}
	return out
}

// ResolveMixinToFile returns name of the first file directly in the dir, which declares "@mixin <name>".
// Files are checked in the sorted order, nested directories are not searched.
// If the mixin is not found, a warning is logged, it is not an error.
func (s *Scanner) ResolveMixinToFile(ctx context.Context, mixinName, dir string) (string, bool) {
	items, err := s.fs.ReadDir(ctx, dir)
	if err != nil {
		s.logger.Warnf(ctx, `Cannot read mixins dir "%s": %s`, dir, err)
		return "", false
	}

	declaration := regexpcache.MustCompile(`(?m)^\s*@mixin\s+` + regexp.QuoteMeta(mixinName) + `(?:[^\w-]|$)`)
	for _, item := range items {
		if item.IsDir() {
			continue
		}

		path := filesystem.Join(dir, item.Name())
		file, err := s.fs.ReadFile(ctx, filesystem.NewFileDef(path).SetDescription("stylesheet"))
		if err != nil {
			s.logger.Warn(ctx, err.Error())
			continue
		}

		if declaration.MatchString(file.Content) {
			return item.Name(), true
		}
	}

	s.logger.Warnf(ctx, `Mixin "%s" not found in "%s".`, mixinName, dir)
	return "", false
}

// ScanScriptModuleDeps returns global scripts required by the script, in the file order, without duplicates.
// Module ids are collected from define([...]), require([...]) and requirejs([...]) arrays.
// Only ids with an existing "<globalJSDir>/<id>.js" file are returned, as "<id>.js".
// Other ids, for example vendor libraries, are ignored.
func (s *Scanner) ScanScriptModuleDeps(ctx context.Context, script, globalJSDir string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, array := range regexpcache.MustCompile(moduleArrayPattern).FindAllStringSubmatch(script, -1) {
		for _, match := range regexpcache.MustCompile(moduleIDPattern).FindAllStringSubmatch(array[1], -1) {
			id := strings.TrimPrefix(strings.TrimSpace(match[1]), "./")
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true

			file := model.NormalizeExt(id, model.JSExt)
			if !s.fs.IsFile(ctx, filesystem.Join(globalJSDir, file)) {
				s.logger.Debugf(ctx, `Module "%s" is not a global script, ignored.`, id)
				continue
			}
			out = append(out, file)
		}
	}
	return out
}
