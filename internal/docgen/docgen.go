// Package docgen extracts exported function signatures and their doc
// comments from Go source and renders them as reference text.
package docgen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/doc"
	"go/parser"
	"go/printer"
	"go/token"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"statlib/internal/errors"
)

// FuncDoc describes one exported function.
type FuncDoc struct {
	Package   string
	Name      string
	Signature string
	Doc       string
}

// PackageDoc groups the extracted functions of one package.
type PackageDoc struct {
	Name  string
	Path  string
	Funcs []FuncDoc
}

// ExtractPackage parses the Go package in dir and returns its exported
// top-level functions. Test files are skipped.
func ExtractPackage(dir string) (PackageDoc, error) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, func(fi fs.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go")
	}, parser.ParseComments)
	if err != nil {
		return PackageDoc{}, errors.ParseError("parsing "+dir, err)
	}

	var names []string
	for name := range pkgs {
		names = append(names, name)
	}
	sort.Strings(names)

	out := PackageDoc{Path: dir}
	for _, name := range names {
		pkg := pkgs[name]
		docPkg := doc.New(pkg, dir, doc.AllDecls)
		out.Name = docPkg.Name

		for _, fn := range docPkg.Funcs {
			if !ast.IsExported(fn.Name) {
				continue
			}
			sig, err := renderSignature(fset, fn.Decl)
			if err != nil {
				return PackageDoc{}, err
			}
			out.Funcs = append(out.Funcs, FuncDoc{
				Package:   docPkg.Name,
				Name:      fn.Name,
				Signature: sig,
				Doc:       strings.TrimSpace(fn.Doc),
			})
		}
	}

	sort.Slice(out.Funcs, func(i, j int) bool { return out.Funcs[i].Name < out.Funcs[j].Name })
	return out, nil
}

// ExtractDirs extracts every directory concurrently, preserving input order
// in the result.
func ExtractDirs(dirs []string) ([]PackageDoc, error) {
	docs := make([]PackageDoc, len(dirs))

	var g errgroup.Group
	for i, dir := range dirs {
		i, dir := i, dir
		g.Go(func() error {
			pkg, err := ExtractPackage(dir)
			if err != nil {
				return err
			}
			docs[i] = pkg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Drop directories that held no exported functions.
	kept := docs[:0]
	for _, d := range docs {
		if len(d.Funcs) > 0 {
			kept = append(kept, d)
		}
	}
	return kept, nil
}

// renderSignature prints the declaration without its body.
func renderSignature(fset *token.FileSet, decl *ast.FuncDecl) (string, error) {
	stripped := *decl
	stripped.Body = nil
	stripped.Doc = nil

	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, &stripped); err != nil {
		return "", errors.ParseError("printing signature of "+decl.Name.Name, err)
	}
	return buf.String(), nil
}

// Markdown renders the extracted reference in the generator's output
// format: a heading, the verbatim signature, then the doc comment.
func Markdown(title string, pkgs []PackageDoc) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", title)

	for _, pkg := range pkgs {
		fmt.Fprintf(&b, "\n## package %s\n", pkg.Name)
		for _, fn := range pkg.Funcs {
			fmt.Fprintf(&b, "\n### `%s.%s`\n\n", pkg.Name, fn.Name)
			b.WriteString("**Function signature**\n\n```go\n")
			b.WriteString(fn.Signature)
			b.WriteString("\n```\n")
			if fn.Doc != "" {
				b.WriteString("\n")
				b.WriteString(fn.Doc)
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
