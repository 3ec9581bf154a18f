// Package gosrc compiles a parsed template tree into Go source. Each input
// file becomes one generated .go file whose templates are plain functions
// over the soyutil value model; the generator decides per subtree whether
// rendered output can be a single expression or needs statement-level
// control flow.
package gosrc

import "soyc-go/soytree"

// FileCode is the generated source for one input file.
type FileCode struct {
	Namespace string
	FilePath  string
	Code      string
}

// Generate compiles every file in the set, in order. Template problems
// (unknown functions or directives, wrong arity, unresolvable call
// targets, surviving msg nodes) are returned as a *SyntaxError carrying
// file and template context; generator defects panic.
func Generate(fileSet *soytree.SoyFileSetNode, opts *Options) (files []FileCode, err error) {
	defer func() {
		if r := recover(); r != nil {
			se, ok := r.(*SyntaxError)
			if !ok {
				panic(r)
			}
			files = nil
			err = se
		}
	}()

	g := newCodeGen(opts.resolved())
	for _, file := range fileSet.Files {
		files = append(files, g.generateFile(file))
	}
	return files, nil
}
