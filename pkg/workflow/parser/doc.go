// Package parser loads GitHub Actions workflow documents into the typed
// model defined in the ast package.
//
// Parsing is a two-stage pipeline:
//
//  1. Load: raw bytes -> generic node tree. Built on gopkg.in/yaml.v3's
//     node decoding, with spans recomputed against a byte-offset index of
//     the raw input. Key order is preserved, duplicate mapping keys are
//     rejected, and scalars keep their raw textual form.
//  2. Build: generic tree -> *ast.Workflow. Expects specific keys at
//     specific nesting levels, resolves the permissions tri-state, and
//     ignores unknown keys for forward compatibility.
//
// Either stage failing yields a typed *errors.Error (syntax or structural)
// and never a partial result.
//
// Basic usage:
//
//	p := parser.NewParser()
//	wf, err := p.Parse(".github/workflows/ci.yml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("jobs:", wf.JobCount())
package parser
