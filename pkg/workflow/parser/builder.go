package parser

import (
	"fmt"

	"gantry-hq/gantry/pkg/workflow/ast"
	wferrors "gantry-hq/gantry/pkg/workflow/errors"
)

// builder maps the generic document tree onto the typed workflow model.
// It is additive, not exhaustive: only the keys policies reason about are
// modeled, and unknown keys are ignored for forward compatibility.
type builder struct {
	sourcePath string
}

// newBuilder creates a builder for the given source file.
func newBuilder(sourcePath string) *builder {
	return &builder{sourcePath: sourcePath}
}

// Build maps a generic document tree onto the typed workflow model. Shape
// violations (e.g. "jobs" present but not a mapping) are structural errors
// carrying the offending span; the builder never returns a partial model.
func Build(root *ast.Node, sourcePath string) (*ast.Workflow, error) {
	return newBuilder(sourcePath).buildWorkflow(root)
}

// buildWorkflow builds the root workflow entity.
func (b *builder) buildWorkflow(root *ast.Node) (*ast.Workflow, error) {
	if root == nil || root.Kind != ast.KindMapping {
		return nil, b.shapeError("workflow document", "mapping", root)
	}

	wf := &ast.Workflow{Span: root.Span}

	if node := root.Get("name"); node != nil {
		s, err := b.buildString("name", node)
		if err != nil {
			return nil, err
		}
		wf.Name = s
	}

	// Trigger metadata stays generic; policies pattern-match it.
	wf.On = root.Get("on")

	perms, err := b.buildPermissions(root.Get("permissions"))
	if err != nil {
		return nil, err
	}
	wf.Permissions = perms

	env, err := b.buildStringMap("env", root.Get("env"))
	if err != nil {
		return nil, err
	}
	wf.Env = env

	jobsPair := root.GetPair("jobs")
	if jobsPair == nil {
		return nil, b.shapeError("workflow document", "a `jobs` mapping", root)
	}
	if jobsPair.Value.Kind != ast.KindMapping {
		return nil, b.shapeError("jobs", "mapping", jobsPair.Value)
	}

	wf.Jobs = make([]*ast.Job, 0, len(jobsPair.Value.Pairs))
	for _, pair := range jobsPair.Value.Pairs {
		job, err := b.buildJob(pair)
		if err != nil {
			return nil, err
		}
		wf.Jobs = append(wf.Jobs, job)
	}

	return wf, nil
}

// buildJob builds one job from its entry in the jobs mapping.
func (b *builder) buildJob(pair ast.Pair) (*ast.Job, error) {
	name := pair.Key.Value
	body := pair.Value

	if body.Kind != ast.KindMapping {
		return nil, b.shapeError(fmt.Sprintf("job %q", name), "mapping", body)
	}

	job := &ast.Job{
		Name:     name,
		NameSpan: pair.Key.Span,
		Span:     body.Span,
	}

	perms, err := b.buildPermissions(body.Get("permissions"))
	if err != nil {
		return nil, err
	}
	job.Permissions = perms

	if node := body.Get("runs-on"); node != nil && node.Kind == ast.KindScalar {
		job.RunsOn = &ast.String{Value: node.Value, Style: node.Style, Span: node.Span}
	}

	env, err := b.buildStringMap("env", body.Get("env"))
	if err != nil {
		return nil, err
	}
	job.Env = env

	if stepsNode := body.Get("steps"); stepsNode != nil && !stepsNode.IsNull() {
		if stepsNode.Kind != ast.KindSequence {
			return nil, b.shapeError(fmt.Sprintf("steps of job %q", name), "sequence", stepsNode)
		}
		job.Steps = make([]*ast.Step, 0, len(stepsNode.Items))
		for i, item := range stepsNode.Items {
			step, err := b.buildStep(name, i, item)
			if err != nil {
				return nil, err
			}
			job.Steps = append(job.Steps, step)
		}
	}

	return job, nil
}

// buildStep builds one step of a job.
func (b *builder) buildStep(jobName string, index int, node *ast.Node) (*ast.Step, error) {
	if node.Kind != ast.KindMapping {
		return nil, b.shapeError(
			fmt.Sprintf("step %d of job %q", index+1, jobName), "mapping", node)
	}

	step := &ast.Step{Index: index, Span: node.Span}

	fields := []struct {
		key    string
		target **ast.String
	}{
		{"id", &step.ID},
		{"if", &step.If},
		{"name", &step.Name},
		{"uses", &step.Uses},
		{"run", &step.Run},
		{"shell", &step.Shell},
		{"working-directory", &step.WorkingDirectory},
	}
	for _, f := range fields {
		child := node.Get(f.key)
		if child == nil || child.IsNull() {
			continue
		}
		s, err := b.buildString(fmt.Sprintf("%s of step %d of job %q", f.key, index+1, jobName), child)
		if err != nil {
			return nil, err
		}
		*f.target = s
	}

	with, err := b.buildStringMap("with", node.Get("with"))
	if err != nil {
		return nil, err
	}
	step.With = with

	env, err := b.buildStringMap("env", node.Get("env"))
	if err != nil {
		return nil, err
	}
	step.Env = env

	return step, nil
}

// buildPermissions resolves the tri-state permissions value. A missing key
// yields Unspecified with no span; the bare read-all / write-all scalars
// yield the shorthand variants carrying the scalar's span; a mapping yields
// the explicit variant with its entries in document order. Unknown scope
// names are preserved, not rejected.
func (b *builder) buildPermissions(node *ast.Node) (ast.Permissions, error) {
	if node == nil {
		return ast.Permissions{Kind: ast.PermissionsUnspecified}, nil
	}

	switch node.Kind {
	case ast.KindScalar:
		switch node.Value {
		case "read-all":
			return ast.Permissions{Kind: ast.PermissionsReadAll, Span: node.Span}, nil
		case "write-all":
			return ast.Permissions{Kind: ast.PermissionsWriteAll, Span: node.Span}, nil
		default:
			return ast.Permissions{}, b.shapeError(
				"permissions", `"read-all", "write-all", or a scope mapping`, node)
		}

	case ast.KindMapping:
		perms := ast.Permissions{
			Kind:   ast.PermissionsExplicit,
			Scopes: make([]ast.Scope, 0, len(node.Pairs)),
			Span:   node.Span,
		}
		for _, pair := range node.Pairs {
			if pair.Value.Kind != ast.KindScalar {
				return ast.Permissions{}, b.shapeError(
					fmt.Sprintf("permission scope %q", pair.Key.Value), "scalar level", pair.Value)
			}
			perms.Scopes = append(perms.Scopes, ast.Scope{
				Name:  ast.String{Value: pair.Key.Value, Style: pair.Key.Style, Span: pair.Key.Span},
				Level: ast.String{Value: pair.Value.Value, Style: pair.Value.Style, Span: pair.Value.Span},
			})
		}
		return perms, nil

	case ast.KindNull:
		// "permissions:" with no value reads as the empty explicit map.
		return ast.Permissions{Kind: ast.PermissionsExplicit, Span: node.Span}, nil

	default:
		return ast.Permissions{}, b.shapeError("permissions", "scalar or mapping", node)
	}
}

// buildString builds a scalar string field.
func (b *builder) buildString(what string, node *ast.Node) (*ast.String, error) {
	if node.Kind != ast.KindScalar {
		return nil, b.shapeError(what, "scalar", node)
	}
	return &ast.String{Value: node.Value, Style: node.Style, Span: node.Span}, nil
}

// buildStringMap builds an ordered string-to-string mapping (env, with).
// Nil input yields nil output; the field was absent.
func (b *builder) buildStringMap(what string, node *ast.Node) ([]ast.KeyValue, error) {
	if node == nil || node.IsNull() {
		return nil, nil
	}
	if node.Kind != ast.KindMapping {
		return nil, b.shapeError(what, "mapping", node)
	}

	entries := make([]ast.KeyValue, 0, len(node.Pairs))
	for _, pair := range node.Pairs {
		if pair.Value.Kind != ast.KindScalar {
			// Non-scalar values (nested maps under with:) are skipped;
			// policies only inspect string entries.
			continue
		}
		entries = append(entries, ast.KeyValue{
			Key:   ast.String{Value: pair.Key.Value, Style: pair.Key.Style, Span: pair.Key.Span},
			Value: ast.String{Value: pair.Value.Value, Style: pair.Value.Style, Span: pair.Value.Span},
		})
	}
	return entries, nil
}

// shapeError builds a structural error for a node of the wrong shape.
func (b *builder) shapeError(what, expected string, node *ast.Node) *wferrors.Error {
	found := "nothing"
	span := ast.Span{}
	if node != nil {
		found = node.Kind.String()
		span = node.Span
	}
	return wferrors.Structural(
		fmt.Sprintf("%s has the wrong shape", what),
		expected, found, b.sourcePath, span)
}
