package main

import (
	"github.com/previewkit/tme"
)

// Run executes the get command. A single input prints one record;
// multiple inputs are resolved concurrently and printed as an array in
// input order. Failures are printed as the uniform JSON error shape.
func (c *GetCmd) Run(deps *Dependencies) error {
	if len(c.Inputs) == 1 {
		res, err := deps.Resolver.Resolve(deps.Ctx, c.Inputs[0])
		if err != nil {
			_ = writeJSON(deps.Stdout, tme.AsErrorResult(err))
			return err
		}
		return writeJSON(deps.Stdout, res)
	}

	results := deps.Resolver.ResolveAll(deps.Ctx, c.Inputs)

	out := make([]any, 0, len(results))
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			out = append(out, tme.AsErrorResult(r.Err))
			continue
		}
		out = append(out, r.Resource)
	}
	if err := writeJSON(deps.Stdout, out); err != nil {
		return err
	}

	if failed > 0 {
		return tme.Errorf(tme.EINTERNAL, "%d of %d inputs failed", failed, len(results))
	}
	return nil
}
