package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mcpp-lang/mcpp/lang/compiler"
)

func (c *Cmd) Compile(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return CompileFiles(ctx, stdio, c.Namespace, args...)
}

// CompileFiles compiles each file independently and prints every generated
// MCFunction's command text to stdio.Stdout, one "### <namespace>/<path>/
// <name>" header line before each function's body, matching the
// <namespace>/<path...>/<name>.mcfunction naming an external packager would
// use.
func CompileFiles(ctx context.Context, stdio mainer.Stdio, namespace string, files ...string) error {
	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			return printError(stdio, fmt.Errorf("%s: %w", path, err))
		}

		fns, err := compiler.Compile(src, compiler.Options{Namespace: namespace})
		if err != nil {
			return printError(stdio, fmt.Errorf("%s: %w", path, err))
		}

		for _, fn := range fns {
			ns := namespace
			if ns == "" {
				ns = "MCPP"
			}
			header := ns
			for _, seg := range fn.Path {
				header += "/" + seg
			}
			header += "/" + fn.Name
			fmt.Fprintf(stdio.Stdout, "### %s\n%s\n", header, fn.Inside)
		}
	}
	return nil
}
